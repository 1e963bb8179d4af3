package shelf

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "shelf.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoadConfig(t *testing.T) {
	path := writeConfig(t, `
name: Anim
root: /pipeline/shelves/anim
host:
  kind: port
  address: "localhost:7001"
`)

	cfg, err := LoadConfig(path)

	require.NoError(t, err)
	assert.Equal(t, "Anim", cfg.Name)
	assert.Equal(t, "/pipeline/shelves/anim", cfg.Root)
	assert.Equal(t, HostPort, cfg.Host.Kind)
	assert.Equal(t, "localhost:7001", cfg.Host.Address)
	require.NoError(t, cfg.Validate())
}

func TestLoadConfigExpandsEnv(t *testing.T) {
	t.Setenv("SHELF_ROOT", "/studio/shelves")
	path := writeConfig(t, "name: Anim\nroot: ${SHELF_ROOT}/anim\n")

	cfg, err := LoadConfig(path)

	require.NoError(t, err)
	assert.Equal(t, "/studio/shelves/anim", cfg.Root)
}

func TestLoadConfigMissingFile(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "nope.yaml"))

	require.Error(t, err)
	assert.Contains(t, err.Error(), "shelf: load config")
}

func TestLoadConfigBadYAML(t *testing.T) {
	path := writeConfig(t, "name: [broken\n")

	_, err := LoadConfig(path)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "shelf: parse config")
}

func TestValidate(t *testing.T) {
	cases := []struct {
		name    string
		cfg     Config
		wantErr string
	}{
		{"missing name", Config{Root: "/r"}, "name is required"},
		{"missing root", Config{Name: "Anim"}, "root is required"},
		{"port without address", Config{Name: "A", Root: "/r", Host: HostConfig{Kind: HostPort}}, "address is required"},
		{"bridge without address", Config{Name: "A", Root: "/r", Host: HostConfig{Kind: HostBridge}}, "address is required"},
		{"unknown kind", Config{Name: "A", Root: "/r", Host: HostConfig{Kind: "serial"}}, "unknown host kind"},
		{"memory ok", Config{Name: "A", Root: "/r", Host: HostConfig{Kind: HostMemory}}, ""},
		{"empty kind ok", Config{Name: "A", Root: "/r"}, ""},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.cfg.Validate()
			if tc.wantErr == "" {
				assert.NoError(t, err)
			} else {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tc.wantErr)
			}
		})
	}
}

func TestConfigSpec(t *testing.T) {
	cfg := Config{Name: "Anim", Root: "/r", Parent: "TopShelf", DefaultIcon: "studio.png"}

	spec := cfg.Spec()

	assert.Equal(t, Spec{Root: "/r", Name: "Anim", Parent: "TopShelf", DefaultIcon: "studio.png"}, spec)
}
