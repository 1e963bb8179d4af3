package main

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mayakit/shelf/pkg/shelf"
	"github.com/mayakit/shelf/pkg/uihost"
)

func TestScaffold(t *testing.T) {
	tmp := t.TempDir()
	configPath := filepath.Join(tmp, "shelf.yaml")

	cfg := shelf.Config{
		Name:   "CustomTools",
		Root:   filepath.Join(tmp, "scripts"),
		Parent: shelf.DefaultParent,
		Host:   shelf.HostConfig{Kind: shelf.HostPort, Address: "localhost:7001"},
	}

	require.NoError(t, scaffold(cfg, configPath))

	info, err := os.Stat(filepath.Join(cfg.Root, "icons"))
	require.NoError(t, err)
	assert.True(t, info.IsDir())

	loaded, err := shelf.LoadConfig(configPath)
	require.NoError(t, err)
	assert.Equal(t, cfg, loaded)
	require.NoError(t, loaded.Validate())
}

func TestLoadEnv_MissingFileIsFine(t *testing.T) {
	require.NoError(t, loadEnv(filepath.Join(t.TempDir(), "nope.env")))
}

func TestLoadEnv(t *testing.T) {
	tmp := t.TempDir()
	envPath := filepath.Join(tmp, ".env")
	require.NoError(t, os.WriteFile(envPath, []byte("MAYASHELF_TEST_ADDR=localhost:7013\n"), 0o600))

	require.NoError(t, loadEnv(envPath))
	assert.Equal(t, "localhost:7013", os.Getenv("MAYASHELF_TEST_ADDR"))

	t.Cleanup(func() { os.Unsetenv("MAYASHELF_TEST_ADDR") })
}

func TestConnectHost_Memory(t *testing.T) {
	cfg := shelf.Config{Host: shelf.HostConfig{Kind: shelf.HostMemory}}

	host, closeHost, err := connectHost(context.Background(), cfg)
	require.NoError(t, err)
	t.Cleanup(func() { _ = closeHost() })

	_, ok := host.(*uihost.Recorder)
	assert.True(t, ok)
}

func TestConnectHost_UnknownKind(t *testing.T) {
	cfg := shelf.Config{Host: shelf.HostConfig{Kind: "teleport"}}

	_, _, err := connectHost(context.Background(), cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "teleport")
}
