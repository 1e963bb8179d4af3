package shelf

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// HostKind selects how the CLI reaches the host application.
type HostKind string

const (
	// HostPort drives Maya over its commandPort TCP socket.
	HostPort HostKind = "port"
	// HostBridge drives Maya through a WebSocket relay plugin.
	HostBridge HostKind = "bridge"
	// HostMemory builds into an in-memory recorder; used by preview.
	HostMemory HostKind = "memory"
)

// HostConfig describes the host connection.
type HostConfig struct {
	Kind    HostKind `yaml:"kind"`
	Address string   `yaml:"address"` // host:port for "port", ws:// URL for "bridge".
}

// Config is the top-level CLI configuration.
type Config struct {
	Name        string     `yaml:"name"`
	Root        string     `yaml:"root"`
	Parent      string     `yaml:"parent"`       // Host parent layout; default ShelfLayout.
	DefaultIcon string     `yaml:"default_icon"` // Fallback icon identifier.
	Host        HostConfig `yaml:"host"`
}

// Spec converts the config into an immutable shelf Spec.
func (c Config) Spec() Spec {
	return Spec{
		Root:        c.Root,
		Name:        c.Name,
		Parent:      c.Parent,
		DefaultIcon: c.DefaultIcon,
	}
}

// LoadConfig reads a YAML file and returns a Config.
// Environment variables referenced as ${VAR} or $VAR in the YAML are
// expanded before parsing, so machine-specific paths and addresses can live
// in the environment (e.g. loaded from a .env file) rather than in the
// committed config.
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path) //nolint:gosec // path is caller-provided configuration, not user input
	if err != nil {
		return Config{}, fmt.Errorf("shelf: load config: %w", err)
	}

	expanded := os.ExpandEnv(string(data))

	var cfg Config
	if err := yaml.Unmarshal([]byte(expanded), &cfg); err != nil {
		return Config{}, fmt.Errorf("shelf: parse config: %w", err)
	}

	return cfg, nil
}

// Validate checks that the configuration is internally consistent.
func (c Config) Validate() error {
	if c.Name == "" {
		return fmt.Errorf("shelf: config: shelf name is required")
	}

	if c.Root == "" {
		return fmt.Errorf("shelf: config: shelf root is required")
	}

	switch c.Host.Kind {
	case HostPort, HostBridge:
		if c.Host.Address == "" {
			return fmt.Errorf("shelf: config: host %q: address is required", c.Host.Kind)
		}
	case HostMemory, "":
		// Recorder host needs no address.
	default:
		return fmt.Errorf("shelf: config: unknown host kind %q", c.Host.Kind)
	}

	return nil
}
