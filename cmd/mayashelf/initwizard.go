package main

import (
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/charmbracelet/huh"
	"gopkg.in/yaml.v3"

	"github.com/mayakit/shelf/pkg/shelf"
	"github.com/mayakit/shelf/pkg/shelfdir"
)

// runInit walks the user through creating a shelf config and scaffolds the
// shelf directory skeleton.
func runInit(args []string) error {
	fs := flag.NewFlagSet("init", flag.ExitOnError)
	configPath, _ := commonFlags(fs)

	if err := fs.Parse(args); err != nil {
		return err
	}

	if _, err := os.Stat(*configPath); err == nil {
		return fmt.Errorf("%s already exists, refusing to overwrite", *configPath)
	}

	cfg := shelf.Config{
		Name:   "CustomTools",
		Root:   "scripts",
		Parent: shelf.DefaultParent,
		Host:   shelf.HostConfig{Kind: shelf.HostPort, Address: "localhost:7001"},
	}

	hostKind := string(cfg.Host.Kind)
	confirmed := true

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Shelf name").
				Description("The tab label in Maya's shelf bar.").
				Value(&cfg.Name).
				Validate(notEmpty("shelf name")),
			huh.NewInput().
				Title("Script directory").
				Description("Directory whose subfolders become shelf categories.").
				Value(&cfg.Root).
				Validate(notEmpty("script directory")),
		),
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Maya connection").
				Options(
					huh.NewOption("Command port (TCP)", string(shelf.HostPort)),
					huh.NewOption("WebSocket bridge", string(shelf.HostBridge)),
					huh.NewOption("In-memory (dry run)", string(shelf.HostMemory)),
				).
				Value(&hostKind),
			huh.NewInput().
				Title("Address").
				Description("host:port for the command port, ws:// URL for the bridge.").
				Value(&cfg.Host.Address),
		),
		huh.NewGroup(
			huh.NewConfirm().
				Title("Create config and directories?").
				Value(&confirmed),
		),
	)

	if err := form.Run(); err != nil {
		return fmt.Errorf("init wizard: %w", err)
	}

	if !confirmed {
		return errors.New("init cancelled")
	}

	cfg.Host.Kind = shelf.HostKind(hostKind)
	if cfg.Host.Kind == shelf.HostMemory {
		cfg.Host.Address = ""
	}

	if err := scaffold(cfg, *configPath); err != nil {
		return err
	}

	fmt.Printf("wrote %s and created %s/\n", *configPath, cfg.Root)
	fmt.Println("drop category folders with .py/.mel scripts under it, then run 'mayashelf build'")

	return nil
}

func notEmpty(what string) func(string) error {
	return func(s string) error {
		if s == "" {
			return fmt.Errorf("%s is required", what)
		}

		return nil
	}
}

// scaffold writes the config file and creates the shelf root with its icons
// directory.
func scaffold(cfg shelf.Config, configPath string) error {
	dir := shelfdir.New(cfg.Root)

	if err := os.MkdirAll(dir.Root(), 0o750); err != nil {
		return fmt.Errorf("create shelf root: %w", err)
	}

	if err := shelfdir.EnsureIcons(dir); err != nil {
		return err
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("encode config: %w", err)
	}

	if err := os.WriteFile(configPath, data, 0o600); err != nil {
		return fmt.Errorf("write config: %w", err)
	}

	return nil
}
