package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"os"

	"github.com/joho/godotenv"

	"github.com/mayakit/shelf/pkg/gitsync"
	"github.com/mayakit/shelf/pkg/ops"
	"github.com/mayakit/shelf/pkg/preview"
	"github.com/mayakit/shelf/pkg/shelf"
	"github.com/mayakit/shelf/pkg/shelfdir"
	"github.com/mayakit/shelf/pkg/uihost"
	"github.com/mayakit/shelf/pkg/uihost/maya"
)

const version = "0.1.0"

// loadEnv loads the given .env file if it exists. A missing file is fine,
// any other read error is not.
func loadEnv(path string) error {
	if err := godotenv.Load(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}

		return fmt.Errorf("load %s: %w", path, err)
	}

	return nil
}

func loadConfig(configPath, envFile string) (shelf.Config, error) {
	if err := loadEnv(envFile); err != nil {
		return shelf.Config{}, err
	}

	cfg, err := shelf.LoadConfig(configPath)
	if err != nil {
		return shelf.Config{}, err
	}

	if err := cfg.Validate(); err != nil {
		return shelf.Config{}, err
	}

	return cfg, nil
}

// connectHost dials the Maya UI host described by the config. The returned
// close function is a no-op for the in-memory host.
func connectHost(ctx context.Context, cfg shelf.Config) (uihost.Host, func() error, error) {
	switch cfg.Host.Kind {
	case shelf.HostMemory, "":
		return uihost.NewRecorder(), func() error { return nil }, nil
	case shelf.HostPort:
		sender, err := maya.DialPort(ctx, cfg.Host.Address)
		if err != nil {
			return nil, nil, err
		}

		return maya.NewHost(sender), sender.Close, nil
	case shelf.HostBridge:
		sender, err := maya.DialBridge(ctx, cfg.Host.Address)
		if err != nil {
			return nil, nil, err
		}

		return maya.NewHost(sender), sender.Close, nil
	default:
		return nil, nil, fmt.Errorf("unknown host kind %q", cfg.Host.Kind)
	}
}

func runBuild(args []string) error {
	fs := flag.NewFlagSet("build", flag.ExitOnError)
	configPath, envFile := commonFlags(fs)

	if err := fs.Parse(args); err != nil {
		return err
	}

	cfg, err := loadConfig(*configPath, *envFile)
	if err != nil {
		return err
	}

	ctx, cancel := signalContext()
	defer cancel()

	host, closeHost, err := connectHost(ctx, cfg)
	if err != nil {
		return err
	}
	defer closeHost() //nolint:errcheck

	b, err := shelf.NewBuilder(cfg.Spec(), host)
	if err != nil {
		return err
	}

	if err := b.Build(); err != nil {
		return err
	}

	if err := shelf.WriteManifest(cfg.Spec(), b.Categories()); err != nil {
		return err
	}

	fmt.Printf("built shelf %q with %d categories\n", cfg.Name, len(b.Categories()))

	return nil
}

func runDiff(args []string) error {
	fs := flag.NewFlagSet("diff", flag.ExitOnError)
	configPath, envFile := commonFlags(fs)

	if err := fs.Parse(args); err != nil {
		return err
	}

	cfg, err := loadConfig(*configPath, *envFile)
	if err != nil {
		return err
	}

	cats, err := shelf.Discover(shelfdir.New(cfg.Root))
	if err != nil {
		return err
	}

	saved, err := shelf.ReadManifest(cfg.Spec())
	if err != nil {
		return err
	}

	diff, err := shelf.DiffManifest(saved, shelf.Manifest(cfg.Spec(), cats))
	if err != nil {
		return err
	}

	if diff == "" {
		fmt.Println("shelf is up to date")

		return nil
	}

	fmt.Print(diff)

	return nil
}

func runPreview(args []string) error {
	fs := flag.NewFlagSet("preview", flag.ExitOnError)
	configPath, envFile := commonFlags(fs)

	if err := fs.Parse(args); err != nil {
		return err
	}

	cfg, err := loadConfig(*configPath, *envFile)
	if err != nil {
		return err
	}

	cats, err := shelf.Discover(shelfdir.New(cfg.Root))
	if err != nil {
		return err
	}

	return preview.Run(cfg.Spec(), cats)
}

func runSync(args []string) error {
	fs := flag.NewFlagSet("sync", flag.ExitOnError)
	configPath, envFile := commonFlags(fs)
	rebuild := fs.Bool("rebuild", false, "rebuild the shelf after pulling")

	if err := fs.Parse(args); err != nil {
		return err
	}

	cfg, err := loadConfig(*configPath, *envFile)
	if err != nil {
		return err
	}

	repo, err := gitsync.Open(cfg.Root)
	if err != nil {
		return err
	}

	clean, err := repo.IsClean()
	if err != nil {
		return err
	}

	if !clean {
		fmt.Fprintln(os.Stderr, "warning: shelf repository has local changes")
	}

	ctx, cancel := signalContext()
	defer cancel()

	updated, err := repo.Pull(ctx)
	if err != nil {
		return err
	}

	branch, hash, err := repo.Head()
	if err != nil {
		return err
	}

	if updated {
		fmt.Printf("updated %s to %s\n", branch, hash[:8])
	} else {
		fmt.Printf("%s already up to date at %s\n", branch, hash[:8])
	}

	if updated && *rebuild {
		return runBuild([]string{"-config", *configPath, "-env", *envFile})
	}

	return nil
}

func runMCP(args []string) error {
	fs := flag.NewFlagSet("mcp", flag.ExitOnError)
	configPath, envFile := commonFlags(fs)

	if err := fs.Parse(args); err != nil {
		return err
	}

	cfg, err := loadConfig(*configPath, *envFile)
	if err != nil {
		return err
	}

	ctx, cancel := signalContext()
	defer cancel()

	host, closeHost, err := connectHost(ctx, cfg)
	if err != nil {
		return err
	}
	defer closeHost() //nolint:errcheck

	b, err := shelf.NewBuilder(cfg.Spec(), host)
	if err != nil {
		return err
	}

	srv := ops.NewMCPServer("mayashelf", version)
	srv.Register(b.Ops())

	return srv.Serve(ctx, os.Stdin, os.Stdout)
}
