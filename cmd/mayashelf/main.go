// Command mayashelf builds Maya shelves from a directory tree of Python and
// MEL scripts: subdirectories become button categories, scripts become
// buttons, and nested tool folders become popup menus.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
)

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}

	cmd := os.Args[1]
	args := os.Args[2:]

	var err error

	switch cmd {
	case "init":
		err = runInit(args)
	case "build":
		err = runBuild(args)
	case "diff":
		err = runDiff(args)
	case "preview":
		err = runPreview(args)
	case "sync":
		err = runSync(args)
	case "mcp":
		err = runMCP(args)
	case "-h", "--help", "help":
		usage()
	default:
		fmt.Fprintf(os.Stderr, "unknown command %q\n\n", cmd)
		usage()
		os.Exit(2)
	}

	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func usage() {
	fmt.Fprint(os.Stderr, `Usage: mayashelf <command> [flags]

Commands:
  init     Create a shelf config and directory skeleton interactively
  build    Scan the shelf directory and (re)build the live shelf in Maya
  diff     Show what a rebuild would change since the last build
  preview  Browse the discovered shelf in the terminal
  sync     Pull the shelf script repository from its git upstream
  mcp      Serve shelf operations over MCP on stdio

Run 'mayashelf <command> -h' for command flags.
`)
}

// commonFlags registers the flags every command shares.
func commonFlags(fs *flag.FlagSet) (configPath, envFile *string) {
	configPath = fs.String("config", "shelf.yaml", "path to shelf configuration file")
	envFile = fs.String("env", ".env", "path to .env file (ignored if missing)")

	return configPath, envFile
}

// signalContext returns a context cancelled on SIGINT/SIGTERM.
func signalContext() (context.Context, context.CancelFunc) {
	return signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
}
