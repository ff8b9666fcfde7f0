package main

import (
	"os"

	"expview/internal/cli"
	"expview/internal/cli/commands"
	"expview/internal/config"
	"expview/internal/ui"

	"github.com/spf13/cobra"
)

var version = "dev"

func main() {
	// Create root command
	rootCmd := &cobra.Command{
		Use:           "expview",
		Short:         "Browse test262 conformance expectations",
		Long:          `Fetch the WebKit test262 expectations file and explore failing tests by category, search term, and execution mode. Runs the interactive browser when no subcommand is given.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Create initial config with defaults
	cfg := config.New()

	// Create flags struct (will be populated by command flags)
	var flags cli.Flags

	// Create commands with dependencies
	cmds := commands.NewCommands(cfg)

	// Register all commands
	cmds.Register(rootCmd, &flags, cfg)

	// Execute root command
	if err := rootCmd.Execute(); err != nil {
		ui.NewFormatter(cfg, os.Stderr).PrintError(err)
		os.Exit(1)
	}
}
