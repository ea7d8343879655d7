// Package main is the entry point for the biibii-cli application.
// It registers the migrate, babies and watch sub-commands and executes the
// command-line interface.
package main

import (
	"fmt"
	"log"
	"os"

	commands "github.com/pandamaske/biibii-sub002/cmd/biibii-cli/internal/commands"

	"github.com/spf13/cobra"
)

func main() {
	if err := run(); err != nil {
		log.Fatalf("Error: %v", err)
	}
}

func run() error {
	rootCmd := &cobra.Command{
		Use:   "biibii-cli",
		Short: "Baby tracker command-line companion",
		Long: `biibii-cli talks to a running biibii REST API.
It can migrate the database schema, remember the baby you are tracking and
watch that baby's live data from the terminal.

The server defaults to http://localhost:8080 and can be set with --server or
the BIIBII_SERVER environment variable.`,
	}

	commands.AddGlobalFlags(rootCmd)

	// Initialize all command groups BEFORE executing
	if err := initializeCommands(rootCmd); err != nil {
		return fmt.Errorf("failed to initialize commands: %w", err)
	}

	// Execute root command ONCE after all commands are registered
	if err := rootCmd.Execute(); err != nil {
		return fmt.Errorf("command execution failed: %w", err)
	}

	return nil
}

// initializeCommands registers all command groups with the root command.
func initializeCommands(rootCmd *cobra.Command) error {
	if err := commands.InitMigrateCommands(rootCmd); err != nil {
		return fmt.Errorf("failed to initialize migrate commands: %w", err)
	}

	if err := commands.InitBabyCommands(rootCmd); err != nil {
		return fmt.Errorf("failed to initialize baby commands: %w", err)
	}

	if err := commands.InitWatchCommands(rootCmd); err != nil {
		return fmt.Errorf("failed to initialize watch commands: %w", err)
	}

	return nil
}

// init sets up any necessary initialization before main runs.
func init() {
	// Set log flags for better error messages
	log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)

	// Ensure proper exit codes on errors
	log.SetOutput(os.Stderr)
}
