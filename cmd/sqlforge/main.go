// Package main provides the CLI for sqlforge, a generator of SQL Server,
// MySQL and PostgreSQL scripts from a JSON or YAML project description.
//
// Usage:
//
//	sqlforge init                      # Write sqlforge.yaml and a starter project.json
//	sqlforge generate project.json     # Print the script for the project
//	sqlforge validate project.json     # Check tables and entered rows
//	sqlforge sample project.json       # Fill tables with sample rows
//	sqlforge dialects                  # List dialects and type mappings
//	sqlforge project save|list|show    # Manage stored projects
//	sqlforge history list|show|clear   # Browse recently generated scripts
package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/hlop3z/sqlforge/internal/alerr"
	"github.com/hlop3z/sqlforge/internal/cli"
)

// version is set via ldflags during build: -ldflags="-X main.version=v1.0.0"
var version = "dev"

// errSilentExit ends the process with status 1 after the command already
// reported the failure.
var errSilentExit = errors.New("exit status 1")

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "sqlforge",
		Short:         "Multi-dialect SQL script generator",
		Long:          `sqlforge turns a table description into CREATE TABLE statements, CRUD procedures and bulk INSERTs for SQL Server, MySQL and PostgreSQL.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			slog.SetDefault(newLogger(os.Stderr, verbose))
			if noColor {
				cli.SetMode(cli.ModePlain)
			}
		},
	}

	pf := rootCmd.PersistentFlags()
	pf.StringVarP(&configFile, "config", "c", DefaultConfigFile, "Path to config file")
	pf.StringVarP(&dialectFlag, "dialect", "d", "", "Target dialect (sqlserver, mysql, postgresql)")
	pf.StringVar(&storeFlag, "store", "", "Path to the project and history store")
	pf.BoolVarP(&verbose, "verbose", "v", false, "Log debug output to stderr")
	pf.BoolVar(&noColor, "no-color", false, "Disable colored output")

	rootCmd.AddCommand(
		initCmd(),
		generateCmd(),
		validateCmd(),
		sampleCmd(),
		dialectsCmd(),
		projectCmd(),
		historyCmd(),
	)
	return rootCmd
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := newRootCmd().ExecuteContext(ctx)
	stop()
	if err != nil {
		if !errors.Is(err, errSilentExit) {
			if code := alerr.GetErrorCode(err); code != "" {
				slog.Debug("command failed", "code", code, "category", code.Category())
			}
			fmt.Fprint(os.Stderr, cli.FormatError(err))
		}
		os.Exit(1)
	}
}
