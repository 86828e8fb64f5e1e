package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/spf13/cobra"

	"codeberg.org/snonux/fenglish/internal/archive"
	"codeberg.org/snonux/fenglish/internal/cli"
	"codeberg.org/snonux/fenglish/internal/logger"
	"codeberg.org/snonux/fenglish/internal/processor"
)

func main() {
	// Create flags instance
	flags := cli.NewFlags()

	// Create root command
	rootCmd := cli.CreateRootCommand(flags)
	rootCmd.AddCommand(cli.CreateTablesCommand(), cli.CreateLookupCommand(flags))

	// Set up command initialization
	cobra.OnInitialize(func() {
		cli.InitConfig(flags.CfgFile)
	})

	// Set the run function
	rootCmd.RunE = func(cmd *cobra.Command, args []string) error {
		return runCommand(cmd, args, flags)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Execute command
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		stop()
		os.Exit(1)
	}
}

func runCommand(cmd *cobra.Command, args []string, flags *cli.Flags) error {
	if err := cli.ApplyConfig(flags); err != nil {
		return err
	}

	log := logger.New(flags.LogLevel)
	defer log.Sync()

	// Handle --archive flag
	if flags.Archive {
		archived, err := archive.ArchiveExports(flags.OutputDir)
		if err != nil {
			return fmt.Errorf("failed to archive exports: %w", err)
		}
		fmt.Fprintf(os.Stderr, "Archived exports to %s\n", archived)
		return nil
	}

	proc := processor.NewProcessor(flags, log, cmd.OutOrStdout())

	switch {
	case flags.Interactive:
		// Ctrl-C ends the session like "exit" does
		if err := proc.RunInteractive(cmd.Context(), cmd.InOrStdin()); err != nil && !errors.Is(err, context.Canceled) {
			return err
		}
	case flags.BatchFile != "":
		if err := proc.ProcessBatch(); err != nil {
			return err
		}
	case len(args) > 0:
		if _, err := proc.ProcessPhrase(strings.Join(args, " "), ""); err != nil {
			return err
		}
	default:
		return cmd.Help()
	}

	// Write the export file if requested
	path, err := proc.Export()
	if err != nil {
		return err
	}
	if path != "" {
		fmt.Fprintf(os.Stderr, "Exported %d phrase(s) to %s\n", len(proc.Results()), path)
	}

	return nil
}
