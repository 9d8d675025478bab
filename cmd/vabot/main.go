// ABOUTME: CLI entrypoint for vabot: the Discord bot server plus local roll and generation commands.
// ABOUTME: Loads .env files, parses the environment, and builds a zap logger before any command runs.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var version = "dev"

// app carries state shared by every subcommand.
type app struct {
	verbose bool
	cfg     Config
	logger  *zap.Logger
}

// newLogger builds the process logger. Tests replace it.
var newLogger = buildLogger

func main() {
	if err := loadDotEnvAuto(); err != nil {
		fmt.Fprintf(os.Stderr, "warning: %v\n", err)
	}

	root := newRootCmd(os.Stdout, os.Stderr)
	if err := root.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func buildLogger(verbose bool) (*zap.Logger, error) {
	config := zap.NewProductionConfig()
	if verbose {
		config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}
	return config.Build()
}

func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:   "vabot",
		Short: "VALORANT party bot: agent rolls, party tools, and AI tactics",
		Long: `vabot runs a Discord bot for VALORANT parties.

It rolls agent compositions, picks maps, hands out punishments and roles,
splits teams, and asks an LLM for one-round tactics or punishment games.

Configuration comes from the environment and .env files.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			a.cfg = cfg

			logger, err := newLogger(a.verbose)
			if err != nil {
				return fmt.Errorf("failed to initialize logger: %w", err)
			}
			a.logger = logger
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if a.logger != nil {
				_ = a.logger.Sync()
			}
		},
	}
	root.SetOut(stdout)
	root.SetErr(stderr)
	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "enable debug logging")

	root.AddCommand(
		newServeCmd(a),
		newRollCmd(a),
		newGenCmd(a),
		newVersionCmd(),
	)
	return root
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := fmt.Fprintf(cmd.OutOrStdout(), "vabot %s\n", version)
			return err
		},
	}
}
