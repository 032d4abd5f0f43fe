package main

import (
	"context"
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/starterkart/starterkart-backend/internal/config"
	"github.com/starterkart/starterkart-backend/internal/db"
	"github.com/starterkart/starterkart-backend/pkg/slot"
)

// app carries the state shared by every subcommand.
type app struct {
	verbose   bool
	logger    *zap.Logger
	openStore func(ctx context.Context) (slot.Store, error) // Replaced in tests
}

func newRootCmd(a *app) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "contentctl",
		Short: "Maintain the StarterKart site content store",
		Long: `contentctl reads and writes the content and session slots used by the StarterKart server.
It uses the same SLOT_* environment configuration as the server.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if a.logger == nil {
				logger, err := newLogger(a.verbose)
				if err != nil {
					return err
				}
				a.logger = logger
			}
			if a.openStore == nil {
				a.openStore = a.openConfiguredStore
			}
			return nil
		},
	}
	rootCmd.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "Enable verbose logging")

	rootCmd.AddCommand(
		newExportCmd(a),
		newImportCmd(a),
		newResetCmd(a),
		newSessionCmd(a),
		newVersionCmd(),
	)
	return rootCmd
}

// newLogger logs to stderr. Only warnings and errors are shown unless verbose is set.
func newLogger(verbose bool) (*zap.Logger, error) {
	cfg := zap.NewDevelopmentConfig()
	cfg.OutputPaths = []string{"stderr"}
	if !verbose {
		cfg.Level = zap.NewAtomicLevelAt(zapcore.WarnLevel)
	}
	return cfg.Build()
}

func (a *app) openConfiguredStore(ctx context.Context) (slot.Store, error) {
	if os.Getenv("GIN_MODE") != "release" {
		// A missing .env file is normal outside development.
		_ = godotenv.Load()
	}
	appConfig, err := config.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}
	return db.OpenSlotStore(ctx, appConfig, a.logger)
}

// withStore opens the slot store for the duration of fn.
func (a *app) withStore(ctx context.Context, fn func(store slot.Store) error) error {
	store, err := a.openStore(ctx)
	if err != nil {
		return err
	}
	defer store.Close()
	return fn(store)
}
