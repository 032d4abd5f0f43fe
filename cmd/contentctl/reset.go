package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/starterkart/starterkart-backend/internal/core"
	"github.com/starterkart/starterkart-backend/internal/models"
	"github.com/starterkart/starterkart-backend/pkg/slot"
)

func newResetCmd(a *app) *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "reset",
		Short: "Restore the default content document",
		Long:  `Reset discards every edit and inquiry and restores the default document. It requires --yes.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !yes {
				return fmt.Errorf("%w: pass --yes", core.ErrResetNotConfirmed)
			}
			return a.withStore(cmd.Context(), func(store slot.Store) error {
				ctx := cmd.Context()
				repo := core.NewContentRepository(store, a.logger)

				err := repo.Hydrate(ctx)
				if errors.Is(err, core.ErrMalformedDocument) {
					// The repository cannot load a broken slot, so overwrite it directly.
					a.logger.Warn("Stored document is malformed, overwriting it", zap.Error(err))
					data, err := models.EncodeDocument(models.DefaultAppData())
					if err != nil {
						return err
					}
					if err := store.Set(ctx, slot.ContentKey, data); err != nil {
						return fmt.Errorf("failed to write content slot: %w", err)
					}
					fmt.Fprintln(cmd.OutOrStdout(), "Content reset to defaults")
					return nil
				}
				if err != nil {
					return err
				}

				if err := repo.Reset(ctx, true); err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), "Content reset to defaults")
				return nil
			})
		},
	}
	cmd.Flags().BoolVar(&yes, "yes", false, "Confirm the reset")
	return cmd
}
