package main

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/starterkart/starterkart-backend/internal/models"
	"github.com/starterkart/starterkart-backend/pkg/slot"
)

func newExportCmd(a *app) *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Print the stored content document as JSON",
		Long:  `Export writes the content slot as indented JSON. An empty slot exports the default document.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.withStore(cmd.Context(), func(store slot.Store) error {
				data, err := store.Get(cmd.Context(), slot.ContentKey)
				switch {
				case errors.Is(err, slot.ErrSlotEmpty):
					a.logger.Warn("Content slot is empty, exporting the default document")
					if data, err = models.EncodeDocument(models.DefaultAppData()); err != nil {
						return err
					}
				case err != nil:
					return fmt.Errorf("failed to read content slot: %w", err)
				}

				var pretty bytes.Buffer
				if err := json.Indent(&pretty, data, "", "  "); err != nil {
					return fmt.Errorf("stored document is not valid JSON: %w", err)
				}
				pretty.WriteByte('\n')

				if output == "" || output == "-" {
					_, err := cmd.OutOrStdout().Write(pretty.Bytes())
					return err
				}
				if err := os.WriteFile(output, pretty.Bytes(), 0o600); err != nil {
					return fmt.Errorf("failed to write %s: %w", output, err)
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Content exported to %s\n", output)
				return nil
			})
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", "", "Write to a file instead of stdout")
	return cmd
}
