package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/starterkart/starterkart-backend/internal/models"
	"github.com/starterkart/starterkart-backend/pkg/slot"
)

func newImportCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "import [file]",
		Short: "Replace the stored content document",
		Long: `Import parses a JSON document (or YAML, for .yaml/.yml files) and writes it to the content slot.
Nothing is written if the file does not parse. A running server keeps its in-memory copy until restarted.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := args[0]
			raw, err := os.ReadFile(path)
			if err != nil {
				return fmt.Errorf("failed to read %s: %w", path, err)
			}

			var doc models.AppData
			switch strings.ToLower(filepath.Ext(path)) {
			case ".yaml", ".yml":
				doc, err = models.ParseSeed(raw)
			default:
				doc, err = models.DecodeDocument(raw)
			}
			if err != nil {
				return fmt.Errorf("%s is not a valid content document: %w", path, err)
			}

			data, err := models.EncodeDocument(doc)
			if err != nil {
				return err
			}
			return a.withStore(cmd.Context(), func(store slot.Store) error {
				if err := store.Set(cmd.Context(), slot.ContentKey, data); err != nil {
					return fmt.Errorf("failed to write content slot: %w", err)
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Imported %d services, %d projects, %d plans, %d testimonials, %d inquiries\n",
					len(doc.Services), len(doc.Projects), len(doc.Plans), len(doc.Testimonials), len(doc.Inquiries))
				return nil
			})
		},
	}
}
