package cli

import (
	"fmt"

	"listpad/internal/catalog"
	"listpad/internal/export"

	"github.com/spf13/cobra"
)

func newExportCmd(configPath *string) *cobra.Command {
	var out string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write the catalog to an Excel workbook",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, logger, closer, err := setup(*configPath, "export")
			if err != nil {
				return err
			}
			if closer != nil {
				defer closer.Close()
			}

			if out != "" {
				cfg.Exports.Path = out
			}

			store := catalog.NewStore(cfg.Storage.Path, &logger)
			if err := store.Load(); err != nil {
				return err
			}

			filePath, err := export.ToExcel(cfg.Exports.Path, store.Listings(), &logger)
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Exported %d listing(s) to %s.\n", store.Len(), filePath)
			return nil
		},
	}

	cmd.Flags().StringVar(&out, "out", "", "export directory (overrides config)")
	return cmd
}
