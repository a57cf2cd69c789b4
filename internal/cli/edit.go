package cli

import (
	"listpad/internal/backup"
	"listpad/internal/catalog"
	"listpad/internal/editor"

	"github.com/spf13/cobra"
)

func newEditCmd(configPath *string) *cobra.Command {
	var file string

	cmd := &cobra.Command{
		Use:   "edit",
		Short: "Interactively edit one listing in the catalog",
		Long: `Prompts for an ASIN, creates the listing if it does not exist yet, and
offers field-by-field editing. Changes are written back to the catalog
file only when the session finishes with "done".`,
		Example: `  # Edit the default catalog
  listpad edit

  # Edit a specific catalog file
  listpad edit --file /tmp/listings.json`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, logger, closer, err := setup(*configPath, "edit")
			if err != nil {
				return err
			}
			if closer != nil {
				defer closer.Close()
			}

			if file != "" {
				cfg.Storage.Path = file
			}

			if cfg.Backup.Enabled {
				svc := backup.NewService(cfg.Storage.Path, cfg.Backup, &logger)
				if _, err := svc.PerformBackup(); err != nil {
					logger.Warn().Err(err).Msg("pre-edit backup failed")
				}
				svc.CleanupOldBackups()
			}

			store := catalog.NewStore(cfg.Storage.Path, &logger)
			if err := store.Load(); err != nil {
				return err
			}

			session := editor.New(store, cmd.InOrStdin(), cmd.OutOrStdout(), &logger)
			return session.Run()
		},
	}

	cmd.Flags().StringVar(&file, "file", "", "catalog file to edit (overrides config)")
	return cmd
}
