package cli

import (
	"fmt"

	"listpad/internal/backup"

	"github.com/spf13/cobra"
)

func newBackupCmd(configPath *string) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "backup",
		Short: "Back up the catalog file and prune old backups",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, logger, closer, err := setup(*configPath, "backup")
			if err != nil {
				return err
			}
			if closer != nil {
				defer closer.Close()
			}

			svc := backup.NewService(cfg.Storage.Path, cfg.Backup, &logger)
			backupPath, err := svc.PerformBackup()
			if err != nil {
				return err
			}
			svc.CleanupOldBackups()

			if backupPath == "" {
				fmt.Fprintln(cmd.OutOrStdout(), "No catalog file yet, nothing to back up.")
				return nil
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Backup written to %s.\n", backupPath)
			return nil
		},
	}

	return cmd
}
