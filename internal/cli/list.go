package cli

import (
	"fmt"
	"text/tabwriter"

	"listpad/internal/catalog"

	"github.com/spf13/cobra"
)

func newListCmd(configPath *string) *cobra.Command {
	var file string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "Print every listing in the catalog",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, logger, closer, err := setup(*configPath, "list")
			if err != nil {
				return err
			}
			if closer != nil {
				defer closer.Close()
			}

			if file != "" {
				cfg.Storage.Path = file
			}

			store := catalog.NewStore(cfg.Storage.Path, &logger)
			if err := store.Load(); err != nil {
				return err
			}

			listings := store.Listings()
			if len(listings) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "The catalog is empty.")
				return nil
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "ASIN\tTITLE\tPRICE\tQTY")
			for _, listing := range listings {
				fmt.Fprintf(w, "%s\t%s\t%.2f\t%d\n", listing.ASIN, listing.Title, listing.Price, listing.Quantity)
			}
			return w.Flush()
		},
	}

	cmd.Flags().StringVar(&file, "file", "", "catalog file to read (overrides config)")
	return cmd
}
