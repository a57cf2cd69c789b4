package cli

import (
	"io"

	"listpad/internal/config"
	"listpad/internal/logging"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

func NewRootCmd() *cobra.Command {
	var configPath string

	cmd := &cobra.Command{
		Use:   "listpad",
		Short: "Local editor for ASIN-keyed product listings stored in a JSON file",
		Long: `Listpad keeps a catalog of mock product listings in a single JSON file
and lets you view and edit them from the terminal, one listing at a time.`,
		SilenceUsage: true,
	}

	cmd.PersistentFlags().StringVar(&configPath, "config", "configs/config.yaml", "path to the config file")

	cmd.AddCommand(newEditCmd(&configPath))
	cmd.AddCommand(newListCmd(&configPath))
	cmd.AddCommand(newExportCmd(&configPath))
	cmd.AddCommand(newBackupCmd(&configPath))

	return cmd
}

// setup loads the config and builds the logger shared by all subcommands.
func setup(configPath, component string) (*config.Config, zerolog.Logger, io.Closer, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, zerolog.Logger{}, nil, err
	}

	base, closer, err := logging.New(cfg.Logging, cfg.App)
	if err != nil {
		return nil, zerolog.Logger{}, nil, err
	}

	logger := base.With().Str("component", component).Logger()
	return cfg, logger, closer, nil
}
