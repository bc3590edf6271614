package cli

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/heartmarshall/numcalc-backend/internal/app"
	"github.com/heartmarshall/numcalc-backend/internal/config"
)

func newServeCmd(root *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API server",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			path := root.cfgPath
			if path == "" {
				path = os.Getenv("CONFIG_PATH")
			}
			cfg, err := config.LoadFrom(path)
			if err != nil {
				return err
			}
			logger := app.NewLogger(cfg.Log)
			return app.Run(cmd.Context(), cfg, logger)
		},
	}
}
