package cmd

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/nfrund/gamma/internal/app"
	"github.com/nfrund/gamma/internal/config"
	"github.com/nfrund/gamma/internal/logging"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the landing site HTTP server",
	Long:  `Serve reads configuration from .env and the environment, then serves the site until interrupted.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.New()
		if err != nil {
			return err
		}
		logging.New(cfg.GetLogFormat(), cfg.GetLogLevel())

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		return app.Serve(ctx, cfg)
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
}
