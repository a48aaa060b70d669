package cmd

import (
	"os"
	"os/signal"
	"syscall"

	"docstore/internal/app/server"

	"github.com/spf13/cobra"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP server",
	Long: `Applies pending migrations, then serves the API until SIGINT or SIGTERM.
In-flight requests get SHUTDOWN_TIMEOUT to finish.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		app, err := server.New(ctx, cfg, log)
		if err != nil {
			return err
		}

		return app.Run(ctx)
	},
}
