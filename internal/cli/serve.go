// Package cli provides the command-line interface for the roadmap application.
package cli

import (
	"context"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/1cbyc/mt5-risk-calculator/internal/server"
)

func newServeCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP server",
		Long: `Start the HTTP server exposing the simulation API and web form.

Endpoints:
  GET  /              web form
  POST /api/simulate  run a simulation (JSON)
  GET  /health        health check`,
		Example: `  roadmap serve
  roadmap serve --addr :9000`,
		RunE: func(cmd *cobra.Command, args []string) error {
			addr, _ := cmd.Flags().GetString("addr")
			if addr != "" {
				app.Config.Server.Addr = addr
			}

			ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			srv := server.New(app.Config, app.Logger)
			return srv.Run(ctx)
		},
	}

	cmd.Flags().String("addr", "", "listen address (default from config)")

	return cmd
}
