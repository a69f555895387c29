package cli

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/thenatx/nart/internal/config"
	"github.com/thenatx/nart/internal/system"
	"github.com/thenatx/nart/internal/webui/server"
)

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().StringP("addr", "a", "127.0.0.1:8787", "address to bind (host:port)")
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Bridge a terminal session over WebSocket",
	RunE: func(cmd *cobra.Command, args []string) error {
		addr, _ := cmd.Flags().GetString("addr")

		settings, err := config.Load()
		if err != nil {
			system.Logger.Warn("loading settings failed, using defaults", "err", err)
		}
		srv := server.New(addr, settings)

		// Handle Ctrl+C
		ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer cancel()

		// New sessions pick up settings edits without a restart.
		if err := config.Watch(ctx, srv.SetSettings); err != nil {
			system.Logger.Warn("settings watch unavailable", "err", err)
		}

		if err := srv.Start(ctx); err != nil {
			if errors.Is(err, http.ErrServerClosed) {
				return nil
			}
			return err
		}
		return nil
	},
}
