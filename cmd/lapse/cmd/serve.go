package cmd

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/psantana5/lapse/internal/httpapi"
	"github.com/psantana5/lapse/pkg/stopwatch"
	"github.com/spf13/cobra"
)

var listenAddr string

// serveCmd represents the serve command
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Expose the stopwatch over HTTP",
	Long: `Runs an HTTP server around a stopwatch engine:

  GET  /api/status    current state as JSON
  GET  /api/laps      lap log as JSON
  GET  /api/laps.csv  lap log as CSV
  POST /api/start     start (409 if already running)
  POST /api/stop      stop (409 if not running)
  POST /api/reset     reset
  POST /api/lap       record a lap (optional ?label=)
  GET  /metrics       Prometheus metrics

The server owns the engine; all mutation goes through the control
routes. SIGINT/SIGTERM shut it down gracefully.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		addr := listenAddr
		if addr == "" {
			addr = GetListenAddr()
		}

		logger := NewLogger()
		sw := stopwatch.New()
		server := httpapi.NewServer(addr, sw, logger)

		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

		errChan := make(chan error, 1)
		go func() {
			errChan <- server.ListenAndServe()
		}()

		select {
		case err := <-errChan:
			if err != nil && err != http.ErrServerClosed {
				return err
			}
		case sig := <-sigChan:
			logger.Info("shutting down", map[string]interface{}{"signal": sig.String()})
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			if err := server.Shutdown(ctx); err != nil {
				return err
			}
		}

		logger.Info("server stopped")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().StringVar(&listenAddr, "listen", "", "listen address (default from config or :9090)")
}
