package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"travel-agent-service/internal/interface/httpapi"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"
)

func serveCmd() *cobra.Command {
	var port string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the itinerary pipeline over HTTP",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, log, err := loadConfig()
			if err != nil {
				return err
			}
			if port != "" {
				cfg.Port = port
			}
			log.Info("Starting Travel Agent Service", "version", cfg.AppVersion)

			if cfg.LogLevel != "debug" {
				gin.SetMode(gin.ReleaseMode)
			}

			// Set up context with cancellation
			ctx, cancel := context.WithCancel(context.Background())
			defer cancel()

			a, err := newApp(ctx, cfg, log, prometheus.DefaultRegisterer)
			if err != nil {
				log.Sync()
				return err
			}

			api := httpapi.NewServer(a.pipeline, a.history, a.exports, promhttp.Handler(), cfg.CORSOrigins, log)

			server := &http.Server{
				Addr:         ":" + cfg.Port,
				Handler:      api.Handler(),
				ReadTimeout:  cfg.ReadTimeout,
				WriteTimeout: cfg.WriteTimeout,
			}

			// Start HTTP server in a goroutine
			serverErr := make(chan error, 1)
			go func() {
				log.Info("Starting HTTP server", "port", cfg.Port)
				if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
					serverErr <- err
				}
			}()

			// Wait for interrupt signal
			sigChan := make(chan os.Signal, 1)
			signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
			select {
			case sig := <-sigChan:
				log.Info("Received signal", "signal", sig)
			case err = <-serverErr:
				log.Error("HTTP server error", "error", err)
			}

			// Graceful shutdown
			shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer shutdownCancel()

			if shutdownErr := server.Shutdown(shutdownCtx); shutdownErr != nil {
				log.Error("HTTP server shutdown error", "error", shutdownErr)
			}

			cancel()

			log.Info("Travel Agent Service stopped")
			a.Close(shutdownCtx)
			return err
		},
	}

	cmd.Flags().StringVar(&port, "port", "", "listen port (overrides PORT)")

	return cmd
}
