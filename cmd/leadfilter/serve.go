package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"leadfilter-service/internal/infrastructure/config"
	"leadfilter-service/internal/interface/httpapi"
	leadRepo "leadfilter-service/internal/interface/repository"
	"leadfilter-service/internal/usecase"
	"leadfilter-service/pkg/logger"
	"leadfilter-service/pkg/metrics"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the lead filtering HTTP API",
	Long: `Start an HTTP server exposing POST /api/process-leads?input=...&output=...
plus /health and /metrics. The server stops gracefully on SIGINT or SIGTERM.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		log := logger.NewLogger()
		log.Info("Starting Lead Filter Service")

		cfg, err := config.LoadConfig()
		if err != nil {
			log.Error("Failed to load config", "error", err)
			return err
		}

		registry := prometheus.NewRegistry()
		m := metrics.NewMetrics(cfg.MetricsNamespace, registry)
		processor := usecase.NewLeadProcessor(leadRepo.NewJSONLeadRepository(log), m, log)
		srv := httpapi.NewServer(cfg, processor, registry, log)

		errCh := make(chan error, 1)
		go func() {
			errCh <- srv.Run()
		}()

		// Wait for interrupt signal
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

		select {
		case err := <-errCh:
			return err
		case sig := <-sigChan:
			log.Info("Received signal", "signal", sig)
		}

		// Graceful shutdown
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			log.Error("HTTP server shutdown error", "error", err)
			return err
		}

		log.Info("Lead Filter Service stopped")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
}
