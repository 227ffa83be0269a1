package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"saturn-server/configs"
	httpEngine "saturn-server/internal/app/http"
	"saturn-server/internal/catalog"
	"saturn-server/internal/repositories"
)

func main() {
	var configPath string
	flag.StringVar(&configPath, "c", "", "Path to config file (short)")
	flag.StringVar(&configPath, "config", "", "Path to config file (long)")
	flag.Parse()

	// Initialize configuration and the process logger.
	configs.Init(&configPath)
	defer configs.Logger.Sync()

	configs.Logger.Info("Configuration loaded.",
		zap.String("configPath", configPath),
	)

	// Load the stage catalog. A broken catalog means the game cannot run,
	// so refuse to start.
	cat, err := catalog.Load(configs.Configs.Game.CatalogPath)
	if err != nil {
		configs.Logger.Fatal("Failed to load puzzle catalog", zap.Error(err))
	}
	configs.Logger.Info("Puzzle catalog loaded",
		zap.Int("total_stages", cat.TotalStages()),
	)

	// Initialize storage clients (Postgres, S3).
	repositories.Init()

	// Create HTTP server and run it in a separate goroutine.
	httpServer := httpEngine.NewServer(cat)
	go func() {
		if err := httpServer.Start(); err != nil {
			// http.ErrServerClosed is returned on normal shutdown.
			if err.Error() != "http: Server closed" {
				configs.Logger.Fatal("HTTP server error", zap.Error(err))
			}
		}
	}()

	// Wait for a shutdown signal (SIGINT, SIGTERM).
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit
	configs.Logger.Info("Shutdown signal received")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := httpServer.Shutdown(ctx); err != nil {
		configs.Logger.Error("HTTP server shutdown error", zap.Error(err))
	} else {
		configs.Logger.Info("HTTP server shutdown gracefully")
	}

	configs.Logger.Info("Server exited")
}
