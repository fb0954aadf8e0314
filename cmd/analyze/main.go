package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"review-insights-go/internal/config"
	"review-insights-go/internal/logger"
	"review-insights-go/internal/pipeline"
)

func main() {
	_ = godotenv.Load() // loads .env

	log := logger.New()
	log.WithField("service", "review-insights-go").Info("starting review analysis")

	cfg, err := config.Load()
	if err != nil {
		log.WithError(err).Fatal("failed to load configuration")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	stats, err := pipeline.Run(ctx, cfg)
	if err != nil {
		log.WithError(err).WithFields(map[string]interface{}{
			"processed": stats.Processed,
			"skipped":   stats.Skipped,
		}).Fatal("analysis failed")
	}

	log.WithFields(map[string]interface{}{
		"processed":   stats.Processed,
		"skipped":     stats.Skipped,
		"capped":      stats.Capped,
		"books":       stats.Books,
		"duration_ms": stats.Elapsed.Milliseconds(),
	}).Info("analysis complete")
}
