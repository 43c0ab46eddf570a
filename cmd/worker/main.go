package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"hms/config"
	"hms/di"
	"hms/shared/logger"

	"github.com/rs/zerolog/log"
)

func main() {
	cfg := config.Get()

	logger.InitLogger(cfg)

	logger.SetLogLevel(cfg)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	consumer := di.InitializeWorker()
	consumer.Run(ctx)

	log.Info().Msg("Worker stopped.")
}
