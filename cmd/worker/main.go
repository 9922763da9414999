package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"parkex/infra/postgres"
	"parkex/infra/rabbitmq"
	"parkex/internal/consumers"
	"parkex/pkg/config"
	"parkex/pkg/events"
)

func main() {
	zapConfig := zap.NewDevelopmentConfig()
	zapConfig.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	logger, _ := zapConfig.Build()
	zap.ReplaceGlobals(logger)
	defer logger.Sync()

	zap.L().Info("ParkEx Worker Service starting...")

	appConfig := config.Read()
	zap.L().Info("Worker config loaded",
		zap.String("serviceName", appConfig.ServiceName),
		zap.String("rabbitMQURL", appConfig.RabbitMQURL),
	)

	if appConfig.RabbitMQURL == "" {
		zap.L().Fatal("RABBITMQ_URL is required for worker service")
	}

	pgRepository := postgres.NewPgRepository(
		appConfig.PostgresHost,
		appConfig.PostgresDatabase,
		appConfig.PostgresUsername,
		appConfig.PostgresPassword,
		appConfig.PostgresPort,
	)
	defer pgRepository.Close()

	bidHandler := consumers.NewBidEventHandler(
		pgRepository,
		zap.L(),
	)

	// Queue name convention: {service}.{domain}.{events}.{version}
	bidConsumerConfig := rabbitmq.ConsumerConfig{
		Exchange:      events.BidExchange,
		QueueName:     "parkex.bid.projection.v1",
		RoutingKeys:   []string{"bid.*.v1"},
		ServiceName:   appConfig.ServiceName,
		PrefetchCount: 10,
	}

	bidConsumer, err := rabbitmq.NewConsumer(appConfig.RabbitMQURL, bidConsumerConfig)
	if err != nil {
		zap.L().Fatal("Failed to create bid consumer", zap.Error(err))
	}
	defer bidConsumer.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	go func() {
		zap.L().Info("Starting bid event consumer...")
		if err := bidConsumer.Consume(ctx, bidHandler.HandleEvent); err != nil {
			if err != context.Canceled {
				zap.L().Error("Bid consumer error", zap.Error(err))
			}
		}
	}()

	go func() {
		ticker := time.NewTicker(30 * time.Second)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				stats := pgRepository.GetPoolStats()
				zap.L().Info("Connection pool stats",
					zap.Int("max_open", stats["max_open_connections"].(int)),
					zap.Int("open", stats["open_connections"].(int)),
					zap.Int("in_use", stats["in_use"].(int)),
					zap.Int("idle", stats["idle"].(int)),
					zap.Int64("wait_count", stats["wait_count"].(int64)),
					zap.Int64("wait_duration_ms", stats["wait_duration_ms"].(int64)),
				)
			}
		}
	}()

	zap.L().Info("Worker service started successfully. Waiting for events...",
		zap.String("bidExchange", events.BidExchange),
	)

	<-sigChan
	zap.L().Info("Shutdown signal received, stopping worker service...")
	cancel()

	zap.L().Info("Worker service stopped gracefully")
}
