package main

import (
	"catalog/infra/rabbitmq"
	"catalog/internal/consumers"
	"catalog/pkg/config"
	"catalog/pkg/events"
	"context"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func main() {
	zapConfig := zap.NewDevelopmentConfig()
	zapConfig.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	logger, _ := zapConfig.Build()
	zap.ReplaceGlobals(logger)
	defer logger.Sync()

	zap.L().Info("Catalog audit worker starting...")

	appConfig := config.Read()
	zap.L().Info("Worker config loaded",
		zap.String("serviceName", appConfig.ServiceName),
		zap.String("rabbitMQURL", appConfig.RabbitMQURL),
	)

	if appConfig.RabbitMQURL == "" {
		zap.L().Fatal("RABBITMQ_URL is required for the audit worker")
	}

	auditHandler := consumers.NewItemEventHandler(zap.L())

	// Consume every versioned item event the API publishes.
	itemConsumerConfig := rabbitmq.ConsumerConfig{
		Exchange:      events.ItemExchange,
		QueueName:     "catalog.item.all.v1", // {service}.{domain}.{events}.{version}
		RoutingKeys:   []string{"item.*.v1"},
		ServiceName:   appConfig.ServiceName,
		PrefetchCount: 10,
	}

	itemConsumer, err := rabbitmq.NewConsumer(appConfig.RabbitMQURL, itemConsumerConfig)
	if err != nil {
		zap.L().Fatal("Failed to create item consumer", zap.Error(err))
	}
	defer itemConsumer.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	go func() {
		zap.L().Info("Starting item event consumer...")
		if err := itemConsumer.Consume(ctx, auditHandler.HandleEvent); err != nil {
			if err != context.Canceled {
				zap.L().Error("Item consumer error", zap.Error(err))
			}
		}
	}()

	zap.L().Info("Audit worker started. Waiting for events...",
		zap.String("exchange", events.ItemExchange),
		zap.String("queue", itemConsumerConfig.QueueName),
	)

	<-sigChan
	zap.L().Info("Shutdown signal received, stopping audit worker...")
	cancel()

	zap.L().Info("Audit worker stopped gracefully")
}
