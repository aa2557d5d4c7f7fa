package main

import (
	"context"
	"encoding/json"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/tair/petshop-backend/kafka"
	"github.com/tair/petshop-backend/pkg/logger"
)

// The notifier consumes purchase lifecycle events and logs them. It is
// the integration point for e-mail or webhook delivery.
func main() {
	serviceName := getEnv("OTEL_SERVICE_NAME", "petshop-notifier")
	isDevelopment := getEnv("ENVIRONMENT", "development") == "development"
	logger.Init(serviceName, isDevelopment)

	logLevel := getEnv("LOG_LEVEL", "info")
	logger.SetLevel(logLevel)

	brokers := strings.Split(getEnv("KAFKA_BROKERS", "localhost:9092"), ",")
	groupID := getEnv("KAFKA_GROUP_ID", "petshop-notifier")
	topics := []string{kafka.TopicPurchaseCompleted, kafka.TopicPurchaseCancelled}

	consumer, err := kafka.NewConsumer(brokers, groupID, topics)
	if err != nil {
		logger.Logger.Fatal().Err(err).Msg("Failed to create Kafka consumer")
	}
	defer consumer.Close()

	consumer.RegisterHandler(kafka.EventTypePurchaseCompleted, handlePurchaseCompleted)
	consumer.RegisterHandler(kafka.EventTypePurchaseCancelled, handlePurchaseCancelled)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if err := consumer.Start(ctx); err != nil {
		logger.Logger.Fatal().Err(err).Msg("Failed to start Kafka consumer")
	}

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Logger.Info().Msg("Shutting down notifier...")
}

func handlePurchaseCompleted(ctx context.Context, payload []byte) error {
	var event kafka.PurchaseCompletedEvent
	if err := json.Unmarshal(payload, &event); err != nil {
		return err
	}

	logger.Info(ctx).
		Str("event_id", event.EventID).
		Str("reference", event.Reference).
		Uint("purchase_id", event.PurchaseID).
		Uint("client_id", event.ClientID).
		Float64("price", event.Price).
		Int("items", len(event.Items)).
		Msg("Purchase confirmed, notifying client")

	return nil
}

func handlePurchaseCancelled(ctx context.Context, payload []byte) error {
	var event kafka.PurchaseCancelledEvent
	if err := json.Unmarshal(payload, &event); err != nil {
		return err
	}

	logger.Info(ctx).
		Str("event_id", event.EventID).
		Str("reference", event.Reference).
		Uint("purchase_id", event.PurchaseID).
		Uint("client_id", event.ClientID).
		Msg("Purchase cancelled, notifying client")

	return nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
