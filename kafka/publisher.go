package kafka

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/IBM/sarama"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/trace"

	purchasedomain "github.com/tair/petshop-backend/internal/purchase/domain"
	"github.com/tair/petshop-backend/pkg/logger"
)

// Publisher wraps Kafka producer
type Publisher struct {
	producer sarama.SyncProducer
	brokers  []string
}

// NewPublisher creates a new Kafka publisher
func NewPublisher(brokers []string) (*Publisher, error) {
	config := sarama.NewConfig()
	config.Producer.Return.Successes = true
	config.Producer.Retry.Max = 3
	config.Producer.RequiredAcks = sarama.WaitForAll
	config.Producer.Compression = sarama.CompressionSnappy
	config.Producer.MaxMessageBytes = 1000000

	producer, err := sarama.NewSyncProducer(brokers, config)
	if err != nil {
		return nil, fmt.Errorf("failed to create Kafka producer: %w", err)
	}

	logger.Logger.Info().
		Strs("brokers", brokers).
		Msg("Kafka publisher initialized")

	return &Publisher{
		producer: producer,
		brokers:  brokers,
	}, nil
}

// PublishPurchaseCompleted publishes a purchase completed event with tracing
func (p *Publisher) PublishPurchaseCompleted(ctx context.Context, purchase *purchasedomain.Purchase) error {
	event := PurchaseCompletedEvent{
		EventID:    fmt.Sprintf("evt_%d", time.Now().UnixNano()),
		EventType:  EventTypePurchaseCompleted,
		PurchaseID: purchase.ID,
		Reference:  purchase.Reference,
		ClientID:   purchase.ClientID,
		Price:      purchase.Price,
		Timestamp:  time.Now(),
	}
	for _, item := range purchase.Items {
		event.Items = append(event.Items, PurchaseEventItem{
			InventoryID:     item.InventoryID,
			OrderedQuantity: item.OrderedQuantity,
		})
	}

	return p.publish(ctx, TopicPurchaseCompleted, event.EventType, event.EventID, purchase, event)
}

// PublishPurchaseCancelled publishes a purchase cancelled event with tracing
func (p *Publisher) PublishPurchaseCancelled(ctx context.Context, purchase *purchasedomain.Purchase) error {
	event := PurchaseCancelledEvent{
		EventID:    fmt.Sprintf("evt_%d", time.Now().UnixNano()),
		EventType:  EventTypePurchaseCancelled,
		PurchaseID: purchase.ID,
		Reference:  purchase.Reference,
		ClientID:   purchase.ClientID,
		Price:      purchase.Price,
		Timestamp:  time.Now(),
	}

	return p.publish(ctx, TopicPurchaseCancelled, event.EventType, event.EventID, purchase, event)
}

func (p *Publisher) publish(ctx context.Context, topic, eventType, eventID string, purchase *purchasedomain.Purchase, event interface{}) error {
	tracer := otel.Tracer("kafka-publisher")
	ctx, span := tracer.Start(ctx, "kafka.publish."+eventType,
		trace.WithSpanKind(trace.SpanKindProducer),
		trace.WithAttributes(
			attribute.String("messaging.system", "kafka"),
			attribute.String("messaging.destination", topic),
			attribute.String("messaging.destination_kind", "topic"),
			attribute.String("event.type", eventType),
			attribute.String("event.id", eventID),
			attribute.Int64("purchase.id", int64(purchase.ID)),
			attribute.Int64("client.id", int64(purchase.ClientID)),
		),
	)
	defer span.End()

	eventBytes, err := json.Marshal(event)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "Failed to marshal event")
		return fmt.Errorf("failed to marshal event: %w", err)
	}

	// Inject trace context into Kafka headers
	carrier := propagation.MapCarrier{}
	otel.GetTextMapPropagator().Inject(ctx, carrier)

	headers := []sarama.RecordHeader{
		{
			Key:   []byte("event_type"),
			Value: []byte(eventType),
		},
		{
			Key:   []byte("event_id"),
			Value: []byte(eventID),
		},
	}
	for key, value := range carrier {
		headers = append(headers, sarama.RecordHeader{
			Key:   []byte(key),
			Value: []byte(value),
		})
	}

	msg := &sarama.ProducerMessage{
		Topic:   topic,
		Key:     sarama.StringEncoder(fmt.Sprintf("purchase_%d", purchase.ID)),
		Value:   sarama.ByteEncoder(eventBytes),
		Headers: headers,
	}

	partition, offset, err := p.producer.SendMessage(msg)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "Failed to send message")
		logger.Logger.Error().
			Err(err).
			Str("topic", topic).
			Uint("purchase_id", purchase.ID).
			Str("trace_id", span.SpanContext().TraceID().String()).
			Msg("Failed to publish event")
		return fmt.Errorf("failed to send message to Kafka: %w", err)
	}

	span.SetAttributes(
		attribute.Int("messaging.kafka.partition", int(partition)),
		attribute.Int64("messaging.kafka.offset", offset),
	)
	span.SetStatus(codes.Ok, "Event published successfully")

	logger.Logger.Info().
		Str("event_id", eventID).
		Str("event_type", eventType).
		Str("topic", topic).
		Int32("partition", partition).
		Int64("offset", offset).
		Uint("purchase_id", purchase.ID).
		Str("trace_id", span.SpanContext().TraceID().String()).
		Msg("Purchase event published")

	return nil
}

// Close closes the Kafka producer
func (p *Publisher) Close() error {
	if p.producer != nil {
		return p.producer.Close()
	}
	return nil
}
