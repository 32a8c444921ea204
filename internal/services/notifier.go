package services

import (
	"context"
	"encoding/json"

	"github.com/segmentio/kafka-go"

	"github.com/avolkhin/mw-approval-engine/internal/logger"
	"github.com/avolkhin/mw-approval-engine/internal/models"
)

// KafkaWriter defines a Kafka writer abstraction.
type KafkaWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error // Writes messages to Kafka
	Close() error                                                   // Closes the Kafka writer
}

// KafkaNotifier publishes notification intents to a Kafka topic. The
// external dispatcher owns delivery; the engine only hands off intents.
type KafkaNotifier struct {
	writer KafkaWriter
}

// NewKafkaNotifier creates a new KafkaNotifier.
func NewKafkaNotifier(writer KafkaWriter) *KafkaNotifier {
	return &KafkaNotifier{writer: writer}
}

// Notify publishes a single intent keyed by transaction id.
func (n *KafkaNotifier) Notify(ctx context.Context, intent models.NotificationIntent) error {
	data, err := json.Marshal(intent)
	if err != nil {
		logger.Log.Errorw("failed to marshal notification intent",
			"transaction_id", intent.TransactionID, "event", intent.Event, "error", err)
		return err
	}

	msg := kafka.Message{
		Key:   []byte(intent.TransactionID.String()),
		Value: data,
	}

	if err := n.writer.WriteMessages(ctx, msg); err != nil {
		logger.Log.Errorw("failed to publish notification intent",
			"transaction_id", intent.TransactionID, "event", intent.Event, "error", err)
		return err
	}

	logger.Log.Infow("notification intent published",
		"transaction_id", intent.TransactionID, "event", intent.Event)
	return nil
}

// Close closes the underlying writer.
func (n *KafkaNotifier) Close() error {
	return n.writer.Close()
}
