package events

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"midpoint-service/internal/platform/obs"
	"midpoint-service/internal/ports"
	"time"

	"github.com/segmentio/kafka-go"
)

// KafkaWriter is the subset of *kafka.Writer used by the recorder.
// This allows for easy mocking in unit tests.
type KafkaWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// KafkaRecorder publishes completed midpoint searches as JSON messages keyed by event ID.
type KafkaRecorder struct {
	writer  KafkaWriter
	timeout time.Duration
}

// NewKafkaRecorder creates a recorder writing to topic on the given brokers.
func NewKafkaRecorder(brokers []string, topic string) (*KafkaRecorder, error) {
	if len(brokers) == 0 {
		return nil, errors.New("kafka recorder: at least one broker is required")
	}
	if topic == "" {
		return nil, errors.New("kafka recorder: topic must be non-empty")
	}

	w := &kafka.Writer{
		Addr:                   kafka.TCP(brokers...),
		Topic:                  topic,
		Balancer:               &kafka.Hash{},
		RequiredAcks:           kafka.RequireOne,
		BatchTimeout:           10 * time.Millisecond,
		AllowAutoTopicCreation: true,
	}

	log.Printf("Kafka recorder ready brokers=%v topic=%s", brokers, topic)
	return NewKafkaRecorderWithWriter(w), nil
}

func NewKafkaRecorderWithWriter(w KafkaWriter) *KafkaRecorder {
	return &KafkaRecorder{writer: w, timeout: 5 * time.Second}
}

// Record publishes one event. The write is bounded so a slow broker cannot
// hold up the HTTP response for long.
func (k *KafkaRecorder) Record(ctx context.Context, event ports.SearchEvent) (err error) {
	defer obs.Time(ctx, "events.kafka.Record")(&err)

	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("record search event: marshal: %w", err)
	}

	ctx, cancel := context.WithTimeout(ctx, k.timeout)
	defer cancel()

	msg := kafka.Message{
		Key:   []byte(event.ID),
		Value: payload,
		Time:  event.CompletedAt,
	}
	if err := k.writer.WriteMessages(ctx, msg); err != nil {
		return fmt.Errorf("record search event %s: write: %w", event.ID, err)
	}

	return nil
}

// Close flushes pending messages and releases the writer.
func (k *KafkaRecorder) Close() error {
	if err := k.writer.Close(); err != nil {
		return fmt.Errorf("close kafka recorder: %w", err)
	}
	return nil
}
