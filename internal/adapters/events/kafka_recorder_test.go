package events

import (
	"context"
	"encoding/json"
	"errors"
	"midpoint-service/internal/ports"
	"testing"
	"time"

	"github.com/segmentio/kafka-go"
)

// mockWriter simulates the kafka-go Writer for unit testing.
type mockWriter struct {
	msgs     []kafka.Message
	err      error
	isClosed bool
}

func (mw *mockWriter) WriteMessages(ctx context.Context, msgs ...kafka.Message) error {
	if mw.isClosed {
		return errors.New("kafka: writer closed")
	}
	if _, ok := ctx.Deadline(); !ok {
		return errors.New("expected a bounded context")
	}
	if mw.err != nil {
		return mw.err
	}
	mw.msgs = append(mw.msgs, msgs...)
	return nil
}

func (mw *mockWriter) Close() error {
	mw.isClosed = true
	return nil
}

func TestKafkaRecorderRecord(t *testing.T) {
	w := &mockWriter{}
	rec := NewKafkaRecorderWithWriter(w)

	event := ports.SearchEvent{
		ID:          "evt-1",
		Address1:    "Boston, MA",
		Address2:    "Providence, RI",
		PlaceType:   "cafe",
		ResultCount: 3,
		LiveCells:   4,
		CompletedAt: time.Date(2026, 1, 1, 8, 0, 0, 0, time.UTC),
	}
	if err := rec.Record(context.Background(), event); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(w.msgs) != 1 {
		t.Fatalf("expected 1 message, got %d", len(w.msgs))
	}
	if string(w.msgs[0].Key) != "evt-1" {
		t.Fatalf("key = %q, want evt-1", w.msgs[0].Key)
	}

	var decoded ports.SearchEvent
	if err := json.Unmarshal(w.msgs[0].Value, &decoded); err != nil {
		t.Fatalf("payload is not json: %v", err)
	}
	if decoded.PlaceType != "cafe" || decoded.ResultCount != 3 || !decoded.CompletedAt.Equal(event.CompletedAt) {
		t.Fatalf("unexpected payload: %+v", decoded)
	}
}

func TestKafkaRecorderWriteError(t *testing.T) {
	w := &mockWriter{err: errors.New("broker unavailable")}
	rec := NewKafkaRecorderWithWriter(w)

	err := rec.Record(context.Background(), ports.SearchEvent{ID: "evt-2"})
	if err == nil || !errors.Is(err, w.err) {
		t.Fatalf("expected wrapped broker error, got %v", err)
	}
}

func TestKafkaRecorderClose(t *testing.T) {
	w := &mockWriter{}
	rec := NewKafkaRecorderWithWriter(w)

	if err := rec.Close(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !w.isClosed {
		t.Fatalf("expected writer to be closed")
	}
}

func TestNewKafkaRecorderValidates(t *testing.T) {
	if _, err := NewKafkaRecorder(nil, "topic"); err == nil {
		t.Fatalf("expected error without brokers")
	}
	if _, err := NewKafkaRecorder([]string{"localhost:9092"}, ""); err == nil {
		t.Fatalf("expected error without topic")
	}
}
