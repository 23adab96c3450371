// Package audit provides the append-only action log that records document submissions.
package audit

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// Action and object names recorded by the engine
const (
	ActionCoverLetterSubmitted = "cover_letter_submitted"
	ObjectTailoredDocument     = "tailored_document"
)

// Record is a single append-only audit log entry
type Record struct {
	ID         uuid.UUID       `json:"id"`
	TenantID   string          `json:"tenant_id"`
	ActorID    string          `json:"actor_id"`
	Action     string          `json:"action"`
	ObjectType string          `json:"object_type"`
	ObjectID   string          `json:"object_id"`
	Payload    json.RawMessage `json:"payload"`
	CreatedAt  time.Time       `json:"created_at"`
}

// Sink accepts audit records. Implementations must not modify or drop appended records.
type Sink interface {
	Append(ctx context.Context, rec Record) error
}

// Store is a Sink whose records can be read back
type Store interface {
	Sink
	ListByObject(ctx context.Context, objectID string) ([]Record, error)
	Close() error
}

// NoopSink discards records after an optional delay. It stands in when no log store is configured.
type NoopSink struct {
	Delay time.Duration
}

// Append waits for the configured delay or until ctx is done
func (s NoopSink) Append(ctx context.Context, _ Record) error {
	if s.Delay <= 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(s.Delay)
	defer timer.Stop()
	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
