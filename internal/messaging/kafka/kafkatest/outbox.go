// Package kafkatest holds an in-memory outbox for service tests.
package kafkatest

import (
	"context"
	"sync"

	"workcurb/internal/messaging/kafka"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// RecordingOutbox keeps created events in memory. CreateErr, when set, is
// returned by Create.
type RecordingOutbox struct {
	mu        sync.Mutex
	Created   []kafka.OutboxEvent
	CreateErr error
}

func (o *RecordingOutbox) WithTx(tx *gorm.DB) kafka.OutboxRepository { return o }

func (o *RecordingOutbox) Create(ctx context.Context, event *kafka.OutboxEvent) error {
	if o.CreateErr != nil {
		return o.CreateErr
	}
	o.mu.Lock()
	defer o.mu.Unlock()
	o.Created = append(o.Created, *event)
	return nil
}

func (o *RecordingOutbox) ListPending(ctx context.Context, limit int) ([]kafka.OutboxEvent, error) {
	return nil, nil
}

func (o *RecordingOutbox) MarkSent(ctx context.Context, id uuid.UUID) error { return nil }

func (o *RecordingOutbox) MarkFailed(ctx context.Context, event kafka.OutboxEvent, reason string) error {
	return nil
}

// Events returns a copy of the created events.
func (o *RecordingOutbox) Events() []kafka.OutboxEvent {
	o.mu.Lock()
	defer o.mu.Unlock()
	return append([]kafka.OutboxEvent(nil), o.Created...)
}
