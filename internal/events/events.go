// Package events publishes notifications about committed ledger writes.
//
// Events are informational. They are published after the database
// transaction commits and a failure to publish never fails the write.
package events

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"github.com/google/uuid"
)

// Type is the routing key of an event.
type Type string

const (
	TypeFundingRecorded   Type = "funding.recorded"
	TypeAllocationCreated Type = "allocation.created"
	TypeExpenseRecorded   Type = "expense.recorded"
	TypeTransactionPosted Type = "transaction.posted"
)

// Event is a notification about a committed write.
type Event struct {
	Type       Type      `json:"type"`
	ID         uuid.UUID `json:"id"`
	OccurredAt time.Time `json:"occurredAt"`
	Payload    any       `json:"payload"`
}

// New returns an event of type t for the payload.
func New(t Type, payload any) Event {
	return Event{
		Type:       t,
		ID:         uuid.New(),
		OccurredAt: time.Now().In(time.UTC),
		Payload:    payload,
	}
}

// JSON returns the JSON encoding of the event.
func (e Event) JSON() ([]byte, error) {
	return json.Marshal(e)
}

// Publisher publishes events.
type Publisher interface {
	Publish(ctx context.Context, e Event) error
	Close() error
}

// Noop discards all events. It is used when no event bus is configured.
type Noop struct{}

func (Noop) Publish(_ context.Context, _ Event) error { return nil }
func (Noop) Close() error                             { return nil }

// Recorder keeps all published events in memory.
type Recorder struct {
	mu     sync.Mutex
	events []Event
	Err    error // If set, Publish returns this error
}

func (r *Recorder) Publish(_ context.Context, e Event) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.Err != nil {
		return r.Err
	}

	r.events = append(r.events, e)
	return nil
}

func (r *Recorder) Close() error { return nil }

// Events returns a copy of all recorded events.
func (r *Recorder) Events() []Event {
	r.mu.Lock()
	defer r.mu.Unlock()

	return append([]Event(nil), r.events...)
}

// Types returns the types of all recorded events in publishing order.
func (r *Recorder) Types() []Type {
	events := r.Events()
	types := make([]Type, 0, len(events))
	for _, e := range events {
		types = append(types, e.Type)
	}
	return types
}
