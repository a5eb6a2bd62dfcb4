package service

import (
	"sync"
	"time"

	"shipment-market/internal/features/events/domain"
)

// DefaultCapacity is the retained-entry bound when none is configured.
const DefaultCapacity = 1000

// EventLog is the append-only, sequence-numbered audit trail of lifecycle
// transitions. It retains at most capacity entries, evicting oldest-first.
// Appends are serialized by the command layer, but reads arrive on their own
// request goroutines, so the log carries its own lock.
type EventLog struct {
	mu       sync.Mutex
	entries  []domain.RecordedEvent
	sequence uint64
	capacity int
	now      func() time.Time
}

// NewEventLog creates an empty log bounded to capacity entries. A
// non-positive capacity falls back to DefaultCapacity.
func NewEventLog(capacity int, now func() time.Time) *EventLog {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	if now == nil {
		now = time.Now
	}

	return &EventLog{
		capacity: capacity,
		now:      now,
	}
}

// Append stamps the event with the next sequence number and the current time,
// then retains it, evicting the oldest entries while over capacity.
func (l *EventLog) Append(event domain.Event) domain.RecordedEvent {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.sequence++
	recorded := domain.RecordedEvent{
		Event:     event,
		Timestamp: uint64(l.now().Unix()),
		Sequence:  l.sequence,
	}

	l.entries = append(l.entries, recorded)
	if over := len(l.entries) - l.capacity; over > 0 {
		l.entries = append(l.entries[:0], l.entries[over:]...)
	}

	return recorded
}

// List returns every retained event with sequence greater than since, in
// ascending sequence order. since of 0 returns everything retained.
func (l *EventLog) List(since uint64) []domain.RecordedEvent {
	l.mu.Lock()
	defer l.mu.Unlock()

	// Entries are in insertion order, which is sequence order.
	start := len(l.entries)
	for i, entry := range l.entries {
		if entry.Sequence > since {
			start = i
			break
		}
	}

	out := make([]domain.RecordedEvent, len(l.entries)-start)
	copy(out, l.entries[start:])
	return out
}

// PurgeOlderThan drops every entry stamped at or before cutoff, preserving
// the order and sequence numbers of the rest. Returns the number dropped.
func (l *EventLog) PurgeOlderThan(cutoff time.Time) int {
	l.mu.Lock()
	defer l.mu.Unlock()

	limit := uint64(cutoff.Unix())
	kept := l.entries[:0]
	for _, entry := range l.entries {
		if entry.Timestamp > limit {
			kept = append(kept, entry)
		}
	}

	dropped := len(l.entries) - len(kept)
	l.entries = kept
	return dropped
}

// Len returns the number of retained entries.
func (l *EventLog) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.entries)
}
