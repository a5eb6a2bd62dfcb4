package service

import (
	"testing"
	"time"

	"shipment-market/internal/core/identity"
	"shipment-market/internal/features/events/domain"
	marketdomain "shipment-market/internal/features/marketplace/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeClock returns a controllable clock starting at the given instant.
type fakeClock struct {
	current time.Time
}

func (c *fakeClock) Now() time.Time {
	return c.current
}

func (c *fakeClock) Advance(d time.Duration) {
	c.current = c.current.Add(d)
}

func newClock() *fakeClock {
	return &fakeClock{current: time.Unix(1_700_000_000, 0)}
}

// TestEventLog_SequenceOrder verifies sequences run 1..N in append order.
func TestEventLog_SequenceOrder(t *testing.T) {
	log := NewEventLog(DefaultCapacity, newClock().Now)

	for i := uint64(0); i < 5; i++ {
		recorded := log.Append(domain.NewCreated(i))
		assert.Equal(t, i+1, recorded.Sequence)
	}

	events := log.List(0)
	require.Len(t, events, 5)
	for i, entry := range events {
		assert.Equal(t, uint64(i+1), entry.Sequence)
		assert.Equal(t, uint64(i), entry.Event.ShipmentID)
	}
}

// TestEventLog_ListSince verifies the sequence watermark filter.
func TestEventLog_ListSince(t *testing.T) {
	log := NewEventLog(DefaultCapacity, newClock().Now)
	for i := uint64(0); i < 5; i++ {
		log.Append(domain.NewCreated(i))
	}

	events := log.List(2)
	require.Len(t, events, 3)
	assert.Equal(t, uint64(3), events[0].Sequence)
	assert.Equal(t, uint64(4), events[1].Sequence)
	assert.Equal(t, uint64(5), events[2].Sequence)

	assert.Empty(t, log.List(5))
	assert.Empty(t, log.List(99))
}

// TestEventLog_CapacityBound verifies oldest-first eviction past the bound.
func TestEventLog_CapacityBound(t *testing.T) {
	log := NewEventLog(DefaultCapacity, newClock().Now)

	for i := uint64(0); i < 1005; i++ {
		log.Append(domain.NewCreated(i))
	}

	events := log.List(0)
	require.Len(t, events, 1000)
	assert.Equal(t, uint64(6), events[0].Sequence)
	assert.Equal(t, uint64(1005), events[999].Sequence)
}

// TestEventLog_PurgeOlderThan verifies the age purge keeps order and
// sequence numbers of the remaining entries.
func TestEventLog_PurgeOlderThan(t *testing.T) {
	clock := newClock()
	log := NewEventLog(DefaultCapacity, clock.Now)

	log.Append(domain.NewCreated(0))
	log.Append(domain.NewCarrierAssigned(0, "bob"))
	clock.Advance(25 * time.Hour)
	log.Append(domain.NewFinalized(0, "alice"))

	dropped := log.PurgeOlderThan(clock.Now().Add(-24 * time.Hour))

	assert.Equal(t, 2, dropped)
	events := log.List(0)
	require.Len(t, events, 1)
	assert.Equal(t, uint64(3), events[0].Sequence)
	assert.Equal(t, domain.EventKindFinalized, events[0].Event.Kind)
}

// TestEventLog_PurgeBoundary verifies an entry exactly at the window edge is
// dropped: age >= retention removes it.
func TestEventLog_PurgeBoundary(t *testing.T) {
	clock := newClock()
	log := NewEventLog(DefaultCapacity, clock.Now)

	log.Append(domain.NewCreated(0))
	clock.Advance(24 * time.Hour)
	log.Append(domain.NewCreated(1))

	dropped := log.PurgeOlderThan(clock.Now().Add(-24 * time.Hour))

	assert.Equal(t, 1, dropped)
	events := log.List(0)
	require.Len(t, events, 1)
	assert.Equal(t, uint64(2), events[0].Sequence)
}

// TestAuditService_PurgeOld verifies the admin gate and the retention window.
func TestAuditService_PurgeOld(t *testing.T) {
	clock := newClock()
	log := NewEventLog(DefaultCapacity, clock.Now)
	svc := NewAuditService(log, identity.NewSet("admin"), DefaultRetention, clock.Now)

	svc.Record(domain.NewCreated(0))
	clock.Advance(25 * time.Hour)
	svc.Record(domain.NewCreated(1))

	err := svc.PurgeOld("mallory")
	assert.ErrorIs(t, err, marketdomain.ErrUnauthorized)
	assert.Equal(t, 2, log.Len())

	err = svc.PurgeOld(identity.Anonymous)
	assert.ErrorIs(t, err, marketdomain.ErrUnauthorized)

	require.NoError(t, svc.PurgeOld("admin"))
	events := svc.Events(0)
	require.Len(t, events, 1)
	assert.Equal(t, uint64(2), events[0].Sequence)
}
