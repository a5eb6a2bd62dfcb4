package service

import (
	"fmt"
	"time"

	"shipment-market/internal/core/identity"
	"shipment-market/internal/core/logger"
	eventdomain "shipment-market/internal/features/events/domain"
	marketdomain "shipment-market/internal/features/marketplace/domain"

	"go.uber.org/zap"
)

// DefaultRetention is the age window for admin purges when none is configured.
const DefaultRetention = 24 * time.Hour

// AuditService exposes the event log to the command layer (recording) and to
// callers (listing, admin purge). Purging is not time-triggered; an admin
// must invoke it explicitly.
type AuditService struct {
	log       *EventLog
	admins    identity.Set
	retention time.Duration
	now       func() time.Time
}

// NewAuditService wires the log with the admin set, retention window, and
// clock. A non-positive retention falls back to DefaultRetention.
func NewAuditService(log *EventLog, admins identity.Set, retention time.Duration, now func() time.Time) *AuditService {
	if retention <= 0 {
		retention = DefaultRetention
	}
	if now == nil {
		now = time.Now
	}

	return &AuditService{
		log:       log,
		admins:    admins,
		retention: retention,
		now:       now,
	}
}

// Record appends one event. Called by the command layer on every successful
// mutation, never on failure.
func (s *AuditService) Record(event eventdomain.Event) {
	s.log.Append(event)
}

// Events returns every retained event with sequence greater than since,
// ascending. since of 0 returns all.
func (s *AuditService) Events(since uint64) []eventdomain.RecordedEvent {
	return s.log.List(since)
}

// PurgeOld drops every retained event older than the retention window.
// Restricted to the admin set.
func (s *AuditService) PurgeOld(caller identity.ID) error {
	if !s.admins.Contains(caller) {
		return fmt.Errorf("%w: purge requires an admin caller", marketdomain.ErrUnauthorized)
	}

	dropped := s.log.PurgeOlderThan(s.now().Add(-s.retention))
	logger.Get().Info("Purged aged audit events",
		zap.Int("dropped", dropped),
		zap.Int("retained", s.log.Len()),
		zap.String("caller", string(caller)),
	)

	return nil
}
