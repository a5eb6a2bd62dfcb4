package ports

import (
	"context"

	eventdomain "shipment-market/internal/features/events/domain"
	"shipment-market/internal/features/marketplace/domain"
)

// EventRecorder is the secondary port the command layer appends lifecycle
// events through. Exactly one event per successful command, none on failure.
type EventRecorder interface {
	Record(event eventdomain.Event)
}

// SnapshotStore is the secondary port for the external persistence boundary.
// Load returns (nil, nil) when no snapshot has ever been saved.
type SnapshotStore interface {
	Save(ctx context.Context, snapshot *domain.Snapshot) error
	Load(ctx context.Context) (*domain.Snapshot, error)
}
