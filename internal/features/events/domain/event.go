package domain

import "shipment-market/internal/core/identity"

// EventKind discriminates the lifecycle event union.
type EventKind string

const (
	// EventKindCreated records a shipment entering the marketplace.
	EventKindCreated EventKind = "CREATED"
	// EventKindStatusUpdated records a bare status change. Declared for
	// compatibility; none of the exposed commands produce it.
	EventKindStatusUpdated EventKind = "STATUS_UPDATED"
	// EventKindCarrierAssigned records a carrier buying a shipment.
	EventKindCarrierAssigned EventKind = "CARRIER_ASSIGNED"
	// EventKindFinalized records a delivery confirmation.
	EventKindFinalized EventKind = "FINALIZED"
)

// Event is one lifecycle transition. Kind selects which optional fields are set.
type Event struct {
	Kind       EventKind `json:"kind"`
	ShipmentID uint64    `json:"shipment_id"`
	// Status is set for STATUS_UPDATED events.
	Status string `json:"status,omitempty"`
	// Carrier is set for CARRIER_ASSIGNED events.
	Carrier identity.ID `json:"carrier,omitempty"`
	// Party is the finalizing caller, set for FINALIZED events.
	Party identity.ID `json:"party,omitempty"`
}

// NewCreated builds a CREATED event.
func NewCreated(shipmentID uint64) Event {
	return Event{Kind: EventKindCreated, ShipmentID: shipmentID}
}

// NewStatusUpdated builds a STATUS_UPDATED event.
func NewStatusUpdated(shipmentID uint64, status string) Event {
	return Event{Kind: EventKindStatusUpdated, ShipmentID: shipmentID, Status: status}
}

// NewCarrierAssigned builds a CARRIER_ASSIGNED event.
func NewCarrierAssigned(shipmentID uint64, carrier identity.ID) Event {
	return Event{Kind: EventKindCarrierAssigned, ShipmentID: shipmentID, Carrier: carrier}
}

// NewFinalized builds a FINALIZED event.
func NewFinalized(shipmentID uint64, party identity.ID) Event {
	return Event{Kind: EventKindFinalized, ShipmentID: shipmentID, Party: party}
}

// RecordedEvent is an event as retained by the log: stamped with the append
// time (whole seconds, advisory, used only for age purging) and the global
// sequence number, which is the ordering key.
type RecordedEvent struct {
	Event Event `json:"event"`
	// Timestamp is the append time in seconds since epoch.
	Timestamp uint64 `json:"timestamp"`
	// Sequence is the global, strictly increasing append counter, starting at 1.
	Sequence uint64 `json:"sequence"`
}
