package domain

import "shipment-market/internal/core/identity"

// Carrier is a party that accepts shipments and undertakes to deliver them.
// Lifecycle is symmetric to Customer: created on first buy, never deleted.
type Carrier struct {
	// ID is the carrier's identity.
	ID identity.ID `json:"id"`
	// Name is the display name supplied on first creation.
	Name string `json:"name"`
	// ShipmentsDone counts deliveries finalized by this carrier.
	ShipmentsDone uint32 `json:"shipments_done"`
	// Shipments holds the ids of this carrier's in-flight shipments.
	Shipments []uint64 `json:"shipments"`
}

// NewCarrier creates a fresh carrier profile with zero counters.
func NewCarrier(id identity.ID, name string) *Carrier {
	return &Carrier{
		ID:        id,
		Name:      name,
		Shipments: []uint64{},
	}
}

// AddShipment records a bought shipment on the in-flight list.
func (c *Carrier) AddShipment(shipmentID uint64) {
	c.Shipments = append(c.Shipments, shipmentID)
}

// FinalizeShipment removes the shipment from the in-flight list and
// increments the completion counter.
func (c *Carrier) FinalizeShipment(shipmentID uint64) {
	c.Shipments = removeID(c.Shipments, shipmentID)
	c.ShipmentsDone++
}
