package domain

import "shipment-market/internal/core/identity"

// Customer is a party that posts shipments for delivery. Profiles are created
// on first use and never deleted.
type Customer struct {
	// ID is the customer's identity.
	ID identity.ID `json:"id"`
	// Name is the display name supplied on first creation.
	Name string `json:"name"`
	// ShipmentsSent counts finalized shipments posted by this customer.
	ShipmentsSent uint32 `json:"shipments_sent"`
	// Shipments holds the ids of this customer's not-yet-finalized shipments.
	Shipments []uint64 `json:"shipments"`
}

// NewCustomer creates a fresh customer profile with zero counters.
func NewCustomer(id identity.ID, name string) *Customer {
	return &Customer{
		ID:        id,
		Name:      name,
		Shipments: []uint64{},
	}
}

// AddShipment records a newly posted shipment on the open list.
func (c *Customer) AddShipment(shipmentID uint64) {
	c.Shipments = append(c.Shipments, shipmentID)
}

// FinalizeShipment removes the shipment from the open list and increments
// the completion counter.
func (c *Customer) FinalizeShipment(shipmentID uint64) {
	c.Shipments = removeID(c.Shipments, shipmentID)
	c.ShipmentsSent++
}

// removeID drops every occurrence of id, preserving order.
func removeID(ids []uint64, id uint64) []uint64 {
	kept := ids[:0]
	for _, v := range ids {
		if v != id {
			kept = append(kept, v)
		}
	}
	return kept
}
