package domain

// Snapshot is the serializable image of the marketplace stores, produced for
// and restored from the external persistence boundary. The event log is not
// part of it: the log is bounded and age-purged, so it does not survive
// restarts.
type Snapshot struct {
	// NextShipmentID is the id generator position.
	NextShipmentID uint64 `json:"next_shipment_id"`
	// Customers holds every customer profile.
	Customers []Customer `json:"customers"`
	// Carriers holds every carrier profile.
	Carriers []Carrier `json:"carriers"`
	// Shipments holds every shipment record.
	Shipments []Shipment `json:"shipments"`
}
