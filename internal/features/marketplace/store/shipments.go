package store

import (
	"sort"

	"shipment-market/internal/core/identity"
	"shipment-market/internal/features/marketplace/domain"
)

// ShipmentStore maps shipment id to record. Query methods return copies in
// ascending id order so readers never alias live state.
type ShipmentStore struct {
	shipments map[uint64]*domain.Shipment
}

// NewShipmentStore creates an empty store.
func NewShipmentStore() *ShipmentStore {
	return &ShipmentStore{
		shipments: make(map[uint64]*domain.Shipment),
	}
}

// Insert adds a shipment under its id.
func (s *ShipmentStore) Insert(shipment *domain.Shipment) {
	s.shipments[shipment.ID] = shipment
}

// Get returns the shipment with the given id, if present.
func (s *ShipmentStore) Get(id uint64) (*domain.Shipment, bool) {
	shipment, ok := s.shipments[id]
	return shipment, ok
}

// All returns a copy of every shipment.
func (s *ShipmentStore) All() []domain.Shipment {
	return s.collect(func(*domain.Shipment) bool { return true })
}

// Pending returns every shipment still waiting for a carrier.
func (s *ShipmentStore) Pending() []domain.Shipment {
	return s.collect(func(sh *domain.Shipment) bool {
		return sh.Status == domain.StatusPending
	})
}

// ForCustomer returns every shipment posted by the given customer.
func (s *ShipmentStore) ForCustomer(id identity.ID) []domain.Shipment {
	return s.collect(func(sh *domain.Shipment) bool {
		return sh.Customer == id
	})
}

// ForCarrier returns every shipment bought by the given carrier. The
// anonymous sentinel matches nothing, since an unbought shipment carries it.
func (s *ShipmentStore) ForCarrier(id identity.ID) []domain.Shipment {
	if id.IsAnonymous() {
		return []domain.Shipment{}
	}
	return s.collect(func(sh *domain.Shipment) bool {
		return sh.Carrier == id
	})
}

// Replace swaps the store contents for the given shipments. Used when
// restoring a snapshot.
func (s *ShipmentStore) Replace(shipments []domain.Shipment) {
	s.shipments = make(map[uint64]*domain.Shipment, len(shipments))
	for i := range shipments {
		sh := shipments[i]
		s.shipments[sh.ID] = &sh
	}
}

func (s *ShipmentStore) collect(keep func(*domain.Shipment) bool) []domain.Shipment {
	shipments := make([]domain.Shipment, 0, len(s.shipments))
	for _, sh := range s.shipments {
		if keep(sh) {
			shipments = append(shipments, *sh)
		}
	}

	sort.Slice(shipments, func(i, j int) bool {
		return shipments[i].ID < shipments[j].ID
	})

	return shipments
}
