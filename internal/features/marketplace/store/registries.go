package store

import (
	"shipment-market/internal/core/identity"
	"shipment-market/internal/features/marketplace/domain"
)

// CustomerRegistry maps identity to customer profile. Profiles are created on
// first use and never deleted.
type CustomerRegistry struct {
	customers map[identity.ID]*domain.Customer
}

// NewCustomerRegistry creates an empty registry.
func NewCustomerRegistry() *CustomerRegistry {
	return &CustomerRegistry{
		customers: make(map[identity.ID]*domain.Customer),
	}
}

// GetOrCreate returns the profile for id, inserting a fresh one with the
// supplied name if absent. An existing profile is returned unchanged; the
// supplied name is deliberately ignored on repeat calls.
func (r *CustomerRegistry) GetOrCreate(id identity.ID, name string) *domain.Customer {
	if customer, ok := r.customers[id]; ok {
		return customer
	}

	customer := domain.NewCustomer(id, name)
	r.customers[id] = customer
	return customer
}

// Get returns the profile for id, if present.
func (r *CustomerRegistry) Get(id identity.ID) (*domain.Customer, bool) {
	customer, ok := r.customers[id]
	return customer, ok
}

// Has reports whether a profile exists for id.
func (r *CustomerRegistry) Has(id identity.ID) bool {
	_, ok := r.customers[id]
	return ok
}

// All returns a copy of every profile. The open-shipment lists are copied
// too: the live ones are compacted in place on finalize, so a shallow copy
// would alias mutable state.
func (r *CustomerRegistry) All() []domain.Customer {
	customers := make([]domain.Customer, 0, len(r.customers))
	for _, c := range r.customers {
		out := *c
		out.Shipments = append([]uint64(nil), c.Shipments...)
		customers = append(customers, out)
	}
	return customers
}

// Replace swaps the registry contents for the given profiles. Used when
// restoring a snapshot.
func (r *CustomerRegistry) Replace(customers []domain.Customer) {
	r.customers = make(map[identity.ID]*domain.Customer, len(customers))
	for i := range customers {
		c := customers[i]
		r.customers[c.ID] = &c
	}
}

// CarrierRegistry maps identity to carrier profile, with the same
// get-or-create discipline as CustomerRegistry.
type CarrierRegistry struct {
	carriers map[identity.ID]*domain.Carrier
}

// NewCarrierRegistry creates an empty registry.
func NewCarrierRegistry() *CarrierRegistry {
	return &CarrierRegistry{
		carriers: make(map[identity.ID]*domain.Carrier),
	}
}

// GetOrCreate returns the profile for id, inserting a fresh one with the
// supplied name if absent. An existing profile is returned unchanged.
func (r *CarrierRegistry) GetOrCreate(id identity.ID, name string) *domain.Carrier {
	if carrier, ok := r.carriers[id]; ok {
		return carrier
	}

	carrier := domain.NewCarrier(id, name)
	r.carriers[id] = carrier
	return carrier
}

// Get returns the profile for id, if present.
func (r *CarrierRegistry) Get(id identity.ID) (*domain.Carrier, bool) {
	carrier, ok := r.carriers[id]
	return carrier, ok
}

// Has reports whether a profile exists for id.
func (r *CarrierRegistry) Has(id identity.ID) bool {
	_, ok := r.carriers[id]
	return ok
}

// All returns a copy of every profile, with the in-flight lists copied the
// same way CustomerRegistry.All copies them.
func (r *CarrierRegistry) All() []domain.Carrier {
	carriers := make([]domain.Carrier, 0, len(r.carriers))
	for _, c := range r.carriers {
		out := *c
		out.Shipments = append([]uint64(nil), c.Shipments...)
		carriers = append(carriers, out)
	}
	return carriers
}

// Replace swaps the registry contents for the given profiles.
func (r *CarrierRegistry) Replace(carriers []domain.Carrier) {
	r.carriers = make(map[identity.ID]*domain.Carrier, len(carriers))
	for i := range carriers {
		c := carriers[i]
		r.carriers[c.ID] = &c
	}
}
