// Package store holds the in-memory registries behind the marketplace
// command layer. None of the stores lock on their own: the command layer's
// single-writer boundary covers all of them, so every access happens with
// that exclusion already held.
package store

// IDGenerator produces unique, strictly increasing shipment ids starting at 0.
// Ids are never reused; Next must only be called on a path that inserts the
// shipment, so no id is skipped by a successful creation.
type IDGenerator struct {
	next uint64
}

// NewIDGenerator creates a generator positioned at the given id.
func NewIDGenerator(next uint64) *IDGenerator {
	return &IDGenerator{next: next}
}

// Next returns the current id and advances the counter.
func (g *IDGenerator) Next() uint64 {
	id := g.next
	g.next++
	return id
}

// Position returns the next id to be handed out, without advancing.
func (g *IDGenerator) Position() uint64 {
	return g.next
}
