package domain

import (
	"bytes"
	"crypto/sha256"
	"encoding/hex"
	"fmt"

	"shipment-market/internal/core/identity"
)

// Status represents the lifecycle state of a shipment. It only moves forward
// along PENDING -> IN_TRANSIT -> DELIVERED.
type Status string

const (
	// StatusPending indicates the shipment is posted and waiting for a carrier.
	StatusPending Status = "PENDING"
	// StatusInTransit indicates a carrier bought the shipment and is delivering it.
	StatusInTransit Status = "IN_TRANSIT"
	// StatusDelivered indicates delivery has been confirmed. Terminal.
	StatusDelivered Status = "DELIVERED"
	// StatusCancelled is reserved for compatibility; no operation reaches it.
	StatusCancelled Status = "CANCELLED"
)

// SizeKind discriminates the shipment size category.
type SizeKind string

const (
	SizeKindEnvelope SizeKind = "ENVELOPE"
	SizeKindParcel   SizeKind = "PARCEL"
)

// SizeCategory describes the physical class of a shipment. Dimension limits
// are only meaningful for the PARCEL kind.
type SizeCategory struct {
	Kind SizeKind `json:"kind"`
	// MaxWidth is the maximum width in millimeters (PARCEL only).
	MaxWidth uint64 `json:"max_width,omitempty"`
	// MaxHeight is the maximum height in millimeters (PARCEL only).
	MaxHeight uint64 `json:"max_height,omitempty"`
	// MaxDepth is the maximum depth in millimeters (PARCEL only).
	MaxDepth uint64 `json:"max_depth,omitempty"`
}

// Location is a named geographic point.
type Location struct {
	Label string  `json:"label"`
	Lat   float64 `json:"lat"`
	Lng   float64 `json:"lng"`
}

// ShipmentInfo holds the commercial terms of a shipment. Immutable after creation.
type ShipmentInfo struct {
	// Value is the declared value of the goods.
	Value uint64 `json:"value"`
	// Price is the agreed delivery price.
	Price uint64 `json:"price"`
	// Source is the pickup location.
	Source Location `json:"source"`
	// Destination is the delivery location.
	Destination Location `json:"destination"`
	// SizeCategory is the physical class of the shipment.
	SizeCategory SizeCategory `json:"size_category"`
}

// Shipment is the unit of trade: a promise to move goods from a source to a
// destination, with a declared value and agreed price.
type Shipment struct {
	// ID is the unique, monotonically assigned shipment identifier.
	ID uint64 `json:"id"`
	// Name is the caller-supplied display name.
	Name string `json:"name"`
	// HashedSecret is the lowercase hex SHA-256 digest of the pre-shared
	// delivery secret. Immutable from creation.
	HashedSecret string `json:"hashed_secret"`
	// Info holds the commercial terms.
	Info ShipmentInfo `json:"info"`
	// Status is the current lifecycle state.
	Status Status `json:"status"`
	// Message is an opaque caller-supplied ciphertext blob. The server never
	// interprets it and no operation sets it on this surface.
	Message *string `json:"message,omitempty"`
	// Carrier is unset until exactly one buy succeeds, then never changes.
	Carrier identity.ID `json:"carrier,omitempty"`
	// Customer is the posting customer's identity.
	Customer identity.ID `json:"customer"`
	// CreatedAt is the creation time in seconds since epoch.
	CreatedAt uint64 `json:"created_at"`
}

// NewShipment creates a shipment in PENDING owned by the given customer and
// registers the id on the customer's open-shipment list.
func NewShipment(creator *Customer, id uint64, hashedSecret, name string, info ShipmentInfo, createdAt uint64) *Shipment {
	creator.AddShipment(id)

	return &Shipment{
		ID:           id,
		Name:         name,
		HashedSecret: hashedSecret,
		Info:         info,
		Status:       StatusPending,
		Customer:     creator.ID,
		CreatedAt:    createdAt,
	}
}

// Buy assigns the carrier and moves the shipment to IN_TRANSIT. Only a
// PENDING shipment can be bought, and the carrier is set exactly once.
func (s *Shipment) Buy(carrier *Carrier) error {
	if s.Status != StatusPending {
		return fmt.Errorf("%w: shipment %d is %s, not %s", ErrInvalidStatus, s.ID, s.Status, StatusPending)
	}

	s.Carrier = carrier.ID
	s.Status = StatusInTransit

	carrier.AddShipment(s.ID)

	return nil
}

// Finalize confirms delivery and closes the shipment lifecycle. The owning
// customer may finalize without a secret; any other caller must present the
// pre-shared secret matching HashedSecret. All checks happen before any
// mutation, so a failed finalize leaves every record untouched.
func (s *Shipment) Finalize(carrier *Carrier, customer *Customer, secret *string, caller identity.ID) error {
	if s.Status != StatusInTransit {
		return fmt.Errorf("%w: shipment %d is %s, not %s", ErrInvalidStatus, s.ID, s.Status, StatusInTransit)
	}

	if caller != s.Customer {
		if err := s.verifySecret(secret); err != nil {
			return err
		}
	}

	s.Status = StatusDelivered

	carrier.FinalizeShipment(s.ID)
	customer.FinalizeShipment(s.ID)

	return nil
}

// verifySecret checks the bearer secret against the stored digest. A missing
// secret, a digest mismatch, or malformed stored hex all fail authorization.
func (s *Shipment) verifySecret(secret *string) error {
	if secret == nil {
		return fmt.Errorf("%w: missing secret", ErrUnauthorized)
	}

	want, err := hex.DecodeString(s.HashedSecret)
	if err != nil {
		return fmt.Errorf("%w: stored digest is not valid hex", ErrUnauthorized)
	}

	got := sha256.Sum256([]byte(*secret))
	if !bytes.Equal(got[:], want) {
		return fmt.Errorf("%w: secret verification failed", ErrUnauthorized)
	}

	return nil
}
