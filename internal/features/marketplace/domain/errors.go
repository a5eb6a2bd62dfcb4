package domain

import "errors"

var (
	// ErrUnauthorized is returned when the caller is anonymous on an operation
	// requiring authentication, fails the finalization secret check, or is not
	// an admin on an admin-only operation.
	ErrUnauthorized = errors.New("caller is not authorized")
	// ErrShipmentNotFound is returned when the referenced shipment does not exist.
	ErrShipmentNotFound = errors.New("shipment not found")
	// ErrInvalidStatus is returned when the shipment's status forbids the operation.
	ErrInvalidStatus = errors.New("shipment status does not allow this operation")
	// ErrInconsistentState is returned when a registry entry required by invariant
	// is missing. It indicates a defect, not a user-facing condition.
	ErrInconsistentState = errors.New("registry entry missing for referenced party")
)
