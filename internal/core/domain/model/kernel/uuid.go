package kernel

import (
	"fmt"

	"fulfillment/internal/pkg/errs"

	"github.com/google/uuid"
)

// ErrUUIDIsNotConstructed is returned by Validate for a zero-value UUID,
// i.e. one that bypassed the constructor functions.
var ErrUUIDIsNotConstructed = errs.NewValueIsRequiredError("UUID must be created via NewUUID, UUIDFromString, or UUIDFromBytes")

// UUID is the identifier value object used for generated identities such as
// shipment ids and journal entry ids. It wraps github.com/google/uuid so the
// rest of the domain never touches the library type directly.
//
// The zero value is invalid; construct one with NewUUID, UUIDFromString, or
// UUIDFromBytes. Validate reports whether a UUID went through a constructor.
//
// UUID is immutable and safe to copy and compare.
//
// Example usage:
//
//	// Mint an identifier for a new shipment
//	shipmentID := kernel.NewUUID()
//
//	// Reconstruct one coming back from persistence
//	id, err := kernel.UUIDFromString(row.ShipmentID)
//	if err != nil {
//	    // handle error
//	}
type UUID struct {
	id uuid.UUID
}

// NewUUID generates a new random UUID (version 4).
// This is how shipments and journal entries get their identifiers
// at the moment they are created.
func NewUUID() UUID {
	return UUID{
		id: uuid.New(),
	}
}

// UUIDFromString parses a UUID from its string representation.
// It accepts the standard formats, including:
//   - "6ba7b810-9dad-11d1-80b4-00c04fd430c8"
//   - "{6ba7b810-9dad-11d1-80b4-00c04fd430c8}"
//   - "urn:uuid:6ba7b810-9dad-11d1-80b4-00c04fd430c8"
//
// This is the path identifiers take when loaded back from the database
// or received in an HTTP request.
//
// Example:
//
//	id, err := kernel.UUIDFromString(req.ShipmentID)
//	if err != nil {
//	    return fmt.Errorf("invalid shipment id: %w", err)
//	}
func UUIDFromString(s string) (UUID, error) {
	id, err := uuid.Parse(s)
	if err != nil {
		return UUID{}, fmt.Errorf("invalid UUID format: %w", err)
	}
	return UUID{id: id}, nil
}

// UUIDFromBytes creates a UUID from a byte slice.
// The slice must be exactly 16 bytes, and the nil UUID is rejected,
// so a round trip through binary storage cannot yield an
// unconstructed value.
func UUIDFromBytes(b []byte) (UUID, error) {
	id, err := uuid.FromBytes(b)
	if err != nil {
		return UUID{}, fmt.Errorf("invalid UUID format: %w", err)
	}
	newID := UUID{id: id}
	if err = newID.Validate(); err != nil {
		return UUID{}, err
	}

	return newID, nil
}

// String returns the canonical "xxxxxxxx-xxxx-xxxx-xxxx-xxxxxxxxxxxx" form.
// A zero value renders as "00000000-0000-0000-0000-000000000000".
// This is the form persisted in DTO columns and written to logs.
func (u UUID) String() string {
	return u.id.String()
}

// Bytes returns the underlying uuid.UUID value (not a byte slice;
// slice it with [:] when raw bytes are needed). Intended for the rare
// spot that has to interoperate with the library type directly.
func (u UUID) Bytes() uuid.UUID {
	return u.id
}

// IsEqual reports whether two UUIDs carry the same value.
func (u UUID) IsEqual(other UUID) bool {
	return u.id == other.id
}

// Validate checks that the UUID was built through a constructor.
// Returns ErrUUIDIsNotConstructed for the zero value.
//
// Aggregates call this when accepting an identifier from outside:
//
//	func RestoreShipment(id kernel.UUID) (*Shipment, error) {
//	    if err := id.Validate(); err != nil {
//	        return nil, fmt.Errorf("invalid shipment id: %w", err)
//	    }
//	    // ...
//	}
func (u UUID) Validate() error {
	if u.id == uuid.Nil {
		return ErrUUIDIsNotConstructed
	}
	return nil
}
