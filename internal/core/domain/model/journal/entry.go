package journal

import (
	"errors"
	"fmt"
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"
	"fulfillment/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

// ErrEntryIsNotConstructed is returned when an Entry was not created through
// NewEntry or RestoreEntry.
var ErrEntryIsNotConstructed = errors.New("Entry must be created via NewEntry constructor")

// Entry is one immutable posting of the financial journal. Entries are only
// ever appended; there is no update or delete, and the aggregate exposes no
// mutating method.
type Entry struct {
	id         kernel.UUID
	kind       Kind
	amount     decimal.Decimal
	orderID    string
	shipmentID *kernel.UUID
	postedAt   time.Time

	guard guard.ConstructorGuard
}

// NewEntry creates a journal entry posted now. orderID links the posting to
// the sales order it settles; shipmentID is set on freight postings and nil
// otherwise.
func NewEntry(kind Kind, amount decimal.Decimal, orderID string, shipmentID *kernel.UUID) (*Entry, error) {
	e := &Entry{
		id:       kernel.NewUUID(),
		postedAt: time.Now(),
		guard:    guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		e.setKind(kind),
		e.setAmount(amount),
		e.setOrderID(orderID),
		e.setShipmentID(shipmentID),
	); err != nil {
		return nil, err
	}

	return e, nil
}

// RestoreEntry reconstructs an entry from persistent storage.
func RestoreEntry(
	id kernel.UUID,
	kind Kind,
	amount decimal.Decimal,
	orderID string,
	shipmentID *kernel.UUID,
	postedAt time.Time,
) (*Entry, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	if postedAt.IsZero() {
		return nil, errs.NewValueIsRequiredError("postedAt")
	}

	e, err := NewEntry(kind, amount, orderID, shipmentID)
	if err != nil {
		return nil, err
	}

	e.id = id
	e.postedAt = postedAt
	return e, nil
}

// Validate ensures the Entry instance was properly constructed.
func (e *Entry) Validate() error {
	if e == nil {
		return ErrEntryIsNotConstructed
	}
	return e.guard.Validate(ErrEntryIsNotConstructed)
}

// ID returns the entry's identifier.
func (e *Entry) ID() kernel.UUID {
	return e.id
}

// Kind returns what the entry posts.
func (e *Entry) Kind() Kind {
	return e.kind
}

// Amount returns the posted amount.
func (e *Entry) Amount() decimal.Decimal {
	return e.amount
}

// OrderID returns the sales order the posting belongs to.
func (e *Entry) OrderID() string {
	return e.orderID
}

// ShipmentID returns the linked shipment's id, or nil for postings that are
// not freight.
func (e *Entry) ShipmentID() *kernel.UUID {
	return e.shipmentID
}

// PostedAt returns when the entry was posted.
func (e *Entry) PostedAt() time.Time {
	return e.postedAt
}

func (e *Entry) setKind(kind Kind) error {
	if err := kind.Validate(); err != nil {
		return err
	}
	e.kind = kind
	return nil
}

func (e *Entry) setAmount(amount decimal.Decimal) error {
	if !amount.IsPositive() {
		return errs.NewValueIsInvalidErrorWithCause("amount",
			fmt.Errorf("%s is not greater than 0", amount))
	}
	e.amount = amount
	return nil
}

func (e *Entry) setOrderID(orderID string) error {
	if orderID == "" {
		return errs.NewValueIsRequiredError("orderId")
	}
	e.orderID = orderID
	return nil
}

func (e *Entry) setShipmentID(shipmentID *kernel.UUID) error {
	if shipmentID != nil {
		if err := shipmentID.Validate(); err != nil {
			return err
		}
	}
	e.shipmentID = shipmentID
	return nil
}
