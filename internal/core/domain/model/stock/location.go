package stock

import (
	"errors"
	"fmt"

	"fulfillment/internal/pkg/errs"
	"fulfillment/internal/pkg/guard"
)

// ErrLocationIsNotConstructed is returned when a Location instance was not
// created through the NewLocation or RestoreLocation factory functions.
var ErrLocationIsNotConstructed = errors.New("Location must be created via NewLocation constructor")

// Location is a named warehouse position holding per-SKU balances.
//
// Location follows one hard invariant: for every SKU the balance is never
// negative. Any operation that would violate this is rejected before any
// mutation happens (check-then-act, never roll back after the fact), so a
// Location is always observed in a consistent state.
type Location struct {
	id       string
	balances map[string]int

	guard guard.ConstructorGuard
}

// NewLocation creates an empty warehouse location.
func NewLocation(id string) (*Location, error) {
	if id == "" {
		return nil, errs.NewValueIsRequiredError("id")
	}

	return &Location{
		id:       id,
		balances: make(map[string]int),
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// RestoreLocation reconstructs a location from persistent storage with its
// per-SKU balances.
func RestoreLocation(id string, balances map[string]int) (*Location, error) {
	loc, err := NewLocation(id)
	if err != nil {
		return nil, err
	}

	for sku, qty := range balances {
		if sku == "" {
			return nil, errs.NewValueIsRequiredError("sku")
		}
		if qty < 0 {
			return nil, errs.NewValueIsInvalidErrorWithCause("balance",
				fmt.Errorf("%d of %s is negative", qty, sku))
		}
		if qty > 0 {
			loc.balances[sku] = qty
		}
	}

	return loc, nil
}

// Validate ensures the Location instance was properly constructed.
func (l *Location) Validate() error {
	if l == nil {
		return ErrLocationIsNotConstructed
	}
	return l.guard.Validate(ErrLocationIsNotConstructed)
}

// ID returns the location's name.
func (l *Location) ID() string {
	return l.id
}

// Balance returns the current balance of the given SKU, zero if the location
// never held it.
func (l *Location) Balance(sku string) int {
	return l.balances[sku]
}

// Balances returns a copy of all non-zero per-SKU balances.
func (l *Location) Balances() map[string]int {
	out := make(map[string]int, len(l.balances))
	for sku, qty := range l.balances {
		out[sku] = qty
	}
	return out
}

// Credit adds qty units of sku to the location.
func (l *Location) Credit(sku string, qty int) error {
	if sku == "" {
		return errs.NewValueIsRequiredError("sku")
	}
	if qty <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("qty",
			fmt.Errorf("%d is not greater than 0", qty))
	}

	l.balances[sku] += qty
	return nil
}

// Debit removes qty units of sku from the location. Fails with an
// InsufficientResourceError if the balance cannot cover qty; the balance is
// untouched on failure.
func (l *Location) Debit(sku string, qty int) error {
	if sku == "" {
		return errs.NewValueIsRequiredError("sku")
	}
	if qty <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("qty",
			fmt.Errorf("%d is not greater than 0", qty))
	}

	balance := l.balances[sku]
	if balance < qty {
		return errs.NewInsufficientResourceError(
			fmt.Sprintf("stock of %s at %s", sku, l.id), qty, balance)
	}

	if balance == qty {
		delete(l.balances, sku)
	} else {
		l.balances[sku] = balance - qty
	}
	return nil
}
