package warehouse

import (
	"context"
	"errors"
	"fmt"

	"fulfillment/internal/pkg/errs"
	"fulfillment/internal/pkg/guard"
)

// ErrPickCommandIsNotConstructed is returned when a PickCommand was not
// created via its constructor.
var ErrPickCommandIsNotConstructed = errors.New(
	"PickCommand must be created via NewPickCommand constructor")

// PickCommand takes qty units of a SKU from a storage location into the
// picking area. Semantically a move; it exists as its own operation so the
// coordinator can treat picking failures distinctly from generic relocation
// failures.
type PickCommand struct { //nolint:recvcheck //using for validation
	sku            string
	qty            int
	fromLocationID string
	pickLocationID string

	guard guard.ConstructorGuard
}

// NewPickCommand creates a command to pick stock for an order.
func NewPickCommand(sku string, qty int, fromLocationID, pickLocationID string) (PickCommand, error) {
	cmd := PickCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setSKU(sku),
		cmd.setQty(qty),
		cmd.setLocations(fromLocationID, pickLocationID),
	); err != nil {
		return PickCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c PickCommand) Validate() error {
	return c.guard.Validate(ErrPickCommandIsNotConstructed)
}

// SKU returns the picked stock keeping unit.
func (c PickCommand) SKU() string {
	return c.sku
}

// Qty returns the picked quantity.
func (c PickCommand) Qty() int {
	return c.qty
}

// FromLocationID returns the storage location picked from.
func (c PickCommand) FromLocationID() string {
	return c.fromLocationID
}

// PickLocationID returns the picking area the stock lands in.
func (c PickCommand) PickLocationID() string {
	return c.pickLocationID
}

func (c *PickCommand) setSKU(sku string) error {
	if sku == "" {
		return errs.NewValueIsRequiredError("sku")
	}
	c.sku = sku
	return nil
}

func (c *PickCommand) setQty(qty int) error {
	if qty <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("qty",
			fmt.Errorf("%d is not greater than 0", qty))
	}
	c.qty = qty
	return nil
}

func (c *PickCommand) setLocations(fromLocationID, pickLocationID string) error {
	if fromLocationID == "" {
		return errs.NewValueIsRequiredError("fromLocationId")
	}
	if pickLocationID == "" {
		return errs.NewValueIsRequiredError("pickLocationId")
	}
	if fromLocationID == pickLocationID {
		return errs.NewValueIsInvalidErrorWithCause("pickLocationId",
			fmt.Errorf("source and picking area are both %s", fromLocationID))
	}
	c.fromLocationID = fromLocationID
	c.pickLocationID = pickLocationID
	return nil
}

// Pick moves stock from storage into the picking area, with the same
// all-or-nothing semantics as Move.
func (s Store) Pick(ctx context.Context, cmd PickCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := s.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err := transfer(ctx, uow, cmd.SKU(), cmd.Qty(), cmd.FromLocationID(), cmd.PickLocationID()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
