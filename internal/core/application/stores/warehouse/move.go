package warehouse

import (
	"context"
	"errors"
	"fmt"

	"fulfillment/internal/pkg/errs"
	"fulfillment/internal/pkg/guard"
)

// ErrMoveCommandIsNotConstructed is returned when a MoveCommand was not
// created via its constructor.
var ErrMoveCommandIsNotConstructed = errors.New(
	"MoveCommand must be created via NewMoveCommand constructor")

// MoveCommand relocates qty units of a SKU between two locations. Used for
// put-away and for staging; moves conserve the system-wide total per SKU.
type MoveCommand struct { //nolint:recvcheck //using for validation
	sku            string
	qty            int
	fromLocationID string
	toLocationID   string

	guard guard.ConstructorGuard
}

// NewMoveCommand creates a command to move stock between locations.
func NewMoveCommand(sku string, qty int, fromLocationID, toLocationID string) (MoveCommand, error) {
	cmd := MoveCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setSKU(sku),
		cmd.setQty(qty),
		cmd.setLocations(fromLocationID, toLocationID),
	); err != nil {
		return MoveCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c MoveCommand) Validate() error {
	return c.guard.Validate(ErrMoveCommandIsNotConstructed)
}

// SKU returns the moved stock keeping unit.
func (c MoveCommand) SKU() string {
	return c.sku
}

// Qty returns the moved quantity.
func (c MoveCommand) Qty() int {
	return c.qty
}

// FromLocationID returns the source location.
func (c MoveCommand) FromLocationID() string {
	return c.fromLocationID
}

// ToLocationID returns the target location.
func (c MoveCommand) ToLocationID() string {
	return c.toLocationID
}

func (c *MoveCommand) setSKU(sku string) error {
	if sku == "" {
		return errs.NewValueIsRequiredError("sku")
	}
	c.sku = sku
	return nil
}

func (c *MoveCommand) setQty(qty int) error {
	if qty <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("qty",
			fmt.Errorf("%d is not greater than 0", qty))
	}
	c.qty = qty
	return nil
}

func (c *MoveCommand) setLocations(fromLocationID, toLocationID string) error {
	if fromLocationID == "" {
		return errs.NewValueIsRequiredError("fromLocationId")
	}
	if toLocationID == "" {
		return errs.NewValueIsRequiredError("toLocationId")
	}
	if fromLocationID == toLocationID {
		return errs.NewValueIsInvalidErrorWithCause("toLocationId",
			fmt.Errorf("source and target are both %s", fromLocationID))
	}
	c.fromLocationID = fromLocationID
	c.toLocationID = toLocationID
	return nil
}

// Move atomically debits the source location and credits the target. A
// shortfall at the source rejects the whole move with an
// InsufficientResourceError; there is no partial move.
func (s Store) Move(ctx context.Context, cmd MoveCommand) error {
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

	if err := transfer(ctx, uow, cmd.SKU(), cmd.Qty(), cmd.FromLocationID(), cmd.ToLocationID()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
