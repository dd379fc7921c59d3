package warehouse

import (
	"context"
	"errors"
	"fmt"

	"fulfillment/internal/pkg/errs"
	"fulfillment/internal/pkg/guard"
)

// ErrReceiveCommandIsNotConstructed is returned when a ReceiveCommand was
// not created via its constructor.
var ErrReceiveCommandIsNotConstructed = errors.New(
	"ReceiveCommand must be created via NewReceiveCommand constructor")

// ReceiveCommand brings qty units of a SKU into the warehouse at the given
// location.
type ReceiveCommand struct { //nolint:recvcheck //using for validation
	sku        string
	qty        int
	locationID string

	guard guard.ConstructorGuard
}

// NewReceiveCommand creates a command to receive stock.
func NewReceiveCommand(sku string, qty int, locationID string) (ReceiveCommand, error) {
	cmd := ReceiveCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setSKU(sku),
		cmd.setQty(qty),
		cmd.setLocationID(locationID),
	); err != nil {
		return ReceiveCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c ReceiveCommand) Validate() error {
	return c.guard.Validate(ErrReceiveCommandIsNotConstructed)
}

// SKU returns the received stock keeping unit.
func (c ReceiveCommand) SKU() string {
	return c.sku
}

// Qty returns the received quantity.
func (c ReceiveCommand) Qty() int {
	return c.qty
}

// LocationID returns where the stock lands.
func (c ReceiveCommand) LocationID() string {
	return c.locationID
}

func (c *ReceiveCommand) setSKU(sku string) error {
	if sku == "" {
		return errs.NewValueIsRequiredError("sku")
	}
	c.sku = sku
	return nil
}

func (c *ReceiveCommand) setQty(qty int) error {
	if qty <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("qty",
			fmt.Errorf("%d is not greater than 0", qty))
	}
	c.qty = qty
	return nil
}

func (c *ReceiveCommand) setLocationID(locationID string) error {
	if locationID == "" {
		return errs.NewValueIsRequiredError("locationId")
	}
	c.locationID = locationID
	return nil
}

// ReceiveResult reports the location's balance for the SKU after the
// receipt.
type ReceiveResult struct {
	Balance int
}

// Receive credits the location's balance for the SKU. Both the SKU and the
// location must be registered in the warehouse; receiving is the only way
// stock enters the system.
func (s Store) Receive(ctx context.Context, cmd ReceiveCommand) (ReceiveResult, error) {
	if err := cmd.Validate(); err != nil {
		return ReceiveResult{}, err
	}

	uow := s.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return ReceiveResult{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if _, err := uow.ItemRepository().Get(ctx, cmd.SKU()); err != nil {
		return ReceiveResult{}, err
	}

	location, err := uow.LocationRepository().Get(ctx, cmd.LocationID())
	if err != nil {
		return ReceiveResult{}, err
	}

	if err = location.Credit(cmd.SKU(), cmd.Qty()); err != nil {
		return ReceiveResult{}, err
	}

	if err = uow.LocationRepository().Update(ctx, location); err != nil {
		return ReceiveResult{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return ReceiveResult{}, err
	}

	return ReceiveResult{Balance: location.Balance(cmd.SKU())}, nil
}
