package ledger

import (
	"context"
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/salesorder"
	"fulfillment/internal/pkg/errs"
	"fulfillment/internal/pkg/guard"
)

// ErrConfirmPickingCommandIsNotConstructed is returned when a
// ConfirmPickingCommand was not created via its constructor.
var ErrConfirmPickingCommandIsNotConstructed = errors.New(
	"ConfirmPickingCommand must be created via NewConfirmPickingCommand constructor")

// ConfirmPickingCommand reports the warehouse's picked quantities for a
// sales order. The caller decides success for the whole order before
// submitting this once; a partially successful pick goes through FailPicking
// instead.
type ConfirmPickingCommand struct { //nolint:recvcheck //using for validation
	orderID string
	picked  []salesorder.PickConfirmation

	guard guard.ConstructorGuard
}

// NewConfirmPickingCommand creates a command to confirm picking for a sales
// order.
func NewConfirmPickingCommand(orderID string, picked []salesorder.PickConfirmation) (ConfirmPickingCommand, error) {
	cmd := ConfirmPickingCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setPicked(picked),
	); err != nil {
		return ConfirmPickingCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c ConfirmPickingCommand) Validate() error {
	return c.guard.Validate(ErrConfirmPickingCommandIsNotConstructed)
}

// OrderID returns the sales order's identifier.
func (c ConfirmPickingCommand) OrderID() string {
	return c.orderID
}

// Picked returns the per-line picked quantities.
func (c ConfirmPickingCommand) Picked() []salesorder.PickConfirmation {
	return c.picked
}

func (c *ConfirmPickingCommand) setOrderID(orderID string) error {
	if orderID == "" {
		return errs.NewValueIsRequiredError("orderId")
	}
	c.orderID = orderID
	return nil
}

func (c *ConfirmPickingCommand) setPicked(picked []salesorder.PickConfirmation) error {
	if len(picked) == 0 {
		return errs.NewValueIsRequiredError("picked")
	}
	c.picked = picked
	return nil
}

// ConfirmPickingResult reports the order's status after the confirmation.
// ShipmentID is set once the order ships.
type ConfirmPickingResult struct {
	Status     salesorder.Status
	ShipmentID *kernel.UUID
}

// ConfirmPicking applies the warehouse's picking result to the sales order.
// Once every line is fully picked the order ships: a shipment id is minted
// and bound to it, and the reserved stock is consumed from the ledger's
// projection, since the goods are leaving the building.
func (s Store) ConfirmPicking(ctx context.Context, cmd ConfirmPickingCommand) (ConfirmPickingResult, error) {
	if err := cmd.Validate(); err != nil {
		return ConfirmPickingResult{}, err
	}

	uow := s.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return ConfirmPickingResult{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	so, err := uow.SalesOrderRepository().Get(ctx, cmd.OrderID())
	if err != nil {
		return ConfirmPickingResult{}, err
	}

	if err = so.ConfirmPicking(cmd.Picked(), kernel.NewUUID()); err != nil {
		return ConfirmPickingResult{}, err
	}

	if so.Status() == salesorder.Shipped {
		for _, line := range so.Lines() {
			product, prodErr := uow.ProductRepository().Get(ctx, line.SKU())
			if prodErr != nil {
				return ConfirmPickingResult{}, prodErr
			}

			if err = product.ConsumeReserved(line.Qty()); err != nil {
				return ConfirmPickingResult{}, err
			}

			if err = uow.ProductRepository().Update(ctx, product); err != nil {
				return ConfirmPickingResult{}, err
			}
		}
	}

	if err = uow.SalesOrderRepository().Update(ctx, so); err != nil {
		return ConfirmPickingResult{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return ConfirmPickingResult{}, err
	}

	return ConfirmPickingResult{Status: so.Status(), ShipmentID: so.ShipmentID()}, nil
}
