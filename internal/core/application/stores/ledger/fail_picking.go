package ledger

import (
	"context"
	"errors"

	"fulfillment/internal/core/domain/model/salesorder"
	"fulfillment/internal/pkg/errs"
	"fulfillment/internal/pkg/guard"
)

// ErrFailPickingCommandIsNotConstructed is returned when a FailPickingCommand
// was not created via its constructor.
var ErrFailPickingCommandIsNotConstructed = errors.New(
	"FailPickingCommand must be created via NewFailPickingCommand constructor")

// FailPickingCommand reports that picking failed for a sales order and the
// order must be aborted.
type FailPickingCommand struct { //nolint:recvcheck //using for validation
	orderID string

	guard guard.ConstructorGuard
}

// NewFailPickingCommand creates a command to abort a sales order after a
// picking failure.
func NewFailPickingCommand(orderID string) (FailPickingCommand, error) {
	cmd := FailPickingCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := cmd.setOrderID(orderID); err != nil {
		return FailPickingCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c FailPickingCommand) Validate() error {
	return c.guard.Validate(ErrFailPickingCommandIsNotConstructed)
}

// OrderID returns the sales order's identifier.
func (c FailPickingCommand) OrderID() string {
	return c.orderID
}

func (c *FailPickingCommand) setOrderID(orderID string) error {
	if orderID == "" {
		return errs.NewValueIsRequiredError("orderId")
	}
	c.orderID = orderID
	return nil
}

// FailPickingResult reports the aborted order's status.
type FailPickingResult struct {
	Status salesorder.Status
}

// FailPicking forces the sales order into the terminal PickFailed state and
// releases everything the order had reserved: per-line stock on the ledger's
// projection and the customer's credit exposure.
func (s Store) FailPicking(ctx context.Context, cmd FailPickingCommand) (FailPickingResult, error) {
	if err := cmd.Validate(); err != nil {
		return FailPickingResult{}, err
	}

	uow := s.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return FailPickingResult{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	so, err := uow.SalesOrderRepository().Get(ctx, cmd.OrderID())
	if err != nil {
		return FailPickingResult{}, err
	}

	if err = so.FailPicking(); err != nil {
		return FailPickingResult{}, err
	}

	for _, line := range so.Lines() {
		product, prodErr := uow.ProductRepository().Get(ctx, line.SKU())
		if prodErr != nil {
			return FailPickingResult{}, prodErr
		}

		if err = product.Release(line.Qty()); err != nil {
			return FailPickingResult{}, err
		}

		if err = uow.ProductRepository().Update(ctx, product); err != nil {
			return FailPickingResult{}, err
		}
	}

	customer, err := uow.PartnerRepository().Get(ctx, so.CustomerID())
	if err != nil {
		return FailPickingResult{}, err
	}

	if err = customer.ReleaseCredit(so.TotalValue()); err != nil {
		return FailPickingResult{}, err
	}

	if err = uow.PartnerRepository().Update(ctx, customer); err != nil {
		return FailPickingResult{}, err
	}

	if err = uow.SalesOrderRepository().Update(ctx, so); err != nil {
		return FailPickingResult{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return FailPickingResult{}, err
	}

	return FailPickingResult{Status: so.Status()}, nil
}
