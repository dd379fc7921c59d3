package ledger

import (
	"context"
	"errors"
	"fmt"

	"fulfillment/internal/core/domain/model/purchaseorder"
	"fulfillment/internal/pkg/errs"
	"fulfillment/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

// ErrConfirmReceiptCommandIsNotConstructed is returned when a
// ConfirmReceiptCommand was not created via its constructor.
var ErrConfirmReceiptCommandIsNotConstructed = errors.New(
	"ConfirmReceiptCommand must be created via NewConfirmReceiptCommand constructor")

// ConfirmReceiptCommand reports that qty units of one purchase order line
// arrived at the given unit cost.
type ConfirmReceiptCommand struct { //nolint:recvcheck //using for validation
	orderID  string
	sku      string
	qty      int
	unitCost decimal.Decimal

	guard guard.ConstructorGuard
}

// NewConfirmReceiptCommand creates a command to confirm a receipt against a
// purchase order line.
func NewConfirmReceiptCommand(orderID, sku string, qty int, unitCost decimal.Decimal) (ConfirmReceiptCommand, error) {
	cmd := ConfirmReceiptCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setSKU(sku),
		cmd.setQty(qty),
		cmd.setUnitCost(unitCost),
	); err != nil {
		return ConfirmReceiptCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c ConfirmReceiptCommand) Validate() error {
	return c.guard.Validate(ErrConfirmReceiptCommandIsNotConstructed)
}

// OrderID returns the purchase order's identifier.
func (c ConfirmReceiptCommand) OrderID() string {
	return c.orderID
}

// SKU returns the received line's stock keeping unit.
func (c ConfirmReceiptCommand) SKU() string {
	return c.sku
}

// Qty returns the received quantity.
func (c ConfirmReceiptCommand) Qty() int {
	return c.qty
}

// UnitCost returns the received unit cost.
func (c ConfirmReceiptCommand) UnitCost() decimal.Decimal {
	return c.unitCost
}

func (c *ConfirmReceiptCommand) setOrderID(orderID string) error {
	if orderID == "" {
		return errs.NewValueIsRequiredError("orderId")
	}
	c.orderID = orderID
	return nil
}

func (c *ConfirmReceiptCommand) setSKU(sku string) error {
	if sku == "" {
		return errs.NewValueIsRequiredError("sku")
	}
	c.sku = sku
	return nil
}

func (c *ConfirmReceiptCommand) setQty(qty int) error {
	if qty <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("qty",
			fmt.Errorf("%d is not greater than 0", qty))
	}
	c.qty = qty
	return nil
}

func (c *ConfirmReceiptCommand) setUnitCost(cost decimal.Decimal) error {
	if cost.IsNegative() {
		return errs.NewValueIsInvalidErrorWithCause("unitCost",
			fmt.Errorf("%s is negative", cost))
	}
	c.unitCost = cost
	return nil
}

// ConfirmReceiptResult reports the order's status after the confirmation and
// the catalog's recomputed average cost for the SKU.
type ConfirmReceiptResult struct {
	OrderStatus    purchaseorder.Status
	NewAverageCost decimal.Decimal
}

// ConfirmReceipt applies a receipt confirmation to the purchase order and
// folds the received cost into the catalog's weighted average. A duplicate
// confirmation after a line is fully received is rejected with a
// StateConflictError and changes nothing.
func (s Store) ConfirmReceipt(ctx context.Context, cmd ConfirmReceiptCommand) (ConfirmReceiptResult, error) {
	if err := cmd.Validate(); err != nil {
		return ConfirmReceiptResult{}, err
	}

	uow := s.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return ConfirmReceiptResult{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	po, err := uow.PurchaseOrderRepository().Get(ctx, cmd.OrderID())
	if err != nil {
		return ConfirmReceiptResult{}, err
	}

	product, err := uow.ProductRepository().Get(ctx, cmd.SKU())
	if err != nil {
		return ConfirmReceiptResult{}, err
	}

	if err = po.ConfirmReceipt(cmd.SKU(), cmd.Qty()); err != nil {
		return ConfirmReceiptResult{}, err
	}

	if err = product.ApplyReceipt(cmd.Qty(), cmd.UnitCost()); err != nil {
		return ConfirmReceiptResult{}, err
	}

	if err = uow.PurchaseOrderRepository().Update(ctx, po); err != nil {
		return ConfirmReceiptResult{}, err
	}

	if err = uow.ProductRepository().Update(ctx, product); err != nil {
		return ConfirmReceiptResult{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return ConfirmReceiptResult{}, err
	}

	return ConfirmReceiptResult{
		OrderStatus:    po.Status(),
		NewAverageCost: product.AverageCost(),
	}, nil
}
