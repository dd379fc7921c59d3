package ledger

import (
	"context"
	"errors"
	"fmt"

	"fulfillment/internal/core/domain/model/partner"
	"fulfillment/internal/core/domain/model/purchaseorder"
	"fulfillment/internal/pkg/errs"
	"fulfillment/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

// ErrCreatePurchaseOrderCommandIsNotConstructed is returned when a
// CreatePurchaseOrderCommand was not created via its constructor.
var ErrCreatePurchaseOrderCommandIsNotConstructed = errors.New(
	"CreatePurchaseOrderCommand must be created via NewCreatePurchaseOrderCommand constructor")

// PurchaseLine is one requested line of a purchase order.
type PurchaseLine struct {
	SKU      string
	Qty      int
	UnitCost decimal.Decimal
}

// CreatePurchaseOrderCommand requests the creation of a purchase order with
// the given supplier and lines.
type CreatePurchaseOrderCommand struct { //nolint:recvcheck //using for validation
	orderID    string
	supplierID string
	lines      []PurchaseLine

	guard guard.ConstructorGuard
}

// NewCreatePurchaseOrderCommand creates a command to register a new purchase
// order. Line-level validation is left to the domain model.
func NewCreatePurchaseOrderCommand(orderID, supplierID string, lines []PurchaseLine) (CreatePurchaseOrderCommand, error) {
	cmd := CreatePurchaseOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setSupplierID(supplierID),
		cmd.setLines(lines),
	); err != nil {
		return CreatePurchaseOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreatePurchaseOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreatePurchaseOrderCommandIsNotConstructed)
}

// OrderID returns the purchase order's identifier.
func (c CreatePurchaseOrderCommand) OrderID() string {
	return c.orderID
}

// SupplierID returns the supplying partner's identifier.
func (c CreatePurchaseOrderCommand) SupplierID() string {
	return c.supplierID
}

// Lines returns the requested lines.
func (c CreatePurchaseOrderCommand) Lines() []PurchaseLine {
	return c.lines
}

func (c *CreatePurchaseOrderCommand) setOrderID(orderID string) error {
	if orderID == "" {
		return errs.NewValueIsRequiredError("orderId")
	}
	c.orderID = orderID
	return nil
}

func (c *CreatePurchaseOrderCommand) setSupplierID(supplierID string) error {
	if supplierID == "" {
		return errs.NewValueIsRequiredError("supplierId")
	}
	c.supplierID = supplierID
	return nil
}

func (c *CreatePurchaseOrderCommand) setLines(lines []PurchaseLine) error {
	if len(lines) == 0 {
		return errs.NewValueIsRequiredError("lines")
	}
	c.lines = lines
	return nil
}

// CreatePurchaseOrderResult reports the created order.
type CreatePurchaseOrderResult struct {
	OrderID string
	Status  purchaseorder.Status
}

// CreatePurchaseOrder creates a purchase order and releases it for
// receiving. The supplier and every line's SKU must already be registered;
// nothing is persisted on failure.
func (s Store) CreatePurchaseOrder(ctx context.Context, cmd CreatePurchaseOrderCommand) (CreatePurchaseOrderResult, error) {
	if err := cmd.Validate(); err != nil {
		return CreatePurchaseOrderResult{}, err
	}

	uow := s.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return CreatePurchaseOrderResult{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	supplier, err := uow.PartnerRepository().Get(ctx, cmd.SupplierID())
	if err != nil {
		return CreatePurchaseOrderResult{}, err
	}
	if supplier.Kind() != partner.KindSupplier {
		return CreatePurchaseOrderResult{}, errs.NewValueIsInvalidErrorWithCause("supplierId",
			fmt.Errorf("partner %s is not a supplier", cmd.SupplierID()))
	}

	lines := make([]*purchaseorder.Line, 0, len(cmd.Lines()))
	for _, pl := range cmd.Lines() {
		if _, err = uow.ProductRepository().Get(ctx, pl.SKU); err != nil {
			return CreatePurchaseOrderResult{}, err
		}

		line, lineErr := purchaseorder.NewLine(pl.SKU, pl.Qty, pl.UnitCost)
		if lineErr != nil {
			return CreatePurchaseOrderResult{}, lineErr
		}
		lines = append(lines, line)
	}

	po, err := purchaseorder.NewPurchaseOrder(cmd.OrderID(), cmd.SupplierID(), lines)
	if err != nil {
		return CreatePurchaseOrderResult{}, err
	}

	if err = po.ReleaseForReceiving(); err != nil {
		return CreatePurchaseOrderResult{}, err
	}

	if err = uow.PurchaseOrderRepository().Add(ctx, po); err != nil {
		return CreatePurchaseOrderResult{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return CreatePurchaseOrderResult{}, err
	}

	return CreatePurchaseOrderResult{OrderID: po.ID(), Status: po.Status()}, nil
}
