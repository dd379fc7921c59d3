package commands

import (
	"errors"

	"fulfillment/internal/pkg/errs"
	"fulfillment/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

// ErrSubmitPurchaseCommandIsNotConstructed is returned when a
// SubmitPurchaseCommand was not created via its constructor.
var ErrSubmitPurchaseCommandIsNotConstructed = errors.New(
	"SubmitPurchaseCommand must be created via NewSubmitPurchaseCommand constructor")

// SubmitPurchaseLine is one requested line of a procurement saga. The
// storage location is where the goods are put away after arriving at the
// receiving area.
type SubmitPurchaseLine struct {
	SKU               string
	Qty               int
	UnitCost          decimal.Decimal
	StorageLocationID string
}

// SubmitPurchaseCommand triggers the procurement saga: create a purchase
// order, then receive, put away and confirm every line.
type SubmitPurchaseCommand struct { //nolint:recvcheck //using for validation
	orderID    string
	supplierID string
	lines      []SubmitPurchaseLine

	guard guard.ConstructorGuard
}

// NewSubmitPurchaseCommand creates a command to run the procurement saga.
func NewSubmitPurchaseCommand(orderID, supplierID string, lines []SubmitPurchaseLine) (SubmitPurchaseCommand, error) {
	cmd := SubmitPurchaseCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setSupplierID(supplierID),
		cmd.setLines(lines),
	); err != nil {
		return SubmitPurchaseCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c SubmitPurchaseCommand) Validate() error {
	return c.guard.Validate(ErrSubmitPurchaseCommandIsNotConstructed)
}

// OrderID returns the purchase order's identifier.
func (c SubmitPurchaseCommand) OrderID() string {
	return c.orderID
}

// SupplierID returns the supplying partner's identifier.
func (c SubmitPurchaseCommand) SupplierID() string {
	return c.supplierID
}

// Lines returns the requested lines.
func (c SubmitPurchaseCommand) Lines() []SubmitPurchaseLine {
	return c.lines
}

func (c *SubmitPurchaseCommand) setOrderID(orderID string) error {
	if orderID == "" {
		return errs.NewValueIsRequiredError("orderId")
	}
	c.orderID = orderID
	return nil
}

func (c *SubmitPurchaseCommand) setSupplierID(supplierID string) error {
	if supplierID == "" {
		return errs.NewValueIsRequiredError("supplierId")
	}
	c.supplierID = supplierID
	return nil
}

func (c *SubmitPurchaseCommand) setLines(lines []SubmitPurchaseLine) error {
	if len(lines) == 0 {
		return errs.NewValueIsRequiredError("lines")
	}
	for _, l := range lines {
		if l.StorageLocationID == "" {
			return errs.NewValueIsRequiredError("storageLocationId")
		}
	}
	c.lines = lines
	return nil
}
