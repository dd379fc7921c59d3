package commands

import (
	"errors"

	"fulfillment/internal/pkg/errs"
	"fulfillment/internal/pkg/guard"
)

// ErrSubmitSaleCommandIsNotConstructed is returned when a SubmitSaleCommand
// was not created via its constructor.
var ErrSubmitSaleCommandIsNotConstructed = errors.New(
	"SubmitSaleCommand must be created via NewSubmitSaleCommand constructor")

// SubmitSaleLine is one requested line of an order-to-cash saga. The from
// location is the storage location the coordinator knows the SKU is kept in.
type SubmitSaleLine struct {
	SKU            string
	Qty            int
	FromLocationID string
}

// SubmitSaleCommand triggers the order-to-cash saga: sell, pick, ship,
// deliver and settle.
type SubmitSaleCommand struct { //nolint:recvcheck //using for validation
	orderID    string
	customerID string
	lines      []SubmitSaleLine

	guard guard.ConstructorGuard
}

// NewSubmitSaleCommand creates a command to run the order-to-cash saga.
func NewSubmitSaleCommand(orderID, customerID string, lines []SubmitSaleLine) (SubmitSaleCommand, error) {
	cmd := SubmitSaleCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setCustomerID(customerID),
		cmd.setLines(lines),
	); err != nil {
		return SubmitSaleCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c SubmitSaleCommand) Validate() error {
	return c.guard.Validate(ErrSubmitSaleCommandIsNotConstructed)
}

// OrderID returns the sales order's identifier.
func (c SubmitSaleCommand) OrderID() string {
	return c.orderID
}

// CustomerID returns the buying customer's identifier.
func (c SubmitSaleCommand) CustomerID() string {
	return c.customerID
}

// Lines returns the requested lines.
func (c SubmitSaleCommand) Lines() []SubmitSaleLine {
	return c.lines
}

func (c *SubmitSaleCommand) setOrderID(orderID string) error {
	if orderID == "" {
		return errs.NewValueIsRequiredError("orderId")
	}
	c.orderID = orderID
	return nil
}

func (c *SubmitSaleCommand) setCustomerID(customerID string) error {
	if customerID == "" {
		return errs.NewValueIsRequiredError("customerId")
	}
	c.customerID = customerID
	return nil
}

func (c *SubmitSaleCommand) setLines(lines []SubmitSaleLine) error {
	if len(lines) == 0 {
		return errs.NewValueIsRequiredError("lines")
	}
	for _, l := range lines {
		if l.FromLocationID == "" {
			return errs.NewValueIsRequiredError("fromLocationId")
		}
	}
	c.lines = lines
	return nil
}
