package ledger

import (
	"context"
	"errors"
	"fmt"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/partner"
	"fulfillment/internal/core/domain/model/salesorder"
	"fulfillment/internal/pkg/errs"
	"fulfillment/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

// ErrCreateSalesOrderCommandIsNotConstructed is returned when a
// CreateSalesOrderCommand was not created via its constructor.
var ErrCreateSalesOrderCommandIsNotConstructed = errors.New(
	"CreateSalesOrderCommand must be created via NewCreateSalesOrderCommand constructor")

// SaleLine is one requested line of a sales order. Price and cost come from
// the catalog, not from the caller.
type SaleLine struct {
	SKU string
	Qty int
}

// CreateSalesOrderCommand requests the creation of a sales order for the
// given customer and lines.
type CreateSalesOrderCommand struct { //nolint:recvcheck //using for validation
	orderID    string
	customerID string
	lines      []SaleLine

	guard guard.ConstructorGuard
}

// NewCreateSalesOrderCommand creates a command to register a new sales
// order.
func NewCreateSalesOrderCommand(orderID, customerID string, lines []SaleLine) (CreateSalesOrderCommand, error) {
	cmd := CreateSalesOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setCustomerID(customerID),
		cmd.setLines(lines),
	); err != nil {
		return CreateSalesOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateSalesOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateSalesOrderCommandIsNotConstructed)
}

// OrderID returns the sales order's identifier.
func (c CreateSalesOrderCommand) OrderID() string {
	return c.orderID
}

// CustomerID returns the buying customer's identifier.
func (c CreateSalesOrderCommand) CustomerID() string {
	return c.customerID
}

// Lines returns the requested lines.
func (c CreateSalesOrderCommand) Lines() []SaleLine {
	return c.lines
}

func (c *CreateSalesOrderCommand) setOrderID(orderID string) error {
	if orderID == "" {
		return errs.NewValueIsRequiredError("orderId")
	}
	c.orderID = orderID
	return nil
}

func (c *CreateSalesOrderCommand) setCustomerID(customerID string) error {
	if customerID == "" {
		return errs.NewValueIsRequiredError("customerId")
	}
	c.customerID = customerID
	return nil
}

func (c *CreateSalesOrderCommand) setLines(lines []SaleLine) error {
	if len(lines) == 0 {
		return errs.NewValueIsRequiredError("lines")
	}
	c.lines = lines
	return nil
}

// CreateSalesOrderResult reports the created order. CustomerAddress is the
// delivery destination the transport subsystem will ship to.
type CreateSalesOrderResult struct {
	OrderID         string
	Status          salesorder.Status
	TotalValue      decimal.Decimal
	CustomerAddress kernel.Address
}

// CreateSalesOrder creates a sales order, reserving both stock (per the
// ledger's own projection) and the customer's credit for the order total.
// Prices and the cost captured for later COGS come from the catalog at this
// moment. On any failure nothing is persisted: no partial reservation
// survives a rejected order.
func (s Store) CreateSalesOrder(ctx context.Context, cmd CreateSalesOrderCommand) (CreateSalesOrderResult, error) {
	if err := cmd.Validate(); err != nil {
		return CreateSalesOrderResult{}, err
	}

	uow := s.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return CreateSalesOrderResult{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	customer, err := uow.PartnerRepository().Get(ctx, cmd.CustomerID())
	if err != nil {
		return CreateSalesOrderResult{}, err
	}
	if customer.Kind() != partner.KindCustomer {
		return CreateSalesOrderResult{}, errs.NewValueIsInvalidErrorWithCause("customerId",
			fmt.Errorf("partner %s is not a customer", cmd.CustomerID()))
	}

	lines := make([]*salesorder.Line, 0, len(cmd.Lines()))
	for _, sl := range cmd.Lines() {
		product, prodErr := uow.ProductRepository().Get(ctx, sl.SKU)
		if prodErr != nil {
			return CreateSalesOrderResult{}, prodErr
		}

		line, lineErr := salesorder.NewLine(sl.SKU, sl.Qty, product.SalePrice(), product.AverageCost())
		if lineErr != nil {
			return CreateSalesOrderResult{}, lineErr
		}
		lines = append(lines, line)

		if err = product.Reserve(sl.Qty); err != nil {
			return CreateSalesOrderResult{}, err
		}

		if err = uow.ProductRepository().Update(ctx, product); err != nil {
			return CreateSalesOrderResult{}, err
		}
	}

	so, err := salesorder.NewSalesOrder(cmd.OrderID(), cmd.CustomerID(), lines)
	if err != nil {
		return CreateSalesOrderResult{}, err
	}

	if err = customer.ReserveCredit(so.TotalValue()); err != nil {
		return CreateSalesOrderResult{}, err
	}

	if err = so.ReleaseToWarehouse(); err != nil {
		return CreateSalesOrderResult{}, err
	}

	if err = uow.PartnerRepository().Update(ctx, customer); err != nil {
		return CreateSalesOrderResult{}, err
	}

	if err = uow.SalesOrderRepository().Add(ctx, so); err != nil {
		return CreateSalesOrderResult{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return CreateSalesOrderResult{}, err
	}

	return CreateSalesOrderResult{
		OrderID:         so.ID(),
		Status:          so.Status(),
		TotalValue:      so.TotalValue(),
		CustomerAddress: customer.Address(),
	}, nil
}
