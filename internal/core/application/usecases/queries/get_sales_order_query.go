package queries

import (
	"errors"
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"
	"fulfillment/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var (
	// ErrGetSalesOrderQueryIsNotConstructed is returned when a
	// GetSalesOrderQuery was not created through the constructor.
	ErrGetSalesOrderQueryIsNotConstructed = errors.New(
		"GetSalesOrderQuery must be created via NewGetSalesOrderQuery constructor",
	)
)

// GetSalesOrderQuery retrieves a single sales order with its lines and, once
// shipped, the shipment it is bound to.
type GetSalesOrderQuery struct { //nolint:recvcheck //using for validation
	orderID string

	guard guard.ConstructorGuard
}

// NewGetSalesOrderQuery creates a query for the given sales order id.
func NewGetSalesOrderQuery(orderID string) (GetSalesOrderQuery, error) {
	q := GetSalesOrderQuery{guard: guard.NewConstructorGuard()}

	if err := q.setOrderID(orderID); err != nil {
		return GetSalesOrderQuery{}, err
	}

	return q, nil
}

// Validate ensures the query was created through the constructor.
func (q GetSalesOrderQuery) Validate() error {
	return q.guard.Validate(ErrGetSalesOrderQueryIsNotConstructed)
}

// OrderID returns the sales order identifier being queried.
func (q GetSalesOrderQuery) OrderID() string {
	return q.orderID
}

func (q *GetSalesOrderQuery) setOrderID(orderID string) error {
	if orderID == "" {
		return errs.NewValueIsRequiredError("orderID")
	}
	q.orderID = orderID
	return nil
}

// GetSalesOrderQueryResponse is the read model of a sales order.
// ShipmentID and DeliveredAt are nil until the order reaches the
// corresponding status.
type GetSalesOrderQueryResponse struct {
	ID          string
	CustomerID  string
	Status      string
	ShipmentID  *kernel.UUID
	DeliveredAt *time.Time
	TotalValue  decimal.Decimal
	Lines       []SalesOrderLineResponse
}

// SalesOrderLineResponse is one line of a sales order read model.
type SalesOrderLineResponse struct {
	SKU        string
	Qty        int
	UnitPrice  decimal.Decimal
	CostAtSale decimal.Decimal
	Picked     int
}
