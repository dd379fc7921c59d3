package queries

import (
	"errors"

	"fulfillment/internal/pkg/errs"
	"fulfillment/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var (
	// ErrGetPurchaseOrderQueryIsNotConstructed is returned when a
	// GetPurchaseOrderQuery was not created through the constructor.
	ErrGetPurchaseOrderQueryIsNotConstructed = errors.New(
		"GetPurchaseOrderQuery must be created via NewGetPurchaseOrderQuery constructor",
	)
)

// GetPurchaseOrderQuery retrieves a single purchase order with its lines.
//
// Example:
//
//	query, err := NewGetPurchaseOrderQuery("OC-2024-001")
//	if err != nil {
//	    return err
//	}
//
//	po, err := handler.Handle(ctx, query)
type GetPurchaseOrderQuery struct { //nolint:recvcheck //using for validation
	orderID string

	guard guard.ConstructorGuard
}

// NewGetPurchaseOrderQuery creates a query for the given purchase order id.
func NewGetPurchaseOrderQuery(orderID string) (GetPurchaseOrderQuery, error) {
	q := GetPurchaseOrderQuery{guard: guard.NewConstructorGuard()}

	if err := q.setOrderID(orderID); err != nil {
		return GetPurchaseOrderQuery{}, err
	}

	return q, nil
}

// Validate ensures the query was created through the constructor.
func (q GetPurchaseOrderQuery) Validate() error {
	return q.guard.Validate(ErrGetPurchaseOrderQueryIsNotConstructed)
}

// OrderID returns the purchase order identifier being queried.
func (q GetPurchaseOrderQuery) OrderID() string {
	return q.orderID
}

func (q *GetPurchaseOrderQuery) setOrderID(orderID string) error {
	if orderID == "" {
		return errs.NewValueIsRequiredError("orderID")
	}
	q.orderID = orderID
	return nil
}

// GetPurchaseOrderQueryResponse is the read model of a purchase order.
type GetPurchaseOrderQueryResponse struct {
	ID         string
	SupplierID string
	Status     string
	Lines      []PurchaseOrderLineResponse
}

// PurchaseOrderLineResponse is one line of a purchase order read model.
type PurchaseOrderLineResponse struct {
	SKU      string
	Ordered  int
	UnitCost decimal.Decimal
	Received int
}
