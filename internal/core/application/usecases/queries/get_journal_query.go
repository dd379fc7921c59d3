package queries

import (
	"errors"
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var (
	// ErrGetJournalQueryIsNotConstructed is returned when a GetJournalQuery
	// was not created through the constructor.
	ErrGetJournalQueryIsNotConstructed = errors.New(
		"GetJournalQuery must be created via NewGetJournalQuery constructor",
	)
)

// GetJournalQuery retrieves journal entries in posting order. An order id
// filter narrows the listing to a single sales order; an empty filter returns
// the whole journal.
type GetJournalQuery struct { //nolint:recvcheck //using for validation
	orderID string

	guard guard.ConstructorGuard
}

// NewGetJournalQuery creates a query over the whole journal.
func NewGetJournalQuery() GetJournalQuery {
	return GetJournalQuery{guard: guard.NewConstructorGuard()}
}

// NewGetJournalQueryForOrder creates a query scoped to one order's entries.
func NewGetJournalQueryForOrder(orderID string) GetJournalQuery {
	q := NewGetJournalQuery()
	q.orderID = orderID
	return q
}

// Validate ensures the query was created through the constructor.
func (q GetJournalQuery) Validate() error {
	return q.guard.Validate(ErrGetJournalQueryIsNotConstructed)
}

// OrderID returns the order filter, empty when the query spans the whole
// journal.
func (q GetJournalQuery) OrderID() string {
	return q.orderID
}

// GetJournalQueryResponse is one journal entry in the listing.
type GetJournalQueryResponse struct {
	ID         kernel.UUID
	Kind       string
	Amount     decimal.Decimal
	OrderID    string
	ShipmentID *kernel.UUID
	PostedAt   time.Time
}
