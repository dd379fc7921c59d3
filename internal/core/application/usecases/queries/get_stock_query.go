package queries

import (
	"errors"

	"fulfillment/internal/pkg/guard"
)

var (
	// ErrGetStockQueryIsNotConstructed is returned when a GetStockQuery was
	// not created through the constructor.
	ErrGetStockQueryIsNotConstructed = errors.New(
		"GetStockQuery must be created via NewGetStockQuery constructor",
	)
)

// GetStockQuery retrieves the physical stock balances of every warehouse
// location. This is a parameterless query; empty locations are included with
// no balance rows.
type GetStockQuery struct {
	guard guard.ConstructorGuard
}

// NewGetStockQuery creates a query for the full warehouse stock snapshot.
func NewGetStockQuery() GetStockQuery {
	return GetStockQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetStockQuery) Validate() error {
	return q.guard.Validate(ErrGetStockQueryIsNotConstructed)
}

// GetStockQueryResponse maps location ids to per-SKU balances, alongside
// warehouse-wide totals per SKU.
type GetStockQueryResponse struct {
	Locations map[string]map[string]int
	Totals    map[string]int
}
