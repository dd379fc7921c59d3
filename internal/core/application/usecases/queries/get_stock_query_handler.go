package queries

import (
	"context"

	"gorm.io/gorm"
)

// GetStockQueryHandler retrieves warehouse stock balances from the database.
type GetStockQueryHandler struct {
	db *gorm.DB
}

// NewGetStockQueryHandler creates a handler for stock snapshot queries.
func NewGetStockQueryHandler(db *gorm.DB) GetStockQueryHandler {
	return GetStockQueryHandler{db: db}
}

// Handle executes the query. Every known location appears in the response,
// including locations that currently hold nothing.
func (h GetStockQueryHandler) Handle(
	ctx context.Context,
	query GetStockQuery,
) (GetStockQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetStockQueryResponse{}, err
	}

	resp := GetStockQueryResponse{
		Locations: make(map[string]map[string]int),
		Totals:    make(map[string]int),
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			l.id,
			b.sku,
			b.qty
		FROM locations l
		LEFT JOIN location_balances b ON b.location_id = l.id
		ORDER BY l.id, b.sku
	`).Rows()
	if err != nil {
		return GetStockQueryResponse{}, err
	}
	defer rows.Close()

	for rows.Next() {
		var locationID string
		var sku *string
		var qty *int

		if err = rows.Scan(&locationID, &sku, &qty); err != nil {
			return GetStockQueryResponse{}, err
		}

		if _, ok := resp.Locations[locationID]; !ok {
			resp.Locations[locationID] = make(map[string]int)
		}
		if sku != nil && qty != nil && *qty != 0 {
			resp.Locations[locationID][*sku] = *qty
			resp.Totals[*sku] += *qty
		}
	}

	if err = rows.Err(); err != nil {
		return GetStockQueryResponse{}, err
	}

	return resp, nil
}
