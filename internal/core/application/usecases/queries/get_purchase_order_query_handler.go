package queries

import (
	"context"
	"database/sql"
	"errors"

	"fulfillment/internal/core/domain/model/purchaseorder"
	"fulfillment/internal/pkg/errs"

	"gorm.io/gorm"
)

// GetPurchaseOrderQueryHandler retrieves a purchase order read model from the
// database, bypassing the aggregate for display purposes.
type GetPurchaseOrderQueryHandler struct {
	db *gorm.DB
}

// NewGetPurchaseOrderQueryHandler creates a handler for purchase order queries.
func NewGetPurchaseOrderQueryHandler(db *gorm.DB) GetPurchaseOrderQueryHandler {
	return GetPurchaseOrderQueryHandler{db: db}
}

// Handle executes the query. Returns an ObjectNotFoundError when no purchase
// order exists with the requested id.
func (h GetPurchaseOrderQueryHandler) Handle(
	ctx context.Context,
	query GetPurchaseOrderQuery,
) (GetPurchaseOrderQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetPurchaseOrderQueryResponse{}, err
	}

	var resp GetPurchaseOrderQueryResponse
	var status int

	row := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			supplier_id,
			status
		FROM purchase_orders
		WHERE id = ?
	`, query.OrderID()).Row()

	err := row.Scan(&resp.ID, &resp.SupplierID, &status)
	if errors.Is(err, sql.ErrNoRows) {
		return GetPurchaseOrderQueryResponse{}, errs.NewObjectNotFoundError("orderID", query.OrderID())
	}
	if err != nil {
		return GetPurchaseOrderQueryResponse{}, err
	}
	resp.Status = purchaseorder.Status(status).String()

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			sku,
			ordered,
			unit_cost,
			received
		FROM purchase_order_lines
		WHERE order_id = ?
		ORDER BY sku
	`, query.OrderID()).Rows()
	if err != nil {
		return GetPurchaseOrderQueryResponse{}, err
	}
	defer rows.Close()

	for rows.Next() {
		var line PurchaseOrderLineResponse
		if err = rows.Scan(&line.SKU, &line.Ordered, &line.UnitCost, &line.Received); err != nil {
			return GetPurchaseOrderQueryResponse{}, err
		}
		resp.Lines = append(resp.Lines, line)
	}

	if err = rows.Err(); err != nil {
		return GetPurchaseOrderQueryResponse{}, err
	}

	return resp, nil
}
