package queries

import (
	"context"
	"database/sql"
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/salesorder"
	"fulfillment/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// GetSalesOrderQueryHandler retrieves a sales order read model from the
// database, bypassing the aggregate for display purposes.
type GetSalesOrderQueryHandler struct {
	db *gorm.DB
}

// NewGetSalesOrderQueryHandler creates a handler for sales order queries.
func NewGetSalesOrderQueryHandler(db *gorm.DB) GetSalesOrderQueryHandler {
	return GetSalesOrderQueryHandler{db: db}
}

// Handle executes the query. Returns an ObjectNotFoundError when no sales
// order exists with the requested id. TotalValue is computed from the lines
// at their captured sale prices.
func (h GetSalesOrderQueryHandler) Handle(
	ctx context.Context,
	query GetSalesOrderQuery,
) (GetSalesOrderQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetSalesOrderQueryResponse{}, err
	}

	var resp GetSalesOrderQueryResponse
	var status int
	var shipmentID uuid.NullUUID
	var deliveredAt sql.NullTime

	row := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			customer_id,
			status,
			shipment_id,
			delivered_at
		FROM sales_orders
		WHERE id = ?
	`, query.OrderID()).Row()

	err := row.Scan(&resp.ID, &resp.CustomerID, &status, &shipmentID, &deliveredAt)
	if errors.Is(err, sql.ErrNoRows) {
		return GetSalesOrderQueryResponse{}, errs.NewObjectNotFoundError("orderID", query.OrderID())
	}
	if err != nil {
		return GetSalesOrderQueryResponse{}, err
	}

	resp.Status = salesorder.Status(status).String()
	if shipmentID.Valid {
		sid, idErr := kernel.UUIDFromBytes(shipmentID.UUID[:])
		if idErr != nil {
			return GetSalesOrderQueryResponse{}, idErr
		}
		resp.ShipmentID = &sid
	}
	if deliveredAt.Valid {
		at := deliveredAt.Time.UTC()
		resp.DeliveredAt = &at
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			sku,
			qty,
			unit_price,
			cost_at_sale,
			picked
		FROM sales_order_lines
		WHERE order_id = ?
		ORDER BY sku
	`, query.OrderID()).Rows()
	if err != nil {
		return GetSalesOrderQueryResponse{}, err
	}
	defer rows.Close()

	total := decimal.Zero
	for rows.Next() {
		var line SalesOrderLineResponse
		if err = rows.Scan(&line.SKU, &line.Qty, &line.UnitPrice, &line.CostAtSale, &line.Picked); err != nil {
			return GetSalesOrderQueryResponse{}, err
		}
		total = total.Add(line.UnitPrice.Mul(decimal.NewFromInt(int64(line.Qty))))
		resp.Lines = append(resp.Lines, line)
	}

	if err = rows.Err(); err != nil {
		return GetSalesOrderQueryResponse{}, err
	}

	resp.TotalValue = total
	return resp, nil
}
