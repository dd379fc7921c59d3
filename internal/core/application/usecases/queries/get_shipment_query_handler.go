package queries

import (
	"context"
	"database/sql"
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/shipment"
	"fulfillment/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// GetShipmentQueryHandler retrieves a shipment read model from the database,
// bypassing the aggregate for display purposes.
type GetShipmentQueryHandler struct {
	db *gorm.DB
}

// NewGetShipmentQueryHandler creates a handler for shipment queries.
func NewGetShipmentQueryHandler(db *gorm.DB) GetShipmentQueryHandler {
	return GetShipmentQueryHandler{db: db}
}

// Handle executes the query. Returns an ObjectNotFoundError when no shipment
// exists with the requested id.
func (h GetShipmentQueryHandler) Handle(
	ctx context.Context,
	query GetShipmentQuery,
) (GetShipmentQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetShipmentQueryResponse{}, err
	}

	var resp GetShipmentQueryResponse
	var id uuid.UUID
	var status int
	var deliveredAt sql.NullTime

	row := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			origin_city,
			destination_city,
			carrier_id,
			estimated_cost,
			status,
			delivered_at
		FROM shipments
		WHERE id = ?
	`, query.ShipmentID().Bytes()).Row()

	err := row.Scan(
		&id,
		&resp.OriginCity,
		&resp.DestinationCity,
		&resp.CarrierID,
		&resp.EstimatedCost,
		&status,
		&deliveredAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return GetShipmentQueryResponse{}, errs.NewObjectNotFoundError("shipmentID", query.ShipmentID())
	}
	if err != nil {
		return GetShipmentQueryResponse{}, err
	}

	shipmentID, err := kernel.UUIDFromBytes(id[:])
	if err != nil {
		return GetShipmentQueryResponse{}, err
	}
	resp.ID = shipmentID
	resp.Status = shipment.Status(status).String()
	if deliveredAt.Valid {
		at := deliveredAt.Time.UTC()
		resp.DeliveredAt = &at
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			sku,
			qty,
			unit_weight,
			unit_volume
		FROM shipment_lines
		WHERE shipment_id = ?
		ORDER BY sku
	`, query.ShipmentID().Bytes()).Rows()
	if err != nil {
		return GetShipmentQueryResponse{}, err
	}
	defer rows.Close()

	totalWeight := decimal.Zero
	for rows.Next() {
		var line ShipmentLineResponse
		if err = rows.Scan(&line.SKU, &line.Qty, &line.UnitWeight, &line.UnitVolume); err != nil {
			return GetShipmentQueryResponse{}, err
		}
		totalWeight = totalWeight.Add(line.UnitWeight.Mul(decimal.NewFromInt(int64(line.Qty))))
		resp.Lines = append(resp.Lines, line)
	}

	if err = rows.Err(); err != nil {
		return GetShipmentQueryResponse{}, err
	}

	resp.TotalWeight = totalWeight
	return resp, nil
}
