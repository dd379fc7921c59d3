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
	// ErrGetShipmentQueryIsNotConstructed is returned when a GetShipmentQuery
	// was not created through the constructor.
	ErrGetShipmentQueryIsNotConstructed = errors.New(
		"GetShipmentQuery must be created via NewGetShipmentQuery constructor",
	)
)

// GetShipmentQuery retrieves a single shipment with its lines.
type GetShipmentQuery struct { //nolint:recvcheck //using for validation
	shipmentID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetShipmentQuery creates a query for the given shipment id.
func NewGetShipmentQuery(shipmentID kernel.UUID) (GetShipmentQuery, error) {
	q := GetShipmentQuery{guard: guard.NewConstructorGuard()}

	if err := q.setShipmentID(shipmentID); err != nil {
		return GetShipmentQuery{}, err
	}

	return q, nil
}

// Validate ensures the query was created through the constructor.
func (q GetShipmentQuery) Validate() error {
	return q.guard.Validate(ErrGetShipmentQueryIsNotConstructed)
}

// ShipmentID returns the shipment identifier being queried.
func (q GetShipmentQuery) ShipmentID() kernel.UUID {
	return q.shipmentID
}

func (q *GetShipmentQuery) setShipmentID(shipmentID kernel.UUID) error {
	if err := shipmentID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("shipmentID", err)
	}
	q.shipmentID = shipmentID
	return nil
}

// GetShipmentQueryResponse is the read model of a shipment. CarrierID and
// EstimatedCost are zero until the shipment is planned; DeliveredAt is nil
// until delivery.
type GetShipmentQueryResponse struct {
	ID              kernel.UUID
	OriginCity      string
	DestinationCity string
	CarrierID       string
	EstimatedCost   decimal.Decimal
	Status          string
	DeliveredAt     *time.Time
	TotalWeight     decimal.Decimal
	Lines           []ShipmentLineResponse
}

// ShipmentLineResponse is one line of a shipment read model.
type ShipmentLineResponse struct {
	SKU        string
	Qty        int
	UnitWeight decimal.Decimal
	UnitVolume decimal.Decimal
}
