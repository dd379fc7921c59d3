package services

import (
	"fulfillment/internal/core/domain/model/shipment"
	"fulfillment/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// CarrierSelector is a domain service that plans a shipment: it evaluates
// every registered carrier against the route distance and the load's total
// weight and picks the cheapest one.
//
// Business rules:
//   - Cost per carrier is distance × total weight × carrier rate
//   - The minimum cost wins; ties break by carrier id ascending, so the
//     outcome is deterministic regardless of input order
//   - No registered carrier means the shipment cannot be planned
type CarrierSelector struct{}

// NewCarrierSelector creates a new CarrierSelector instance.
func NewCarrierSelector() CarrierSelector {
	return CarrierSelector{}
}

// Selection is the outcome of a carrier selection.
type Selection struct {
	Carrier       *shipment.Carrier
	EstimatedCost decimal.Decimal
}

// Select evaluates carriers for carrying the given shipment over distanceKm
// and returns the cheapest one with its cost estimate.
//
// Returns an ObjectNotFoundError when the carrier slice is empty, and a
// ValueIsInvalidError when the distance is not positive.
func (cs CarrierSelector) Select(
	s *shipment.Shipment,
	carriers []*shipment.Carrier,
	distanceKm decimal.Decimal,
) (Selection, error) {
	if err := s.Validate(); err != nil {
		return Selection{}, err
	}

	if !distanceKm.IsPositive() {
		return Selection{}, errs.NewValueIsInvalidError("distanceKm")
	}

	totalWeight := s.TotalWeight()

	var best *shipment.Carrier
	var bestCost decimal.Decimal

	for _, c := range carriers {
		if err := c.Validate(); err != nil {
			return Selection{}, err
		}

		cost := c.CostFor(distanceKm, totalWeight)
		if best == nil || cost.LessThan(bestCost) ||
			(cost.Equal(bestCost) && c.ID() < best.ID()) {
			best = c
			bestCost = cost
		}
	}

	if best == nil {
		return Selection{}, errs.NewObjectNotFoundError("carrier", "any")
	}

	return Selection{Carrier: best, EstimatedCost: bestCost}, nil
}
