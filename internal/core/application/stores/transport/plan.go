package transport

import (
	"context"
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

// ErrPlanCommandIsNotConstructed is returned when a PlanCommand was not
// created via its constructor.
var ErrPlanCommandIsNotConstructed = errors.New(
	"PlanCommand must be created via NewPlanCommand constructor")

// PlanCommand requests carrier selection and cost estimation for a created
// shipment.
type PlanCommand struct { //nolint:recvcheck //using for validation
	shipmentID kernel.UUID

	guard guard.ConstructorGuard
}

// NewPlanCommand creates a command to plan a shipment.
func NewPlanCommand(shipmentID kernel.UUID) (PlanCommand, error) {
	cmd := PlanCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := cmd.setShipmentID(shipmentID); err != nil {
		return PlanCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c PlanCommand) Validate() error {
	return c.guard.Validate(ErrPlanCommandIsNotConstructed)
}

// ShipmentID returns the shipment's identifier.
func (c PlanCommand) ShipmentID() kernel.UUID {
	return c.shipmentID
}

func (c *PlanCommand) setShipmentID(shipmentID kernel.UUID) error {
	if err := shipmentID.Validate(); err != nil {
		return err
	}
	c.shipmentID = shipmentID
	return nil
}

// PlanResult reports the selected carrier and the estimated freight cost.
type PlanResult struct {
	CarrierID     string
	EstimatedCost decimal.Decimal
}

// Plan looks up the route distance for the shipment's city pair, selects the
// cheapest carrier and advances the shipment to Planned. A missing distance
// entry fails with an ObjectNotFoundError and the shipment stays Created; no
// distance is ever inferred or interpolated.
func (s Store) Plan(ctx context.Context, cmd PlanCommand) (PlanResult, error) {
	if err := cmd.Validate(); err != nil {
		return PlanResult{}, err
	}

	uow := s.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return PlanResult{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	load, err := uow.ShipmentRepository().Get(ctx, cmd.ShipmentID())
	if err != nil {
		return PlanResult{}, err
	}

	distance, err := uow.DistanceRepository().Get(ctx,
		load.Origin().City(), load.Destination().City())
	if err != nil {
		return PlanResult{}, err
	}

	carriers, err := uow.CarrierRepository().GetAll(ctx)
	if err != nil {
		return PlanResult{}, err
	}

	selection, err := s.selector.Select(load, carriers, distance)
	if err != nil {
		return PlanResult{}, err
	}

	if err = load.Plan(selection.Carrier.ID(), selection.EstimatedCost); err != nil {
		return PlanResult{}, err
	}

	if err = uow.ShipmentRepository().Update(ctx, load); err != nil {
		return PlanResult{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return PlanResult{}, err
	}

	return PlanResult{
		CarrierID:     load.CarrierID(),
		EstimatedCost: load.EstimatedCost(),
	}, nil
}
