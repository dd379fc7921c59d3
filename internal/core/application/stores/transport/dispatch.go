package transport

import (
	"context"
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/guard"
)

// ErrDispatchCommandIsNotConstructed is returned when a DispatchCommand was
// not created via its constructor.
var ErrDispatchCommandIsNotConstructed = errors.New(
	"DispatchCommand must be created via NewDispatchCommand constructor")

// DispatchCommand sends a planned shipment on its way.
type DispatchCommand struct { //nolint:recvcheck //using for validation
	shipmentID kernel.UUID

	guard guard.ConstructorGuard
}

// NewDispatchCommand creates a command to dispatch a shipment.
func NewDispatchCommand(shipmentID kernel.UUID) (DispatchCommand, error) {
	cmd := DispatchCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := cmd.setShipmentID(shipmentID); err != nil {
		return DispatchCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c DispatchCommand) Validate() error {
	return c.guard.Validate(ErrDispatchCommandIsNotConstructed)
}

// ShipmentID returns the shipment's identifier.
func (c DispatchCommand) ShipmentID() kernel.UUID {
	return c.shipmentID
}

func (c *DispatchCommand) setShipmentID(shipmentID kernel.UUID) error {
	if err := shipmentID.Validate(); err != nil {
		return err
	}
	c.shipmentID = shipmentID
	return nil
}

// Dispatch advances a planned shipment to Dispatched. Any other status fails
// with a StateConflictError and changes nothing.
func (s Store) Dispatch(ctx context.Context, cmd DispatchCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := s.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	load, err := uow.ShipmentRepository().Get(ctx, cmd.ShipmentID())
	if err != nil {
		return err
	}

	if err = load.Dispatch(); err != nil {
		return err
	}

	if err = uow.ShipmentRepository().Update(ctx, load); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
