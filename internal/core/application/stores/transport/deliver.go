package transport

import (
	"context"
	"errors"
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"
	"fulfillment/internal/pkg/guard"
)

// ErrDeliverCommandIsNotConstructed is returned when a DeliverCommand was
// not created via its constructor.
var ErrDeliverCommandIsNotConstructed = errors.New(
	"DeliverCommand must be created via NewDeliverCommand constructor")

// DeliverCommand records the arrival of a dispatched shipment.
type DeliverCommand struct { //nolint:recvcheck //using for validation
	shipmentID  kernel.UUID
	deliveredAt time.Time

	guard guard.ConstructorGuard
}

// NewDeliverCommand creates a command to record a shipment's delivery.
func NewDeliverCommand(shipmentID kernel.UUID, deliveredAt time.Time) (DeliverCommand, error) {
	cmd := DeliverCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setShipmentID(shipmentID),
		cmd.setDeliveredAt(deliveredAt),
	); err != nil {
		return DeliverCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c DeliverCommand) Validate() error {
	return c.guard.Validate(ErrDeliverCommandIsNotConstructed)
}

// ShipmentID returns the shipment's identifier.
func (c DeliverCommand) ShipmentID() kernel.UUID {
	return c.shipmentID
}

// DeliveredAt returns when the shipment arrived.
func (c DeliverCommand) DeliveredAt() time.Time {
	return c.deliveredAt
}

func (c *DeliverCommand) setShipmentID(shipmentID kernel.UUID) error {
	if err := shipmentID.Validate(); err != nil {
		return err
	}
	c.shipmentID = shipmentID
	return nil
}

func (c *DeliverCommand) setDeliveredAt(deliveredAt time.Time) error {
	if deliveredAt.IsZero() {
		return errs.NewValueIsRequiredError("deliveredAt")
	}
	c.deliveredAt = deliveredAt
	return nil
}

// Deliver advances a dispatched shipment to its terminal Delivered state and
// records the delivery timestamp. Any other status fails with a
// StateConflictError.
func (s Store) Deliver(ctx context.Context, cmd DeliverCommand) error {
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

	if err = load.Deliver(cmd.DeliveredAt()); err != nil {
		return err
	}

	if err = uow.ShipmentRepository().Update(ctx, load); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
