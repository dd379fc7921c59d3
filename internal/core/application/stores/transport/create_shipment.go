package transport

import (
	"context"
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/shipment"
	"fulfillment/internal/pkg/errs"
	"fulfillment/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

// ErrCreateShipmentCommandIsNotConstructed is returned when a
// CreateShipmentCommand was not created via its constructor.
var ErrCreateShipmentCommandIsNotConstructed = errors.New(
	"CreateShipmentCommand must be created via NewCreateShipmentCommand constructor")

// ShipmentLine is one load item of a shipment, with its physical unit data.
type ShipmentLine struct {
	SKU        string
	Qty        int
	UnitWeight decimal.Decimal
	UnitVolume decimal.Decimal
}

// CreateShipmentCommand records a new load. The id is minted by the caller
// so both subsystems refer to the shipment by the same identifier.
type CreateShipmentCommand struct { //nolint:recvcheck //using for validation
	shipmentID  kernel.UUID
	origin      kernel.Address
	destination kernel.Address
	lines       []ShipmentLine

	guard guard.ConstructorGuard
}

// NewCreateShipmentCommand creates a command to record a new shipment.
func NewCreateShipmentCommand(
	shipmentID kernel.UUID,
	origin, destination kernel.Address,
	lines []ShipmentLine,
) (CreateShipmentCommand, error) {
	cmd := CreateShipmentCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setShipmentID(shipmentID),
		cmd.setAddresses(origin, destination),
		cmd.setLines(lines),
	); err != nil {
		return CreateShipmentCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateShipmentCommand) Validate() error {
	return c.guard.Validate(ErrCreateShipmentCommandIsNotConstructed)
}

// ShipmentID returns the shipment's identifier.
func (c CreateShipmentCommand) ShipmentID() kernel.UUID {
	return c.shipmentID
}

// Origin returns the pickup address.
func (c CreateShipmentCommand) Origin() kernel.Address {
	return c.origin
}

// Destination returns the drop-off address.
func (c CreateShipmentCommand) Destination() kernel.Address {
	return c.destination
}

// Lines returns the load lines.
func (c CreateShipmentCommand) Lines() []ShipmentLine {
	return c.lines
}

func (c *CreateShipmentCommand) setShipmentID(shipmentID kernel.UUID) error {
	if err := shipmentID.Validate(); err != nil {
		return err
	}
	c.shipmentID = shipmentID
	return nil
}

func (c *CreateShipmentCommand) setAddresses(origin, destination kernel.Address) error {
	if err := origin.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("origin", err)
	}
	if err := destination.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("destination", err)
	}
	c.origin = origin
	c.destination = destination
	return nil
}

func (c *CreateShipmentCommand) setLines(lines []ShipmentLine) error {
	if len(lines) == 0 {
		return errs.NewValueIsRequiredError("lines")
	}
	c.lines = lines
	return nil
}

// CreateShipment records a new shipment in Created status. No planning
// happens yet.
func (s Store) CreateShipment(ctx context.Context, cmd CreateShipmentCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	lines := make([]*shipment.Line, 0, len(cmd.Lines()))
	for _, sl := range cmd.Lines() {
		line, err := shipment.NewLine(sl.SKU, sl.Qty, sl.UnitWeight, sl.UnitVolume)
		if err != nil {
			return err
		}
		lines = append(lines, line)
	}

	load, err := shipment.NewShipment(cmd.ShipmentID(), cmd.Origin(), cmd.Destination(), lines)
	if err != nil {
		return err
	}

	uow := s.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.ShipmentRepository().Add(ctx, load); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
