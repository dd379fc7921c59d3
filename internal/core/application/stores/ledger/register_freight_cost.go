package ledger

import (
	"context"
	"errors"
	"fmt"

	"fulfillment/internal/core/domain/model/journal"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"
	"fulfillment/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

// ErrRegisterFreightCostCommandIsNotConstructed is returned when a
// RegisterFreightCostCommand was not created via its constructor.
var ErrRegisterFreightCostCommandIsNotConstructed = errors.New(
	"RegisterFreightCostCommand must be created via NewRegisterFreightCostCommand constructor")

// RegisterFreightCostCommand posts a freight cost reported by the transport
// subsystem against the sales order bound to the shipment.
type RegisterFreightCostCommand struct { //nolint:recvcheck //using for validation
	shipmentID kernel.UUID
	amount     decimal.Decimal

	guard guard.ConstructorGuard
}

// NewRegisterFreightCostCommand creates a command to post a freight cost.
func NewRegisterFreightCostCommand(shipmentID kernel.UUID, amount decimal.Decimal) (RegisterFreightCostCommand, error) {
	cmd := RegisterFreightCostCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setShipmentID(shipmentID),
		cmd.setAmount(amount),
	); err != nil {
		return RegisterFreightCostCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c RegisterFreightCostCommand) Validate() error {
	return c.guard.Validate(ErrRegisterFreightCostCommandIsNotConstructed)
}

// ShipmentID returns the shipment the cost belongs to.
func (c RegisterFreightCostCommand) ShipmentID() kernel.UUID {
	return c.shipmentID
}

// Amount returns the freight cost.
func (c RegisterFreightCostCommand) Amount() decimal.Decimal {
	return c.amount
}

func (c *RegisterFreightCostCommand) setShipmentID(shipmentID kernel.UUID) error {
	if err := shipmentID.Validate(); err != nil {
		return err
	}
	c.shipmentID = shipmentID
	return nil
}

func (c *RegisterFreightCostCommand) setAmount(amount decimal.Decimal) error {
	if !amount.IsPositive() {
		return errs.NewValueIsInvalidErrorWithCause("amount",
			fmt.Errorf("%s is not greater than 0", amount))
	}
	c.amount = amount
	return nil
}

// RegisterFreightCost appends a freight journal entry linked to the sales
// order bound to the shipment. Fails with an ObjectNotFoundError when no
// order references the shipment.
func (s Store) RegisterFreightCost(ctx context.Context, cmd RegisterFreightCostCommand) error {
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

	so, err := uow.SalesOrderRepository().GetByShipment(ctx, cmd.ShipmentID())
	if err != nil {
		return err
	}

	shipmentID := cmd.ShipmentID()
	entry, err := journal.NewEntry(journal.KindFreight, cmd.Amount(), so.ID(), &shipmentID)
	if err != nil {
		return err
	}

	if err = uow.JournalRepository().Append(ctx, entry); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
