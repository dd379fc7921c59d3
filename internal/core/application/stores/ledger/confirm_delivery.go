package ledger

import (
	"context"
	"errors"
	"time"

	"fulfillment/internal/core/domain/model/journal"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/salesorder"
	"fulfillment/internal/pkg/errs"
	"fulfillment/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

// ErrConfirmDeliveryCommandIsNotConstructed is returned when a
// ConfirmDeliveryCommand was not created via its constructor.
var ErrConfirmDeliveryCommandIsNotConstructed = errors.New(
	"ConfirmDeliveryCommand must be created via NewConfirmDeliveryCommand constructor")

// ConfirmDeliveryCommand reports that the shipment bound to a sales order
// was delivered.
type ConfirmDeliveryCommand struct { //nolint:recvcheck //using for validation
	shipmentID  kernel.UUID
	deliveredAt time.Time

	guard guard.ConstructorGuard
}

// NewConfirmDeliveryCommand creates a command to settle a delivered order.
func NewConfirmDeliveryCommand(shipmentID kernel.UUID, deliveredAt time.Time) (ConfirmDeliveryCommand, error) {
	cmd := ConfirmDeliveryCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setShipmentID(shipmentID),
		cmd.setDeliveredAt(deliveredAt),
	); err != nil {
		return ConfirmDeliveryCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c ConfirmDeliveryCommand) Validate() error {
	return c.guard.Validate(ErrConfirmDeliveryCommandIsNotConstructed)
}

// ShipmentID returns the delivered shipment's id.
func (c ConfirmDeliveryCommand) ShipmentID() kernel.UUID {
	return c.shipmentID
}

// DeliveredAt returns when the shipment arrived.
func (c ConfirmDeliveryCommand) DeliveredAt() time.Time {
	return c.deliveredAt
}

func (c *ConfirmDeliveryCommand) setShipmentID(shipmentID kernel.UUID) error {
	if err := shipmentID.Validate(); err != nil {
		return err
	}
	c.shipmentID = shipmentID
	return nil
}

func (c *ConfirmDeliveryCommand) setDeliveredAt(deliveredAt time.Time) error {
	if deliveredAt.IsZero() {
		return errs.NewValueIsRequiredError("deliveredAt")
	}
	c.deliveredAt = deliveredAt
	return nil
}

// ConfirmDeliveryResult reports the settled order and the posted amounts.
type ConfirmDeliveryResult struct {
	OrderID string
	Status  salesorder.Status
	Revenue decimal.Decimal
	COGS    decimal.Decimal
}

// ConfirmDelivery settles the sales order bound to the delivered shipment:
// the order reaches its terminal Delivered state, revenue and cost of goods
// sold are posted to the journal, and the customer's reserved credit
// exposure is released. COGS is valued at the average cost each line
// captured when the order was created, not the catalog's current cost.
func (s Store) ConfirmDelivery(ctx context.Context, cmd ConfirmDeliveryCommand) (ConfirmDeliveryResult, error) {
	if err := cmd.Validate(); err != nil {
		return ConfirmDeliveryResult{}, err
	}

	uow := s.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return ConfirmDeliveryResult{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	so, err := uow.SalesOrderRepository().GetByShipment(ctx, cmd.ShipmentID())
	if err != nil {
		return ConfirmDeliveryResult{}, err
	}

	if err = so.Deliver(cmd.DeliveredAt()); err != nil {
		return ConfirmDeliveryResult{}, err
	}

	revenue := so.TotalValue()

	cogs := decimal.Zero
	for _, line := range so.Lines() {
		cogs = cogs.Add(line.CostAtSale().Mul(decimal.NewFromInt(int64(line.Qty()))))
	}

	revenueEntry, err := journal.NewEntry(journal.KindRevenue, revenue, so.ID(), nil)
	if err != nil {
		return ConfirmDeliveryResult{}, err
	}

	cogsEntry, err := journal.NewEntry(journal.KindCOGS, cogs, so.ID(), nil)
	if err != nil {
		return ConfirmDeliveryResult{}, err
	}

	if err = uow.JournalRepository().Append(ctx, revenueEntry); err != nil {
		return ConfirmDeliveryResult{}, err
	}

	if err = uow.JournalRepository().Append(ctx, cogsEntry); err != nil {
		return ConfirmDeliveryResult{}, err
	}

	customer, err := uow.PartnerRepository().Get(ctx, so.CustomerID())
	if err != nil {
		return ConfirmDeliveryResult{}, err
	}

	if err = customer.ReleaseCredit(revenue); err != nil {
		return ConfirmDeliveryResult{}, err
	}

	if err = uow.PartnerRepository().Update(ctx, customer); err != nil {
		return ConfirmDeliveryResult{}, err
	}

	if err = uow.SalesOrderRepository().Update(ctx, so); err != nil {
		return ConfirmDeliveryResult{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return ConfirmDeliveryResult{}, err
	}

	return ConfirmDeliveryResult{
		OrderID: so.ID(),
		Status:  so.Status(),
		Revenue: revenue,
		COGS:    cogs,
	}, nil
}
