package salesorder

import (
	"errors"
	"fmt"
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"
	"fulfillment/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var (
	// ErrSalesOrderIsNotConstructed is returned when a SalesOrder was not
	// created through NewSalesOrder or RestoreSalesOrder.
	ErrSalesOrderIsNotConstructed = errors.New(
		"SalesOrder must be created via NewSalesOrder constructor")

	// ErrLineIsNotConstructed is returned when a Line was not created through
	// NewLine or RestoreLine.
	ErrLineIsNotConstructed = errors.New("Line must be created via NewLine constructor")
)

// PickConfirmation reports picked units for one SKU, as confirmed by the
// warehouse.
type PickConfirmation struct {
	SKU string
	Qty int
}

// Line is one sold item of a sales order. Besides the commercial quantities
// it captures the catalog's weighted average cost at the moment of sale, so
// that cost of goods sold recognized at delivery is insensitive to receipts
// that happen between sale and delivery.
//
// Invariant: picked never exceeds qty.
type Line struct {
	sku        string
	qty        int
	unitPrice  decimal.Decimal
	costAtSale decimal.Decimal
	picked     int

	guard guard.ConstructorGuard
}

// NewLine creates an unpicked sales order line. costAtSale is the catalog
// average cost captured when the order is created.
func NewLine(sku string, qty int, unitPrice, costAtSale decimal.Decimal) (*Line, error) {
	l := &Line{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		l.setSKU(sku),
		l.setQty(qty),
		l.setUnitPrice(unitPrice),
		l.setCostAtSale(costAtSale),
	); err != nil {
		return nil, err
	}

	return l, nil
}

// RestoreLine reconstructs a line from persistent storage, including the
// quantity already picked.
func RestoreLine(sku string, qty int, unitPrice, costAtSale decimal.Decimal, picked int) (*Line, error) {
	l, err := NewLine(sku, qty, unitPrice, costAtSale)
	if err != nil {
		return nil, err
	}

	if picked < 0 || picked > qty {
		return nil, errs.NewValueIsOutOfRangeError("picked", picked, 0, qty)
	}

	l.picked = picked
	return l, nil
}

// Validate ensures the Line was properly constructed.
func (l *Line) Validate() error {
	if l == nil {
		return ErrLineIsNotConstructed
	}
	return l.guard.Validate(ErrLineIsNotConstructed)
}

// SKU returns the stock keeping unit the line refers to.
func (l *Line) SKU() string {
	return l.sku
}

// Qty returns the quantity sold.
func (l *Line) Qty() int {
	return l.qty
}

// UnitPrice returns the unit sale price.
func (l *Line) UnitPrice() decimal.Decimal {
	return l.unitPrice
}

// CostAtSale returns the weighted average unit cost captured when the order
// was created. Delivery posts COGS against this value.
func (l *Line) CostAtSale() decimal.Decimal {
	return l.costAtSale
}

// Picked returns the quantity picked so far.
func (l *Line) Picked() int {
	return l.picked
}

// IsPicked reports whether the line is fully picked.
func (l *Line) IsPicked() bool {
	return l.picked == l.qty
}

// Value returns qty times unit price.
func (l *Line) Value() decimal.Decimal {
	return l.unitPrice.Mul(decimal.NewFromInt(int64(l.qty)))
}

func (l *Line) setSKU(sku string) error {
	if sku == "" {
		return errs.NewValueIsRequiredError("sku")
	}
	l.sku = sku
	return nil
}

func (l *Line) setQty(qty int) error {
	if qty <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("qty",
			fmt.Errorf("%d is not greater than 0", qty))
	}
	l.qty = qty
	return nil
}

func (l *Line) setUnitPrice(price decimal.Decimal) error {
	if price.IsNegative() {
		return errs.NewValueIsInvalidErrorWithCause("unitPrice",
			fmt.Errorf("%s is negative", price))
	}
	l.unitPrice = price
	return nil
}

func (l *Line) setCostAtSale(cost decimal.Decimal) error {
	if cost.IsNegative() {
		return errs.NewValueIsInvalidErrorWithCause("costAtSale",
			fmt.Errorf("%s is negative", cost))
	}
	l.costAtSale = cost
	return nil
}

// SalesOrder is the aggregate root for a sale document (OV). It tracks sold
// lines through warehouse picking, shipment binding and delivery, or into the
// PickFailed terminal state when the warehouse cannot fulfill it.
//
// SalesOrder follows these invariants:
//   - ID and customer ID are non-empty, line set is non-empty
//   - Per line, picked quantity never exceeds sold quantity
//   - Status transitions follow the table in status.go and are monotonic
//   - The order carries a shipment id exactly from the moment it ships
//
// All mutation goes through validated transition methods; there is no setter
// that can bypass the checks.
type SalesOrder struct {
	id          string
	customerID  string
	lines       []*Line
	status      Status
	shipmentID  *kernel.UUID
	deliveredAt *time.Time

	guard guard.ConstructorGuard
}

// NewSalesOrder creates a sales order in Created status.
// The caller (the ledger store) reserves stock and credit, then releases it
// to the warehouse immediately after creation.
func NewSalesOrder(id, customerID string, lines []*Line) (*SalesOrder, error) {
	so := &SalesOrder{
		status: Created,
		guard:  guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		so.setID(id),
		so.setCustomerID(customerID),
		so.setLines(lines),
	); err != nil {
		return nil, err
	}

	return so, nil
}

// RestoreSalesOrder reconstructs a sales order from persistent storage with
// its previously persisted status, shipment binding and delivery timestamp.
func RestoreSalesOrder(
	id, customerID string,
	lines []*Line,
	status Status,
	shipmentID *kernel.UUID,
	deliveredAt *time.Time,
) (*SalesOrder, error) {
	if err := status.Validate(); err != nil {
		return nil, err
	}

	so, err := NewSalesOrder(id, customerID, lines)
	if err != nil {
		return nil, err
	}

	if shipmentID != nil {
		if err = shipmentID.Validate(); err != nil {
			return nil, err
		}
	}

	so.status = status
	so.shipmentID = shipmentID
	so.deliveredAt = deliveredAt
	return so, nil
}

// Validate ensures the SalesOrder instance was properly constructed.
func (so *SalesOrder) Validate() error {
	if so == nil {
		return ErrSalesOrderIsNotConstructed
	}
	return so.guard.Validate(ErrSalesOrderIsNotConstructed)
}

// ID returns the sales order's identifier.
func (so *SalesOrder) ID() string {
	return so.id
}

// CustomerID returns the customer the order was sold to.
func (so *SalesOrder) CustomerID() string {
	return so.customerID
}

// Status returns the current lifecycle status.
func (so *SalesOrder) Status() Status {
	return so.status
}

// ShipmentID returns the bound shipment's id, or nil before shipping.
func (so *SalesOrder) ShipmentID() *kernel.UUID {
	return so.shipmentID
}

// DeliveredAt returns the delivery timestamp, or nil before delivery.
func (so *SalesOrder) DeliveredAt() *time.Time {
	return so.deliveredAt
}

// Lines returns the order's lines. The slice is a copy; the lines themselves
// are only mutable through the aggregate.
func (so *SalesOrder) Lines() []*Line {
	lines := make([]*Line, len(so.lines))
	copy(lines, so.lines)
	return lines
}

// Line returns the line for the given SKU, or an ObjectNotFoundError if the
// SKU is not part of this order.
func (so *SalesOrder) Line(sku string) (*Line, error) {
	for _, l := range so.lines {
		if l.sku == sku {
			return l, nil
		}
	}
	return nil, errs.NewObjectNotFoundError("sku", sku)
}

// TotalValue returns the sum of all line values.
func (so *SalesOrder) TotalValue() decimal.Decimal {
	total := decimal.Zero
	for _, l := range so.lines {
		total = total.Add(l.Value())
	}
	return total
}

// ReleaseToWarehouse advances the order from Created to ReleasedToWarehouse,
// opening it for picking.
func (so *SalesOrder) ReleaseToWarehouse() error {
	newStatus, err := so.status.TransitionTo(ReleasedToWarehouse)
	if err != nil {
		return err
	}

	so.status = newStatus
	return nil
}

// ConfirmPicking accumulates picked quantities per line. Once every line is
// fully picked the order transitions to Shipped and binds the given shipment
// id.
//
// Business rules enforced:
//   - Only legal while the order is ReleasedToWarehouse
//   - Every confirmation must refer to a line of this order
//   - Accumulated picked quantity never exceeds the sold quantity
//
// The caller decides success or failure for the whole order before calling:
// a partially successful pick must go through FailPicking instead.
func (so *SalesOrder) ConfirmPicking(picked []PickConfirmation, shipmentID kernel.UUID) error {
	if so.status != ReleasedToWarehouse {
		return errs.NewStateConflictErrorWithCause("sales order "+so.id,
			fmt.Errorf("status %s does not allow picking confirmation", so.status))
	}

	if len(picked) == 0 {
		return errs.NewValueIsRequiredError("picked")
	}

	// Check everything before mutating anything. Requested quantities
	// accumulate per SKU so a confirmation set repeating a line is bounded
	// by the same check.
	requested := make(map[string]int, len(picked))
	for _, pc := range picked {
		line, err := so.Line(pc.SKU)
		if err != nil {
			return err
		}
		if pc.Qty <= 0 {
			return errs.NewValueIsInvalidErrorWithCause("qty",
				fmt.Errorf("%d is not greater than 0", pc.Qty))
		}
		requested[pc.SKU] += pc.Qty
		if line.picked+requested[pc.SKU] > line.qty {
			return errs.NewStateConflictErrorWithCause("sales order "+so.id,
				fmt.Errorf("picking %d of %s would exceed sold quantity %d (already picked %d)",
					requested[pc.SKU], pc.SKU, line.qty, line.picked))
		}
	}

	for _, pc := range picked {
		line, _ := so.Line(pc.SKU)
		line.picked += pc.Qty
	}

	if !so.allLinesPicked() {
		return nil
	}

	if err := shipmentID.Validate(); err != nil {
		return err
	}

	newStatus, err := so.status.TransitionTo(Shipped)
	if err != nil {
		return err
	}

	so.status = newStatus
	so.shipmentID = &shipmentID
	return nil
}

// FailPicking forces the order into the terminal PickFailed state after the
// warehouse reported a picking failure. The ledger store releases the stock
// and credit reservations alongside this transition.
func (so *SalesOrder) FailPicking() error {
	newStatus, err := so.status.TransitionTo(PickFailed)
	if err != nil {
		return err
	}

	so.status = newStatus
	return nil
}

// Deliver advances a shipped order to the terminal Delivered state and
// records the delivery timestamp.
func (so *SalesOrder) Deliver(at time.Time) error {
	if at.IsZero() {
		return errs.NewValueIsRequiredError("deliveredAt")
	}

	newStatus, err := so.status.TransitionTo(Delivered)
	if err != nil {
		return err
	}

	so.status = newStatus
	so.deliveredAt = &at
	return nil
}

func (so *SalesOrder) allLinesPicked() bool {
	for _, l := range so.lines {
		if !l.IsPicked() {
			return false
		}
	}
	return true
}

func (so *SalesOrder) setID(id string) error {
	if id == "" {
		return errs.NewValueIsRequiredError("id")
	}
	so.id = id
	return nil
}

func (so *SalesOrder) setCustomerID(customerID string) error {
	if customerID == "" {
		return errs.NewValueIsRequiredError("customerId")
	}
	so.customerID = customerID
	return nil
}

func (so *SalesOrder) setLines(lines []*Line) error {
	if len(lines) == 0 {
		return errs.NewValueIsRequiredError("lines")
	}

	seen := make(map[string]bool, len(lines))
	for _, l := range lines {
		if err := l.Validate(); err != nil {
			return err
		}
		if seen[l.sku] {
			return errs.NewValueIsInvalidErrorWithCause("lines",
				fmt.Errorf("duplicate line for sku %s", l.sku))
		}
		seen[l.sku] = true
	}

	so.lines = make([]*Line, len(lines))
	copy(so.lines, lines)
	return nil
}
