package purchaseorder

import (
	"errors"
	"fmt"

	"fulfillment/internal/pkg/errs"
	"fulfillment/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var (
	// ErrPurchaseOrderIsNotConstructed is returned when a PurchaseOrder was
	// not created through NewPurchaseOrder or RestorePurchaseOrder.
	ErrPurchaseOrderIsNotConstructed = errors.New(
		"PurchaseOrder must be created via NewPurchaseOrder constructor")

	// ErrLineIsNotConstructed is returned when a Line was not created through
	// NewLine or RestoreLine.
	ErrLineIsNotConstructed = errors.New("Line must be created via NewLine constructor")
)

// Line is one purchased item of a purchase order: an SKU, the quantity
// ordered, its unit cost, and how much of it has been received so far.
//
// Invariant: received never exceeds ordered.
type Line struct {
	sku      string
	ordered  int
	unitCost decimal.Decimal
	received int

	guard guard.ConstructorGuard
}

// NewLine creates an open purchase order line.
// Quantity must be positive and the unit cost must not be negative.
func NewLine(sku string, ordered int, unitCost decimal.Decimal) (*Line, error) {
	l := &Line{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		l.setSKU(sku),
		l.setOrdered(ordered),
		l.setUnitCost(unitCost),
	); err != nil {
		return nil, err
	}

	return l, nil
}

// RestoreLine reconstructs a line from persistent storage, including the
// quantity already received.
func RestoreLine(sku string, ordered int, unitCost decimal.Decimal, received int) (*Line, error) {
	l, err := NewLine(sku, ordered, unitCost)
	if err != nil {
		return nil, err
	}

	if received < 0 || received > ordered {
		return nil, errs.NewValueIsOutOfRangeError("received", received, 0, ordered)
	}

	l.received = received
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

// Ordered returns the quantity ordered.
func (l *Line) Ordered() int {
	return l.ordered
}

// UnitCost returns the agreed unit cost.
func (l *Line) UnitCost() decimal.Decimal {
	return l.unitCost
}

// Received returns the quantity received so far.
func (l *Line) Received() int {
	return l.received
}

// IsComplete reports whether the line is fully received.
func (l *Line) IsComplete() bool {
	return l.received == l.ordered
}

func (l *Line) setSKU(sku string) error {
	if sku == "" {
		return errs.NewValueIsRequiredError("sku")
	}
	l.sku = sku
	return nil
}

func (l *Line) setOrdered(ordered int) error {
	if ordered <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("ordered",
			fmt.Errorf("%d is not greater than 0", ordered))
	}
	l.ordered = ordered
	return nil
}

func (l *Line) setUnitCost(cost decimal.Decimal) error {
	if cost.IsNegative() {
		return errs.NewValueIsInvalidErrorWithCause("unitCost",
			fmt.Errorf("%s is negative", cost))
	}
	l.unitCost = cost
	return nil
}

// PurchaseOrder is the aggregate root for a procurement document (OC).
// It tracks ordered lines through receipt confirmation until every line is
// fully received.
//
// PurchaseOrder follows these invariants:
//   - ID and supplier ID are non-empty, line set is non-empty
//   - Per line, received quantity never exceeds ordered quantity
//   - Status transitions follow the table in status.go
//   - Status is Received exactly when every line is complete
//
// All mutation goes through validated transition methods; there is no setter
// that can bypass the checks.
type PurchaseOrder struct {
	id         string
	supplierID string
	lines      []*Line
	status     Status

	guard guard.ConstructorGuard
}

// NewPurchaseOrder creates a purchase order in Created status.
// The caller (the ledger store) releases it for receiving immediately after
// creation, per the procurement workflow.
func NewPurchaseOrder(id, supplierID string, lines []*Line) (*PurchaseOrder, error) {
	po := &PurchaseOrder{
		status: Created,
		guard:  guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		po.setID(id),
		po.setSupplierID(supplierID),
		po.setLines(lines),
	); err != nil {
		return nil, err
	}

	return po, nil
}

// RestorePurchaseOrder reconstructs a purchase order from persistent storage
// with its previously persisted status.
func RestorePurchaseOrder(id, supplierID string, lines []*Line, status Status) (*PurchaseOrder, error) {
	if err := status.Validate(); err != nil {
		return nil, err
	}

	po, err := NewPurchaseOrder(id, supplierID, lines)
	if err != nil {
		return nil, err
	}

	po.status = status
	return po, nil
}

// Validate ensures the PurchaseOrder instance was properly constructed.
func (po *PurchaseOrder) Validate() error {
	if po == nil {
		return ErrPurchaseOrderIsNotConstructed
	}
	return po.guard.Validate(ErrPurchaseOrderIsNotConstructed)
}

// ID returns the purchase order's identifier.
func (po *PurchaseOrder) ID() string {
	return po.id
}

// SupplierID returns the supplier the order was placed with.
func (po *PurchaseOrder) SupplierID() string {
	return po.supplierID
}

// Status returns the current lifecycle status.
func (po *PurchaseOrder) Status() Status {
	return po.status
}

// Lines returns the order's lines. The slice is a copy; the lines themselves
// are only mutable through the aggregate.
func (po *PurchaseOrder) Lines() []*Line {
	lines := make([]*Line, len(po.lines))
	copy(lines, po.lines)
	return lines
}

// Line returns the line for the given SKU, or an ObjectNotFoundError if the
// SKU is not part of this order.
func (po *PurchaseOrder) Line(sku string) (*Line, error) {
	for _, l := range po.lines {
		if l.sku == sku {
			return l, nil
		}
	}
	return nil, errs.NewObjectNotFoundError("sku", sku)
}

// ReleaseForReceiving advances the order from Created to ReceivingPending,
// opening it for receipt confirmations.
func (po *PurchaseOrder) ReleaseForReceiving() error {
	newStatus, err := po.status.TransitionTo(ReceivingPending)
	if err != nil {
		return err
	}

	po.status = newStatus
	return nil
}

// ConfirmReceipt records qty received units against the line for sku and
// recomputes the order status: PartiallyReceived while any line is open,
// Received once every line is complete.
//
// Business rules enforced:
//   - The order must be open for receiving (ReceivingPending or PartiallyReceived)
//   - The SKU must be a line of this order
//   - The receipt must not push the line's received past its ordered quantity;
//     in particular, confirming against an already complete line is rejected,
//     never re-credited
func (po *PurchaseOrder) ConfirmReceipt(sku string, qty int) error {
	if !po.status.AllowsReceipt() {
		return errs.NewStateConflictErrorWithCause("purchase order "+po.id,
			fmt.Errorf("status %s does not allow receipt confirmation", po.status))
	}

	line, err := po.Line(sku)
	if err != nil {
		return err
	}

	if qty <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("qty",
			fmt.Errorf("%d is not greater than 0", qty))
	}

	if line.IsComplete() {
		return errs.NewStateConflictErrorWithCause("purchase order "+po.id,
			fmt.Errorf("line %s is already fully received", sku))
	}

	if line.received+qty > line.ordered {
		return errs.NewStateConflictErrorWithCause("purchase order "+po.id,
			fmt.Errorf("receiving %d would exceed ordered quantity %d (already received %d)",
				qty, line.ordered, line.received))
	}

	line.received += qty

	target := PartiallyReceived
	if po.allLinesComplete() {
		target = Received
	}

	newStatus, err := po.status.TransitionTo(target)
	if err != nil {
		return err
	}

	po.status = newStatus
	return nil
}

func (po *PurchaseOrder) allLinesComplete() bool {
	for _, l := range po.lines {
		if !l.IsComplete() {
			return false
		}
	}
	return true
}

func (po *PurchaseOrder) setID(id string) error {
	if id == "" {
		return errs.NewValueIsRequiredError("id")
	}
	po.id = id
	return nil
}

func (po *PurchaseOrder) setSupplierID(supplierID string) error {
	if supplierID == "" {
		return errs.NewValueIsRequiredError("supplierId")
	}
	po.supplierID = supplierID
	return nil
}

func (po *PurchaseOrder) setLines(lines []*Line) error {
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

	po.lines = make([]*Line, len(lines))
	copy(po.lines, lines)
	return nil
}
