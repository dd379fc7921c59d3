package shipment

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
	// ErrShipmentIsNotConstructed is returned when a Shipment was not created
	// through NewShipment or RestoreShipment.
	ErrShipmentIsNotConstructed = errors.New(
		"Shipment must be created via NewShipment constructor")

	// ErrLineIsNotConstructed is returned when a Line was not created through
	// the NewLine factory function.
	ErrLineIsNotConstructed = errors.New("Line must be created via NewLine constructor")
)

// Line is one load item of a shipment. Weight and volume are per unit; the
// planner works with line totals.
type Line struct {
	sku        string
	qty        int
	unitWeight decimal.Decimal
	unitVolume decimal.Decimal

	guard guard.ConstructorGuard
}

// NewLine creates a shipment load line. unitWeight is in kilograms,
// unitVolume in cubic meters.
func NewLine(sku string, qty int, unitWeight, unitVolume decimal.Decimal) (*Line, error) {
	l := &Line{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		l.setSKU(sku),
		l.setQty(qty),
		l.setUnitWeight(unitWeight),
		l.setUnitVolume(unitVolume),
	); err != nil {
		return nil, err
	}

	return l, nil
}

// Validate ensures the Line was properly constructed.
func (l *Line) Validate() error {
	if l == nil {
		return ErrLineIsNotConstructed
	}
	return l.guard.Validate(ErrLineIsNotConstructed)
}

// SKU returns the stock keeping unit the line carries.
func (l *Line) SKU() string {
	return l.sku
}

// Qty returns the number of units carried.
func (l *Line) Qty() int {
	return l.qty
}

// UnitWeight returns the weight of one unit in kilograms.
func (l *Line) UnitWeight() decimal.Decimal {
	return l.unitWeight
}

// UnitVolume returns the volume of one unit in cubic meters.
func (l *Line) UnitVolume() decimal.Decimal {
	return l.unitVolume
}

// Weight returns qty times unit weight.
func (l *Line) Weight() decimal.Decimal {
	return l.unitWeight.Mul(decimal.NewFromInt(int64(l.qty)))
}

// Volume returns qty times unit volume.
func (l *Line) Volume() decimal.Decimal {
	return l.unitVolume.Mul(decimal.NewFromInt(int64(l.qty)))
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

func (l *Line) setUnitWeight(weight decimal.Decimal) error {
	if !weight.IsPositive() {
		return errs.NewValueIsInvalidErrorWithCause("unitWeight",
			fmt.Errorf("%s is not greater than 0", weight))
	}
	l.unitWeight = weight
	return nil
}

func (l *Line) setUnitVolume(volume decimal.Decimal) error {
	if volume.IsNegative() {
		return errs.NewValueIsInvalidErrorWithCause("unitVolume",
			fmt.Errorf("%s is negative", volume))
	}
	l.unitVolume = volume
	return nil
}

// Shipment is the aggregate root for one transport load. It moves through a
// strictly linear lifecycle; the carrier and estimated cost are bound during
// planning and never change afterwards.
//
// Shipment follows these invariants:
//   - Origin and destination addresses are valid, line set is non-empty
//   - Carrier and estimated cost are set exactly from the Planned status on
//   - The delivery timestamp is set exactly from the Delivered status on
type Shipment struct {
	id            kernel.UUID
	origin        kernel.Address
	destination   kernel.Address
	lines         []*Line
	carrierID     string
	estimatedCost decimal.Decimal
	status        Status
	deliveredAt   *time.Time

	guard guard.ConstructorGuard
}

// NewShipment creates a shipment in Created status under the given id.
// The id is minted by the caller when the sales order ships, so the ledger
// and the planner agree on it without a round trip.
func NewShipment(id kernel.UUID, origin, destination kernel.Address, lines []*Line) (*Shipment, error) {
	s := &Shipment{
		status: Created,
		guard:  guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		s.setID(id),
		s.setOrigin(origin),
		s.setDestination(destination),
		s.setLines(lines),
	); err != nil {
		return nil, err
	}

	return s, nil
}

// RestoreShipment reconstructs a shipment from persistent storage with its
// previously persisted status, carrier binding and delivery timestamp.
func RestoreShipment(
	id kernel.UUID,
	origin, destination kernel.Address,
	lines []*Line,
	status Status,
	carrierID string,
	estimatedCost decimal.Decimal,
	deliveredAt *time.Time,
) (*Shipment, error) {
	if err := status.Validate(); err != nil {
		return nil, err
	}

	s, err := NewShipment(id, origin, destination, lines)
	if err != nil {
		return nil, err
	}

	s.status = status
	s.carrierID = carrierID
	s.estimatedCost = estimatedCost
	s.deliveredAt = deliveredAt
	return s, nil
}

// Validate ensures the Shipment instance was properly constructed.
func (s *Shipment) Validate() error {
	if s == nil {
		return ErrShipmentIsNotConstructed
	}
	return s.guard.Validate(ErrShipmentIsNotConstructed)
}

// ID returns the shipment's identifier.
func (s *Shipment) ID() kernel.UUID {
	return s.id
}

// Origin returns the pickup address.
func (s *Shipment) Origin() kernel.Address {
	return s.origin
}

// Destination returns the drop-off address.
func (s *Shipment) Destination() kernel.Address {
	return s.destination
}

// Status returns the current lifecycle status.
func (s *Shipment) Status() Status {
	return s.status
}

// CarrierID returns the chosen carrier's id, empty before planning.
func (s *Shipment) CarrierID() string {
	return s.carrierID
}

// EstimatedCost returns the planned freight cost, zero before planning.
func (s *Shipment) EstimatedCost() decimal.Decimal {
	return s.estimatedCost
}

// DeliveredAt returns the delivery timestamp, or nil before delivery.
func (s *Shipment) DeliveredAt() *time.Time {
	return s.deliveredAt
}

// Lines returns the shipment's load lines. The slice is a copy.
func (s *Shipment) Lines() []*Line {
	lines := make([]*Line, len(s.lines))
	copy(lines, s.lines)
	return lines
}

// TotalWeight returns the summed weight of every line in kilograms.
func (s *Shipment) TotalWeight() decimal.Decimal {
	total := decimal.Zero
	for _, l := range s.lines {
		total = total.Add(l.Weight())
	}
	return total
}

// TotalVolume returns the summed volume of every line in cubic meters.
func (s *Shipment) TotalVolume() decimal.Decimal {
	total := decimal.Zero
	for _, l := range s.lines {
		total = total.Add(l.Volume())
	}
	return total
}

// Plan binds the selected carrier and its cost estimate and advances the
// shipment from Created to Planned. Carrier selection itself is the
// CarrierSelector domain service's job; the aggregate only records its
// outcome.
func (s *Shipment) Plan(carrierID string, estimatedCost decimal.Decimal) error {
	if carrierID == "" {
		return errs.NewValueIsRequiredError("carrierId")
	}
	if estimatedCost.IsNegative() {
		return errs.NewValueIsInvalidErrorWithCause("estimatedCost",
			fmt.Errorf("%s is negative", estimatedCost))
	}

	newStatus, err := s.status.TransitionTo(Planned)
	if err != nil {
		return err
	}

	s.status = newStatus
	s.carrierID = carrierID
	s.estimatedCost = estimatedCost
	return nil
}

// Dispatch advances a planned shipment to Dispatched.
func (s *Shipment) Dispatch() error {
	newStatus, err := s.status.TransitionTo(Dispatched)
	if err != nil {
		return err
	}

	s.status = newStatus
	return nil
}

// Deliver advances a dispatched shipment to the terminal Delivered state and
// records the delivery timestamp.
func (s *Shipment) Deliver(at time.Time) error {
	if at.IsZero() {
		return errs.NewValueIsRequiredError("deliveredAt")
	}

	newStatus, err := s.status.TransitionTo(Delivered)
	if err != nil {
		return err
	}

	s.status = newStatus
	s.deliveredAt = &at
	return nil
}

func (s *Shipment) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	s.id = id
	return nil
}

func (s *Shipment) setOrigin(origin kernel.Address) error {
	if err := origin.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("origin", err)
	}
	s.origin = origin
	return nil
}

func (s *Shipment) setDestination(destination kernel.Address) error {
	if err := destination.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("destination", err)
	}
	s.destination = destination
	return nil
}

func (s *Shipment) setLines(lines []*Line) error {
	if len(lines) == 0 {
		return errs.NewValueIsRequiredError("lines")
	}

	for _, l := range lines {
		if err := l.Validate(); err != nil {
			return err
		}
	}

	s.lines = make([]*Line, len(lines))
	copy(s.lines, lines)
	return nil
}
