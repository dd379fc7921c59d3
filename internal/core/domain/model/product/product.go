package product

import (
	"errors"
	"fmt"

	"fulfillment/internal/pkg/errs"
	"fulfillment/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

// ErrProductIsNotConstructed is returned when a Product instance was not
// created through the NewProduct or RestoreProduct factory functions.
var ErrProductIsNotConstructed = errors.New("Product must be created via NewProduct constructor")

// Product is the ledger-side catalog entry for a stocked item. It is the
// aggregate that owns the commercial view of an SKU: sale price, weighted
// average cost, and the ledger's own stock projection (on-hand and reserved
// quantities).
//
// The stock projection is deliberately independent of the warehouse's physical
// balances: the ledger reserves against what it believes it owns, and the two
// views are reconciled out of band.
//
// Product follows these invariants:
//   - SKU and name are non-empty
//   - Sale price and average cost are never negative
//   - Reserved quantity never exceeds on-hand quantity
//   - On-hand and reserved quantities are never negative
type Product struct {
	sku         string
	name        string
	salePrice   decimal.Decimal
	averageCost decimal.Decimal
	onHand      int
	reserved    int

	guard guard.ConstructorGuard
}

// NewProduct creates a catalog entry with no stock on hand.
//
// Parameters:
//   - sku: unique stock keeping unit, shared with the warehouse catalog
//   - name: human-readable product name
//   - salePrice: unit sale price, must not be negative
//   - averageCost: opening weighted average cost, must not be negative
//
// Returns a validation error if any parameter violates the invariants.
func NewProduct(sku, name string, salePrice, averageCost decimal.Decimal) (*Product, error) {
	p := &Product{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		p.setSKU(sku),
		p.setName(name),
		p.setSalePrice(salePrice),
		p.setAverageCost(averageCost),
	); err != nil {
		return nil, err
	}

	return p, nil
}

// RestoreProduct reconstructs a Product from persistent storage, including its
// stock projection. The restored product behaves identically to one mutated
// through normal domain operations.
func RestoreProduct(sku, name string, salePrice, averageCost decimal.Decimal, onHand, reserved int) (*Product, error) {
	p, err := NewProduct(sku, name, salePrice, averageCost)
	if err != nil {
		return nil, err
	}

	if onHand < 0 {
		return nil, errs.NewValueIsInvalidErrorWithCause("onHand",
			fmt.Errorf("%d is negative", onHand))
	}
	if reserved < 0 || reserved > onHand {
		return nil, errs.NewValueIsInvalidErrorWithCause("reserved",
			fmt.Errorf("%d is not within [0, %d]", reserved, onHand))
	}

	p.onHand = onHand
	p.reserved = reserved
	return p, nil
}

// Validate ensures the Product instance was properly constructed.
func (p *Product) Validate() error {
	if p == nil {
		return ErrProductIsNotConstructed
	}
	return p.guard.Validate(ErrProductIsNotConstructed)
}

// SKU returns the product's stock keeping unit.
func (p *Product) SKU() string {
	return p.sku
}

// Name returns the product's display name.
func (p *Product) Name() string {
	return p.name
}

// SalePrice returns the unit sale price.
func (p *Product) SalePrice() decimal.Decimal {
	return p.salePrice
}

// AverageCost returns the current weighted average unit cost.
func (p *Product) AverageCost() decimal.Decimal {
	return p.averageCost
}

// OnHand returns the ledger's projection of owned quantity.
func (p *Product) OnHand() int {
	return p.onHand
}

// Reserved returns the quantity currently reserved by open sales orders.
func (p *Product) Reserved() int {
	return p.reserved
}

// Available returns the unreserved quantity the ledger can still promise.
func (p *Product) Available() int {
	return p.onHand - p.reserved
}

// ApplyReceipt credits qty units received at unitCost and recomputes the
// weighted average cost:
//
//	newAvg = (onHand*oldAvg + qty*unitCost) / (onHand + qty)
//
// Returns a validation error for non-positive quantities or negative costs.
func (p *Product) ApplyReceipt(qty int, unitCost decimal.Decimal) error {
	if qty <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("qty",
			fmt.Errorf("%d is not greater than 0", qty))
	}
	if unitCost.IsNegative() {
		return errs.NewValueIsInvalidErrorWithCause("unitCost",
			fmt.Errorf("%s is negative", unitCost))
	}

	oldQty := decimal.NewFromInt(int64(p.onHand))
	newQty := decimal.NewFromInt(int64(qty))

	total := oldQty.Add(newQty)
	p.averageCost = oldQty.Mul(p.averageCost).Add(newQty.Mul(unitCost)).Div(total)
	p.onHand += qty
	return nil
}

// Reserve earmarks qty units for a sales order. Fails with an
// InsufficientResourceError if fewer than qty units are unreserved.
func (p *Product) Reserve(qty int) error {
	if qty <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("qty",
			fmt.Errorf("%d is not greater than 0", qty))
	}

	if qty > p.Available() {
		return errs.NewInsufficientResourceError("stock of "+p.sku, qty, p.Available())
	}

	p.reserved += qty
	return nil
}

// Release returns qty reserved units to the available pool, typically when a
// sales order fails before shipping.
func (p *Product) Release(qty int) error {
	if qty <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("qty",
			fmt.Errorf("%d is not greater than 0", qty))
	}
	if qty > p.reserved {
		return errs.NewValueIsInvalidErrorWithCause("qty",
			fmt.Errorf("%d exceeds reserved quantity %d", qty, p.reserved))
	}

	p.reserved -= qty
	return nil
}

// ConsumeReserved removes qty previously reserved units from the projection
// entirely, when the goods leave the company at delivery.
func (p *Product) ConsumeReserved(qty int) error {
	if qty <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("qty",
			fmt.Errorf("%d is not greater than 0", qty))
	}
	if qty > p.reserved {
		return errs.NewValueIsInvalidErrorWithCause("qty",
			fmt.Errorf("%d exceeds reserved quantity %d", qty, p.reserved))
	}

	p.reserved -= qty
	p.onHand -= qty
	return nil
}

func (p *Product) setSKU(sku string) error {
	if sku == "" {
		return errs.NewValueIsRequiredError("sku")
	}
	p.sku = sku
	return nil
}

func (p *Product) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	p.name = name
	return nil
}

func (p *Product) setSalePrice(price decimal.Decimal) error {
	if price.IsNegative() {
		return errs.NewValueIsInvalidErrorWithCause("salePrice",
			fmt.Errorf("%s is negative", price))
	}
	p.salePrice = price
	return nil
}

func (p *Product) setAverageCost(cost decimal.Decimal) error {
	if cost.IsNegative() {
		return errs.NewValueIsInvalidErrorWithCause("averageCost",
			fmt.Errorf("%s is negative", cost))
	}
	p.averageCost = cost
	return nil
}
