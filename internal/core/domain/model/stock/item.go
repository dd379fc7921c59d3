package stock

import (
	"errors"
	"fmt"

	"fulfillment/internal/pkg/errs"
	"fulfillment/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

// ErrItemIsNotConstructed is returned when an Item instance was not created
// through the NewItem factory function.
var ErrItemIsNotConstructed = errors.New("Item must be created via NewItem constructor")

// Item is the warehouse's own catalog entry for an SKU. It carries the
// physical data the ledger does not care about: unit weight and volume, used
// when loads are built for transport. The warehouse keeps its catalog
// independently of the ledger's; the master-data loader reconciles the two at
// configuration time.
type Item struct {
	sku         string
	name        string
	description string
	unitWeight  decimal.Decimal
	unitVolume  decimal.Decimal

	guard guard.ConstructorGuard
}

// NewItem creates a warehouse catalog entry. SKU and name are required, the
// description is free text. unitWeight is in kilograms and must be positive;
// unitVolume is in cubic meters.
func NewItem(sku, name, description string, unitWeight, unitVolume decimal.Decimal) (*Item, error) {
	i := &Item{
		description: description,
		guard:       guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		i.setSKU(sku),
		i.setName(name),
		i.setUnitWeight(unitWeight),
		i.setUnitVolume(unitVolume),
	); err != nil {
		return nil, err
	}

	return i, nil
}

// Validate ensures the Item instance was properly constructed.
func (i *Item) Validate() error {
	if i == nil {
		return ErrItemIsNotConstructed
	}
	return i.guard.Validate(ErrItemIsNotConstructed)
}

// SKU returns the item's stock keeping unit.
func (i *Item) SKU() string {
	return i.sku
}

// Name returns the item's display name.
func (i *Item) Name() string {
	return i.name
}

// Description returns the free-text handling description.
func (i *Item) Description() string {
	return i.description
}

// UnitWeight returns the weight of one unit in kilograms.
func (i *Item) UnitWeight() decimal.Decimal {
	return i.unitWeight
}

// UnitVolume returns the volume of one unit in cubic meters.
func (i *Item) UnitVolume() decimal.Decimal {
	return i.unitVolume
}

func (i *Item) setSKU(sku string) error {
	if sku == "" {
		return errs.NewValueIsRequiredError("sku")
	}
	i.sku = sku
	return nil
}

func (i *Item) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	i.name = name
	return nil
}

func (i *Item) setUnitWeight(weight decimal.Decimal) error {
	if !weight.IsPositive() {
		return errs.NewValueIsInvalidErrorWithCause("unitWeight",
			fmt.Errorf("%s is not greater than 0", weight))
	}
	i.unitWeight = weight
	return nil
}

func (i *Item) setUnitVolume(volume decimal.Decimal) error {
	if volume.IsNegative() {
		return errs.NewValueIsInvalidErrorWithCause("unitVolume",
			fmt.Errorf("%s is negative", volume))
	}
	i.unitVolume = volume
	return nil
}
