package shipment

import (
	"errors"
	"fmt"

	"fulfillment/internal/pkg/errs"
	"fulfillment/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

// ErrCarrierIsNotConstructed is returned when a Carrier instance was not
// created through the NewCarrier factory function.
var ErrCarrierIsNotConstructed = errors.New("Carrier must be created via NewCarrier constructor")

// Carrier is a registered transport provider. Its freight rate is expressed
// per kilometer per kilogram; the planner multiplies it by route distance and
// total load weight to estimate a shipment's cost.
type Carrier struct {
	id          string
	name        string
	ratePerKmKg decimal.Decimal

	guard guard.ConstructorGuard
}

// NewCarrier creates a carrier with the given freight rate.
func NewCarrier(id, name string, ratePerKmKg decimal.Decimal) (*Carrier, error) {
	c := &Carrier{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		c.setID(id),
		c.setName(name),
		c.setRatePerKmKg(ratePerKmKg),
	); err != nil {
		return nil, err
	}

	return c, nil
}

// Validate ensures the Carrier instance was properly constructed.
func (c *Carrier) Validate() error {
	if c == nil {
		return ErrCarrierIsNotConstructed
	}
	return c.guard.Validate(ErrCarrierIsNotConstructed)
}

// ID returns the carrier's identifier.
func (c *Carrier) ID() string {
	return c.id
}

// Name returns the carrier's display name.
func (c *Carrier) Name() string {
	return c.name
}

// RatePerKmKg returns the freight rate per kilometer per kilogram.
func (c *Carrier) RatePerKmKg() decimal.Decimal {
	return c.ratePerKmKg
}

// CostFor estimates the freight cost for carrying totalWeight kilograms over
// distanceKm kilometers with this carrier.
func (c *Carrier) CostFor(distanceKm, totalWeight decimal.Decimal) decimal.Decimal {
	return distanceKm.Mul(totalWeight).Mul(c.ratePerKmKg)
}

func (c *Carrier) setID(id string) error {
	if id == "" {
		return errs.NewValueIsRequiredError("id")
	}
	c.id = id
	return nil
}

func (c *Carrier) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	c.name = name
	return nil
}

func (c *Carrier) setRatePerKmKg(rate decimal.Decimal) error {
	if !rate.IsPositive() {
		return errs.NewValueIsInvalidErrorWithCause("ratePerKmKg",
			fmt.Errorf("%s is not greater than 0", rate))
	}
	c.ratePerKmKg = rate
	return nil
}
