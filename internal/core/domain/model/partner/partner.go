package partner

import (
	"errors"
	"fmt"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"
	"fulfillment/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

// ErrPartnerIsNotConstructed is returned when a Partner instance was not
// created through one of the factory functions.
var ErrPartnerIsNotConstructed = errors.New("Partner must be created via NewCustomer or NewSupplier constructor")

// Kind distinguishes the two partner roles the ledger keeps.
type Kind int

const (
	// KindUnknown represents an invalid or undefined partner kind.
	KindUnknown Kind = iota

	// KindCustomer marks partners that buy from us and carry a credit limit.
	KindCustomer

	// KindSupplier marks partners we procure from.
	KindSupplier
)

// String returns the human-readable name of the kind.
func (k Kind) String() string {
	switch k {
	case KindCustomer:
		return "Customer"
	case KindSupplier:
		return "Supplier"
	default:
		return "Unknown"
	}
}

// Validate checks that the kind is one of the defined roles.
func (k Kind) Validate() error {
	if k != KindCustomer && k != KindSupplier {
		return errs.NewValueIsInvalidErrorWithCause("kind",
			fmt.Errorf("%d is not a valid partner kind", k))
	}
	return nil
}

// Partner is a ledger-registered business counterparty: a customer or a
// supplier. Customers additionally carry a credit limit and the exposure
// currently reserved against it by open sales orders.
//
// Partner follows these invariants:
//   - ID, name and tax ID are non-empty
//   - Kind is Customer or Supplier
//   - Reserved exposure is never negative and never exceeds the credit limit
type Partner struct {
	id      string
	kind    Kind
	name    string
	taxID   string
	address kernel.Address

	// customer-only
	creditLimit      decimal.Decimal
	reservedExposure decimal.Decimal

	// supplier-only
	leadTimeDays int

	guard guard.ConstructorGuard
}

// NewCustomer creates a customer partner with the given credit limit.
// The credit limit must not be negative.
func NewCustomer(id, name, taxID string, address kernel.Address, creditLimit decimal.Decimal) (*Partner, error) {
	p := &Partner{
		kind:  KindCustomer,
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		p.setID(id),
		p.setName(name),
		p.setTaxID(taxID),
		p.setAddress(address),
		p.setCreditLimit(creditLimit),
	); err != nil {
		return nil, err
	}

	return p, nil
}

// NewSupplier creates a supplier partner. leadTimeDays is the supplier's
// average delivery lead time and must not be negative.
func NewSupplier(id, name, taxID string, address kernel.Address, leadTimeDays int) (*Partner, error) {
	p := &Partner{
		kind:  KindSupplier,
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		p.setID(id),
		p.setName(name),
		p.setTaxID(taxID),
		p.setAddress(address),
		p.setLeadTimeDays(leadTimeDays),
	); err != nil {
		return nil, err
	}

	return p, nil
}

// RestorePartner reconstructs a Partner from persistent storage, including
// customer credit exposure.
func RestorePartner(
	id string,
	kind Kind,
	name, taxID string,
	address kernel.Address,
	creditLimit, reservedExposure decimal.Decimal,
	leadTimeDays int,
) (*Partner, error) {
	if err := kind.Validate(); err != nil {
		return nil, err
	}

	var (
		p   *Partner
		err error
	)

	switch kind {
	case KindCustomer:
		p, err = NewCustomer(id, name, taxID, address, creditLimit)
		if err != nil {
			return nil, err
		}
		if reservedExposure.IsNegative() || reservedExposure.GreaterThan(creditLimit) {
			return nil, errs.NewValueIsInvalidErrorWithCause("reservedExposure",
				fmt.Errorf("%s is not within [0, %s]", reservedExposure, creditLimit))
		}
		p.reservedExposure = reservedExposure
	case KindSupplier:
		p, err = NewSupplier(id, name, taxID, address, leadTimeDays)
		if err != nil {
			return nil, err
		}
	default:
		return nil, errs.NewValueIsInvalidError("kind")
	}

	return p, nil
}

// Validate ensures the Partner instance was properly constructed.
func (p *Partner) Validate() error {
	if p == nil {
		return ErrPartnerIsNotConstructed
	}
	return p.guard.Validate(ErrPartnerIsNotConstructed)
}

// ID returns the partner's unique identifier.
func (p *Partner) ID() string {
	return p.id
}

// Kind returns whether the partner is a customer or a supplier.
func (p *Partner) Kind() Kind {
	return p.kind
}

// Name returns the partner's registered name.
func (p *Partner) Name() string {
	return p.name
}

// TaxID returns the partner's tax identification string.
func (p *Partner) TaxID() string {
	return p.taxID
}

// Address returns the partner's registered address. For customers this is the
// shipment destination.
func (p *Partner) Address() kernel.Address {
	return p.address
}

// CreditLimit returns the customer's credit limit. Zero for suppliers.
func (p *Partner) CreditLimit() decimal.Decimal {
	return p.creditLimit
}

// ReservedExposure returns the credit currently reserved by open sales
// orders. Zero for suppliers.
func (p *Partner) ReservedExposure() decimal.Decimal {
	return p.reservedExposure
}

// LeadTimeDays returns the supplier's average delivery lead time in days.
// Zero for customers.
func (p *Partner) LeadTimeDays() int {
	return p.leadTimeDays
}

// AvailableCredit returns the credit a customer can still commit to.
func (p *Partner) AvailableCredit() decimal.Decimal {
	return p.creditLimit.Sub(p.reservedExposure)
}

// ReserveCredit reserves amount against the customer's credit limit.
//
// Fails with a StateConflictError for suppliers and with an
// InsufficientResourceError when amount exceeds the remaining credit.
func (p *Partner) ReserveCredit(amount decimal.Decimal) error {
	if p.kind != KindCustomer {
		return errs.NewStateConflictErrorWithCause("partner "+p.id,
			fmt.Errorf("%s partners carry no credit", p.kind))
	}
	if amount.Sign() <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("amount",
			fmt.Errorf("%s is not greater than 0", amount))
	}

	if amount.GreaterThan(p.AvailableCredit()) {
		return errs.NewInsufficientResourceError("credit of "+p.id, amount, p.AvailableCredit())
	}

	p.reservedExposure = p.reservedExposure.Add(amount)
	return nil
}

// ReleaseCredit frees previously reserved exposure, either because the order
// failed or because it settled at delivery.
func (p *Partner) ReleaseCredit(amount decimal.Decimal) error {
	if p.kind != KindCustomer {
		return errs.NewStateConflictErrorWithCause("partner "+p.id,
			fmt.Errorf("%s partners carry no credit", p.kind))
	}
	if amount.Sign() <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("amount",
			fmt.Errorf("%s is not greater than 0", amount))
	}
	if amount.GreaterThan(p.reservedExposure) {
		return errs.NewValueIsInvalidErrorWithCause("amount",
			fmt.Errorf("%s exceeds reserved exposure %s", amount, p.reservedExposure))
	}

	p.reservedExposure = p.reservedExposure.Sub(amount)
	return nil
}

func (p *Partner) setID(id string) error {
	if id == "" {
		return errs.NewValueIsRequiredError("id")
	}
	p.id = id
	return nil
}

func (p *Partner) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	p.name = name
	return nil
}

func (p *Partner) setTaxID(taxID string) error {
	if taxID == "" {
		return errs.NewValueIsRequiredError("taxId")
	}
	p.taxID = taxID
	return nil
}

func (p *Partner) setAddress(address kernel.Address) error {
	if err := address.Validate(); err != nil {
		return err
	}
	p.address = address
	return nil
}

func (p *Partner) setCreditLimit(limit decimal.Decimal) error {
	if limit.IsNegative() {
		return errs.NewValueIsInvalidErrorWithCause("creditLimit",
			fmt.Errorf("%s is negative", limit))
	}
	p.creditLimit = limit
	return nil
}

func (p *Partner) setLeadTimeDays(days int) error {
	if days < 0 {
		return errs.NewValueIsInvalidErrorWithCause("leadTimeDays",
			fmt.Errorf("%d is negative", days))
	}
	p.leadTimeDays = days
	return nil
}
