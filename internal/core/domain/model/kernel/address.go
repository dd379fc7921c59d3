package kernel

import (
	"errors"
	"fmt"

	"fulfillment/internal/pkg/errs"
	"fulfillment/internal/pkg/guard"
)

// ErrAddressIsNotConstructed is returned when attempting to use an improperly
// initialized Address. Addresses must be created using the NewAddress
// constructor to ensure validity.
var ErrAddressIsNotConstructed = errs.NewValueIsRequiredError(
	"address must be created via NewAddress constructor")

// Address is an immutable value object representing a postal address.
// The zero value of Address is invalid and will fail validation - use the
// constructor to create instances.
//
// The City component is the join key of the transport distance table: two
// addresses with the same city are, for planning purposes, the same place.
//
// Example:
//
//	origin, err := kernel.NewAddress("Warehouse Road", "500", "Sao Paulo", "SP", "01000-000")
//	if err != nil {
//	    // Handle validation error
//	}
//	fmt.Println(origin.City()) // Output: Sao Paulo
type Address struct { //nolint:recvcheck //using for validation
	street string
	number string
	city   string
	state  string
	zip    string

	guard guard.ConstructorGuard
}

// NewAddress creates a new Address with the given components.
// Street and city are required; number, state and zip are stored as given.
// Returns a validation error if a required component is empty.
func NewAddress(street, number, city, state, zip string) (Address, error) {
	addr := Address{
		number: number,
		state:  state,
		zip:    zip,
		guard:  guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		addr.setStreet(street),
		addr.setCity(city),
	); err != nil {
		return Address{}, err
	}

	return addr, nil
}

// Validate ensures the Address was created through NewAddress.
// Returns ErrAddressIsNotConstructed for zero-value instances.
func (a Address) Validate() error {
	return a.guard.Validate(ErrAddressIsNotConstructed)
}

// Street returns the street name.
func (a Address) Street() string {
	return a.street
}

// Number returns the street number, possibly empty.
func (a Address) Number() string {
	return a.number
}

// City returns the city name used for distance lookups.
func (a Address) City() string {
	return a.city
}

// State returns the state or region code, possibly empty.
func (a Address) State() string {
	return a.state
}

// Zip returns the postal code, possibly empty.
func (a Address) Zip() string {
	return a.zip
}

// IsEqual compares two addresses component by component.
func (a Address) IsEqual(other Address) bool {
	return a.street == other.street &&
		a.number == other.number &&
		a.city == other.city &&
		a.state == other.state &&
		a.zip == other.zip
}

// String returns a single-line human-readable representation.
func (a Address) String() string {
	return fmt.Sprintf("%s %s, %s %s %s", a.street, a.number, a.city, a.state, a.zip)
}

func (a *Address) setStreet(street string) error {
	if street == "" {
		return errs.NewValueIsRequiredError("street")
	}
	a.street = street
	return nil
}

func (a *Address) setCity(city string) error {
	if city == "" {
		return errs.NewValueIsRequiredError("city")
	}
	a.city = city
	return nil
}
