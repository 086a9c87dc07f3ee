package kernel

import (
	"errors"
	"fmt"

	"shiptrack/internal/pkg/errs"
	"shiptrack/internal/pkg/guard"
)

// ErrAddressIsNotConstructed is returned when validating an Address that was
// not created via NewAddress.
var ErrAddressIsNotConstructed = errs.NewValueIsRequiredError(
	"address must be created via NewAddress constructor")

// Address is a postal address value object. Street, number, city, state, and
// zip code are required; floor and apartment are optional and default to the
// empty string. Addresses are captured as snapshots on a shipment and never
// reference a live record.
type Address struct { //nolint:recvcheck //using for validation
	street    string
	number    string
	floor     string
	apartment string
	city      string
	state     string
	zipCode   string

	guard guard.ConstructorGuard
}

// NewAddress creates a validated postal address.
//
// Example:
//
//	addr, err := kernel.NewAddress("Av. Corrientes", "1234", "2", "B",
//	    "Buenos Aires", "CABA", "C1043")
func NewAddress(street, number, floor, apartment, city, state, zipCode string) (Address, error) {
	addr := Address{
		floor:     floor,
		apartment: apartment,
		guard:     guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		addr.setStreet(street),
		addr.setNumber(number),
		addr.setCity(city),
		addr.setState(state),
		addr.setZipCode(zipCode),
	); err != nil {
		return Address{}, err
	}

	return addr, nil
}

// Validate checks that the Address was created through NewAddress.
func (a Address) Validate() error {
	return a.guard.Validate(ErrAddressIsNotConstructed)
}

// Street returns the street name.
func (a Address) Street() string {
	return a.street
}

// Number returns the street number.
func (a Address) Number() string {
	return a.number
}

// Floor returns the floor, or "" when not applicable.
func (a Address) Floor() string {
	return a.floor
}

// Apartment returns the apartment, or "" when not applicable.
func (a Address) Apartment() string {
	return a.apartment
}

// City returns the city or locality.
func (a Address) City() string {
	return a.city
}

// State returns the state or province.
func (a Address) State() string {
	return a.state
}

// ZipCode returns the postal code.
func (a Address) ZipCode() string {
	return a.zipCode
}

// String returns a single-line rendering useful for logs and labels.
func (a Address) String() string {
	return fmt.Sprintf("%s %s, %s, %s (%s)", a.street, a.number, a.city, a.state, a.zipCode)
}

// IsEqual compares two addresses field by field.
// Both addresses must be properly constructed.
func (a Address) IsEqual(other Address) (bool, error) {
	if err := errors.Join(a.Validate(), other.Validate()); err != nil {
		return false, err
	}

	return a == other, nil
}

func (a *Address) setStreet(street string) error {
	if street == "" {
		return errs.NewValueIsRequiredError("street")
	}
	a.street = street
	return nil
}

func (a *Address) setNumber(number string) error {
	if number == "" {
		return errs.NewValueIsRequiredError("number")
	}
	a.number = number
	return nil
}

func (a *Address) setCity(city string) error {
	if city == "" {
		return errs.NewValueIsRequiredError("city")
	}
	a.city = city
	return nil
}

func (a *Address) setState(state string) error {
	if state == "" {
		return errs.NewValueIsRequiredError("state")
	}
	a.state = state
	return nil
}

func (a *Address) setZipCode(zipCode string) error {
	if zipCode == "" {
		return errs.NewValueIsRequiredError("zipCode")
	}
	a.zipCode = zipCode
	return nil
}
