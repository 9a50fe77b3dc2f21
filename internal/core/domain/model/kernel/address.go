package kernel

import (
	"errors"
	"fmt"

	"shop/internal/pkg/errs"
	"shop/internal/pkg/guard"
)

// ErrAddressIsNotConstructed is returned when attempting to use an improperly initialized Address.
// Addresses must be created through the NewAddress constructor to ensure all fields are present.
var ErrAddressIsNotConstructed = errs.NewValueIsRequiredError(
	"address must be created via NewAddress constructor")

// Address represents a postal address as an immutable value object.
// It consists of a city, a street and a zip code, all of which are required.
// The zero value of Address is invalid and will fail validation - use NewAddress
// to create instances.
//
// An Address never changes once constructed. Entities that need a different
// address replace the whole value rather than mutating fields, which makes
// snapshots (for example the delivery address captured at order time) safe
// to share by copy.
//
// Example:
//
//	addr, err := kernel.NewAddress("Seoul", "Somewhere", "123123")
//	if err != nil {
//	    // Handle validation error
//	}
//	fmt.Println(addr) // Output: Seoul, Somewhere, 123123
type Address struct { //nolint:recvcheck //using for validation
	city    string
	street  string
	zipCode string

	guard guard.ConstructorGuard
}

// NewAddress creates a new Address with the given city, street and zip code.
// All three components are required and must be non-empty.
//
// Returns:
//   - Address: A valid address instance
//   - error: Validation error if any component is empty
func NewAddress(city string, street string, zipCode string) (Address, error) {
	address := Address{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		address.setCity(city),
		address.setStreet(street),
		address.setZipCode(zipCode),
	); err != nil {
		return Address{}, err
	}

	return address, nil
}

// Validate checks if the Address was properly constructed using NewAddress.
// The zero value of Address is invalid and will fail this validation.
func (a Address) Validate() error {
	return a.guard.Validate(ErrAddressIsNotConstructed)
}

// City returns the city component of the address.
func (a Address) City() string {
	return a.city
}

// Street returns the street component of the address.
func (a Address) Street() string {
	return a.street
}

// ZipCode returns the zip code component of the address.
func (a Address) ZipCode() string {
	return a.zipCode
}

// IsEqual compares two addresses component by component.
func (a Address) IsEqual(other Address) bool {
	return a.city == other.city &&
		a.street == other.street &&
		a.zipCode == other.zipCode
}

// String returns the address in "city, street, zipCode" form.
// Implements the fmt.Stringer interface.
func (a Address) String() string {
	return fmt.Sprintf("%s, %s, %s", a.city, a.street, a.zipCode)
}

func (a *Address) setCity(city string) error {
	if city == "" {
		return errs.NewValueIsRequiredError("city")
	}
	a.city = city
	return nil
}

func (a *Address) setStreet(street string) error {
	if street == "" {
		return errs.NewValueIsRequiredError("street")
	}
	a.street = street
	return nil
}

func (a *Address) setZipCode(zipCode string) error {
	if zipCode == "" {
		return errs.NewValueIsRequiredError("zipCode")
	}
	a.zipCode = zipCode
	return nil
}
