// Package member contains the Member entity representing a registered customer.
// Members are created independently of orders and outlive them; an order only
// keeps a reference to the member that placed it.
package member

import (
	"errors"

	"shop/internal/core/domain/model/kernel"
	"shop/internal/pkg/errs"
)

// ErrMemberIsNotConstructed is returned when a Member instance was not created through
// the NewMember factory method. This ensures all members are properly validated.
var ErrMemberIsNotConstructed = errors.New("Member must be created via NewMember constructor")

// Member represents a registered customer of the shop.
//
// Member follows these invariants:
//   - Must have a valid unique identifier
//   - Must have a non-empty display name
//   - Must have a valid postal address
//   - Can only be created through NewMember or RestoreMember
//
// The registered address is the default shipping destination; orders snapshot
// it into their delivery at order time, so later address changes never affect
// already placed orders.
type Member struct {
	// id is the unique identifier for the member
	id kernel.UUID

	// name is the member's display name
	name string

	// address is the member's registered postal address
	address kernel.Address

	// isConstructed ensures the member was created via a constructor
	isConstructed bool
}

// NewMember creates a new Member instance with validation. This is the only way
// to create a valid Member, ensuring all business invariants are maintained.
func NewMember(id kernel.UUID, name string, address kernel.Address) (*Member, error) {
	member := &Member{
		isConstructed: true,
	}

	if err := errors.Join(
		member.setID(id),
		member.setName(name),
		member.setAddress(address),
	); err != nil {
		return nil, err
	}

	return member, nil
}

// RestoreMember reconstructs a Member from persistence.
// It applies the same validation as NewMember.
func RestoreMember(id kernel.UUID, name string, address kernel.Address) (*Member, error) {
	return NewMember(id, name, address)
}

// Validate ensures the Member instance was properly constructed through a constructor.
// This prevents bypassing validation by directly instantiating the struct.
func (m *Member) Validate() error {
	if m == nil || !m.isConstructed {
		return ErrMemberIsNotConstructed
	}

	return nil
}

// IsEqual compares two members by their unique identifiers.
func (m *Member) IsEqual(other *Member) bool {
	return other != nil && m.id.IsEqual(other.id)
}

// ID returns the member's unique identifier.
func (m *Member) ID() kernel.UUID {
	return m.id
}

// Name returns the member's display name.
func (m *Member) Name() string {
	return m.name
}

// Address returns the member's registered postal address.
func (m *Member) Address() kernel.Address {
	return m.address
}

// ChangeAddress replaces the member's registered address.
// Deliveries of already placed orders keep their own snapshot and are unaffected.
func (m *Member) ChangeAddress(address kernel.Address) error {
	return m.setAddress(address)
}

func (m *Member) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	m.id = id
	return nil
}

func (m *Member) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	m.name = name
	return nil
}

func (m *Member) setAddress(address kernel.Address) error {
	if err := address.Validate(); err != nil {
		return err
	}
	m.address = address
	return nil
}
