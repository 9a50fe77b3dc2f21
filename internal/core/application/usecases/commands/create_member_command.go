package commands

import (
	"errors"

	"shop/internal/core/domain/model/kernel"
	"shop/internal/pkg/guard"
)

var (
	ErrCreateMemberCommandIsNotConstructed = errors.New(
		"CreateMemberCommand must be created via NewCreateMemberCommand constructor",
	)
	ErrMemberNameIsRequired = errors.New("member name is required")
)

// CreateMemberCommand represents a request to register a new member with their
// display name and postal address.
type CreateMemberCommand struct { //nolint:recvcheck //using for validation
	memberID kernel.UUID
	name     string
	address  kernel.Address

	guard guard.ConstructorGuard
}

// NewCreateMemberCommand creates a command to register a new member.
// Validates that the member ID is valid, the name is not empty and the
// address was properly constructed.
func NewCreateMemberCommand(memberID kernel.UUID, name string, address kernel.Address) (CreateMemberCommand, error) {
	memberCommand := CreateMemberCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		memberCommand.setMemberID(memberID),
		memberCommand.setName(name),
		memberCommand.setAddress(address),
	); err != nil {
		return CreateMemberCommand{}, err
	}

	return memberCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateMemberCommand) Validate() error {
	return c.guard.Validate(ErrCreateMemberCommandIsNotConstructed)
}

// MemberID returns the unique identifier for the new member.
func (c CreateMemberCommand) MemberID() kernel.UUID {
	return c.memberID
}

// Name returns the member's display name.
func (c CreateMemberCommand) Name() string {
	return c.name
}

// Address returns the member's registered postal address.
func (c CreateMemberCommand) Address() kernel.Address {
	return c.address
}

func (c *CreateMemberCommand) setMemberID(memberID kernel.UUID) error {
	if err := memberID.Validate(); err != nil {
		return err
	}

	c.memberID = memberID
	return nil
}

func (c *CreateMemberCommand) setName(name string) error {
	if name == "" {
		return ErrMemberNameIsRequired
	}

	c.name = name
	return nil
}

func (c *CreateMemberCommand) setAddress(address kernel.Address) error {
	if err := address.Validate(); err != nil {
		return err
	}

	c.address = address
	return nil
}
