// Package memberrepo provides data transfer objects and mapping functions for member persistence.
// Handles the conversion between member domain entities and their database representation.
package memberrepo

import (
	"shop/internal/core/domain/model/kernel"
	"shop/internal/core/domain/model/member"

	"github.com/google/uuid"
)

// MemberDTO represents the database structure for persisting members.
// The member's address is flattened into the members table as an embedded
// value, there is no separate address table.
type MemberDTO struct {
	ID      uuid.UUID  `gorm:"type:uuid;primaryKey"`
	Name    string     `gorm:"index"`
	Address AddressDTO `gorm:"embedded;embeddedPrefix:address_"`
}

// TableName specifies the database table name for member entities.
func (MemberDTO) TableName() string {
	return "members"
}

// AddressDTO represents an embedded postal address.
// Shared shape with the delivery table so both sides store addresses the same way.
type AddressDTO struct {
	City    string
	Street  string
	ZipCode string
}

func addressFromDomain(address kernel.Address) AddressDTO {
	return AddressDTO{
		City:    address.City(),
		Street:  address.Street(),
		ZipCode: address.ZipCode(),
	}
}

func (dto AddressDTO) toDomain() (kernel.Address, error) {
	return kernel.NewAddress(dto.City, dto.Street, dto.ZipCode)
}

func fromDomain(aggregate *member.Member) MemberDTO {
	return MemberDTO{
		ID:      aggregate.ID().Bytes(),
		Name:    aggregate.Name(),
		Address: addressFromDomain(aggregate.Address()),
	}
}

func toDomain(dto MemberDTO) (*member.Member, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	address, err := dto.Address.toDomain()
	if err != nil {
		return nil, err
	}

	return member.RestoreMember(id, dto.Name, address)
}
