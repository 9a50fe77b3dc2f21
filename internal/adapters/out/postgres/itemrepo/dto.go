// Package itemrepo provides data transfer objects and mapping functions for item persistence.
// Implements the repository for the item aggregate, whose stock column backs
// the stock ledger invariant enforced by the domain model.
package itemrepo

import (
	"shop/internal/core/domain/model/item"
	"shop/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// ItemDTO represents the database structure for persisting items.
// Stock is indexed to support threshold scans by the low-stock report job.
type ItemDTO struct {
	ID    uuid.UUID `gorm:"type:uuid;primaryKey"`
	Kind  int
	Name  string
	Price int
	Stock int `gorm:"index"`
}

// TableName specifies the database table name for item entities.
func (ItemDTO) TableName() string {
	return "items"
}

func fromDomain(aggregate *item.Item) ItemDTO {
	return ItemDTO{
		ID:    aggregate.ID().Bytes(),
		Kind:  int(aggregate.Kind()),
		Name:  aggregate.Name(),
		Price: aggregate.Price(),
		Stock: aggregate.Stock(),
	}
}

func toDomain(dto ItemDTO) (*item.Item, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	return item.RestoreItem(id, item.Kind(dto.Kind), dto.Name, dto.Price, dto.Stock)
}
