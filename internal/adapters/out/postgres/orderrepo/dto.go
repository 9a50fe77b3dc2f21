// Package orderrepo provides data transfer objects and mapping functions for order persistence.
// The order aggregate spans three tables: orders, deliveries and order_lines.
// The repository loads and stores them as one unit so the aggregate never
// surfaces half-persisted.
package orderrepo

import (
	"time"

	"shop/internal/core/domain/model/kernel"
	"shop/internal/core/domain/model/order"

	"github.com/google/uuid"
)

// OrderDTO represents the database structure for persisting order roots.
type OrderDTO struct {
	ID       uuid.UUID `gorm:"type:uuid;primaryKey"`
	MemberID uuid.UUID `gorm:"type:uuid;index"`
	PlacedAt time.Time
	Status   int `gorm:"index"`
}

// TableName specifies the database table name for order entities.
func (OrderDTO) TableName() string {
	return "orders"
}

// DeliveryDTO represents the database structure for an order's delivery.
// One row per order; the address is a snapshot taken at placement time.
type DeliveryDTO struct {
	ID      uuid.UUID  `gorm:"type:uuid;primaryKey"`
	OrderID uuid.UUID  `gorm:"type:uuid;uniqueIndex"`
	Address AddressDTO `gorm:"embedded;embeddedPrefix:address_"`
	Status  int
}

// TableName specifies the database table name for delivery entities.
func (DeliveryDTO) TableName() string {
	return "deliveries"
}

// AddressDTO represents an embedded postal address.
type AddressDTO struct {
	City    string
	Street  string
	ZipCode string
}

// LineDTO represents the database structure for one order line.
// Price is the unit price captured when the order was placed, not a
// reference to the item's current price.
type LineDTO struct {
	ID       uuid.UUID `gorm:"type:uuid;primaryKey"`
	OrderID  uuid.UUID `gorm:"type:uuid;index"`
	ItemID   uuid.UUID `gorm:"type:uuid;index"`
	Price    int
	Quantity int
}

// TableName specifies the database table name for order line entities.
func (LineDTO) TableName() string {
	return "order_lines"
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

func fromDomain(aggregate *order.Order) (OrderDTO, DeliveryDTO, []LineDTO) {
	orderDTO := OrderDTO{
		ID:       aggregate.ID().Bytes(),
		MemberID: aggregate.MemberID().Bytes(),
		PlacedAt: aggregate.PlacedAt(),
		Status:   int(aggregate.Status()),
	}

	delivery := aggregate.Delivery()
	deliveryDTO := DeliveryDTO{
		ID:      delivery.ID().Bytes(),
		OrderID: orderDTO.ID,
		Address: addressFromDomain(delivery.Address()),
		Status:  int(delivery.Status()),
	}

	lineDTOs := make([]LineDTO, 0, len(aggregate.Lines()))
	for _, line := range aggregate.Lines() {
		lineDTOs = append(lineDTOs, LineDTO{
			ID:       line.ID().Bytes(),
			OrderID:  orderDTO.ID,
			ItemID:   line.ItemID().Bytes(),
			Price:    line.Price(),
			Quantity: line.Quantity(),
		})
	}

	return orderDTO, deliveryDTO, lineDTOs
}

func toDomain(orderDTO OrderDTO, deliveryDTO DeliveryDTO, lineDTOs []LineDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(orderDTO.ID[:])
	if err != nil {
		return nil, err
	}

	memberID, err := kernel.UUIDFromBytes(orderDTO.MemberID[:])
	if err != nil {
		return nil, err
	}

	deliveryID, err := kernel.UUIDFromBytes(deliveryDTO.ID[:])
	if err != nil {
		return nil, err
	}

	address, err := deliveryDTO.Address.toDomain()
	if err != nil {
		return nil, err
	}

	delivery, err := order.RestoreDelivery(deliveryID, address, order.DeliveryStatus(deliveryDTO.Status))
	if err != nil {
		return nil, err
	}

	lines := make([]*order.Line, 0, len(lineDTOs))
	for _, lineDTO := range lineDTOs {
		lineID, lineErr := kernel.UUIDFromBytes(lineDTO.ID[:])
		if lineErr != nil {
			return nil, lineErr
		}

		itemID, lineErr := kernel.UUIDFromBytes(lineDTO.ItemID[:])
		if lineErr != nil {
			return nil, lineErr
		}

		line, lineErr := order.RestoreLine(lineID, itemID, lineDTO.Price, lineDTO.Quantity)
		if lineErr != nil {
			return nil, lineErr
		}
		lines = append(lines, line)
	}

	return order.RestoreOrder(id, memberID, delivery, lines, orderDTO.PlacedAt, order.Status(orderDTO.Status))
}
