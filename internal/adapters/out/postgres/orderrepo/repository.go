package orderrepo

import (
	"context"
	"errors"

	"shop/internal/core/domain/model/kernel"
	"shop/internal/core/domain/model/order"
	"shop/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormOrderRepository implements OrderRepository using GORM.
type GormOrderRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormOrderRepository creates a new GORM order repository.
func NewGormOrderRepository(db *gorm.DB, tracker aggregateTracker) *GormOrderRepository {
	return &GormOrderRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new order aggregate: the root row, its delivery row and one
// row per line. Callers run this inside a unit of work so the three writes
// land atomically.
func (r *GormOrderRepository) Add(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	orderDTO, deliveryDTO, lineDTOs := fromDomain(aggregate)

	db := r.db.WithContext(ctx)
	if err := db.Create(&orderDTO).Error; err != nil {
		return err
	}

	if err := db.Create(&deliveryDTO).Error; err != nil {
		return err
	}

	if err := db.Create(&lineDTOs).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves an existing order aggregate. Lines are immutable after
// placement, so only the root row and the delivery row are rewritten.
func (r *GormOrderRepository) Update(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	orderDTO, deliveryDTO, _ := fromDomain(aggregate)

	db := r.db.WithContext(ctx)
	result := db.Model(&OrderDTO{}).Where("id = ?", orderDTO.ID).Updates(map[string]any{
		"member_id": orderDTO.MemberID,
		"placed_at": orderDTO.PlacedAt,
		"status":    orderDTO.Status,
	})
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	err := db.Model(&DeliveryDTO{}).Where("order_id = ?", orderDTO.ID).Updates(map[string]any{
		"address_city":     deliveryDTO.Address.City,
		"address_street":   deliveryDTO.Address.Street,
		"address_zip_code": deliveryDTO.Address.ZipCode,
		"status":           deliveryDTO.Status,
	}).Error
	if err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves a complete order aggregate by ID.
func (r *GormOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	db := r.db.WithContext(ctx)

	var orderDTO OrderDTO
	if err := db.First(&orderDTO, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("order", id.String())
		}
		return nil, err
	}

	var deliveryDTO DeliveryDTO
	if err := db.First(&deliveryDTO, "order_id = ?", orderDTO.ID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("delivery for order", id.String())
		}
		return nil, err
	}

	var lineDTOs []LineDTO
	if err := db.Order("id").Find(&lineDTOs, "order_id = ?", orderDTO.ID).Error; err != nil {
		return nil, err
	}

	return toDomain(orderDTO, deliveryDTO, lineDTOs)
}
