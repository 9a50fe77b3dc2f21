package queries

import (
	"context"
	"time"

	"shop/internal/core/domain/model/kernel"
	"shop/internal/core/domain/model/order"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetOrderSummariesBatchedQueryHandler retrieves orders projected directly
// into their display shape, loading the lines of every order in one batch.
type GetOrderSummariesBatchedQueryHandler struct {
	db *gorm.DB
}

// NewGetOrderSummariesBatchedQueryHandler creates a handler for the batched
// summary listing.
func NewGetOrderSummariesBatchedQueryHandler(db *gorm.DB) GetOrderSummariesBatchedQueryHandler {
	return GetOrderSummariesBatchedQueryHandler{db: db}
}

// Handle projects the order headers in one query, then projects the lines of
// all orders with a single IN query.
func (h GetOrderSummariesBatchedQueryHandler) Handle(
	ctx context.Context,
	query GetOrderSummariesBatchedQuery,
) ([]OrderSummaryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	summaries := make([]OrderSummaryResponse, 0)
	orderIDs := make([]uuid.UUID, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			o.id,
			m.name,
			o.placed_at,
			o.status,
			d.address_city,
			d.address_street,
			d.address_zip_code
		FROM orders o
		JOIN members m ON m.id = o.member_id
		JOIN deliveries d ON d.order_id = o.id
		ORDER BY o.placed_at, o.id
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var id uuid.UUID
		var memberName string
		var placedAt time.Time
		var status int
		var city, street, zipCode string

		err = rows.Scan(&id, &memberName, &placedAt, &status, &city, &street, &zipCode)
		if err != nil {
			return nil, err
		}

		orderID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}

		address, addrErr := kernel.NewAddress(city, street, zipCode)
		if addrErr != nil {
			return nil, addrErr
		}

		summaries = append(summaries, OrderSummaryResponse{
			ID:         orderID,
			MemberName: memberName,
			PlacedAt:   placedAt,
			Status:     order.Status(status).String(),
			Address:    address,
		})
		orderIDs = append(orderIDs, id)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	grouped, err := loadOrderLinesBatch(ctx, h.db, orderIDs)
	if err != nil {
		return nil, err
	}

	for i := range summaries {
		summaries[i].Lines = grouped[orderIDs[i]]
	}

	return summaries, nil
}
