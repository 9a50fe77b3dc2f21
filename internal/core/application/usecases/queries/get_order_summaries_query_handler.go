package queries

import (
	"context"
	"time"

	"shop/internal/core/domain/model/kernel"
	"shop/internal/core/domain/model/order"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetOrderSummariesQueryHandler retrieves orders projected directly into
// their display shape, bypassing the duplicated rows of a collection join.
type GetOrderSummariesQueryHandler struct {
	db *gorm.DB
}

// NewGetOrderSummariesQueryHandler creates a handler for the summary listing.
func NewGetOrderSummariesQueryHandler(db *gorm.DB) GetOrderSummariesQueryHandler {
	return GetOrderSummariesQueryHandler{db: db}
}

// Handle projects the order headers in one query, then projects the lines of
// each order with a follow-up query.
func (h GetOrderSummariesQueryHandler) Handle(
	ctx context.Context,
	query GetOrderSummariesQuery,
) ([]OrderSummaryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	summaries := make([]OrderSummaryResponse, 0)

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
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	for i := range summaries {
		lines, linesErr := loadOrderLines(ctx, h.db, summaries[i].ID)
		if linesErr != nil {
			return nil, linesErr
		}
		summaries[i].Lines = lines
	}

	return summaries, nil
}
