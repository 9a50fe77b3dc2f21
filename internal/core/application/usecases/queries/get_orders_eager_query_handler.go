package queries

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetOrdersEagerQueryHandler retrieves orders with their to-one associations
// joined in a single pass.
type GetOrdersEagerQueryHandler struct {
	db *gorm.DB
}

// NewGetOrdersEagerQueryHandler creates a handler for the to-one-joined listing.
func NewGetOrdersEagerQueryHandler(db *gorm.DB) GetOrdersEagerQueryHandler {
	return GetOrdersEagerQueryHandler{db: db}
}

// Handle executes the query. Joining members and deliveries does not
// duplicate order rows because both are to-one associations.
func (h GetOrdersEagerQueryHandler) Handle(
	ctx context.Context,
	query GetOrdersEagerQuery,
) ([]OrderResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	orders := make([]OrderResponse, 0)

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

		resp, headErr := scanOrderHead(id, memberName, placedAt, status, city, street, zipCode)
		if headErr != nil {
			return nil, headErr
		}
		orders = append(orders, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	for i := range orders {
		lines, linesErr := loadOrderLines(ctx, h.db, orders[i].ID)
		if linesErr != nil {
			return nil, linesErr
		}
		orders[i].Lines = lines
	}

	return orders, nil
}
