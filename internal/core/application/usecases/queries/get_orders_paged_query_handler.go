package queries

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetOrdersPagedQueryHandler retrieves a page of orders with batched line loading.
type GetOrdersPagedQueryHandler struct {
	db *gorm.DB
}

// NewGetOrdersPagedQueryHandler creates a handler for the paged order listing.
func NewGetOrdersPagedQueryHandler(db *gorm.DB) GetOrdersPagedQueryHandler {
	return GetOrdersPagedQueryHandler{db: db}
}

// Handle executes the query. LIMIT and OFFSET apply to the to-one-joined
// root rows, which stay one-per-order, so the page boundaries are exact.
func (h GetOrdersPagedQueryHandler) Handle(
	ctx context.Context,
	query GetOrdersPagedQuery,
) ([]OrderResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	orders := make([]OrderResponse, 0, query.Limit())
	orderIDs := make([]uuid.UUID, 0, query.Limit())

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
		LIMIT ? OFFSET ?
	`, query.Limit(), query.Offset()).Rows()
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
		orderIDs = append(orderIDs, id)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	grouped, err := loadOrderLinesBatch(ctx, h.db, orderIDs)
	if err != nil {
		return nil, err
	}

	for i := range orders {
		orders[i].Lines = grouped[orderIDs[i]]
	}

	return orders, nil
}
