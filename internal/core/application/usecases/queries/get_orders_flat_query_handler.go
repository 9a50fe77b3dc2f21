package queries

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetOrdersFlatQueryHandler retrieves orders by regrouping a fully
// denormalized result set.
type GetOrdersFlatQueryHandler struct {
	db *gorm.DB
}

// NewGetOrdersFlatQueryHandler creates a handler for the flat-join listing.
func NewGetOrdersFlatQueryHandler(db *gorm.DB) GetOrdersFlatQueryHandler {
	return GetOrdersFlatQueryHandler{db: db}
}

// Handle executes the query. The ORDER BY fixes the sequencing of the flat
// rows; the map only deduplicates the repeated root columns.
func (h GetOrdersFlatQueryHandler) Handle(
	ctx context.Context,
	query GetOrdersFlatQuery,
) ([]OrderResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			o.id,
			m.name,
			o.placed_at,
			o.status,
			d.address_city,
			d.address_street,
			d.address_zip_code,
			i.name,
			ol.price,
			ol.quantity
		FROM orders o
		JOIN members m ON m.id = o.member_id
		JOIN deliveries d ON d.order_id = o.id
		JOIN order_lines ol ON ol.order_id = o.id
		JOIN items i ON i.id = ol.item_id
		ORDER BY o.placed_at, o.id, ol.id
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	orders := make([]OrderResponse, 0)
	position := make(map[uuid.UUID]int)

	for rows.Next() {
		var id uuid.UUID
		var memberName string
		var placedAt time.Time
		var status int
		var city, street, zipCode string
		var line OrderLineResponse

		err = rows.Scan(
			&id, &memberName, &placedAt, &status,
			&city, &street, &zipCode,
			&line.ItemName, &line.Price, &line.Quantity,
		)
		if err != nil {
			return nil, err
		}

		idx, seen := position[id]
		if !seen {
			resp, headErr := scanOrderHead(id, memberName, placedAt, status, city, street, zipCode)
			if headErr != nil {
				return nil, headErr
			}
			idx = len(orders)
			orders = append(orders, resp)
			position[id] = idx
		}

		orders[idx].Lines = append(orders[idx].Lines, line)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return orders, nil
}
