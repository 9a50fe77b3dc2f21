package queries

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetOrdersWithLinesQueryHandler retrieves orders and their lines in a
// single joined query.
type GetOrdersWithLinesQueryHandler struct {
	db *gorm.DB
}

// NewGetOrdersWithLinesQueryHandler creates a handler for the single-join listing.
func NewGetOrdersWithLinesQueryHandler(db *gorm.DB) GetOrdersWithLinesQueryHandler {
	return GetOrdersWithLinesQueryHandler{db: db}
}

// Handle executes the query. The result set carries one row per order line,
// with the root columns repeated on each; consecutive rows sharing an order
// ID collapse into one response entry. The ORDER BY keeps each order's rows
// adjacent, which the collapse depends on.
func (h GetOrdersWithLinesQueryHandler) Handle(
	ctx context.Context,
	query GetOrdersWithLinesQuery,
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

	var currentID uuid.UUID
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

		if len(orders) == 0 || id != currentID {
			resp, headErr := scanOrderHead(id, memberName, placedAt, status, city, street, zipCode)
			if headErr != nil {
				return nil, headErr
			}
			orders = append(orders, resp)
			currentID = id
		}

		last := &orders[len(orders)-1]
		last.Lines = append(last.Lines, line)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return orders, nil
}
