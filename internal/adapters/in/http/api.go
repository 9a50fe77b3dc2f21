package http

import (
	"time"

	"github.com/google/uuid"
)

// Error is the JSON error body returned by all endpoints.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// Address is the JSON shape of a postal address.
type Address struct {
	City    string `json:"city"`
	Street  string `json:"street"`
	ZipCode string `json:"zipCode"`
}

// NewMember is the request body for member registration.
type NewMember struct {
	Name    string  `json:"name"`
	Address Address `json:"address"`
}

// NewItem is the request body for item registration.
type NewItem struct {
	Kind  string `json:"kind"`
	Name  string `json:"name"`
	Price int    `json:"price"`
	Stock int    `json:"stock"`
}

// ChangeItem is the request body for item updates.
type ChangeItem struct {
	Name  string `json:"name"`
	Price int    `json:"price"`
}

// NewOrder is the request body for placing an order.
type NewOrder struct {
	MemberID uuid.UUID `json:"memberId"`
	ItemID   uuid.UUID `json:"itemId"`
	Quantity int       `json:"quantity"`
}

// Created is the response body for successful resource creation.
type Created struct {
	ID uuid.UUID `json:"id"`
}

// OrderLine is one purchased line within an Order response.
type OrderLine struct {
	ItemName string `json:"itemName"`
	Price    int    `json:"price"`
	Quantity int    `json:"quantity"`
}

// Order is the JSON shape shared by all order listing endpoints.
type Order struct {
	ID         uuid.UUID   `json:"id"`
	MemberName string      `json:"memberName"`
	PlacedAt   time.Time   `json:"placedAt"`
	Status     string      `json:"status"`
	Address    Address     `json:"address"`
	Lines      []OrderLine `json:"lines"`
}

// OrderSummary is the directly projected order shape returned by the summary
// endpoint.
type OrderSummary struct {
	ID         uuid.UUID   `json:"id"`
	MemberName string      `json:"memberName"`
	PlacedAt   time.Time   `json:"placedAt"`
	Status     string      `json:"status"`
	Address    Address     `json:"address"`
	Lines      []OrderLine `json:"lines"`
}
