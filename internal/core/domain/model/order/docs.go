// Package order provides domain entities and business logic for order management
// in the shop backend. It implements the Order aggregate root with lifecycle
// management and state transitions.
//
// The package includes:
//   - Order: The aggregate root composing member reference, delivery and line entries
//   - Line: One item/quantity/captured-price entry within an order
//   - Delivery: The shipment record exclusively owned by one order
//   - Status: A state machine enforcing the single Placed -> Cancelled transition
//   - DeliveryStatus: The Ready -> InTransit -> Completed shipment state machine
//
// Key business rules:
//   - Delivery and lines are created, persisted and removed with their order
//   - Line prices are captured at order time and stay stable afterwards
//   - Total price is always recomputed from lines, never stored
//   - An order is cancelled at most once, and never after its delivery completed
//
// The package follows Domain-Driven Design principles, providing rich domain
// behavior, encapsulation, and validation to ensure business rules are enforced.
package order
