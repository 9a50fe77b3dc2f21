package order

import (
	"fmt"

	"shop/internal/pkg/errs"
)

// DeliveryStatus represents the shipment state of an order's delivery.
//
// State transitions:
//
//	Ready ──> InTransit ──> Completed
//
// The delivery status gates cancellation: an order whose delivery has reached
// Completed can no longer be cancelled.
type DeliveryStatus int

const (
	// DeliveryUnknown represents an invalid or undefined delivery status.
	// This value (0) helps catch uninitialized DeliveryStatus values.
	DeliveryUnknown DeliveryStatus = iota

	// Ready is the initial status; the shipment has not left yet.
	Ready

	// InTransit indicates the shipment is on its way.
	InTransit

	// Completed indicates the shipment was delivered.
	// This is a final state with no further transitions allowed.
	Completed
)

func getDeliveryStatusStrings() map[DeliveryStatus]string {
	return map[DeliveryStatus]string{
		DeliveryUnknown: "Unknown",
		Ready:           "Ready",
		InTransit:       "InTransit",
		Completed:       "Completed",
	}
}

func getValidDeliveryStatusStrings() map[DeliveryStatus]string {
	//nolint:exhaustive // DeliveryUnknown is intentionally excluded as it's invalid
	return map[DeliveryStatus]string{
		Ready:     "Ready",
		InTransit: "InTransit",
		Completed: "Completed",
	}
}

// Validate checks if the DeliveryStatus value is valid.
// Valid statuses are Ready, InTransit and Completed.
func (s DeliveryStatus) Validate() error {
	if _, ok := getValidDeliveryStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"delivery status is invalid",
			fmt.Errorf("%d is not a valid delivery status", s),
		)
	}
	return nil
}

// String returns the human-readable name of the delivery status.
// Implements the fmt.Stringer interface and is safe to call on any value.
func (s DeliveryStatus) String() string {
	if str, ok := getDeliveryStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// Ship transitions the delivery status to InTransit.
//
// Valid transitions:
//   - Ready -> InTransit
func (s DeliveryStatus) Ship() (DeliveryStatus, error) {
	if s != Ready {
		return 0, errs.NewValueIsInvalidErrorWithCause(
			"delivery status is invalid",
			fmt.Errorf("%s is not a valid status to ship", s.String()),
		)
	}

	return InTransit, nil
}

// Complete transitions the delivery status to Completed.
//
// Valid transitions:
//   - InTransit -> Completed
func (s DeliveryStatus) Complete() (DeliveryStatus, error) {
	if s != InTransit {
		return 0, errs.NewValueIsInvalidErrorWithCause(
			"delivery status is invalid",
			fmt.Errorf("%s is not a valid status to complete", s.String()),
		)
	}

	return Completed, nil
}
