package order_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"shop/internal/core/domain/model/order"
)

func TestStatus_Validate(t *testing.T) {
	t.Run("valid statuses", func(t *testing.T) {
		require.NoError(t, order.Placed.Validate())
		require.NoError(t, order.Cancelled.Validate())
	})

	t.Run("invalid statuses", func(t *testing.T) {
		require.Error(t, order.Unknown.Validate())
		require.Error(t, order.Status(42).Validate())
	})
}

func TestStatus_String(t *testing.T) {
	assert.Equal(t, "Placed", order.Placed.String())
	assert.Equal(t, "Cancelled", order.Cancelled.String())
	assert.Equal(t, "Unknown", order.Unknown.String())
	assert.Equal(t, "Unknown", order.Status(42).String())
}

func TestStatusFromString(t *testing.T) {
	t.Run("round trip", func(t *testing.T) {
		for _, status := range []order.Status{order.Placed, order.Cancelled} {
			parsed, err := order.StatusFromString(status.String())
			require.NoError(t, err)
			assert.Equal(t, status, parsed)
		}
	})

	t.Run("unknown string", func(t *testing.T) {
		_, err := order.StatusFromString("Shipped")
		require.Error(t, err)
	})
}

func TestStatus_Cancel(t *testing.T) {
	t.Run("placed order can be cancelled", func(t *testing.T) {
		newStatus, err := order.Placed.Cancel()

		require.NoError(t, err)
		assert.Equal(t, order.Cancelled, newStatus)
	})

	t.Run("cancelled order cannot be cancelled again", func(t *testing.T) {
		_, err := order.Cancelled.Cancel()
		require.Error(t, err)
	})

	t.Run("unknown status cannot be cancelled", func(t *testing.T) {
		_, err := order.Unknown.Cancel()
		require.Error(t, err)
	})
}

func TestDeliveryStatus_Transitions(t *testing.T) {
	t.Run("ready ships to in transit", func(t *testing.T) {
		newStatus, err := order.Ready.Ship()

		require.NoError(t, err)
		assert.Equal(t, order.InTransit, newStatus)
	})

	t.Run("in transit completes", func(t *testing.T) {
		newStatus, err := order.InTransit.Complete()

		require.NoError(t, err)
		assert.Equal(t, order.Completed, newStatus)
	})

	t.Run("ready cannot complete directly", func(t *testing.T) {
		_, err := order.Ready.Complete()
		require.Error(t, err)
	})

	t.Run("completed is terminal", func(t *testing.T) {
		_, err := order.Completed.Ship()
		require.Error(t, err)

		_, err = order.Completed.Complete()
		require.Error(t, err)
	})
}

func TestDeliveryStatus_Validate(t *testing.T) {
	require.NoError(t, order.Ready.Validate())
	require.NoError(t, order.InTransit.Validate())
	require.NoError(t, order.Completed.Validate())
	require.Error(t, order.DeliveryUnknown.Validate())
	require.Error(t, order.DeliveryStatus(42).Validate())
}

func TestDeliveryStatus_String(t *testing.T) {
	assert.Equal(t, "Ready", order.Ready.String())
	assert.Equal(t, "InTransit", order.InTransit.String())
	assert.Equal(t, "Completed", order.Completed.String())
	assert.Equal(t, "Unknown", order.DeliveryUnknown.String())
}
