package order_test

import (
	"fmt"
	"testing"

	"backoffice/internal/core/domain/model/order"
	"backoffice/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatus_Validate(t *testing.T) {
	t.Run("should validate valid statuses", func(t *testing.T) {
		validStatuses := []order.Status{
			order.StatusPending,
			order.StatusProcessing,
			order.StatusShipped,
			order.StatusDelivered,
			order.StatusCancelled,
		}

		for _, status := range validStatuses {
			t.Run(fmt.Sprintf("should validate %s status", status.String()), func(t *testing.T) {
				require.NoError(t, status.Validate())
			})
		}
	})

	t.Run("should reject invalid status values", func(t *testing.T) {
		invalidStatuses := []order.Status{
			order.StatusUnknown,
			order.Status(-1),
			order.Status(6),
			order.Status(100),
		}

		for _, status := range invalidStatuses {
			t.Run(fmt.Sprintf("should reject status value %d", int(status)), func(t *testing.T) {
				err := status.Validate()

				require.Error(t, err)
				assert.IsType(t, &errs.ValueIsInvalidError{}, err)
				assert.Contains(t, err.Error(), "status is invalid")
			})
		}
	})
}

func TestStatus_String(t *testing.T) {
	testCases := []struct {
		status   order.Status
		expected string
	}{
		{order.StatusPending, "Pending"},
		{order.StatusProcessing, "Processing"},
		{order.StatusShipped, "Shipped"},
		{order.StatusDelivered, "Delivered"},
		{order.StatusCancelled, "Cancelled"},
		{order.StatusUnknown, "Unknown"},
		{order.Status(42), "Unknown"},
	}

	for _, tc := range testCases {
		t.Run(fmt.Sprintf("should return %s for %d", tc.expected, int(tc.status)), func(t *testing.T) {
			assert.Equal(t, tc.expected, tc.status.String())
		})
	}
}

func TestStatus_TransitionTo(t *testing.T) {
	t.Run("should allow legal edges", func(t *testing.T) {
		legal := []struct{ from, to order.Status }{
			{order.StatusPending, order.StatusProcessing},
			{order.StatusPending, order.StatusCancelled},
			{order.StatusProcessing, order.StatusShipped},
			{order.StatusProcessing, order.StatusCancelled},
			{order.StatusShipped, order.StatusDelivered},
		}

		for _, edge := range legal {
			t.Run(fmt.Sprintf("%s to %s", edge.from, edge.to), func(t *testing.T) {
				next, err := edge.from.TransitionTo(edge.to)
				require.NoError(t, err)
				assert.Equal(t, edge.to, next)
			})
		}
	})

	t.Run("should reject every edge outside the legal set", func(t *testing.T) {
		all := []order.Status{
			order.StatusPending,
			order.StatusProcessing,
			order.StatusShipped,
			order.StatusDelivered,
			order.StatusCancelled,
		}

		for _, from := range all {
			for _, to := range all {
				if from.CanTransitionTo(to) {
					continue
				}
				t.Run(fmt.Sprintf("%s to %s", from, to), func(t *testing.T) {
					_, err := from.TransitionTo(to)
					require.ErrorIs(t, err, order.ErrInvalidTransition)
				})
			}
		}
	})

	t.Run("terminal statuses have no outgoing edges", func(t *testing.T) {
		assert.True(t, order.StatusDelivered.IsTerminal())
		assert.True(t, order.StatusCancelled.IsTerminal())
		assert.False(t, order.StatusPending.IsTerminal())
		assert.False(t, order.StatusProcessing.IsTerminal())
		assert.False(t, order.StatusShipped.IsTerminal())
	})
}
