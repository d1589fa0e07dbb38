package order_test

import (
	"fmt"
	"testing"

	"mezzo/internal/core/domain/model/order"
	"mezzo/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatus_String(t *testing.T) {
	testCases := []struct {
		status   order.Status
		expected string
	}{
		{order.UnderReview, "under_review"},
		{order.Preparing, "preparing"},
		{order.OnWay, "on_way"},
		{order.Arrived, "arrived"},
		{order.Completed, "completed"},
		{order.Cancelled, "cancelled"},
		{order.CancellationPending, "cancellation_pending"},
		{order.Unknown, "unknown"},
		{order.Status(99), "unknown"},
	}

	for _, tc := range testCases {
		assert.Equal(t, tc.expected, tc.status.String())
	}
}

func TestStatusFromString(t *testing.T) {
	t.Run("round-trips every valid status", func(t *testing.T) {
		valid := []order.Status{
			order.UnderReview, order.Preparing, order.OnWay, order.Arrived,
			order.Completed, order.Cancelled, order.CancellationPending,
		}
		for _, status := range valid {
			parsed, err := order.StatusFromString(status.String())
			require.NoError(t, err)
			assert.Equal(t, status, parsed)
		}
	})

	t.Run("rejects unknown strings", func(t *testing.T) {
		for _, s := range []string{"", "unknown", "delivered", "UNDER_REVIEW"} {
			_, err := order.StatusFromString(s)
			require.Error(t, err, "input %q", s)
			require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		}
	})
}

func TestStatus_Validate(t *testing.T) {
	t.Run("accepts defined lifecycle states", func(t *testing.T) {
		for _, status := range []order.Status{
			order.UnderReview, order.Preparing, order.OnWay, order.Arrived,
			order.Completed, order.Cancelled, order.CancellationPending,
		} {
			require.NoError(t, status.Validate())
		}
	})

	t.Run("rejects Unknown and out-of-range values", func(t *testing.T) {
		for _, status := range []order.Status{order.Unknown, order.Status(-1), order.Status(42)} {
			err := status.Validate()
			require.Error(t, err)
			assert.Contains(t, err.Error(), "status is invalid")
		}
	})
}

func TestStatus_AdvanceTo(t *testing.T) {
	t.Run("follows the strict linear path", func(t *testing.T) {
		path := []order.Status{
			order.UnderReview, order.Preparing, order.OnWay, order.Arrived, order.Completed,
		}
		for i := 0; i < len(path)-1; i++ {
			next, err := path[i].AdvanceTo(path[i+1])
			require.NoError(t, err)
			assert.Equal(t, path[i+1], next)
		}
	})

	t.Run("rejects skipping a required predecessor", func(t *testing.T) {
		testCases := []struct {
			from, to order.Status
		}{
			{order.UnderReview, order.OnWay},
			{order.UnderReview, order.Completed},
			{order.Preparing, order.Arrived},
			{order.OnWay, order.Completed},
		}
		for _, tc := range testCases {
			t.Run(fmt.Sprintf("%s to %s", tc.from, tc.to), func(t *testing.T) {
				_, err := tc.from.AdvanceTo(tc.to)
				require.ErrorIs(t, err, order.ErrInvalidTransition)
			})
		}
	})

	t.Run("rejects moving backwards", func(t *testing.T) {
		_, err := order.OnWay.AdvanceTo(order.Preparing)
		require.ErrorIs(t, err, order.ErrInvalidTransition)
	})

	t.Run("rejects transitions out of terminal states", func(t *testing.T) {
		for _, terminal := range []order.Status{order.Completed, order.Cancelled} {
			_, err := terminal.AdvanceTo(order.Preparing)
			require.ErrorIs(t, err, order.ErrTerminalState)
		}
	})

	t.Run("rejects advancing while a cancellation request is pending", func(t *testing.T) {
		_, err := order.CancellationPending.AdvanceTo(order.Preparing)
		require.ErrorIs(t, err, order.ErrInvalidTransition)
	})

	t.Run("rejects invalid targets", func(t *testing.T) {
		_, err := order.UnderReview.AdvanceTo(order.Unknown)
		require.Error(t, err)
	})
}

func TestStatus_IsTerminal(t *testing.T) {
	assert.True(t, order.Completed.IsTerminal())
	assert.True(t, order.Cancelled.IsTerminal())
	for _, status := range []order.Status{
		order.UnderReview, order.Preparing, order.OnWay, order.Arrived, order.CancellationPending,
	} {
		assert.False(t, status.IsTerminal(), status.String())
	}
}

func TestStatus_CancellationRules(t *testing.T) {
	t.Run("direct cancel allowed only before dispatch", func(t *testing.T) {
		assert.True(t, order.UnderReview.CanDirectCancel())
		assert.True(t, order.Preparing.CanDirectCancel())
		assert.False(t, order.OnWay.CanDirectCancel())
		assert.False(t, order.Arrived.CanDirectCancel())
		assert.False(t, order.Completed.CanDirectCancel())
		assert.False(t, order.CancellationPending.CanDirectCancel())
	})

	t.Run("customer requests allowed from any active status", func(t *testing.T) {
		for _, status := range []order.Status{
			order.UnderReview, order.Preparing, order.OnWay, order.Arrived,
		} {
			assert.True(t, status.CanRequestCancellation(), status.String())
		}
		for _, status := range []order.Status{
			order.Completed, order.Cancelled, order.CancellationPending, order.Unknown,
		} {
			assert.False(t, status.CanRequestCancellation(), status.String())
		}
	})

	t.Run("dispatch loss applies once goods left the kitchen", func(t *testing.T) {
		assert.True(t, order.OnWay.CausesDispatchLoss())
		assert.True(t, order.Arrived.CausesDispatchLoss())
		assert.False(t, order.UnderReview.CausesDispatchLoss())
		assert.False(t, order.Preparing.CausesDispatchLoss())
	})
}
