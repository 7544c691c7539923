package orderControllers

import (
	"testing"

	"github.com/Pavan17153/SS/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseStatus(t *testing.T) {
	for _, s := range []string{"paid", "unshipped", "shipped", "delivered", "Cancelled"} {
		got, err := ParseStatus(s)
		require.NoError(t, err, s)
		assert.Equal(t, models.OrderStatus(s), got)
	}

	for _, s := range []string{"cancelled", "CANCELLED", "Paid", "pending", "", "refunded"} {
		_, err := ParseStatus(s)
		assert.ErrorIs(t, err, ErrInvalidStatus, s)
	}
}

func TestCanTransition(t *testing.T) {
	allowed := []struct{ from, to models.OrderStatus }{
		{models.OrderStatusPaid, models.OrderStatusUnshipped},
		{models.OrderStatusPaid, models.OrderStatusShipped},
		{models.OrderStatusPaid, models.OrderStatusCancelled},
		{models.OrderStatusUnshipped, models.OrderStatusShipped},
		{models.OrderStatusUnshipped, models.OrderStatusDelivered},
		{models.OrderStatusUnshipped, models.OrderStatusCancelled},
		{models.OrderStatusShipped, models.OrderStatusUnshipped},
		{models.OrderStatusShipped, models.OrderStatusDelivered},
		{models.OrderStatusShipped, models.OrderStatusCancelled},
	}
	for _, tc := range allowed {
		assert.True(t, CanTransition(tc.from, tc.to), "%s -> %s", tc.from, tc.to)
	}

	denied := []struct{ from, to models.OrderStatus }{
		{models.OrderStatusPaid, models.OrderStatusDelivered},
		{models.OrderStatusDelivered, models.OrderStatusShipped},
		{models.OrderStatusDelivered, models.OrderStatusCancelled},
		{models.OrderStatusCancelled, models.OrderStatusPaid},
		{models.OrderStatusCancelled, models.OrderStatusUnshipped},
		{models.OrderStatusShipped, models.OrderStatusPaid},
		{models.OrderStatusUnshipped, models.OrderStatusPaid},
	}
	for _, tc := range denied {
		assert.False(t, CanTransition(tc.from, tc.to), "%s -> %s", tc.from, tc.to)
	}
}

func TestTerminalStatesHaveNoExit(t *testing.T) {
	all := []models.OrderStatus{
		models.OrderStatusPaid,
		models.OrderStatusUnshipped,
		models.OrderStatusShipped,
		models.OrderStatusDelivered,
		models.OrderStatusCancelled,
	}
	for _, to := range all {
		assert.False(t, CanTransition(models.OrderStatusDelivered, to), "delivered -> %s", to)
		assert.False(t, CanTransition(models.OrderStatusCancelled, to), "Cancelled -> %s", to)
	}
}

func TestCustomerCanCancel(t *testing.T) {
	assert.True(t, CustomerCanCancel(models.OrderStatusPaid))
	assert.True(t, CustomerCanCancel(models.OrderStatusUnshipped))
	assert.False(t, CustomerCanCancel(models.OrderStatusShipped))
	assert.False(t, CustomerCanCancel(models.OrderStatusDelivered))
	assert.False(t, CustomerCanCancel(models.OrderStatusCancelled))
}
