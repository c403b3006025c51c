package valueobjects

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOrderStatusTransitions(t *testing.T) {
	tests := []struct {
		name    string
		from    OrderStatus
		to      OrderStatus
		allowed bool
	}{
		{"cart to pending", StatusCart, StatusPending, true},
		{"cart cannot skip to paid", StatusCart, StatusPaid, false},
		{"pending to paid", StatusPending, StatusPaid, true},
		{"pending to cancelled", StatusPending, StatusCancelled, true},
		{"paid to preparing", StatusPaid, StatusPreparing, true},
		{"paid to cancelled", StatusPaid, StatusCancelled, true},
		{"paid cannot jump to completed", StatusPaid, StatusCompleted, false},
		{"preparing to shipping", StatusPreparing, StatusShipping, true},
		{"preparing cannot be cancelled", StatusPreparing, StatusCancelled, false},
		{"shipping to completed", StatusShipping, StatusCompleted, true},
		{"shipping to cancelled", StatusShipping, StatusCancelled, true},
		{"completed to refunded", StatusCompleted, StatusRefunded, true},
		{"shipping cannot be refunded", StatusShipping, StatusRefunded, false},
		{"cancelled is terminal", StatusCancelled, StatusPending, false},
		{"refunded is terminal", StatusRefunded, StatusCompleted, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.allowed, tt.from.CanTransitionTo(tt.to))
		})
	}
}

func TestNewOrderStatus(t *testing.T) {
	status, err := NewOrderStatus("  shipping ")
	require.NoError(t, err)
	assert.Equal(t, StatusShipping, status)

	_, err = NewOrderStatus("DELIVERED")
	assert.Error(t, err)
}

func TestOrderStatusPredicates(t *testing.T) {
	assert.True(t, StatusCancelled.IsTerminal())
	assert.True(t, StatusRefunded.IsTerminal())
	assert.False(t, StatusCompleted.IsTerminal())
	assert.False(t, StatusShipping.IsTerminal())
}
