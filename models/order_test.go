package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func item(s ItemStatus, p PaymentStatus) OrderItem {
	return OrderItem{Status: s, PaymentStatus: p}
}

func TestDeriveOrderStatus(t *testing.T) {
	tests := []struct {
		name  string
		items []OrderItem
		want  OrderStatus
	}{
		{"no items", nil, OrderStatusPending},
		{"all pending", []OrderItem{
			item(ItemStatusPending, PaymentStatusPending),
			item(ItemStatusPending, PaymentStatusPending),
		}, OrderStatusPending},
		{"one processing", []OrderItem{
			item(ItemStatusPending, PaymentStatusPending),
			item(ItemStatusProcessing, PaymentStatusPending),
		}, OrderStatusProcessing},
		{"all shipped", []OrderItem{
			item(ItemStatusShipped, PaymentStatusPaid),
			item(ItemStatusShipped, PaymentStatusPaid),
		}, OrderStatusShipped},
		{"shipped and delivered mix counts as shipped", []OrderItem{
			item(ItemStatusShipped, PaymentStatusPaid),
			item(ItemStatusDelivered, PaymentStatusPaid),
		}, OrderStatusShipped},
		{"all delivered", []OrderItem{
			item(ItemStatusDelivered, PaymentStatusPaid),
			item(ItemStatusDelivered, PaymentStatusPaid),
		}, OrderStatusDelivered},
		{"all cancelled", []OrderItem{
			item(ItemStatusCancelled, PaymentStatusRefunded),
			item(ItemStatusCancelled, PaymentStatusFailed),
		}, OrderStatusCancelled},
		{"some cancelled", []OrderItem{
			item(ItemStatusCancelled, PaymentStatusRefunded),
			item(ItemStatusShipped, PaymentStatusPaid),
		}, OrderStatusPartiallyCancelled},
		{"cancelled plus delivered is still partially cancelled", []OrderItem{
			item(ItemStatusCancelled, PaymentStatusRefunded),
			item(ItemStatusDelivered, PaymentStatusPaid),
		}, OrderStatusPartiallyCancelled},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DeriveOrderStatus(tt.items))
		})
	}
}

func TestDeriveOrderPaymentStatus(t *testing.T) {
	tests := []struct {
		name  string
		items []OrderItem
		want  PaymentStatus
	}{
		{"no items", nil, PaymentStatusPending},
		{"all pending", []OrderItem{
			item(ItemStatusPending, PaymentStatusPending),
		}, PaymentStatusPending},
		{"any paid wins", []OrderItem{
			item(ItemStatusShipped, PaymentStatusPaid),
			item(ItemStatusCancelled, PaymentStatusFailed),
		}, PaymentStatusPaid},
		{"all failed", []OrderItem{
			item(ItemStatusCancelled, PaymentStatusFailed),
			item(ItemStatusCancelled, PaymentStatusFailed),
		}, PaymentStatusFailed},
		{"refunded plus failed reads refunded", []OrderItem{
			item(ItemStatusCancelled, PaymentStatusRefunded),
			item(ItemStatusCancelled, PaymentStatusFailed),
		}, PaymentStatusRefunded},
		{"refund pending others", []OrderItem{
			item(ItemStatusCancelled, PaymentStatusRefunded),
			item(ItemStatusPending, PaymentStatusPending),
		}, PaymentStatusPending},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DeriveOrderPaymentStatus(tt.items))
		})
	}
}

func TestAllShippedOrDelivered(t *testing.T) {
	assert.False(t, AllShippedOrDelivered(nil))
	assert.False(t, AllShippedOrDelivered([]OrderItem{
		item(ItemStatusCancelled, PaymentStatusRefunded),
	}), "all-cancelled order has nothing to deliver")
	assert.False(t, AllShippedOrDelivered([]OrderItem{
		item(ItemStatusShipped, PaymentStatusPaid),
		item(ItemStatusProcessing, PaymentStatusPaid),
	}))
	assert.True(t, AllShippedOrDelivered([]OrderItem{
		item(ItemStatusCancelled, PaymentStatusRefunded),
		item(ItemStatusShipped, PaymentStatusPaid),
		item(ItemStatusDelivered, PaymentStatusPaid),
	}))
}
