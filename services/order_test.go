package services

import (
	"context"
	"testing"

	"evdealer/models"
	"evdealer/repository/repotest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newOrderService() (*OrderService, *repotest.Orders, *repotest.Payments) {
	payments := &repotest.Payments{}
	orders := repotest.NewOrders(payments)
	customers := repotest.NewCustomers(models.Customer{ID: "c1", FullName: "An"})
	svc := NewOrderService(orders, customers)
	svc.now = fixedNow
	return svc, orders, payments
}

func TestOrderCreateDefaults(t *testing.T) {
	svc, _, payments := newOrderService()

	order, err := svc.Create(context.Background(), &OrderRequest{CustomerID: "c1", VehicleID: "vf5", Amount: 529_000_000})
	require.NoError(t, err)
	assert.NotEmpty(t, order.ID)
	assert.Equal(t, models.OrderStatusPending, order.Status)
	assert.Equal(t, "2026-10-16", order.OrderDate)
	assert.Empty(t, payments.Items, "no deposit, no payment")
}

func TestOrderCreateWithDepositRecordsPayment(t *testing.T) {
	svc, _, payments := newOrderService()

	order, err := svc.Create(context.Background(), &OrderRequest{
		CustomerID: "c1", VehicleID: "vf8", Amount: 1_199_000_000, Deposit: 50_000_000, Status: "Confirmed",
	})
	require.NoError(t, err)
	assert.Equal(t, models.OrderStatusConfirmed, order.Status)

	require.Len(t, payments.Items, 1)
	p := payments.Items[0]
	assert.Equal(t, order.ID, p.OrderID)
	assert.Equal(t, "c1", p.CustomerID)
	assert.Equal(t, 50_000_000.0, p.Amount)
	assert.Equal(t, PaymentMethodDeposit, p.Method)
}

func TestOrderCreateRejects(t *testing.T) {
	svc, _, _ := newOrderService()
	ctx := context.Background()

	tests := []struct {
		name string
		req  OrderRequest
	}{
		{"unknown status", OrderRequest{CustomerID: "c1", VehicleID: "vf3", Status: "shipped"}},
		{"deposit over amount", OrderRequest{CustomerID: "c1", VehicleID: "vf3", Amount: 10, Deposit: 20}},
		{"bad date", OrderRequest{CustomerID: "c1", VehicleID: "vf3", OrderDate: "16/10/2026"}},
		{"unknown customer", OrderRequest{CustomerID: "c404", VehicleID: "vf3"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := tt.req
			_, err := svc.Create(ctx, &req)
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}

func TestOrderUpdate(t *testing.T) {
	svc, orders, _ := newOrderService()
	ctx := context.Background()

	order, err := svc.Create(ctx, &OrderRequest{CustomerID: "c1", VehicleID: "vf5", Amount: 100})
	require.NoError(t, err)

	updated, err := svc.Update(ctx, order.ID, &OrderRequest{CustomerID: "c1", VehicleID: "vf5", Amount: 100, Status: models.OrderStatusDelivered})
	require.NoError(t, err)
	assert.Equal(t, order.ID, updated.ID)
	assert.Equal(t, models.OrderStatusDelivered, orders.Items[order.ID].Status)

	_, err = svc.Update(ctx, "missing", &OrderRequest{CustomerID: "c1"})
	assert.ErrorIs(t, err, ErrNotFound)

	list, err := svc.List(ctx, "c1")
	require.NoError(t, err)
	assert.Len(t, list, 1)
}
