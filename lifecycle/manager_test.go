package lifecycle_test

import (
	"context"
	"testing"
	"time"

	"github.com/ayushrskiaa/Restaurant-Reservation/lifecycle"
	"github.com/ayushrskiaa/Restaurant-Reservation/models"
	"github.com/ayushrskiaa/Restaurant-Reservation/storage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newManager(t *testing.T) (*lifecycle.Manager, *storage.MemoryOrders) {
	t.Helper()
	store := storage.NewMemoryOrders()
	return lifecycle.NewManager(store), store
}

func validRequest() lifecycle.CreateOrderRequest {
	return lifecycle.CreateOrderRequest{
		CustomerName: "Ayush Kumar",
		PhoneNumber:  "9876543210",
		Address:      "221B Baker Street, Patna",
		Items: []models.OrderItem{
			{Title: "Paneer Butter Masala", Price: 250, Quantity: 1},
			{Title: "Butter Naan", Price: 40, Quantity: 2},
		},
		TotalPrice:    330,
		PaymentMethod: models.PaymentCashOnDelivery,
	}
}

func seedOrder(t *testing.T, store *storage.MemoryOrders, mutate func(*models.Order)) *models.Order {
	t.Helper()
	order := &models.Order{
		OrderRef:          "seed-" + time.Now().Format("150405.000000000"),
		CustomerName:      "Seed Customer",
		PhoneNumber:       "9999900000",
		Address:           "12 Fraser Road, Patna",
		Items:             []models.OrderItem{{Title: "Masala Dosa", Price: 120, Quantity: 1}},
		TotalPrice:        120,
		PaymentMethod:     models.PaymentCard,
		Status:            models.OrderStatusProcessing,
		EstimatedDelivery: time.Now().Add(45 * time.Minute),
		CreatedAt:         time.Now(),
	}
	if mutate != nil {
		mutate(order)
	}
	require.NoError(t, store.Create(context.Background(), order))
	return order
}

func TestCreateOrder(t *testing.T) {
	m, store := newManager(t)
	ctx := context.Background()

	before := time.Now()
	order, err := m.CreateOrder(ctx, validRequest())
	require.NoError(t, err)

	assert.NotZero(t, order.ID)
	assert.NotEmpty(t, order.OrderRef)
	assert.Equal(t, models.OrderStatusProcessing, order.Status)
	assert.False(t, order.PaymentDone)
	assert.Nil(t, order.DeliveredAt)
	assert.Len(t, order.Items, 2)

	eta := order.CreatedAt.Add(lifecycle.EstimatedDeliveryWindow)
	assert.WithinDuration(t, eta, order.EstimatedDelivery, time.Second)
	assert.WithinDuration(t, before.Add(45*time.Minute), order.EstimatedDelivery, 5*time.Second)

	count, err := store.Count(ctx)
	require.NoError(t, err)
	assert.EqualValues(t, 1, count)
}

func TestCreateOrder_Validation(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*lifecycle.CreateOrderRequest)
		field  string
	}{
		{"name too short", func(r *lifecycle.CreateOrderRequest) { r.CustomerName = "Al" }, "customerName"},
		{"name too long", func(r *lifecycle.CreateOrderRequest) {
			long := make([]byte, 51)
			for i := range long {
				long[i] = 'a'
			}
			r.CustomerName = string(long)
		}, "customerName"},
		{"phone too short", func(r *lifecycle.CreateOrderRequest) { r.PhoneNumber = "98765" }, "phoneNumber"},
		{"phone with letters", func(r *lifecycle.CreateOrderRequest) { r.PhoneNumber = "98765abcde" }, "phoneNumber"},
		{"address too short", func(r *lifecycle.CreateOrderRequest) { r.Address = "Patna" }, "address"},
		{"no items", func(r *lifecycle.CreateOrderRequest) { r.Items = nil }, "items"},
		{"item without title", func(r *lifecycle.CreateOrderRequest) { r.Items[0].Title = "" }, "items[0].title"},
		{"item negative price", func(r *lifecycle.CreateOrderRequest) { r.Items[1].Price = -5 }, "items[1].price"},
		{"item zero quantity", func(r *lifecycle.CreateOrderRequest) { r.Items[0].Quantity = 0 }, "items[0].quantity"},
		{"negative total", func(r *lifecycle.CreateOrderRequest) { r.TotalPrice = -1 }, "totalPrice"},
		{"unknown payment method", func(r *lifecycle.CreateOrderRequest) { r.PaymentMethod = "Barter" }, "paymentMethod"},
		{"empty payment method", func(r *lifecycle.CreateOrderRequest) { r.PaymentMethod = "" }, "paymentMethod"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, store := newManager(t)
			ctx := context.Background()

			req := validRequest()
			tt.mutate(&req)

			_, err := m.CreateOrder(ctx, req)
			var verr *lifecycle.ValidationError
			require.ErrorAs(t, err, &verr)
			assert.Equal(t, tt.field, verr.Field)

			// nothing persisted on failure
			count, err := store.Count(ctx)
			require.NoError(t, err)
			assert.Zero(t, count)
		})
	}
}

func TestUpdateOrder_StatusAndPayment(t *testing.T) {
	m, store := newManager(t)
	ctx := context.Background()
	order := seedOrder(t, store, nil)
	id := order.OrderRef

	// payment flag alone leaves the status untouched
	updated, err := m.UpdateOrder(ctx, id, lifecycle.StatusUpdate{HasPaymentDone: true, PaymentDone: true})
	require.NoError(t, err)
	assert.True(t, updated.PaymentDone)
	assert.Equal(t, models.OrderStatusProcessing, updated.Status)

	// status alone leaves the payment flag untouched
	updated, err = m.UpdateOrder(ctx, id, lifecycle.StatusUpdate{HasStatus: true, Status: models.OrderStatusPreparing})
	require.NoError(t, err)
	assert.Equal(t, models.OrderStatusPreparing, updated.Status)
	assert.True(t, updated.PaymentDone)

	// both at once
	updated, err = m.UpdateOrder(ctx, id, lifecycle.StatusUpdate{
		HasStatus: true, Status: models.OrderStatusOutForDelivery,
		HasPaymentDone: true, PaymentDone: false,
	})
	require.NoError(t, err)
	assert.Equal(t, models.OrderStatusOutForDelivery, updated.Status)
	assert.False(t, updated.PaymentDone)
}

func TestUpdateOrder_DeliveredStampsOnce(t *testing.T) {
	m, store := newManager(t)
	ctx := context.Background()
	order := seedOrder(t, store, nil)

	updated, err := m.UpdateOrder(ctx, order.OrderRef, lifecycle.StatusUpdate{HasStatus: true, Status: models.OrderStatusDelivered})
	require.NoError(t, err)
	require.NotNil(t, updated.DeliveredAt)
	first := *updated.DeliveredAt

	again, err := m.UpdateOrder(ctx, order.OrderRef, lifecycle.StatusUpdate{HasStatus: true, Status: models.OrderStatusDelivered})
	require.NoError(t, err)
	require.NotNil(t, again.DeliveredAt)
	assert.True(t, first.Equal(*again.DeliveredAt), "delivered timestamp must not move on repeat updates")
}

func TestUpdateOrder_Failures(t *testing.T) {
	m, store := newManager(t)
	ctx := context.Background()
	order := seedOrder(t, store, nil)

	_, err := m.UpdateOrder(ctx, order.OrderRef, lifecycle.StatusUpdate{})
	var verr *lifecycle.ValidationError
	require.ErrorAs(t, err, &verr)

	_, err = m.UpdateOrder(ctx, order.OrderRef, lifecycle.StatusUpdate{HasStatus: true, Status: "Teleported"})
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "status", verr.Field)

	_, err = m.UpdateOrder(ctx, "424242", lifecycle.StatusUpdate{HasStatus: true, Status: models.OrderStatusPreparing})
	assert.ErrorIs(t, err, lifecycle.ErrOrderNotFound)
}

func TestUpdateOrder_AllowsStatusChangeAfterDelivery(t *testing.T) {
	// The status update path only checks enum membership; moving a delivered
	// order back into the active flow is accepted (last write wins).
	m, store := newManager(t)
	ctx := context.Background()
	order := seedOrder(t, store, func(o *models.Order) { o.Status = models.OrderStatusDelivered })

	updated, err := m.UpdateOrder(ctx, order.OrderRef, lifecycle.StatusUpdate{HasStatus: true, Status: models.OrderStatusPreparing})
	require.NoError(t, err)
	assert.Equal(t, models.OrderStatusPreparing, updated.Status)
}

func TestCancelOrder(t *testing.T) {
	m, store := newManager(t)
	ctx := context.Background()

	t.Run("processing order cancels", func(t *testing.T) {
		order := seedOrder(t, store, nil)
		cancelled, err := m.CancelOrder(ctx, order.OrderRef)
		require.NoError(t, err)
		assert.Equal(t, models.OrderStatusCancelled, cancelled.Status)
	})

	t.Run("delivered order is rejected", func(t *testing.T) {
		order := seedOrder(t, store, func(o *models.Order) { o.Status = models.OrderStatusDelivered })
		_, err := m.CancelOrder(ctx, order.OrderRef)
		assert.ErrorIs(t, err, lifecycle.ErrCannotCancel)

		kept, err := m.GetOrder(ctx, order.OrderRef)
		require.NoError(t, err)
		assert.Equal(t, models.OrderStatusDelivered, kept.Status)
	})

	t.Run("cancelled order is rejected", func(t *testing.T) {
		order := seedOrder(t, store, func(o *models.Order) { o.Status = models.OrderStatusCancelled })
		_, err := m.CancelOrder(ctx, order.OrderRef)
		assert.ErrorIs(t, err, lifecycle.ErrCannotCancel)
	})

	t.Run("missing order", func(t *testing.T) {
		_, err := m.CancelOrder(ctx, "424242")
		assert.ErrorIs(t, err, lifecycle.ErrOrderNotFound)
	})
}

func TestReorder(t *testing.T) {
	m, store := newManager(t)
	ctx := context.Background()
	source := seedOrder(t, store, func(o *models.Order) {
		o.Status = models.OrderStatusDelivered
		o.PaymentDone = true
		o.Items = []models.OrderItem{
			{Title: "Chicken Biryani", Price: 180, Quantity: 2},
			{Title: "Raita", Price: 30, Quantity: 1},
		}
		o.TotalPrice = 390
	})

	clone, err := m.Reorder(ctx, source.OrderRef)
	require.NoError(t, err)

	assert.NotEqual(t, source.ID, clone.ID)
	assert.NotEqual(t, source.OrderRef, clone.OrderRef)
	assert.Equal(t, source.CustomerName, clone.CustomerName)
	assert.Equal(t, source.PhoneNumber, clone.PhoneNumber)
	assert.Equal(t, source.Address, clone.Address)
	assert.Equal(t, source.TotalPrice, clone.TotalPrice)
	assert.Equal(t, source.PaymentMethod, clone.PaymentMethod)
	assert.Equal(t, models.OrderStatusProcessing, clone.Status)
	assert.False(t, clone.PaymentDone)
	assert.True(t, clone.CreatedAt.After(source.CreatedAt) || clone.CreatedAt.Equal(source.CreatedAt))

	require.Len(t, clone.Items, 2)
	assert.Equal(t, "Chicken Biryani", clone.Items[0].Title)
	assert.Equal(t, 2, clone.Items[0].Quantity)

	// source untouched
	kept, err := m.GetOrder(ctx, source.OrderRef)
	require.NoError(t, err)
	assert.Equal(t, models.OrderStatusDelivered, kept.Status)

	_, err = m.Reorder(ctx, "424242")
	assert.ErrorIs(t, err, lifecycle.ErrOrderNotFound)
}

func TestListOrders_DateFilter(t *testing.T) {
	m, store := newManager(t)
	ctx := context.Background()

	day := time.Date(2024, 6, 1, 0, 0, 0, 0, time.Local)
	at := func(t time.Time) func(*models.Order) {
		return func(o *models.Order) { o.CreatedAt = t }
	}

	seedOrder(t, store, at(day))                                        // 00:00:00.000
	seedOrder(t, store, at(day.Add(12*time.Hour)))                      // midday
	seedOrder(t, store, at(day.Add(24*time.Hour-time.Millisecond)))     // 23:59:59.999
	seedOrder(t, store, at(day.Add(-time.Millisecond)))                 // previous day
	seedOrder(t, store, at(day.Add(24*time.Hour)))                      // next day

	orders, err := m.ListOrders(ctx, "2024-06-01")
	require.NoError(t, err)
	require.Len(t, orders, 3)
	for i := 1; i < len(orders); i++ {
		assert.False(t, orders[i].CreatedAt.After(orders[i-1].CreatedAt), "orders must be newest first")
	}

	all, err := m.ListOrders(ctx, "")
	require.NoError(t, err)
	assert.Len(t, all, 5)

	_, err = m.ListOrders(ctx, "01-06-2024")
	var verr *lifecycle.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "date", verr.Field)
}

func TestOrdersForPhone(t *testing.T) {
	m, store := newManager(t)
	ctx := context.Background()

	seedOrder(t, store, func(o *models.Order) { o.PhoneNumber = "9876543210" })
	seedOrder(t, store, func(o *models.Order) { o.PhoneNumber = "9876543210" })
	seedOrder(t, store, func(o *models.Order) { o.PhoneNumber = "1112223334" })

	orders, err := m.OrdersForPhone(ctx, "9876543210")
	require.NoError(t, err)
	assert.Len(t, orders, 2)

	none, err := m.OrdersForPhone(ctx, "9999999999")
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestStatistics(t *testing.T) {
	m, store := newManager(t)
	ctx := context.Background()

	// delivered, paid by card
	seedOrder(t, store, func(o *models.Order) {
		o.Status = models.OrderStatusDelivered
		o.TotalPrice = 100
		o.PaymentMethod = models.PaymentCashOnDelivery // cash not yet collected
	})
	seedOrder(t, store, func(o *models.Order) {
		o.Status = models.OrderStatusDelivered
		o.TotalPrice = 200
		o.PaymentMethod = models.PaymentCard
	})
	seedOrder(t, store, func(o *models.Order) {
		o.Status = models.OrderStatusCancelled
		o.TotalPrice = 50
	})
	seedOrder(t, store, func(o *models.Order) {
		o.Status = models.OrderStatusProcessing
		o.TotalPrice = 30
	})

	stats, err := m.Statistics(ctx)
	require.NoError(t, err)
	assert.EqualValues(t, 4, stats.TotalOrders)
	assert.EqualValues(t, 2, stats.DeliveredOrders)
	assert.EqualValues(t, 1, stats.ProcessingOrders)
	assert.EqualValues(t, 1, stats.CancelledOrders)
	assert.Equal(t, 300.0, stats.TotalRevenue)
	assert.Equal(t, 200.0, stats.CollectedRevenue, "uncollected cash-on-delivery orders are excluded")

	t.Run("confirmed and preparing count as processing", func(t *testing.T) {
		seedOrder(t, store, func(o *models.Order) { o.Status = models.OrderStatusConfirmed })
		seedOrder(t, store, func(o *models.Order) { o.Status = models.OrderStatusPreparing })
		seedOrder(t, store, func(o *models.Order) { o.Status = models.OrderStatusOutForDelivery })

		stats, err := m.Statistics(ctx)
		require.NoError(t, err)
		assert.EqualValues(t, 7, stats.TotalOrders)
		assert.EqualValues(t, 4, stats.ProcessingOrders)
	})
}

func TestOrderLifecycleEndToEnd(t *testing.T) {
	m, _ := newManager(t)
	ctx := context.Background()

	req := lifecycle.CreateOrderRequest{
		CustomerName: "Ravi Shankar",
		PhoneNumber:  "9123456780",
		Address:      "45 Boring Road, Patna",
		Items: []models.OrderItem{
			{Title: "Thali", Price: 50, Quantity: 2},
			{Title: "Lassi", Price: 30, Quantity: 1},
		},
		TotalPrice:    130,
		PaymentMethod: models.PaymentCashOnDelivery,
	}

	order, err := m.CreateOrder(ctx, req)
	require.NoError(t, err)

	// driver collects cash at the door
	updated, err := m.UpdateOrder(ctx, order.OrderRef, lifecycle.StatusUpdate{HasPaymentDone: true, PaymentDone: true})
	require.NoError(t, err)
	assert.True(t, updated.PaymentDone)
	assert.Equal(t, models.OrderStatusProcessing, updated.Status)

	updated, err = m.UpdateOrder(ctx, order.OrderRef, lifecycle.StatusUpdate{HasStatus: true, Status: models.OrderStatusDelivered})
	require.NoError(t, err)
	assert.Equal(t, models.OrderStatusDelivered, updated.Status)
	require.NotNil(t, updated.DeliveredAt)

	stats, err := m.Statistics(ctx)
	require.NoError(t, err)
	assert.EqualValues(t, 1, stats.DeliveredOrders)
	assert.Equal(t, 130.0, stats.TotalRevenue)
	assert.Equal(t, 130.0, stats.CollectedRevenue)
}
