package storage

import (
	"context"
	"sort"
	"strconv"
	"sync"

	"github.com/ayushrskiaa/Restaurant-Reservation/lifecycle"
	"github.com/ayushrskiaa/Restaurant-Reservation/models"
)

// MemoryOrders is a mutex-guarded in-memory OrderStore. It backs the
// lifecycle and handler tests; behavior mirrors the gorm store.
type MemoryOrders struct {
	mu     sync.RWMutex
	nextID uint
	orders map[uint]models.Order
}

func NewMemoryOrders() *MemoryOrders {
	return &MemoryOrders{
		nextID: 1,
		orders: make(map[uint]models.Order),
	}
}

func (s *MemoryOrders) Create(_ context.Context, order *models.Order) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	order.ID = s.nextID
	s.nextID++
	for i := range order.Items {
		order.Items[i].OrderID = order.ID
	}
	s.orders[order.ID] = cloneOrder(*order)
	return nil
}

func (s *MemoryOrders) GetByID(_ context.Context, id string) (*models.Order, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if n, err := strconv.ParseUint(id, 10, 64); err == nil {
		if order, ok := s.orders[uint(n)]; ok {
			order = cloneOrder(order)
			return &order, nil
		}
	}
	for _, order := range s.orders {
		if order.OrderRef == id {
			order = cloneOrder(order)
			return &order, nil
		}
	}
	return nil, lifecycle.ErrOrderNotFound
}

func (s *MemoryOrders) Update(_ context.Context, order *models.Order) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.orders[order.ID]; !ok {
		return lifecycle.ErrOrderNotFound
	}
	s.orders[order.ID] = cloneOrder(*order)
	return nil
}

func (s *MemoryOrders) List(_ context.Context, filter lifecycle.Filter) ([]models.Order, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	orders := make([]models.Order, 0, len(s.orders))
	for _, order := range s.orders {
		if filter.PhoneNumber != "" && order.PhoneNumber != filter.PhoneNumber {
			continue
		}
		if filter.From != nil && order.CreatedAt.Before(*filter.From) {
			continue
		}
		if filter.To != nil && order.CreatedAt.After(*filter.To) {
			continue
		}
		orders = append(orders, cloneOrder(order))
	}
	sort.Slice(orders, func(i, j int) bool {
		if orders[i].CreatedAt.Equal(orders[j].CreatedAt) {
			return orders[i].ID > orders[j].ID
		}
		return orders[i].CreatedAt.After(orders[j].CreatedAt)
	})
	return orders, nil
}

func (s *MemoryOrders) Count(_ context.Context, statuses ...models.OrderStatus) (int64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if len(statuses) == 0 {
		return int64(len(s.orders)), nil
	}
	var count int64
	for _, order := range s.orders {
		for _, status := range statuses {
			if order.Status == status {
				count++
				break
			}
		}
	}
	return count, nil
}

func (s *MemoryOrders) DeliveredRevenue(_ context.Context) (float64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var revenue float64
	for _, order := range s.orders {
		if order.Status == models.OrderStatusDelivered {
			revenue += order.TotalPrice
		}
	}
	return revenue, nil
}

func (s *MemoryOrders) CollectedRevenue(_ context.Context) (float64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var revenue float64
	for _, order := range s.orders {
		if order.Status != models.OrderStatusDelivered {
			continue
		}
		if order.PaymentMethod == models.PaymentCashOnDelivery && !order.PaymentDone {
			continue
		}
		revenue += order.TotalPrice
	}
	return revenue, nil
}

func cloneOrder(order models.Order) models.Order {
	items := make([]models.OrderItem, len(order.Items))
	copy(items, order.Items)
	order.Items = items
	if order.DeliveredAt != nil {
		t := *order.DeliveredAt
		order.DeliveredAt = &t
	}
	return order
}
