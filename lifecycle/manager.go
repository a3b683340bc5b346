// Package lifecycle implements the order lifecycle manager: validation of
// incoming orders, status and payment transitions, reorders, history queries
// and dashboard statistics. All state lives in the OrderStore; the manager
// itself is stateless and safe for concurrent use.
package lifecycle

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"time"

	"github.com/ayushrskiaa/Restaurant-Reservation/models"
	"github.com/google/uuid"
)

// EstimatedDeliveryWindow is added to the creation time to produce the
// estimated delivery timestamp shown to the customer.
const EstimatedDeliveryWindow = 45 * time.Minute

var phonePattern = regexp.MustCompile(`^\d{10}$`)

// Filter narrows a List call. Zero value means "all orders".
type Filter struct {
	PhoneNumber string
	From        *time.Time
	To          *time.Time
}

// OrderStore persists orders. Implementations must return ErrOrderNotFound
// from GetByID when no order matches and keep List results sorted by
// creation time, newest first.
type OrderStore interface {
	Create(ctx context.Context, order *models.Order) error
	GetByID(ctx context.Context, id string) (*models.Order, error)
	Update(ctx context.Context, order *models.Order) error
	List(ctx context.Context, filter Filter) ([]models.Order, error)
	Count(ctx context.Context, statuses ...models.OrderStatus) (int64, error)
	DeliveredRevenue(ctx context.Context) (float64, error)
	CollectedRevenue(ctx context.Context) (float64, error)
}

// Manager governs all order mutations and derived queries.
type Manager struct {
	store OrderStore
	now   func() time.Time
}

func NewManager(store OrderStore) *Manager {
	return &Manager{store: store, now: time.Now}
}

// CreateOrderRequest carries the fields accepted at order placement.
// Everything else (status, timestamps, reference) is assigned here.
type CreateOrderRequest struct {
	CustomerName  string               `json:"customerName"`
	PhoneNumber   string               `json:"phoneNumber"`
	Address       string               `json:"address"`
	Items         []models.OrderItem   `json:"items"`
	TotalPrice    float64              `json:"totalPrice"`
	PaymentMethod models.PaymentMethod `json:"paymentMethod"`
}

func (r CreateOrderRequest) validate() error {
	if n := len(r.CustomerName); n < 3 || n > 50 {
		return invalidField("customerName", "must be between 3 and 50 characters")
	}
	if !phonePattern.MatchString(r.PhoneNumber) {
		return invalidField("phoneNumber", "must be exactly 10 digits")
	}
	if n := len(r.Address); n < 10 || n > 200 {
		return invalidField("address", "must be between 10 and 200 characters")
	}
	if len(r.Items) == 0 {
		return invalidField("items", "at least one item is required")
	}
	for i, item := range r.Items {
		if item.Title == "" {
			return invalidField(fmt.Sprintf("items[%d].title", i), "is required")
		}
		if item.Price < 0 {
			return invalidField(fmt.Sprintf("items[%d].price", i), "must not be negative")
		}
		if item.Quantity < 1 {
			return invalidField(fmt.Sprintf("items[%d].quantity", i), "must be at least 1")
		}
	}
	if r.TotalPrice < 0 {
		return invalidField("totalPrice", "must not be negative")
	}
	if !r.PaymentMethod.Valid() {
		return invalidField("paymentMethod", "invalid payment method")
	}
	return nil
}

// CreateOrder validates the request and persists a fresh order in the
// Processing state. Nothing is written when validation fails.
func (m *Manager) CreateOrder(ctx context.Context, req CreateOrderRequest) (*models.Order, error) {
	if err := req.validate(); err != nil {
		return nil, err
	}

	now := m.now()
	order := &models.Order{
		OrderRef:          newOrderRef(now),
		CustomerName:      req.CustomerName,
		PhoneNumber:       req.PhoneNumber,
		Address:           req.Address,
		Items:             req.Items,
		TotalPrice:        req.TotalPrice,
		PaymentMethod:     req.PaymentMethod,
		Status:            models.OrderStatusProcessing,
		PaymentDone:       false,
		EstimatedDelivery: now.Add(EstimatedDeliveryWindow),
		CreatedAt:         now,
	}
	if err := m.store.Create(ctx, order); err != nil {
		return nil, storageFailed("create order", err)
	}
	return order, nil
}

// StatusUpdate is a discriminated update request: each field is applied only
// when its Has flag is set, so "set status", "set payment" and "set both" are
// explicit variants rather than optional-field guesswork.
type StatusUpdate struct {
	HasStatus      bool
	Status         models.OrderStatus
	HasPaymentDone bool
	PaymentDone    bool
}

// UpdateOrder applies a status and/or payment change to an existing order.
// The first transition into Delivered stamps DeliveredAt; later Delivered
// updates leave the timestamp alone. Beyond enum membership no transition
// legality is checked on this path, matching the recorded behavior of the
// original system.
func (m *Manager) UpdateOrder(ctx context.Context, id string, upd StatusUpdate) (*models.Order, error) {
	if !upd.HasStatus && !upd.HasPaymentDone {
		return nil, invalidField("", "status or paymentDone is required")
	}
	if upd.HasStatus && !upd.Status.Valid() {
		return nil, invalidField("status", "invalid status value")
	}

	order, err := m.getOrder(ctx, id)
	if err != nil {
		return nil, err
	}

	if upd.HasStatus {
		if upd.Status == models.OrderStatusDelivered && order.Status != models.OrderStatusDelivered {
			t := m.now()
			order.DeliveredAt = &t
		}
		order.Status = upd.Status
	}
	if upd.HasPaymentDone {
		order.PaymentDone = upd.PaymentDone
	}

	if err := m.store.Update(ctx, order); err != nil {
		return nil, storageFailed("update order", err)
	}
	return order, nil
}

// CancelOrder moves an order into Cancelled. Delivered and already cancelled
// orders are rejected with ErrCannotCancel.
func (m *Manager) CancelOrder(ctx context.Context, id string) (*models.Order, error) {
	order, err := m.getOrder(ctx, id)
	if err != nil {
		return nil, err
	}
	if order.Status.Terminal() {
		return nil, ErrCannotCancel
	}

	order.Status = models.OrderStatusCancelled
	if err := m.store.Update(ctx, order); err != nil {
		return nil, storageFailed("cancel order", err)
	}
	return order, nil
}

// Reorder places a brand-new order cloned from a previous one. The source
// order is left untouched.
func (m *Manager) Reorder(ctx context.Context, id string) (*models.Order, error) {
	prev, err := m.getOrder(ctx, id)
	if err != nil {
		return nil, err
	}

	items := make([]models.OrderItem, len(prev.Items))
	for i, item := range prev.Items {
		items[i] = models.OrderItem{
			Title:    item.Title,
			Price:    item.Price,
			Quantity: item.Quantity,
		}
	}

	now := m.now()
	order := &models.Order{
		OrderRef:          newOrderRef(now),
		CustomerName:      prev.CustomerName,
		PhoneNumber:       prev.PhoneNumber,
		Address:           prev.Address,
		Items:             items,
		TotalPrice:        prev.TotalPrice,
		PaymentMethod:     prev.PaymentMethod,
		Status:            models.OrderStatusProcessing,
		EstimatedDelivery: now.Add(EstimatedDeliveryWindow),
		CreatedAt:         now,
	}
	if err := m.store.Create(ctx, order); err != nil {
		return nil, storageFailed("reorder", err)
	}
	return order, nil
}

// GetOrder fetches a single order by numeric id or order reference.
func (m *Manager) GetOrder(ctx context.Context, id string) (*models.Order, error) {
	return m.getOrder(ctx, id)
}

// ListOrders returns all orders newest first, optionally restricted to a
// single calendar day (YYYY-MM-DD, local time, inclusive bounds).
func (m *Manager) ListOrders(ctx context.Context, date string) ([]models.Order, error) {
	var filter Filter
	if date != "" {
		day, err := time.ParseInLocation("2006-01-02", date, time.Local)
		if err != nil {
			return nil, invalidField("date", "must be in YYYY-MM-DD format")
		}
		start := day
		end := day.Add(24*time.Hour - time.Millisecond)
		filter.From = &start
		filter.To = &end
	}
	orders, err := m.store.List(ctx, filter)
	if err != nil {
		return nil, storageFailed("list orders", err)
	}
	return orders, nil
}

// OrdersForPhone returns the order history for a phone number, newest first.
// No matches is an empty slice, not an error.
func (m *Manager) OrdersForPhone(ctx context.Context, phoneNumber string) ([]models.Order, error) {
	orders, err := m.store.List(ctx, Filter{PhoneNumber: phoneNumber})
	if err != nil {
		return nil, storageFailed("list orders by phone", err)
	}
	return orders, nil
}

// Statistics is the dashboard aggregate over all orders.
//
// TotalRevenue sums every delivered order; CollectedRevenue additionally
// requires cash-on-delivery orders to have the payment flag set. The two
// figures intentionally coexist: the admin API historically reported the
// former while the dashboard recomputed the latter.
type Statistics struct {
	TotalOrders      int64   `json:"totalOrders"`
	DeliveredOrders  int64   `json:"deliveredOrders"`
	ProcessingOrders int64   `json:"processingOrders"`
	CancelledOrders  int64   `json:"cancelledOrders"`
	TotalRevenue     float64 `json:"totalRevenue"`
	CollectedRevenue float64 `json:"collectedRevenue"`
}

func (m *Manager) Statistics(ctx context.Context) (Statistics, error) {
	var stats Statistics
	var err error

	if stats.TotalOrders, err = m.store.Count(ctx); err != nil {
		return stats, storageFailed("count orders", err)
	}
	if stats.DeliveredOrders, err = m.store.Count(ctx, models.OrderStatusDelivered); err != nil {
		return stats, storageFailed("count delivered orders", err)
	}
	if stats.ProcessingOrders, err = m.store.Count(ctx, models.ActiveStatuses...); err != nil {
		return stats, storageFailed("count processing orders", err)
	}
	if stats.CancelledOrders, err = m.store.Count(ctx, models.OrderStatusCancelled); err != nil {
		return stats, storageFailed("count cancelled orders", err)
	}
	if stats.TotalRevenue, err = m.store.DeliveredRevenue(ctx); err != nil {
		return stats, storageFailed("sum delivered revenue", err)
	}
	if stats.CollectedRevenue, err = m.store.CollectedRevenue(ctx); err != nil {
		return stats, storageFailed("sum collected revenue", err)
	}
	return stats, nil
}

func (m *Manager) getOrder(ctx context.Context, id string) (*models.Order, error) {
	order, err := m.store.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, ErrOrderNotFound) {
			return nil, err
		}
		return nil, storageFailed("get order", err)
	}
	return order, nil
}

// newOrderRef builds a human-sortable unique order reference.
func newOrderRef(t time.Time) string {
	return t.Format("20060102150405") + "-" + uuid.NewString()
}
