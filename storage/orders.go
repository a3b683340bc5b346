// Package storage provides OrderStore implementations: a gorm/Postgres store
// for production and an in-memory store used in tests.
package storage

import (
	"context"
	"errors"
	"strconv"

	"github.com/ayushrskiaa/Restaurant-Reservation/lifecycle"
	"github.com/ayushrskiaa/Restaurant-Reservation/models"
	"gorm.io/gorm"
)

// Orders is the gorm-backed order store.
type Orders struct {
	db *gorm.DB
}

func NewOrders(db *gorm.DB) *Orders {
	return &Orders{db: db}
}

func (s *Orders) Create(ctx context.Context, order *models.Order) error {
	return s.db.WithContext(ctx).Create(order).Error
}

// GetByID looks up an order by numeric id or, failing that, by order_ref.
func (s *Orders) GetByID(ctx context.Context, id string) (*models.Order, error) {
	query := s.db.WithContext(ctx).Preload("Items")
	if n, err := strconv.ParseUint(id, 10, 64); err == nil {
		query = query.Where("id = ?", uint(n))
	} else {
		query = query.Where("order_ref = ?", id)
	}

	var order models.Order
	if err := query.First(&order).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, lifecycle.ErrOrderNotFound
		}
		return nil, err
	}
	return &order, nil
}

func (s *Orders) Update(ctx context.Context, order *models.Order) error {
	return s.db.WithContext(ctx).
		Model(order).
		Select("status", "payment_done", "delivered_at").
		Updates(order).Error
}

func (s *Orders) List(ctx context.Context, filter lifecycle.Filter) ([]models.Order, error) {
	query := s.db.WithContext(ctx).Preload("Items").Order("created_at DESC")
	if filter.PhoneNumber != "" {
		query = query.Where("phone_number = ?", filter.PhoneNumber)
	}
	if filter.From != nil && filter.To != nil {
		query = query.Where("created_at BETWEEN ? AND ?", *filter.From, *filter.To)
	}

	var orders []models.Order
	if err := query.Find(&orders).Error; err != nil {
		return nil, err
	}
	return orders, nil
}

func (s *Orders) Count(ctx context.Context, statuses ...models.OrderStatus) (int64, error) {
	query := s.db.WithContext(ctx).Model(&models.Order{})
	if len(statuses) > 0 {
		query = query.Where("status IN ?", statuses)
	}
	var count int64
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (s *Orders) DeliveredRevenue(ctx context.Context) (float64, error) {
	var revenue float64
	err := s.db.WithContext(ctx).Model(&models.Order{}).
		Select("COALESCE(SUM(total_price), 0)").
		Where("status = ?", models.OrderStatusDelivered).
		Scan(&revenue).Error
	return revenue, err
}

// CollectedRevenue counts delivered orders whose money actually arrived:
// cash-on-delivery orders only after the payment flag is set.
func (s *Orders) CollectedRevenue(ctx context.Context) (float64, error) {
	var revenue float64
	err := s.db.WithContext(ctx).Model(&models.Order{}).
		Select("COALESCE(SUM(total_price), 0)").
		Where("status = ?", models.OrderStatusDelivered).
		Where("payment_method <> ? OR payment_done", models.PaymentCashOnDelivery).
		Scan(&revenue).Error
	return revenue, err
}
