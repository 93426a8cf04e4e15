// Package repo implements the data persistence layer for domain entities,
// backed by GORM. This file provides repository functions for orders.
package repo

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/urbansprout/go-garden-backend/internal/domain"
)

// CreateOrder inserts an order with its line items. IDs are generated here;
// the caller is expected to run this inside a transaction together with any
// related writes (e.g., clearing the cart).
func CreateOrder(ctx context.Context, db *gorm.DB, o *domain.Order) error {
	if o.ID == "" {
		o.ID = uuid.NewString()
	}
	o.CreatedAt = time.Now().UTC()
	for i := range o.Items {
		if o.Items[i].ID == "" {
			o.Items[i].ID = uuid.NewString()
		}
		o.Items[i].OrderID = o.ID
	}
	return db.WithContext(ctx).Create(o).Error
}

// GetOrder fetches an order by ID and owner with items preloaded, or
// ErrNotFound.
func GetOrder(ctx context.Context, db *gorm.DB, id, userID string) (*domain.Order, error) {
	var o domain.Order
	err := db.WithContext(ctx).
		Preload("Items").
		Where("id = ? AND user_id = ?", id, userID).
		First(&o).Error
	if err != nil {
		return nil, err
	}
	return &o, nil
}

// CountOrders returns the number of orders owned by userID.
func CountOrders(ctx context.Context, db *gorm.DB, userID string) (int64, error) {
	var total int64
	err := db.WithContext(ctx).
		Model(&domain.Order{}).
		Where("user_id = ?", userID).
		Count(&total).Error
	return total, err
}

// ListOrdersPage returns a page of the user's orders, most recent first,
// with items preloaded.
func ListOrdersPage(ctx context.Context, db *gorm.DB, userID string, offset, limit int) ([]domain.Order, error) {
	var out []domain.Order
	err := db.WithContext(ctx).
		Preload("Items").
		Where("user_id = ?", userID).
		Order("created_at desc").
		Offset(offset).
		Limit(limit).
		Find(&out).Error
	return out, err
}
