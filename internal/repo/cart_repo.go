// Package repo implements the data persistence layer for domain entities,
// backed by GORM. This file provides repository functions for cart and
// wishlist rows, which share the same (user, product) link shape.
package repo

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/urbansprout/go-garden-backend/internal/domain"
)

// ListCart returns the user's cart items with products preloaded, oldest
// first so the cart renders in the order items were added.
func ListCart(ctx context.Context, db *gorm.DB, userID string) ([]domain.CartItem, error) {
	var out []domain.CartItem
	err := db.WithContext(ctx).
		Preload("Product").
		Where("user_id = ?", userID).
		Order("created_at asc").
		Find(&out).Error
	return out, err
}

// UpsertCartItem adds quantity of productID to the user's cart, creating the
// row when absent and bumping the quantity when present.
func UpsertCartItem(ctx context.Context, db *gorm.DB, userID, productID string, quantity int) (*domain.CartItem, error) {
	if quantity < 1 {
		quantity = 1
	}
	var item domain.CartItem
	err := db.WithContext(ctx).
		Where("user_id = ? AND product_id = ?", userID, productID).
		First(&item).Error
	switch {
	case err == nil:
		item.Quantity += quantity
		if uerr := db.WithContext(ctx).Model(&item).Update("quantity", item.Quantity).Error; uerr != nil {
			return nil, uerr
		}
		return &item, nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		item = domain.CartItem{
			ID:        uuid.NewString(),
			UserID:    userID,
			ProductID: productID,
			Quantity:  quantity,
			CreatedAt: time.Now().UTC(),
		}
		if cerr := db.WithContext(ctx).Create(&item).Error; cerr != nil {
			return nil, cerr
		}
		return &item, nil
	default:
		return nil, err
	}
}

// RemoveCartItem deletes the (user, product) cart row. Returns ErrNotFound
// when nothing was deleted.
func RemoveCartItem(ctx context.Context, db *gorm.DB, userID, productID string) error {
	res := db.WithContext(ctx).
		Where("user_id = ? AND product_id = ?", userID, productID).
		Delete(&domain.CartItem{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// ClearCart deletes all cart rows for the user. Used after order placement.
func ClearCart(ctx context.Context, db *gorm.DB, userID string) error {
	return db.WithContext(ctx).
		Where("user_id = ?", userID).
		Delete(&domain.CartItem{}).Error
}

// ListWishlist returns the user's wishlist with products preloaded, newest
// first.
func ListWishlist(ctx context.Context, db *gorm.DB, userID string) ([]domain.WishlistItem, error) {
	var out []domain.WishlistItem
	err := db.WithContext(ctx).
		Preload("Product").
		Where("user_id = ?", userID).
		Order("created_at desc").
		Find(&out).Error
	return out, err
}

// AddWishlistItem inserts a wishlist row; adding the same product twice is a
// no-op returning the existing row.
func AddWishlistItem(ctx context.Context, db *gorm.DB, userID, productID string) (*domain.WishlistItem, error) {
	var item domain.WishlistItem
	err := db.WithContext(ctx).
		Where("user_id = ? AND product_id = ?", userID, productID).
		First(&item).Error
	if err == nil {
		return &item, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}
	item = domain.WishlistItem{
		ID:        uuid.NewString(),
		UserID:    userID,
		ProductID: productID,
		CreatedAt: time.Now().UTC(),
	}
	if cerr := db.WithContext(ctx).Create(&item).Error; cerr != nil {
		return nil, cerr
	}
	return &item, nil
}

// RemoveWishlistItem deletes the (user, product) wishlist row. Returns
// ErrNotFound when nothing was deleted.
func RemoveWishlistItem(ctx context.Context, db *gorm.DB, userID, productID string) error {
	res := db.WithContext(ctx).
		Where("user_id = ? AND product_id = ?", userID, productID).
		Delete(&domain.WishlistItem{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
