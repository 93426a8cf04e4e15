// Package repo implements the data persistence layer for domain entities,
// backed by GORM. This file provides repository functions for storefront
// products.
package repo

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/urbansprout/go-garden-backend/internal/domain"
)

// ProductQuery narrows product listings. Zero values mean "no filter".
type ProductQuery struct {
	Category string // equality on category
	Search   string // case-insensitive substring on name
}

func (q ProductQuery) apply(tx *gorm.DB) *gorm.DB {
	if q.Category != "" {
		tx = tx.Where("category = ?", q.Category)
	}
	if s := strings.TrimSpace(q.Search); s != "" {
		tx = tx.Where("LOWER(name) LIKE ?", "%"+strings.ToLower(s)+"%")
	}
	return tx
}

// CountProducts returns the number of products matching q.
func CountProducts(ctx context.Context, db *gorm.DB, q ProductQuery) (int64, error) {
	var total int64
	err := q.apply(db.WithContext(ctx).Model(&domain.Product{})).Count(&total).Error
	return total, err
}

// ListProductsPage returns a page of products matching q, ordered by name.
// The caller computes offset and limit (e.g., (page-1)*pageSize).
func ListProductsPage(ctx context.Context, db *gorm.DB, q ProductQuery, offset, limit int) ([]domain.Product, error) {
	var out []domain.Product
	err := q.apply(db.WithContext(ctx)).
		Order("name asc").
		Offset(offset).
		Limit(limit).
		Find(&out).Error
	return out, err
}

// GetProduct fetches a single product by ID, or ErrNotFound.
func GetProduct(ctx context.Context, db *gorm.DB, id string) (*domain.Product, error) {
	var p domain.Product
	if err := db.WithContext(ctx).Where("id = ?", id).First(&p).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

// ListRecommendedProducts returns up to limit products flagged as
// recommended, ordered by name for determinism.
func ListRecommendedProducts(ctx context.Context, db *gorm.DB, limit int) ([]domain.Product, error) {
	if limit <= 0 {
		limit = 4
	}
	var out []domain.Product
	err := db.WithContext(ctx).
		Where("recommended = ?", true).
		Order("name asc").
		Limit(limit).
		Find(&out).Error
	return out, err
}

// CreateProduct inserts a product row with a generated UUID.
func CreateProduct(ctx context.Context, db *gorm.DB, p *domain.Product) error {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	p.CreatedAt = time.Now().UTC()
	return db.WithContext(ctx).Create(p).Error
}

// ProductsStats returns the product count and newest update time, used to
// build weak ETags for product listings.
func ProductsStats(ctx context.Context, db *gorm.DB) (int64, *time.Time, error) {
	var total int64
	if err := db.WithContext(ctx).Model(&domain.Product{}).Count(&total).Error; err != nil {
		return 0, nil, err
	}
	var maxTS *time.Time
	row := db.WithContext(ctx).
		Model(&domain.Product{}).
		Select("MAX(updated_at)").
		Row()
	var ts time.Time
	if err := row.Scan(&ts); err == nil && !ts.IsZero() {
		maxTS = &ts
	}
	return total, maxTS, nil
}
