// Package repo implements the data persistence layer for domain entities,
// backed by GORM. This file provides repository functions for suggestion
// sets.
//
// All functions are context-aware and accept a *gorm.DB handle, making them
// safe for use within transactions or connection-scoped operations. They
// follow the "thin repository" approach: no business logic, only CRUD
// persistence and query composition.
//
// Error semantics:
//   - When no suggestion matches, functions return gorm.ErrRecordNotFound
//     (also exported here as ErrNotFound for convenience).
//   - On DB errors (constraint violations, connectivity issues, etc.),
//     the raw gorm error is propagated.
package repo

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/urbansprout/go-garden-backend/internal/domain"
)

// ErrNotFound is returned when a requested record does not exist. It aliases
// gorm.ErrRecordNotFound for consistency across services and handlers.
var ErrNotFound = gorm.ErrRecordNotFound

// GetSuggestionByKey fetches the active suggestion set whose combination key
// equals key, with its plant entries preloaded in stored order.
func GetSuggestionByKey(ctx context.Context, db *gorm.DB, key string) (*domain.Suggestion, error) {
	var s domain.Suggestion
	err := db.WithContext(ctx).
		Preload("Plants", func(tx *gorm.DB) *gorm.DB { return tx.Order("position asc") }).
		Where("combination_key = ? AND active = ?", key, true).
		First(&s).Error
	if err != nil {
		return nil, err
	}
	return &s, nil
}

// GetSuggestionByPartial fetches the first active suggestion set matching the
// (space, sunlight, experience) triple, ignoring time and purpose. Results
// are ordered by creation time so the match is deterministic.
func GetSuggestionByPartial(ctx context.Context, db *gorm.DB, space, sunlight, experience string) (*domain.Suggestion, error) {
	var s domain.Suggestion
	err := db.WithContext(ctx).
		Preload("Plants", func(tx *gorm.DB) *gorm.DB { return tx.Order("position asc") }).
		Where("space = ? AND sunlight = ? AND experience = ? AND active = ?",
			space, sunlight, experience, true).
		Order("created_at asc").
		First(&s).Error
	if err != nil {
		return nil, err
	}
	return &s, nil
}

// CreateSuggestion inserts a suggestion set together with its plant entries.
// IDs and entry positions are assigned here; CombinationKey is expected to be
// precomputed by the caller so key construction stays in one place.
func CreateSuggestion(ctx context.Context, db *gorm.DB, s *domain.Suggestion) error {
	if s.ID == "" {
		s.ID = uuid.NewString()
	}
	s.CreatedAt = time.Now().UTC()
	for i := range s.Plants {
		if s.Plants[i].ID == "" {
			s.Plants[i].ID = uuid.NewString()
		}
		s.Plants[i].SuggestionID = s.ID
		s.Plants[i].Position = i
	}
	return db.WithContext(ctx).Create(s).Error
}

// CountSuggestions returns the number of stored suggestion sets, active or
// not. Used by seeding to decide whether the table is already populated.
func CountSuggestions(ctx context.Context, db *gorm.DB) (int64, error) {
	var total int64
	err := db.WithContext(ctx).Model(&domain.Suggestion{}).Count(&total).Error
	return total, err
}
