// Package repo implements the data persistence layer for domain entities,
// backed by GORM. This file seeds the suggestion and product tables on first
// boot so a fresh install answers quiz and store requests immediately.
package repo

import (
	"context"

	"gorm.io/gorm"

	"github.com/urbansprout/go-garden-backend/internal/domain"
)

// Seed populates suggestions and products when their tables are empty.
// It is idempotent: a non-empty table is left untouched.
func Seed(ctx context.Context, db *gorm.DB) error {
	if err := seedSuggestions(ctx, db); err != nil {
		return err
	}
	return seedProducts(ctx, db)
}

func seedSuggestions(ctx context.Context, db *gorm.DB) error {
	total, err := CountSuggestions(ctx, db)
	if err != nil || total > 0 {
		return err
	}
	for _, s := range defaultSuggestions() {
		s := s
		s.CombinationKey = s.NormalizedKey()
		s.Active = true
		if err := CreateSuggestion(ctx, db, &s); err != nil {
			return err
		}
	}
	return nil
}

func seedProducts(ctx context.Context, db *gorm.DB) error {
	var total int64
	if err := db.WithContext(ctx).Model(&domain.Product{}).Count(&total).Error; err != nil {
		return err
	}
	if total > 0 {
		return nil
	}
	for _, p := range defaultProducts() {
		p := p
		if err := CreateProduct(ctx, db, &p); err != nil {
			return err
		}
	}
	return nil
}

// defaultSuggestions is the starter suggestion catalog. The first entry is
// the canonical default combination consulted when no exact or partial match
// exists.
func defaultSuggestions() []domain.Suggestion {
	return []domain.Suggestion{
		{
			Space:      domain.DefaultSpace,
			Sunlight:   domain.DefaultSunlight,
			Experience: domain.DefaultExperience,
			Time:       domain.DefaultTime,
			Purpose:    domain.DefaultPurpose,
			RecommendationMessage: "Perfect for small spaces! Here are beginner-friendly, " +
				"low-maintenance plants that match your growing conditions.",
			Plants: []domain.SuggestionPlant{
				{Name: "Cherry Tomato", Category: "vegetable", Description: "Compact tomato that thrives in containers.", GrowingTime: "55-70 days", Sunlight: "full_sun", Space: "small", Difficulty: "easy", Price: 4.99},
				{Name: "Strawberry", Category: "fruit", Description: "Everbearing varieties fruit through summer.", GrowingTime: "60-90 days", Sunlight: "full_sun", Space: "small", Difficulty: "easy", Price: 5.49},
				{Name: "Sweet Basil", Category: "herb", Description: "Fragrant herb that loves warmth.", GrowingTime: "25-35 days", Sunlight: "full_sun", Space: "small", Difficulty: "easy", Price: 2.99},
				{Name: "Fresh Mint", Category: "herb", Description: "Vigorous herb for teas and smoothies.", GrowingTime: "30-40 days", Sunlight: "partial_sun", Space: "small", Difficulty: "easy", Price: 2.99},
				{Name: "Bell Pepper", Category: "vegetable", Description: "Sweet pepper for salads and stir-fries.", GrowingTime: "60-90 days", Sunlight: "full_sun", Space: "small", Difficulty: "moderate", Price: 3.99},
				{Name: "Lettuce", Category: "vegetable", Description: "Crisp salad staple that tolerates light shade.", GrowingTime: "30-45 days", Sunlight: "partial_sun", Space: "small", Difficulty: "easy", Price: 2.49},
			},
		},
		{
			Space: "small", Sunlight: "shade", Experience: "beginner", Time: "low", Purpose: "food",
			RecommendationMessage: "Shade doesn't stop a kitchen garden. These greens and herbs handle low light well.",
			Plants: []domain.SuggestionPlant{
				{Name: "Lettuce", Category: "vegetable", Description: "Crisp salad staple that tolerates light shade.", GrowingTime: "30-45 days", Sunlight: "shade", Space: "small", Difficulty: "easy", Price: 2.49},
				{Name: "Spinach", Category: "vegetable", Description: "Cool-season green for salads and smoothies.", GrowingTime: "40-50 days", Sunlight: "shade", Space: "small", Difficulty: "easy", Price: 2.79},
				{Name: "Fresh Mint", Category: "herb", Description: "Vigorous herb for teas and smoothies.", GrowingTime: "30-40 days", Sunlight: "shade", Space: "small", Difficulty: "easy", Price: 2.99},
				{Name: "Parsley", Category: "herb", Description: "Slow to sprout, generous once established.", GrowingTime: "70-90 days", Sunlight: "shade", Space: "small", Difficulty: "easy", Price: 2.49},
			},
		},
		{
			Space: "medium", Sunlight: "full_sun", Experience: "intermediate", Time: "medium", Purpose: "food",
			RecommendationMessage: "With a medium bed and full sun you can run a proper salad rotation.",
			Plants: []domain.SuggestionPlant{
				{Name: "Cucumber", Category: "vegetable", Description: "Productive climber for trellises.", GrowingTime: "50-70 days", Sunlight: "full_sun", Space: "medium", Difficulty: "moderate", Price: 3.49},
				{Name: "Kale", Category: "vegetable", Description: "Hardy green that sweetens after frost.", GrowingTime: "50-65 days", Sunlight: "full_sun", Space: "medium", Difficulty: "easy", Price: 2.99},
				{Name: "Carrot", Category: "vegetable", Description: "Needs loose, stone-free soil.", GrowingTime: "70-80 days", Sunlight: "full_sun", Space: "medium", Difficulty: "moderate", Price: 2.29},
				{Name: "Zucchini", Category: "vegetable", Description: "Famously generous summer squash.", GrowingTime: "45-60 days", Sunlight: "full_sun", Space: "medium", Difficulty: "easy", Price: 3.29},
			},
		},
		{
			Space: "large", Sunlight: "full_sun", Experience: "expert", Time: "high", Purpose: "food",
			RecommendationMessage: "Room to spare and time to spend? These crops reward the patient gardener.",
			Plants: []domain.SuggestionPlant{
				{Name: "Pumpkin", Category: "vegetable", Description: "Sprawling vines need serious room to run.", GrowingTime: "95-120 days", Sunlight: "full_sun", Space: "large", Difficulty: "moderate", Price: 4.49},
				{Name: "Blueberry", Category: "fruit", Description: "Perennial shrub that needs acidic soil.", GrowingTime: "2 years", Sunlight: "full_sun", Space: "large", Difficulty: "hard", Price: 12.99},
				{Name: "Garlic", Category: "vegetable", Description: "Plant cloves in autumn, harvest mid-summer.", GrowingTime: "240 days", Sunlight: "full_sun", Space: "small", Difficulty: "easy", Price: 3.99},
			},
		},
	}
}

// defaultProducts is the starter store catalog. Recommended items feed the
// chatbot's follow-up product strip.
func defaultProducts() []domain.Product {
	return []domain.Product{
		{Name: "Organic Seed Starter Kit", Description: "Trays, pellets, and a humidity dome for 24 seedlings.", Category: "kits", Price: 19.99, Stock: 120, Recommended: true},
		{Name: "Self-Watering Planter", Description: "30cm planter with a 1.5L reservoir for thirsty herbs.", Category: "containers", Price: 24.50, Stock: 80, Recommended: true},
		{Name: "All-Purpose Potting Mix 20L", Description: "Peat-free mix suitable for containers and raised beds.", Category: "soil", Price: 9.99, Stock: 200, Recommended: true},
		{Name: "Liquid Tomato Feed 1L", Description: "High-potash feed for fruiting vegetables.", Category: "fertilizer", Price: 7.49, Stock: 150, Recommended: true},
		{Name: "Copper Plant Labels (20pk)", Description: "Weatherproof labels you can actually read in spring.", Category: "accessories", Price: 6.99, Stock: 300},
		{Name: "Hand Trowel & Fork Set", Description: "Stainless heads, ash handles, lifetime of light digging.", Category: "tools", Price: 14.99, Stock: 90},
		{Name: "Expandable Pea Trellis", Description: "Folds flat in winter, holds a full season of climbers.", Category: "supports", Price: 17.99, Stock: 60},
		{Name: "Neem Oil Spray 500ml", Description: "Gentle first line against aphids and mildew.", Category: "care", Price: 8.99, Stock: 110},
	}
}
