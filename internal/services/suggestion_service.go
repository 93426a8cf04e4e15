// Package services – SuggestionService
//
// This file implements SuggestionService, which turns a gardener's quiz
// answers into a curated plant suggestion set. Resolution walks a fixed
// fallback chain: the exact five-field combination first, then the oldest
// partial match on (space, sunlight, experience), then the canonical default
// combination. Keyword filtering runs against the in-memory plant catalog
// rather than the database.
//
// Observability: public methods are OpenTelemetry-instrumented; spans carry
// the combination key or keyword being resolved.
package services

import (
	"context"
	"errors"
	"strings"

	"gorm.io/gorm"

	"github.com/urbansprout/go-garden-backend/internal/catalog"
	"github.com/urbansprout/go-garden-backend/internal/domain"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

// Match levels reported alongside a resolved suggestion so callers can tell
// how close the stored set was to what the user asked for.
const (
	MatchExact    = "exact"
	MatchFallback = "fallback"
	MatchDefault  = "default"
)

// SuggestionRepo defines the repository contract required by SuggestionService.
type SuggestionRepo interface {
	// GetSuggestionByKey fetches the active suggestion set stored under the
	// exact combination key, with plants preloaded in display order.
	GetSuggestionByKey(ctx context.Context, db *gorm.DB, key string) (*domain.Suggestion, error)

	// GetSuggestionByPartial fetches the oldest active suggestion set matching
	// space, sunlight, and experience, ignoring time and purpose.
	GetSuggestionByPartial(ctx context.Context, db *gorm.DB, space, sunlight, experience string) (*domain.Suggestion, error)
}

// SuggestionService resolves quiz combinations to suggestion sets and filters
// the plant catalog by keyword.
type SuggestionService struct {
	// DB is the GORM handle used for persistence.
	DB *gorm.DB
	// Repo is the suggestion repository used by this service.
	Repo SuggestionRepo
	// Catalog is the in-memory plant catalog backing keyword filtering.
	Catalog *catalog.Catalog
}

// NewSuggestionService constructs a SuggestionService.
func NewSuggestionService(db *gorm.DB, r SuggestionRepo, c *catalog.Catalog) *SuggestionService {
	return &SuggestionService{DB: db, Repo: r, Catalog: c}
}

// Resolve maps the five quiz answers to a stored suggestion set. The second
// return value reports the match level (exact, fallback, or default). All five
// fields are required; sunlight is normalized so that UI synonyms like
// "partial" land on the stored vocabulary.
func (s *SuggestionService) Resolve(ctx context.Context, space, sunlight, experience, timeBudget, purpose string) (*domain.Suggestion, string, error) {
	tr := otel.Tracer("services/SuggestionService")
	ctx, span := tr.Start(ctx, "Resolve")
	defer span.End()

	space = strings.TrimSpace(space)
	sunlight = catalog.NormalizeSunlight(sunlight)
	experience = strings.TrimSpace(experience)
	timeBudget = strings.TrimSpace(timeBudget)
	purpose = strings.TrimSpace(purpose)
	if space == "" || sunlight == "" || experience == "" || timeBudget == "" || purpose == "" {
		return nil, "", ErrMissingField
	}

	key := domain.CombinationKey(space, sunlight, experience, timeBudget, purpose)
	span.SetAttributes(attribute.String("suggestion.key", key))

	sg, err := s.Repo.GetSuggestionByKey(ctx, s.DB, key)
	switch {
	case err == nil:
		span.SetAttributes(attribute.String("suggestion.match", MatchExact))
		return sg, MatchExact, nil
	case !errors.Is(err, gorm.ErrRecordNotFound):
		return nil, "", err
	}

	sg, err = s.Repo.GetSuggestionByPartial(ctx, s.DB, strings.ToLower(space), sunlight, strings.ToLower(experience))
	switch {
	case err == nil:
		span.SetAttributes(attribute.String("suggestion.match", MatchFallback))
		return sg, MatchFallback, nil
	case !errors.Is(err, gorm.ErrRecordNotFound):
		return nil, "", err
	}

	defaultKey := domain.CombinationKey(
		domain.DefaultSpace, domain.DefaultSunlight, domain.DefaultExperience,
		domain.DefaultTime, domain.DefaultPurpose,
	)
	sg, err = s.Repo.GetSuggestionByKey(ctx, s.DB, defaultKey)
	switch {
	case err == nil:
		span.SetAttributes(attribute.String("suggestion.match", MatchDefault))
		return sg, MatchDefault, nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		return nil, "", ErrCombinationNotFound
	default:
		return nil, "", err
	}
}

// FilterPlants returns catalog plants matching the keyword plus optional
// structured preferences. The keyword is required; unknown keywords fall back
// to the catalog's lenient default set rather than erroring.
func (s *SuggestionService) FilterPlants(ctx context.Context, keyword string, prefs catalog.Preferences) ([]catalog.Plant, error) {
	tr := otel.Tracer("services/SuggestionService")
	_, span := tr.Start(ctx, "FilterPlants",
		trace.WithAttributes(attribute.String("filter.keyword", keyword)),
	)
	defer span.End()

	if strings.TrimSpace(keyword) == "" {
		return nil, ErrMissingKeyword
	}
	plants := s.Catalog.Filter(keyword, prefs)
	span.SetAttributes(attribute.Int("filter.results", len(plants)))
	return plants, nil
}
