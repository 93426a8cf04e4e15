// Handler wiring and shared helpers.
//
// This file defines the service contracts consumed by the HTTP layer, the
// Handlers aggregate that binds them, and small helpers shared by multiple
// endpoints (user identification, pagination clamping).
//
// Handlers are transport-thin: they validate input, call application
// services, and translate results into HTTP responses.
package handlers

import (
	"context"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/urbansprout/go-garden-backend/internal/catalog"
	"github.com/urbansprout/go-garden-backend/internal/domain"
	"github.com/urbansprout/go-garden-backend/internal/repo"
	"github.com/urbansprout/go-garden-backend/internal/services"
	"github.com/urbansprout/go-garden-backend/internal/utils"
)

//
// Service contracts (context-aware)
//

// SuggestionService defines quiz resolution and catalog filtering operations
// consumed by HTTP handlers.
//
// Implementations should be safe for concurrent use and must honor the
// provided context for cancellation and timeouts.
type SuggestionService interface {
	// Resolve maps the five quiz answers to a suggestion set and reports the
	// match level (exact, fallback, default).
	Resolve(ctx context.Context, space, sunlight, experience, timeBudget, purpose string) (*domain.Suggestion, string, error)
	// FilterPlants returns catalog plants matching a keyword plus optional
	// structured preferences.
	FilterPlants(ctx context.Context, keyword string, prefs catalog.Preferences) ([]catalog.Plant, error)
}

// AdviceService defines the conversational operation consumed by HTTP
// handlers.
type AdviceService interface {
	// Chat runs one conversation turn for the session.
	Chat(ctx context.Context, sessionID, message string) (*services.ChatResult, error)
}

// StoreService defines storefront operations consumed by HTTP handlers.
type StoreService interface {
	ListProducts(ctx context.Context, q repo.ProductQuery, page, pageSize int) ([]domain.Product, int64, error)
	GetProduct(ctx context.Context, id string) (*domain.Product, error)
	Cart(ctx context.Context, userID string) ([]domain.CartItem, error)
	AddToCart(ctx context.Context, userID, productID string, quantity int) (*domain.CartItem, error)
	RemoveFromCart(ctx context.Context, userID, productID string) error
	Wishlist(ctx context.Context, userID string) ([]domain.WishlistItem, error)
	AddToWishlist(ctx context.Context, userID, productID string) (*domain.WishlistItem, error)
	RemoveFromWishlist(ctx context.Context, userID, productID string) error
	PlaceOrder(ctx context.Context, userID string) (*domain.Order, error)
	GetOrder(ctx context.Context, id, userID string) (*domain.Order, error)
	ListOrders(ctx context.Context, userID string, page, pageSize int) ([]domain.Order, int64, error)
}

//
// Handler wiring
//

// Handlers groups the HTTP endpoints for suggestions, chat, and the store.
// It depends on abstract service interfaces to keep transport concerns
// separate from business logic.
type Handlers struct {
	suggSvc   SuggestionService
	adviceSvc AdviceService
	storeSvc  StoreService
}

// New constructs a Handlers instance bound to the given services.
func New(suggSvc SuggestionService, adviceSvc AdviceService, storeSvc StoreService) *Handlers {
	return &Handlers{suggSvc: suggSvc, adviceSvc: adviceSvc, storeSvc: storeSvc}
}

// userID extracts the authenticated user id from Gin context (set by upstream
// middleware). If absent, it falls back to the "X-User-ID" header, and
// finally to "demo-user". It never touches c.Request if it's nil.
func userID(c *gin.Context) string {
	if v, ok := c.Get("userID"); ok {
		if s, ok := v.(string); ok && s != "" {
			return s
		}
	}
	if c != nil && c.Request != nil {
		if h := strings.TrimSpace(c.GetHeader("X-User-ID")); h != "" {
			return h
		}
	}
	return "demo-user"
}

//
// Shared DTOs
//

// Pagination carries pagination metadata for list responses.
type Pagination struct {
	Page       int   `json:"page"`
	PageSize   int   `json:"page_size"`
	Total      int64 `json:"total"`
	TotalPages int   `json:"total_pages"`
	HasNext    bool  `json:"has_next"`
}

// newPagination derives the metadata block from a page request and total.
func newPagination(page, pageSize int, total int64) Pagination {
	totalPages := int((total + int64(pageSize) - 1) / int64(pageSize))
	return Pagination{
		Page:       page,
		PageSize:   pageSize,
		Total:      total,
		TotalPages: totalPages,
		HasNext:    page < totalPages,
	}
}

// clampPagination parses and bounds page and page_size query params to sane
// defaults and limits, returning (page, pageSize).
func clampPagination(c *gin.Context) (page, pageSize int) {
	const (
		defaultPage     = 1
		defaultPageSize = 20
		maxPageSize     = 100
	)
	page = utils.AtoiDefault(c.Query("page"), defaultPage)
	if page < 1 {
		page = 1
	}
	pageSize = utils.AtoiDefault(c.Query("page_size"), defaultPageSize)
	if pageSize < 1 {
		pageSize = 1
	}
	if pageSize > maxPageSize {
		pageSize = maxPageSize
	}
	return
}
