// Package httpapi wires the HTTP transport (Gin) to application services,
// middleware, and route handlers. It centralizes cross-cutting concerns such
// as tracing, correlation IDs, logging/redaction, panic recovery, metrics,
// compression, CORS, security headers, idempotency, and rate limiting.
//
// Design goals:
//   - Put observability first (OTel + Prometheus)
//   - Safe-by-default middleware ordering (RequestID → logging → recovery)
//   - Deterministic, minimal router setup; all dependencies injected
//   - Production-ready CORS and security header posture
package httpapi

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
	"gorm.io/gorm"

	"github.com/urbansprout/go-garden-backend/internal/ai"
	"github.com/urbansprout/go-garden-backend/internal/catalog"
	"github.com/urbansprout/go-garden-backend/internal/config"
	"github.com/urbansprout/go-garden-backend/internal/domain"
	"github.com/urbansprout/go-garden-backend/internal/http/handlers"
	"github.com/urbansprout/go-garden-backend/internal/http/middleware"
	"github.com/urbansprout/go-garden-backend/internal/repo"
	"github.com/urbansprout/go-garden-backend/internal/services"
	"github.com/urbansprout/go-garden-backend/internal/session"
)

// suggestionRepoShim adapts the repository free functions to the
// services.SuggestionRepo interface. This keeps services decoupled from the
// concrete repo package while reusing existing functions.
type suggestionRepoShim struct{}

// GetSuggestionByKey proxies repo.GetSuggestionByKey.
func (suggestionRepoShim) GetSuggestionByKey(ctx context.Context, db *gorm.DB, key string) (*domain.Suggestion, error) {
	return repo.GetSuggestionByKey(ctx, db, key)
}

// GetSuggestionByPartial proxies repo.GetSuggestionByPartial.
func (suggestionRepoShim) GetSuggestionByPartial(ctx context.Context, db *gorm.DB, space, sunlight, experience string) (*domain.Suggestion, error) {
	return repo.GetSuggestionByPartial(ctx, db, space, sunlight, experience)
}

// storeRepoShim adapts the repository free functions to the
// services.StoreRepo interface.
type storeRepoShim struct{}

func (storeRepoShim) CountProducts(ctx context.Context, db *gorm.DB, q repo.ProductQuery) (int64, error) {
	return repo.CountProducts(ctx, db, q)
}

func (storeRepoShim) ListProductsPage(ctx context.Context, db *gorm.DB, q repo.ProductQuery, offset, limit int) ([]domain.Product, error) {
	return repo.ListProductsPage(ctx, db, q, offset, limit)
}

func (storeRepoShim) GetProduct(ctx context.Context, db *gorm.DB, id string) (*domain.Product, error) {
	return repo.GetProduct(ctx, db, id)
}

func (storeRepoShim) ListCart(ctx context.Context, db *gorm.DB, userID string) ([]domain.CartItem, error) {
	return repo.ListCart(ctx, db, userID)
}

func (storeRepoShim) UpsertCartItem(ctx context.Context, db *gorm.DB, userID, productID string, quantity int) (*domain.CartItem, error) {
	return repo.UpsertCartItem(ctx, db, userID, productID, quantity)
}

func (storeRepoShim) RemoveCartItem(ctx context.Context, db *gorm.DB, userID, productID string) error {
	return repo.RemoveCartItem(ctx, db, userID, productID)
}

func (storeRepoShim) ClearCart(ctx context.Context, db *gorm.DB, userID string) error {
	return repo.ClearCart(ctx, db, userID)
}

func (storeRepoShim) ListWishlist(ctx context.Context, db *gorm.DB, userID string) ([]domain.WishlistItem, error) {
	return repo.ListWishlist(ctx, db, userID)
}

func (storeRepoShim) AddWishlistItem(ctx context.Context, db *gorm.DB, userID, productID string) (*domain.WishlistItem, error) {
	return repo.AddWishlistItem(ctx, db, userID, productID)
}

func (storeRepoShim) RemoveWishlistItem(ctx context.Context, db *gorm.DB, userID, productID string) error {
	return repo.RemoveWishlistItem(ctx, db, userID, productID)
}

func (storeRepoShim) CreateOrder(ctx context.Context, db *gorm.DB, o *domain.Order) error {
	return repo.CreateOrder(ctx, db, o)
}

func (storeRepoShim) GetOrder(ctx context.Context, db *gorm.DB, id, userID string) (*domain.Order, error) {
	return repo.GetOrder(ctx, db, id, userID)
}

func (storeRepoShim) CountOrders(ctx context.Context, db *gorm.DB, userID string) (int64, error) {
	return repo.CountOrders(ctx, db, userID)
}

func (storeRepoShim) ListOrdersPage(ctx context.Context, db *gorm.DB, userID string, offset, limit int) ([]domain.Order, error) {
	return repo.ListOrdersPage(ctx, db, userID, offset, limit)
}

// RegisterRoutes attaches all middleware and HTTP endpoints to the given Gin
// engine. It configures observability (tracing, metrics), idempotency and
// rate limiting, CORS and security headers, health and metrics endpoints, and
// then mounts the versioned public API under /api/v*.
//
// Middleware order matters:
//  1. OpenTelemetry: trace everything
//  2. RequestID: generate/propagate correlation id
//  3. RedactingLogger: structured logs with PII scrubbing
//  4. Recovery: capture panics after logger
//  5. Body size limiter
//  6. Gzip compression
//  7. Metrics
//  8. Idempotency validator (before rate limiter to allow bypass on replay)
//  9. Rate limiter (per user/IP, bypass on replay)
//  10. CORS and Security headers
func RegisterRoutes(r *gin.Engine, db *gorm.DB, cat *catalog.Catalog, gen ai.Generator, sessions session.Store, cfg config.Config) {
	r.HandleMethodNotAllowed = true

	// 1) Trace all HTTP requests
	r.Use(otelgin.Middleware(cfg.OTEL.ServiceName))

	// 2) Correlate requests and logs
	r.Use(middleware.RequestID())

	// 3) Structured logging with redaction
	r.Use(middleware.RedactingLogger(middleware.RedactOptions{
		MaskHeaders: []string{
			"X-API-Key",
		},
	}))

	// 4) Panic recovery to JSON 500 (with request id)
	r.Use(middleware.Recovery())

	// 5) Global body size limit (1 MiB)
	r.Use(limitBody(1 << 20))

	// 6) Response compression (skip the Prometheus scrape endpoint)
	r.Use(gzip.Gzip(gzip.DefaultCompression, gzip.WithExcludedPaths([]string{"/metrics"})))

	// 7) Prometheus metrics and /metrics endpoint
	r.Use(middleware.Metrics())
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// 8) Idempotency validation (before rate limiting)
	r.Use(middleware.IdempotencyValidator(
		middleware.IdempotencyOptions{
			MaxLen: 200,
			Scope:  "orders",
		},
		func(ctx context.Context, userID, scope, key string, now time.Time) (bool, error) {
			rec, err := repo.GetIdempotency(ctx, db, userID, scope, key, now)
			if err != nil || rec == nil {
				return false, nil
			}
			return true, nil
		},
	))

	// 9) Token-bucket rate limiter per user/IP
	rl := middleware.NewRateLimiter(cfg.RateRPS, cfg.RateBurst, middleware.KeyByUserOrIP())
	r.Use(rl.Handler())

	// 10) CORS posture (safe defaults: allow all if none configured)
	if len(cfg.CORS.AllowedOrigins) == 0 {
		// Force ACAO: * even for requests without an Origin header (helps tests
		// and simple health checks).
		r.Use(func(c *gin.Context) {
			c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
			c.Next()
		})
		r.Use(cors.New(cors.Config{
			AllowAllOrigins:  true,
			AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
			AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-User-ID", middleware.HeaderIdempotencyKey},
			ExposeHeaders:    []string{"X-Request-ID", "Content-Length"},
			AllowCredentials: false, // must remain false with AllowAllOrigins
			MaxAge:           12 * time.Hour,
		}))
	} else {
		// Echo ACAO with the request Origin when it is in the allowlist.
		allowed := make(map[string]struct{}, len(cfg.CORS.AllowedOrigins))
		for _, o := range cfg.CORS.AllowedOrigins {
			allowed[o] = struct{}{}
		}
		r.Use(func(c *gin.Context) {
			if origin := c.GetHeader("Origin"); origin != "" {
				if _, ok := allowed[origin]; ok {
					h := c.Writer.Header()
					h.Set("Access-Control-Allow-Origin", origin)
					h.Add("Vary", "Origin")
				}
			}
			c.Next()
		})
		r.Use(cors.New(cors.Config{
			AllowOrigins:     cfg.CORS.AllowedOrigins,
			AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
			AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-User-ID", middleware.HeaderIdempotencyKey},
			ExposeHeaders:    []string{"X-Request-ID", "Content-Length"},
			AllowCredentials: false,
			MaxAge:           12 * time.Hour,
		}))
	}

	// Security headers (HSTS only when enabled and request is HTTPS)
	r.Use(middleware.SecurityHeaders(middleware.SecurityOptions{
		EnableHSTS:   cfg.Security.EnableHSTS,
		HSTSMaxAge:   cfg.Security.HSTSMaxAge,
		NoStore:      false,
		EnablePolicy: true,
	}))

	// Fallbacks
	r.NoRoute(func(c *gin.Context) {
		handlers.Fail(c, http.StatusNotFound, handlers.ErrCodeNotFound, "route not found")
	})
	r.NoMethod(func(c *gin.Context) {
		handlers.Fail(c, http.StatusMethodNotAllowed, handlers.ErrCodeMethodNotAllowed, "method not allowed")
	})

	// Liveness/health
	r.GET("/health", func(c *gin.Context) { c.JSON(http.StatusOK, gin.H{"status": "ok"}) })

	// Dependency injection: services ← repo/db/catalog/model
	suggSvc := services.NewSuggestionService(db, suggestionRepoShim{}, cat)
	adviceSvc := services.NewAdviceService(db, gen, sessions, cat)
	storeSvc := services.NewStoreService(db, storeRepoShim{})
	h := handlers.New(suggSvc, adviceSvc, storeSvc)

	// Public API
	apiBase := cfg.APIBasePath // e.g. "/api/v1"
	api := groupWithPrefix(r, apiBase)
	{
		// Suggestions
		api.POST("/suggestions", h.Suggest)
		api.POST("/plants/filter", h.FilterPlants)

		// Chat
		api.POST("/chat", h.Chat)

		// Products
		api.GET("/products", h.ListProducts)
		api.GET("/products/:id", h.GetProduct)

		// Cart
		api.GET("/cart", h.GetCart)
		api.POST("/cart", h.AddToCart)
		api.DELETE("/cart/:productId", h.RemoveFromCart)

		// Wishlist
		api.GET("/wishlist", h.GetWishlist)
		api.POST("/wishlist", h.AddToWishlist)
		api.DELETE("/wishlist/:productId", h.RemoveFromWishlist)

		// Orders
		api.POST("/orders", h.PlaceOrder)
		api.GET("/orders", h.ListOrders)
		api.GET("/orders/:id", h.GetOrder)
	}
}

// limitBody returns a Gin middleware that caps the request body size for all
// endpoints to maxBytes using http.MaxBytesReader. Requests exceeding the cap
// will cause downstream body reads to error.
func limitBody(maxBytes int64) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxBytes)
		c.Next()
	}
}

// groupWithPrefix mounts a group at prefix, treating "/" (or empty) as root.
func groupWithPrefix(r *gin.Engine, prefix string) *gin.RouterGroup {
	if prefix == "" || prefix == "/" {
		return r.Group("")
	}
	return r.Group(prefix)
}
