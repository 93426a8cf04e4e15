// Package services – StoreService
//
// This file implements StoreService, which owns the storefront: product
// browsing, the cart, the wishlist, and order placement. Orders snapshot
// product names and prices at purchase time, and placing an order clears the
// cart in the same transaction.
//
// Observability: public methods are OpenTelemetry-instrumented.
package services

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/urbansprout/go-garden-backend/internal/domain"
	"github.com/urbansprout/go-garden-backend/internal/repo"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

// StoreRepo defines the repository contract required by StoreService.
type StoreRepo interface {
	// CountProducts returns the number of products matching the query.
	CountProducts(ctx context.Context, db *gorm.DB, q repo.ProductQuery) (int64, error)

	// ListProductsPage returns a page of products matching the query.
	ListProductsPage(ctx context.Context, db *gorm.DB, q repo.ProductQuery, offset, limit int) ([]domain.Product, error)

	// GetProduct fetches a product by ID.
	GetProduct(ctx context.Context, db *gorm.DB, id string) (*domain.Product, error)

	// ListCart returns the user's cart rows with products preloaded.
	ListCart(ctx context.Context, db *gorm.DB, userID string) ([]domain.CartItem, error)

	// UpsertCartItem adds quantity of a product to the user's cart.
	UpsertCartItem(ctx context.Context, db *gorm.DB, userID, productID string, quantity int) (*domain.CartItem, error)

	// RemoveCartItem deletes a cart row.
	RemoveCartItem(ctx context.Context, db *gorm.DB, userID, productID string) error

	// ClearCart removes every cart row for the user.
	ClearCart(ctx context.Context, db *gorm.DB, userID string) error

	// ListWishlist returns the user's wishlist rows with products preloaded.
	ListWishlist(ctx context.Context, db *gorm.DB, userID string) ([]domain.WishlistItem, error)

	// AddWishlistItem inserts a wishlist row, idempotently.
	AddWishlistItem(ctx context.Context, db *gorm.DB, userID, productID string) (*domain.WishlistItem, error)

	// RemoveWishlistItem deletes a wishlist row.
	RemoveWishlistItem(ctx context.Context, db *gorm.DB, userID, productID string) error

	// CreateOrder inserts an order with its items.
	CreateOrder(ctx context.Context, db *gorm.DB, o *domain.Order) error

	// GetOrder fetches an order by ID and owner with items preloaded.
	GetOrder(ctx context.Context, db *gorm.DB, id, userID string) (*domain.Order, error)

	// CountOrders returns the number of orders owned by the user.
	CountOrders(ctx context.Context, db *gorm.DB, userID string) (int64, error)

	// ListOrdersPage returns a page of the user's orders, newest first.
	ListOrdersPage(ctx context.Context, db *gorm.DB, userID string, offset, limit int) ([]domain.Order, error)
}

// StoreService provides product browsing, cart and wishlist management, and
// order placement.
type StoreService struct {
	// DB is the GORM handle used for persistence.
	DB *gorm.DB
	// Repo is the store repository used by this service.
	Repo StoreRepo
}

// NewStoreService constructs a StoreService.
func NewStoreService(db *gorm.DB, r StoreRepo) *StoreService {
	return &StoreService{DB: db, Repo: r}
}

// ListProducts returns a page of products matching the optional category and
// search filters, plus the total match count.
func (s *StoreService) ListProducts(ctx context.Context, q repo.ProductQuery, page, pageSize int) ([]domain.Product, int64, error) {
	tr := otel.Tracer("services/StoreService")
	ctx, span := tr.Start(ctx, "ListProducts",
		trace.WithAttributes(attribute.Int("page", page), attribute.Int("page_size", pageSize)),
	)
	defer span.End()

	if page < 1 {
		page = 1
	}
	if pageSize <= 0 {
		pageSize = 20
	}
	offset := (page - 1) * pageSize

	total, err := s.Repo.CountProducts(ctx, s.DB, q)
	if err != nil {
		return nil, 0, err
	}
	if total == 0 {
		return []domain.Product{}, 0, nil
	}
	items, err := s.Repo.ListProductsPage(ctx, s.DB, q, offset, pageSize)
	return items, total, err
}

// GetProduct fetches one product or ErrProductNotFound.
func (s *StoreService) GetProduct(ctx context.Context, id string) (*domain.Product, error) {
	tr := otel.Tracer("services/StoreService")
	ctx, span := tr.Start(ctx, "GetProduct",
		trace.WithAttributes(attribute.String("product.id", id)),
	)
	defer span.End()

	p, err := s.Repo.GetProduct(ctx, s.DB, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrProductNotFound
	}
	return p, err
}

// Cart returns the user's cart items, oldest first.
func (s *StoreService) Cart(ctx context.Context, userID string) ([]domain.CartItem, error) {
	tr := otel.Tracer("services/StoreService")
	ctx, span := tr.Start(ctx, "Cart",
		trace.WithAttributes(attribute.String("user.id", userID)),
	)
	defer span.End()

	return s.Repo.ListCart(ctx, s.DB, userID)
}

// AddToCart adds quantity of the product to the user's cart. The product must
// exist.
func (s *StoreService) AddToCart(ctx context.Context, userID, productID string, quantity int) (*domain.CartItem, error) {
	tr := otel.Tracer("services/StoreService")
	ctx, span := tr.Start(ctx, "AddToCart",
		trace.WithAttributes(
			attribute.String("user.id", userID),
			attribute.String("product.id", productID),
		),
	)
	defer span.End()

	if _, err := s.Repo.GetProduct(ctx, s.DB, productID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProductNotFound
		}
		return nil, err
	}
	return s.Repo.UpsertCartItem(ctx, s.DB, userID, productID, quantity)
}

// RemoveFromCart deletes the product's cart row or returns ErrCartItemNotFound.
func (s *StoreService) RemoveFromCart(ctx context.Context, userID, productID string) error {
	tr := otel.Tracer("services/StoreService")
	ctx, span := tr.Start(ctx, "RemoveFromCart",
		trace.WithAttributes(attribute.String("product.id", productID)),
	)
	defer span.End()

	err := s.Repo.RemoveCartItem(ctx, s.DB, userID, productID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrCartItemNotFound
	}
	return err
}

// Wishlist returns the user's wishlist, newest first.
func (s *StoreService) Wishlist(ctx context.Context, userID string) ([]domain.WishlistItem, error) {
	tr := otel.Tracer("services/StoreService")
	ctx, span := tr.Start(ctx, "Wishlist",
		trace.WithAttributes(attribute.String("user.id", userID)),
	)
	defer span.End()

	return s.Repo.ListWishlist(ctx, s.DB, userID)
}

// AddToWishlist saves the product to the user's wishlist. Saving the same
// product twice is a no-op.
func (s *StoreService) AddToWishlist(ctx context.Context, userID, productID string) (*domain.WishlistItem, error) {
	tr := otel.Tracer("services/StoreService")
	ctx, span := tr.Start(ctx, "AddToWishlist",
		trace.WithAttributes(attribute.String("product.id", productID)),
	)
	defer span.End()

	if _, err := s.Repo.GetProduct(ctx, s.DB, productID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProductNotFound
		}
		return nil, err
	}
	return s.Repo.AddWishlistItem(ctx, s.DB, userID, productID)
}

// RemoveFromWishlist deletes the wishlist row or returns
// ErrWishlistItemNotFound.
func (s *StoreService) RemoveFromWishlist(ctx context.Context, userID, productID string) error {
	tr := otel.Tracer("services/StoreService")
	ctx, span := tr.Start(ctx, "RemoveFromWishlist",
		trace.WithAttributes(attribute.String("product.id", productID)),
	)
	defer span.End()

	err := s.Repo.RemoveWishlistItem(ctx, s.DB, userID, productID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrWishlistItemNotFound
	}
	return err
}

// PlaceOrder turns the user's cart into a pending order and clears the cart,
// atomically. Line items snapshot the product name and unit price so later
// catalog edits don't rewrite history.
func (s *StoreService) PlaceOrder(ctx context.Context, userID string) (*domain.Order, error) {
	tr := otel.Tracer("services/StoreService")
	ctx, span := tr.Start(ctx, "PlaceOrder",
		trace.WithAttributes(attribute.String("user.id", userID)),
	)
	defer span.End()

	items, err := s.Repo.ListCart(ctx, s.DB, userID)
	if err != nil {
		return nil, err
	}
	if len(items) == 0 {
		return nil, ErrEmptyCart
	}

	order := &domain.Order{
		UserID:    userID,
		Status:    domain.OrderStatusPending,
		CreatedAt: time.Now().UTC(),
	}
	for _, it := range items {
		line := domain.OrderItem{
			ProductID: it.ProductID,
			Name:      it.Product.Name,
			UnitPrice: it.Product.Price,
			Quantity:  it.Quantity,
		}
		order.Total += line.UnitPrice * float64(line.Quantity)
		order.Items = append(order.Items, line)
	}

	err = s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := s.Repo.CreateOrder(ctx, tx, order); err != nil {
			return err
		}
		return s.Repo.ClearCart(ctx, tx, userID)
	})
	if err != nil {
		return nil, err
	}
	span.SetAttributes(attribute.String("order.id", order.ID))
	return order, nil
}

// GetOrder fetches one of the user's orders or ErrOrderNotFound.
func (s *StoreService) GetOrder(ctx context.Context, id, userID string) (*domain.Order, error) {
	tr := otel.Tracer("services/StoreService")
	ctx, span := tr.Start(ctx, "GetOrder",
		trace.WithAttributes(attribute.String("order.id", id)),
	)
	defer span.End()

	o, err := s.Repo.GetOrder(ctx, s.DB, id, userID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrOrderNotFound
	}
	return o, err
}

// ListOrders returns a page of the user's orders, newest first, plus the
// total count.
func (s *StoreService) ListOrders(ctx context.Context, userID string, page, pageSize int) ([]domain.Order, int64, error) {
	tr := otel.Tracer("services/StoreService")
	ctx, span := tr.Start(ctx, "ListOrders",
		trace.WithAttributes(attribute.Int("page", page), attribute.Int("page_size", pageSize)),
	)
	defer span.End()

	if page < 1 {
		page = 1
	}
	if pageSize <= 0 {
		pageSize = 20
	}
	offset := (page - 1) * pageSize

	total, err := s.Repo.CountOrders(ctx, s.DB, userID)
	if err != nil {
		return nil, 0, err
	}
	if total == 0 {
		return []domain.Order{}, 0, nil
	}
	items, err := s.Repo.ListOrdersPage(ctx, s.DB, userID, offset, pageSize)
	return items, total, err
}
