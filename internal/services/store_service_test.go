package services

import (
	"context"
	"errors"
	"math"
	"testing"

	sqlite "github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/urbansprout/go-garden-backend/internal/domain"
	"github.com/urbansprout/go-garden-backend/internal/repo"
)

// storeTestDB opens a throwaway in-memory handle so Transaction works; the
// fake repository ignores the handle entirely.
func storeTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open("file:storesvc?mode=memory&cache=shared"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	return db
}

// fakeStoreRepo implements StoreRepo against in-memory state.
type fakeStoreRepo struct {
	products map[string]domain.Product
	cart     []domain.CartItem
	orders   []domain.Order

	cartCleared  bool
	createFailed error
}

func (f *fakeStoreRepo) CountProducts(_ context.Context, _ *gorm.DB, _ repo.ProductQuery) (int64, error) {
	return int64(len(f.products)), nil
}

func (f *fakeStoreRepo) ListProductsPage(_ context.Context, _ *gorm.DB, _ repo.ProductQuery, _, _ int) ([]domain.Product, error) {
	out := make([]domain.Product, 0, len(f.products))
	for _, p := range f.products {
		out = append(out, p)
	}
	return out, nil
}

func (f *fakeStoreRepo) GetProduct(_ context.Context, _ *gorm.DB, id string) (*domain.Product, error) {
	if p, ok := f.products[id]; ok {
		return &p, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeStoreRepo) ListCart(_ context.Context, _ *gorm.DB, _ string) ([]domain.CartItem, error) {
	return f.cart, nil
}

func (f *fakeStoreRepo) UpsertCartItem(_ context.Context, _ *gorm.DB, userID, productID string, quantity int) (*domain.CartItem, error) {
	item := domain.CartItem{UserID: userID, ProductID: productID, Quantity: quantity, Product: f.products[productID]}
	f.cart = append(f.cart, item)
	return &item, nil
}

func (f *fakeStoreRepo) RemoveCartItem(_ context.Context, _ *gorm.DB, _, productID string) error {
	for i, it := range f.cart {
		if it.ProductID == productID {
			f.cart = append(f.cart[:i], f.cart[i+1:]...)
			return nil
		}
	}
	return gorm.ErrRecordNotFound
}

func (f *fakeStoreRepo) ClearCart(_ context.Context, _ *gorm.DB, _ string) error {
	f.cart = nil
	f.cartCleared = true
	return nil
}

func (f *fakeStoreRepo) ListWishlist(_ context.Context, _ *gorm.DB, _ string) ([]domain.WishlistItem, error) {
	return []domain.WishlistItem{}, nil
}

func (f *fakeStoreRepo) AddWishlistItem(_ context.Context, _ *gorm.DB, userID, productID string) (*domain.WishlistItem, error) {
	return &domain.WishlistItem{UserID: userID, ProductID: productID}, nil
}

func (f *fakeStoreRepo) RemoveWishlistItem(_ context.Context, _ *gorm.DB, _, _ string) error {
	return gorm.ErrRecordNotFound
}

func (f *fakeStoreRepo) CreateOrder(_ context.Context, _ *gorm.DB, o *domain.Order) error {
	if f.createFailed != nil {
		return f.createFailed
	}
	o.ID = "order-1"
	f.orders = append(f.orders, *o)
	return nil
}

func (f *fakeStoreRepo) GetOrder(_ context.Context, _ *gorm.DB, id, userID string) (*domain.Order, error) {
	for _, o := range f.orders {
		if o.ID == id && o.UserID == userID {
			return &o, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeStoreRepo) CountOrders(_ context.Context, _ *gorm.DB, _ string) (int64, error) {
	return int64(len(f.orders)), nil
}

func (f *fakeStoreRepo) ListOrdersPage(_ context.Context, _ *gorm.DB, _ string, _, _ int) ([]domain.Order, error) {
	return f.orders, nil
}

func storeFixture() *fakeStoreRepo {
	return &fakeStoreRepo{
		products: map[string]domain.Product{
			"p-kit": {ID: "p-kit", Name: "Organic Seed Starter Kit", Price: 19.99},
			"p-mix": {ID: "p-mix", Name: "All-Purpose Potting Mix 20L", Price: 9.99},
		},
	}
}

func TestGetProduct_NotFoundMapped(t *testing.T) {
	svc := NewStoreService(storeTestDB(t), storeFixture())
	if _, err := svc.GetProduct(context.Background(), "missing"); !errors.Is(err, ErrProductNotFound) {
		t.Fatalf("err = %v; want ErrProductNotFound", err)
	}
}

func TestAddToCart_RequiresExistingProduct(t *testing.T) {
	f := storeFixture()
	svc := NewStoreService(storeTestDB(t), f)

	if _, err := svc.AddToCart(context.Background(), "u1", "missing", 1); !errors.Is(err, ErrProductNotFound) {
		t.Fatalf("err = %v; want ErrProductNotFound", err)
	}
	if len(f.cart) != 0 {
		t.Fatalf("cart must stay empty after failed add")
	}

	item, err := svc.AddToCart(context.Background(), "u1", "p-kit", 2)
	if err != nil {
		t.Fatalf("AddToCart: %v", err)
	}
	if item.Quantity != 2 || item.ProductID != "p-kit" {
		t.Fatalf("item = %+v", item)
	}
}

func TestRemoveFromCart_NotFoundMapped(t *testing.T) {
	svc := NewStoreService(storeTestDB(t), storeFixture())
	if err := svc.RemoveFromCart(context.Background(), "u1", "missing"); !errors.Is(err, ErrCartItemNotFound) {
		t.Fatalf("err = %v; want ErrCartItemNotFound", err)
	}
}

func TestAddToWishlist_RequiresExistingProduct(t *testing.T) {
	svc := NewStoreService(storeTestDB(t), storeFixture())
	if _, err := svc.AddToWishlist(context.Background(), "u1", "missing"); !errors.Is(err, ErrProductNotFound) {
		t.Fatalf("err = %v; want ErrProductNotFound", err)
	}
	if _, err := svc.AddToWishlist(context.Background(), "u1", "p-mix"); err != nil {
		t.Fatalf("AddToWishlist: %v", err)
	}
}

func TestRemoveFromWishlist_NotFoundMapped(t *testing.T) {
	svc := NewStoreService(storeTestDB(t), storeFixture())
	if err := svc.RemoveFromWishlist(context.Background(), "u1", "missing"); !errors.Is(err, ErrWishlistItemNotFound) {
		t.Fatalf("err = %v; want ErrWishlistItemNotFound", err)
	}
}

func TestPlaceOrder_EmptyCart(t *testing.T) {
	f := storeFixture()
	svc := NewStoreService(storeTestDB(t), f)

	if _, err := svc.PlaceOrder(context.Background(), "u1"); !errors.Is(err, ErrEmptyCart) {
		t.Fatalf("err = %v; want ErrEmptyCart", err)
	}
	if len(f.orders) != 0 {
		t.Fatalf("no order may be created for an empty cart")
	}
}

func TestPlaceOrder_SnapshotsCartAndClearsIt(t *testing.T) {
	f := storeFixture()
	f.cart = []domain.CartItem{
		{ProductID: "p-kit", Quantity: 2, Product: f.products["p-kit"]},
		{ProductID: "p-mix", Quantity: 1, Product: f.products["p-mix"]},
	}
	svc := NewStoreService(storeTestDB(t), f)

	order, err := svc.PlaceOrder(context.Background(), "u1")
	if err != nil {
		t.Fatalf("PlaceOrder: %v", err)
	}
	if order.Status != domain.OrderStatusPending {
		t.Fatalf("status = %q; want pending", order.Status)
	}
	if want := 2*19.99 + 9.99; math.Abs(order.Total-want) > 1e-9 {
		t.Fatalf("total = %v; want %v", order.Total, want)
	}
	if len(order.Items) != 2 {
		t.Fatalf("items = %+v", order.Items)
	}
	// Line items snapshot product name and price at purchase time.
	if order.Items[0].Name != "Organic Seed Starter Kit" || order.Items[0].UnitPrice != 19.99 || order.Items[0].Quantity != 2 {
		t.Fatalf("first line = %+v", order.Items[0])
	}
	if !f.cartCleared {
		t.Fatalf("cart must be cleared after order placement")
	}
}

func TestPlaceOrder_CreateFailureKeepsCart(t *testing.T) {
	f := storeFixture()
	f.cart = []domain.CartItem{{ProductID: "p-kit", Quantity: 1, Product: f.products["p-kit"]}}
	f.createFailed = errors.New("disk full")
	svc := NewStoreService(storeTestDB(t), f)

	if _, err := svc.PlaceOrder(context.Background(), "u1"); err == nil {
		t.Fatalf("expected create failure to propagate")
	}
	if f.cartCleared {
		t.Fatalf("cart must not be cleared when order creation fails")
	}
}

func TestGetOrder_NotFoundMapped(t *testing.T) {
	svc := NewStoreService(storeTestDB(t), storeFixture())
	if _, err := svc.GetOrder(context.Background(), "o1", "u1"); !errors.Is(err, ErrOrderNotFound) {
		t.Fatalf("err = %v; want ErrOrderNotFound", err)
	}
}

func TestListProducts_ZeroTotalShortCircuits(t *testing.T) {
	svc := NewStoreService(storeTestDB(t), &fakeStoreRepo{products: map[string]domain.Product{}})
	items, total, err := svc.ListProducts(context.Background(), repo.ProductQuery{}, 0, 0)
	if err != nil {
		t.Fatalf("ListProducts: %v", err)
	}
	if total != 0 || items == nil || len(items) != 0 {
		t.Fatalf("want empty page, got total=%d items=%v", total, items)
	}
}

func TestListOrders_Paging(t *testing.T) {
	f := storeFixture()
	f.orders = []domain.Order{{ID: "o1", UserID: "u1"}, {ID: "o2", UserID: "u1"}}
	svc := NewStoreService(storeTestDB(t), f)

	items, total, err := svc.ListOrders(context.Background(), "u1", 1, 10)
	if err != nil {
		t.Fatalf("ListOrders: %v", err)
	}
	if total != 2 || len(items) != 2 {
		t.Fatalf("total=%d items=%d", total, len(items))
	}
}
