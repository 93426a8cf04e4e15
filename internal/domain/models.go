// Package domain defines the persistence models for suggestion sets, store
// products, carts, wishlists, and orders. These types are mapped with GORM
// and form the data layer of the garden backend.
package domain

import (
	"time"

	"gorm.io/gorm"
)

// Suggestion is a pre-built bundle of plant recommendations associated with
// exactly one combination key. The five categorical fields that produce the
// key are stored as discrete columns as well, so partial-key fallback queries
// can filter on individual dimensions.
//
// Fields:
//   - ID: stable UUID primary key (char(36)).
//   - CombinationKey: deterministic join of the five fields (unique).
//   - Space / Sunlight / Experience / Time / Purpose: the key dimensions.
//   - RecommendationMessage: human-readable blurb shown with the set.
//   - Active: soft on/off switch; only active sets are resolvable.
//   - Plants: denormalized plant entries belonging to this set.
type Suggestion struct {
	ID                    string            `json:"id"              gorm:"type:char(36);primaryKey"`
	CombinationKey        string            `json:"combination_key" gorm:"type:varchar(160);not null;uniqueIndex:ux_suggestion_key"`
	Space                 string            `json:"space"           gorm:"type:varchar(32);not null;index:idx_suggestion_partial,priority:1"`
	Sunlight              string            `json:"sunlight"        gorm:"type:varchar(32);not null;index:idx_suggestion_partial,priority:2"`
	Experience            string            `json:"experience"      gorm:"type:varchar(32);not null;index:idx_suggestion_partial,priority:3"`
	Time                  string            `json:"time"            gorm:"type:varchar(32);not null"`
	Purpose               string            `json:"purpose"         gorm:"type:varchar(32);not null"`
	RecommendationMessage string            `json:"recommendation_message" gorm:"type:text;not null"`
	Active                bool              `json:"active"          gorm:"not null;default:true"`
	CreatedAt             time.Time         `json:"created_at"`
	UpdatedAt             time.Time         `json:"updated_at"`
	DeletedAt             gorm.DeletedAt    `json:"-"               gorm:"index"`
	Plants                []SuggestionPlant `json:"plants"          gorm:"foreignKey:SuggestionID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
}

// TableName returns the database table name for Suggestion.
func (Suggestion) TableName() string { return "suggestions" }

// SuggestionPlant is one denormalized plant entry inside a suggestion set.
// Every attribute a client needs to render the card is kept on the row, so
// serving a suggestion never requires a catalog join.
type SuggestionPlant struct {
	ID           string         `json:"id"            gorm:"type:char(36);primaryKey"`
	SuggestionID string         `json:"-"             gorm:"type:char(36);not null;index:idx_suggestion_plants"`
	Name         string         `json:"name"          gorm:"type:varchar(120);not null"`
	Category     string         `json:"category"      gorm:"type:varchar(32);not null"`
	Description  string         `json:"description"   gorm:"type:text"`
	ImageURL     string         `json:"image_url"     gorm:"type:varchar(512)"`
	GrowingTime  string         `json:"growing_time"  gorm:"type:varchar(64)"`
	Sunlight     string         `json:"sunlight"      gorm:"type:varchar(32)"`
	Space        string         `json:"space"         gorm:"type:varchar(32)"`
	Difficulty   string         `json:"difficulty"    gorm:"type:varchar(32)"`
	Price        float64        `json:"price"`
	Position     int            `json:"-"             gorm:"not null;default:0"`
	CreatedAt    time.Time      `json:"-"`
	UpdatedAt    time.Time      `json:"-"`
	DeletedAt    gorm.DeletedAt `json:"-"             gorm:"index"`
}

// TableName returns the database table name for SuggestionPlant.
func (SuggestionPlant) TableName() string { return "suggestion_plants" }

// Product is a storefront item (seeds, starter kits, tools). Products with
// Recommended=true feed the chatbot's "you might also need" strip.
type Product struct {
	ID          string         `json:"id"          gorm:"type:char(36);primaryKey"`
	Name        string         `json:"name"        gorm:"type:varchar(160);not null;index"`
	Description string         `json:"description" gorm:"type:text"`
	Category    string         `json:"category"    gorm:"type:varchar(48);not null;index"`
	Price       float64        `json:"price"       gorm:"not null"`
	Stock       int            `json:"stock"       gorm:"not null;default:0"`
	ImageURL    string         `json:"image_url"   gorm:"type:varchar(512)"`
	Recommended bool           `json:"recommended" gorm:"not null;default:false;index"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `json:"-"           gorm:"index"`
}

// TableName returns the database table name for Product.
func (Product) TableName() string { return "products" }

// CartItem links a user to a product with a quantity. One row per
// (user, product) pair; adding the same product again bumps the quantity.
type CartItem struct {
	ID        string         `json:"id"         gorm:"type:char(36);primaryKey"`
	UserID    string         `json:"user_id"    gorm:"type:varchar(64);not null;uniqueIndex:ux_cart_user_product,priority:1"`
	ProductID string         `json:"product_id" gorm:"type:char(36);not null;uniqueIndex:ux_cart_user_product,priority:2"`
	Quantity  int            `json:"quantity"   gorm:"not null;default:1"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `json:"-"          gorm:"index"`

	Product Product `json:"product" gorm:"foreignKey:ProductID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
}

// TableName returns the database table name for CartItem.
func (CartItem) TableName() string { return "cart_items" }

// WishlistItem marks a product a user wants to remember. Unlike the cart it
// carries no quantity.
type WishlistItem struct {
	ID        string         `json:"id"         gorm:"type:char(36);primaryKey"`
	UserID    string         `json:"user_id"    gorm:"type:varchar(64);not null;uniqueIndex:ux_wishlist_user_product,priority:1"`
	ProductID string         `json:"product_id" gorm:"type:char(36);not null;uniqueIndex:ux_wishlist_user_product,priority:2"`
	CreatedAt time.Time      `json:"created_at"`
	DeletedAt gorm.DeletedAt `json:"-"          gorm:"index"`

	Product Product `json:"product" gorm:"foreignKey:ProductID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
}

// TableName returns the database table name for WishlistItem.
func (WishlistItem) TableName() string { return "wishlist_items" }

// Order statuses. Payment capture is handled by an external gateway, so a
// freshly placed order is always pending.
const (
	OrderStatusPending   = "pending"
	OrderStatusPaid      = "paid"
	OrderStatusCancelled = "cancelled"
)

// Order is a placed order with its captured line items and total. Line items
// snapshot name and unit price at purchase time so later product edits do not
// rewrite order history.
type Order struct {
	ID        string         `json:"id"         gorm:"type:char(36);primaryKey"`
	UserID    string         `json:"user_id"    gorm:"type:varchar(64);not null;index:idx_user_orders"`
	Status    string         `json:"status"     gorm:"type:varchar(16);not null;check:status IN ('pending','paid','cancelled')"`
	Total     float64        `json:"total"      gorm:"not null"`
	CreatedAt time.Time      `json:"created_at" gorm:"index:idx_user_orders,priority:2"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `json:"-"          gorm:"index"`
	Items     []OrderItem    `json:"items"      gorm:"foreignKey:OrderID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
}

// TableName returns the database table name for Order.
func (Order) TableName() string { return "orders" }

// OrderItem is one line of an order.
type OrderItem struct {
	ID        string         `json:"id"         gorm:"type:char(36);primaryKey"`
	OrderID   string         `json:"-"          gorm:"type:char(36);not null;index"`
	ProductID string         `json:"product_id" gorm:"type:char(36);not null"`
	Name      string         `json:"name"       gorm:"type:varchar(160);not null"`
	UnitPrice float64        `json:"unit_price" gorm:"not null"`
	Quantity  int            `json:"quantity"   gorm:"not null;default:1"`
	CreatedAt time.Time      `json:"-"`
	DeletedAt gorm.DeletedAt `json:"-"          gorm:"index"`
}

// TableName returns the database table name for OrderItem.
func (OrderItem) TableName() string { return "order_items" }
