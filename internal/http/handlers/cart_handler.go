// Cart and wishlist HTTP handlers.
//
// This file exposes the per-user cart and wishlist endpoints:
//   - GET    /cart                     (list cart items)
//   - POST   /cart                     (add product to cart)
//   - DELETE /cart/{productId}         (remove product from cart)
//   - GET    /wishlist                 (list wishlist)
//   - POST   /wishlist                 (save product to wishlist)
//   - DELETE /wishlist/{productId}     (remove product from wishlist)
//
// The user is identified by the X-User-ID header (demo auth).
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/urbansprout/go-garden-backend/internal/domain"
	"github.com/urbansprout/go-garden-backend/internal/services"
)

//
// DTOs
//

// AddCartItemRequest is the JSON payload for adding a product to the cart.
type AddCartItemRequest struct {
	// ProductID identifies the product to add.
	ProductID string `json:"product_id" binding:"required" example:"141add05-4415-4938-b5a1-17e0d3171aff"`
	// Quantity defaults to 1 when omitted or invalid.
	Quantity int `json:"quantity,omitempty" example:"2"`
}

// AddWishlistItemRequest is the JSON payload for saving a product.
type AddWishlistItemRequest struct {
	ProductID string `json:"product_id" binding:"required" example:"141add05-4415-4938-b5a1-17e0d3171aff"`
}

// CartResponse wraps the user's cart with a running total.
type CartResponse struct {
	Items []domain.CartItem `json:"items"`
	Total float64           `json:"total"`
}

// WishlistResponse wraps the user's wishlist.
type WishlistResponse struct {
	Items []domain.WishlistItem `json:"items"`
}

//
// Handlers
//

// GetCart godoc
// @ID          getCart
// @Summary     List the user's cart
// @Tags        Cart
// @Produce     json
// @Param       X-User-ID  header  string  false "User ID (demo header)"  example(user123)
// @Success     200  {object}  handlers.CartResponse
// @Failure     500  {object}  handlers.ErrorResponse  "Internal error"
// @Router      /cart [get]
func (h *Handlers) GetCart(c *gin.Context) {
	items, err := h.storeSvc.Cart(c.Request.Context(), userID(c))
	if err != nil {
		fail(c, http.StatusInternalServerError, ErrCodeListFailed, err.Error())
		return
	}
	ok(c, http.StatusOK, CartResponse{Items: items, Total: cartTotal(items)})
}

// AddToCart godoc
// @ID          addToCart
// @Summary     Add a product to the cart
// @Description Adds quantity of the product; repeated adds accumulate quantity.
// @Tags        Cart
// @Accept      json
// @Produce     json
// @Param       X-User-ID  header  string  false "User ID (demo header)"  example(user123)
// @Param       body       body    handlers.AddCartItemRequest  true  "Cart payload"
// @Success     201  {object}  domain.CartItem
// @Failure     400  {object}  handlers.ErrorResponse  "Bad request"
// @Failure     404  {object}  handlers.ErrorResponse  "Product not found"
// @Failure     500  {object}  handlers.ErrorResponse  "Internal error"
// @Router      /cart [post]
func (h *Handlers) AddToCart(c *gin.Context) {
	var req AddCartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "product_id required")
		return
	}
	if _, err := uuid.Parse(req.ProductID); err != nil {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "product id must be a UUID")
		return
	}

	item, err := h.storeSvc.AddToCart(c.Request.Context(), userID(c), req.ProductID, req.Quantity)
	if err != nil {
		switch err {
		case services.ErrProductNotFound:
			fail(c, http.StatusNotFound, ErrCodeNotFound, "product not found")
		default:
			fail(c, http.StatusInternalServerError, ErrCodeInternal, err.Error())
		}
		return
	}
	ok(c, http.StatusCreated, item)
}

// RemoveFromCart godoc
// @ID          removeFromCart
// @Summary     Remove a product from the cart
// @Tags        Cart
// @Produce     json
// @Param       X-User-ID  header  string  false "User ID (demo header)"  example(user123)
// @Param       productId  path    string  true  "Product ID (UUID)"      format(uuid)
// @Success     204  {string}  string  "No Content"
// @Failure     400  {object}  handlers.ErrorResponse  "Bad request"
// @Failure     404  {object}  handlers.ErrorResponse  "Cart item not found"
// @Failure     500  {object}  handlers.ErrorResponse  "Internal error"
// @Router      /cart/{productId} [delete]
func (h *Handlers) RemoveFromCart(c *gin.Context) {
	productID := c.Param("productId")
	if _, err := uuid.Parse(productID); err != nil {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "product id must be a UUID")
		return
	}

	if err := h.storeSvc.RemoveFromCart(c.Request.Context(), userID(c), productID); err != nil {
		switch err {
		case services.ErrCartItemNotFound:
			fail(c, http.StatusNotFound, ErrCodeNotFound, "cart item not found")
		default:
			fail(c, http.StatusInternalServerError, ErrCodeInternal, err.Error())
		}
		return
	}
	noContent(c)
}

// GetWishlist godoc
// @ID          getWishlist
// @Summary     List the user's wishlist
// @Tags        Wishlist
// @Produce     json
// @Param       X-User-ID  header  string  false "User ID (demo header)"  example(user123)
// @Success     200  {object}  handlers.WishlistResponse
// @Failure     500  {object}  handlers.ErrorResponse  "Internal error"
// @Router      /wishlist [get]
func (h *Handlers) GetWishlist(c *gin.Context) {
	items, err := h.storeSvc.Wishlist(c.Request.Context(), userID(c))
	if err != nil {
		fail(c, http.StatusInternalServerError, ErrCodeListFailed, err.Error())
		return
	}
	ok(c, http.StatusOK, WishlistResponse{Items: items})
}

// AddToWishlist godoc
// @ID          addToWishlist
// @Summary     Save a product to the wishlist
// @Description Saving the same product twice is a no-op and returns the existing row.
// @Tags        Wishlist
// @Accept      json
// @Produce     json
// @Param       X-User-ID  header  string  false "User ID (demo header)"  example(user123)
// @Param       body       body    handlers.AddWishlistItemRequest  true  "Wishlist payload"
// @Success     201  {object}  domain.WishlistItem
// @Failure     400  {object}  handlers.ErrorResponse  "Bad request"
// @Failure     404  {object}  handlers.ErrorResponse  "Product not found"
// @Failure     500  {object}  handlers.ErrorResponse  "Internal error"
// @Router      /wishlist [post]
func (h *Handlers) AddToWishlist(c *gin.Context) {
	var req AddWishlistItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "product_id required")
		return
	}
	if _, err := uuid.Parse(req.ProductID); err != nil {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "product id must be a UUID")
		return
	}

	item, err := h.storeSvc.AddToWishlist(c.Request.Context(), userID(c), req.ProductID)
	if err != nil {
		switch err {
		case services.ErrProductNotFound:
			fail(c, http.StatusNotFound, ErrCodeNotFound, "product not found")
		default:
			fail(c, http.StatusInternalServerError, ErrCodeInternal, err.Error())
		}
		return
	}
	ok(c, http.StatusCreated, item)
}

// RemoveFromWishlist godoc
// @ID          removeFromWishlist
// @Summary     Remove a product from the wishlist
// @Tags        Wishlist
// @Produce     json
// @Param       X-User-ID  header  string  false "User ID (demo header)"  example(user123)
// @Param       productId  path    string  true  "Product ID (UUID)"      format(uuid)
// @Success     204  {string}  string  "No Content"
// @Failure     400  {object}  handlers.ErrorResponse  "Bad request"
// @Failure     404  {object}  handlers.ErrorResponse  "Wishlist item not found"
// @Failure     500  {object}  handlers.ErrorResponse  "Internal error"
// @Router      /wishlist/{productId} [delete]
func (h *Handlers) RemoveFromWishlist(c *gin.Context) {
	productID := c.Param("productId")
	if _, err := uuid.Parse(productID); err != nil {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "product id must be a UUID")
		return
	}

	if err := h.storeSvc.RemoveFromWishlist(c.Request.Context(), userID(c), productID); err != nil {
		switch err {
		case services.ErrWishlistItemNotFound:
			fail(c, http.StatusNotFound, ErrCodeNotFound, "wishlist item not found")
		default:
			fail(c, http.StatusInternalServerError, ErrCodeInternal, err.Error())
		}
		return
	}
	noContent(c)
}

// cartTotal sums line prices using each row's preloaded product.
func cartTotal(items []domain.CartItem) float64 {
	var total float64
	for _, it := range items {
		total += it.Product.Price * float64(it.Quantity)
	}
	return total
}
