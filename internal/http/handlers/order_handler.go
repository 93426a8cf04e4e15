// Order HTTP handlers.
//
// This file exposes the checkout endpoints:
//   - POST /orders       (place an order from the cart)
//   - GET  /orders       (list the user's orders, paginated)
//   - GET  /orders/{id}  (fetch one order)
//
// Idempotency:
// If the client supplies an Idempotency-Key header and a previous successful
// order exists for (user, "orders", key), the handler returns that recorded
// order and sets `Idempotency-Replayed: true`. This makes checkout retries
// safe against double charging.
package handlers

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/urbansprout/go-garden-backend/internal/domain"
	"github.com/urbansprout/go-garden-backend/internal/repo"
	"github.com/urbansprout/go-garden-backend/internal/services"
)

// idempotencyScopeOrders partitions idempotency records for checkout.
const idempotencyScopeOrders = "orders"

//
// DTOs
//

// ListOrdersResponse wraps a page of orders and pagination information.
type ListOrdersResponse struct {
	Orders     []domain.Order `json:"orders"`
	Pagination Pagination     `json:"pagination"`
}

//
// Handlers
//

// PlaceOrder godoc
// @ID          placeOrder
// @Summary     Place an order from the cart
// @Description Turns the current cart into a pending order and clears the cart.
// @Description Supports idempotency via the Idempotency-Key header (same key, same order).
// @Tags        Orders
// @Produce     json
//
// @Param       X-User-ID        header  string  false "User ID (demo header)"  example(user123)
// @Param       Idempotency-Key  header  string  false "Idempotency key for safe retries (UUID recommended)"
//
// @Success     201  {object}  domain.Order
// @Failure     400  {object}  handlers.ErrorResponse  "Empty cart"
// @Failure     500  {object}  handlers.ErrorResponse  "Internal error"
// @Router      /orders [post]
func (h *Handlers) PlaceOrder(c *gin.Context) {
	ctx := c.Request.Context()
	currentUser := userID(c)

	// Idempotency (replay path): return the recorded order for a seen key.
	idemKey := strings.TrimSpace(c.GetHeader("Idempotency-Key"))
	if idemKey != "" {
		if svc, okSvc := h.storeSvc.(*services.StoreService); okSvc && svc.DB != nil {
			if rec, err := repo.GetIdempotency(ctx, svc.DB, currentUser, idempotencyScopeOrders, idemKey, time.Now().UTC()); err == nil && rec != nil {
				if prev, err2 := h.storeSvc.GetOrder(ctx, rec.ResourceID, currentUser); err2 == nil {
					c.Header("Idempotency-Replayed", "true")
					ok(c, http.StatusCreated, prev)
					return
				}
			}
		}
	}

	order, err := h.storeSvc.PlaceOrder(ctx, currentUser)
	if err != nil {
		switch err {
		case services.ErrEmptyCart:
			fail(c, http.StatusBadRequest, ErrCodeBadRequest, "cart is empty")
		default:
			fail(c, http.StatusInternalServerError, ErrCodeOrderFailed, err.Error())
		}
		return
	}

	// Idempotency (store path): best effort.
	if idemKey != "" {
		if svc, okSvc := h.storeSvc.(*services.StoreService); okSvc && svc.DB != nil {
			ttl := 24 * time.Hour
			_, _ = repo.CreateIdempotency(ctx, svc.DB, currentUser, idempotencyScopeOrders, idemKey, order.ID, http.StatusCreated, ttl)
		}
	}

	ok(c, http.StatusCreated, order)
}

// ListOrders godoc
// @ID          listOrders
// @Summary     List the user's orders (paginated)
// @Tags        Orders
// @Produce     json
//
// @Param       X-User-ID  header  string  false "User ID (demo header)"  example(user123)
// @Param       page       query   int     false "Page number"            minimum(1) default(1)
// @Param       page_size  query   int     false "Items per page"         minimum(1) maximum(100) default(20)
//
// @Success     200  {object}  handlers.ListOrdersResponse
// @Failure     500  {object}  handlers.ErrorResponse  "Internal error"
// @Router      /orders [get]
func (h *Handlers) ListOrders(c *gin.Context) {
	page, pageSize := clampPagination(c)

	items, total, err := h.storeSvc.ListOrders(c.Request.Context(), userID(c), page, pageSize)
	if err != nil {
		fail(c, http.StatusInternalServerError, ErrCodeListFailed, err.Error())
		return
	}
	ok(c, http.StatusOK, ListOrdersResponse{
		Orders:     items,
		Pagination: newPagination(page, pageSize, total),
	})
}

// GetOrder godoc
// @ID          getOrder
// @Summary     Fetch one order
// @Tags        Orders
// @Produce     json
//
// @Param       X-User-ID  header  string  false "User ID (demo header)"  example(user123)
// @Param       id         path    string  true  "Order ID (UUID)"        format(uuid)
//
// @Success     200  {object}  domain.Order
// @Failure     400  {object}  handlers.ErrorResponse  "Bad request"
// @Failure     404  {object}  handlers.ErrorResponse  "Order not found"
// @Failure     500  {object}  handlers.ErrorResponse  "Internal error"
// @Router      /orders/{id} [get]
func (h *Handlers) GetOrder(c *gin.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "order id must be a UUID")
		return
	}

	o, err := h.storeSvc.GetOrder(c.Request.Context(), id, userID(c))
	if err != nil {
		switch err {
		case services.ErrOrderNotFound:
			fail(c, http.StatusNotFound, ErrCodeNotFound, "order not found")
		default:
			fail(c, http.StatusInternalServerError, ErrCodeInternal, err.Error())
		}
		return
	}
	ok(c, http.StatusOK, o)
}
