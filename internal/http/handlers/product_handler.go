// Product HTTP handlers.
//
// This file exposes the product browsing endpoints:
//   - GET /products       (list, paginated, filterable, weak ETag support)
//   - GET /products/{id}  (fetch one product)
package handlers

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/urbansprout/go-garden-backend/internal/domain"
	"github.com/urbansprout/go-garden-backend/internal/repo"
	"github.com/urbansprout/go-garden-backend/internal/services"
)

//
// DTOs
//

// ListProductsResponse wraps a page of products and pagination information.
type ListProductsResponse struct {
	Products   []domain.Product `json:"products"`
	Pagination Pagination       `json:"pagination"`
}

//
// Handlers
//

// ListProducts godoc
// @ID          listProducts
// @Summary     List store products (paginated)
// @Description Returns a page of products, optionally filtered by category and free-text
// @Description search. Supports weak ETag via If-None-Match and may return 304.
// @Tags        Products
// @Produce     json
//
// @Param       category       query   string  false "Filter by category"          example(kits)
// @Param       q              query   string  false "Free-text name search"
// @Param       page           query   int     false "Page number"                  minimum(1) default(1)
// @Param       page_size      query   int     false "Items per page"               minimum(1) maximum(100) default(20)
// @Param       If-None-Match  header  string  false "Return 304 if ETag matches"
//
// @Success     200  {object} handlers.ListProductsResponse
// @Header      200  {string} ETag "Weak ETag for current result"
// @Success     304  {string} string "Not Modified"
// @Failure     500  {object} handlers.ErrorResponse "Internal error"
// @Router      /products [get]
func (h *Handlers) ListProducts(c *gin.Context) {
	ctx := c.Request.Context()
	page, pageSize := clampPagination(c)
	q := repo.ProductQuery{
		Category: strings.TrimSpace(c.Query("category")),
		Search:   strings.TrimSpace(c.Query("q")),
	}

	// ETag pre-check (best effort).
	var db *gorm.DB
	if svc, okSvc := h.storeSvc.(*services.StoreService); okSvc {
		db = svc.DB
	}
	if db != nil {
		count, maxTS, err := repo.ProductsStats(ctx, db)
		if err == nil {
			var ts int64
			if maxTS != nil {
				ts = maxTS.Unix()
			}
			etag := fmt.Sprintf(`W/"products:%d:%d"`, count, ts)
			c.Header("ETag", etag)
			if inm := c.GetHeader("If-None-Match"); inm != "" && inm == etag {
				c.Status(http.StatusNotModified)
				return
			}
		}
	}

	items, total, err := h.storeSvc.ListProducts(ctx, q, page, pageSize)
	if err != nil {
		fail(c, http.StatusInternalServerError, ErrCodeListFailed, err.Error())
		return
	}

	ok(c, http.StatusOK, ListProductsResponse{
		Products:   items,
		Pagination: newPagination(page, pageSize, total),
	})
}

// GetProduct godoc
// @ID          getProduct
// @Summary     Fetch one product
// @Tags        Products
// @Produce     json
//
// @Param       id  path  string  true  "Product ID (UUID)"  format(uuid)
//
// @Success     200  {object}  domain.Product
// @Failure     400  {object}  handlers.ErrorResponse  "Bad request"
// @Failure     404  {object}  handlers.ErrorResponse  "Product not found"
// @Failure     500  {object}  handlers.ErrorResponse  "Internal error"
// @Router      /products/{id} [get]
func (h *Handlers) GetProduct(c *gin.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "product id must be a UUID")
		return
	}

	p, err := h.storeSvc.GetProduct(c.Request.Context(), id)
	if err != nil {
		switch err {
		case services.ErrProductNotFound:
			fail(c, http.StatusNotFound, ErrCodeNotFound, "product not found")
		default:
			fail(c, http.StatusInternalServerError, ErrCodeInternal, err.Error())
		}
		return
	}
	ok(c, http.StatusOK, p)
}
