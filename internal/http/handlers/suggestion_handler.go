// Suggestion HTTP handlers.
//
// This file exposes the quiz-facing endpoints:
//   - POST /suggestions     (resolve quiz answers to a suggestion set)
//   - POST /plants/filter   (filter the plant catalog by keyword)
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/urbansprout/go-garden-backend/internal/catalog"
	"github.com/urbansprout/go-garden-backend/internal/domain"
	"github.com/urbansprout/go-garden-backend/internal/services"
)

//
// DTOs
//

// SuggestRequest is the JSON payload of a quiz submission. All five fields
// are required; values are normalized server-side.
type SuggestRequest struct {
	// Space describes the growing area: small, medium, or large.
	Space string `json:"space" binding:"required" example:"small"`
	// Sunlight describes exposure: full_sun, partial_sun, or shade.
	Sunlight string `json:"sunlight" binding:"required" example:"full_sun"`
	// Experience is the gardener's level: beginner, intermediate, or expert.
	Experience string `json:"experience" binding:"required" example:"beginner"`
	// Time is the care budget: low, medium, or high.
	Time string `json:"time" binding:"required" example:"low"`
	// Purpose is the growing goal, e.g. food or ornamental.
	Purpose string `json:"purpose" binding:"required" example:"food"`
}

// SuggestResponse wraps a resolved suggestion set.
type SuggestResponse struct {
	// Match reports how close the stored set was: exact, fallback, or default.
	Match string `json:"match" example:"exact"`
	// Message is the curator's note shown above the plant cards.
	Message string `json:"message"`
	// Plants are the suggested plants in display order.
	Plants []domain.SuggestionPlant `json:"plants"`
}

// FilterRequest is the JSON payload for keyword filtering. Keyword is
// required; the preference fields narrow the result further when set.
type FilterRequest struct {
	// Keyword selects the base plant set, e.g. quick_growing or indoor.
	Keyword string `json:"keyword" binding:"required" example:"quick_growing"`
	// Space keeps only plants fitting the given space when non-empty.
	Space string `json:"space,omitempty" example:"small"`
	// Sunlight keeps only plants suited to the exposure when non-empty.
	Sunlight string `json:"sunlight,omitempty" example:"partial_sun"`
	// MaxGrowthDays keeps only plants ready within the given days when set.
	MaxGrowthDays *int `json:"max_growth_days,omitempty" example:"60"`
	// IndoorOnly keeps only indoor-suitable plants when true.
	IndoorOnly *bool `json:"indoor_only,omitempty"`
}

// FilterResponse wraps a filtered plant list.
type FilterResponse struct {
	Plants []catalog.Plant `json:"plants"`
	Count  int             `json:"count"`
}

//
// Handlers
//

// Suggest godoc
// @ID          suggestPlants
// @Summary     Resolve quiz answers to plant suggestions
// @Description Maps the five growing-condition answers to a curated suggestion set.
// @Description Falls back to a partial match, then the default set, when the exact combination is not stored.
// @Tags        Suggestions
// @Accept      json
// @Produce     json
//
// @Param       body  body  handlers.SuggestRequest  true  "Quiz answers"
//
// @Success     200  {object}  handlers.SuggestResponse
// @Failure     400  {object}  handlers.ErrorResponse  "Missing quiz field"
// @Failure     404  {object}  handlers.ErrorResponse  "No suggestion set available"
// @Failure     500  {object}  handlers.ErrorResponse  "Internal error"
// @Router      /suggestions [post]
func (h *Handlers) Suggest(c *gin.Context) {
	var req SuggestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "space, sunlight, experience, time and purpose are required")
		return
	}

	sg, match, err := h.suggSvc.Resolve(c.Request.Context(), req.Space, req.Sunlight, req.Experience, req.Time, req.Purpose)
	if err != nil {
		switch err {
		case services.ErrMissingField:
			fail(c, http.StatusBadRequest, ErrCodeBadRequest, err.Error())
		case services.ErrCombinationNotFound:
			fail(c, http.StatusNotFound, ErrCodeNotFound, err.Error())
		default:
			fail(c, http.StatusInternalServerError, ErrCodeSuggestFailed, err.Error())
		}
		return
	}

	ok(c, http.StatusOK, SuggestResponse{
		Match:   match,
		Message: sg.RecommendationMessage,
		Plants:  sg.Plants,
	})
}

// FilterPlants godoc
// @ID          filterPlants
// @Summary     Filter the plant catalog by keyword
// @Description Returns catalog plants for a keyword such as quick_growing, salad_suitable,
// @Description small_space, indoor, or herbs, optionally narrowed by structured preferences.
// @Tags        Suggestions
// @Accept      json
// @Produce     json
//
// @Param       body  body  handlers.FilterRequest  true  "Filter criteria"
//
// @Success     200  {object}  handlers.FilterResponse
// @Failure     400  {object}  handlers.ErrorResponse  "Missing keyword"
// @Failure     500  {object}  handlers.ErrorResponse  "Internal error"
// @Router      /plants/filter [post]
func (h *Handlers) FilterPlants(c *gin.Context) {
	var req FilterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "keyword required")
		return
	}

	prefs := catalog.Preferences{
		Space:      req.Space,
		Sunlight:   req.Sunlight,
		IndoorOnly: req.IndoorOnly,
	}
	if req.MaxGrowthDays != nil {
		prefs.MaxGrowthDays = *req.MaxGrowthDays
	}

	plants, err := h.suggSvc.FilterPlants(c.Request.Context(), req.Keyword, prefs)
	if err != nil {
		switch err {
		case services.ErrMissingKeyword:
			fail(c, http.StatusBadRequest, ErrCodeBadRequest, err.Error())
		default:
			fail(c, http.StatusInternalServerError, ErrCodeFilterFailed, err.Error())
		}
		return
	}

	ok(c, http.StatusOK, FilterResponse{Plants: plants, Count: len(plants)})
}
