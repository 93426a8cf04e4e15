// Chat HTTP handler.
//
// This file exposes the conversational endpoint:
//   - POST /chat  (run one advice turn for a session)
//
// The session id keys conversation history. Clients that omit it get a fresh
// one back in the response and are expected to send it on the next turn.
package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/urbansprout/go-garden-backend/internal/catalog"
	"github.com/urbansprout/go-garden-backend/internal/domain"
	"github.com/urbansprout/go-garden-backend/internal/services"
)

//
// DTOs
//

// ChatRequest is the JSON payload for one chat turn.
type ChatRequest struct {
	// SessionID keys conversation history; omit to start a new session.
	SessionID string `json:"session_id,omitempty" example:"141add05-4415-4938-b5a1-17e0d3171aff"`
	// Message is the user's question. It must be non-empty.
	Message string `json:"message" binding:"required,min=1" example:"What should I grow on a shady balcony?"`
}

// ChatResponse is the JSON envelope for one chat turn.
type ChatResponse struct {
	// SessionID echoes (or newly assigns) the conversation session.
	SessionID string `json:"session_id"`
	// Reply is the assistant's answer text.
	Reply string `json:"reply"`
	// Source reports where the reply came from: model or fallback.
	Source string `json:"source" example:"model"`
	// Plants are catalog plants mentioned in the reply, present only for
	// recommendation requests.
	Plants []catalog.Plant `json:"plants,omitempty"`
	// Products are recommended store items, present only alongside Plants.
	Products []domain.Product `json:"products,omitempty"`
}

//
// Handlers
//

// Chat godoc
// @ID          chat
// @Summary     Ask the gardening assistant
// @Description Runs one conversation turn. Recent session history is included as model
// @Description context; recommendation requests additionally return plant cards and a
// @Description strip of recommended store products.
// @Tags        Chat
// @Accept      json
// @Produce     json
//
// @Param       body  body  handlers.ChatRequest  true  "Chat turn payload"
//
// @Success     200  {object}  handlers.ChatResponse
// @Failure     400  {object}  handlers.ErrorResponse  "Empty or oversized message"
// @Failure     500  {object}  handlers.ErrorResponse  "Internal error"
// @Router      /chat [post]
func (h *Handlers) Chat(c *gin.Context) {
	var req ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "message required")
		return
	}

	sessionID := strings.TrimSpace(req.SessionID)
	if sessionID == "" {
		sessionID = uuid.NewString()
	}

	res, err := h.adviceSvc.Chat(c.Request.Context(), sessionID, req.Message)
	if err != nil {
		switch err {
		case services.ErrEmptyMessage:
			fail(c, http.StatusBadRequest, ErrCodeBadRequest, "message required")
		case services.ErrMessageTooLong:
			fail(c, http.StatusBadRequest, ErrCodeBadRequest, err.Error())
		default:
			fail(c, http.StatusInternalServerError, ErrCodeChatFailed, err.Error())
		}
		return
	}

	ok(c, http.StatusOK, ChatResponse{
		SessionID: sessionID,
		Reply:     res.Reply,
		Source:    res.Source,
		Plants:    res.Plants,
		Products:  res.Products,
	})
}
