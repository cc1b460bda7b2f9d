package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/pta-api/internal/models"
	"github.com/noah-isme/pta-api/internal/service"
	appErrors "github.com/noah-isme/pta-api/pkg/errors"
	"github.com/noah-isme/pta-api/pkg/response"
)

type messageService interface {
	Send(ctx context.Context, req service.SendMessageRequest) (*models.Message, error)
	Conversation(ctx context.Context, userA, userB string) ([]models.Message, error)
}

// MessageHandler exposes direct messaging endpoints.
type MessageHandler struct {
	service messageService
}

// NewMessageHandler constructs the handler.
func NewMessageHandler(svc messageService) *MessageHandler {
	return &MessageHandler{service: svc}
}

// Send godoc
// @Summary Send a direct message
// @Tags Messages
// @Accept json
// @Produce json
// @Param payload body service.SendMessageRequest true "Message payload"
// @Success 201 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Router /messages [post]
func (h *MessageHandler) Send(c *gin.Context) {
	var req service.SendMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Validation(err, "invalid message payload"))
		return
	}
	if !ensureActor(c, req.SenderID) {
		return
	}

	message, err := h.service.Send(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, message)
}

// Conversation godoc
// @Summary Messages exchanged by two users, oldest first
// @Tags Messages
// @Produce json
// @Param user1 path string true "First user ID"
// @Param user2 path string true "Second user ID"
// @Success 200 {object} response.Envelope
// @Router /messages/{user1}/{user2} [get]
func (h *MessageHandler) Conversation(c *gin.Context) {
	userA, userB := c.Param("user1"), c.Param("user2")
	if claims := claimsFromContext(c); claims != nil && claims.UserID != userA && claims.UserID != userB {
		response.Error(c, appErrors.Clone(appErrors.ErrForbidden, "not a participant of this conversation"))
		return
	}

	messages, err := h.service.Conversation(c.Request.Context(), userA, userB)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, messages)
}
