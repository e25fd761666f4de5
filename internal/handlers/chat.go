package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mafqoodat/mafqoodat-backend/internal/platform/logger"
	"github.com/mafqoodat/mafqoodat-backend/internal/services"
)

type ChatHandler struct {
	log         *logger.Logger
	chatService services.ChatService
}

func NewChatHandler(log *logger.Logger, chatService services.ChatService) *ChatHandler {
	return &ChatHandler{
		log:         log.With("handler", "ChatHandler"),
		chatService: chatService,
	}
}

type chatRequest struct {
	Messages []services.ChatMessage `json:"messages"`
}

func (h *ChatHandler) Turn(c *gin.Context) {
	var req chatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_input", err)
		return
	}
	if len(req.Messages) == 0 {
		RespondError(c, http.StatusBadRequest, "invalid_input", nil)
		return
	}
	result, err := h.chatService.Turn(c.Request.Context(), req.Messages)
	if err != nil {
		h.log.Error("Turn failed", "error", err)
		RespondAPIError(c, err)
		return
	}
	RespondOK(c, result)
}
