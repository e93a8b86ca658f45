package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"contractiq/internal/service"
)

// ChatHandler handles per-contract Q&A endpoints.
type ChatHandler struct {
	chatService service.ChatService
}

// NewChatHandler creates a new ChatHandler.
func NewChatHandler(chatService service.ChatService) *ChatHandler {
	return &ChatHandler{chatService: chatService}
}

type askRequest struct {
	Question string `json:"question" binding:"required"`
}

// Ask handles POST /api/v1/contracts/:id/chat
func (h *ChatHandler) Ask(c *gin.Context) {
	userID, _, ok := extractAuthContext(c)
	if !ok {
		return
	}
	contractID, ok := parseIDParam(c)
	if !ok {
		return
	}

	var req askRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_INPUT", err.Error())
		return
	}

	answer, err := h.chatService.Ask(c.Request.Context(), contractID, userID, req.Question)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, answer)
}

// History handles GET /api/v1/contracts/:id/chat
func (h *ChatHandler) History(c *gin.Context) {
	contractID, ok := parseIDParam(c)
	if !ok {
		return
	}

	history, err := h.chatService.History(c.Request.Context(), contractID)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, gin.H{"messages": history})
}
