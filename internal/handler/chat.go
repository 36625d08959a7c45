package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Neeraj-Gupta12/PropBot/internal/model"
	"github.com/Neeraj-Gupta12/PropBot/internal/nlp"
	"github.com/Neeraj-Gupta12/PropBot/internal/service"
)

// ChatHandler handles chatbot HTTP requests
type ChatHandler struct {
	chat *service.ChatService
}

// NewChatHandler creates a new chat handler
func NewChatHandler(chat *service.ChatService) *ChatHandler {
	return &ChatHandler{chat: chat}
}

// Chat handles POST /api/chatbot/chat. The message comes from the JSON body,
// with a query-param fallback for simple clients.
func (h *ChatHandler) Chat(c *gin.Context) {
	var req model.ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Message == "" {
		req.Message = c.Query("message")
	}

	resp, err := h.chat.Respond(c.Request.Context(), req.Message)
	if err != nil {
		if errors.Is(err, nlp.ErrInvalidInput) {
			c.JSON(http.StatusBadRequest, model.ChatResponse{
				Message:    "Message is required.",
				Properties: []model.Property{},
			})
			return
		}
		c.JSON(http.StatusInternalServerError, model.ErrorResponse{Message: err.Error()})
		return
	}

	c.JSON(http.StatusOK, resp)
}
