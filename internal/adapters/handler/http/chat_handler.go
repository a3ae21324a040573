package http

import (
	"errors"
	"net/http"

	"github.com/foodtrack/foodtrack-server/internal/adapters/handler/http/middleware"
	"github.com/foodtrack/foodtrack-server/internal/core/domain"
	"github.com/foodtrack/foodtrack-server/internal/core/services"
	"github.com/gin-gonic/gin"
)

type ChatHandler struct {
	svc *services.ChatService
}

func NewChatHandler(svc *services.ChatService) *ChatHandler {
	return &ChatHandler{
		svc: svc,
	}
}

type chatRequest struct {
	Message string               `json:"message" binding:"required"`
	History []domain.ChatMessage `json:"history"`
}

func (h *ChatHandler) RegisterRoutes(router *gin.RouterGroup) {
	router.POST("/ai-chat", h.Chat)
}

func (h *ChatHandler) Chat(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "user context missing"})
		return
	}

	var req chatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	reply, err := h.svc.Reply(c.Request.Context(), userID, req.Message, req.History)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "user not found"})
			return
		}
		c.JSON(http.StatusBadGateway, gin.H{"error": "assistant unavailable"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"reply": reply})
}
