package http

import (
	"errors"
	"net/http"

	"github.com/foodtrack/foodtrack-server/internal/core/services"
	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	svc *services.AuthService
}

func NewAuthHandler(svc *services.AuthService) *AuthHandler {
	return &AuthHandler{
		svc: svc,
	}
}

type telegramLoginRequest struct {
	InitData string `json:"init_data" binding:"required"`
}

func (h *AuthHandler) RegisterRoutes(router *gin.RouterGroup) {
	auth := router.Group("/auth")
	{
		auth.POST("/telegram", h.Login)
	}
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req telegramLoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	token, user, err := h.svc.Login(c.Request.Context(), req.InitData)
	if err != nil {
		if errors.Is(err, services.ErrInvalidInitData) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid telegram init data"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"token": token,
		"user":  user,
	})
}
