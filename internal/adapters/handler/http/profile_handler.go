package http

import (
	"errors"
	"net/http"
	"time"

	"github.com/foodtrack/foodtrack-server/internal/adapters/handler/http/middleware"
	"github.com/foodtrack/foodtrack-server/internal/core/domain"
	"github.com/foodtrack/foodtrack-server/internal/core/services"
	"github.com/gin-gonic/gin"
)

type ProfileHandler struct {
	svc *services.ProfileService
}

func NewProfileHandler(svc *services.ProfileService) *ProfileHandler {
	return &ProfileHandler{
		svc: svc,
	}
}

type syncUserRequest struct {
	FirstName      string  `json:"first_name"`
	Username       string  `json:"username"`
	AvatarURL      string  `json:"avatar_url"`
	Gender         string  `json:"gender"`
	BirthDate      string  `json:"birth_date"`
	Age            int     `json:"age"`
	HeightCM       float64 `json:"height"`
	WeightKG       float64 `json:"weight"`
	TargetWeightKG float64 `json:"target_weight"`
	ActivityLevel  string  `json:"activity_level"`
	TargetGoal     string  `json:"goal"`
	WaterGoalML    int     `json:"water_goal"`
}

func (h *ProfileHandler) RegisterRoutes(router *gin.RouterGroup) {
	router.POST("/sync-user", h.Sync)
}

func (h *ProfileHandler) Sync(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "user context missing"})
		return
	}

	var req syncUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	input := services.SyncProfileInput{
		TelegramID:     userID,
		FirstName:      req.FirstName,
		Username:       req.Username,
		AvatarURL:      req.AvatarURL,
		Gender:         req.Gender,
		Age:            req.Age,
		HeightCM:       req.HeightCM,
		WeightKG:       req.WeightKG,
		TargetWeightKG: req.TargetWeightKG,
		ActivityLevel:  req.ActivityLevel,
		TargetGoal:     req.TargetGoal,
		WaterGoalML:    req.WaterGoalML,
	}

	if req.BirthDate != "" {
		birthDate, err := time.Parse(domain.DayKeyLayout, req.BirthDate)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid birth_date format, use YYYY-MM-DD"})
			return
		}
		input.BirthDate = &birthDate
	}

	user, err := h.svc.Sync(c.Request.Context(), input)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidTelegramID) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	c.JSON(http.StatusOK, user)
}
