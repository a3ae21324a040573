package http

import (
	"errors"
	"net/http"

	"github.com/foodtrack/foodtrack-server/internal/adapters/handler/http/middleware"
	"github.com/foodtrack/foodtrack-server/internal/core/domain"
	"github.com/foodtrack/foodtrack-server/internal/core/services"
	"github.com/gin-gonic/gin"
)

type MeasurementHandler struct {
	svc *services.MeasurementService
}

func NewMeasurementHandler(svc *services.MeasurementService) *MeasurementHandler {
	return &MeasurementHandler{
		svc: svc,
	}
}

type addMeasurementRequest struct {
	WeightKG float64 `json:"weight" binding:"required"`
	ArmL     float64 `json:"arm_l"`
	ArmR     float64 `json:"arm_r"`
	Chest    float64 `json:"chest"`
	Waist    float64 `json:"waist"`
	Hips     float64 `json:"hips"`
	LegL     float64 `json:"leg_l"`
	LegR     float64 `json:"leg_r"`
}

func (h *MeasurementHandler) RegisterRoutes(router *gin.RouterGroup) {
	measurements := router.Group("/measurements")
	{
		measurements.POST("", h.Add)
		measurements.GET("", h.History)
	}
}

func (h *MeasurementHandler) Add(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "user context missing"})
		return
	}

	var req addMeasurementRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	m, err := h.svc.Add(c.Request.Context(), services.MeasurementInput{
		UserID:   userID,
		WeightKG: req.WeightKG,
		ArmL:     req.ArmL,
		ArmR:     req.ArmR,
		Chest:    req.Chest,
		Waist:    req.Waist,
		Hips:     req.Hips,
		LegL:     req.LegL,
		LegR:     req.LegR,
	})
	if err != nil {
		if errors.Is(err, domain.ErrWeightRequired) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	c.JSON(http.StatusCreated, m)
}

func (h *MeasurementHandler) History(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "user context missing"})
		return
	}

	list, err := h.svc.History(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	c.JSON(http.StatusOK, list)
}
