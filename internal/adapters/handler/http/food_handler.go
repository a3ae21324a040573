package http

import (
	"errors"
	"net/http"

	"github.com/foodtrack/foodtrack-server/internal/adapters/handler/http/middleware"
	"github.com/foodtrack/foodtrack-server/internal/core/domain"
	"github.com/foodtrack/foodtrack-server/internal/core/services"
	"github.com/gin-gonic/gin"
)

type FoodHandler struct {
	svc      *services.FoodService
	analysis *services.AnalysisService
}

func NewFoodHandler(svc *services.FoodService, analysis *services.AnalysisService) *FoodHandler {
	return &FoodHandler{
		svc:      svc,
		analysis: analysis,
	}
}

type logFoodRequest struct {
	Name     string  `json:"name" binding:"required"`
	Calories float64 `json:"calories"`
	Protein  float64 `json:"protein"`
	Fats     float64 `json:"fats"`
	Carbs    float64 `json:"carbs"`
	WeightG  float64 `json:"weight_g"`
	Grade    string  `json:"grade"`
	Source   string  `json:"source"`
}

type editFoodRequest struct {
	Name     string  `json:"name" binding:"required"`
	Calories float64 `json:"calories"`
	Protein  float64 `json:"protein"`
	Fats     float64 `json:"fats"`
	Carbs    float64 `json:"carbs"`
	WeightG  float64 `json:"weight_g"`
}

type analyzeFoodRequest struct {
	ImageURL    string `json:"image_url"`
	Description string `json:"description"`
}

func (h *FoodHandler) RegisterRoutes(router *gin.RouterGroup) {
	router.POST("/analyze-food", h.Analyze)

	food := router.Group("/log-food")
	{
		food.POST("", h.Log)
		food.PUT("/:id", h.Edit)
		food.DELETE("/:id", h.Delete)
	}
}

func (h *FoodHandler) Log(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "user context missing"})
		return
	}

	var req logFoodRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	input := services.LogFoodInput{
		UserID:   userID,
		Name:     req.Name,
		Calories: req.Calories,
		Protein:  req.Protein,
		Fats:     req.Fats,
		Carbs:    req.Carbs,
		WeightG:  req.WeightG,
		Grade:    req.Grade,
		Source:   req.Source,
	}

	entry, err := h.svc.Log(c.Request.Context(), input)
	if err != nil {
		if errors.Is(err, domain.ErrFoodNameEmpty) || errors.Is(err, domain.ErrInvalidGrade) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		if errors.Is(err, domain.ErrUserNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "user not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	c.JSON(http.StatusCreated, entry)
}

func (h *FoodHandler) Edit(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "user context missing"})
		return
	}

	id := c.Param("id")

	var req editFoodRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	input := services.EditFoodInput{
		ID:       id,
		UserID:   userID,
		Name:     req.Name,
		Calories: req.Calories,
		Protein:  req.Protein,
		Fats:     req.Fats,
		Carbs:    req.Carbs,
		WeightG:  req.WeightG,
	}

	entry, err := h.svc.Edit(c.Request.Context(), input)
	if err != nil {
		if errors.Is(err, domain.ErrFoodLogNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "food log entry not found"})
			return
		}
		if errors.Is(err, domain.ErrFoodNameEmpty) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	c.JSON(http.StatusOK, entry)
}

func (h *FoodHandler) Delete(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "user context missing"})
		return
	}

	id := c.Param("id")

	if err := h.svc.Delete(c.Request.Context(), id, userID); err != nil {
		if errors.Is(err, domain.ErrFoodLogNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "food log entry not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *FoodHandler) Analyze(c *gin.Context) {
	var req analyzeFoodRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if req.ImageURL == "" && req.Description == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "image_url or description required"})
		return
	}

	estimate, err := h.analysis.Analyze(c.Request.Context(), req.ImageURL, req.Description)
	if err != nil {
		if errors.Is(err, domain.ErrUnrecognizedFood) {
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "no food recognized"})
			return
		}
		c.JSON(http.StatusBadGateway, gin.H{"error": "analysis unavailable"})
		return
	}

	c.JSON(http.StatusOK, estimate)
}
