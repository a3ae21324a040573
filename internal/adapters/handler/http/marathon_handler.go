package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/foodtrack/foodtrack-server/internal/adapters/handler/http/middleware"
	"github.com/foodtrack/foodtrack-server/internal/core/domain"
	"github.com/foodtrack/foodtrack-server/internal/core/services"
	"github.com/gin-gonic/gin"
)

type MarathonHandler struct {
	svc *services.MarathonService
}

func NewMarathonHandler(svc *services.MarathonService) *MarathonHandler {
	return &MarathonHandler{
		svc: svc,
	}
}

type joinMarathonRequest struct {
	AccessCode string `json:"access_code" binding:"required"`
}

type saveAssessmentRequest struct {
	MarathonID int64           `json:"marathon_id" binding:"required"`
	Type       string          `json:"type" binding:"required"`
	Answers    json.RawMessage `json:"answers" binding:"required"`
}

func (h *MarathonHandler) RegisterRoutes(router *gin.RouterGroup) {
	marathon := router.Group("/marathon")
	{
		marathon.POST("/join", h.Join)
		marathon.GET("/:id/ladder", h.Ladder)
		marathon.POST("/save-assessment", h.SaveAssessment)
	}
}

func (h *MarathonHandler) Join(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "user context missing"})
		return
	}

	var req joinMarathonRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	marathon, err := h.svc.Join(c.Request.Context(), userID, req.AccessCode)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidAccessCode) {
			c.JSON(http.StatusForbidden, gin.H{"error": "invalid access code"})
			return
		}
		if errors.Is(err, domain.ErrAlreadyJoined) {
			c.JSON(http.StatusConflict, gin.H{"error": "already joined"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	c.JSON(http.StatusOK, marathon)
}

func (h *MarathonHandler) SaveAssessment(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "user context missing"})
		return
	}

	var req saveAssessmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	err := h.svc.SaveAssessment(c.Request.Context(), services.AssessmentInput{
		UserID:     userID,
		MarathonID: req.MarathonID,
		Type:       req.Type,
		Answers:    req.Answers,
	})
	if err != nil {
		if errors.Is(err, domain.ErrMarathonNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "marathon not found"})
			return
		}
		if errors.Is(err, domain.ErrNotParticipant) {
			c.JSON(http.StatusForbidden, gin.H{"error": "not a participant"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}

func (h *MarathonHandler) Ladder(c *gin.Context) {
	marathonID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid marathon id"})
		return
	}

	ladder, err := h.svc.Ladder(c.Request.Context(), marathonID)
	if err != nil {
		if errors.Is(err, domain.ErrMarathonNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "marathon not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	c.JSON(http.StatusOK, ladder)
}
