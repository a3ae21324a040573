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

type StatsHandler struct {
	stats      *services.StatsService
	discipline *services.DisciplineService
}

func NewStatsHandler(stats *services.StatsService, discipline *services.DisciplineService) *StatsHandler {
	return &StatsHandler{
		stats:      stats,
		discipline: discipline,
	}
}

type checkinRequest struct {
	Date               string `json:"date"`
	DidLiveWorkout     *bool  `json:"did_live_workout"`
	DidRecordedWorkout *bool  `json:"did_recorded_workout"`
}

func (h *StatsHandler) RegisterRoutes(router *gin.RouterGroup) {
	router.GET("/daily-stats", h.DailyStats)
	router.GET("/charts-data", h.ChartsData)
	router.GET("/history-day", h.HistoryDay)
	router.GET("/discipline-index", h.DisciplineIndex)
	router.POST("/daily-checkins", h.Checkin)
}

func (h *StatsHandler) DailyStats(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "user context missing"})
		return
	}

	stats, err := h.stats.DailyStats(c.Request.Context(), userID, time.Now())
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "user not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	c.JSON(http.StatusOK, stats)
}

func (h *StatsHandler) ChartsData(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "user context missing"})
		return
	}

	charts, err := h.stats.ChartsData(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	c.JSON(http.StatusOK, charts)
}

func (h *StatsHandler) HistoryDay(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "user context missing"})
		return
	}

	dateStr := c.Query("date")
	if dateStr == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "date query parameter required"})
		return
	}

	date, err := time.ParseInLocation(domain.DayKeyLayout, dateStr, time.Local)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid date format, use YYYY-MM-DD"})
		return
	}

	day, err := h.stats.HistoryDay(c.Request.Context(), userID, date)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "user not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	c.JSON(http.StatusOK, day)
}

func (h *StatsHandler) DisciplineIndex(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "user context missing"})
		return
	}

	index, err := h.discipline.GetIndex(c.Request.Context(), userID, time.Now())
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "user not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	c.JSON(http.StatusOK, index)
}

func (h *StatsHandler) Checkin(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "user context missing"})
		return
	}

	var req checkinRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	checklist, err := h.discipline.SetCheckin(c.Request.Context(), services.CheckinInput{
		UserID:             userID,
		Date:               req.Date,
		DidLiveWorkout:     req.DidLiveWorkout,
		DidRecordedWorkout: req.DidRecordedWorkout,
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	c.JSON(http.StatusOK, checklist)
}
