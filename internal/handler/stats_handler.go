package handler

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/mkralj/heating-cms/internal/model"
	"github.com/mkralj/heating-cms/internal/service"
)

// StatsHandler serves the dashboard aggregation
type StatsHandler struct {
	statsService *service.StatsService
}

func NewStatsHandler(statsService *service.StatsService) *StatsHandler {
	return &StatsHandler{statsService: statsService}
}

// Dashboard godoc
// @Summary Dashboard statistics
// @Description Totals, per-status task counts, devices by type and the maintenance windows
// @Tags Statistics
// @Produce json
// @Security BearerAuth
// @Success 200 {object} model.DashboardStats
// @Router /statistics/dashboard [get]
func (h *StatsHandler) Dashboard(c *gin.Context) {
	stats, err := h.statsService.Dashboard()
	if err != nil {
		log.Printf("Failed to compute dashboard statistics: %v", err)
		c.JSON(http.StatusInternalServerError, model.ErrorResponse{Error: "Failed to fetch statistics"})
		return
	}
	c.JSON(http.StatusOK, stats)
}
