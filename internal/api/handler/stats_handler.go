package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"summer-success/tracker/internal/dto"
	"summer-success/tracker/internal/service"
	"summer-success/tracker/pkg/response"
)

// StatsHandler summary and analytics endpoints
type StatsHandler struct {
	statsSvc service.StatsService
}

// NewStatsHandler creates a StatsHandler
func NewStatsHandler(statsSvc service.StatsService) *StatsHandler {
	return &StatsHandler{statsSvc: statsSvc}
}

// GetPeriod weekly (Monday start) or monthly summary
// GET /api/v1/stats/period?child_id=&view=&date=
func (h *StatsHandler) GetPeriod(c *gin.Context) {
	var req dto.PeriodRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BadRequest(c, 10001, "validation failed")
		return
	}

	result, err := h.statsSvc.Period(c.Request.Context(), req.ChildID, req.View, req.Date)
	if err != nil {
		h.handleStatsError(c, err)
		return
	}

	response.OK(c, result)
}

// GetAnalytics GET /api/v1/stats/analytics?date=
func (h *StatsHandler) GetAnalytics(c *gin.Context) {
	var req dto.AnalyticsRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BadRequest(c, 10001, "validation failed")
		return
	}

	result, err := h.statsSvc.Analytics(c.Request.Context(), req.Date)
	if err != nil {
		h.handleStatsError(c, err)
		return
	}

	response.OK(c, result)
}

func (h *StatsHandler) handleStatsError(c *gin.Context, err error) {
	if errors.Is(err, service.ErrInvalidView) {
		response.BadRequest(c, 10001, "view must be weekly or monthly")
		return
	}
	handleChildError(c, err)
}
