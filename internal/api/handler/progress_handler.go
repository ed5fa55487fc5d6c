package handler

import (
	"github.com/gin-gonic/gin"

	"summer-success/tracker/internal/dto"
	"summer-success/tracker/internal/service"
	"summer-success/tracker/pkg/response"
)

// ProgressHandler daily progress endpoints
type ProgressHandler struct {
	progressSvc service.ProgressService
}

// NewProgressHandler creates a ProgressHandler
func NewProgressHandler(progressSvc service.ProgressService) *ProgressHandler {
	return &ProgressHandler{progressSvc: progressSvc}
}

// GetDaily one child's progress and reward for a day (default today)
// GET /api/v1/progress/daily?child_id=&date=
func (h *ProgressHandler) GetDaily(c *gin.Context) {
	var req dto.DailyProgressRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BadRequest(c, 10001, "validation failed")
		return
	}

	result, err := h.progressSvc.Daily(c.Request.Context(), req.ChildID, req.Date)
	if err != nil {
		handleChildError(c, err)
		return
	}

	response.OK(c, result)
}

// GetDashboard every child's progress for a day plus recent activity
// GET /api/v1/dashboard?date=
func (h *ProgressHandler) GetDashboard(c *gin.Context) {
	var req dto.DashboardRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BadRequest(c, 10001, "validation failed")
		return
	}

	result, err := h.progressSvc.Dashboard(c.Request.Context(), req.Date)
	if err != nil {
		handleChildError(c, err)
		return
	}

	response.OK(c, result)
}
