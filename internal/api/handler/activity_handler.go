package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"summer-success/tracker/internal/dto"
	"summer-success/tracker/internal/service"
	pkgerrors "summer-success/tracker/pkg/errors"
	"summer-success/tracker/pkg/response"
)

// ActivityHandler activity logging endpoints
type ActivityHandler struct {
	activitySvc service.ActivityService
}

// NewActivityHandler creates an ActivityHandler
func NewActivityHandler(activitySvc service.ActivityService) *ActivityHandler {
	return &ActivityHandler{activitySvc: activitySvc}
}

// ListActivities newest first, paginated
// GET /api/v1/activities?child_id=&start=&end=&type=&page=&page_size=
func (h *ActivityHandler) ListActivities(c *gin.Context) {
	var req dto.ActivityListRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BadRequest(c, 10001, "validation failed")
		return
	}

	list, total, err := h.activitySvc.List(c.Request.Context(), &req)
	if err != nil {
		response.InternalError(c)
		return
	}

	response.OKPage(c, list, total, req.GetPage(), req.GetPageSize())
}

// GetActivity GET /api/v1/activities/:id
func (h *ActivityHandler) GetActivity(c *gin.Context) {
	activity, err := h.activitySvc.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.handleActivityError(c, err)
		return
	}

	response.OK(c, activity)
}

// CreateActivity logs a completed activity
// POST /api/v1/activities
func (h *ActivityHandler) CreateActivity(c *gin.Context) {
	var req dto.CreateActivityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "validation failed")
		return
	}

	activity, err := h.activitySvc.Create(c.Request.Context(), &req)
	if err != nil {
		h.handleActivityError(c, err)
		return
	}

	response.Created(c, activity)
}

// UpdateActivity edits category, description or duration
// PUT /api/v1/activities/:id
func (h *ActivityHandler) UpdateActivity(c *gin.Context) {
	var req dto.UpdateActivityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "validation failed")
		return
	}

	activity, err := h.activitySvc.Update(c.Request.Context(), c.Param("id"), &req)
	if err != nil {
		h.handleActivityError(c, err)
		return
	}

	response.OK(c, activity)
}

// ToggleCompleted PATCH /api/v1/activities/:id/completed
func (h *ActivityHandler) ToggleCompleted(c *gin.Context) {
	var req dto.ToggleCompletedRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "validation failed")
		return
	}

	activity, err := h.activitySvc.ToggleCompleted(c.Request.Context(), c.Param("id"), req.Version)
	if err != nil {
		h.handleActivityError(c, err)
		return
	}

	response.OK(c, activity)
}

// DeleteActivity DELETE /api/v1/activities/:id
func (h *ActivityHandler) DeleteActivity(c *gin.Context) {
	if err := h.activitySvc.Delete(c.Request.Context(), c.Param("id")); err != nil {
		h.handleActivityError(c, err)
		return
	}

	response.OK(c, nil)
}

func (h *ActivityHandler) handleActivityError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrActivityNotFound):
		response.NotFound(c, 21001, "activity not found")
	case errors.Is(err, service.ErrInvalidCategory):
		response.BadRequest(c, 21002, "category is not valid for this activity type")
	case errors.Is(err, service.ErrDurationRequired):
		response.BadRequest(c, 21003, "duration in minutes is required for education and skill activities")
	case errors.Is(err, service.ErrVacationDay):
		response.Unprocessable(c, 21004, "activities cannot be logged on a vacation day")
	case errors.Is(err, pkgerrors.ErrOptimisticLock):
		response.Conflict(c, 21005, "activity was changed by someone else, reload and retry")
	case errors.Is(err, service.ErrInvalidActivityType),
		errors.Is(err, service.ErrDescriptionRequired):
		response.BadRequest(c, 10001, err.Error())
	default:
		handleChildError(c, err)
	}
}
