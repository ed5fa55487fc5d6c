package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"summer-success/tracker/internal/dto"
	"summer-success/tracker/internal/service"
	"summer-success/tracker/pkg/response"
)

// BehaviorHandler behavior logging endpoints
type BehaviorHandler struct {
	behaviorSvc service.BehaviorService
}

// NewBehaviorHandler creates a BehaviorHandler
func NewBehaviorHandler(behaviorSvc service.BehaviorService) *BehaviorHandler {
	return &BehaviorHandler{behaviorSvc: behaviorSvc}
}

// ListBehaviors GET /api/v1/behaviors?child_id=&start=&end=
func (h *BehaviorHandler) ListBehaviors(c *gin.Context) {
	var req dto.BehaviorListRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BadRequest(c, 10001, "validation failed")
		return
	}

	list, err := h.behaviorSvc.List(c.Request.Context(), &req)
	if err != nil {
		response.InternalError(c)
		return
	}

	response.OK(c, gin.H{"list": list})
}

// CreateBehavior POST /api/v1/behaviors
func (h *BehaviorHandler) CreateBehavior(c *gin.Context) {
	var req dto.CreateBehaviorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "validation failed")
		return
	}

	behavior, err := h.behaviorSvc.Create(c.Request.Context(), &req)
	if err != nil {
		h.handleBehaviorError(c, err)
		return
	}

	response.Created(c, behavior)
}

// DeleteBehavior DELETE /api/v1/behaviors/:id
func (h *BehaviorHandler) DeleteBehavior(c *gin.Context) {
	if err := h.behaviorSvc.Delete(c.Request.Context(), c.Param("id")); err != nil {
		h.handleBehaviorError(c, err)
		return
	}

	response.OK(c, nil)
}

func (h *BehaviorHandler) handleBehaviorError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrBehaviorNotFound):
		response.NotFound(c, 22001, "behavior not found")
	case errors.Is(err, service.ErrInvalidBehaviorType):
		response.BadRequest(c, 22002, "behavior type is not in the catalogue")
	default:
		handleChildError(c, err)
	}
}
