package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"summer-success/tracker/internal/dto"
	"summer-success/tracker/internal/service"
	"summer-success/tracker/pkg/response"
)

// ChildHandler child endpoints
type ChildHandler struct {
	childSvc service.ChildService
}

// NewChildHandler creates a ChildHandler
func NewChildHandler(childSvc service.ChildService) *ChildHandler {
	return &ChildHandler{childSvc: childSvc}
}

// ListChildren lists children by name
// GET /api/v1/children
func (h *ChildHandler) ListChildren(c *gin.Context) {
	children, err := h.childSvc.List(c.Request.Context())
	if err != nil {
		response.InternalError(c)
		return
	}

	response.OK(c, gin.H{"list": children})
}

// GetChild GET /api/v1/children/:id
func (h *ChildHandler) GetChild(c *gin.Context) {
	child, err := h.childSvc.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		handleChildError(c, err)
		return
	}

	response.OK(c, child)
}

// CreateChild POST /api/v1/children
func (h *ChildHandler) CreateChild(c *gin.Context) {
	var req dto.CreateChildRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "validation failed")
		return
	}

	child, err := h.childSvc.Create(c.Request.Context(), &req)
	if err != nil {
		handleChildError(c, err)
		return
	}

	response.Created(c, child)
}

// handleChildError maps child errors; also used wherever a child is looked up
func handleChildError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrChildNotFound):
		response.NotFound(c, 20001, "child not found")
	case errors.Is(err, service.ErrChildExists):
		response.Conflict(c, 20002, "a child with this name already exists")
	case errors.Is(err, service.ErrChildNameRequired):
		response.BadRequest(c, 10001, "child name is required")
	case errors.Is(err, service.ErrInvalidDate):
		response.BadRequest(c, 10001, "date must be YYYY-MM-DD")
	default:
		response.InternalError(c)
	}
}
