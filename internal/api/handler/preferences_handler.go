package handler

import (
	"github.com/gin-gonic/gin"

	"summer-success/tracker/internal/dto"
	"summer-success/tracker/internal/service"
	"summer-success/tracker/pkg/response"
)

// PreferencesHandler presentation preference endpoints
type PreferencesHandler struct {
	prefsSvc service.PreferencesService
}

// NewPreferencesHandler creates a PreferencesHandler
func NewPreferencesHandler(prefsSvc service.PreferencesService) *PreferencesHandler {
	return &PreferencesHandler{prefsSvc: prefsSvc}
}

// GetPreferences GET /api/v1/preferences
func (h *PreferencesHandler) GetPreferences(c *gin.Context) {
	prefs, err := h.prefsSvc.Get(c.Request.Context())
	if err != nil {
		response.InternalError(c)
		return
	}

	response.OK(c, prefs)
}

// UpdatePreferences PUT /api/v1/preferences
func (h *PreferencesHandler) UpdatePreferences(c *gin.Context) {
	var req dto.UpdatePreferencesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "validation failed")
		return
	}

	prefs, err := h.prefsSvc.Update(c.Request.Context(), &req)
	if err != nil {
		response.InternalError(c)
		return
	}

	response.OK(c, prefs)
}
