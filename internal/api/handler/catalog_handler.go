package handler

import (
	"github.com/gin-gonic/gin"

	"summer-success/tracker/internal/service"
	"summer-success/tracker/pkg/response"
)

// CatalogHandler static catalogue endpoint
type CatalogHandler struct {
	catalogSvc service.CatalogService
}

// NewCatalogHandler creates a CatalogHandler
func NewCatalogHandler(catalogSvc service.CatalogService) *CatalogHandler {
	return &CatalogHandler{catalogSvc: catalogSvc}
}

// GetCatalog categories, behavior types and daily goals
// GET /api/v1/catalog
func (h *CatalogHandler) GetCatalog(c *gin.Context) {
	response.OK(c, h.catalogSvc.Get())
}
