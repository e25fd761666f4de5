package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/mafqoodat/mafqoodat-backend/internal/platform/logger"
	"github.com/mafqoodat/mafqoodat-backend/internal/services"
)

type CatalogHandler struct {
	log            *logger.Logger
	catalogService services.CatalogService
}

func NewCatalogHandler(log *logger.Logger, catalogService services.CatalogService) *CatalogHandler {
	return &CatalogHandler{
		log:            log.With("handler", "CatalogHandler"),
		catalogService: catalogService,
	}
}

func (h *CatalogHandler) ListCategories(c *gin.Context) {
	categories, err := h.catalogService.ListCategories(c.Request.Context())
	if err != nil {
		h.log.Error("ListCategories failed", "error", err)
		RespondAPIError(c, err)
		return
	}
	RespondOK(c, gin.H{"categories": categories})
}

func (h *CatalogHandler) ListCities(c *gin.Context) {
	cities, err := h.catalogService.ListCities(c.Request.Context())
	if err != nil {
		h.log.Error("ListCities failed", "error", err)
		RespondAPIError(c, err)
		return
	}
	RespondOK(c, gin.H{"cities": cities})
}

func (h *CatalogHandler) ListSubcategories(c *gin.Context) {
	raw := c.Query("categoryId")
	categoryID, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_input", err)
		return
	}
	subcategories, err := h.catalogService.ListSubcategories(c.Request.Context(), categoryID)
	if err != nil {
		h.log.Error("ListSubcategories failed", "error", err, "category_id", categoryID)
		RespondAPIError(c, err)
		return
	}
	RespondOK(c, gin.H{"subcategories": subcategories})
}

// SelfTest runs the limited connectivity probe against the catalog store.
func (h *CatalogHandler) SelfTest(c *gin.Context) {
	rows, err := h.catalogService.SelfTest(c.Request.Context())
	if err != nil {
		h.log.Error("SelfTest failed", "error", err)
		RespondAPIError(c, err)
		return
	}
	RespondOK(c, gin.H{"ok": true, "sample": rows})
}
