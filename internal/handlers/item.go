package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/mafqoodat/mafqoodat-backend/internal/platform/logger"
	"github.com/mafqoodat/mafqoodat-backend/internal/services"
)

type ItemHandler struct {
	log            *logger.Logger
	catalogService services.CatalogService
}

func NewItemHandler(log *logger.Logger, catalogService services.CatalogService) *ItemHandler {
	return &ItemHandler{
		log:            log.With("handler", "ItemHandler"),
		catalogService: catalogService,
	}
}

func (h *ItemHandler) GetByID(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		RespondError(c, http.StatusBadRequest, "invalid_input", err)
		return
	}
	item, err := h.catalogService.GetItem(c.Request.Context(), id)
	if err != nil {
		RespondAPIError(c, err)
		return
	}
	RespondOK(c, gin.H{"item": item})
}
