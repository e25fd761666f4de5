package handlers

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/mafqoodat/mafqoodat-backend/internal/platform/logger"
	"github.com/mafqoodat/mafqoodat-backend/internal/services"
)

type SearchHandler struct {
	log           *logger.Logger
	searchService services.SearchService
}

func NewSearchHandler(log *logger.Logger, searchService services.SearchService) *SearchHandler {
	return &SearchHandler{
		log:           log.With("handler", "SearchHandler"),
		searchService: searchService,
	}
}

// FormSearch handles the explicit search form: any combination of id
// filters and free text.
func (h *SearchHandler) FormSearch(c *gin.Context) {
	q := services.FormQuery{
		CategoryID:    optionalID(c, "categoryId"),
		SubcategoryID: optionalID(c, "subcategoryId"),
		CityID:        optionalID(c, "cityId"),
		Description:   strings.TrimSpace(firstQuery(c, "description", "q")),
	}
	results, err := h.searchService.FormSearch(c.Request.Context(), q)
	if err != nil {
		h.log.Error("FormSearch failed", "error", err)
		RespondAPIError(c, err)
		return
	}
	RespondOK(c, gin.H{"results": results, "count": len(results)})
}

type assistantSearchRequest struct {
	Query string `json:"query"`
}

// AssistantSearch handles the natural-language search box. The response
// carries the outcome classification so the front-end can phrase the
// follow-up.
func (h *SearchHandler) AssistantSearch(c *gin.Context) {
	var req assistantSearchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_input", err)
		return
	}
	outcome, err := h.searchService.AssistantSearch(c.Request.Context(), req.Query)
	if err != nil {
		h.log.Error("AssistantSearch failed", "error", err)
		RespondAPIError(c, err)
		return
	}
	RespondOK(c, gin.H{
		"type":     outcome.Kind.String(),
		"keywords": outcome.Intent.Keywords,
		"city":     outcome.Intent.City,
		"results":  outcome.Items,
		"count":    len(outcome.Items),
	})
}

func optionalID(c *gin.Context, key string) *int64 {
	raw := strings.TrimSpace(c.Query(key))
	if raw == "" {
		return nil
	}
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return nil
	}
	return &id
}

func firstQuery(c *gin.Context, keys ...string) string {
	for _, k := range keys {
		if v := c.Query(k); v != "" {
			return v
		}
	}
	return ""
}
