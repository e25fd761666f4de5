package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/mafqoodat/mafqoodat-backend/internal/platform/logger"
	"github.com/mafqoodat/mafqoodat-backend/internal/services"
)

type StatsHandler struct {
	log          *logger.Logger
	statsService services.StatsService
}

func NewStatsHandler(log *logger.Logger, statsService services.StatsService) *StatsHandler {
	return &StatsHandler{
		log:          log.With("handler", "StatsHandler"),
		statsService: statsService,
	}
}

func (h *StatsHandler) Dashboard(c *gin.Context) {
	stats, err := h.statsService.Dashboard(c.Request.Context())
	if err != nil {
		h.log.Error("Dashboard failed", "error", err)
		RespondAPIError(c, err)
		return
	}
	RespondOK(c, stats)
}
