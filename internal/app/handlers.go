package app

import (
	"github.com/gin-gonic/gin"

	"github.com/mafqoodat/mafqoodat-backend/internal/handlers"
	"github.com/mafqoodat/mafqoodat-backend/internal/observability"
	"github.com/mafqoodat/mafqoodat-backend/internal/platform/logger"
	"github.com/mafqoodat/mafqoodat-backend/internal/server"
)

type Handlers struct {
	Catalog *handlers.CatalogHandler
	Search  *handlers.SearchHandler
	Chat    *handlers.ChatHandler
	Item    *handlers.ItemHandler
	Stats   *handlers.StatsHandler
}

func wireHandlers(log *logger.Logger, serviceset Services) Handlers {
	log.Info("Wiring handlers...")
	return Handlers{
		Catalog: handlers.NewCatalogHandler(log, serviceset.Catalog),
		Search:  handlers.NewSearchHandler(log, serviceset.Search),
		Chat:    handlers.NewChatHandler(log, serviceset.Chat),
		Item:    handlers.NewItemHandler(log, serviceset.Catalog),
		Stats:   handlers.NewStatsHandler(log, serviceset.Stats),
	}
}

func wireRouter(log *logger.Logger, cfg Config, handlerset Handlers) *gin.Engine {
	return server.NewRouter(server.RouterConfig{
		Log:            log,
		AllowedOrigins: cfg.AllowedOrigins,
		TracingEnabled: observability.Enabled(),
		CatalogHandler: handlerset.Catalog,
		SearchHandler:  handlerset.Search,
		ChatHandler:    handlerset.Chat,
		ItemHandler:    handlerset.Item,
		StatsHandler:   handlerset.Stats,
	})
}
