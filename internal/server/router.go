package server

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"

	"github.com/mafqoodat/mafqoodat-backend/internal/handlers"
	"github.com/mafqoodat/mafqoodat-backend/internal/middleware"
	"github.com/mafqoodat/mafqoodat-backend/internal/platform/logger"
)

type RouterConfig struct {
	Log            *logger.Logger
	AllowedOrigins []string
	TracingEnabled bool
	CatalogHandler *handlers.CatalogHandler
	SearchHandler  *handlers.SearchHandler
	ChatHandler    *handlers.ChatHandler
	ItemHandler    *handlers.ItemHandler
	StatsHandler   *handlers.StatsHandler
}

func NewRouter(cfg RouterConfig) *gin.Engine {
	router := gin.Default()

	if cfg.TracingEnabled {
		router.Use(otelgin.Middleware("mafqoodat-backend"))
	}
	router.Use(middleware.RequestID(cfg.Log))

	origins := cfg.AllowedOrigins
	if len(origins) == 0 {
		origins = []string{
			"http://localhost:3000",
			"https://mafqoodat.ma",
		}
	}
	router.Use(cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:     []string{"Content-Type", "X-Request-ID", "X-Requested-With"},
		AllowCredentials: true,
	}))

	router.GET("/healthcheck", handlers.HealthCheck)

	api := router.Group("/api")
	{
		api.GET("/categories", cfg.CatalogHandler.ListCategories)
		api.GET("/cities", cfg.CatalogHandler.ListCities)
		api.GET("/subcategories", cfg.CatalogHandler.ListSubcategories)
		api.GET("/search", cfg.SearchHandler.FormSearch)
		api.POST("/search", cfg.SearchHandler.AssistantSearch)
		api.GET("/search/selftest", cfg.CatalogHandler.SelfTest)
		api.POST("/chat", cfg.ChatHandler.Turn)
		api.GET("/items/:id", cfg.ItemHandler.GetByID)
		api.GET("/stats", cfg.StatsHandler.Dashboard)
	}

	return router
}
