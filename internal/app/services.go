package app

import (
	"fmt"

	"github.com/mafqoodat/mafqoodat-backend/internal/platform/logger"
	"github.com/mafqoodat/mafqoodat-backend/internal/search"
	"github.com/mafqoodat/mafqoodat-backend/internal/services"
)

type Services struct {
	Catalog services.CatalogService
	Search  services.SearchService
	Chat    services.ChatService
	Stats   services.StatsService
}

func wireServices(log *logger.Logger, cfg Config, clients Clients, reposet Repos) (Services, error) {
	log.Info("Wiring services...")

	gaz := search.DefaultGazetteer()
	if cfg.GazetteerPath != "" {
		loaded, err := search.LoadGazetteer(cfg.GazetteerPath)
		if err != nil {
			return Services{}, fmt.Errorf("load gazetteer: %w", err)
		}
		gaz = loaded
	}
	extractor := search.NewExtractor(gaz)

	var store search.Store
	if reposet.Item != nil {
		store = reposet.Item
	}

	// Two resolver policies share the extractor: the form path searches
	// without a city, the conversational paths insist on one.
	formResolver := search.NewResolver(extractor, store, search.Config{
		RequireCity: false,
		ContactBase: cfg.ContactBase,
		Limit:       50,
	}, log)
	nlResolver := search.NewResolver(extractor, store, search.Config{
		RequireCity: true,
		ContactBase: cfg.ContactBase,
		Limit:       20,
	}, log)
	chatResolver := search.NewResolver(extractor, store, search.Config{
		RequireCity: true,
		ContactBase: cfg.ContactBase,
		Limit:       5,
	}, log)

	storeCfg := services.StoreConfig{Configured: clients.DB != nil}

	return Services{
		Catalog: services.NewCatalogService(log, storeCfg, reposet.Lookup, reposet.Item),
		Search:  services.NewSearchService(log, storeCfg, formResolver, nlResolver),
		Chat:    services.NewChatService(log, clients.Model, chatResolver, reposet.Item, storeCfg.Configured),
		Stats:   services.NewStatsService(log, storeCfg, reposet.Stats, clients.Redis),
	}, nil
}
