package app

import (
	"gorm.io/gorm"

	"github.com/mafqoodat/mafqoodat-backend/internal/platform/logger"
	"github.com/mafqoodat/mafqoodat-backend/internal/repos"
)

type Repos struct {
	Item   repos.ItemRepo
	Lookup repos.LookupRepo
	Stats  repos.StatsRepo
}

// wireRepos is a no-op when the catalog database is absent; the services
// check StoreConfig before touching any repo.
func wireRepos(db *gorm.DB, log *logger.Logger) Repos {
	if db == nil {
		return Repos{}
	}
	log.Info("Wiring repos...")
	return Repos{
		Item:   repos.NewItemRepo(db, log),
		Lookup: repos.NewLookupRepo(db, log),
		Stats:  repos.NewStatsRepo(db, log),
	}
}
