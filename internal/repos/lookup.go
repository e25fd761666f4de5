package repos

import (
	"context"

	"gorm.io/gorm"

	"github.com/mafqoodat/mafqoodat-backend/internal/platform/logger"
	"github.com/mafqoodat/mafqoodat-backend/internal/types"
)

type LookupRepo interface {
	ListCities(ctx context.Context) ([]types.City, error)
	ListCategories(ctx context.Context) ([]types.Category, error)
	ListSubcategories(ctx context.Context, categoryID int64) ([]types.Subcategory, error)
}

type lookupRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewLookupRepo(db *gorm.DB, baseLog *logger.Logger) LookupRepo {
	return &lookupRepo{db: db, log: baseLog.With("repo", "LookupRepo")}
}

func (r *lookupRepo) ListCities(ctx context.Context) ([]types.City, error) {
	var results []types.City
	if err := r.db.WithContext(ctx).
		Order("ville").
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (r *lookupRepo) ListCategories(ctx context.Context) ([]types.Category, error) {
	var results []types.Category
	if err := r.db.WithContext(ctx).
		Order("cname").
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (r *lookupRepo) ListSubcategories(ctx context.Context, categoryID int64) ([]types.Subcategory, error) {
	var results []types.Subcategory
	if err := r.db.WithContext(ctx).
		Where("id_mere = ?", categoryID).
		Order("nom").
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}
