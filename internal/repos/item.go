package repos

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/mafqoodat/mafqoodat-backend/internal/platform/logger"
	"github.com/mafqoodat/mafqoodat-backend/internal/search"
	"github.com/mafqoodat/mafqoodat-backend/internal/types"
)

// ErrNotFound marks a lookup for an id that has no row. Callers translate
// it to a 404-style outcome instead of an error page.
var ErrNotFound = errors.New("item not found")

const itemSelect = `SELECT f.id,
  COALESCE(f.discription, '') AS description,
  COALESCE(v.ville, '') AS city,
  COALESCE(c.cname, '') AS category_name,
  COALESCE(f.marque, '') AS marque,
  COALESCE(f.modele, '') AS modele,
  COALESCE(f.color, '') AS color,
  COALESCE(f.type, '') AS type,
  COALESCE(f.etat, '') AS etat,
  f.postdate
FROM fthings f
LEFT JOIN catagoery c ON f.cat_ref = c.cid
LEFT JOIN ville v ON f.ville = v.id`

type ItemRepo interface {
	SearchRanked(ctx context.Context, q search.Query) ([]types.RankedItem, error)
	GetByID(ctx context.Context, id int64) (*types.RankedItem, error)
	Recent(ctx context.Context, limit int) ([]types.RankedItem, error)
}

type itemRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewItemRepo(db *gorm.DB, baseLog *logger.Logger) ItemRepo {
	return &itemRepo{db: db, log: baseLog.With("repo", "ItemRepo")}
}

func (r *itemRepo) SearchRanked(ctx context.Context, q search.Query) ([]types.RankedItem, error) {
	var rows []types.RankedItem
	if err := r.db.WithContext(ctx).Raw(q.SQL, q.Params...).Scan(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *itemRepo) GetByID(ctx context.Context, id int64) (*types.RankedItem, error) {
	var row types.RankedItem
	res := r.db.WithContext(ctx).Raw(itemSelect+"\nWHERE f.id = ?\nLIMIT 1", id).Scan(&row)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, ErrNotFound
	}
	return &row, nil
}

func (r *itemRepo) Recent(ctx context.Context, limit int) ([]types.RankedItem, error) {
	if limit <= 0 {
		limit = 3
	}
	var rows []types.RankedItem
	if err := r.db.WithContext(ctx).
		Raw(itemSelect+"\nORDER BY f.postdate DESC\nLIMIT ?", limit).
		Scan(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}
