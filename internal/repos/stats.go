package repos

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/mafqoodat/mafqoodat-backend/internal/platform/logger"
	"github.com/mafqoodat/mafqoodat-backend/internal/types"
)

// MonthlyCount is one raw month bucket of the posting trend.
type MonthlyCount struct {
	MonthYear string `gorm:"column:month_year"`
	MonthName string `gorm:"column:month_name"`
	Count     int64  `gorm:"column:count"`
}

// FoundSplit is the raw found-vs-total breakdown derived from the free-text
// etat field.
type FoundSplit struct {
	Total int64 `gorm:"column:total"`
	Found int64 `gorm:"column:found_items"`
}

// RecentRow is one raw row of the activity feed.
type RecentRow struct {
	ID       int64      `gorm:"column:id"`
	Item     string     `gorm:"column:item"`
	City     string     `gorm:"column:city"`
	Category string     `gorm:"column:category"`
	PostedAt *time.Time `gorm:"column:postdate"`
}

// StatsRepo exposes the dashboard's independent read-only aggregates. Each
// method is its own query; callers decide how to degrade on partial failure.
type StatsRepo interface {
	TotalItems(ctx context.Context) (int64, error)
	CountsByCategory(ctx context.Context) ([]types.NamedCount, error)
	CountsByCity(ctx context.Context) ([]types.NamedCount, error)
	CountsByBrand(ctx context.Context) ([]types.NamedCount, error)
	CountsByColor(ctx context.Context) ([]types.NamedCount, error)
	MonthlyCounts(ctx context.Context) ([]MonthlyCount, error)
	FoundSplit(ctx context.Context) (FoundSplit, error)
	RecentItems(ctx context.Context, limit int) ([]RecentRow, error)
}

type statsRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewStatsRepo(db *gorm.DB, baseLog *logger.Logger) StatsRepo {
	return &statsRepo{db: db, log: baseLog.With("repo", "StatsRepo")}
}

func (r *statsRepo) TotalItems(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&types.Item{}).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *statsRepo) CountsByCategory(ctx context.Context) ([]types.NamedCount, error) {
	var rows []types.NamedCount
	err := r.db.WithContext(ctx).Raw(`
		SELECT COALESCE(c.cname, 'Inconnu') AS name, COUNT(*) AS value
		FROM fthings f
		LEFT JOIN catagoery c ON f.cat_ref = c.cid
		GROUP BY c.cname
		ORDER BY value DESC
		LIMIT 10`).Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *statsRepo) CountsByCity(ctx context.Context) ([]types.NamedCount, error) {
	var rows []types.NamedCount
	err := r.db.WithContext(ctx).Raw(`
		SELECT COALESCE(v.ville, 'Inconnu') AS name, COUNT(*) AS value
		FROM fthings f
		LEFT JOIN ville v ON f.ville = v.id
		GROUP BY v.ville
		ORDER BY value DESC
		LIMIT 10`).Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *statsRepo) CountsByBrand(ctx context.Context) ([]types.NamedCount, error) {
	var rows []types.NamedCount
	err := r.db.WithContext(ctx).Raw(`
		SELECT LOWER(COALESCE(f.marque, '')) AS name, COUNT(*) AS value
		FROM fthings f
		WHERE COALESCE(f.marque, '') <> ''
		GROUP BY LOWER(f.marque)
		ORDER BY value DESC
		LIMIT 50`).Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *statsRepo) CountsByColor(ctx context.Context) ([]types.NamedCount, error) {
	var rows []types.NamedCount
	err := r.db.WithContext(ctx).Raw(`
		SELECT LOWER(COALESCE(f.color, '')) AS name, COUNT(*) AS value
		FROM fthings f
		WHERE COALESCE(f.color, '') <> ''
		GROUP BY LOWER(f.color)
		ORDER BY value DESC
		LIMIT 50`).Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *statsRepo) MonthlyCounts(ctx context.Context) ([]MonthlyCount, error) {
	var rows []MonthlyCount
	err := r.db.WithContext(ctx).Raw(`
		SELECT DATE_FORMAT(postdate, '%Y-%m') AS month_year,
		       MONTHNAME(postdate) AS month_name,
		       COUNT(*) AS count
		FROM fthings
		WHERE postdate >= DATE_SUB(NOW(), INTERVAL 6 MONTH)
		GROUP BY DATE_FORMAT(postdate, '%Y-%m'), MONTHNAME(postdate)
		ORDER BY month_year ASC`).Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *statsRepo) FoundSplit(ctx context.Context) (FoundSplit, error) {
	var row FoundSplit
	err := r.db.WithContext(ctx).Raw(`
		SELECT COUNT(*) AS total,
		       COALESCE(SUM(CASE
		         WHEN etat LIKE '%trouvé%' OR etat LIKE '%trouve%'
		           OR etat LIKE '%found%' OR etat LIKE '%récupéré%' OR etat LIKE '%recupere%'
		         THEN 1 ELSE 0 END), 0) AS found_items
		FROM fthings`).Scan(&row).Error
	if err != nil {
		return FoundSplit{}, err
	}
	return row, nil
}

func (r *statsRepo) RecentItems(ctx context.Context, limit int) ([]RecentRow, error) {
	if limit <= 0 {
		limit = 20
	}
	var rows []RecentRow
	err := r.db.WithContext(ctx).Raw(`
		SELECT f.id,
		       COALESCE(f.discription, 'Objet inconnu') AS item,
		       COALESCE(v.ville, 'Ville inconnue') AS city,
		       COALESCE(c.cname, 'Catégorie inconnue') AS category,
		       f.postdate
		FROM fthings f
		LEFT JOIN ville v ON f.ville = v.id
		LEFT JOIN catagoery c ON f.cat_ref = c.cid
		ORDER BY f.postdate DESC
		LIMIT ?`, limit).Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}
