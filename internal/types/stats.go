package types

// NamedCount is one bucket of a grouped aggregate (category, city, brand,
// color).
type NamedCount struct {
	Name  string `json:"name"`
	Value int64  `json:"value"`
}

// MonthlyTrend is one point of the 6-month posting trend.
type MonthlyTrend struct {
	Month string `json:"month"`
	Lost  int64  `json:"lost"`
	Found int64  `json:"found"`
}

// RecentActivity is one entry of the dashboard activity feed.
type RecentActivity struct {
	Type     string `json:"type"`
	Item     string `json:"item"`
	City     string `json:"city"`
	Time     string `json:"time"`
	Category string `json:"category"`
}

// DashboardStats is the aggregate payload behind the stats endpoint. Each
// section is computed independently; a failed aggregate renders as its zero
// value rather than failing the whole payload.
type DashboardStats struct {
	TotalItems      int64            `json:"totalItems"`
	FoundItems      int64            `json:"foundItems"`
	LostItems       int64            `json:"lostItems"`
	SuccessRate     int64            `json:"successRate"`
	ItemsByCategory []NamedCount     `json:"itemsByCategory"`
	ItemsByCity     []NamedCount     `json:"itemsByCity"`
	ItemsByBrand    []NamedCount     `json:"itemsByBrand"`
	ItemsByColor    []NamedCount     `json:"itemsByColor"`
	MonthlyTrends   []MonthlyTrend   `json:"monthlyTrends"`
	RecentActivity  []RecentActivity `json:"recentActivity"`
}
