package types

import (
	"time"
)

// Item maps the legacy fthings table. The schema is owned by the existing
// PHP site, so column names (including the misspelled discription) are fixed.
type Item struct {
	ID          int64      `gorm:"primaryKey;column:id" json:"id"`
	Description *string    `gorm:"column:discription" json:"description"`
	CityID      *int64     `gorm:"column:ville" json:"city_id"`
	CategoryID  *int64     `gorm:"column:cat_ref" json:"category_id"`
	Brand       *string    `gorm:"column:marque" json:"marque"`
	Model       *string    `gorm:"column:modele" json:"modele"`
	Color       *string    `gorm:"column:color" json:"color"`
	Type        *string    `gorm:"column:type" json:"type"`
	Condition   *string    `gorm:"column:etat" json:"etat"`
	PostedAt    *time.Time `gorm:"column:postdate" json:"postdate"`
}

func (Item) TableName() string {
	return "fthings"
}

// RankedItem is one row of a scored catalog search: the joined item fields
// plus how many field predicates it satisfied and the legacy contact link.
type RankedItem struct {
	ID           int64     `gorm:"column:id" json:"id"`
	Description  string    `gorm:"column:description" json:"description"`
	City         string    `gorm:"column:city" json:"city"`
	CategoryName string    `gorm:"column:category_name" json:"category_name"`
	Brand        string    `gorm:"column:marque" json:"marque"`
	Model        string    `gorm:"column:modele" json:"modele"`
	Color        string    `gorm:"column:color" json:"color"`
	Type         string    `gorm:"column:type" json:"type"`
	Condition    string    `gorm:"column:etat" json:"etat"`
	PostedAt     time.Time `gorm:"column:postdate" json:"postdate"`
	MatchCount   int       `gorm:"column:match_count" json:"match_count"`
	ContactURL   string    `gorm:"-" json:"contactUrl,omitempty"`
}
