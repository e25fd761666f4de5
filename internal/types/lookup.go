package types

// City maps the legacy ville lookup table.
type City struct {
	ID   int64  `gorm:"primaryKey;column:id" json:"id"`
	Name string `gorm:"column:ville" json:"name"`
}

func (City) TableName() string {
	return "ville"
}

// Category maps the legacy catagoery lookup table.
type Category struct {
	ID   int64  `gorm:"primaryKey;column:cid" json:"id"`
	Name string `gorm:"column:cname" json:"name"`
}

func (Category) TableName() string {
	return "catagoery"
}

// Subcategory maps the legacy souscatg table; id_mere points at the parent
// category.
type Subcategory struct {
	ID       int64  `gorm:"primaryKey;column:id" json:"id"`
	ParentID int64  `gorm:"column:id_mere" json:"category_id"`
	Name     string `gorm:"column:nom" json:"name"`
}

func (Subcategory) TableName() string {
	return "souscatg"
}
