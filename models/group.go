package models

import "inkwell/db"

type Group struct {
	ID          uint64 `gorm:"primaryKey"`
	CreatedAt   int64
	UpdatedAt   int64
	Title       string `gorm:"type:varchar(200)"`
	Slug        string `gorm:"type:varchar(50);index:uniq_slug,unique"`
	Description string `gorm:"type:text"`
}

func GroupBySlug(slug string) (g Group, err error) {
	return g, db.Instance.First(&g, "slug = ?", slug).Error
}

// GroupList returns all groups for the post form's group selector.
func GroupList() (groups []Group, err error) {
	return groups, db.Instance.Order("title ASC").Find(&groups).Error
}
