package models

import (
	"inkwell/db"

	"gorm.io/gorm"
)

type Post struct {
	ID        uint64 `gorm:"primaryKey"`
	CreatedAt int64  `gorm:"index:author_order,priority:2"`
	UpdatedAt int64
	UserID    uint64 `gorm:"index:author_order,priority:1"`
	User      User   `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
	GroupID   *uint64
	Group     *Group `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;"`
	Text      string `gorm:"type:text"`
	ImagePath string `gorm:"type:varchar(300)"`
	ThumbPath string `gorm:"type:varchar(300)"`
}

// AuthorPost resolves a post by id scoped to its author.
func AuthorPost(authorID, postID uint64) (p Post, err error) {
	return p, db.Instance.Preload("User").Preload("Group").
		First(&p, "id = ? and user_id = ?", postID, authorID).Error
}

// The four feed scopes. All of them go through Paginate, which applies
// the newest-first ordering.

func AllPosts() *gorm.DB {
	return db.Instance.Model(&Post{})
}

func GroupPosts(groupID uint64) *gorm.DB {
	return db.Instance.Model(&Post{}).Where("group_id = ?", groupID)
}

func AuthorPosts(authorID uint64) *gorm.DB {
	return db.Instance.Model(&Post{}).Where("user_id = ?", authorID)
}

func FollowedPosts(followerID uint64) *gorm.DB {
	return db.Instance.Model(&Post{}).
		Where("user_id in (select author_id from follows where user_id = ?)", followerID)
}
