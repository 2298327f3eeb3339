package models

import "inkwell/db"

// CommentMaxLength bounds the comment text (in runes, not bytes).
const CommentMaxLength = 200

type Comment struct {
	ID        uint64 `gorm:"primaryKey"`
	CreatedAt int64
	UserID    *uint64
	User      *User `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
	PostID    *uint64
	Post      *Post  `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
	Text      string `gorm:"type:varchar(200)"`
}

// CommentsForPost returns the post's comments, newest first.
func CommentsForPost(postID uint64) (comments []Comment, err error) {
	return comments, db.Instance.Preload("User").
		Where("post_id = ?", postID).
		Order("created_at DESC, id DESC").
		Find(&comments).Error
}
