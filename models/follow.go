package models

import (
	"errors"
	"strings"

	"inkwell/db"

	"github.com/go-sql-driver/mysql"
)

// Follow is a directed edge: UserID follows AuthorID. The composite primary
// key doubles as the uniqueness constraint on the pair.
type Follow struct {
	CreatedAt int64
	UserID    uint64 `gorm:"primaryKey;autoIncrement:false"`
	User      User   `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
	AuthorID  uint64 `gorm:"primaryKey;autoIncrement:false"`
	Author    User   `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
}

func FollowExists(userID, authorID uint64) bool {
	var count int64
	db.Instance.Model(&Follow{}).
		Where("user_id = ? and author_id = ?", userID, authorID).
		Count(&count)
	return count > 0
}

func FollowCreate(userID, authorID uint64) error {
	return db.Instance.Create(&Follow{UserID: userID, AuthorID: authorID}).Error
}

func FollowDelete(userID, authorID uint64) error {
	return db.Instance.
		Where("user_id = ? and author_id = ?", userID, authorID).
		Delete(&Follow{}).Error
}

// IsDuplicateEntry reports whether err is a unique-constraint violation,
// e.g. a Follow edge race-created by a concurrent request.
func IsDuplicateEntry(err error) bool {
	var mysqlErr *mysql.MySQLError
	if errors.As(err, &mysqlErr) {
		return mysqlErr.Number == 1062
	}
	return err != nil && strings.Contains(err.Error(), "UNIQUE constraint failed")
}
