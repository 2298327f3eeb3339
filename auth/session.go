package auth

import (
	"inkwell/db"
	"inkwell/models"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
)

const userIdKey = "id"

type Session struct {
	sessions.Session
}

func LoadSession(c *gin.Context) *Session {
	return &Session{
		Session: sessions.Default(c),
	}
}

func (s *Session) LoginUser(user *models.User) {
	s.Set(userIdKey, user.ID)
	s.Save()
}

func (s *Session) LogoutUser() {
	s.Delete(userIdKey)
	s.Clear()
	s.Options(sessions.Options{Path: "/", MaxAge: -1})
	s.Save()
}

func (s *Session) UserID() uint64 {
	id := s.Get(userIdKey)
	if id == nil {
		return 0
	}
	return id.(uint64)
}

func (s *Session) User() (user models.User) {
	user.ID = s.UserID()
	if user.ID == 0 {
		return
	}
	if db.Instance.First(&user).Error != nil {
		user.ID = 0
	}
	return
}
