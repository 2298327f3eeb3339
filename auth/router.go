package auth

import (
	"net/http"
	"net/url"

	"inkwell/models"

	"github.com/gin-gonic/gin"
)

// User is authenticated and pre-loaded
type HandlerFunc func(c *gin.Context, user *models.User)

// Router is a wrapper class that adds the login check + User pre-loading.
// Anonymous requests are sent to the login page with a "next" parameter
// pointing back at the original target.
type Router struct {
	Base *gin.Engine
}

func (cr *Router) baseExec(c *gin.Context, handler HandlerFunc) {
	session := LoadSession(c)
	user := session.User()
	if user.ID == 0 {
		c.Redirect(http.StatusFound, "/auth/login/?next="+url.QueryEscape(c.Request.URL.RequestURI()))
		return
	}
	handler(c, &user)
}

func (cr *Router) GET(path string, handler HandlerFunc) {
	cr.Base.GET(path, func(c *gin.Context) {
		cr.baseExec(c, handler)
	})
}

func (cr *Router) POST(path string, handler HandlerFunc) {
	cr.Base.POST(path, func(c *gin.Context) {
		cr.baseExec(c, handler)
	})
}
