package web

import (
	"net/http"

	"inkwell/auth"
	"inkwell/models"

	"github.com/gin-gonic/gin"
)

// Index is the global feed. Its rendered output is cached by the
// PageCache middleware attached to the route.
func Index(c *gin.Context) {
	page, err := models.Paginate(models.AllPosts(), c.Query("page"))
	if err != nil {
		ServerError(c)
		return
	}
	render(c, http.StatusOK, "index.tmpl", gin.H{"page": &page})
}

func GroupFeed(c *gin.Context) {
	group, err := models.GroupBySlug(c.Param("slug"))
	if err != nil {
		PageNotFound(c)
		return
	}
	page, err := models.Paginate(models.GroupPosts(group.ID), c.Query("page"))
	if err != nil {
		ServerError(c)
		return
	}
	render(c, http.StatusOK, "group.tmpl", gin.H{"group": group, "page": &page})
}

func Profile(c *gin.Context) {
	author, err := models.UserByUsername(c.Param("username"))
	if err != nil {
		PageNotFound(c)
		return
	}
	viewerID := auth.LoadSession(c).UserID()
	following := false
	if viewerID != 0 {
		following = models.FollowExists(viewerID, author.ID)
	}
	page, err := models.Paginate(models.AuthorPosts(author.ID), c.Query("page"))
	if err != nil {
		ServerError(c)
		return
	}
	render(c, http.StatusOK, "profile.tmpl", gin.H{
		"author":    author,
		"following": following,
		"page":      &page,
	})
}

// FollowFeed lists posts by the authors the current user follows.
func FollowFeed(c *gin.Context, user *models.User) {
	page, err := models.Paginate(models.FollowedPosts(user.ID), c.Query("page"))
	if err != nil {
		ServerError(c)
		return
	}
	render(c, http.StatusOK, "follow.tmpl", gin.H{"page": &page})
}
