package web

import (
	"net/http"

	"inkwell/models"

	"github.com/gin-gonic/gin"
)

// FollowAuthor creates the follow edge. Self-follow and an already
// existing edge are silent no-ops; either way the caller lands on their
// follow feed.
func FollowAuthor(c *gin.Context, user *models.User) {
	author, err := models.UserByUsername(c.Param("username"))
	if err != nil {
		PageNotFound(c)
		return
	}
	if user.ID == author.ID || models.FollowExists(user.ID, author.ID) {
		c.Redirect(http.StatusFound, "/follow/")
		return
	}
	err = models.FollowCreate(user.ID, author.ID)
	// A concurrent request may have won the race; the unique key makes
	// that harmless
	if err != nil && !models.IsDuplicateEntry(err) {
		ServerError(c)
		return
	}
	c.Redirect(http.StatusFound, "/follow/")
}

// UnfollowAuthor removes the edge if present, no-op otherwise.
func UnfollowAuthor(c *gin.Context, user *models.User) {
	author, err := models.UserByUsername(c.Param("username"))
	if err != nil {
		PageNotFound(c)
		return
	}
	if err := models.FollowDelete(user.ID, author.ID); err != nil {
		ServerError(c)
		return
	}
	c.Redirect(http.StatusFound, "/follow/")
}
