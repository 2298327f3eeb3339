package web

import (
	"net/http"
	"strconv"
	"strings"
	"unicode/utf8"

	"inkwell/db"
	"inkwell/models"

	"github.com/gin-gonic/gin"
)

// AddComment creates a comment on an existing post. Validation failures
// re-render the post page with the field error; comments are never edited
// or deleted here.
func AddComment(c *gin.Context, user *models.User) {
	author, err := models.UserByUsername(c.Param("username"))
	if err != nil {
		PageNotFound(c)
		return
	}
	postID, err := strconv.ParseUint(c.Param("post_id"), 10, 64)
	if err != nil {
		PageNotFound(c)
		return
	}
	post, err := models.AuthorPost(author.ID, postID)
	if err != nil {
		PageNotFound(c)
		return
	}
	text := c.PostForm("text")
	fieldError := ""
	if strings.TrimSpace(text) == "" {
		fieldError = "This field is required."
	} else if utf8.RuneCountInString(text) > models.CommentMaxLength {
		fieldError = "Ensure this value has at most " +
			strconv.Itoa(models.CommentMaxLength) + " characters."
	}
	if fieldError != "" {
		comments, err := models.CommentsForPost(post.ID)
		if err != nil {
			ServerError(c)
			return
		}
		render(c, http.StatusOK, "post.tmpl", gin.H{
			"author":       author,
			"post":         post,
			"comments":     comments,
			"commentText":  text,
			"commentError": fieldError,
		})
		return
	}
	comment := models.Comment{
		UserID: &user.ID,
		PostID: &post.ID,
		Text:   text,
	}
	if err := db.Instance.Create(&comment).Error; err != nil {
		ServerError(c)
		return
	}
	c.Redirect(http.StatusFound, postURL(author.Username, post.ID))
}
