package web

import (
	"strings"
	"time"

	"inkwell/auth"

	"github.com/gin-gonic/gin"
)

// headButtonNames picks the page heading and submit button label purely
// from the request path.
func headButtonNames(path string) (head, button string) {
	if path == "/new/" || path == "/new" {
		return "Add post", "Add"
	}
	if strings.Contains(path, "/edit/") {
		return "Edit post", "Save"
	}
	return "head_name", "button_name"
}

// render wraps c.HTML, merging in the values every page expects: the
// current year for the footer, the path-derived labels and the viewer.
func render(c *gin.Context, status int, name string, data gin.H) {
	head, button := headButtonNames(c.Request.URL.Path)
	data["year"] = time.Now().Year()
	data["headName"] = head
	data["buttonName"] = button
	if _, ok := data["viewer"]; !ok {
		if user := auth.LoadSession(c).User(); user.ID != 0 {
			data["viewer"] = user
		}
	}
	c.HTML(status, name, data)
}
