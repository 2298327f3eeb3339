package web

import (
	"strings"

	"inkwell/storage"

	"github.com/gin-gonic/gin"
)

// MediaFetch streams a stored image through the configured storage backend.
func MediaFetch(c *gin.Context) {
	path := strings.TrimPrefix(c.Param("path"), "/")
	if path == "" || strings.Contains(path, "..") {
		PageNotFound(c)
		return
	}
	storage.Get().Serve(path, c.Request, c.Writer)
}
