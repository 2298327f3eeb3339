package web

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
)

func PageNotFound(c *gin.Context) {
	render(c, http.StatusNotFound, "404.tmpl", gin.H{"path": c.Request.URL.Path})
	c.Abort()
}

func ServerError(c *gin.Context) {
	render(c, http.StatusInternalServerError, "500.tmpl", gin.H{})
	c.Abort()
}

// Recovery turns unhandled panics into the 500 page.
func Recovery(c *gin.Context, recovered interface{}) {
	log.Printf("panic recovered: %v", recovered)
	ServerError(c)
}
