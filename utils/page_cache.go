package utils

import (
	"bytes"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	cmap "github.com/orcaman/concurrent-map/v2"
)

type cachedPage struct {
	body        []byte
	contentType string
	expires     int64
}

// PageCache keeps whole rendered GET responses, keyed by the full request
// URI including the query string. Entries live for TTL and are dropped
// lazily on the next lookup; there is no other invalidation, so writes can
// stay invisible for up to TTL.
type PageCache struct {
	TTL   time.Duration
	pages cmap.ConcurrentMap[string, cachedPage]
}

func NewPageCache(ttl time.Duration) *PageCache {
	return &PageCache{
		TTL:   ttl,
		pages: cmap.New[cachedPage](),
	}
}

type pageCacheWriter struct {
	gin.ResponseWriter
	body bytes.Buffer
}

func (w *pageCacheWriter) Write(b []byte) (int, error) {
	w.body.Write(b)
	return w.ResponseWriter.Write(b)
}

func (w *pageCacheWriter) WriteString(s string) (int, error) {
	w.body.WriteString(s)
	return w.ResponseWriter.WriteString(s)
}

func (pc *PageCache) Handler() gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.Method != http.MethodGet {
			c.Next()
			return
		}
		key := c.Request.URL.RequestURI()
		if page, ok := pc.pages.Get(key); ok {
			if time.Now().UnixNano() < page.expires {
				c.Data(http.StatusOK, page.contentType, page.body)
				c.Abort()
				return
			}
			pc.pages.Remove(key)
		}
		writer := &pageCacheWriter{ResponseWriter: c.Writer}
		c.Writer = writer
		c.Next()
		if writer.Status() != http.StatusOK {
			return
		}
		pc.pages.Set(key, cachedPage{
			body:        writer.body.Bytes(),
			contentType: writer.Header().Get("Content-Type"),
			expires:     time.Now().Add(pc.TTL).UnixNano(),
		})
	}
}
