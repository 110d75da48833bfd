package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
)

type RequestRecorder interface {
	RequestStarted()
	RequestFinished(method, path string, status int, elapsed time.Duration)
}

// Metrics labels by route template so path parameters do not explode cardinality.
func Metrics(rec RequestRecorder) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		rec.RequestStarted()

		c.Next()

		path := c.FullPath()
		if path == "" {
			path = "unmatched"
		}
		rec.RequestFinished(c.Request.Method, path, c.Writer.Status(), time.Since(start))
	}
}
