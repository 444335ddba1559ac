package middleware

import "github.com/gin-gonic/gin"

// Context keys set by handlers so request logs can attribute work.
const (
	ProjectIDKey = "projectId"
	VersionIDKey = "versionId"
)

func contextString(c *gin.Context, key string) string {
	if c == nil {
		return ""
	}
	val, _ := c.Get(key)
	if s, ok := val.(string); ok {
		return s
	}
	return ""
}
