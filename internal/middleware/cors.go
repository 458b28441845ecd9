package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// CORS allows the static dashboard frontend (served from any origin) to call
// the JSON API from the browser.
//
// Behavior:
//   - Every response carries Access-Control-Allow-Origin: *, the allowed
//     methods (GET, OPTIONS) and the allowed headers (Content-Type).
//   - A preflight OPTIONS request is answered directly with 200 and an empty
//     body; it never reaches the route handlers.
//
// The contract pins the preflight status to 200, which is why this is a small
// local middleware instead of gin-contrib/cors (that one answers with 204).
func CORS() gin.HandlerFunc {
	return func(c *gin.Context) {
		h := c.Writer.Header()
		h.Set("Access-Control-Allow-Origin", "*")
		h.Set("Access-Control-Allow-Methods", "GET, OPTIONS")
		h.Set("Access-Control-Allow-Headers", "Content-Type")

		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusOK)
			return
		}

		c.Next()
	}
}
