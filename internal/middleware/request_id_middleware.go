// internal/middleware/request_id_middleware.go
package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/oklog/ulid/v2"
)

const requestIDKey = "request_id"

// RequestIDHeader is echoed back on every response so clients can correlate
// their calls with the server log.
const RequestIDHeader = "X-Request-ID"

// RequestIDMiddleware tags each request with a ULID, honoring an id the
// client already supplied.
func RequestIDMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(RequestIDHeader)
		if id == "" {
			id = ulid.Make().String()
		}
		c.Set(requestIDKey, id)
		c.Writer.Header().Set(RequestIDHeader, id)
		c.Next()
	}
}

// RequestIDFrom returns the request id set by RequestIDMiddleware, or "".
func RequestIDFrom(c *gin.Context) string {
	return c.GetString(requestIDKey)
}
