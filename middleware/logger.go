package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// RequestLogger writes one line per request: errors for 5xx, warnings for
// 4xx, info otherwise.
func RequestLogger(log zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		status := c.Writer.Status()
		var e *zerolog.Event
		switch {
		case status >= 500:
			e = log.Error()
			if last := c.Errors.Last(); last != nil {
				e = e.Err(last.Err)
			}
		case status >= 400:
			e = log.Warn()
			if last := c.Errors.Last(); last != nil {
				e = e.Str("reason", last.Error())
			}
		default:
			e = log.Info()
		}

		if id := GetRequestID(c); id != "" {
			e = e.Str("request_id", id)
		}
		if identity, ok := CurrentIdentity(c); ok {
			e = e.Str("username", identity.Username)
		}

		e.
			Dur("latency", time.Since(start)).
			Int("status", status).
			Str("method", c.Request.Method).
			Str("path", c.Request.URL.Path).
			Str("ip", c.ClientIP()).
			Msg("API")
	}
}
