package middleware

import (
	"crypto/subtle"
	"net/http"

	"hotelbooking/internal/pkg/logger"
	"hotelbooking/internal/pkg/response"

	"github.com/gin-gonic/gin"
)

const HeaderAdminToken = "X-Admin-Token"

// AdminToken protects catalog administration endpoints with a static token.
// An empty expected token leaves the endpoints open, which is the local
// development setup.
func AdminToken(expected string, log *logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		if expected == "" {
			c.Next()
			return
		}

		got := c.GetHeader(HeaderAdminToken)
		if got == "" {
			logAdminFailure(c, log, http.StatusUnauthorized, "missing_token")
			response.Abort(c, http.StatusUnauthorized, "AUTH_MISSING", HeaderAdminToken+" header is required")
			return
		}
		if subtle.ConstantTimeCompare([]byte(got), []byte(expected)) != 1 {
			logAdminFailure(c, log, http.StatusForbidden, "invalid_token")
			response.Abort(c, http.StatusForbidden, "AUTH_INVALID", "Invalid admin token")
			return
		}

		c.Next()
	}
}

func logAdminFailure(c *gin.Context, log *logger.Logger, status int, reason string) {
	log.Warn("admin auth rejected",
		"status", status,
		"path", c.Request.URL.Path,
		"client_ip", c.ClientIP(),
		"request_id", requestID(c),
		"reason", reason,
	)
}
