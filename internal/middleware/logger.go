package middleware

import (
	"fmt"
	"net/http"
	"runtime/debug"
	"time"

	"hotelbooking/internal/pkg/logger"
	"hotelbooking/internal/pkg/response"

	"github.com/gin-gonic/gin"
)

// RequestLogger writes one line per request.
func RequestLogger(log *logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		log.Info("request",
			"status", c.Writer.Status(),
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"client_ip", c.ClientIP(),
			"user_id", c.GetString(ContextUserID),
			"request_id", requestID(c),
			"latency", time.Since(start).String(),
		)
	}
}

// ErrorLogger logs detailed error information and recovers from panics.
func ErrorLogger(log *logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		defer func() {
			if recovered := recover(); recovered != nil {
				err := fmt.Errorf("%v", recovered)
				logRequestError(c, log, start, "panic", err.Error(), debug.Stack())
				response.Abort(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error")
				return
			}

			if len(c.Errors) == 0 {
				if c.Writer.Status() >= http.StatusInternalServerError {
					logRequestError(c, log, start, "http_error", fmt.Sprintf("status=%d", c.Writer.Status()), nil)
				}
				return
			}

			for _, err := range c.Errors {
				logRequestError(c, log, start, fmt.Sprintf("%v", err.Type), err.Error(), nil)
			}
		}()

		c.Next()
	}
}

func logRequestError(c *gin.Context, log *logger.Logger, start time.Time, errType string, message string, stack []byte) {
	args := []any{
		"type", errType,
		"status", c.Writer.Status(),
		"method", c.Request.Method,
		"path", c.Request.URL.Path,
		"query", c.Request.URL.RawQuery,
		"client_ip", c.ClientIP(),
		"user_id", c.GetString(ContextUserID),
		"request_id", requestID(c),
		"latency", time.Since(start).String(),
		"error", message,
	}
	if stack != nil {
		args = append(args, "stack", string(stack))
	}
	log.Error("request_error", args...)
}

func requestID(c *gin.Context) string {
	id := c.GetHeader("X-Request-ID")
	if id == "" {
		id = c.GetHeader("X-Request-Id")
	}
	return id
}
