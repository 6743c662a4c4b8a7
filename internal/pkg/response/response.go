package response

import "github.com/gin-gonic/gin"

type ErrorBody struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Details any    `json:"details,omitempty"`
}

type envelope struct {
	Success bool       `json:"success"`
	Data    any        `json:"data,omitempty"`
	Error   *ErrorBody `json:"error,omitempty"`
}

func Success(c *gin.Context, statusCode int, data any) {
	c.JSON(statusCode, envelope{Success: true, Data: data})
}

// Raw writes v as the whole body. Used where clients expect the bare
// resource (login token, cart, booking list).
func Raw(c *gin.Context, statusCode int, v any) {
	c.JSON(statusCode, v)
}

func Error(c *gin.Context, statusCode int, code string, message string) {
	c.JSON(statusCode, envelope{Error: &ErrorBody{Code: code, Message: message}})
}

func ErrorWithDetails(c *gin.Context, statusCode int, code string, message string, details any) {
	c.JSON(statusCode, envelope{Error: &ErrorBody{Code: code, Message: message, Details: details}})
}

// Abort writes an error and stops the handler chain.
func Abort(c *gin.Context, statusCode int, code string, message string) {
	c.AbortWithStatusJSON(statusCode, envelope{Error: &ErrorBody{Code: code, Message: message}})
}
