package response

import (
	"github.com/gin-gonic/gin"
)

// ErrorBody represents a structured error response.
type ErrorBody struct {
	Code    ErrCode           `json:"code"`
	Message string            `json:"message"`
	Fields  map[string]string `json:"fields,omitempty"`
}

// errorEnvelope wraps ErrorBody under an "error" key. Success responses
// carry their payload directly (list endpoints return bare JSON arrays,
// login returns a flat token object) so only failures get an envelope.
type errorEnvelope struct {
	Error ErrorBody `json:"error"`
}

// Fail sends an error response using the code's canonical message.
func Fail(c *gin.Context, statusCode int, code ErrCode) {
	c.JSON(statusCode, errorEnvelope{
		Error: ErrorBody{Code: code, Message: GetMessage(code)},
	})
}

// FailMessage sends an error response with an explicit message. Used where
// the message varies per request, such as password policy violations.
func FailMessage(c *gin.Context, statusCode int, code ErrCode, message string) {
	c.JSON(statusCode, errorEnvelope{
		Error: ErrorBody{Code: code, Message: message},
	})
}

// FailWithFields sends an error response with field-level validation details.
func FailWithFields(c *gin.Context, statusCode int, code ErrCode, fields map[string]string) {
	c.JSON(statusCode, errorEnvelope{
		Error: ErrorBody{Code: code, Message: GetMessage(code), Fields: fields},
	})
}

// AbortFail aborts the middleware chain and sends an error response.
func AbortFail(c *gin.Context, statusCode int, code ErrCode) {
	c.AbortWithStatusJSON(statusCode, errorEnvelope{
		Error: ErrorBody{Code: code, Message: GetMessage(code)},
	})
}

// AbortFailMessage aborts the middleware chain with an explicit message.
func AbortFailMessage(c *gin.Context, statusCode int, code ErrCode, message string) {
	c.AbortWithStatusJSON(statusCode, errorEnvelope{
		Error: ErrorBody{Code: code, Message: message},
	})
}
