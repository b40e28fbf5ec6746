// Package apierror writes the JSON error envelope shared by all handlers.
package apierror

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Error codes used across handlers.
const (
	CodeInvalidRequest = "INVALID_REQUEST"
	CodeNotFound       = "NOT_FOUND"
	CodeConflict       = "CONFLICT"
	CodeInternal       = "INTERNAL_ERROR"
)

// ErrorResponse represents the error envelope {"error":{"code","message"}}.
type ErrorResponse struct {
	Error struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

// Write aborts the request with the error envelope.
func Write(c *gin.Context, statusCode int, code, message string) {
	resp := ErrorResponse{}
	resp.Error.Code = code
	resp.Error.Message = message
	c.AbortWithStatusJSON(statusCode, resp)
}

// BadRequest writes a 400 INVALID_REQUEST response.
func BadRequest(c *gin.Context, message string) {
	Write(c, http.StatusBadRequest, CodeInvalidRequest, message)
}

// NotFound writes a 404 NOT_FOUND response.
func NotFound(c *gin.Context, message string) {
	Write(c, http.StatusNotFound, CodeNotFound, message)
}

// Conflict writes a 409 response with the given code.
func Conflict(c *gin.Context, code, message string) {
	Write(c, http.StatusConflict, code, message)
}

// Internal logs err and writes a 500 response without exposing it.
func Internal(c *gin.Context, logger *zap.SugaredLogger, msg string, err error, keysAndValues ...interface{}) {
	fields := append([]interface{}{"error", err, "path", c.Request.URL.Path}, keysAndValues...)
	if id := c.GetString("request_id"); id != "" {
		fields = append(fields, "request_id", id)
	}
	logger.Errorw(msg, fields...)
	_ = c.Error(err)
	Write(c, http.StatusInternalServerError, CodeInternal, "internal server error")
}

// ParseID reads a positive integer path parameter, writing 400 when it is not one.
func ParseID(c *gin.Context, param string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(param), 10, 64)
	if err != nil || id <= 0 {
		BadRequest(c, param+" must be a positive integer")
		return 0, false
	}
	return id, true
}

// QueryInt reads an optional integer query parameter. ok is false (and 400 written)
// when the value is present but malformed.
func QueryInt(c *gin.Context, name string, def int) (value int, ok bool) {
	raw := c.Query(name)
	if raw == "" {
		return def, true
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		BadRequest(c, name+" must be an integer")
		return 0, false
	}
	return v, true
}
