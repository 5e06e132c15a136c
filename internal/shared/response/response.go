package response

import (
	"net/http"

	"stillform-backend/internal/shared/apperror"
	"stillform-backend/pkg/logger"

	"github.com/gin-gonic/gin"
)

// Error is the JSON body of every failed request
type Error struct {
	Message string            `json:"message"`
	Code    string            `json:"code,omitempty"`
	Errors  map[string]string `json:"errors,omitempty"`
	// Details carries the cause of an upstream failure
	Details string `json:"details,omitempty"`
}

// Success responses are bare JSON so existing clients keep working
func Success(c *gin.Context, statusCode int, data interface{}) {
	c.JSON(statusCode, data)
}

func OK(c *gin.Context, data interface{}) {
	Success(c, http.StatusOK, data)
}

func Created(c *gin.Context, data interface{}) {
	Success(c, http.StatusCreated, data)
}

// Error responses
func ErrorResponse(c *gin.Context, statusCode int, code, message string) {
	c.JSON(statusCode, Error{Code: code, Message: message})
}

func ErrorWithDetails(c *gin.Context, statusCode int, code, message string, details map[string]string) {
	c.JSON(statusCode, Error{Code: code, Message: message, Errors: details})
}

// FromError writes an *apperror.Error with its own status; anything else is a 500.
func FromError(c *gin.Context, err error) {
	appErr, ok := apperror.As(err)
	if !ok {
		logger.Error("unhandled error", err)
		InternalServerError(c, "Internal server error")
		return
	}

	status := appErr.HTTPStatus()
	if status >= http.StatusInternalServerError {
		logger.Error(appErr.Message, appErr)
	}

	body := Error{
		Message: appErr.Message,
		Code:    appErr.Code,
		Errors:  appErr.Fields,
	}
	if appErr.Kind == apperror.KindUpstream && appErr.Err != nil {
		body.Details = appErr.Err.Error()
	}

	c.JSON(status, body)
}

// Common error responses
func BadRequest(c *gin.Context, message string) {
	ErrorResponse(c, http.StatusBadRequest, "BAD_REQUEST", message)
}

func Unauthorized(c *gin.Context, message string) {
	ErrorResponse(c, http.StatusUnauthorized, "UNAUTHORIZED", message)
}

func NotFound(c *gin.Context, message string) {
	ErrorResponse(c, http.StatusNotFound, "NOT_FOUND", message)
}

func InternalServerError(c *gin.Context, message string) {
	ErrorResponse(c, http.StatusInternalServerError, "INTERNAL_SERVER_ERROR", message)
}
