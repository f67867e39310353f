package utils

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ErrorKind classifies a request failure into the outcomes the API exposes.
type ErrorKind string

const (
	KindValidation      ErrorKind = "validation"
	KindUnauthenticated ErrorKind = "unauthenticated"
	KindForbidden       ErrorKind = "forbidden"
	KindNotFound        ErrorKind = "not_found"
	KindConflict        ErrorKind = "conflict"
)

// APIError is a typed failure returned verbatim to the caller. Anything
// that is not an APIError is treated as an internal error and its detail
// is not leaked in the response.
type APIError struct {
	Kind    ErrorKind
	Message string
}

func (e *APIError) Error() string {
	return e.Message
}

func Validationf(format string, args ...any) *APIError {
	return &APIError{Kind: KindValidation, Message: fmt.Sprintf(format, args...)}
}

func Unauthenticated(message string) *APIError {
	return &APIError{Kind: KindUnauthenticated, Message: message}
}

func Forbidden(message string) *APIError {
	return &APIError{Kind: KindForbidden, Message: message}
}

func NotFound(message string) *APIError {
	return &APIError{Kind: KindNotFound, Message: message}
}

func Conflict(message string) *APIError {
	return &APIError{Kind: KindConflict, Message: message}
}

// IsKind reports whether err is an APIError of the given kind.
func IsKind(err error, kind ErrorKind) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.Kind == kind
}

// StatusOf maps an error to its HTTP status code.
func StatusOf(err error) int {
	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		return http.StatusInternalServerError
	}
	switch apiErr.Kind {
	case KindValidation:
		return http.StatusBadRequest
	case KindUnauthenticated:
		return http.StatusUnauthorized
	case KindForbidden:
		return http.StatusForbidden
	case KindNotFound:
		return http.StatusNotFound
	case KindConflict:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// ErrorResponse defines the structure of error responses
type ErrorResponse struct {
	Message string `json:"message"`
	Details string `json:"details,omitempty"`
}

// RespondError writes a typed error as JSON. Internal errors are logged
// with their cause but surfaced with a generic message.
func RespondError(c *gin.Context, err error) {
	logger := GetLogger()
	status := StatusOf(err)
	if status == http.StatusInternalServerError {
		logger.Error("Internal error", zap.Error(err), zap.String("path", c.FullPath()))
		c.JSON(status, ErrorResponse{Message: "Internal Server Error"})
		return
	}
	logger.Warn("Request failed", zap.Int("status", status), zap.String("error", err.Error()))
	c.JSON(status, ErrorResponse{Message: err.Error()})
}

// ErrorHandler is a middleware to catch panics and return structured errors
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if err := recover(); err != nil {
				logger := GetLogger()
				logger.Error("Unhandled panic", zap.Any("error", err))

				c.JSON(http.StatusInternalServerError, ErrorResponse{
					Message: "Internal Server Error",
					Details: "An unexpected error occurred. Please try again later.",
				})
				c.Abort()
			}
		}()
		c.Next()
	}
}
