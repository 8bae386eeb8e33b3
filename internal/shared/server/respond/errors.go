package respond

import (
	"github.com/gin-gonic/gin"

	"hiresight-ml/internal/shared/telemetry"
)

// ErrorBody defines the standardized error object.
type ErrorBody struct {
	Code    string      `json:"code"`
	Message string      `json:"message"`
	Details interface{} `json:"details,omitempty"`
}

// ErrorResponse wraps the error body.
type ErrorResponse struct {
	Error ErrorBody `json:"error"`
}

// Error sends a standardized error response and logs it.
func Error(c *gin.Context, status int, code, message string, details interface{}) {
	telemetry.Error("http.error", map[string]any{
		"status":     status,
		"code":       code,
		"message":    message,
		"path":       c.Request.URL.Path,
		"method":     c.Request.Method,
		"request_id": c.GetString("requestId"),
	})

	c.AbortWithStatusJSON(status, ErrorResponse{
		Error: ErrorBody{
			Code:    code,
			Message: message,
			Details: details,
		},
	})
}

// FailureBody is the engine-level failure shape: success flag plus a
// human-readable explanation. Domain endpoints use it so a caller can
// branch on `success` without inspecting HTTP status codes.
type FailureBody struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}

// Failure sends a domain failure response without aborting the chain.
func Failure(c *gin.Context, status int, message string) {
	telemetry.Warn("request.failure", map[string]any{
		"status":     status,
		"error":      message,
		"path":       c.Request.URL.Path,
		"method":     c.Request.Method,
		"request_id": c.GetString("requestId"),
	})

	c.JSON(status, FailureBody{Success: false, Error: message})
}
