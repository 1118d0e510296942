// util/response.go
package util

import (
	goerrors "errors"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/clinova/api/errors"
	logger "github.com/clinova/api/logging"
)

// Envelope is the uniform JSON shape of every response. Status is derived
// mechanically from the HTTP status code's leading digit: "success" for 2xx,
// "fail" for 4xx, "error" for 5xx.
type Envelope struct {
	Success bool        `json:"success"`
	Status  string      `json:"status"`
	Message string      `json:"message"`
	Code    *string     `json:"code"`
	Details interface{} `json:"details"`
	Data    interface{} `json:"data,omitempty"`
}

func statusLabel(statusCode int) string {
	switch {
	case statusCode >= 500:
		return "error"
	case statusCode >= 400:
		return "fail"
	default:
		return "success"
	}
}

// RespondSuccess writes a success envelope with the given payload.
func RespondSuccess(c *gin.Context, statusCode int, message string, data interface{}) {
	c.JSON(statusCode, Envelope{
		Success: true,
		Status:  statusLabel(statusCode),
		Message: message,
		Data:    data,
	})
}

// RespondError renders any error through the envelope. Non-AppError failures
// are wrapped as generic 500s with the original text in details only.
func RespondError(c *gin.Context, err error) {
	var appErr *errors.AppError
	if !goerrors.As(err, &appErr) {
		appErr = errors.Internal(err)
	}

	if appErr.StatusCode >= 500 {
		logger.Error(appErr.Message,
			zap.Error(err),
			zap.String("code", appErr.Code),
			zap.String("path", c.Request.URL.Path),
			zap.String("method", c.Request.Method))
	}

	code := appErr.Code
	c.JSON(appErr.StatusCode, Envelope{
		Success: false,
		Status:  statusLabel(appErr.StatusCode),
		Message: appErr.Message,
		Code:    &code,
		Details: appErr.Details,
	})
}

// AbortWithError renders the error and stops the middleware chain.
func AbortWithError(c *gin.Context, err error) {
	RespondError(c, err)
	c.Abort()
}
