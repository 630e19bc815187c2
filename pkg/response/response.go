package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// OK sends 200 JSON with data. Payloads carry their own timestamp field.
func OK(c *gin.Context, data any) {
	c.JSON(http.StatusOK, data)
}

// Error sends an error body with the given status code.
func Error(c *gin.Context, status int, err error) {
	c.AbortWithStatusJSON(status, ErrorResp{
		Error:     err.Error(),
		Timestamp: Now(),
	})
}

// BadRequest sends 400.
func BadRequest(c *gin.Context, err error) {
	Error(c, http.StatusBadRequest, err)
}

// Forbidden sends 403.
func Forbidden(c *gin.Context, err error) {
	Error(c, http.StatusForbidden, err)
}

// InternalError sends 500 without leaking err to the caller.
func InternalError(c *gin.Context, err error) {
	c.AbortWithStatusJSON(http.StatusInternalServerError, ErrorResp{
		Error:     DefaultErrorMessage,
		Timestamp: Now(),
	})
}
