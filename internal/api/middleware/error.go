package middleware

import (
	"fmt"
	"net/http"

	"field-optimizer/internal/api/models"

	"github.com/gin-gonic/gin"
)

// ErrorHandler converts panics into the standard error envelope so a bug in
// one handler never takes the server down or leaks a stack trace.
func ErrorHandler() gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		message := "An unexpected error occurred"
		switch v := recovered.(type) {
		case string:
			message = v
		case error:
			message = v.Error()
		case fmt.Stringer:
			message = v.String()
		}
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error: models.ErrorDetail{
				Code:    "INTERNAL_ERROR",
				Message: message,
			},
		})
		c.Abort()
	})
}
