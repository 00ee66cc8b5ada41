package http

import (
	"github.com/gin-gonic/gin"

	apperrors "job-catalog/internal/errors"
)

// ErrorResponse 输出 {"error": message}
func ErrorResponse(c *gin.Context, code int, message string) {
	c.JSON(code, gin.H{"error": message})
}

// ValidationErrorResponse 在错误消息之外附带逐字段的违规列表
func ValidationErrorResponse(c *gin.Context, code int, message string, details []apperrors.Violation) {
	if details == nil {
		details = []apperrors.Violation{}
	}
	c.JSON(code, gin.H{"error": message, "details": details})
}

func SuccessResponse(c *gin.Context, code int, data interface{}) {
	c.JSON(code, data)
}
