package http

import (
	"strconv"

	"github.com/gin-gonic/gin"

	apperrors "job-catalog/internal/errors"
)

// parseID 解析路径中的 :id，非正整数格式一律视为校验错误
func parseID(c *gin.Context) (uint, error) {
	raw := c.Param("id")
	id, err := strconv.ParseUint(raw, 10, strconv.IntSize)
	if err != nil {
		return 0, apperrors.Validation("validation failed", apperrors.Violation{
			Field:   "id",
			Message: "value is not a valid integer",
		})
	}
	return uint(id), nil
}
