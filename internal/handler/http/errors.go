package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	apperrors "job-catalog/internal/errors"
)

// HandleServiceError 按错误分类选择状态码并输出错误体。
// 存储失败只返回通用消息，原因和调用栈写入日志。
func HandleServiceError(c *gin.Context, err error) {
	de, ok := apperrors.As(err)
	if !ok {
		_ = c.Error(err)
		logrus.WithError(err).Error("Unhandled internal server error")
		ErrorResponse(c, http.StatusInternalServerError, apperrors.MsgStorageFailure)
		return
	}

	switch de.Type {
	case apperrors.ErrTypeValidation:
		ValidationErrorResponse(c, http.StatusUnprocessableEntity, de.Message, de.Violations)
	case apperrors.ErrTypeNotFound:
		ErrorResponse(c, http.StatusNotFound, de.Message)
	default:
		_ = c.Error(err)
		logrus.WithFields(logrus.Fields{
			"error_type": de.Type,
			"path":       c.FullPath(),
		}).WithError(de.Err).Errorf("Storage failure\n%s", de.StackTrace())
		ErrorResponse(c, http.StatusInternalServerError, apperrors.MsgStorageFailure)
	}
}
