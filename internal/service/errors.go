package service

import (
	"errors"
	"fmt"

	apperrors "job-catalog/internal/errors"
	"job-catalog/internal/repository"
)

var (
	ErrVacancyNotFound = errors.New("Вакансия не найдена")
	ErrResumeNotFound  = errors.New("Резюме не найдено")
)

// mapRepoError 将仓库层错误映射到错误分类：
// 记录不存在 -> NOT_FOUND (包装 notFound 哨兵)，其余 -> STORAGE_FAILURE。
func mapRepoError(err error, notFound error, op string) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, repository.ErrNotFound) {
		return apperrors.NotFound(notFound.Error(), notFound)
	}
	return apperrors.StorageFailure(apperrors.MsgStorageFailure, fmt.Errorf("%s: %w", op, err))
}
