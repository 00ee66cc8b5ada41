package repository

import "errors"

// 通用的存储库错误
var (
	// ErrNotFound 表示请求的记录不存在
	ErrNotFound = errors.New("repository: record not found")
)

// 特定资源的错误，与 ErrNotFound 相同，便于调用方 errors.Is 判断
var (
	ErrVacancyNotFound = ErrNotFound
	ErrResumeNotFound  = ErrNotFound
)
