package repository

import (
	"context"

	"job-catalog/internal/domain"
)

// VacancyRepository 定义了职位记录的存储和查询。
type VacancyRepository interface {
	// Create 插入一条新记录，成功后回填 ID 与 CreatedAt。
	Create(ctx context.Context, v *domain.Vacancy) error

	// FindByID 根据 ID 查找职位，不存在时返回 ErrVacancyNotFound。
	FindByID(ctx context.Context, id uint) (*domain.Vacancy, error)

	// Update 在同一事务中读取、合并补丁并写回，返回更新后的记录。
	// 补丁为空时不执行写入，直接返回当前记录。
	Update(ctx context.Context, id uint, patch domain.VacancyPatch) (*domain.Vacancy, error)

	// Delete 物理删除记录，不存在时返回 ErrVacancyNotFound。
	Delete(ctx context.Context, id uint) error

	// List 按 ID 升序返回一页记录。
	List(ctx context.Context, page domain.Page) ([]domain.Vacancy, error)

	// Search 按过滤条件返回一页记录，排序与 List 相同。
	Search(ctx context.Context, filter domain.VacancyFilter) ([]domain.Vacancy, error)
}
