package repository

import (
	"context"

	"job-catalog/internal/domain"
)

// ResumeRepository 定义了简历记录的存储和查询，语义与 VacancyRepository 一致。
type ResumeRepository interface {
	Create(ctx context.Context, r *domain.Resume) error
	FindByID(ctx context.Context, id uint) (*domain.Resume, error)
	Update(ctx context.Context, id uint, patch domain.ResumePatch) (*domain.Resume, error)
	Delete(ctx context.Context, id uint) error
	List(ctx context.Context, page domain.Page) ([]domain.Resume, error)
	Search(ctx context.Context, filter domain.ResumeFilter) ([]domain.Resume, error)
}
