package service

import (
	"context"

	"github.com/sirupsen/logrus"

	"job-catalog/internal/domain"
	apperrors "job-catalog/internal/errors"
	"job-catalog/internal/repository"
)

// VacancyService 负责职位的增删改查与搜索。
type VacancyService struct {
	repo repository.VacancyRepository
}

// NewVacancyService 创建 VacancyService 实例。
func NewVacancyService(repo repository.VacancyRepository) *VacancyService {
	if repo == nil {
		panic("VacancyRepository cannot be nil for VacancyService")
	}
	return &VacancyService{repo: repo}
}

// Create 保存新职位，返回带 ID 和创建时间的记录。
func (s *VacancyService) Create(ctx context.Context, v *domain.Vacancy) (*domain.Vacancy, error) {
	logCtx := logrus.WithFields(logrus.Fields{"title": v.Title, "company": v.Company})

	if err := s.repo.Create(ctx, v); err != nil {
		logCtx.WithError(err).Error("Failed to create vacancy")
		return nil, mapRepoError(err, ErrVacancyNotFound, "create vacancy")
	}

	logCtx.WithField("vacancy_id", v.ID).Info("Vacancy created")
	return v, nil
}

func (s *VacancyService) Get(ctx context.Context, id uint) (*domain.Vacancy, error) {
	v, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, s.fail(err, id, "get vacancy")
	}
	return v, nil
}

func (s *VacancyService) List(ctx context.Context, page domain.Page) ([]domain.Vacancy, error) {
	vs, err := s.repo.List(ctx, page)
	if err != nil {
		logrus.WithFields(logrus.Fields{"offset": page.Offset, "limit": page.Limit}).
			WithError(err).Error("Failed to list vacancies")
		return nil, mapRepoError(err, ErrVacancyNotFound, "list vacancies")
	}
	return vs, nil
}

// Update 部分更新职位，未出现在补丁中的字段保持不变。
func (s *VacancyService) Update(ctx context.Context, id uint, patch domain.VacancyPatch) (*domain.Vacancy, error) {
	v, err := s.repo.Update(ctx, id, patch)
	if err != nil {
		return nil, s.fail(err, id, "update vacancy")
	}
	logrus.WithField("vacancy_id", id).Info("Vacancy updated")
	return v, nil
}

func (s *VacancyService) Delete(ctx context.Context, id uint) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return s.fail(err, id, "delete vacancy")
	}
	logrus.WithField("vacancy_id", id).Info("Vacancy deleted")
	return nil
}

// Search 按过滤条件搜索职位；没有命中时返回空切片。
func (s *VacancyService) Search(ctx context.Context, filter domain.VacancyFilter) ([]domain.Vacancy, error) {
	vs, err := s.repo.Search(ctx, filter)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"query":    filter.Text,
			"location": filter.Location,
			"offset":   filter.Page.Offset,
			"limit":    filter.Page.Limit,
		}).WithError(err).Error("Failed to search vacancies")
		return nil, mapRepoError(err, ErrVacancyNotFound, "search vacancies")
	}
	return vs, nil
}

// fail 记录日志并映射错误；记录不存在只是客户端错误，用 Warn 级别。
func (s *VacancyService) fail(err error, id uint, op string) error {
	mapped := mapRepoError(err, ErrVacancyNotFound, op)
	logCtx := logrus.WithField("vacancy_id", id).WithError(err)
	if apperrors.TypeOf(mapped) == apperrors.ErrTypeNotFound {
		logCtx.Warnf("%s: not found", op)
	} else {
		logCtx.Errorf("%s failed", op)
	}
	return mapped
}
