package service

import (
	"context"

	"github.com/sirupsen/logrus"

	"job-catalog/internal/domain"
	apperrors "job-catalog/internal/errors"
	"job-catalog/internal/repository"
)

// ResumeService 负责简历的增删改查与搜索。
type ResumeService struct {
	repo repository.ResumeRepository
}

// NewResumeService 创建 ResumeService 实例。
func NewResumeService(repo repository.ResumeRepository) *ResumeService {
	if repo == nil {
		panic("ResumeRepository cannot be nil for ResumeService")
	}
	return &ResumeService{repo: repo}
}

// Create 保存新简历，返回带 ID 和创建时间的记录。
func (s *ResumeService) Create(ctx context.Context, r *domain.Resume) (*domain.Resume, error) {
	logCtx := logrus.WithFields(logrus.Fields{"full_name": r.FullName, "position": r.Position})

	if err := s.repo.Create(ctx, r); err != nil {
		logCtx.WithError(err).Error("Failed to create resume")
		return nil, mapRepoError(err, ErrResumeNotFound, "create resume")
	}

	logCtx.WithField("resume_id", r.ID).Info("Resume created")
	return r, nil
}

func (s *ResumeService) Get(ctx context.Context, id uint) (*domain.Resume, error) {
	r, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, s.fail(err, id, "get resume")
	}
	return r, nil
}

func (s *ResumeService) List(ctx context.Context, page domain.Page) ([]domain.Resume, error) {
	rs, err := s.repo.List(ctx, page)
	if err != nil {
		logrus.WithFields(logrus.Fields{"offset": page.Offset, "limit": page.Limit}).
			WithError(err).Error("Failed to list resumes")
		return nil, mapRepoError(err, ErrResumeNotFound, "list resumes")
	}
	return rs, nil
}

// Update 部分更新简历，未出现在补丁中的字段保持不变。
func (s *ResumeService) Update(ctx context.Context, id uint, patch domain.ResumePatch) (*domain.Resume, error) {
	r, err := s.repo.Update(ctx, id, patch)
	if err != nil {
		return nil, s.fail(err, id, "update resume")
	}
	logrus.WithField("resume_id", id).Info("Resume updated")
	return r, nil
}

func (s *ResumeService) Delete(ctx context.Context, id uint) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return s.fail(err, id, "delete resume")
	}
	logrus.WithField("resume_id", id).Info("Resume deleted")
	return nil
}

// Search 按过滤条件搜索简历；没有命中时返回空切片。
func (s *ResumeService) Search(ctx context.Context, filter domain.ResumeFilter) ([]domain.Resume, error) {
	rs, err := s.repo.Search(ctx, filter)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"query":    filter.Text,
			"location": filter.Location,
			"offset":   filter.Page.Offset,
			"limit":    filter.Page.Limit,
		}).WithError(err).Error("Failed to search resumes")
		return nil, mapRepoError(err, ErrResumeNotFound, "search resumes")
	}
	return rs, nil
}

// fail 记录日志并映射错误；记录不存在只是客户端错误，用 Warn 级别。
func (s *ResumeService) fail(err error, id uint, op string) error {
	mapped := mapRepoError(err, ErrResumeNotFound, op)
	logCtx := logrus.WithField("resume_id", id).WithError(err)
	if apperrors.TypeOf(mapped) == apperrors.ErrTypeNotFound {
		logCtx.Warnf("%s: not found", op)
	} else {
		logCtx.Errorf("%s failed", op)
	}
	return mapped
}
