package gormpersistence

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"job-catalog/internal/domain"
	"job-catalog/internal/repository"
)

// GormResumeRepository 是 ResumeRepository 接口的 GORM 实现
type GormResumeRepository struct {
	db      *gorm.DB
	matcher Matcher
}

// NewGormResumeRepository 创建 GormResumeRepository 实例
func NewGormResumeRepository(db *gorm.DB, matcher Matcher) *GormResumeRepository {
	if db == nil {
		panic("database connection cannot be nil for GormResumeRepository")
	}
	return &GormResumeRepository{db: db, matcher: matcher}
}

// Create 插入简历，ID 与 CreatedAt 由数据库回填
func (r *GormResumeRepository) Create(ctx context.Context, res *domain.Resume) error {
	if err := r.db.WithContext(ctx).Create(res).Error; err != nil {
		return fmt.Errorf("gorm: create resume '%s': %w", res.FullName, err)
	}
	return nil
}

// FindByID 根据 ID 查找简历
func (r *GormResumeRepository) FindByID(ctx context.Context, id uint) (*domain.Resume, error) {
	var res domain.Resume
	err := r.db.WithContext(ctx).First(&res, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrResumeNotFound
		}
		return nil, fmt.Errorf("gorm: find resume by id %d: %w", id, err)
	}
	return &res, nil
}

// Update 在事务内读取记录、合并补丁，只写回发生变化的列
func (r *GormResumeRepository) Update(ctx context.Context, id uint, patch domain.ResumePatch) (*domain.Resume, error) {
	var res domain.Resume
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&res, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return repository.ErrResumeNotFound
			}
			return fmt.Errorf("gorm: load resume %d for update: %w", id, err)
		}
		cols := patch.Apply(&res)
		if len(cols) == 0 {
			return nil // 空补丁，不产生写入
		}
		// Select 让 nil 指针也写成 NULL
		if err := tx.Model(&res).Select(cols).Updates(&res).Error; err != nil {
			return fmt.Errorf("gorm: update resume %d columns %v: %w", id, cols, err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &res, nil
}

// Delete 物理删除简历
func (r *GormResumeRepository) Delete(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Delete(&domain.Resume{}, id)
	if result.Error != nil {
		return fmt.Errorf("gorm: delete resume %d: %w", id, result.Error)
	}
	if result.RowsAffected == 0 {
		return repository.ErrResumeNotFound
	}
	return nil
}

// List 按 ID 升序分页列出简历
func (r *GormResumeRepository) List(ctx context.Context, page domain.Page) ([]domain.Resume, error) {
	resumes := []domain.Resume{}
	if err := r.db.WithContext(ctx).Scopes(paginate(page)).Find(&resumes).Error; err != nil {
		return nil, fmt.Errorf("gorm: list resumes (offset %d, limit %d): %w", page.Offset, page.Limit, err)
	}
	return resumes, nil
}

// Search 按过滤条件分页搜索简历，没有命中时返回空切片
func (r *GormResumeRepository) Search(ctx context.Context, filter domain.ResumeFilter) ([]domain.Resume, error) {
	resumes := []domain.Resume{}
	err := r.db.WithContext(ctx).Scopes(r.matcher.ResumeScopes(filter)...).Find(&resumes).Error
	if err != nil {
		return nil, fmt.Errorf("gorm: search resumes: %w", err)
	}
	return resumes, nil
}
