package gormpersistence

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"job-catalog/internal/domain"
	"job-catalog/internal/repository"
)

// GormVacancyRepository 是 VacancyRepository 接口的 GORM 实现
type GormVacancyRepository struct {
	db      *gorm.DB
	matcher Matcher
}

// NewGormVacancyRepository 创建 GormVacancyRepository 实例
func NewGormVacancyRepository(db *gorm.DB, matcher Matcher) *GormVacancyRepository {
	if db == nil {
		panic("database connection cannot be nil for GormVacancyRepository")
	}
	return &GormVacancyRepository{db: db, matcher: matcher}
}

// Create 插入职位，ID 与 CreatedAt 由数据库回填
func (r *GormVacancyRepository) Create(ctx context.Context, v *domain.Vacancy) error {
	if err := r.db.WithContext(ctx).Create(v).Error; err != nil {
		return fmt.Errorf("gorm: create vacancy '%s': %w", v.Title, err)
	}
	return nil
}

// FindByID 根据 ID 查找职位
func (r *GormVacancyRepository) FindByID(ctx context.Context, id uint) (*domain.Vacancy, error) {
	var v domain.Vacancy
	err := r.db.WithContext(ctx).First(&v, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrVacancyNotFound
		}
		return nil, fmt.Errorf("gorm: find vacancy by id %d: %w", id, err)
	}
	return &v, nil
}

// Update 在事务内读取记录、合并补丁，只写回发生变化的列
func (r *GormVacancyRepository) Update(ctx context.Context, id uint, patch domain.VacancyPatch) (*domain.Vacancy, error) {
	var v domain.Vacancy
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&v, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return repository.ErrVacancyNotFound
			}
			return fmt.Errorf("gorm: load vacancy %d for update: %w", id, err)
		}
		cols := patch.Apply(&v)
		if len(cols) == 0 {
			return nil // 空补丁，不产生写入
		}
		// Select 让 nil 指针也写成 NULL
		if err := tx.Model(&v).Select(cols).Updates(&v).Error; err != nil {
			return fmt.Errorf("gorm: update vacancy %d columns %v: %w", id, cols, err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &v, nil
}

// Delete 物理删除职位
func (r *GormVacancyRepository) Delete(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Delete(&domain.Vacancy{}, id)
	if result.Error != nil {
		return fmt.Errorf("gorm: delete vacancy %d: %w", id, result.Error)
	}
	if result.RowsAffected == 0 {
		return repository.ErrVacancyNotFound
	}
	return nil
}

// List 按 ID 升序分页列出职位
func (r *GormVacancyRepository) List(ctx context.Context, page domain.Page) ([]domain.Vacancy, error) {
	vacancies := []domain.Vacancy{}
	if err := r.db.WithContext(ctx).Scopes(paginate(page)).Find(&vacancies).Error; err != nil {
		return nil, fmt.Errorf("gorm: list vacancies (offset %d, limit %d): %w", page.Offset, page.Limit, err)
	}
	return vacancies, nil
}

// Search 按过滤条件分页搜索职位，没有命中时返回空切片
func (r *GormVacancyRepository) Search(ctx context.Context, filter domain.VacancyFilter) ([]domain.Vacancy, error) {
	vacancies := []domain.Vacancy{}
	err := r.db.WithContext(ctx).Scopes(r.matcher.VacancyScopes(filter)...).Find(&vacancies).Error
	if err != nil {
		return nil, fmt.Errorf("gorm: search vacancies: %w", err)
	}
	return vacancies, nil
}
