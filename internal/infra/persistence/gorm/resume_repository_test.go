package gormpersistence_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"job-catalog/internal/domain"
	gormpersistence "job-catalog/internal/infra/persistence/gorm"
	"job-catalog/internal/repository"
	"job-catalog/internal/testutil"
)

func seedResume(t *testing.T, repo *gormpersistence.GormResumeRepository, mutate func(*domain.Resume)) *domain.Resume {
	t.Helper()
	r := &domain.Resume{
		FullName:          "Иванов Иван",
		Position:          "Python Developer",
		About:             "Пять лет коммерческой разработки",
		SalaryExpectation: ptr(150000.0),
		Location:          "Москва",
		EmploymentType:    "Полная",
		ExperienceYears:   "3-6 лет",
		Skills:            ptr("Python, FastAPI"),
		Education:         ptr("МГУ"),
		Email:             "ivanov@example.com",
		Phone:             ptr("+7 900 000-00-00"),
	}
	if mutate != nil {
		mutate(r)
	}
	require.NoError(t, repo.Create(context.Background(), r))
	return r
}

func resumeIDs(rs []domain.Resume) []uint {
	out := make([]uint, 0, len(rs))
	for _, r := range rs {
		out = append(out, r.ID)
	}
	return out
}

func TestResumeRepository_CRUD(t *testing.T) {
	repo := gormpersistence.NewGormResumeRepository(testutil.NewDB(t), gormpersistence.Matcher{})
	ctx := context.Background()

	r := seedResume(t, repo, nil)
	require.NotZero(t, r.ID)

	got, err := repo.FindByID(ctx, r.ID)
	require.NoError(t, err)
	assert.Equal(t, r.Email, got.Email)
	assert.Equal(t, *r.Phone, *got.Phone)

	updated, err := repo.Update(ctx, r.ID, domain.ResumePatch{
		Position: domain.To("Senior Python Developer"),
		Phone:    domain.Clear[string](),
	})
	require.NoError(t, err)
	assert.Equal(t, "Senior Python Developer", updated.Position)
	assert.Nil(t, updated.Phone)

	stored, err := repo.FindByID(ctx, r.ID)
	require.NoError(t, err)
	assert.Equal(t, r.FullName, stored.FullName)
	assert.Equal(t, *r.Education, *stored.Education)
	assert.Nil(t, stored.Phone)
	assert.True(t, r.CreatedAt.Equal(stored.CreatedAt))

	list, err := repo.List(ctx, domain.NewPage(0, 10))
	require.NoError(t, err)
	assert.Equal(t, []uint{r.ID}, resumeIDs(list))

	require.NoError(t, repo.Delete(ctx, r.ID))
	_, err = repo.FindByID(ctx, r.ID)
	assert.ErrorIs(t, err, repository.ErrResumeNotFound)
	assert.ErrorIs(t, repo.Delete(ctx, r.ID), repository.ErrResumeNotFound)
	_, err = repo.Update(ctx, r.ID, domain.ResumePatch{})
	assert.ErrorIs(t, err, repository.ErrResumeNotFound)
}

func TestResumeRepository_Search(t *testing.T) {
	repo := gormpersistence.NewGormResumeRepository(testutil.NewDB(t), gormpersistence.Matcher{})
	ctx := context.Background()

	python := seedResume(t, repo, nil)
	designer := seedResume(t, repo, func(r *domain.Resume) {
		r.FullName = "Петрова Анна"
		r.Position = "UI Designer"
		r.About = "Интерфейсы и прототипы в Figma"
		r.Skills = ptr("Figma, Sketch")
		r.Location = "Казань"
		r.EmploymentType = "Частичная"
		r.ExperienceYears = "1-3 года"
		r.SalaryExpectation = ptr(60000.0)
	})
	open := seedResume(t, repo, func(r *domain.Resume) {
		r.FullName = "Сидоров Пётр"
		r.Position = "Junior QA"
		r.About = "Ручное тестирование веб-приложений"
		r.Skills = nil
		r.ExperienceYears = "без опыта"
		r.SalaryExpectation = nil
	})

	tests := []struct {
		name   string
		filter domain.ResumeFilter
		want   []uint
	}{
		{"no criteria", domain.ResumeFilter{}, []uint{python.ID, designer.ID, open.ID}},
		{"position", domain.ResumeFilter{Text: "Designer"}, []uint{designer.ID}},
		{"full name", domain.ResumeFilter{Text: "Сидоров"}, []uint{open.ID}},
		{"skills", domain.ResumeFilter{Text: "FastAPI"}, []uint{python.ID}},
		{"about", domain.ResumeFilter{Text: "Figma"}, []uint{designer.ID}},
		{"location", domain.ResumeFilter{Location: "Каз"}, []uint{designer.ID}},
		{"employment type", domain.ResumeFilter{EmploymentType: "Полная"}, []uint{python.ID, open.ID}},
		{"experience years", domain.ResumeFilter{ExperienceYears: "без опыта"}, []uint{open.ID}},
		{"salary floor", domain.ResumeFilter{SalaryMin: ptr(100000.0)}, []uint{python.ID, open.ID}},
		{"salary ceiling", domain.ResumeFilter{SalaryMax: ptr(100000.0)}, []uint{designer.ID, open.ID}},
		{"nothing matches", domain.ResumeFilter{Text: "Kubernetes"}, []uint{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := repo.Search(ctx, tt.filter)
			require.NoError(t, err)
			assert.Equal(t, tt.want, resumeIDs(got))
		})
	}
}
