package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"job-catalog/internal/domain"
	apperrors "job-catalog/internal/errors"
	"job-catalog/internal/repository"
	"job-catalog/internal/repository/mocks"
	"job-catalog/internal/service"
)

func TestResumeService_CRUD(t *testing.T) {
	repo := mocks.NewResumeRepository(t)
	svc := service.NewResumeService(repo)
	ctx := context.Background()

	repo.On("Create", ctx, mock.AnythingOfType("*domain.Resume")).
		Run(func(args mock.Arguments) { args.Get(1).(*domain.Resume).ID = 11 }).
		Return(nil).Once()
	repo.On("FindByID", ctx, uint(11)).Return(&domain.Resume{ID: 11, Email: "a@b.co"}, nil).Once()
	repo.On("Update", ctx, uint(11), mock.Anything).Return(&domain.Resume{ID: 11, Position: "QA"}, nil).Once()
	repo.On("Delete", ctx, uint(11)).Return(nil).Once()

	created, err := svc.Create(ctx, &domain.Resume{FullName: "Test Person"})
	require.NoError(t, err)
	assert.Equal(t, uint(11), created.ID)

	got, err := svc.Get(ctx, 11)
	require.NoError(t, err)
	assert.Equal(t, "a@b.co", got.Email)

	updated, err := svc.Update(ctx, 11, domain.ResumePatch{Position: domain.To("QA")})
	require.NoError(t, err)
	assert.Equal(t, "QA", updated.Position)

	assert.NoError(t, svc.Delete(ctx, 11))
}

func TestResumeService_NotFound(t *testing.T) {
	repo := mocks.NewResumeRepository(t)
	svc := service.NewResumeService(repo)
	ctx := context.Background()

	repo.On("FindByID", ctx, uint(99)).Return(nil, repository.ErrResumeNotFound).Once()
	repo.On("Delete", ctx, uint(99)).Return(repository.ErrResumeNotFound).Once()

	_, err := svc.Get(ctx, 99)
	assert.ErrorIs(t, err, service.ErrResumeNotFound)
	assert.Equal(t, "Резюме не найдено", mustDomain(t, err).Message)

	err = svc.Delete(ctx, 99)
	assert.Equal(t, apperrors.ErrTypeNotFound, apperrors.TypeOf(err))
}

func TestResumeService_ListAndSearch(t *testing.T) {
	repo := mocks.NewResumeRepository(t)
	svc := service.NewResumeService(repo)
	ctx := context.Background()

	repo.On("List", ctx, mock.Anything).Return(nil, errors.New("database is locked")).Once()
	repo.On("Search", ctx, mock.MatchedBy(func(f domain.ResumeFilter) bool {
		return f.ExperienceYears == "без опыта"
	})).Return([]domain.Resume{{ID: 1}}, nil).Once()

	_, err := svc.List(ctx, domain.NewPage(0, 0))
	assert.Equal(t, apperrors.ErrTypeStorageFailure, apperrors.TypeOf(err))

	found, err := svc.Search(ctx, domain.ResumeFilter{ExperienceYears: "без опыта"})
	require.NoError(t, err)
	assert.Len(t, found, 1)
}
