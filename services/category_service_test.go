package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/akinalp/directory/models"
	"github.com/akinalp/directory/pkg/cache"
)

// countingCategoryRepo, GetAll çağrılarını sayan sahte repository.
type countingCategoryRepo struct {
	calls int
	err   error
}

func (r *countingCategoryRepo) Create(context.Context, *models.Category) error { return nil }

func (r *countingCategoryRepo) GetByName(context.Context, string) (*models.Category, error) {
	return nil, nil
}

func (r *countingCategoryRepo) GetAll(context.Context) ([]models.Category, error) {
	r.calls++
	if r.err != nil {
		return nil, r.err
	}
	return []models.Category{{ID: 1, Name: "Gaming"}}, nil
}

func TestCategoryServiceCachesResult(t *testing.T) {
	repo := &countingCategoryRepo{}
	c := cache.New[string, []models.Category](time.Minute, 0)
	defer c.Close()

	svc := NewCategoryService(repo, c)

	for range 3 {
		got, err := svc.GetAll(context.Background())
		require.NoError(t, err)
		assert.Len(t, got, 1)
	}
	assert.Equal(t, 1, repo.calls)
}

func TestCategoryServiceWithoutCache(t *testing.T) {
	repo := &countingCategoryRepo{}
	svc := NewCategoryService(repo, nil)

	_, _ = svc.GetAll(context.Background())
	_, _ = svc.GetAll(context.Background())
	assert.Equal(t, 2, repo.calls)
}

func TestCategoryServiceDoesNotCacheErrors(t *testing.T) {
	repo := &countingCategoryRepo{err: errors.New("db down")}
	c := cache.New[string, []models.Category](time.Minute, 0)
	defer c.Close()

	svc := NewCategoryService(repo, c)

	_, err := svc.GetAll(context.Background())
	require.Error(t, err)

	repo.err = nil
	got, err := svc.GetAll(context.Background())
	require.NoError(t, err)
	assert.Len(t, got, 1)
	assert.Equal(t, 2, repo.calls)
}
