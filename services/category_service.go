package services

import (
	"context"

	"github.com/akinalp/directory/models"
	"github.com/akinalp/directory/pkg/cache"
	"github.com/akinalp/directory/repository"
)

// CategoryService, kategori listesini sunar.
type CategoryService interface {
	GetAll(ctx context.Context) ([]models.Category, error)
}

const allCategoriesKey = "all"

type categoryService struct {
	categoryRepo repository.CategoryRepository
	cache        *cache.TTLCache[string, []models.Category]
}

// NewCategoryService, constructor.
// cache nil ise her istekte DB'ye gidilir.
func NewCategoryService(categoryRepo repository.CategoryRepository, c *cache.TTLCache[string, []models.Category]) CategoryService {
	return &categoryService{
		categoryRepo: categoryRepo,
		cache:        c,
	}
}

// GetAll, kategorileri isim sırasında döner. Kategoriler sadece seed ile değiştiği için
// sonuç TTL süresince cache'ten okunur.
func (s *categoryService) GetAll(ctx context.Context) ([]models.Category, error) {
	if s.cache == nil {
		return s.categoryRepo.GetAll(ctx)
	}

	return s.cache.GetOrLoad(allCategoriesKey, func() ([]models.Category, error) {
		return s.categoryRepo.GetAll(ctx)
	})
}
