package repository

import (
	"context"

	"github.com/akinalp/directory/models"
)

// CategoryRepository, kategori veritabanı işlemleri için interface.
type CategoryRepository interface {
	Create(ctx context.Context, category *models.Category) error
	GetByName(ctx context.Context, name string) (*models.Category, error)
	// GetAll, tüm kategorileri isme göre sıralı döner.
	GetAll(ctx context.Context) ([]models.Category, error)
}
