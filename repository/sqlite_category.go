package repository

import (
	"context"
	"fmt"

	"github.com/akinalp/directory/database"
	"github.com/akinalp/directory/models"
	"github.com/akinalp/directory/pkg"
)

// sqliteCategoryRepo, CategoryRepository interface'inin SQLite implementasyonu.
type sqliteCategoryRepo struct {
	db database.TxQuerier
}

// NewSQLiteCategoryRepo, constructor: interface döner.
func NewSQLiteCategoryRepo(db database.TxQuerier) CategoryRepository {
	return &sqliteCategoryRepo{db: db}
}

func (r *sqliteCategoryRepo) Create(ctx context.Context, category *models.Category) error {
	query := `
		INSERT INTO categories (name, description, icon)
		VALUES (?, ?, ?)
		RETURNING id`

	err := r.db.QueryRowContext(ctx, query,
		category.Name,
		category.Description,
		category.Icon,
	).Scan(&category.ID)

	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: category %q already exists", pkg.ErrAlreadyExists, category.Name)
		}
		return fmt.Errorf("failed to create category: %w", err)
	}

	return nil
}

func (r *sqliteCategoryRepo) GetByName(ctx context.Context, name string) (*models.Category, error) {
	query := `SELECT id, name, description, icon FROM categories WHERE name = ?`

	cat := &models.Category{}
	err := r.db.QueryRowContext(ctx, query, name).Scan(&cat.ID, &cat.Name, &cat.Description, &cat.Icon)
	if err != nil {
		return nil, wrapNotFound(err, "failed to get category by name")
	}

	return cat, nil
}

func (r *sqliteCategoryRepo) GetAll(ctx context.Context) ([]models.Category, error) {
	query := `SELECT id, name, description, icon FROM categories ORDER BY name ASC`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to get categories: %w", err)
	}
	defer rows.Close()

	categories := []models.Category{}
	for rows.Next() {
		var cat models.Category
		if err := rows.Scan(&cat.ID, &cat.Name, &cat.Description, &cat.Icon); err != nil {
			return nil, fmt.Errorf("failed to scan category row: %w", err)
		}
		categories = append(categories, cat)
	}

	return categories, rows.Err()
}
