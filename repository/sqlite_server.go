package repository

import (
	"context"
	"fmt"

	"github.com/akinalp/directory/database"
	"github.com/akinalp/directory/models"
)

// sqliteServerRepo, ServerRepository interface'inin SQLite implementasyonu.
type sqliteServerRepo struct {
	db database.TxQuerier
}

// NewSQLiteServerRepo, constructor.
func NewSQLiteServerRepo(db database.TxQuerier) ServerRepository {
	return &sqliteServerRepo{db: db}
}

func (r *sqliteServerRepo) List(ctx context.Context, q ServerQuery) ([]models.Server, error) {
	query, args := q.build()

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list servers: %w", err)
	}
	defer rows.Close()

	servers := []models.Server{}
	for rows.Next() {
		var s models.Server
		dest := []any{
			&s.ID, &s.Name, &s.OwnerID, &s.CategoryID, &s.CategoryName,
			&s.Description, &s.Icon, &s.Banner, &s.CreatedAt,
		}

		var count int
		if q.HasMemberCount() {
			dest = append(dest, &count)
		}

		if err := rows.Scan(dest...); err != nil {
			return nil, fmt.Errorf("failed to scan server row: %w", err)
		}
		if q.HasMemberCount() {
			s.MemberCount = &count
		}

		servers = append(servers, s)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate server rows: %w", err)
	}

	return servers, nil
}

func (r *sqliteServerRepo) Exists(ctx context.Context, q ServerQuery) (bool, error) {
	query, args := q.buildExists()

	var exists bool
	if err := r.db.QueryRowContext(ctx, query, args...).Scan(&exists); err != nil {
		return false, fmt.Errorf("failed to check server existence: %w", err)
	}

	return exists, nil
}

func (r *sqliteServerRepo) Create(ctx context.Context, server *models.Server) error {
	query := `
		INSERT INTO servers (name, owner_id, category_id, description, icon, banner)
		VALUES (?, ?, ?, ?, ?, ?)
		RETURNING id, created_at`

	err := r.db.QueryRowContext(ctx, query,
		server.Name,
		server.OwnerID,
		server.CategoryID,
		server.Description,
		server.Icon,
		server.Banner,
	).Scan(&server.ID, &server.CreatedAt)

	if err != nil {
		return fmt.Errorf("failed to create server: %w", err)
	}

	return nil
}

func (r *sqliteServerRepo) AddMember(ctx context.Context, serverID int64, userID string) error {
	query := `INSERT OR IGNORE INTO server_members (server_id, user_id) VALUES (?, ?)`

	if _, err := r.db.ExecContext(ctx, query, serverID, userID); err != nil {
		return fmt.Errorf("failed to add server member: %w", err)
	}

	return nil
}
