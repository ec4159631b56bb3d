package repository

import (
	"context"
	"fmt"
	"strings"

	"github.com/akinalp/directory/database"
	"github.com/akinalp/directory/models"
)

type sqliteChannelRepo struct {
	db database.TxQuerier
}

// NewSQLiteChannelRepo, constructor.
func NewSQLiteChannelRepo(db database.TxQuerier) ChannelRepository {
	return &sqliteChannelRepo{db: db}
}

func (r *sqliteChannelRepo) Create(ctx context.Context, channel *models.Channel) error {
	query := `
		INSERT INTO channels (server_id, name, topic, owner_id)
		VALUES (?, ?, ?, ?)
		RETURNING id`

	err := r.db.QueryRowContext(ctx, query,
		channel.ServerID,
		channel.Name,
		channel.Topic,
		channel.OwnerID,
	).Scan(&channel.ID)

	if err != nil {
		return fmt.Errorf("failed to create channel: %w", err)
	}

	return nil
}

func (r *sqliteChannelRepo) ListByServers(ctx context.Context, serverIDs []int64) (map[int64][]models.Channel, error) {
	result := make(map[int64][]models.Channel, len(serverIDs))
	if len(serverIDs) == 0 {
		return result, nil
	}

	placeholders := strings.TrimSuffix(strings.Repeat("?,", len(serverIDs)), ",")
	args := make([]any, len(serverIDs))
	for i, id := range serverIDs {
		args[i] = id
	}

	query := `
		SELECT id, server_id, name, topic, owner_id
		FROM channels
		WHERE server_id IN (` + placeholders + `)
		ORDER BY server_id ASC, id ASC`

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list channels by servers: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var ch models.Channel
		if err := rows.Scan(&ch.ID, &ch.ServerID, &ch.Name, &ch.Topic, &ch.OwnerID); err != nil {
			return nil, fmt.Errorf("failed to scan channel row: %w", err)
		}
		result[ch.ServerID] = append(result[ch.ServerID], ch)
	}

	return result, rows.Err()
}
