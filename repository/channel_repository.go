package repository

import (
	"context"

	"github.com/akinalp/directory/models"
)

// ChannelRepository, kanal veritabanı işlemleri için interface.
type ChannelRepository interface {
	Create(ctx context.Context, channel *models.Channel) error
	// ListByServers, verilen sunuculara ait kanalları server ID'ye göre gruplar.
	// Sunucu listesi serialize edilirken N+1 sorgu yerine tek sorgu atılır.
	ListByServers(ctx context.Context, serverIDs []int64) (map[int64][]models.Channel, error)
}
