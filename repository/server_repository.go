package repository

import (
	"context"

	"github.com/akinalp/directory/models"
)

// ServerRepository, sunucu veritabanı işlemleri için interface.
type ServerRepository interface {
	// List, ServerQuery'ye uyan sunucuları döner. Sonuç asla nil değildir.
	List(ctx context.Context, q ServerQuery) ([]models.Server, error)

	// Exists, ServerQuery'ye uyan en az bir sunucu var mı.
	Exists(ctx context.Context, q ServerQuery) (bool, error)

	Create(ctx context.Context, server *models.Server) error

	// AddMember, kullanıcıyı sunucuya üye yapar. Zaten üyeyse hata dönmez.
	AddMember(ctx context.Context, serverID int64, userID string) error
}
