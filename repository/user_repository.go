// Package repository, veritabanı erişim katmanını tanımlar.
//
// Service katmanı doğrudan SQL yazmaz; repository interface'leri üzerinden çalışır.
// Her repository database.TxQuerier alır, böylece aynı kod hem *sql.DB hem
// WithTx içindeki *sql.Tx ile kullanılabilir (fixture yükleme tek transaction'dır).
package repository

import (
	"context"

	"github.com/akinalp/directory/models"
)

// UserRepository, kullanıcı veritabanı işlemleri için interface.
type UserRepository interface {
	// Create, kullanıcıyı ekler. user.ID boşsa yeni UUID üretilir.
	Create(ctx context.Context, user *models.User) error
	GetByID(ctx context.Context, id string) (*models.User, error)
	GetByUsername(ctx context.Context, username string) (*models.User, error)
}
