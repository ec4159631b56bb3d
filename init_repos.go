// Repository katmanı başlatma.

package main

import (
	"database/sql"

	"github.com/akinalp/directory/repository"
)

// Repositories, tüm repository instance'larını tutan container struct.
type Repositories struct {
	User     repository.UserRepository
	Category repository.CategoryRepository
	Server   repository.ServerRepository
	Channel  repository.ChannelRepository
}

// initRepositories, veritabanı bağlantısından tüm repository'leri oluşturur.
// *sql.DB thread-safe connection pool'dur, paylaşılması güvenlidir.
func initRepositories(conn *sql.DB) *Repositories {
	return &Repositories{
		User:     repository.NewSQLiteUserRepo(conn),
		Category: repository.NewSQLiteCategoryRepo(conn),
		Server:   repository.NewSQLiteServerRepo(conn),
		Channel:  repository.NewSQLiteChannelRepo(conn),
	}
}
