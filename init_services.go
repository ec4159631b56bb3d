// Service katmanı başlatma.

package main

import (
	"github.com/rs/zerolog"

	"github.com/akinalp/directory/config"
	"github.com/akinalp/directory/models"
	"github.com/akinalp/directory/pkg/cache"
	"github.com/akinalp/directory/pkg/logger"
	"github.com/akinalp/directory/services"
)

// Services, tüm service instance'larını tutan container struct.
type Services struct {
	Auth     services.AuthService
	Server   services.ServerService
	Category services.CategoryService
}

// initServices, service'leri repository'ler ve config ile oluşturur.
func initServices(
	repos *Repositories,
	cfg *config.Config,
	categoryCache *cache.TTLCache[string, []models.Category],
	root zerolog.Logger,
) *Services {
	return &Services{
		Auth:     services.NewAuthService(repos.User, cfg.JWT.Secret, cfg.JWT.AccessTokenExpiry),
		Server:   services.NewServerService(repos.Server, repos.Channel, logger.Component(root, "servers")),
		Category: services.NewCategoryService(repos.Category, categoryCache),
	}
}
