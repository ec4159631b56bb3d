// Handler katmanı başlatma.

package main

import (
	"github.com/akinalp/directory/handlers"
	"github.com/akinalp/directory/pkg/metrics"
	"github.com/akinalp/directory/pkg/ratelimit"
)

// Handlers, tüm handler instance'larını tutan container struct.
type Handlers struct {
	Auth     *handlers.AuthHandler
	Server   *handlers.ServerHandler
	Category *handlers.CategoryHandler
	Health   *handlers.HealthHandler
}

// initHandlers, handler'ları service, DB ping ve rate limiter dependency'leri ile oluşturur.
func initHandlers(
	svcs *Services,
	db handlers.Pinger,
	loginLimiter *ratelimit.LoginRateLimiter,
	m *metrics.Metrics,
) *Handlers {
	return &Handlers{
		Auth:     handlers.NewAuthHandler(svcs.Auth, loginLimiter),
		Server:   handlers.NewServerHandler(svcs.Server, m),
		Category: handlers.NewCategoryHandler(svcs.Category),
		Health:   handlers.NewHealthHandler(db),
	}
}
