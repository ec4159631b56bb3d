// HTTP route registration.

package main

import (
	"net/http"

	"github.com/justinas/alice"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/akinalp/directory/middleware"
	"github.com/akinalp/directory/pkg/metrics"
	"github.com/akinalp/directory/repository"
	"github.com/akinalp/directory/services"
)

// initRoutes, route bazlı middleware chain'lerini kurar ve endpoint'leri mux'a bağlar.
// Her route kendi pattern'i ile enstrümante edilir.
func initRoutes(
	mux *http.ServeMux,
	h *Handlers,
	authService services.AuthService,
	userRepo repository.UserRepository,
	m *metrics.Metrics,
	gatherer prometheus.Gatherer,
) {
	authMw := middleware.NewAuthMiddleware(authService, userRepo)

	// Instrument en dışta: auth middleware'ın döndürdüğü 401'ler de sayılır.
	route := func(pattern string, chain alice.Chain, handler http.HandlerFunc) {
		mux.Handle(pattern, alice.New(middleware.Instrument(m, pattern)).Extend(chain).ThenFunc(handler))
	}

	public := alice.New()
	optional := alice.New(authMw.Optional)
	auth := alice.New(authMw.Require)

	// Directory
	route("GET /api/servers", optional, h.Server.List)
	route("GET /api/categories", public, h.Category.List)

	// Auth
	route("POST /api/auth/register", public, h.Auth.Register)
	route("POST /api/auth/login", public, h.Auth.Login)
	route("GET /api/users/me", auth, h.Auth.Me)

	// Ops
	route("GET /api/health", public, h.Health.Check)
	mux.Handle("GET /metrics", metrics.Handler(gatherer))
}
