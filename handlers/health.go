package handlers

import (
	"context"
	"net/http"

	"github.com/akinalp/directory/pkg"
)

// Pinger, health check'in ihtiyaç duyduğu tek method. *sql.DB bunu sağlar.
type Pinger interface {
	PingContext(ctx context.Context) error
}

// HealthHandler, liveness/readiness endpoint'i.
type HealthHandler struct {
	db Pinger
}

// NewHealthHandler, constructor.
func NewHealthHandler(db Pinger) *HealthHandler {
	return &HealthHandler{db: db}
}

// Check godoc
// GET /api/health
func (h *HealthHandler) Check(w http.ResponseWriter, r *http.Request) {
	if err := h.db.PingContext(r.Context()); err != nil {
		pkg.ErrorWithMessage(w, http.StatusServiceUnavailable, "database unavailable")
		return
	}

	pkg.JSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
