package handlers

import (
	"net/http"

	"github.com/gorilla/schema"

	"github.com/akinalp/directory/models"
	"github.com/akinalp/directory/pkg"
	"github.com/akinalp/directory/pkg/metrics"
	"github.com/akinalp/directory/services"
)

// ServerHandler, sunucu listesi endpoint'i.
type ServerHandler struct {
	serverService services.ServerService
	metrics       *metrics.Metrics
	decoder       *schema.Decoder
}

// NewServerHandler, constructor. m nil olabilir.
func NewServerHandler(serverService services.ServerService, m *metrics.Metrics) *ServerHandler {
	decoder := schema.NewDecoder()
	decoder.IgnoreUnknownKeys(true)

	return &ServerHandler{
		serverService: serverService,
		metrics:       m,
		decoder:       decoder,
	}
}

// List godoc
// GET /api/servers?category=&qty=&by_user=&by_serverid=&num_members=
//
// Yanıt envelope'suz düz bir JSON array'dir. Kimlik doğrulama opsiyoneldir;
// by_user ve by_serverid doğrulanmış kullanıcı ister.
func (h *ServerHandler) List(w http.ResponseWriter, r *http.Request) {
	var params models.ServerListParams
	if err := h.decoder.Decode(&params, r.URL.Query()); err != nil {
		pkg.ErrorWithMessage(w, http.StatusBadRequest, "invalid query parameters")
		return
	}

	viewer, _ := UserFromContext(r.Context())

	servers, err := h.serverService.List(r.Context(), params, viewer)
	if err != nil {
		pkg.Error(w, r, err)
		return
	}

	h.metrics.ObserveListSize(len(servers))
	pkg.List(w, http.StatusOK, servers)
}
