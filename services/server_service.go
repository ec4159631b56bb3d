package services

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/rs/zerolog"

	"github.com/akinalp/directory/models"
	"github.com/akinalp/directory/pkg"
	"github.com/akinalp/directory/repository"
)

// ServerService, sunucu listeleme iş mantığı.
type ServerService interface {
	// List, query parametrelerini sabit sırada uygular ve serialize edilmiş sunucuları döner.
	// viewer nil ise istek anonimdir.
	List(ctx context.Context, params models.ServerListParams, viewer *models.User) ([]models.ServerResponse, error)
}

type serverService struct {
	serverRepo  repository.ServerRepository
	channelRepo repository.ChannelRepository
	log         zerolog.Logger
}

// NewServerService, constructor.
func NewServerService(
	serverRepo repository.ServerRepository,
	channelRepo repository.ChannelRepository,
	log zerolog.Logger,
) ServerService {
	return &serverService{
		serverRepo:  serverRepo,
		channelRepo: channelRepo,
		log:         log,
	}
}

// List, filtreleri şu sırayla uygular:
//
//  1. category     → kategori ismine göre filtre
//  2. by_user      → sadece viewer'ın üye olduğu sunucular (by_serverid + auth şart)
//  3. num_members  → üye sayısı kolonu
//  4. by_serverid  → ID filtresi + o ana kadarki filtreyle varlık kontrolü (auth şart)
//  5. qty          → ilk N sonuç
//
// Sıra önemlidir: varlık kontrolü qty'den önce, category ve by_user'dan sonra yapılır.
func (s *serverService) List(ctx context.Context, params models.ServerListParams, viewer *models.User) ([]models.ServerResponse, error) {
	q := repository.NewServerQuery()

	if params.Category != "" {
		q = q.InCategory(params.Category)
	}

	// by_user, by_serverid olmadan da aynı 401'i döner.
	if params.FilterByUser() {
		if params.ByServerID == "" || viewer == nil {
			return nil, fmt.Errorf("%w: authentication credentials were not provided", pkg.ErrUnauthorized)
		}
		q = q.MemberOf(viewer.ID)
	}

	withCount := params.WithMemberCount()
	if withCount {
		q = q.WithMemberCount()
	}

	if params.ByServerID != "" {
		if viewer == nil {
			return nil, fmt.Errorf("%w: authentication credentials were not provided", pkg.ErrUnauthorized)
		}

		id, err := strconv.ParseInt(strings.TrimSpace(params.ByServerID), 10, 64)
		if err != nil {
			return nil, fmt.Errorf("%w: Server value error", pkg.ErrBadRequest)
		}
		q = q.WithID(id)

		exists, err := s.serverRepo.Exists(ctx, q)
		if err != nil {
			return nil, err
		}
		if !exists {
			return nil, fmt.Errorf("%w: Server with id %s not found", pkg.ErrBadRequest, params.ByServerID)
		}
	}

	if params.Qty != "" {
		qty := strings.TrimSpace(params.Qty)
		n, err := strconv.Atoi(qty)
		switch {
		case errors.Is(err, strconv.ErrRange) && !strings.HasPrefix(qty, "-"):
			// int'e sığmayan pozitif bir sayı, tablodaki her satırdan büyüktür: limitsiz.
		case err != nil || n < 0:
			return nil, fmt.Errorf("%w: qty must be a non-negative integer", pkg.ErrBadRequest)
		default:
			q = q.Limit(n)
		}
	}

	servers, err := s.serverRepo.List(ctx, q)
	if err != nil {
		return nil, err
	}

	ids := make([]int64, len(servers))
	for i, srv := range servers {
		ids[i] = srv.ID
	}

	channels, err := s.channelRepo.ListByServers(ctx, ids)
	if err != nil {
		return nil, err
	}

	result := make([]models.ServerResponse, 0, len(servers))
	for _, srv := range servers {
		result = append(result, models.NewServerResponse(srv, channels[srv.ID], withCount))
	}

	s.log.Debug().
		Str("category", params.Category).
		Bool("by_user", params.FilterByUser()).
		Str("by_serverid", params.ByServerID).
		Bool("num_members", withCount).
		Int("count", len(result)).
		Msg("servers listed")

	return result, nil
}
