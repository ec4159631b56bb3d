// Server, üyeleri ve bir kategorisi olan topluluk sunucusudur (Discord'daki "guild").
// Bu serviste sunucular sadece okunur; oluşturma fixture/migration ile yapılır.

package models

import "time"

// Server, "servers" tablosundaki bir satır + sorgu sırasında hesaplanan alanlar.
type Server struct {
	ID           int64
	Name         string
	OwnerID      string
	CategoryID   int64
	CategoryName string
	Description  *string
	Icon         *string
	Banner       *string
	CreatedAt    time.Time

	// MemberCount, sadece sorgu üye sayısı annotation'ı ile çalıştırıldığında doludur.
	MemberCount *int
}

// ServerListParams, GET /api/servers query parametreleri.
// Değerler ham string olarak taşınır; yorumlama (bool/int parse) service katmanındadır.
type ServerListParams struct {
	Category   string `schema:"category"`
	Qty        string `schema:"qty"`
	ByUser     string `schema:"by_user"`
	ByServerID string `schema:"by_serverid"`
	NumMembers string `schema:"num_members"`
}

// FilterByUser, by_user=true istendi mi. Sadece tam olarak "true" kabul edilir.
func (p ServerListParams) FilterByUser() bool {
	return p.ByUser == "true"
}

// WithMemberCount, num_members=true istendi mi.
func (p ServerListParams) WithMemberCount() bool {
	return p.NumMembers == "true"
}

// ServerResponse, sunucunun API'deki serialize edilmiş hali.
type ServerResponse struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Description *string   `json:"description"`
	Icon        *string   `json:"icon"`
	Banner      *string   `json:"banner"`
	OwnerID     string    `json:"owner_id"`
	Category    string    `json:"category"`
	Channels    []Channel `json:"channels"`
	CreatedAt   time.Time `json:"created_at"`

	// NumMembers, num_members=true istenmediyse JSON'da hiç yer almaz.
	// Pointer: istenip 0 olduğunda "num_members": 0 yazılabilsin diye.
	NumMembers *int `json:"num_members,omitempty"`
}

// NewServerResponse, Server'ı API formatına çevirir.
// channels nil ise boş array yazılır; withMemberCount false ise sayı gizlenir.
func NewServerResponse(s Server, channels []Channel, withMemberCount bool) ServerResponse {
	if channels == nil {
		channels = []Channel{}
	}

	resp := ServerResponse{
		ID:          s.ID,
		Name:        s.Name,
		Description: s.Description,
		Icon:        s.Icon,
		Banner:      s.Banner,
		OwnerID:     s.OwnerID,
		Category:    s.CategoryName,
		Channels:    channels,
		CreatedAt:   s.CreatedAt,
	}

	if withMemberCount {
		count := 0
		if s.MemberCount != nil {
			count = *s.MemberCount
		}
		resp.NumMembers = &count
	}

	return resp
}
