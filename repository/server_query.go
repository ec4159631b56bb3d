package repository

import (
	"strings"
)

// ServerQuery, sunucu listesi için değiştirilemez (immutable) sorgu tanımı.
//
// Her method value receiver'dır ve yeni bir kopya döner; temel sorgu hiçbir
// zaman değişmez. Bu sayede aynı temelden farklı sorgular türetilebilir:
//
//	base := NewServerQuery().InCategory("Gaming")
//	mine := base.MemberOf(userID)   // base etkilenmez
type ServerQuery struct {
	category    string
	hasCategory bool

	memberID  string
	hasMember bool

	serverID    int64
	hasServerID bool

	withMemberCount bool

	limit    int
	hasLimit bool
}

// NewServerQuery, filtresiz temel sorgu: tüm sunucular, id sırasında.
func NewServerQuery() ServerQuery {
	return ServerQuery{}
}

// InCategory, kategori ismine göre tam eşleşme filtresi ekler.
func (q ServerQuery) InCategory(name string) ServerQuery {
	q.category = name
	q.hasCategory = true
	return q
}

// MemberOf, sadece userID'nin üye olduğu sunucuları bırakır.
func (q ServerQuery) MemberOf(userID string) ServerQuery {
	q.memberID = userID
	q.hasMember = true
	return q
}

// WithMemberCount, her satıra sunucunun toplam üye sayısını ekler.
// Sayım MemberOf filtresinden etkilenmez.
func (q ServerQuery) WithMemberCount() ServerQuery {
	q.withMemberCount = true
	return q
}

// WithID, tek bir sunucu ID'sine göre filtreler.
func (q ServerQuery) WithID(id int64) ServerQuery {
	q.serverID = id
	q.hasServerID = true
	return q
}

// Limit, sonucu ilk n satırla sınırlar. n negatifse 0 kabul edilir.
func (q ServerQuery) Limit(n int) ServerQuery {
	if n < 0 {
		n = 0
	}
	q.limit = n
	q.hasLimit = true
	return q
}

// HasMemberCount, sorgunun üye sayısı kolonunu içerip içermediği.
func (q ServerQuery) HasMemberCount() bool {
	return q.withMemberCount
}

// where, FROM + WHERE kısmını ve argümanlarını üretir.
// SELECT ve EXISTS sorguları aynı filtreyi paylaşır.
func (q ServerQuery) where() (string, []any) {
	var sb strings.Builder
	var args []any
	var conds []string

	sb.WriteString(" FROM servers s JOIN categories c ON c.id = s.category_id")

	if q.hasCategory {
		conds = append(conds, "c.name = ?")
		args = append(args, q.category)
	}
	if q.hasMember {
		conds = append(conds, "EXISTS (SELECT 1 FROM server_members m WHERE m.server_id = s.id AND m.user_id = ?)")
		args = append(args, q.memberID)
	}
	if q.hasServerID {
		conds = append(conds, "s.id = ?")
		args = append(args, q.serverID)
	}

	if len(conds) > 0 {
		sb.WriteString(" WHERE ")
		sb.WriteString(strings.Join(conds, " AND "))
	}

	return sb.String(), args
}

// build, listeleme sorgusunu üretir.
func (q ServerQuery) build() (string, []any) {
	var sb strings.Builder

	sb.WriteString(`SELECT s.id, s.name, s.owner_id, s.category_id, c.name, s.description, s.icon, s.banner, s.created_at`)
	if q.withMemberCount {
		sb.WriteString(`, (SELECT COUNT(DISTINCT sm.user_id) FROM server_members sm WHERE sm.server_id = s.id) AS num_members`)
	}

	from, args := q.where()
	sb.WriteString(from)
	sb.WriteString(" ORDER BY s.id ASC")

	if q.hasLimit {
		sb.WriteString(" LIMIT ?")
		args = append(args, q.limit)
	}

	return sb.String(), args
}

// buildExists, filtreye uyan en az bir satır olup olmadığını soran sorgu.
// Limit dikkate alınmaz.
func (q ServerQuery) buildExists() (string, []any) {
	from, args := q.where()
	return "SELECT EXISTS (SELECT 1" + from + ")", args
}
