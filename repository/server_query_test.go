package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestServerQueryIsImmutable(t *testing.T) {
	base := NewServerQuery().InCategory("Gaming")
	derived := base.MemberOf("u1").WithID(3).Limit(2)

	baseSQL, baseArgs := base.build()
	assert.NotContains(t, baseSQL, "server_members")
	assert.NotContains(t, baseSQL, "LIMIT")
	assert.Equal(t, []any{"Gaming"}, baseArgs)

	derivedSQL, derivedArgs := derived.build()
	assert.Contains(t, derivedSQL, "m.user_id = ?")
	assert.Contains(t, derivedSQL, "s.id = ?")
	assert.Contains(t, derivedSQL, "LIMIT ?")
	assert.Equal(t, []any{"Gaming", "u1", int64(3), 2}, derivedArgs)
}

func TestServerQueryBuild(t *testing.T) {
	sql, args := NewServerQuery().build()
	assert.NotContains(t, sql, "WHERE")
	assert.Contains(t, sql, "ORDER BY s.id ASC")
	assert.Empty(t, args)

	sql, _ = NewServerQuery().WithMemberCount().build()
	assert.Contains(t, sql, "AS num_members")
	assert.True(t, NewServerQuery().WithMemberCount().HasMemberCount())
}

func TestServerQueryExistsIgnoresLimit(t *testing.T) {
	sql, args := NewServerQuery().WithID(9).Limit(0).buildExists()
	assert.Contains(t, sql, "SELECT EXISTS")
	assert.NotContains(t, sql, "LIMIT")
	assert.Equal(t, []any{int64(9)}, args)
}

func TestServerQueryNegativeLimit(t *testing.T) {
	_, args := NewServerQuery().Limit(-5).build()
	assert.Equal(t, []any{0}, args)
}
