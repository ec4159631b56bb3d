package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/akinalp/directory/database"
	"github.com/akinalp/directory/models"
	"github.com/akinalp/directory/pkg"
)

// testRepos, aynı test DB'si üzerindeki repository seti.
type testRepos struct {
	users      UserRepository
	categories CategoryRepository
	servers    ServerRepository
	channels   ChannelRepository
}

func newTestRepos(t *testing.T) testRepos {
	t.Helper()
	db := database.OpenTest(t)
	return testRepos{
		users:      NewSQLiteUserRepo(db.Conn),
		categories: NewSQLiteCategoryRepo(db.Conn),
		servers:    NewSQLiteServerRepo(db.Conn),
		channels:   NewSQLiteChannelRepo(db.Conn),
	}
}

func (r testRepos) mustUser(t *testing.T, name string) *models.User {
	t.Helper()
	u := &models.User{Username: name, PasswordHash: "x"}
	require.NoError(t, r.users.Create(context.Background(), u))
	return u
}

func (r testRepos) mustCategory(t *testing.T, name string) *models.Category {
	t.Helper()
	c := &models.Category{Name: name}
	require.NoError(t, r.categories.Create(context.Background(), c))
	return c
}

func (r testRepos) mustServer(t *testing.T, name string, owner *models.User, cat *models.Category, members ...*models.User) *models.Server {
	t.Helper()
	ctx := context.Background()
	s := &models.Server{Name: name, OwnerID: owner.ID, CategoryID: cat.ID}
	require.NoError(t, r.servers.Create(ctx, s))
	for _, m := range members {
		require.NoError(t, r.servers.AddMember(ctx, s.ID, m.ID))
	}
	return s
}

func serverNames(servers []models.Server) []string {
	names := make([]string, 0, len(servers))
	for _, s := range servers {
		names = append(names, s.Name)
	}
	return names
}

func TestUserRepository(t *testing.T) {
	r := newTestRepos(t)
	ctx := context.Background()

	u := r.mustUser(t, "gopher")
	assert.NotEmpty(t, u.ID)
	assert.False(t, u.CreatedAt.IsZero())

	got, err := r.users.GetByUsername(ctx, "gopher")
	require.NoError(t, err)
	assert.Equal(t, u.ID, got.ID)

	got, err = r.users.GetByID(ctx, u.ID)
	require.NoError(t, err)
	assert.Equal(t, "gopher", got.Username)

	_, err = r.users.GetByID(ctx, "missing")
	assert.ErrorIs(t, err, pkg.ErrNotFound)

	err = r.users.Create(ctx, &models.User{Username: "gopher", PasswordHash: "y"})
	assert.ErrorIs(t, err, pkg.ErrAlreadyExists)
}

func TestCategoryRepository(t *testing.T) {
	r := newTestRepos(t)
	ctx := context.Background()

	r.mustCategory(t, "Music")
	r.mustCategory(t, "Gaming")

	all, err := r.categories.GetAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, "Gaming", all[0].Name)

	got, err := r.categories.GetByName(ctx, "Music")
	require.NoError(t, err)
	assert.Equal(t, "Music", got.Name)

	_, err = r.categories.GetByName(ctx, "Nope")
	assert.ErrorIs(t, err, pkg.ErrNotFound)

	assert.ErrorIs(t, r.categories.Create(ctx, &models.Category{Name: "Music"}), pkg.ErrAlreadyExists)
}

func TestServerRepositoryList(t *testing.T) {
	r := newTestRepos(t)
	ctx := context.Background()

	alice := r.mustUser(t, "alice")
	bob := r.mustUser(t, "bob")
	gaming := r.mustCategory(t, "Gaming")
	music := r.mustCategory(t, "Music")

	s1 := r.mustServer(t, "s1", alice, gaming, alice, bob)
	r.mustServer(t, "s2", alice, music, alice)
	r.mustServer(t, "s3", bob, gaming, bob)

	all, err := r.servers.List(ctx, NewServerQuery())
	require.NoError(t, err)
	assert.Equal(t, []string{"s1", "s2", "s3"}, serverNames(all))
	assert.Equal(t, "Gaming", all[0].CategoryName)
	assert.Nil(t, all[0].MemberCount)

	games, err := r.servers.List(ctx, NewServerQuery().InCategory("Gaming"))
	require.NoError(t, err)
	assert.Equal(t, []string{"s1", "s3"}, serverNames(games))

	mine, err := r.servers.List(ctx, NewServerQuery().MemberOf(alice.ID))
	require.NoError(t, err)
	assert.Equal(t, []string{"s1", "s2"}, serverNames(mine))

	// Üye filtresi sayımı daraltmaz.
	counted, err := r.servers.List(ctx, NewServerQuery().MemberOf(alice.ID).WithMemberCount())
	require.NoError(t, err)
	require.Len(t, counted, 2)
	require.NotNil(t, counted[0].MemberCount)
	assert.Equal(t, 2, *counted[0].MemberCount)
	assert.Equal(t, 1, *counted[1].MemberCount)

	limited, err := r.servers.List(ctx, NewServerQuery().Limit(1))
	require.NoError(t, err)
	assert.Equal(t, []string{"s1"}, serverNames(limited))

	none, err := r.servers.List(ctx, NewServerQuery().Limit(0))
	require.NoError(t, err)
	assert.NotNil(t, none)
	assert.Empty(t, none)

	byID, err := r.servers.List(ctx, NewServerQuery().WithID(s1.ID))
	require.NoError(t, err)
	assert.Equal(t, []string{"s1"}, serverNames(byID))
}

func TestServerRepositoryExists(t *testing.T) {
	r := newTestRepos(t)
	ctx := context.Background()

	alice := r.mustUser(t, "alice")
	gaming := r.mustCategory(t, "Gaming")
	r.mustCategory(t, "Music")
	s := r.mustServer(t, "s1", alice, gaming)

	ok, err := r.servers.Exists(ctx, NewServerQuery().WithID(s.ID))
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = r.servers.Exists(ctx, NewServerQuery().InCategory("Music").WithID(s.ID))
	require.NoError(t, err)
	assert.False(t, ok)

	ok, err = r.servers.Exists(ctx, NewServerQuery().WithID(s.ID+100))
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestServerRepositoryAddMemberIsIdempotent(t *testing.T) {
	r := newTestRepos(t)
	ctx := context.Background()

	alice := r.mustUser(t, "alice")
	s := r.mustServer(t, "s1", alice, r.mustCategory(t, "Gaming"), alice)
	require.NoError(t, r.servers.AddMember(ctx, s.ID, alice.ID))

	got, err := r.servers.List(ctx, NewServerQuery().WithMemberCount())
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, 1, *got[0].MemberCount)
}

func TestChannelRepositoryListByServers(t *testing.T) {
	r := newTestRepos(t)
	ctx := context.Background()

	alice := r.mustUser(t, "alice")
	gaming := r.mustCategory(t, "Gaming")
	s1 := r.mustServer(t, "s1", alice, gaming)
	s2 := r.mustServer(t, "s2", alice, gaming)

	for _, name := range []string{"general", "random"} {
		require.NoError(t, r.channels.Create(ctx, &models.Channel{ServerID: s1.ID, Name: name, OwnerID: alice.ID}))
	}

	byServer, err := r.channels.ListByServers(ctx, []int64{s1.ID, s2.ID})
	require.NoError(t, err)
	require.Len(t, byServer[s1.ID], 2)
	assert.Equal(t, "general", byServer[s1.ID][0].Name)
	assert.Empty(t, byServer[s2.ID])

	empty, err := r.channels.ListByServers(ctx, nil)
	require.NoError(t, err)
	assert.Empty(t, empty)
}
