package handlers

import (
	"context"

	"github.com/akinalp/directory/models"
)

// contextKey, context.WithValue için özel tip.
// Düz string key kullanmak başka paketlerle çakışabilir.
type contextKey string

// UserContextKey, auth middleware'ın doğrulanmış kullanıcıyı koyduğu key.
const UserContextKey contextKey = "user"

// WithUser, kullanıcıyı context'e ekler.
func WithUser(ctx context.Context, user *models.User) context.Context {
	return context.WithValue(ctx, UserContextKey, user)
}

// UserFromContext, context'teki kullanıcıyı döner. Anonim istekte ok=false.
func UserFromContext(ctx context.Context) (*models.User, bool) {
	user, ok := ctx.Value(UserContextKey).(*models.User)
	return user, ok && user != nil
}
