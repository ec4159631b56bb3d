// Package middleware, HTTP request pipeline'ına eklenen ara katmanları barındırır.
//
// Her middleware func(next http.Handler) http.Handler imzasındadır; alice.Chain ile
// zincirlenir. Hata varsa next çağrılmaz ve request burada durur.
package middleware

import (
	"net/http"
	"strings"

	"github.com/akinalp/directory/handlers"
	"github.com/akinalp/directory/models"
	"github.com/akinalp/directory/pkg"
	"github.com/akinalp/directory/repository"
	"github.com/akinalp/directory/services"
)

// AuthMiddleware, JWT token doğrulama middleware'ı.
type AuthMiddleware struct {
	authService services.AuthService
	userRepo    repository.UserRepository
}

// NewAuthMiddleware, constructor.
func NewAuthMiddleware(authService services.AuthService, userRepo repository.UserRepository) *AuthMiddleware {
	return &AuthMiddleware{
		authService: authService,
		userRepo:    userRepo,
	}
}

// Require, geçerli bir Bearer token zorunlu kılar. Yoksa 401.
func (m *AuthMiddleware) Require(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") == "" {
			pkg.ErrorWithMessage(w, http.StatusUnauthorized, "authorization header required")
			return
		}

		user, ok := m.authenticate(w, r)
		if !ok {
			return
		}

		next.ServeHTTP(w, r.WithContext(handlers.WithUser(r.Context(), user)))
	})
}

// Optional, Authorization header yoksa isteği anonim olarak geçirir.
// Header varsa Require ile aynı doğrulamayı yapar: geçersiz token anonim
// sayılmaz, 401 döner.
func (m *AuthMiddleware) Optional(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") == "" {
			next.ServeHTTP(w, r)
			return
		}

		user, ok := m.authenticate(w, r)
		if !ok {
			return
		}

		next.ServeHTTP(w, r.WithContext(handlers.WithUser(r.Context(), user)))
	})
}

// authenticate, header'daki token'ı doğrulayıp kullanıcıyı DB'den getirir.
// Başarısızsa yanıtı yazar ve ok=false döner.
func (m *AuthMiddleware) authenticate(w http.ResponseWriter, r *http.Request) (*models.User, bool) {
	authHeader := r.Header.Get("Authorization")
	if !strings.HasPrefix(authHeader, "Bearer ") {
		pkg.ErrorWithMessage(w, http.StatusUnauthorized, "invalid authorization format, use: Bearer <token>")
		return nil, false
	}
	tokenString := strings.TrimPrefix(authHeader, "Bearer ")

	claims, err := m.authService.ValidateAccessToken(tokenString)
	if err != nil {
		pkg.Error(w, r, err)
		return nil, false
	}

	// Token geçerli ama kullanıcı silinmiş olabilir.
	user, err := m.userRepo.GetByID(r.Context(), claims.UserID)
	if err != nil {
		pkg.ErrorWithMessage(w, http.StatusUnauthorized, "user not found")
		return nil, false
	}

	user.PasswordHash = ""
	return user, true
}
