package models

import "github.com/golang-jwt/jwt/v5"

// TokenClaims, access token payload'ı.
// models paketinde durur çünkü services ve middleware ikisi de kullanır.
type TokenClaims struct {
	UserID   string `json:"user_id"`
	Username string `json:"username"`
	jwt.RegisteredClaims
}
