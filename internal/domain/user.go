package domain

import (
	"github.com/golang-jwt/jwt/v5"
)

// Papéis aceitos nos tokens
const (
	RoleAdmin  = 1
	RoleClient = 3
)

// Claims é a identidade autenticada extraída do bearer token
type Claims struct {
	UserID   UserID `json:"user_id"`
	UserRole int    `json:"role_id"`
	jwt.RegisteredClaims
}

func (c *Claims) IsAdmin() bool {
	return c != nil && c.UserRole == RoleAdmin
}
