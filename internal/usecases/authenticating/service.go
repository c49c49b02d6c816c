package authenticating

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/vfg2006/ledger-integrations-api/internal/config"
	"github.com/vfg2006/ledger-integrations-api/internal/domain"
)

// Authenticator resolve a identidade do chamador a partir do bearer token.
// Emissão de tokens existe para ferramentas internas e testes; login de usuário fica fora deste serviço.
type Authenticator interface {
	ValidateToken(tokenString string) (*domain.Claims, error)
	IssueToken(userID domain.UserID, role int, ttl time.Duration) (string, error)
}

type Service struct {
	secret []byte
}

func NewService(cfg config.Auth) (*Service, error) {
	if cfg.Secret == "" {
		return nil, ErrMissingSecret
	}
	return &Service{secret: []byte(cfg.Secret)}, nil
}

func (s *Service) IssueToken(userID domain.UserID, role int, ttl time.Duration) (string, error) {
	if userID == "" {
		return "", ErrMissingUserID
	}

	claims := domain.Claims{
		UserID:   userID,
		UserRole: role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   string(userID),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}

func (s *Service) ValidateToken(tokenString string) (*domain.Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &domain.Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.secret, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrExpiredToken
		}
		return nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}

	claims, ok := token.Claims.(*domain.Claims)
	if !ok || !token.Valid {
		return nil, ErrInvalidToken
	}

	if claims.UserID == "" {
		return nil, ErrMissingUserID
	}

	return claims, nil
}
