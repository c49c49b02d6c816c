package authenticating

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/ledger-integrations-api/internal/config"
	"github.com/vfg2006/ledger-integrations-api/internal/domain"
)

func newTestService(t *testing.T) *Service {
	t.Helper()
	s, err := NewService(config.Auth{Secret: "test-secret"})
	require.NoError(t, err)
	return s
}

func TestNewService_RequiresSecret(t *testing.T) {
	_, err := NewService(config.Auth{})
	assert.ErrorIs(t, err, ErrMissingSecret)
}

func TestIssueAndValidateToken(t *testing.T) {
	s := newTestService(t)

	token, err := s.IssueToken("user-1", domain.RoleClient, time.Hour)
	require.NoError(t, err)

	claims, err := s.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, domain.UserID("user-1"), claims.UserID)
	assert.Equal(t, domain.RoleClient, claims.UserRole)
	assert.False(t, claims.IsAdmin())
}

func TestValidateToken_Expired(t *testing.T) {
	s := newTestService(t)

	token, err := s.IssueToken("user-1", domain.RoleAdmin, -time.Minute)
	require.NoError(t, err)

	_, err = s.ValidateToken(token)
	assert.ErrorIs(t, err, ErrExpiredToken)
}

func TestValidateToken_WrongSecret(t *testing.T) {
	other, err := NewService(config.Auth{Secret: "other"})
	require.NoError(t, err)
	token, err := other.IssueToken("user-1", domain.RoleAdmin, time.Hour)
	require.NoError(t, err)

	_, err = newTestService(t).ValidateToken(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestValidateToken_MissingUserID(t *testing.T) {
	s := newTestService(t)
	claims := domain.Claims{RegisteredClaims: jwt.RegisteredClaims{ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour))}}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-secret"))
	require.NoError(t, err)

	_, err = s.ValidateToken(token)
	assert.ErrorIs(t, err, ErrMissingUserID)
}

func TestIssueToken_RequiresUser(t *testing.T) {
	_, err := newTestService(t).IssueToken("", domain.RoleAdmin, time.Hour)
	assert.ErrorIs(t, err, ErrMissingUserID)
}
