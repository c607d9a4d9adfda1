//go:build unit || e2e

package authtest

import (
	"fmt"
	"testing"
	"time"

	"spark-bytes/internal/domain/user"
	"spark-bytes/internal/pkg/config"
	"spark-bytes/internal/pkg/jwt"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

// JWTHelper mints tokens shaped like the identity provider's.
type JWTHelper struct {
	cfg config.JWTConfig
}

func NewJWTHelper(cfg config.JWTConfig) *JWTHelper {
	return &JWTHelper{cfg: cfg}
}

func (h *JWTHelper) service(t *testing.T, d time.Duration) *jwt.Service {
	t.Helper()
	if d == 0 {
		var err error
		d, err = time.ParseDuration(h.cfg.AccessTokenDuration)
		require.NoError(t, err)
	}
	return jwt.NewService(h.cfg.Secret, h.cfg.Audience, h.cfg.Issuer, d)
}

// GenerateToken returns a fresh user id and a valid token for it.
func (h *JWTHelper) GenerateToken(t *testing.T) (uuid.UUID, string) {
	t.Helper()
	userID := uuid.New()
	return userID, h.TokenFor(t, userID)
}

func (h *JWTHelper) TokenFor(t *testing.T, userID uuid.UUID) string {
	t.Helper()
	token, err := h.service(t, 0).GenerateToken(userID, fmt.Sprintf("%s@campus.test", userID.String()[:8]), user.RoleAuthenticated)
	require.NoError(t, err)
	return token
}

func (h *JWTHelper) CreateExpiredToken(t *testing.T, userID uuid.UUID) string {
	t.Helper()
	token, err := h.service(t, -time.Minute).GenerateToken(userID, "expired@campus.test", user.RoleAuthenticated)
	require.NoError(t, err)
	return token
}

func (h *JWTHelper) AnonToken(t *testing.T) string {
	t.Helper()
	token, err := h.service(t, 0).GenerateToken(uuid.New(), "", user.RoleAnon)
	require.NoError(t, err)
	return token
}
