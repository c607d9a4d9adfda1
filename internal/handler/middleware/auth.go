package middleware

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"spark-bytes/internal/domain/user"
	"spark-bytes/internal/handler/httperr"
	"spark-bytes/internal/pkg/cookie"
	"spark-bytes/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type AuthMiddleware struct {
	tokenValidator usecase.TokenValidator
}

const (
	ctxUserIDKey    = "user_id"
	ctxUserRoleKey  = "user_role"
	ctxIdentityKey  = "identity"
	ctxJWTClaimsKey = "jwt_claims"
)

var errMissingToken = errors.New("access token required")

func NewAuthMiddleware(tokenValidator usecase.TokenValidator) *AuthMiddleware {
	return &AuthMiddleware{
		tokenValidator: tokenValidator,
	}
}

func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		identity, err := m.authenticate(c)
		if errors.Is(err, errMissingToken) {
			httperr.AbortWithError(c, http.StatusUnauthorized, errMissingToken, "Access token required", nil)
			return
		}
		if err != nil {
			slog.Warn("Token validation failed in auth middleware", "error", err.Error())
			httperr.AbortWithError(c, http.StatusUnauthorized, err, "Invalid or expired token", nil)
			return
		}

		SetIdentity(c, identity)
		c.Next()
	}
}

// OptionalAuth attaches the caller when a valid token is present and lets
// anonymous requests through untouched.
func (m *AuthMiddleware) OptionalAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		if identity, err := m.authenticate(c); err == nil {
			SetIdentity(c, identity)
		}
		c.Next()
	}
}

// authenticate tries the cookie first, matching the web client, and falls
// back to the bearer header when the cookie token does not validate.
func (m *AuthMiddleware) authenticate(c *gin.Context) (*user.Identity, error) {
	lastErr := errMissingToken
	for _, token := range extractTokens(c) {
		identity, err := m.tokenValidator.ValidateToken(token)
		if err == nil {
			return identity, nil
		}
		lastErr = err
	}
	return nil, lastErr
}

func extractTokens(c *gin.Context) []string {
	var tokens []string
	if token := cookie.GetAccessToken(c); token != "" {
		tokens = append(tokens, token)
	}
	authHeader := c.GetHeader("Authorization")
	if strings.HasPrefix(authHeader, "Bearer ") {
		if token := strings.TrimSpace(authHeader[len("Bearer "):]); token != "" {
			tokens = append(tokens, token)
		}
	}
	return tokens
}

// SetIdentity records the authenticated caller on the request context.
func SetIdentity(c *gin.Context, identity *user.Identity) {
	c.Set(ctxIdentityKey, identity)
	c.Set(ctxUserIDKey, identity.ID())
	c.Set(ctxUserRoleKey, identity.Role())
	c.Set(ctxJWTClaimsKey, map[string]any{
		"user_id": identity.ID().String(),
		"role":    identity.Role().String(),
	})
}

func GetIdentity(c *gin.Context) (*user.Identity, bool) {
	v, exists := c.Get(ctxIdentityKey)
	if !exists {
		return nil, false
	}
	identity, ok := v.(*user.Identity)
	return identity, ok && identity != nil
}

func GetUserID(c *gin.Context) (uuid.UUID, bool) {
	userID, exists := c.Get(ctxUserIDKey)
	if !exists {
		return uuid.Nil, false
	}

	id, ok := userID.(uuid.UUID)
	return id, ok
}

func GetUserRole(c *gin.Context) (user.Role, bool) {
	userRole, exists := c.Get(ctxUserRoleKey)
	if !exists {
		return "", false
	}

	role, ok := userRole.(user.Role)
	return role, ok
}
