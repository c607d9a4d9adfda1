package usecase

import (
	"strings"

	"spark-bytes/internal/domain/user"
	"spark-bytes/internal/pkg/errs"
	"spark-bytes/internal/pkg/jwt"

	"github.com/google/uuid"
)

var (
	ErrUnauthenticated = errs.NewKind(errs.KindUnauthenticated, "authentication required")
	ErrInvalidToken    = errs.NewKind(errs.KindUnauthenticated, "invalid or expired token")
	ErrForbidden       = errs.NewKind(errs.KindForbidden, "forbidden")
)

// TokenValidator provides token validation for middleware
type TokenValidator interface {
	ValidateToken(tokenString string) (*user.Identity, error)
}

type tokenValidatorImpl struct {
	jwtService *jwt.Service
}

func NewTokenValidator(jwtService *jwt.Service) TokenValidator {
	return &tokenValidatorImpl{
		jwtService: jwtService,
	}
}

// ValidateToken accepts only signed, unexpired provider tokens that name a
// concrete user. Anonymous-role tokens are treated as no token at all.
func (t *tokenValidatorImpl) ValidateToken(tokenString string) (*user.Identity, error) {
	if strings.TrimSpace(tokenString) == "" {
		return nil, ErrUnauthenticated
	}

	claims, err := t.jwtService.ValidateToken(tokenString)
	if err != nil {
		return nil, errs.WithCause(ErrInvalidToken, err)
	}

	userID, err := claims.UserID()
	if err != nil {
		return nil, errs.WithCause(ErrInvalidToken, err)
	}

	role, err := user.NewRole(claims.Role)
	if err != nil {
		return nil, errs.WithCause(ErrInvalidToken, err)
	}
	if role == user.RoleAnon {
		return nil, ErrUnauthenticated
	}

	identity, err := user.NewIdentity(userID, claims.Email, role)
	if err != nil {
		return nil, errs.WithCause(ErrInvalidToken, err)
	}
	return identity, nil
}

// RequireOwner reports ErrForbidden unless the caller owns the resource.
func RequireOwner(identity *user.Identity, ownerID uuid.UUID) error {
	if identity == nil {
		return ErrUnauthenticated
	}
	if !identity.Owns(ownerID) {
		return ErrForbidden
	}
	return nil
}
