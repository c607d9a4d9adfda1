package user

import (
	"errors"
	"regexp"
	"strings"

	"github.com/google/uuid"
)

var (
	ErrInvalidRole     = errors.New("invalid role")
	ErrMissingSubject  = errors.New("identity subject is required")
	ErrAnonymousCaller = errors.New("anonymous callers cannot act on their own behalf")
	ErrInvalidEmail    = errors.New("invalid email format")
)

var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)

// Identity is the caller as resolved from the identity provider's claims.
// Users are not stored locally; the subject id is the only durable key.
type Identity struct {
	id    uuid.UUID
	email string
	role  Role
}

func NewIdentity(id uuid.UUID, email string, role Role) (*Identity, error) {
	if id == uuid.Nil {
		return nil, ErrMissingSubject
	}
	if !role.IsValid() {
		return nil, ErrInvalidRole
	}
	if role == RoleAnon {
		return nil, ErrAnonymousCaller
	}
	email = strings.TrimSpace(email)
	if email != "" && !emailRegex.MatchString(email) {
		return nil, ErrInvalidEmail
	}
	return &Identity{id: id, email: email, role: role}, nil
}

func (i *Identity) ID() uuid.UUID { return i.id }
func (i *Identity) Email() string { return i.email }
func (i *Identity) Role() Role    { return i.role }

func (i *Identity) Owns(ownerID uuid.UUID) bool {
	return i != nil && ownerID != uuid.Nil && i.id == ownerID
}
