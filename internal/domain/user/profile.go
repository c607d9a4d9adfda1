package user

import (
	"errors"
	"strings"
	"time"

	"spark-bytes/internal/pkg/objectpath"

	"github.com/google/uuid"
)

var (
	ErrNicknameTooLong   = errors.New("nickname must be at most 50 characters")
	ErrInvalidAvatarPath = errors.New("avatar_path must be inside the caller's avatar folder")
)

const MaxNicknameLength = 50

// Profile is the optional display info a user keeps next to their identity.
// A user without a stored row simply has an empty profile.
type Profile struct {
	userID     uuid.UUID
	nickname   string
	avatarPath string
	createdAt  time.Time
	updatedAt  time.Time
}

func NewProfile(userID uuid.UUID, now time.Time) (*Profile, error) {
	if userID == uuid.Nil {
		return nil, ErrMissingSubject
	}
	return &Profile{userID: userID, createdAt: now, updatedAt: now}, nil
}

func ReconstructProfile(userID uuid.UUID, nickname, avatarPath string, createdAt, updatedAt time.Time) *Profile {
	return &Profile{
		userID:     userID,
		nickname:   nickname,
		avatarPath: avatarPath,
		createdAt:  createdAt,
		updatedAt:  updatedAt,
	}
}

// AvatarFolder is the object key prefix a user may upload avatars under.
func AvatarFolder(userID uuid.UUID) string {
	return "avatars/" + userID.String() + "/"
}

// Update applies a partial edit. Nil keeps the current value and an empty
// string clears it.
func (p *Profile) Update(nickname, avatarPath *string, now time.Time) error {
	next := *p
	if nickname != nil {
		n := strings.TrimSpace(*nickname)
		if len([]rune(n)) > MaxNicknameLength {
			return ErrNicknameTooLong
		}
		next.nickname = n
	}
	if avatarPath != nil {
		a := strings.TrimLeft(strings.TrimSpace(*avatarPath), "/")
		if a != "" && !objectpath.Within(a, AvatarFolder(p.userID)) {
			return ErrInvalidAvatarPath
		}
		next.avatarPath = a
	}
	next.updatedAt = now
	*p = next
	return nil
}

func (p *Profile) UserID() uuid.UUID    { return p.userID }
func (p *Profile) Nickname() string     { return p.nickname }
func (p *Profile) AvatarPath() string   { return p.avatarPath }
func (p *Profile) CreatedAt() time.Time { return p.createdAt }
func (p *Profile) UpdatedAt() time.Time { return p.updatedAt }
