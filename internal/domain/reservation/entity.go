package reservation

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrMissingPost         = errors.New("reservation requires a post")
	ErrMissingUser         = errors.New("reservation requires a user")
	ErrReservationCanceled = errors.New("reservation is already canceled")
	ErrInvalidStatus       = errors.New("invalid reservation status")
)

// Reservation is one user's claim on a single unit of a post.
type Reservation struct {
	id        uuid.UUID
	postID    uuid.UUID
	userID    uuid.UUID
	status    Status
	createdAt time.Time
	updatedAt time.Time
}

func NewReservation(postID, userID uuid.UUID, now time.Time) (*Reservation, error) {
	if postID == uuid.Nil {
		return nil, ErrMissingPost
	}
	if userID == uuid.Nil {
		return nil, ErrMissingUser
	}
	return &Reservation{
		id:        uuid.New(),
		postID:    postID,
		userID:    userID,
		status:    StatusReserved,
		createdAt: now,
		updatedAt: now,
	}, nil
}

func ReconstructReservation(
	id, postID, userID uuid.UUID,
	status Status,
	createdAt, updatedAt time.Time,
) *Reservation {
	return &Reservation{
		id:        id,
		postID:    postID,
		userID:    userID,
		status:    status,
		createdAt: createdAt,
		updatedAt: updatedAt,
	}
}

// Cancel moves a reserved reservation to canceled. Canceled is terminal.
func (r *Reservation) Cancel(now time.Time) error {
	if r.status == StatusCanceled {
		return ErrReservationCanceled
	}
	r.status = StatusCanceled
	r.updatedAt = now
	return nil
}

func (r *Reservation) IsActive() bool {
	return r.status == StatusReserved
}

func (r *Reservation) IsCanceled() bool {
	return r.status == StatusCanceled
}

func (r *Reservation) IsOwnedBy(userID uuid.UUID) bool {
	return userID != uuid.Nil && r.userID == userID
}

func (r *Reservation) ID() uuid.UUID        { return r.id }
func (r *Reservation) PostID() uuid.UUID    { return r.postID }
func (r *Reservation) UserID() uuid.UUID    { return r.userID }
func (r *Reservation) Status() Status       { return r.status }
func (r *Reservation) CreatedAt() time.Time { return r.createdAt }
func (r *Reservation) UpdatedAt() time.Time { return r.updatedAt }
