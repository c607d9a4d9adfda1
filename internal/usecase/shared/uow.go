package shared

import (
	"context"
	"time"

	"spark-bytes/internal/domain/post"
	"spark-bytes/internal/domain/reservation"
	"spark-bytes/internal/domain/user"
	sqlc "spark-bytes/internal/infra/sqlc/generated"

	"github.com/google/uuid"
)

type UnitOfWork interface {
	// Within: Full transaction for write operations with retry logic
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
}

type Tx interface {
	Posts() PostRepository
	Reservations() ReservationRepository
	Notifications() NotificationRepository
	Profiles() ProfileRepository
	DB() sqlc.DBTX
}

type PostRepository interface {
	Create(ctx context.Context, tx sqlc.DBTX, p *post.Post) error
	GetForReserve(ctx context.Context, tx sqlc.DBTX, postID uuid.UUID) (*post.Post, error)
	// GetForUpdate row-locks the post for owner edits and deletes.
	GetForUpdate(ctx context.Context, tx sqlc.DBTX, postID uuid.UUID) (*post.Post, error)
	// AdjustQuantity applies delta to quantity_left only when the result stays
	// within [0, total_quantity]. Returns the new quantity_left.
	AdjustQuantity(ctx context.Context, tx sqlc.DBTX, postID uuid.UUID, delta int) (int, error)
	UpdateDetails(ctx context.Context, tx sqlc.DBTX, p *post.Post) error
	Delete(ctx context.Context, tx sqlc.DBTX, postID uuid.UUID) error
}

type ReservationRepository interface {
	Create(ctx context.Context, tx sqlc.DBTX, res *reservation.Reservation) error
	Get(ctx context.Context, tx sqlc.DBTX, reservationID uuid.UUID) (*reservation.Reservation, error)
	// GetForUpdate row-locks the reservation so concurrent cancels serialize.
	GetForUpdate(ctx context.Context, tx sqlc.DBTX, reservationID uuid.UUID) (*reservation.Reservation, error)
	SetStatus(ctx context.Context, tx sqlc.DBTX, reservationID uuid.UUID, from, to reservation.Status, at time.Time) error
	ListReservedByPost(ctx context.Context, tx sqlc.DBTX, postID uuid.UUID) ([]ReservedClaim, error)
}

type NotificationRepository interface {
	CreateJob(ctx context.Context, tx sqlc.DBTX, job NotificationJob) error
}

type ProfileRepository interface {
	// GetForUpdate row-locks an existing profile. A user who never saved one
	// gets NOT_FOUND.
	GetForUpdate(ctx context.Context, tx sqlc.DBTX, userID uuid.UUID) (*user.Profile, error)
	Save(ctx context.Context, tx sqlc.DBTX, p *user.Profile) error
}
