//go:build unit || e2e

package builder

import (
	"time"

	"spark-bytes/internal/domain/reservation"
	sqlc "spark-bytes/internal/infra/sqlc/generated"
	"spark-bytes/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type ReservationBuilder struct {
	ID        uuid.UUID
	PostID    uuid.UUID
	UserID    uuid.UUID
	Status    reservation.Status
	CreatedAt time.Time
	UpdatedAt time.Time
}

func NewReservationBuilder() *ReservationBuilder {
	return &ReservationBuilder{
		ID:        uuid.New(),
		PostID:    uuid.New(),
		UserID:    uuid.New(),
		Status:    reservation.StatusReserved,
		CreatedAt: DefaultCreatedAt,
		UpdatedAt: DefaultCreatedAt,
	}
}

func (b *ReservationBuilder) With(mutate func(*ReservationBuilder)) *ReservationBuilder {
	mutate(b)
	return b
}

func (b *ReservationBuilder) Canceled() *ReservationBuilder {
	b.Status = reservation.StatusCanceled
	return b
}

func (b *ReservationBuilder) Reconstruct() *reservation.Reservation {
	return reservation.ReconstructReservation(b.ID, b.PostID, b.UserID, b.Status, b.CreatedAt, b.UpdatedAt)
}

func (b *ReservationBuilder) BuildInfra() sqlc.Reservations {
	return sqlc.Reservations{
		ID:        b.ID,
		PostID:    b.PostID,
		UserID:    b.UserID,
		Status:    b.Status.String(),
		CreatedAt: pgconv.TimeToPgtype(b.CreatedAt),
		UpdatedAt: pgconv.TimeToPgtype(b.UpdatedAt),
	}
}
