package repository

import (
	"context"
	"time"

	"spark-bytes/internal/domain/reservation"
	"spark-bytes/internal/infra"
	"spark-bytes/internal/infra/repository/converter"
	sqlc "spark-bytes/internal/infra/sqlc/generated"
	"spark-bytes/internal/pkg/pgconv"
	"spark-bytes/internal/usecase/shared"

	"github.com/google/uuid"
)

type ReservationWriteQueries interface {
	CreateReservation(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateReservationParams) error
	GetReservation(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.Reservations, error)
	GetReservationForUpdate(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.Reservations, error)
	UpdateReservationStatus(ctx context.Context, db sqlc.DBTX, arg sqlc.UpdateReservationStatusParams) (int64, error)
	ListReservedByPost(ctx context.Context, db sqlc.DBTX, postID uuid.UUID) ([]sqlc.ListReservedByPostRow, error)
}

type ReservationRepository struct {
	queries ReservationWriteQueries
	db      sqlc.DBTX
}

func NewReservationRepository(queries ReservationWriteQueries, db sqlc.DBTX) *ReservationRepository {
	return &ReservationRepository{
		queries: queries,
		db:      db,
	}
}

// Create inserts a reservation. A second live reservation for the same
// (post, user) trips the partial unique index and surfaces as DUPLICATE_KEY.
func (r *ReservationRepository) Create(ctx context.Context, tx sqlc.DBTX, res *reservation.Reservation) error {
	if err := r.queries.CreateReservation(ctx, tx, converter.ReservationToInfra(res)); err != nil {
		return infra.WrapRepoErr("failed to create reservation", err)
	}
	return nil
}

func (r *ReservationRepository) Get(ctx context.Context, tx sqlc.DBTX, reservationID uuid.UUID) (*reservation.Reservation, error) {
	row, err := r.queries.GetReservation(ctx, tx, reservationID)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("reservation not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get reservation", err)
	}
	return r.toDomain(row)
}

func (r *ReservationRepository) GetForUpdate(ctx context.Context, tx sqlc.DBTX, reservationID uuid.UUID) (*reservation.Reservation, error) {
	row, err := r.queries.GetReservationForUpdate(ctx, tx, reservationID)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("reservation not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to lock reservation", err)
	}
	return r.toDomain(row)
}

// SetStatus only transitions from the expected status; anything else is a CONFLICT.
func (r *ReservationRepository) SetStatus(ctx context.Context, tx sqlc.DBTX, reservationID uuid.UUID, from, to reservation.Status, at time.Time) error {
	n, err := r.queries.UpdateReservationStatus(ctx, tx, sqlc.UpdateReservationStatusParams{
		ToStatus:   to.String(),
		UpdatedAt:  pgconv.TimeToPgtype(at),
		ID:         reservationID,
		FromStatus: from.String(),
	})
	if err != nil {
		return infra.WrapRepoErr("failed to update reservation status", err)
	}
	if n == 0 {
		return infra.WrapRepoErr("reservation status changed concurrently", nil, infra.KindConflict)
	}
	return nil
}

func (r *ReservationRepository) ListReservedByPost(ctx context.Context, tx sqlc.DBTX, postID uuid.UUID) ([]shared.ReservedClaim, error) {
	rows, err := r.queries.ListReservedByPost(ctx, tx, postID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list reservations for post", err)
	}
	claims := make([]shared.ReservedClaim, 0, len(rows))
	for _, row := range rows {
		claims = append(claims, shared.ReservedClaim{ReservationID: row.ID, UserID: row.UserID})
	}
	return claims, nil
}

func (r *ReservationRepository) toDomain(row sqlc.Reservations) (*reservation.Reservation, error) {
	res, err := converter.ReservationFromInfra(row)
	if err != nil {
		return nil, infra.WrapRepoErr("invalid reservation row", err)
	}
	return res, nil
}
