package readstore

import (
	"context"

	"spark-bytes/internal/infra"
	sqlc "spark-bytes/internal/infra/sqlc/generated"
	"spark-bytes/internal/pkg/pgconv"
	"spark-bytes/internal/usecase/queries"

	"github.com/google/uuid"
)

type ReservationViewQueries interface {
	ListReservationsByUser(ctx context.Context, db sqlc.DBTX, userID uuid.UUID) ([]sqlc.ListReservationsByUserRow, error)
}

type ReservationReadStore struct {
	queries ReservationViewQueries
	db      sqlc.DBTX
}

func NewReservationReadStore(queries ReservationViewQueries, db sqlc.DBTX) *ReservationReadStore {
	return &ReservationReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *ReservationReadStore) ListByUser(ctx context.Context, userID uuid.UUID) ([]*queries.ReservationListItem, error) {
	rows, err := r.queries.ListReservationsByUser(ctx, r.db, userID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list reservations by user", err)
	}

	result := make([]*queries.ReservationListItem, len(rows))
	for i, row := range rows {
		result[i] = toReservationListItem(row)
	}
	return result, nil
}

func toReservationListItem(row sqlc.ListReservationsByUserRow) *queries.ReservationListItem {
	return &queries.ReservationListItem{
		ID:        row.ID,
		PostID:    row.PostID,
		UserID:    row.UserID,
		Status:    row.Status,
		CreatedAt: pgconv.TimeFromPgtype(row.CreatedAt),
		UpdatedAt: pgconv.TimeFromPgtype(row.UpdatedAt),
		Post: queries.PostSnapshot{
			ID:            row.PostID,
			Title:         row.PostTitle,
			Description:   pgconv.StringFromPgtype(row.PostDescription),
			Location:      pgconv.StringFromPgtype(row.PostLocation),
			StartTime:     pgconv.TimePtrFromPgtype(row.PostStartTime),
			EndTime:       pgconv.TimePtrFromPgtype(row.PostEndTime),
			QuantityLeft:  int(row.PostQuantityLeft),
			TotalQuantity: int(row.PostTotalQuantity),
			ImagePath:     pgconv.StringFromPgtype(row.PostImagePath),
			CreatedAt:     pgconv.TimeFromPgtype(row.PostCreatedAt),
		},
	}
}
