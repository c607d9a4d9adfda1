package readstore

import (
	"context"

	"spark-bytes/internal/infra"
	sqlc "spark-bytes/internal/infra/sqlc/generated"
	"spark-bytes/internal/pkg/pgconv"
	"spark-bytes/internal/usecase/queries"

	"github.com/google/uuid"
)

type ProfileReadQueries interface {
	GetUserinfo(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.Userinfo, error)
}

type ProfileReadStore struct {
	queries ProfileReadQueries
	db      sqlc.DBTX
}

func NewProfileReadStore(queries ProfileReadQueries, db sqlc.DBTX) *ProfileReadStore {
	return &ProfileReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *ProfileReadStore) GetByUserID(ctx context.Context, userID uuid.UUID) (*queries.ProfileView, error) {
	row, err := r.queries.GetUserinfo(ctx, r.db, userID)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("profile not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get profile", err)
	}

	return &queries.ProfileView{
		UserID:     row.ID,
		Nickname:   pgconv.StringFromPgtype(row.Nickname),
		AvatarPath: pgconv.StringFromPgtype(row.AvatarPath),
		UpdatedAt:  pgconv.TimePtrFromPgtype(row.UpdatedAt),
	}, nil
}
