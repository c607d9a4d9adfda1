package repository

import (
	"context"

	"spark-bytes/internal/domain/user"
	"spark-bytes/internal/infra"
	"spark-bytes/internal/infra/repository/converter"
	sqlc "spark-bytes/internal/infra/sqlc/generated"
	"spark-bytes/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type ProfileWriteQueries interface {
	GetUserinfoForUpdate(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.Userinfo, error)
	UpsertUserinfo(ctx context.Context, db sqlc.DBTX, arg sqlc.UpsertUserinfoParams) error
}

type ProfileRepository struct {
	queries ProfileWriteQueries
	db      sqlc.DBTX
}

func NewProfileRepository(queries ProfileWriteQueries, db sqlc.DBTX) *ProfileRepository {
	return &ProfileRepository{
		queries: queries,
		db:      db,
	}
}

func (r *ProfileRepository) GetForUpdate(ctx context.Context, tx sqlc.DBTX, userID uuid.UUID) (*user.Profile, error) {
	row, err := r.queries.GetUserinfoForUpdate(ctx, tx, userID)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("profile not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to lock profile", err)
	}
	return converter.ProfileFromInfra(row), nil
}

// Save inserts the row on first write and overwrites the editable fields after.
func (r *ProfileRepository) Save(ctx context.Context, tx sqlc.DBTX, p *user.Profile) error {
	if err := r.queries.UpsertUserinfo(ctx, tx, converter.ProfileToInfra(p)); err != nil {
		return infra.WrapRepoErr("failed to save profile", err)
	}
	return nil
}
