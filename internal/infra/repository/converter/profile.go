package converter

import (
	"spark-bytes/internal/domain/user"
	sqlc "spark-bytes/internal/infra/sqlc/generated"
	"spark-bytes/internal/pkg/pgconv"
)

func ProfileToInfra(p *user.Profile) sqlc.UpsertUserinfoParams {
	return sqlc.UpsertUserinfoParams{
		ID:         p.UserID(),
		Nickname:   pgconv.OptionalStringToPgtype(p.Nickname()),
		AvatarPath: pgconv.OptionalStringToPgtype(p.AvatarPath()),
		CreatedAt:  pgconv.TimeToPgtype(p.CreatedAt()),
		UpdatedAt:  pgconv.TimeToPgtype(p.UpdatedAt()),
	}
}

func ProfileFromInfra(row sqlc.Userinfo) *user.Profile {
	return user.ReconstructProfile(
		row.ID,
		pgconv.StringFromPgtype(row.Nickname),
		pgconv.StringFromPgtype(row.AvatarPath),
		pgconv.TimeFromPgtype(row.CreatedAt),
		pgconv.TimeFromPgtype(row.UpdatedAt),
	)
}
