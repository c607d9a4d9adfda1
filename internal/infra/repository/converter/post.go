package converter

import (
	"errors"
	"fmt"
	"math"

	"spark-bytes/internal/domain/post"
	sqlc "spark-bytes/internal/infra/sqlc/generated"
	"spark-bytes/internal/pkg/pgconv"
)

var ErrOutOfRange = errors.New("value out of int32 range")

func PostToInfra(p *post.Post) (sqlc.CreatePostParams, error) {
	total, err := ToInt32(p.TotalQuantity())
	if err != nil {
		return sqlc.CreatePostParams{}, err
	}
	left, err := ToInt32(p.QuantityLeft())
	if err != nil {
		return sqlc.CreatePostParams{}, err
	}

	d := p.Details()
	return sqlc.CreatePostParams{
		ID:            p.ID(),
		UserID:        p.OwnerID(),
		Title:         d.Title,
		Description:   pgconv.OptionalStringToPgtype(d.Description),
		Location:      pgconv.OptionalStringToPgtype(d.Location),
		StartTime:     pgconv.TimePtrToPgtype(d.StartTime),
		EndTime:       pgconv.TimePtrToPgtype(d.EndTime),
		TotalQuantity: total,
		QuantityLeft:  left,
		ImagePath:     pgconv.OptionalStringToPgtype(d.ImagePath),
		CreatedAt:     pgconv.TimeToPgtype(p.CreatedAt()),
		UpdatedAt:     pgconv.TimeToPgtype(p.UpdatedAt()),
	}, nil
}

func PostDetailsToInfra(p *post.Post) sqlc.UpdatePostDetailsParams {
	d := p.Details()
	return sqlc.UpdatePostDetailsParams{
		ID:          p.ID(),
		Title:       d.Title,
		Description: pgconv.OptionalStringToPgtype(d.Description),
		Location:    pgconv.OptionalStringToPgtype(d.Location),
		StartTime:   pgconv.TimePtrToPgtype(d.StartTime),
		EndTime:     pgconv.TimePtrToPgtype(d.EndTime),
		ImagePath:   pgconv.OptionalStringToPgtype(d.ImagePath),
		UpdatedAt:   pgconv.TimeToPgtype(p.UpdatedAt()),
	}
}

func PostFromInfra(row sqlc.Posts) *post.Post {
	return post.ReconstructPost(
		row.ID,
		row.UserID,
		post.Details{
			Title:       row.Title,
			Description: pgconv.StringFromPgtype(row.Description),
			Location:    pgconv.StringFromPgtype(row.Location),
			StartTime:   pgconv.TimePtrFromPgtype(row.StartTime),
			EndTime:     pgconv.TimePtrFromPgtype(row.EndTime),
			ImagePath:   pgconv.StringFromPgtype(row.ImagePath),
		},
		int(row.TotalQuantity),
		int(row.QuantityLeft),
		pgconv.TimeFromPgtype(row.CreatedAt),
		pgconv.TimeFromPgtype(row.UpdatedAt),
	)
}

func ToInt32(n int) (int32, error) {
	if n > math.MaxInt32 || n < math.MinInt32 {
		return 0, fmt.Errorf("%w: %d", ErrOutOfRange, n)
	}
	return int32(n), nil
}
