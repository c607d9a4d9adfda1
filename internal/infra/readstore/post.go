package readstore

import (
	"context"

	"spark-bytes/internal/infra"
	sqlc "spark-bytes/internal/infra/sqlc/generated"
	"spark-bytes/internal/pkg/pgconv"
	"spark-bytes/internal/usecase/queries"

	"github.com/google/uuid"
)

type PostReadQueries interface {
	GetPost(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.Posts, error)
	ListPosts(ctx context.Context, db sqlc.DBTX) ([]sqlc.Posts, error)
}

type PostReadStore struct {
	queries PostReadQueries
	db      sqlc.DBTX
}

func NewPostReadStore(queries PostReadQueries, db sqlc.DBTX) *PostReadStore {
	return &PostReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *PostReadStore) ListAll(ctx context.Context) ([]*queries.PostView, error) {
	rows, err := r.queries.ListPosts(ctx, r.db)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list posts", err)
	}

	result := make([]*queries.PostView, len(rows))
	for i, row := range rows {
		result[i] = rowToPostView(row)
	}
	return result, nil
}

func (r *PostReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.PostView, error) {
	row, err := r.queries.GetPost(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("post not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find post by ID", err)
	}
	return rowToPostView(row), nil
}

func rowToPostView(row sqlc.Posts) *queries.PostView {
	return &queries.PostView{
		ID:            row.ID,
		OwnerID:       row.UserID,
		Title:         row.Title,
		Description:   pgconv.StringFromPgtype(row.Description),
		Location:      pgconv.StringFromPgtype(row.Location),
		StartTime:     pgconv.TimePtrFromPgtype(row.StartTime),
		EndTime:       pgconv.TimePtrFromPgtype(row.EndTime),
		TotalQuantity: int(row.TotalQuantity),
		QuantityLeft:  int(row.QuantityLeft),
		ImagePath:     pgconv.StringFromPgtype(row.ImagePath),
		CreatedAt:     pgconv.TimeFromPgtype(row.CreatedAt),
		UpdatedAt:     pgconv.TimeFromPgtype(row.UpdatedAt),
	}
}
