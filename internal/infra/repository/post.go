package repository

import (
	"context"

	"spark-bytes/internal/domain/post"
	"spark-bytes/internal/infra"
	"spark-bytes/internal/infra/repository/converter"
	sqlc "spark-bytes/internal/infra/sqlc/generated"
	"spark-bytes/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type PostWriteQueries interface {
	CreatePost(ctx context.Context, db sqlc.DBTX, arg sqlc.CreatePostParams) error
	GetPost(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.Posts, error)
	GetPostForUpdate(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.Posts, error)
	PostExists(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (bool, error)
	AdjustPostQuantity(ctx context.Context, db sqlc.DBTX, arg sqlc.AdjustPostQuantityParams) (int32, error)
	UpdatePostDetails(ctx context.Context, db sqlc.DBTX, arg sqlc.UpdatePostDetailsParams) (int64, error)
	DeletePost(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (int64, error)
}

type PostRepository struct {
	queries PostWriteQueries
	db      sqlc.DBTX
}

func NewPostRepository(queries PostWriteQueries, db sqlc.DBTX) *PostRepository {
	return &PostRepository{
		queries: queries,
		db:      db,
	}
}

func (r *PostRepository) Create(ctx context.Context, tx sqlc.DBTX, p *post.Post) error {
	params, err := converter.PostToInfra(p)
	if err != nil {
		return infra.WrapRepoErr("invalid post row", err, infra.KindConflict)
	}
	if err := r.queries.CreatePost(ctx, tx, params); err != nil {
		return infra.WrapRepoErr("failed to create post", err)
	}
	return nil
}

func (r *PostRepository) GetForReserve(ctx context.Context, tx sqlc.DBTX, postID uuid.UUID) (*post.Post, error) {
	row, err := r.queries.GetPost(ctx, tx, postID)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("post not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get post", err)
	}
	return converter.PostFromInfra(row), nil
}

func (r *PostRepository) GetForUpdate(ctx context.Context, tx sqlc.DBTX, postID uuid.UUID) (*post.Post, error) {
	row, err := r.queries.GetPostForUpdate(ctx, tx, postID)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("post not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to lock post", err)
	}
	return converter.PostFromInfra(row), nil
}

// AdjustQuantity is a single conditional UPDATE. When it matches no row the
// post is checked so a missing post (NOT_FOUND) is told apart from an
// out-of-range result (CONFLICT).
func (r *PostRepository) AdjustQuantity(ctx context.Context, tx sqlc.DBTX, postID uuid.UUID, delta int) (int, error) {
	d, err := converter.ToInt32(delta)
	if err != nil {
		return 0, infra.WrapRepoErr("quantity adjustment out of range", err, infra.KindConflict)
	}
	left, err := r.queries.AdjustPostQuantity(ctx, tx, sqlc.AdjustPostQuantityParams{
		Delta: d,
		ID:    postID,
	})
	if err == nil {
		return int(left), nil
	}
	if !pgconv.IsNoRows(err) {
		return 0, infra.WrapRepoErr("failed to adjust post quantity", err)
	}

	exists, existsErr := r.queries.PostExists(ctx, tx, postID)
	if existsErr != nil {
		return 0, infra.WrapRepoErr("failed to check post existence", existsErr)
	}
	if !exists {
		return 0, infra.WrapRepoErr("post not found", nil, infra.KindNotFound)
	}
	return 0, infra.WrapRepoErr("quantity adjustment out of range", nil, infra.KindConflict)
}

func (r *PostRepository) UpdateDetails(ctx context.Context, tx sqlc.DBTX, p *post.Post) error {
	n, err := r.queries.UpdatePostDetails(ctx, tx, converter.PostDetailsToInfra(p))
	if err != nil {
		return infra.WrapRepoErr("failed to update post", err)
	}
	if n == 0 {
		return infra.WrapRepoErr("post not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *PostRepository) Delete(ctx context.Context, tx sqlc.DBTX, postID uuid.UUID) error {
	n, err := r.queries.DeletePost(ctx, tx, postID)
	if err != nil {
		return infra.WrapRepoErr("failed to delete post", err)
	}
	if n == 0 {
		return infra.WrapRepoErr("post not found", nil, infra.KindNotFound)
	}
	return nil
}
