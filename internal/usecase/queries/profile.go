package queries

import (
	"context"

	"spark-bytes/internal/infra"
	"spark-bytes/internal/pkg/errs"

	"github.com/google/uuid"
)

type ProfileReadStore interface {
	GetByUserID(ctx context.Context, userID uuid.UUID) (*ProfileView, error)
}

type ProfileQueries interface {
	Get(ctx context.Context, userID uuid.UUID) (*ProfileView, error)
}

type profileQueriesImpl struct {
	store   ProfileReadStore
	avatars AvatarURLResolver
}

func NewProfileQueries(store ProfileReadStore, avatars AvatarURLResolver) ProfileQueries {
	return &profileQueriesImpl{
		store:   store,
		avatars: avatars,
	}
}

// Get never reports a missing profile; the caller just sees empty fields.
func (q *profileQueriesImpl) Get(ctx context.Context, userID uuid.UUID) (*ProfileView, error) {
	if userID == uuid.Nil {
		return nil, ErrUnauthenticated
	}

	view, err := q.store.GetByUserID(ctx, userID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return &ProfileView{UserID: userID}, nil
		}
		return nil, errs.Wrap(err, "get profile")
	}

	view.AvatarURL = q.avatars.Resolve(view.AvatarPath)
	return view, nil
}
