package queries

import (
	"context"

	"spark-bytes/internal/pkg/clock"
	"spark-bytes/internal/pkg/errs"

	"github.com/google/uuid"
)

var ErrUnauthenticated = errs.NewKind(errs.KindUnauthenticated, "authentication required")

type ReservationReadStore interface {
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*ReservationListItem, error)
}

type ReservationQueries interface {
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*ReservationListItem, error)
}

type reservationQueriesImpl struct {
	store  ReservationReadStore
	clock  clock.Clock
	images ImageURLResolver
}

func NewReservationQueries(store ReservationReadStore, clock clock.Clock, images ImageURLResolver) ReservationQueries {
	return &reservationQueriesImpl{
		store:  store,
		clock:  clock,
		images: images,
	}
}

// ListByUser returns every reservation the user holds, canceled ones included,
// newest first, each with a snapshot of its post.
func (q *reservationQueriesImpl) ListByUser(ctx context.Context, userID uuid.UUID) ([]*ReservationListItem, error) {
	if userID == uuid.Nil {
		return nil, ErrUnauthenticated
	}

	items, err := q.store.ListByUser(ctx, userID)
	if err != nil {
		return nil, errs.Wrap(err, "list reservations")
	}

	now := q.clock.Now()
	for _, item := range items {
		decorateSnapshot(&item.Post, now, q.images)
	}
	return items, nil
}
