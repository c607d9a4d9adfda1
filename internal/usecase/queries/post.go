package queries

import (
	"context"
	"encoding/binary"
	"hash/fnv"
	"strconv"
	"time"

	"spark-bytes/internal/domain/post"
	"spark-bytes/internal/infra"
	"spark-bytes/internal/pkg/clock"
	"spark-bytes/internal/pkg/errs"
	"spark-bytes/internal/usecase/listing"

	"github.com/google/uuid"
)

var (
	ErrPostNotFound  = errs.NewKind(errs.KindNotFound, "post not found")
	ErrPostIDInvalid = errs.NewKind(errs.KindInvalidArgument, "post id is invalid")
)

type PostReadStore interface {
	ListAll(ctx context.Context) ([]*PostView, error)
	FindByID(ctx context.Context, id uuid.UUID) (*PostView, error)
}

type PostQueries interface {
	Feed(ctx context.Context, filter listing.Filter) (*FeedResult, error)
	GetByID(ctx context.Context, rawID string) (*PostView, error)
}

type postQueriesImpl struct {
	store  PostReadStore
	clock  clock.Clock
	images ImageURLResolver
}

func NewPostQueries(store PostReadStore, clock clock.Clock, images ImageURLResolver) PostQueries {
	return &postQueriesImpl{
		store:  store,
		clock:  clock,
		images: images,
	}
}

// Feed loads every post and narrows it in memory. The version is computed over
// the full set before filtering so every filtered view of the same data shares it.
func (q *postQueriesImpl) Feed(ctx context.Context, filter listing.Filter) (*FeedResult, error) {
	all, err := q.store.ListAll(ctx)
	if err != nil {
		return nil, errs.Wrap(err, "list posts")
	}

	now := q.clock.Now()
	version := feedVersion(all, now)
	for _, v := range all {
		decorate(v, now, q.images)
	}

	posts := listing.Apply(all, (*PostView).ListingItem, filter, now)
	return &FeedResult{Posts: posts, Version: version}, nil
}

func (q *postQueriesImpl) GetByID(ctx context.Context, rawID string) (*PostView, error) {
	id, err := uuid.Parse(rawID)
	if err != nil {
		return nil, ErrPostIDInvalid
	}

	v, err := q.store.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrPostNotFound
		}
		return nil, errs.Wrap(err, "get post")
	}

	decorate(v, q.clock.Now(), q.images)
	return v, nil
}

// feedVersion fingerprints what a reader of the feed can observe: identity,
// edits, remaining quantity and which posts have ended.
func feedVersion(posts []*PostView, now time.Time) string {
	h := fnv.New64a()
	var buf [8]byte
	for _, p := range posts {
		_, _ = h.Write(p.ID[:])
		binary.BigEndian.PutUint64(buf[:], uint64(p.UpdatedAt.UnixNano()))
		_, _ = h.Write(buf[:])
		binary.BigEndian.PutUint64(buf[:], uint64(p.QuantityLeft))
		_, _ = h.Write(buf[:])
		if post.IsActive(p.EndTime, now) {
			_, _ = h.Write([]byte{1})
		} else {
			_, _ = h.Write([]byte{0})
		}
	}
	return strconv.FormatUint(h.Sum64(), 16) + "-" + strconv.Itoa(len(posts))
}
