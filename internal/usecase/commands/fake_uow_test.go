//go:build unit

package commands_test

import (
	"context"
	"sync"
	"time"

	"spark-bytes/internal/domain/post"
	"spark-bytes/internal/domain/reservation"
	"spark-bytes/internal/domain/user"
	"spark-bytes/internal/infra"
	sqlc "spark-bytes/internal/infra/sqlc/generated"
	"spark-bytes/internal/usecase/shared"

	"github.com/google/uuid"
)

// memStore is an in-memory stand-in for the posts, reservations, userinfo and
// notification_jobs tables. Transactions run one at a time against a staged
// copy that replaces the committed state only when the callback succeeds.
type memStore struct {
	mu sync.Mutex

	posts         map[uuid.UUID]*post.Post
	reservations  map[uuid.UUID]*reservation.Reservation
	profiles      map[uuid.UUID]*user.Profile
	notifications []shared.NotificationJob

	// failOn makes the named operation fail inside the transaction.
	failOn map[string]error
	// withinErr short-circuits Within, e.g. to simulate exhausted retries.
	withinErr error
	commits   int
}

func newMemStore() *memStore {
	return &memStore{
		posts:        map[uuid.UUID]*post.Post{},
		reservations: map[uuid.UUID]*reservation.Reservation{},
		profiles:     map[uuid.UUID]*user.Profile{},
		failOn:       map[string]error{},
	}
}

func (s *memStore) seedPost(p *post.Post) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.posts[p.ID()] = clonePost(p)
}

func (s *memStore) seedReservation(r *reservation.Reservation) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.reservations[r.ID()] = cloneReservation(r)
}

func (s *memStore) seedProfile(p *user.Profile) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.profiles[p.UserID()] = cloneProfile(p)
}

func (s *memStore) profile(userID uuid.UUID) *user.Profile {
	s.mu.Lock()
	defer s.mu.Unlock()
	p, ok := s.profiles[userID]
	if !ok {
		return nil
	}
	return cloneProfile(p)
}

func (s *memStore) post(id uuid.UUID) *post.Post {
	s.mu.Lock()
	defer s.mu.Unlock()
	p, ok := s.posts[id]
	if !ok {
		return nil
	}
	return clonePost(p)
}

func (s *memStore) reservation(id uuid.UUID) *reservation.Reservation {
	s.mu.Lock()
	defer s.mu.Unlock()
	r, ok := s.reservations[id]
	if !ok {
		return nil
	}
	return cloneReservation(r)
}

func (s *memStore) jobs() []shared.NotificationJob {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]shared.NotificationJob(nil), s.notifications...)
}

func (s *memStore) reservationCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.reservations)
}

func (s *memStore) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.withinErr != nil {
		return s.withinErr
	}

	staged := &memTx{
		store:        s,
		posts:        map[uuid.UUID]*post.Post{},
		reservations: map[uuid.UUID]*reservation.Reservation{},
		profiles:     map[uuid.UUID]*user.Profile{},
	}
	for id, p := range s.posts {
		staged.posts[id] = clonePost(p)
	}
	for id, r := range s.reservations {
		staged.reservations[id] = cloneReservation(r)
	}
	for id, p := range s.profiles {
		staged.profiles[id] = cloneProfile(p)
	}

	if err := fn(ctx, staged); err != nil {
		return err
	}

	s.posts = staged.posts
	s.reservations = staged.reservations
	s.profiles = staged.profiles
	s.notifications = append(s.notifications, staged.notifications...)
	s.commits++
	return nil
}

type memTx struct {
	store         *memStore
	posts         map[uuid.UUID]*post.Post
	reservations  map[uuid.UUID]*reservation.Reservation
	profiles      map[uuid.UUID]*user.Profile
	notifications []shared.NotificationJob
}

func (t *memTx) Posts() shared.PostRepository                 { return memPosts{t} }
func (t *memTx) Reservations() shared.ReservationRepository   { return memReservations{t} }
func (t *memTx) Notifications() shared.NotificationRepository { return memNotifications{t} }
func (t *memTx) Profiles() shared.ProfileRepository           { return memProfiles{t} }
func (t *memTx) DB() sqlc.DBTX                                { return nil }

func (t *memTx) fail(op string) error {
	if err, ok := t.store.failOn[op]; ok {
		return err
	}
	return nil
}

type memPosts struct{ tx *memTx }

func (r memPosts) Create(_ context.Context, _ sqlc.DBTX, p *post.Post) error {
	if err := r.tx.fail("posts.create"); err != nil {
		return err
	}
	r.tx.posts[p.ID()] = clonePost(p)
	return nil
}

func (r memPosts) GetForReserve(_ context.Context, _ sqlc.DBTX, id uuid.UUID) (*post.Post, error) {
	p, ok := r.tx.posts[id]
	if !ok {
		return nil, infra.WrapRepoErr("post not found", nil, infra.KindNotFound)
	}
	return clonePost(p), nil
}

func (r memPosts) GetForUpdate(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (*post.Post, error) {
	return r.GetForReserve(ctx, db, id)
}

func (r memPosts) AdjustQuantity(_ context.Context, _ sqlc.DBTX, id uuid.UUID, delta int) (int, error) {
	if err := r.tx.fail("posts.adjust"); err != nil {
		return 0, err
	}
	p, ok := r.tx.posts[id]
	if !ok {
		return 0, infra.WrapRepoErr("post not found", nil, infra.KindNotFound)
	}
	if !p.CanAdjust(delta) {
		return 0, infra.WrapRepoErr("quantity adjustment out of range", nil, infra.KindConflict)
	}
	left := p.QuantityLeft() + delta
	r.tx.posts[id] = post.ReconstructPost(p.ID(), p.OwnerID(), p.Details(), p.TotalQuantity(), left, p.CreatedAt(), p.UpdatedAt())
	return left, nil
}

func (r memPosts) UpdateDetails(_ context.Context, _ sqlc.DBTX, p *post.Post) error {
	if err := r.tx.fail("posts.update"); err != nil {
		return err
	}
	cur, ok := r.tx.posts[p.ID()]
	if !ok {
		return infra.WrapRepoErr("post not found", nil, infra.KindNotFound)
	}
	r.tx.posts[p.ID()] = post.ReconstructPost(cur.ID(), cur.OwnerID(), p.Details(), cur.TotalQuantity(), cur.QuantityLeft(), cur.CreatedAt(), p.UpdatedAt())
	return nil
}

func (r memPosts) Delete(_ context.Context, _ sqlc.DBTX, id uuid.UUID) error {
	if err := r.tx.fail("posts.delete"); err != nil {
		return err
	}
	if _, ok := r.tx.posts[id]; !ok {
		return infra.WrapRepoErr("post not found", nil, infra.KindNotFound)
	}
	delete(r.tx.posts, id)
	for rid, res := range r.tx.reservations {
		if res.PostID() == id {
			delete(r.tx.reservations, rid)
		}
	}
	return nil
}

type memReservations struct{ tx *memTx }

func (r memReservations) Create(_ context.Context, _ sqlc.DBTX, res *reservation.Reservation) error {
	if err := r.tx.fail("reservations.create"); err != nil {
		return err
	}
	if _, ok := r.tx.posts[res.PostID()]; !ok {
		return infra.WrapRepoErr("post missing", nil, infra.KindForeignKeyViolated)
	}
	for _, existing := range r.tx.reservations {
		if existing.PostID() == res.PostID() && existing.UserID() == res.UserID() && existing.IsActive() {
			return infra.WrapRepoErr("duplicate reservation", nil, infra.KindDuplicateKey)
		}
	}
	r.tx.reservations[res.ID()] = cloneReservation(res)
	return nil
}

func (r memReservations) Get(_ context.Context, _ sqlc.DBTX, id uuid.UUID) (*reservation.Reservation, error) {
	res, ok := r.tx.reservations[id]
	if !ok {
		return nil, infra.WrapRepoErr("reservation not found", nil, infra.KindNotFound)
	}
	return cloneReservation(res), nil
}

func (r memReservations) GetForUpdate(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (*reservation.Reservation, error) {
	return r.Get(ctx, db, id)
}

func (r memReservations) SetStatus(_ context.Context, _ sqlc.DBTX, id uuid.UUID, from, to reservation.Status, at time.Time) error {
	if err := r.tx.fail("reservations.set_status"); err != nil {
		return err
	}
	res, ok := r.tx.reservations[id]
	if !ok || res.Status() != from {
		return infra.WrapRepoErr("reservation status changed concurrently", nil, infra.KindConflict)
	}
	r.tx.reservations[id] = reservation.ReconstructReservation(res.ID(), res.PostID(), res.UserID(), to, res.CreatedAt(), at)
	return nil
}

func (r memReservations) ListReservedByPost(_ context.Context, _ sqlc.DBTX, postID uuid.UUID) ([]shared.ReservedClaim, error) {
	var claims []shared.ReservedClaim
	for _, res := range r.tx.reservations {
		if res.PostID() == postID && res.IsActive() {
			claims = append(claims, shared.ReservedClaim{ReservationID: res.ID(), UserID: res.UserID()})
		}
	}
	return claims, nil
}

type memNotifications struct{ tx *memTx }

func (r memNotifications) CreateJob(_ context.Context, _ sqlc.DBTX, job shared.NotificationJob) error {
	if err := r.tx.fail("notifications.create"); err != nil {
		return err
	}
	r.tx.notifications = append(r.tx.notifications, job)
	return nil
}

type memProfiles struct{ tx *memTx }

func (r memProfiles) GetForUpdate(_ context.Context, _ sqlc.DBTX, userID uuid.UUID) (*user.Profile, error) {
	p, ok := r.tx.profiles[userID]
	if !ok {
		return nil, infra.WrapRepoErr("profile not found", nil, infra.KindNotFound)
	}
	return cloneProfile(p), nil
}

func (r memProfiles) Save(_ context.Context, _ sqlc.DBTX, p *user.Profile) error {
	if err := r.tx.fail("profiles.save"); err != nil {
		return err
	}
	r.tx.profiles[p.UserID()] = cloneProfile(p)
	return nil
}

func clonePost(p *post.Post) *post.Post {
	return post.ReconstructPost(p.ID(), p.OwnerID(), p.Details(), p.TotalQuantity(), p.QuantityLeft(), p.CreatedAt(), p.UpdatedAt())
}

func cloneReservation(r *reservation.Reservation) *reservation.Reservation {
	return reservation.ReconstructReservation(r.ID(), r.PostID(), r.UserID(), r.Status(), r.CreatedAt(), r.UpdatedAt())
}

func cloneProfile(p *user.Profile) *user.Profile {
	return user.ReconstructProfile(p.UserID(), p.Nickname(), p.AvatarPath(), p.CreatedAt(), p.UpdatedAt())
}
