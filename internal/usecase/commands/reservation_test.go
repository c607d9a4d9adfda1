//go:build unit

package commands_test

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"spark-bytes/internal/domain/reservation"
	"spark-bytes/internal/domain/user"
	"spark-bytes/internal/pkg/clock"
	"spark-bytes/internal/pkg/errs"
	"spark-bytes/internal/usecase/commands"
	"spark-bytes/internal/usecase/shared"
	"spark-bytes/tests/common/builder"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

var testNow = time.Date(2025, 4, 10, 12, 0, 0, 0, time.UTC)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newIdentity(t *testing.T) *user.Identity {
	t.Helper()
	id, err := user.NewIdentity(uuid.New(), "student@bu.edu", user.RoleAuthenticated)
	require.NoError(t, err)
	return id
}

type ReservationCommandsTestSuite struct {
	suite.Suite
	store *memStore
	clock *clock.MockClock
	cmds  commands.ReservationCommands
}

func (s *ReservationCommandsTestSuite) SetupTest() {
	s.store = newMemStore()
	s.clock = clock.NewMockClock(testNow)
	s.cmds = commands.NewReservationCommands(s.store, s.clock, discardLogger())
}

func TestReservationCommandsSuite(t *testing.T) {
	suite.Run(t, new(ReservationCommandsTestSuite))
}

func (s *ReservationCommandsTestSuite) seed(mutate func(*builder.PostBuilder)) uuid.UUID {
	b := builder.NewPostBuilder()
	if mutate != nil {
		b.With(mutate)
	}
	p := b.Reconstruct()
	s.store.seedPost(p)
	return p.ID()
}

func (s *ReservationCommandsTestSuite) TestReserve_Success() {
	postID := s.seed(func(b *builder.PostBuilder) { b.Quantity, b.QuantityLeft = 3, 3 })
	actor := newIdentity(s.T())

	result, err := s.cmds.Reserve(context.Background(), actor, postID.String())

	s.Require().NoError(err)
	s.Equal(2, result.QuantityLeft)
	s.Equal(postID, result.Reservation.PostID())
	s.Equal(actor.ID(), result.Reservation.UserID())
	s.Equal(reservation.StatusReserved, result.Reservation.Status())
	s.Equal(testNow, result.Reservation.CreatedAt())

	s.Equal(2, s.store.post(postID).QuantityLeft())
	s.NotNil(s.store.reservation(result.Reservation.ID()))

	jobs := s.store.jobs()
	s.Require().Len(jobs, 1)
	s.Equal(shared.TopicReservationCreated, jobs[0].Topic)
	s.Equal(shared.NotificationKindInApp, jobs[0].Kind)

	var payload map[string]any
	s.Require().NoError(json.Unmarshal(jobs[0].Payload, &payload))
	s.Equal(result.Reservation.ID().String(), payload["reservation_id"])
	s.Equal(float64(2), payload["quantity_left"])
}

func (s *ReservationCommandsTestSuite) TestReserve_InputErrors() {
	actor := newIdentity(s.T())

	tests := []struct {
		name     string
		actor    *user.Identity
		postID   string
		wantErr  error
		wantKind errs.Kind
	}{
		{name: "no caller", actor: nil, postID: uuid.NewString(), wantErr: commands.ErrUnauthenticated, wantKind: errs.KindUnauthenticated},
		{name: "empty post id", actor: actor, postID: "", wantErr: commands.ErrPostIDRequired, wantKind: errs.KindInvalidArgument},
		{name: "blank post id", actor: actor, postID: "   ", wantErr: commands.ErrPostIDRequired, wantKind: errs.KindInvalidArgument},
		{name: "malformed post id", actor: actor, postID: "not-a-uuid", wantErr: commands.ErrPostIDInvalid, wantKind: errs.KindInvalidArgument},
		{name: "unknown post", actor: actor, postID: uuid.NewString(), wantErr: commands.ErrPostNotFound, wantKind: errs.KindNotFound},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			_, err := s.cmds.Reserve(context.Background(), tt.actor, tt.postID)
			s.Require().Error(err)
			s.True(errs.Is(err, tt.wantErr), "got %v", err)
			s.Equal(tt.wantKind, errs.KindOf(err))
		})
	}
	s.Zero(s.store.commits)
}

func (s *ReservationCommandsTestSuite) TestReserve_PostIDMessage() {
	_, err := s.cmds.Reserve(context.Background(), newIdentity(s.T()), "")
	s.Require().Error(err)
	s.Equal("post_id is required", err.Error())
}

func (s *ReservationCommandsTestSuite) TestReserve_SoldOut() {
	postID := s.seed(func(b *builder.PostBuilder) { b.QuantityLeft = 0 })

	_, err := s.cmds.Reserve(context.Background(), newIdentity(s.T()), postID.String())

	s.Require().Error(err)
	s.True(errs.Is(err, commands.ErrNoAvailability))
	s.Equal(errs.KindConflict, errs.KindOf(err))
	s.Zero(s.store.reservationCount())
	s.Empty(s.store.jobs())
}

func (s *ReservationCommandsTestSuite) TestReserve_ListingEnded() {
	ended := testNow.Add(-time.Minute)
	postID := s.seed(func(b *builder.PostBuilder) {
		b.StartTime = nil
		b.EndTime = &ended
	})

	_, err := s.cmds.Reserve(context.Background(), newIdentity(s.T()), postID.String())

	s.Require().Error(err)
	s.True(errs.Is(err, commands.ErrListingEnded))
	s.Equal(errs.KindConflict, errs.KindOf(err))
	s.Equal(5, s.store.post(postID).QuantityLeft())
}

func (s *ReservationCommandsTestSuite) TestReserve_EndTimeEqualToNowIsEnded() {
	at := testNow
	postID := s.seed(func(b *builder.PostBuilder) {
		b.StartTime = nil
		b.EndTime = &at
	})

	_, err := s.cmds.Reserve(context.Background(), newIdentity(s.T()), postID.String())

	s.True(errs.Is(err, commands.ErrListingEnded))
}

func (s *ReservationCommandsTestSuite) TestReserve_NoEndTimeIsActive() {
	postID := s.seed(func(b *builder.PostBuilder) { b.StartTime, b.EndTime = nil, nil })

	_, err := s.cmds.Reserve(context.Background(), newIdentity(s.T()), postID.String())

	s.NoError(err)
}

func (s *ReservationCommandsTestSuite) TestReserve_DuplicateRejected() {
	postID := s.seed(nil)
	actor := newIdentity(s.T())

	_, err := s.cmds.Reserve(context.Background(), actor, postID.String())
	s.Require().NoError(err)

	_, err = s.cmds.Reserve(context.Background(), actor, postID.String())
	s.Require().Error(err)
	s.True(errs.Is(err, commands.ErrAlreadyReserved))
	s.Equal(errs.KindConflict, errs.KindOf(err))

	// the failed attempt left no trace
	s.Equal(4, s.store.post(postID).QuantityLeft())
	s.Equal(1, s.store.reservationCount())
	s.Len(s.store.jobs(), 1)
}

func (s *ReservationCommandsTestSuite) TestReserve_AgainAfterCancel() {
	postID := s.seed(nil)
	actor := newIdentity(s.T())

	first, err := s.cmds.Reserve(context.Background(), actor, postID.String())
	s.Require().NoError(err)
	_, err = s.cmds.Cancel(context.Background(), actor, first.Reservation.ID().String())
	s.Require().NoError(err)

	second, err := s.cmds.Reserve(context.Background(), actor, postID.String())
	s.Require().NoError(err)
	s.NotEqual(first.Reservation.ID(), second.Reservation.ID())
	s.Equal(4, s.store.post(postID).QuantityLeft())
}

func (s *ReservationCommandsTestSuite) TestReserve_NoPartialWrites() {
	steps := []string{"posts.adjust", "reservations.create", "notifications.create"}

	for _, step := range steps {
		s.Run(step, func() {
			s.SetupTest()
			postID := s.seed(func(b *builder.PostBuilder) { b.Quantity, b.QuantityLeft = 2, 2 })
			s.store.failOn[step] = errors.New("disk on fire")

			_, err := s.cmds.Reserve(context.Background(), newIdentity(s.T()), postID.String())

			s.Require().Error(err)
			s.Equal(errs.KindInternal, errs.KindOf(err))
			s.Equal(2, s.store.post(postID).QuantityLeft())
			s.Zero(s.store.reservationCount())
			s.Empty(s.store.jobs())
		})
	}
}

func (s *ReservationCommandsTestSuite) TestReserve_RetriesExhausted() {
	postID := s.seed(nil)
	s.store.withinErr = errs.Mark(&pgconn.PgError{Code: "40001"}, shared.ErrMaxRetriesExceeded)

	_, err := s.cmds.Reserve(context.Background(), newIdentity(s.T()), postID.String())

	s.Require().Error(err)
	s.True(errs.Is(err, commands.ErrContention))
	s.Equal(errs.KindConflict, errs.KindOf(err))
	s.Equal("no longer available", err.Error())
}

func (s *ReservationCommandsTestSuite) TestCancel_Success() {
	postID := s.seed(func(b *builder.PostBuilder) { b.Quantity, b.QuantityLeft = 2, 2 })
	actor := newIdentity(s.T())
	reserved, err := s.cmds.Reserve(context.Background(), actor, postID.String())
	s.Require().NoError(err)
	s.Equal(1, s.store.post(postID).QuantityLeft())

	later := testNow.Add(10 * time.Minute)
	s.clock.Set(later)
	result, err := s.cmds.Cancel(context.Background(), actor, reserved.Reservation.ID().String())

	s.Require().NoError(err)
	s.False(result.AlreadyCanceled)
	s.Equal(2, s.store.post(postID).QuantityLeft())

	stored := s.store.reservation(reserved.Reservation.ID())
	s.Equal(reservation.StatusCanceled, stored.Status())
	s.Equal(later, stored.UpdatedAt())

	jobs := s.store.jobs()
	s.Require().Len(jobs, 2)
	s.Equal(shared.TopicReservationCanceled, jobs[1].Topic)
}

func (s *ReservationCommandsTestSuite) TestCancel_Idempotent() {
	postID := s.seed(func(b *builder.PostBuilder) { b.Quantity, b.QuantityLeft = 2, 2 })
	actor := newIdentity(s.T())
	reserved, err := s.cmds.Reserve(context.Background(), actor, postID.String())
	s.Require().NoError(err)

	_, err = s.cmds.Cancel(context.Background(), actor, reserved.Reservation.ID().String())
	s.Require().NoError(err)

	again, err := s.cmds.Cancel(context.Background(), actor, reserved.Reservation.ID().String())
	s.Require().NoError(err)
	s.True(again.AlreadyCanceled)

	// the second cancel returned nothing to the pool and notified no one
	s.Equal(2, s.store.post(postID).QuantityLeft())
	s.Len(s.store.jobs(), 2)
}

func (s *ReservationCommandsTestSuite) TestCancel_Errors() {
	postID := s.seed(nil)
	owner := newIdentity(s.T())
	reserved, err := s.cmds.Reserve(context.Background(), owner, postID.String())
	s.Require().NoError(err)
	resID := reserved.Reservation.ID().String()

	tests := []struct {
		name     string
		actor    *user.Identity
		rawID    string
		wantErr  error
		wantKind errs.Kind
	}{
		{name: "no caller", actor: nil, rawID: resID, wantErr: commands.ErrUnauthenticated, wantKind: errs.KindUnauthenticated},
		{name: "missing id", actor: owner, rawID: "", wantErr: commands.ErrReservationIDRequired, wantKind: errs.KindInvalidArgument},
		{name: "malformed id", actor: owner, rawID: "123", wantErr: commands.ErrReservationIDInvalid, wantKind: errs.KindInvalidArgument},
		{name: "unknown reservation", actor: owner, rawID: uuid.NewString(), wantErr: commands.ErrReservationNotFound, wantKind: errs.KindNotFound},
		{name: "someone else's reservation", actor: newIdentity(s.T()), rawID: resID, wantErr: commands.ErrReservationNotOwned, wantKind: errs.KindForbidden},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			_, err := s.cmds.Cancel(context.Background(), tt.actor, tt.rawID)
			s.Require().Error(err)
			s.True(errs.Is(err, tt.wantErr), "got %v", err)
			s.Equal(tt.wantKind, errs.KindOf(err))
		})
	}

	s.Equal(reservation.StatusReserved, s.store.reservation(reserved.Reservation.ID()).Status())
	s.Equal(4, s.store.post(postID).QuantityLeft())
}

func (s *ReservationCommandsTestSuite) TestCancel_IncrementCappedAtTotal() {
	postID := s.seed(func(b *builder.PostBuilder) { b.Quantity, b.QuantityLeft = 2, 2 })
	actor := newIdentity(s.T())
	res := builder.NewReservationBuilder().With(func(b *builder.ReservationBuilder) {
		b.PostID = postID
		b.UserID = actor.ID()
	}).Reconstruct()
	s.store.seedReservation(res)

	result, err := s.cmds.Cancel(context.Background(), actor, res.ID().String())

	s.Require().NoError(err)
	s.False(result.AlreadyCanceled)
	s.Equal(2, s.store.post(postID).QuantityLeft())
	s.Equal(reservation.StatusCanceled, s.store.reservation(res.ID()).Status())
}

func (s *ReservationCommandsTestSuite) TestCancel_NoPartialWrites() {
	for _, step := range []string{"reservations.set_status", "posts.adjust", "notifications.create"} {
		s.Run(step, func() {
			s.SetupTest()
			postID := s.seed(func(b *builder.PostBuilder) { b.Quantity, b.QuantityLeft = 2, 2 })
			actor := newIdentity(s.T())
			reserved, err := s.cmds.Reserve(context.Background(), actor, postID.String())
			s.Require().NoError(err)

			s.store.failOn[step] = errors.New("connection reset")
			_, err = s.cmds.Cancel(context.Background(), actor, reserved.Reservation.ID().String())

			s.Require().Error(err)
			s.Equal(errs.KindInternal, errs.KindOf(err))
			s.Equal(1, s.store.post(postID).QuantityLeft())
			s.Equal(reservation.StatusReserved, s.store.reservation(reserved.Reservation.ID()).Status())
			s.Len(s.store.jobs(), 1)
		})
	}
}

// k units, N concurrent callers: exactly k succeed and the rest see Conflict.
func TestReserve_ConcurrentCallersExhaustExactlyK(t *testing.T) {
	const (
		units   = 3
		callers = 20
	)

	store := newMemStore()
	p := builder.NewPostBuilder().With(func(b *builder.PostBuilder) {
		b.Quantity, b.QuantityLeft = units, units
	}).Reconstruct()
	store.seedPost(p)
	cmds := commands.NewReservationCommands(store, clock.NewMockClock(testNow), discardLogger())

	var (
		wg        sync.WaitGroup
		mu        sync.Mutex
		successes int
		conflicts int
	)
	start := make(chan struct{})
	for range callers {
		actor := newIdentity(t)
		wg.Add(1)
		go func() {
			defer wg.Done()
			<-start
			_, err := cmds.Reserve(context.Background(), actor, p.ID().String())
			mu.Lock()
			defer mu.Unlock()
			switch {
			case err == nil:
				successes++
			case errs.KindOf(err) == errs.KindConflict:
				conflicts++
			default:
				t.Errorf("unexpected error: %v", err)
			}
		}()
	}
	close(start)
	wg.Wait()

	assert.Equal(t, units, successes)
	assert.Equal(t, callers-units, conflicts)
	assert.Equal(t, 0, store.post(p.ID()).QuantityLeft())
	assert.Equal(t, units, store.reservationCount())
}

// Reserve then cancel, in any interleaving, returns the pool to where it started.
func TestReserveCancel_ConcurrentRoundTrip(t *testing.T) {
	const callers = 10

	store := newMemStore()
	p := builder.NewPostBuilder().With(func(b *builder.PostBuilder) {
		b.Quantity, b.QuantityLeft = 4, 4
	}).Reconstruct()
	store.seedPost(p)
	cmds := commands.NewReservationCommands(store, clock.NewMockClock(testNow), discardLogger())

	var wg sync.WaitGroup
	for range callers {
		actor := newIdentity(t)
		wg.Add(1)
		go func() {
			defer wg.Done()
			res, err := cmds.Reserve(context.Background(), actor, p.ID().String())
			if err != nil {
				assert.Equal(t, errs.KindConflict, errs.KindOf(err))
				return
			}
			_, err = cmds.Cancel(context.Background(), actor, res.Reservation.ID().String())
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	assert.Equal(t, 4, store.post(p.ID()).QuantityLeft())
}
