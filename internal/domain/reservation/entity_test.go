//go:build unit

package reservation_test

import (
	"testing"
	"time"

	"spark-bytes/internal/domain/reservation"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewReservation(t *testing.T) {
	now := time.Date(2025, 4, 10, 12, 0, 0, 0, time.UTC)
	postID, userID := uuid.New(), uuid.New()

	t.Run("starts reserved", func(t *testing.T) {
		r, err := reservation.NewReservation(postID, userID, now)
		require.NoError(t, err)

		want := reservation.ReconstructReservation(r.ID(), postID, userID, reservation.StatusReserved, now, now)
		if diff := cmp.Diff(want, r, cmp.AllowUnexported(reservation.Reservation{})); diff != "" {
			t.Errorf("reservation mismatch (-want +got):\n%s", diff)
		}
		assert.NotEqual(t, uuid.Nil, r.ID())
		assert.True(t, r.IsActive())
	})

	t.Run("requires post and user", func(t *testing.T) {
		_, err := reservation.NewReservation(uuid.Nil, userID, now)
		assert.ErrorIs(t, err, reservation.ErrMissingPost)

		_, err = reservation.NewReservation(postID, uuid.Nil, now)
		assert.ErrorIs(t, err, reservation.ErrMissingUser)
	})
}

func TestReservation_Cancel(t *testing.T) {
	now := time.Date(2025, 4, 10, 12, 0, 0, 0, time.UTC)
	r, err := reservation.NewReservation(uuid.New(), uuid.New(), now)
	require.NoError(t, err)

	later := now.Add(time.Hour)
	require.NoError(t, r.Cancel(later))
	assert.True(t, r.IsCanceled())
	assert.Equal(t, later, r.UpdatedAt())

	assert.ErrorIs(t, r.Cancel(later.Add(time.Hour)), reservation.ErrReservationCanceled)
	assert.Equal(t, later, r.UpdatedAt(), "second cancel leaves the record untouched")
}

func TestReservation_IsOwnedBy(t *testing.T) {
	owner := uuid.New()
	r := reservation.ReconstructReservation(uuid.New(), uuid.New(), owner, reservation.StatusReserved, time.Time{}, time.Time{})

	assert.True(t, r.IsOwnedBy(owner))
	assert.False(t, r.IsOwnedBy(uuid.New()))
	assert.False(t, r.IsOwnedBy(uuid.Nil))
}

func TestNewStatus(t *testing.T) {
	got, err := reservation.NewStatus("reserved")
	require.NoError(t, err)
	assert.Equal(t, reservation.StatusReserved, got)

	_, err = reservation.NewStatus("fulfilled")
	assert.ErrorIs(t, err, reservation.ErrInvalidStatus)
}
