//go:build unit

package readstore

import (
	"context"
	"errors"
	"testing"
	"time"

	"spark-bytes/internal/infra"
	sqlc "spark-bytes/internal/infra/sqlc/generated"
	"spark-bytes/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockProfileReadQueries struct {
	mock.Mock
}

func (m *MockProfileReadQueries) GetUserinfo(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.Userinfo, error) {
	args := m.Called(ctx, db, id)
	row, _ := args.Get(0).(sqlc.Userinfo)
	return row, args.Error(1)
}

func TestProfileReadStore_GetByUserID(t *testing.T) {
	userID := uuid.New()
	updated := time.Date(2025, 4, 9, 18, 30, 0, 0, time.UTC)

	t.Run("maps nullable columns", func(t *testing.T) {
		mockQueries := new(MockProfileReadQueries)
		store := NewProfileReadStore(mockQueries, nil)
		mockQueries.On("GetUserinfo", mock.Anything, mock.Anything, userID).Return(sqlc.Userinfo{
			ID:        userID,
			Nickname:  pgtype.Text{String: "Rhett", Valid: true},
			CreatedAt: pgconv.TimeToPgtype(updated),
			UpdatedAt: pgconv.TimeToPgtype(updated),
		}, nil)

		got, err := store.GetByUserID(context.Background(), userID)
		require.NoError(t, err)
		assert.Equal(t, userID, got.UserID)
		assert.Equal(t, "Rhett", got.Nickname)
		assert.Empty(t, got.AvatarPath)
		require.NotNil(t, got.UpdatedAt)
		assert.True(t, updated.Equal(*got.UpdatedAt))
		mockQueries.AssertExpectations(t)
	})

	t.Run("no row", func(t *testing.T) {
		mockQueries := new(MockProfileReadQueries)
		store := NewProfileReadStore(mockQueries, nil)
		mockQueries.On("GetUserinfo", mock.Anything, mock.Anything, userID).Return(sqlc.Userinfo{}, pgx.ErrNoRows)

		got, err := store.GetByUserID(context.Background(), userID)
		assert.Nil(t, got)
		assert.True(t, infra.IsKind(err, infra.KindNotFound), "got %v", err)
	})

	t.Run("database error", func(t *testing.T) {
		mockQueries := new(MockProfileReadQueries)
		store := NewProfileReadStore(mockQueries, nil)
		mockQueries.On("GetUserinfo", mock.Anything, mock.Anything, userID).Return(sqlc.Userinfo{}, errors.New("connection refused"))

		got, err := store.GetByUserID(context.Background(), userID)
		assert.Nil(t, got)
		assert.True(t, infra.IsKind(err, infra.KindDBFailure), "got %v", err)
	})
}
