//go:build unit

package readstore

import (
	"context"
	"errors"
	"testing"

	"spark-bytes/internal/infra"
	sqlc "spark-bytes/internal/infra/sqlc/generated"
	"spark-bytes/tests/common/builder"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockPostReadQueries struct {
	mock.Mock
}

func (m *MockPostReadQueries) GetPost(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.Posts, error) {
	args := m.Called(ctx, db, id)
	return args.Get(0).(sqlc.Posts), args.Error(1)
}

func (m *MockPostReadQueries) ListPosts(ctx context.Context, db sqlc.DBTX) ([]sqlc.Posts, error) {
	args := m.Called(ctx, db)
	rows, _ := args.Get(0).([]sqlc.Posts)
	return rows, args.Error(1)
}

func TestPostReadStore_FindByID(t *testing.T) {
	b := builder.NewPostBuilder()
	row := b.BuildInfra()

	tests := []struct {
		name      string
		mockRow   sqlc.Posts
		mockError error
		wantKind  infra.RepositoryErrorKind
	}{
		{name: "success", mockRow: row},
		{name: "not found", mockError: pgx.ErrNoRows, wantKind: infra.KindNotFound},
		{name: "database error", mockError: errors.New("connection refused"), wantKind: infra.KindDBFailure},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockQueries := new(MockPostReadQueries)
			store := NewPostReadStore(mockQueries, nil)
			mockQueries.On("GetPost", mock.Anything, mock.Anything, row.ID).Return(tt.mockRow, tt.mockError)

			got, err := store.FindByID(context.Background(), row.ID)

			if tt.wantKind != "" {
				assert.Nil(t, got)
				assert.True(t, infra.IsKind(err, tt.wantKind), "got %v", err)
			} else {
				require.NoError(t, err)
				if diff := cmp.Diff(b.BuildView(), got); diff != "" {
					t.Errorf("view mismatch (-want +got):\n%s", diff)
				}
			}
			mockQueries.AssertExpectations(t)
		})
	}
}

func TestPostReadStore_ListAll(t *testing.T) {
	t.Run("maps nullable columns", func(t *testing.T) {
		bare := builder.NewPostBuilder().BuildInfra()
		bare.Description = pgtype.Text{}
		bare.Location = pgtype.Text{}
		bare.ImagePath = pgtype.Text{}
		bare.StartTime = pgtype.Timestamptz{}
		bare.EndTime = pgtype.Timestamptz{}
		full := builder.NewPostBuilder().BuildInfra()

		mockQueries := new(MockPostReadQueries)
		store := NewPostReadStore(mockQueries, nil)
		mockQueries.On("ListPosts", mock.Anything, mock.Anything).Return([]sqlc.Posts{full, bare}, nil)

		got, err := store.ListAll(context.Background())
		require.NoError(t, err)
		require.Len(t, got, 2)

		assert.Equal(t, full.ID, got[0].ID)
		assert.NotNil(t, got[0].EndTime)
		assert.Equal(t, "posts/pizza.jpg", got[0].ImagePath)

		assert.Empty(t, got[1].Description)
		assert.Empty(t, got[1].ImagePath)
		assert.Nil(t, got[1].StartTime)
		assert.Nil(t, got[1].EndTime)
		mockQueries.AssertExpectations(t)
	})

	t.Run("empty table", func(t *testing.T) {
		mockQueries := new(MockPostReadQueries)
		store := NewPostReadStore(mockQueries, nil)
		mockQueries.On("ListPosts", mock.Anything, mock.Anything).Return(nil, nil)

		got, err := store.ListAll(context.Background())
		require.NoError(t, err)
		assert.Empty(t, got)
	})

	t.Run("database error", func(t *testing.T) {
		mockQueries := new(MockPostReadQueries)
		store := NewPostReadStore(mockQueries, nil)
		mockQueries.On("ListPosts", mock.Anything, mock.Anything).Return(nil, errors.New("timeout"))

		_, err := store.ListAll(context.Background())
		assert.True(t, infra.IsKind(err, infra.KindDBFailure), "got %v", err)
	})
}
