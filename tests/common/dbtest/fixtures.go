//go:build unit || e2e

package dbtest

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	sqlc "spark-bytes/internal/infra/sqlc/generated"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
)

// InsertPost writes row as-is, bypassing the domain rules so tests can set up
// ended or sold-out listings directly.
func InsertPost(t *testing.T, db DBLike, row sqlc.Posts) uuid.UUID {
	t.Helper()

	if row.ID == uuid.Nil {
		row.ID = uuid.New()
	}
	_, err := db.Exec(context.Background(), `
		INSERT INTO posts (id, user_id, title, description, location, start_time, end_time,
		                   total_quantity, quantity_left, image_path, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`,
		row.ID, row.UserID, row.Title, row.Description, row.Location, row.StartTime, row.EndTime,
		row.TotalQuantity, row.QuantityLeft, row.ImagePath, row.CreatedAt, row.UpdatedAt)
	require.NoError(t, err)
	return row.ID
}

func QuantityLeft(t *testing.T, db DBLike, postID uuid.UUID) int {
	t.Helper()

	var left int32
	err := db.QueryRow(context.Background(), "SELECT quantity_left FROM posts WHERE id = $1", postID).Scan(&left)
	require.NoError(t, err)
	return int(left)
}

func CountReservations(t *testing.T, db DBLike, postID uuid.UUID, status string) int {
	t.Helper()

	var n int
	err := db.QueryRow(context.Background(),
		"SELECT count(*) FROM reservations WHERE post_id = $1 AND status = $2", postID, status).Scan(&n)
	require.NoError(t, err)
	return n
}

func CountNotificationJobs(t *testing.T, db DBLike, topic string) int {
	t.Helper()

	var n int
	err := db.QueryRow(context.Background(),
		"SELECT count(*) FROM notification_jobs WHERE topic = $1", topic).Scan(&n)
	require.NoError(t, err)
	return n
}

var (
	buildTruncateOnce sync.Once
	truncateSQL       atomic.Value // string
)

// truncates every application table
func ResetDB(pool *pgxpool.Pool) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	buildTruncateOnce.Do(func() {
		rows, err := pool.Query(ctx, `
		  SELECT 'public.' || quote_ident(tablename)
		  FROM pg_tables
		  WHERE schemaname = 'public'
		    AND tablename NOT IN ('schema_migrations')`)
		if err != nil {
			truncateSQL.Store("")
			return
		}
		defer rows.Close()
		var tables []string
		for rows.Next() {
			var t string
			if err := rows.Scan(&t); err != nil {
				truncateSQL.Store("")
				return
			}
			tables = append(tables, t)
		}
		if rows.Err() != nil {
			truncateSQL.Store("")
			return
		}
		if len(tables) == 0 {
			truncateSQL.Store("SELECT 1")
			return
		}
		truncateSQL.Store("TRUNCATE " + strings.Join(tables, ", ") + " CASCADE;")
	})
	sqlAny := truncateSQL.Load()
	if sqlAny == nil || sqlAny.(string) == "" {
		return fmt.Errorf("failed to build TRUNCATE SQL")
	}
	_, err := pool.Exec(ctx, sqlAny.(string))
	return err
}
