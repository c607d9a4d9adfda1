//go:build unit || e2e

package builder

import (
	"time"

	"spark-bytes/internal/domain/post"
	sqlc "spark-bytes/internal/infra/sqlc/generated"
	"spark-bytes/internal/pkg/pgconv"
	"spark-bytes/internal/usecase/queries"

	"github.com/google/uuid"
)

// Default event window sits far enough ahead that built posts are active
// under both fixed test clocks and the wall clock.
var (
	DefaultStartTime = time.Date(2030, 5, 1, 17, 0, 0, 0, time.UTC)
	DefaultEndTime   = DefaultStartTime.Add(2 * time.Hour)
	DefaultCreatedAt = time.Date(2025, 4, 1, 9, 0, 0, 0, time.UTC)
)

type PostBuilder struct {
	ID           uuid.UUID
	OwnerID      uuid.UUID
	Title        string
	Description  string
	Location     string
	StartTime    *time.Time
	EndTime      *time.Time
	Quantity     int
	QuantityLeft int
	ImagePath    string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

func NewPostBuilder() *PostBuilder {
	start := DefaultStartTime
	end := DefaultEndTime
	return &PostBuilder{
		ID:           uuid.New(),
		OwnerID:      uuid.New(),
		Title:        "Leftover pizza",
		Description:  "Cheese and pepperoni from the club meeting",
		Location:     "CDS 1646",
		StartTime:    &start,
		EndTime:      &end,
		Quantity:     5,
		QuantityLeft: 5,
		ImagePath:    "posts/pizza.jpg",
		CreatedAt:    DefaultCreatedAt,
		UpdatedAt:    DefaultCreatedAt,
	}
}

func (b *PostBuilder) With(mutate func(*PostBuilder)) *PostBuilder {
	mutate(b)
	return b
}

func (b *PostBuilder) details() post.Details {
	return post.Details{
		Title:       b.Title,
		Description: b.Description,
		Location:    b.Location,
		StartTime:   b.StartTime,
		EndTime:     b.EndTime,
		ImagePath:   b.ImagePath,
	}
}

// Build methods

// BuildDomain goes through the validating constructor; ID and QuantityLeft
// are ignored.
func (b *PostBuilder) BuildDomain(now time.Time) (*post.Post, error) {
	return post.NewPost(b.OwnerID, b.details(), b.Quantity, now)
}

// Reconstruct builds the post as if loaded from storage, without validation.
func (b *PostBuilder) Reconstruct() *post.Post {
	return post.ReconstructPost(b.ID, b.OwnerID, b.details(), b.Quantity, b.QuantityLeft, b.CreatedAt, b.UpdatedAt)
}

func (b *PostBuilder) BuildInfra() sqlc.Posts {
	return sqlc.Posts{
		ID:            b.ID,
		UserID:        b.OwnerID,
		Title:         b.Title,
		Description:   pgconv.OptionalStringToPgtype(b.Description),
		Location:      pgconv.OptionalStringToPgtype(b.Location),
		StartTime:     pgconv.TimePtrToPgtype(b.StartTime),
		EndTime:       pgconv.TimePtrToPgtype(b.EndTime),
		TotalQuantity: int32(b.Quantity),     // #nosec G115 -- test data
		QuantityLeft:  int32(b.QuantityLeft), // #nosec G115 -- test data
		ImagePath:     pgconv.OptionalStringToPgtype(b.ImagePath),
		CreatedAt:     pgconv.TimeToPgtype(b.CreatedAt),
		UpdatedAt:     pgconv.TimeToPgtype(b.UpdatedAt),
	}
}

func (b *PostBuilder) BuildView() *queries.PostView {
	return &queries.PostView{
		ID:            b.ID,
		OwnerID:       b.OwnerID,
		Title:         b.Title,
		Description:   b.Description,
		Location:      b.Location,
		StartTime:     b.StartTime,
		EndTime:       b.EndTime,
		TotalQuantity: b.Quantity,
		QuantityLeft:  b.QuantityLeft,
		ImagePath:     b.ImagePath,
		CreatedAt:     b.CreatedAt,
		UpdatedAt:     b.UpdatedAt,
	}
}
