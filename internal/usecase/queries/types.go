package queries

import (
	"time"

	"spark-bytes/internal/domain/post"
	"spark-bytes/internal/usecase/listing"

	"github.com/google/uuid"
)

// Read models (DTO for read side)
type PostView struct {
	ID            uuid.UUID  `json:"id"`
	OwnerID       uuid.UUID  `json:"user_id"`
	Title         string     `json:"title"`
	Description   string     `json:"description"`
	Location      string     `json:"location"`
	StartTime     *time.Time `json:"start_time,omitempty"`
	EndTime       *time.Time `json:"end_time,omitempty"`
	TotalQuantity int        `json:"total_quantity"`
	QuantityLeft  int        `json:"quantity_left"`
	ImagePath     string     `json:"image_path,omitempty"`
	ImageURL      string     `json:"image_url,omitempty"`
	Active        bool       `json:"active"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at"`
}

func (v *PostView) ListingItem() listing.Item {
	return listing.Item{
		Title:        v.Title,
		Description:  v.Description,
		Location:     v.Location,
		StartTime:    v.StartTime,
		EndTime:      v.EndTime,
		QuantityLeft: v.QuantityLeft,
		CreatedAt:    v.CreatedAt,
		UpdatedAt:    v.UpdatedAt,
	}
}

// PostSnapshot is the slice of a post shown next to a reservation.
type PostSnapshot struct {
	ID            uuid.UUID  `json:"id"`
	Title         string     `json:"title"`
	Description   string     `json:"description"`
	Location      string     `json:"location"`
	StartTime     *time.Time `json:"start_time,omitempty"`
	EndTime       *time.Time `json:"end_time,omitempty"`
	QuantityLeft  int        `json:"quantity_left"`
	TotalQuantity int        `json:"total_quantity"`
	ImagePath     string     `json:"image_path,omitempty"`
	ImageURL      string     `json:"image_url,omitempty"`
	Active        bool       `json:"active"`
	CreatedAt     time.Time  `json:"created_at"`
}

type ReservationListItem struct {
	ID        uuid.UUID    `json:"id"`
	PostID    uuid.UUID    `json:"post_id"`
	UserID    uuid.UUID    `json:"user_id"`
	Status    string       `json:"status"`
	CreatedAt time.Time    `json:"created_at"`
	UpdatedAt time.Time    `json:"updated_at"`
	Post      PostSnapshot `json:"post"`
}

type FeedResult struct {
	Posts []*PostView
	// Version changes whenever any listing's content or availability changes.
	Version string
}

func decorate(v *PostView, now time.Time, images ImageURLResolver) {
	v.Active = post.IsActive(v.EndTime, now)
	v.ImageURL = images.Resolve(v.ImagePath)
}

func decorateSnapshot(s *PostSnapshot, now time.Time, images ImageURLResolver) {
	s.Active = post.IsActive(s.EndTime, now)
	s.ImageURL = images.Resolve(s.ImagePath)
}

// ProfileView is the caller's profile. A user who never saved one gets the
// zero value with only UserID set.
type ProfileView struct {
	UserID     uuid.UUID  `json:"id"`
	Nickname   string     `json:"nickname"`
	AvatarPath string     `json:"avatar_path,omitempty"`
	AvatarURL  string     `json:"avatar_url,omitempty"`
	UpdatedAt  *time.Time `json:"updated_at,omitempty"`
}
