package response

import (
	"time"

	"spark-bytes/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type PostResponse struct {
	ID            uuid.UUID  `json:"id"`
	OwnerID       uuid.UUID  `json:"user_id"`
	Title         string     `json:"title"`
	Description   string     `json:"description"`
	Location      string     `json:"location"`
	StartTime     *time.Time `json:"start_time"`
	EndTime       *time.Time `json:"end_time"`
	TotalQuantity int        `json:"total_quantity"`
	QuantityLeft  int        `json:"quantity_left"`
	ImagePath     string     `json:"image_path,omitempty"`
	ImageURL      string     `json:"image_url,omitempty"`
	Active        bool       `json:"active"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at"`
}

type PostListResponse struct {
	Posts []*PostResponse `json:"posts"`
}

type PostEnvelope struct {
	Post *PostResponse `json:"post"`
}

type PostMutationResponse struct {
	Success bool          `json:"success"`
	Post    *PostResponse `json:"post"`
	Message string        `json:"message,omitempty"`
}

func FromPostView(v *queries.PostView) (*PostResponse, error) {
	var out PostResponse
	if err := copier.Copy(&out, v); err != nil {
		return nil, err
	}
	return &out, nil
}

func FromPostViews(views []*queries.PostView) (*PostListResponse, error) {
	out := make([]*PostResponse, len(views))
	for i, v := range views {
		p, err := FromPostView(v)
		if err != nil {
			return nil, err
		}
		out[i] = p
	}
	return &PostListResponse{Posts: out}, nil
}
