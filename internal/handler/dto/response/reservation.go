package response

import (
	"time"

	"spark-bytes/internal/domain/reservation"
	"spark-bytes/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type ReservationResponse struct {
	ID        uuid.UUID `json:"id"`
	PostID    uuid.UUID `json:"post_id"`
	UserID    uuid.UUID `json:"user_id"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type CreateReservationResponse struct {
	Success      bool                 `json:"success"`
	Reservation  *ReservationResponse `json:"reservation"`
	QuantityLeft int                  `json:"quantity_left"`
}

type SuccessResponse struct {
	Success bool `json:"success"`
}

type PostSnapshotResponse struct {
	ID            uuid.UUID  `json:"id"`
	Title         string     `json:"title"`
	Description   string     `json:"description"`
	Location      string     `json:"location"`
	StartTime     *time.Time `json:"start_time"`
	EndTime       *time.Time `json:"end_time"`
	QuantityLeft  int        `json:"quantity_left"`
	TotalQuantity int        `json:"total_quantity"`
	ImagePath     string     `json:"image_path,omitempty"`
	ImageURL      string     `json:"image_url,omitempty"`
	Active        bool       `json:"active"`
	CreatedAt     time.Time  `json:"created_at"`
}

type ReservationListItemResponse struct {
	ID        uuid.UUID            `json:"id"`
	PostID    uuid.UUID            `json:"post_id"`
	UserID    uuid.UUID            `json:"user_id"`
	Status    string               `json:"status"`
	CreatedAt time.Time            `json:"created_at"`
	UpdatedAt time.Time            `json:"updated_at"`
	Post      PostSnapshotResponse `json:"post"`
}

type ReservationListResponse struct {
	Reservations []*ReservationListItemResponse `json:"reservations"`
}

func FromReservation(r *reservation.Reservation) *ReservationResponse {
	return &ReservationResponse{
		ID:        r.ID(),
		PostID:    r.PostID(),
		UserID:    r.UserID(),
		Status:    r.Status().String(),
		CreatedAt: r.CreatedAt(),
		UpdatedAt: r.UpdatedAt(),
	}
}

func FromReservationListItems(items []*queries.ReservationListItem) (*ReservationListResponse, error) {
	out := make([]*ReservationListItemResponse, len(items))
	for i, item := range items {
		var dst ReservationListItemResponse
		if err := copier.Copy(&dst, item); err != nil {
			return nil, err
		}
		if err := copier.Copy(&dst.Post, &item.Post); err != nil {
			return nil, err
		}
		out[i] = &dst
	}
	return &ReservationListResponse{Reservations: out}, nil
}
