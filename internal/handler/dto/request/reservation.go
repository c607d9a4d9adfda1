package request

type CreateReservationRequest struct {
	PostID string `json:"post_id"`
}
