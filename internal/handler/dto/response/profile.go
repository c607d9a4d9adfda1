package response

import (
	"time"

	"spark-bytes/internal/usecase/queries"

	"github.com/google/uuid"
)

type ProfileResponse struct {
	ID         uuid.UUID  `json:"id"`
	Nickname   string     `json:"nickname"`
	AvatarPath string     `json:"avatar_path"`
	AvatarURL  string     `json:"avatar_url"`
	UpdatedAt  *time.Time `json:"updated_at"`
}

func FromProfileView(v *queries.ProfileView) *ProfileResponse {
	return &ProfileResponse{
		ID:         v.UserID,
		Nickname:   v.Nickname,
		AvatarPath: v.AvatarPath,
		AvatarURL:  v.AvatarURL,
		UpdatedAt:  v.UpdatedAt,
	}
}
