package request

import (
	"spark-bytes/internal/usecase/commands"
)

// SaveProfileRequest is a partial update; an empty string clears the field.
type SaveProfileRequest struct {
	Nickname   *string `json:"nickname" binding:"omitempty,max=50"`
	AvatarPath *string `json:"avatar_path" binding:"omitempty,max=1024"`
}

func (r *SaveProfileRequest) ToInput() commands.SaveProfileInput {
	return commands.SaveProfileInput{
		Nickname:   r.Nickname,
		AvatarPath: r.AvatarPath,
	}
}
