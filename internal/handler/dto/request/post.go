package request

import (
	"time"

	"spark-bytes/internal/usecase/commands"
)

type CreatePostRequest struct {
	Title       string     `json:"title" binding:"required,max=255"`
	Description string     `json:"description" binding:"max=2000"`
	Location    string     `json:"location" binding:"max=255"`
	StartTime   *time.Time `json:"start_time"`
	EndTime     *time.Time `json:"end_time"`
	Quantity    int        `json:"quantity" binding:"required,min=1,max=10000"`
	ImagePath   string     `json:"image_path" binding:"max=1024"`
}

func (r *CreatePostRequest) ToInput() commands.CreatePostInput {
	return commands.CreatePostInput{
		Title:       r.Title,
		Description: r.Description,
		Location:    r.Location,
		StartTime:   r.StartTime,
		EndTime:     r.EndTime,
		Quantity:    r.Quantity,
		ImagePath:   r.ImagePath,
	}
}

// UpdatePostRequest is a partial update; omitted fields are left unchanged.
// Quantities cannot be edited.
type UpdatePostRequest struct {
	Title        *string    `json:"title" binding:"omitempty,max=255"`
	Description  *string    `json:"description" binding:"omitempty,max=2000"`
	Location     *string    `json:"location" binding:"omitempty,max=255"`
	StartTime    *time.Time `json:"start_time"`
	EndTime      *time.Time `json:"end_time"`
	ClearEndTime bool       `json:"clear_end_time"`
	ImagePath    *string    `json:"image_path" binding:"omitempty,max=1024"`
}

func (r *UpdatePostRequest) ToInput() commands.UpdatePostInput {
	return commands.UpdatePostInput{
		Title:        r.Title,
		Description:  r.Description,
		Location:     r.Location,
		StartTime:    r.StartTime,
		EndTime:      r.EndTime,
		ClearEndTime: r.ClearEndTime,
		ImagePath:    r.ImagePath,
	}
}
