package post

import (
	"errors"
	"strings"
	"time"

	"spark-bytes/internal/pkg/objectpath"

	"github.com/google/uuid"
)

var (
	ErrTitleRequired     = errors.New("title is required")
	ErrTitleTooLong      = errors.New("title must be at most 255 characters")
	ErrInvalidQuantity   = errors.New("quantity must be between 1 and 10000")
	ErrInvalidTimeWindow = errors.New("start_time must be before end_time")
	ErrMissingOwner      = errors.New("post requires an owner")
	ErrInvalidImagePath  = errors.New("image_path must not contain '..' segments")
	ErrListingEnded      = errors.New("listing ended")
	ErrNoAvailability    = errors.New("no availability")
)

const (
	maxTitleLength = 255
	// MaxQuantity caps a single listing well inside the int4 column.
	MaxQuantity = 10000
)

// Post is a food listing. quantityLeft is the contended counter; it is only
// changed through the store's conditional adjust, never by a display edit.
type Post struct {
	id            uuid.UUID
	ownerID       uuid.UUID
	details       Details
	totalQuantity int
	quantityLeft  int
	createdAt     time.Time
	updatedAt     time.Time
}

// Details are the owner-editable display fields.
type Details struct {
	Title       string
	Description string
	Location    string
	StartTime   *time.Time
	EndTime     *time.Time
	ImagePath   string
}

func (d Details) Validate() error {
	title := strings.TrimSpace(d.Title)
	if title == "" {
		return ErrTitleRequired
	}
	if len([]rune(title)) > maxTitleLength {
		return ErrTitleTooLong
	}
	if d.StartTime != nil && d.EndTime != nil && !d.StartTime.Before(*d.EndTime) {
		return ErrInvalidTimeWindow
	}
	if objectpath.Escapes(d.ImagePath) {
		return ErrInvalidImagePath
	}
	return nil
}

func (d Details) normalized() Details {
	d.Title = strings.TrimSpace(d.Title)
	d.Description = strings.TrimSpace(d.Description)
	d.Location = strings.TrimSpace(d.Location)
	d.ImagePath = strings.TrimSpace(d.ImagePath)
	return d
}

func NewPost(ownerID uuid.UUID, details Details, quantity int, now time.Time) (*Post, error) {
	if ownerID == uuid.Nil {
		return nil, ErrMissingOwner
	}
	if err := details.Validate(); err != nil {
		return nil, err
	}
	if quantity < 1 || quantity > MaxQuantity {
		return nil, ErrInvalidQuantity
	}
	return &Post{
		id:            uuid.New(),
		ownerID:       ownerID,
		details:       details.normalized(),
		totalQuantity: quantity,
		quantityLeft:  quantity,
		createdAt:     now,
		updatedAt:     now,
	}, nil
}

func ReconstructPost(
	id, ownerID uuid.UUID,
	details Details,
	totalQuantity, quantityLeft int,
	createdAt, updatedAt time.Time,
) *Post {
	return &Post{
		id:            id,
		ownerID:       ownerID,
		details:       details,
		totalQuantity: totalQuantity,
		quantityLeft:  quantityLeft,
		createdAt:     createdAt,
		updatedAt:     updatedAt,
	}
}

// Revise replaces the display fields. Quantities are left alone.
func (p *Post) Revise(details Details, now time.Time) error {
	if err := details.Validate(); err != nil {
		return err
	}
	p.details = details.normalized()
	p.updatedAt = now
	return nil
}

// IsActiveAt reports whether the listing is still open: no end time, or an end time after now.
func (p *Post) IsActiveAt(now time.Time) bool {
	return IsActive(p.details.EndTime, now)
}

func IsActive(endTime *time.Time, now time.Time) bool {
	return endTime == nil || endTime.After(now)
}

// CheckReservable is the precondition for taking one unit.
func (p *Post) CheckReservable(now time.Time) error {
	if !p.IsActiveAt(now) {
		return ErrListingEnded
	}
	if p.quantityLeft < 1 {
		return ErrNoAvailability
	}
	return nil
}

// CanAdjust mirrors the store's conditional update predicate.
func (p *Post) CanAdjust(delta int) bool {
	next := p.quantityLeft + delta
	return next >= 0 && next <= p.totalQuantity
}

func (p *Post) IsOwnedBy(userID uuid.UUID) bool {
	return userID != uuid.Nil && p.ownerID == userID
}

func (p *Post) ID() uuid.UUID         { return p.id }
func (p *Post) OwnerID() uuid.UUID    { return p.ownerID }
func (p *Post) Details() Details      { return p.details }
func (p *Post) Title() string         { return p.details.Title }
func (p *Post) StartTime() *time.Time { return p.details.StartTime }
func (p *Post) EndTime() *time.Time   { return p.details.EndTime }
func (p *Post) TotalQuantity() int    { return p.totalQuantity }
func (p *Post) QuantityLeft() int     { return p.quantityLeft }
func (p *Post) CreatedAt() time.Time  { return p.createdAt }
func (p *Post) UpdatedAt() time.Time  { return p.updatedAt }
