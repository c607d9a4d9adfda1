package shared

import (
	"time"

	"github.com/google/uuid"
)

// ReservedClaim is a live reservation seen from its post.
type ReservedClaim struct {
	ReservationID uuid.UUID
	UserID        uuid.UUID
}

// NotificationJob is an outbox row written in the same transaction as the
// change it announces.
type NotificationJob struct {
	Kind    string
	Topic   string
	Payload []byte
	RunAt   time.Time
}

const (
	NotificationKindInApp = "in_app"

	TopicReservationCreated  = "reservation.created"
	TopicReservationCanceled = "reservation.canceled"
	TopicPostDeleted         = "post.deleted"
)
