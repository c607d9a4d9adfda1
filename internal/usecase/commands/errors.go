package commands

import (
	"spark-bytes/internal/pkg/errs"
)

var (
	ErrUnauthenticated = errs.NewKind(errs.KindUnauthenticated, "authentication required")

	ErrPostIDRequired        = errs.NewKind(errs.KindInvalidArgument, "post_id is required")
	ErrPostIDInvalid         = errs.NewKind(errs.KindInvalidArgument, "post_id is invalid")
	ErrReservationIDRequired = errs.NewKind(errs.KindInvalidArgument, "reservation_id is required")
	ErrReservationIDInvalid  = errs.NewKind(errs.KindInvalidArgument, "reservation_id is invalid")

	ErrPostNotFound        = errs.NewKind(errs.KindNotFound, "post not found")
	ErrReservationNotFound = errs.NewKind(errs.KindNotFound, "reservation not found")

	ErrPostNotOwned        = errs.NewKind(errs.KindForbidden, "post not owned by user")
	ErrReservationNotOwned = errs.NewKind(errs.KindForbidden, "reservation not owned by user")

	ErrListingEnded    = errs.NewKind(errs.KindConflict, "listing ended")
	ErrNoAvailability  = errs.NewKind(errs.KindConflict, "no availability")
	ErrAlreadyReserved = errs.NewKind(errs.KindConflict, "already reserved")
	ErrContention      = errs.NewKind(errs.KindConflict, "no longer available")
)
