package commands

import (
	"context"
	"encoding/json"
	"log/slog"
	"strings"
	"time"

	"spark-bytes/internal/domain/post"
	"spark-bytes/internal/domain/reservation"
	"spark-bytes/internal/domain/user"
	"spark-bytes/internal/infra"
	"spark-bytes/internal/pkg/clock"
	"spark-bytes/internal/pkg/errs"
	"spark-bytes/internal/usecase"
	"spark-bytes/internal/usecase/shared"

	"github.com/google/uuid"
)

type ReserveResult struct {
	Reservation  *reservation.Reservation
	QuantityLeft int
}

type CancelResult struct {
	Reservation *reservation.Reservation
	// AlreadyCanceled is set when the call changed nothing.
	AlreadyCanceled bool
}

type ReservationCommands interface {
	Reserve(ctx context.Context, actor *user.Identity, rawPostID string) (*ReserveResult, error)
	Cancel(ctx context.Context, actor *user.Identity, rawReservationID string) (*CancelResult, error)
}

type reservationUseCaseImpl struct {
	uow    shared.UnitOfWork
	clock  clock.Clock
	logger *slog.Logger
}

func NewReservationCommands(uow shared.UnitOfWork, clk clock.Clock, logger *slog.Logger) ReservationCommands {
	return &reservationUseCaseImpl{
		uow:    uow,
		clock:  clk,
		logger: logger,
	}
}

// Reserve takes one unit of a post for the caller. The decrement, the
// reservation row and the owner notification commit together or not at all.
func (uc *reservationUseCaseImpl) Reserve(ctx context.Context, actor *user.Identity, rawPostID string) (*ReserveResult, error) {
	if actor == nil {
		return nil, ErrUnauthenticated
	}
	postID, err := parseID(rawPostID, ErrPostIDRequired, ErrPostIDInvalid)
	if err != nil {
		return nil, err
	}

	var result *ReserveResult
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		now := uc.clock.Now()

		p, err := tx.Posts().GetForReserve(ctx, tx.DB(), postID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return ErrPostNotFound
			}
			return err
		}
		if err := p.CheckReservable(now); err != nil {
			return reservableErr(err)
		}

		left, err := tx.Posts().AdjustQuantity(ctx, tx.DB(), postID, -1)
		if err != nil {
			switch {
			case infra.IsKind(err, infra.KindConflict):
				return ErrNoAvailability
			case infra.IsKind(err, infra.KindNotFound):
				return ErrPostNotFound
			}
			return err
		}

		res, err := reservation.NewReservation(postID, actor.ID(), now)
		if err != nil {
			return errs.Mark(err, errs.ErrInvalidArgument)
		}
		if err := tx.Reservations().Create(ctx, tx.DB(), res); err != nil {
			if infra.IsKind(err, infra.KindDuplicateKey) {
				return ErrAlreadyReserved
			}
			return err
		}

		if err := enqueueNotification(ctx, tx, shared.TopicReservationCreated, now, reservationEvent{
			ReservationID: res.ID(),
			PostID:        postID,
			PostTitle:     p.Title(),
			RecipientID:   p.OwnerID(),
			ActorID:       actor.ID(),
			QuantityLeft:  left,
		}); err != nil {
			return err
		}

		result = &ReserveResult{Reservation: res, QuantityLeft: left}
		return nil
	})
	if err != nil {
		return nil, uc.finish(err, "reserve", "post_id", postID)
	}

	uc.logger.Info("reservation created",
		"reservation_id", result.Reservation.ID(),
		"post_id", postID,
		"quantity_left", result.QuantityLeft)
	return result, nil
}

// Cancel releases the caller's reservation and returns its unit to the post.
// Cancelling an already canceled reservation succeeds without side effects.
func (uc *reservationUseCaseImpl) Cancel(ctx context.Context, actor *user.Identity, rawReservationID string) (*CancelResult, error) {
	if actor == nil {
		return nil, ErrUnauthenticated
	}
	reservationID, err := parseID(rawReservationID, ErrReservationIDRequired, ErrReservationIDInvalid)
	if err != nil {
		return nil, err
	}

	var result *CancelResult
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		now := uc.clock.Now()

		res, err := tx.Reservations().GetForUpdate(ctx, tx.DB(), reservationID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return ErrReservationNotFound
			}
			return err
		}
		if usecase.RequireOwner(actor, res.UserID()) != nil {
			return ErrReservationNotOwned
		}

		if err := res.Cancel(now); err != nil {
			if errs.Is(err, reservation.ErrReservationCanceled) {
				result = &CancelResult{Reservation: res, AlreadyCanceled: true}
				return nil
			}
			return err
		}

		if err := tx.Reservations().SetStatus(ctx, tx.DB(), res.ID(), reservation.StatusReserved, reservation.StatusCanceled, now); err != nil {
			return err
		}

		left, err := tx.Posts().AdjustQuantity(ctx, tx.DB(), res.PostID(), 1)
		if err != nil {
			if !infra.IsKind(err, infra.KindConflict) {
				return err
			}
			// The post is already full; the reservation still ends.
			uc.logger.Warn("quantity increment capped at total",
				"reservation_id", res.ID(),
				"post_id", res.PostID())
			left = -1
		}

		payload := reservationEvent{
			ReservationID: res.ID(),
			PostID:        res.PostID(),
			RecipientID:   res.UserID(),
			ActorID:       actor.ID(),
			QuantityLeft:  left,
		}
		if err := enqueueNotification(ctx, tx, shared.TopicReservationCanceled, now, payload); err != nil {
			return err
		}

		result = &CancelResult{Reservation: res}
		return nil
	})
	if err != nil {
		return nil, uc.finish(err, "cancel", "reservation_id", reservationID)
	}

	if !result.AlreadyCanceled {
		uc.logger.Info("reservation canceled", "reservation_id", reservationID)
	}
	return result, nil
}

type reservationEvent struct {
	ReservationID uuid.UUID `json:"reservation_id"`
	PostID        uuid.UUID `json:"post_id"`
	PostTitle     string    `json:"post_title,omitempty"`
	RecipientID   uuid.UUID `json:"recipient_id"`
	ActorID       uuid.UUID `json:"actor_id"`
	// QuantityLeft is -1 when a cancel found the post already full.
	QuantityLeft int `json:"quantity_left"`
}

// finish turns a transaction failure into what the caller sees. Kinded errors
// pass through; exhausted retries read as contention; the rest is internal.
func (uc *reservationUseCaseImpl) finish(err error, op, idKey string, id uuid.UUID) error {
	if errs.Is(err, shared.ErrMaxRetriesExceeded) {
		uc.logger.Warn("gave up after repeated contention", "op", op, idKey, id, "error", err.Error())
		return errs.WithCause(ErrContention, err)
	}
	if errs.KindOf(err) != errs.KindInternal {
		return err
	}
	uc.logger.Error("reservation command failed", "op", op, idKey, id, "error", err.Error())
	return errs.Wrap(err, op)
}

func enqueueNotification(ctx context.Context, tx shared.Tx, topic string, now time.Time, event any) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return errs.Wrap(err, "marshal notification payload")
	}
	return tx.Notifications().CreateJob(ctx, tx.DB(), shared.NotificationJob{
		Kind:    shared.NotificationKindInApp,
		Topic:   topic,
		Payload: payload,
		RunAt:   now,
	})
}

func parseID(raw string, requiredErr, invalidErr error) (uuid.UUID, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return uuid.Nil, requiredErr
	}
	id, err := uuid.Parse(raw)
	if err != nil || id == uuid.Nil {
		return uuid.Nil, invalidErr
	}
	return id, nil
}

func reservableErr(err error) error {
	switch {
	case errs.Is(err, post.ErrListingEnded):
		return ErrListingEnded
	case errs.Is(err, post.ErrNoAvailability):
		return ErrNoAvailability
	default:
		return err
	}
}
