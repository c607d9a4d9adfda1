package commands

import (
	"context"
	"log/slog"
	"time"

	"spark-bytes/internal/domain/post"
	"spark-bytes/internal/domain/user"
	"spark-bytes/internal/infra"
	"spark-bytes/internal/pkg/clock"
	"spark-bytes/internal/pkg/errs"
	"spark-bytes/internal/pkg/patch"
	"spark-bytes/internal/usecase"
	"spark-bytes/internal/usecase/shared"

	"github.com/google/uuid"
)

type CreatePostInput struct {
	Title       string
	Description string
	Location    string
	StartTime   *time.Time
	EndTime     *time.Time
	Quantity    int
	ImagePath   string
}

// UpdatePostInput is a partial edit. Nil fields keep their current value;
// ClearEndTime reopens a listing indefinitely.
type UpdatePostInput struct {
	Title        *string
	Description  *string
	Location     *string
	StartTime    *time.Time
	EndTime      *time.Time
	ClearEndTime bool
	ImagePath    *string
}

type DeletePostResult struct {
	PostID            uuid.UUID
	NotifiedReservers int
}

type PostCommands interface {
	Create(ctx context.Context, actor *user.Identity, in CreatePostInput) (*post.Post, error)
	Update(ctx context.Context, actor *user.Identity, rawPostID string, in UpdatePostInput) (*post.Post, error)
	Delete(ctx context.Context, actor *user.Identity, rawPostID string) (*DeletePostResult, error)
}

type postUseCaseImpl struct {
	uow    shared.UnitOfWork
	clock  clock.Clock
	logger *slog.Logger
}

func NewPostCommands(uow shared.UnitOfWork, clk clock.Clock, logger *slog.Logger) PostCommands {
	return &postUseCaseImpl{uow: uow, clock: clk, logger: logger}
}

func (uc *postUseCaseImpl) Create(ctx context.Context, actor *user.Identity, in CreatePostInput) (*post.Post, error) {
	if actor == nil {
		return nil, ErrUnauthenticated
	}

	details := post.Details{
		Title:       in.Title,
		Description: in.Description,
		Location:    in.Location,
		StartTime:   in.StartTime,
		EndTime:     in.EndTime,
		ImagePath:   in.ImagePath,
	}
	p, err := post.NewPost(actor.ID(), details, in.Quantity, uc.clock.Now())
	if err != nil {
		return nil, errs.Mark(err, errs.ErrInvalidArgument)
	}

	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Posts().Create(ctx, tx.DB(), p)
	})
	if err != nil {
		uc.logger.Error("failed to create post", "owner_id", actor.ID(), "error", err.Error())
		return nil, errs.Wrap(err, "create post")
	}

	uc.logger.Info("post created", "post_id", p.ID(), "quantity", p.TotalQuantity())
	return p, nil
}

func (uc *postUseCaseImpl) Update(ctx context.Context, actor *user.Identity, rawPostID string, in UpdatePostInput) (*post.Post, error) {
	if actor == nil {
		return nil, ErrUnauthenticated
	}
	postID, err := parseID(rawPostID, ErrPostIDRequired, ErrPostIDInvalid)
	if err != nil {
		return nil, err
	}

	var updated *post.Post
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		p, err := uc.lockOwned(ctx, tx, actor, postID)
		if err != nil {
			return err
		}

		current := p.Details()
		next := post.Details{
			Title:       patch.Coalesce(in.Title, current.Title),
			Description: patch.Coalesce(in.Description, current.Description),
			Location:    patch.Coalesce(in.Location, current.Location),
			StartTime:   current.StartTime,
			EndTime:     current.EndTime,
			ImagePath:   patch.Coalesce(in.ImagePath, current.ImagePath),
		}
		if in.StartTime != nil {
			next.StartTime = in.StartTime
		}
		if in.EndTime != nil {
			next.EndTime = in.EndTime
		}
		if in.ClearEndTime {
			next.EndTime = nil
		}

		if err := p.Revise(next, uc.clock.Now()); err != nil {
			return errs.Mark(err, errs.ErrInvalidArgument)
		}
		if err := tx.Posts().UpdateDetails(ctx, tx.DB(), p); err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return ErrPostNotFound
			}
			return err
		}
		updated = p
		return nil
	})
	if err != nil {
		return nil, uc.finish(err, "update post", postID)
	}
	return updated, nil
}

// Delete removes a post together with its reservations. Every user still
// holding a unit gets a notification in the same transaction.
func (uc *postUseCaseImpl) Delete(ctx context.Context, actor *user.Identity, rawPostID string) (*DeletePostResult, error) {
	if actor == nil {
		return nil, ErrUnauthenticated
	}
	postID, err := parseID(rawPostID, ErrPostIDRequired, ErrPostIDInvalid)
	if err != nil {
		return nil, err
	}

	var result *DeletePostResult
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		p, err := uc.lockOwned(ctx, tx, actor, postID)
		if err != nil {
			return err
		}

		claims, err := tx.Reservations().ListReservedByPost(ctx, tx.DB(), postID)
		if err != nil {
			return err
		}

		now := uc.clock.Now()
		for _, claim := range claims {
			event := postDeletedEvent{
				ReservationID: claim.ReservationID,
				PostID:        postID,
				PostTitle:     p.Title(),
				RecipientID:   claim.UserID,
			}
			if err := enqueueNotification(ctx, tx, shared.TopicPostDeleted, now, event); err != nil {
				return err
			}
		}

		if err := tx.Posts().Delete(ctx, tx.DB(), postID); err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return ErrPostNotFound
			}
			return err
		}

		result = &DeletePostResult{PostID: postID, NotifiedReservers: len(claims)}
		return nil
	})
	if err != nil {
		return nil, uc.finish(err, "delete post", postID)
	}

	uc.logger.Info("post deleted", "post_id", postID, "notified", result.NotifiedReservers)
	return result, nil
}

type postDeletedEvent struct {
	ReservationID uuid.UUID `json:"reservation_id"`
	PostID        uuid.UUID `json:"post_id"`
	PostTitle     string    `json:"post_title"`
	RecipientID   uuid.UUID `json:"recipient_id"`
}

func (uc *postUseCaseImpl) lockOwned(ctx context.Context, tx shared.Tx, actor *user.Identity, postID uuid.UUID) (*post.Post, error) {
	p, err := tx.Posts().GetForUpdate(ctx, tx.DB(), postID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrPostNotFound
		}
		return nil, err
	}
	if usecase.RequireOwner(actor, p.OwnerID()) != nil {
		return nil, ErrPostNotOwned
	}
	return p, nil
}

func (uc *postUseCaseImpl) finish(err error, op string, postID uuid.UUID) error {
	if errs.Is(err, shared.ErrMaxRetriesExceeded) {
		uc.logger.Warn("gave up after repeated contention", "op", op, "post_id", postID, "error", err.Error())
		return errs.WithCause(ErrContention, err)
	}
	if errs.KindOf(err) != errs.KindInternal {
		return err
	}
	uc.logger.Error("post command failed", "op", op, "post_id", postID, "error", err.Error())
	return errs.Wrap(err, op)
}
