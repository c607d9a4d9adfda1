package commands

import (
	"context"
	"log/slog"

	"spark-bytes/internal/domain/user"
	"spark-bytes/internal/infra"
	"spark-bytes/internal/pkg/clock"
	"spark-bytes/internal/pkg/errs"
	"spark-bytes/internal/usecase/shared"
)

// SaveProfileInput is a partial edit; nil keeps the stored value.
type SaveProfileInput struct {
	Nickname   *string
	AvatarPath *string
}

type ProfileCommands interface {
	Save(ctx context.Context, actor *user.Identity, in SaveProfileInput) (*user.Profile, error)
}

type profileUseCaseImpl struct {
	uow    shared.UnitOfWork
	clock  clock.Clock
	logger *slog.Logger
}

func NewProfileCommands(uow shared.UnitOfWork, clk clock.Clock, logger *slog.Logger) ProfileCommands {
	return &profileUseCaseImpl{uow: uow, clock: clk, logger: logger}
}

// Save creates the caller's profile on first use and edits it afterwards.
func (uc *profileUseCaseImpl) Save(ctx context.Context, actor *user.Identity, in SaveProfileInput) (*user.Profile, error) {
	if actor == nil {
		return nil, ErrUnauthenticated
	}

	var saved *user.Profile
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		now := uc.clock.Now()

		p, err := tx.Profiles().GetForUpdate(ctx, tx.DB(), actor.ID())
		switch {
		case infra.IsKind(err, infra.KindNotFound):
			if p, err = user.NewProfile(actor.ID(), now); err != nil {
				return errs.Mark(err, errs.ErrInvalidArgument)
			}
		case err != nil:
			return err
		}

		if err := p.Update(in.Nickname, in.AvatarPath, now); err != nil {
			return errs.Mark(err, errs.ErrInvalidArgument)
		}
		if err := tx.Profiles().Save(ctx, tx.DB(), p); err != nil {
			return err
		}
		saved = p
		return nil
	})
	if err != nil {
		if errs.KindOf(err) != errs.KindInternal {
			return nil, err
		}
		uc.logger.Error("failed to save profile", "user_id", actor.ID(), "error", err.Error())
		return nil, errs.Wrap(err, "save profile")
	}

	uc.logger.Info("profile saved", "user_id", actor.ID())
	return saved, nil
}
