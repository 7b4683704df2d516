package usecases

import (
	"context"

	"litrevu/internal/domain/review"
	"litrevu/internal/domain/ticket"
	apperrors "litrevu/internal/shared/errors"
	"litrevu/internal/shared/logger"
)

type DeleteTicketCommand struct {
	TicketID uint
	ActorID  uint
}

type DeleteTicketUseCase struct {
	ticketRepo ticket.Repository
	reviewRepo review.Repository
	imageStore ImageStore
	txManager  TransactionManager
	logger     logger.Interface
}

func NewDeleteTicketUseCase(
	ticketRepo ticket.Repository,
	reviewRepo review.Repository,
	imageStore ImageStore,
	txManager TransactionManager,
	logger logger.Interface,
) *DeleteTicketUseCase {
	return &DeleteTicketUseCase{
		ticketRepo: ticketRepo,
		reviewRepo: reviewRepo,
		imageStore: imageStore,
		txManager:  txManager,
		logger:     logger,
	}
}

func (uc *DeleteTicketUseCase) Execute(ctx context.Context, cmd DeleteTicketCommand) error {
	t, err := uc.ticketRepo.GetByID(ctx, cmd.TicketID)
	if err != nil {
		return err
	}

	if !t.IsOwnedBy(cmd.ActorID) {
		return apperrors.NewForbiddenError("you can only delete your own tickets")
	}

	// The attached review goes with the ticket, in the same transaction.
	err = uc.txManager.RunInTransaction(ctx, func(txCtx context.Context) error {
		if err := uc.reviewRepo.DeleteByTicketID(txCtx, t.ID()); err != nil {
			return err
		}
		return uc.ticketRepo.Delete(txCtx, t.ID())
	})
	if err != nil {
		return err
	}

	// File removal happens after commit; a leftover file is harmless.
	if t.HasImage() {
		if err := uc.imageStore.Delete(t.Image()); err != nil {
			uc.logger.Warnw("failed to remove image of deleted ticket", "path", t.Image(), "error", err)
		}
	}

	uc.logger.Infow("ticket deleted", "ticket_id", t.ID(), "actor_id", cmd.ActorID)

	return nil
}
