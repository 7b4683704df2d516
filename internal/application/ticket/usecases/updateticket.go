package usecases

import (
	"context"
	"io"

	"litrevu/internal/domain/ticket"
	apperrors "litrevu/internal/shared/errors"
	"litrevu/internal/shared/logger"
)

type UpdateTicketCommand struct {
	TicketID    uint
	ActorID     uint
	Title       string
	Description string

	// ClearImage removes the current image. A new upload takes precedence
	// over the flag.
	ClearImage bool
	ImageName  string
	ImageData  io.Reader
}

type UpdateTicketResult struct {
	Ticket *ticket.Ticket
}

type UpdateTicketUseCase struct {
	ticketRepo ticket.Repository
	imageStore ImageStore
	logger     logger.Interface
}

func NewUpdateTicketUseCase(
	ticketRepo ticket.Repository,
	imageStore ImageStore,
	logger logger.Interface,
) *UpdateTicketUseCase {
	return &UpdateTicketUseCase{
		ticketRepo: ticketRepo,
		imageStore: imageStore,
		logger:     logger,
	}
}

func (uc *UpdateTicketUseCase) Execute(ctx context.Context, cmd UpdateTicketCommand) (*UpdateTicketResult, error) {
	t, err := uc.ticketRepo.GetByID(ctx, cmd.TicketID)
	if err != nil {
		return nil, err
	}

	if !t.IsOwnedBy(cmd.ActorID) {
		return nil, apperrors.NewForbiddenError("you can only edit your own tickets")
	}

	if err := t.UpdateDetails(cmd.Title, cmd.Description); err != nil {
		return nil, apperrors.NewValidationError(err.Error())
	}

	oldImage := t.Image()
	var newImage string

	switch {
	case cmd.ImageData != nil:
		newImage, err = uc.imageStore.Save(cmd.ImageName, cmd.ImageData)
		if err != nil {
			return nil, apperrors.NewValidationError(err.Error())
		}
		t.ClearImage()
		if err := t.AttachImage(newImage); err != nil {
			uc.cleanupImage(newImage)
			return nil, apperrors.NewValidationError(err.Error())
		}
	case cmd.ClearImage:
		t.ClearImage()
	}

	if err := uc.ticketRepo.Update(ctx, t); err != nil {
		uc.cleanupImage(newImage)
		return nil, err
	}

	// Old file goes away only after the row change stuck.
	if oldImage != "" && oldImage != t.Image() {
		uc.cleanupImage(oldImage)
	}

	uc.logger.Infow("ticket updated", "ticket_id", t.ID(), "actor_id", cmd.ActorID)

	return &UpdateTicketResult{Ticket: t}, nil
}

func (uc *UpdateTicketUseCase) cleanupImage(imagePath string) {
	if imagePath == "" {
		return
	}
	if err := uc.imageStore.Delete(imagePath); err != nil {
		uc.logger.Warnw("failed to remove image file", "path", imagePath, "error", err)
	}
}
