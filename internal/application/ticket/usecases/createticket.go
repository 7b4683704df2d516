package usecases

import (
	"context"
	"io"

	"litrevu/internal/domain/ticket"
	apperrors "litrevu/internal/shared/errors"
	"litrevu/internal/shared/logger"
)

type CreateTicketCommand struct {
	Title       string
	Description string
	OwnerID     uint

	// ImageName and ImageData describe an optional upload. ImageData nil
	// means no image was submitted.
	ImageName string
	ImageData io.Reader
}

type CreateTicketResult struct {
	Ticket *ticket.Ticket
}

type CreateTicketUseCase struct {
	ticketRepo ticket.Repository
	imageStore ImageStore
	logger     logger.Interface
}

func NewCreateTicketUseCase(
	ticketRepo ticket.Repository,
	imageStore ImageStore,
	logger logger.Interface,
) *CreateTicketUseCase {
	return &CreateTicketUseCase{
		ticketRepo: ticketRepo,
		imageStore: imageStore,
		logger:     logger,
	}
}

func (uc *CreateTicketUseCase) Execute(ctx context.Context, cmd CreateTicketCommand) (*CreateTicketResult, error) {
	t, err := ticket.NewTicket(cmd.Title, cmd.Description, cmd.OwnerID)
	if err != nil {
		return nil, apperrors.NewValidationError(err.Error())
	}

	// The file is written before the row so a failed upload never leaves a
	// ticket pointing at a missing image. A failed insert cleans the file up.
	var imagePath string
	if cmd.ImageData != nil {
		imagePath, err = uc.imageStore.Save(cmd.ImageName, cmd.ImageData)
		if err != nil {
			return nil, apperrors.NewValidationError(err.Error())
		}
		if err := t.AttachImage(imagePath); err != nil {
			uc.cleanupImage(imagePath)
			return nil, apperrors.NewValidationError(err.Error())
		}
	}

	if err := uc.ticketRepo.Save(ctx, t); err != nil {
		uc.cleanupImage(imagePath)
		return nil, err
	}

	uc.logger.Infow("ticket created", "ticket_id", t.ID(), "owner_id", t.OwnerID(), "has_image", t.HasImage())

	return &CreateTicketResult{Ticket: t}, nil
}

func (uc *CreateTicketUseCase) cleanupImage(imagePath string) {
	if imagePath == "" {
		return
	}
	if err := uc.imageStore.Delete(imagePath); err != nil {
		uc.logger.Warnw("failed to clean up orphaned image", "path", imagePath, "error", err)
	}
}
