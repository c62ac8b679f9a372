package usecases

import (
	"context"
	"io"

	"reinkjet/internal/application/ticket/dto"
	"reinkjet/internal/domain/ticket"
	"reinkjet/internal/shared/constants"
	"reinkjet/internal/shared/errors"
	"reinkjet/internal/shared/logger"
)

type AddAttachmentCommand struct {
	AccountID    uint
	TicketID     uint
	Content      io.Reader
	OriginalName string
	MimeType     string
}

type AddAttachmentUseCase struct {
	ticketRepo     ticket.TicketRepository
	attachmentRepo ticket.AttachmentRepository
	storage        FileStorage
	tx             TransactionRunner
	logger         logger.Interface
}

func NewAddAttachmentUseCase(
	ticketRepo ticket.TicketRepository,
	attachmentRepo ticket.AttachmentRepository,
	storage FileStorage,
	tx TransactionRunner,
	logger logger.Interface,
) *AddAttachmentUseCase {
	return &AddAttachmentUseCase{
		ticketRepo:     ticketRepo,
		attachmentRepo: attachmentRepo,
		storage:        storage,
		tx:             tx,
		logger:         logger,
	}
}

func (uc *AddAttachmentUseCase) Execute(ctx context.Context, cmd AddAttachmentCommand) (*dto.AttachmentDTO, error) {
	if cmd.AccountID == 0 || cmd.TicketID == 0 {
		return nil, errors.NewValidationError("account ID and ticket ID are required")
	}
	if cmd.OriginalName == "" {
		return nil, errors.NewValidationError("filename is required")
	}
	if !ticket.AllowedExtension(cmd.OriginalName) {
		return nil, errors.NewValidationError("file type not allowed")
	}

	t, err := uc.ticketRepo.GetByID(ctx, cmd.TicketID)
	if err != nil {
		if errors.IsNotFoundError(err) {
			return nil, err
		}
		uc.logger.Errorw("failed to load ticket", "ticket_id", cmd.TicketID, "error", err)
		return nil, errors.NewInternalError("failed to add attachment")
	}

	if t.AccountID() != cmd.AccountID {
		return nil, errors.NewNotFoundError(constants.ErrMsgResourceNotFound)
	}

	storedName, path, size, err := uc.storage.Save(cmd.Content, cmd.OriginalName)
	if err != nil {
		uc.logger.Errorw("failed to store attachment file", "error", err)
		return nil, errors.NewInternalError("failed to add attachment")
	}

	attachment, err := ticket.NewAttachment(t.ID(), storedName, cmd.OriginalName, path, size, cmd.MimeType)
	if err != nil {
		// The file is already on disk; clean it up before failing.
		if rmErr := uc.storage.Remove(storedName); rmErr != nil {
			uc.logger.Warnw("failed to remove orphaned attachment file", "stored_name", storedName, "error", rmErr)
		}
		return nil, errors.NewValidationError(err.Error())
	}

	t.RecordAttachment(cmd.OriginalName, &cmd.AccountID)

	err = uc.tx.RunInTransaction(ctx, func(txCtx context.Context) error {
		if err := uc.attachmentRepo.Save(txCtx, attachment); err != nil {
			return err
		}
		return uc.ticketRepo.Update(txCtx, t)
	})
	if err != nil {
		uc.logger.Errorw("failed to persist attachment", "ticket_id", t.ID(), "error", err)
		if rmErr := uc.storage.Remove(storedName); rmErr != nil {
			uc.logger.Warnw("failed to remove orphaned attachment file", "stored_name", storedName, "error", rmErr)
		}
		return nil, errors.NewInternalError("failed to add attachment")
	}

	uc.logger.Infow("attachment added", "ticket_id", t.ID(), "stored_name", storedName, "size", size)

	result := dto.ToAttachmentDTO(attachment)
	return &result, nil
}
