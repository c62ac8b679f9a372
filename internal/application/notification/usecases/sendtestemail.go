package usecases

import (
	"context"

	"reinkjet/internal/shared/logger"
)

type SendTestEmailUseCase struct {
	notifier Notifier
	logger   logger.Interface
}

func NewSendTestEmailUseCase(notifier Notifier, logger logger.Interface) *SendTestEmailUseCase {
	return &SendTestEmailUseCase{
		notifier: notifier,
		logger:   logger,
	}
}

func (uc *SendTestEmailUseCase) Execute(ctx context.Context) (*SendResult, error) {
	ok := uc.notifier.Notify("test", nil)
	if !ok {
		uc.logger.Warnw("test email was not delivered")
		return &SendResult{Success: false, Message: "Falha ao enviar e-mail de teste"}, nil
	}

	return &SendResult{Success: true, Message: "E-mail de teste enviado com sucesso"}, nil
}
