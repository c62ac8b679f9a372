package usecases

import "context"

// Notifier dispatches a notification email synchronously. It never
// returns an error; failures are logged by the implementation and
// reported as false.
type Notifier interface {
	Notify(templateKey string, fields map[string]string) bool
}

type SendQuoteRequestExecutor interface {
	Execute(ctx context.Context, cmd SendQuoteRequestCommand) (*SendResult, error)
}

type SendContactFormExecutor interface {
	Execute(ctx context.Context, cmd SendContactFormCommand) (*SendResult, error)
}

type SendTicketNotificationExecutor interface {
	Execute(ctx context.Context, cmd SendTicketNotificationCommand) (*SendResult, error)
}

type SendTestEmailExecutor interface {
	Execute(ctx context.Context) (*SendResult, error)
}

// SendResult reports delivery to the public email endpoints, which
// answer success/failure rather than an HTTP error.
type SendResult struct {
	Success bool
	Message string
}
