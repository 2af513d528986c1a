package mailer

import (
	"context"

	"akplaw/models"
)

// TypeMailSend is the asynq task type for queued outbound email.
const TypeMailSend = "mail:send"

// Mailer sends transactional email through the configured provider.
type Mailer interface {
	// Send forwards a message to the provider synchronously and returns the
	// provider's message ID.
	Send(ctx context.Context, msg models.EmailMessage) (string, error)
	// Enqueue schedules a message for background delivery. Failures are
	// logged and never surfaced to the caller's success path.
	Enqueue(msg models.EmailMessage)
}
