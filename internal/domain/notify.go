package domain

import "context"

// Notifier delivers a text message to a fixed chat bound at construction.
// Delivery is best-effort: failures are logged, never fatal to a run.
type Notifier interface {
	Send(ctx context.Context, text string) error
}

// Mailer defines the contract for sending emails (infrastructure port).
type Mailer interface {
	Send(to, subject, html, text string) error
}
