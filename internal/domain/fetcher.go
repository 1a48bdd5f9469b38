package domain

import (
	"context"
	"errors"
)

// ErrRegistrationFailed is returned when the registration endpoint rejects a
// request or the transport fails. It aborts the remaining batch.
var ErrRegistrationFailed = errors.New("registration failed")

// ScheduleFetcher fetches the current schedule page (or a test double).
type ScheduleFetcher interface {
	FetchSchedule(ctx context.Context) ([]GameRef, error)
}

// GameDetailFetcher fetches one game's detail page. Returns ErrNotFound when
// the page lacks the expected blocks.
type GameDetailFetcher interface {
	FetchGameDetails(ctx context.Context, gameID string) (*GameDetails, error)
}

// Registrar submits the fixed team registration for one game.
type Registrar interface {
	Register(ctx context.Context, gameID string) error
}
