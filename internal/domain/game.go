package domain

import (
	"context"
	"errors"
)

// ErrNotFound is returned when a requested record or page does not exist.
var ErrNotFound = errors.New("not found")

// Category says how a schedule entry is handled: Target games are registered
// automatically, Other games are only eligible for the weekly digest.
type Category int

const (
	CategoryTarget Category = iota
	CategoryOther
)

// GameRef is one entry on the public schedule page. IDs are opaque
// numeric-looking tokens, unique within a single schedule snapshot.
type GameRef struct {
	ID       string
	Category Category
	Title    string
}

// GameDetails holds the raw fields parsed from a game's detail page.
// Month is a source-locale month name and Day may be a single digit;
// the page never states the year.
type GameDetails struct {
	Day      string
	Month    string
	Time     string
	Venue    string
	GameType string
}

// HandledGame is the durable record of a game this service has processed.
// One record per game id; created once on successful processing and never
// mutated or deleted here. IsPollCreated belongs to a downstream consumer
// and is always written false by this service.
type HandledGame struct {
	GameID        string `json:"game_id"`
	GameDate      string `json:"game_date"`
	GameTime      string `json:"game_time"`
	IsPollCreated bool   `json:"is_poll_created"`
	RegDate       string `json:"reg_date"`
	Venue         string `json:"venue"`
	GameType      string `json:"game_type"`
}

// HandledGameRepository defines the interface for handled-game storage.
type HandledGameRepository interface {
	// Put upserts the record keyed by GameID; a repeat insert overwrites.
	Put(ctx context.Context, game *HandledGame) error
	// Get returns the record for gameID, or ErrNotFound.
	Get(ctx context.Context, gameID string) (*HandledGame, error)
	// ScanIDs returns every stored game id. Implementations must drain all
	// pages before returning: a partial scan makes already-handled games
	// look new.
	ScanIDs(ctx context.Context) ([]string, error)
}
