package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"quizreg/internal/domain"
)

// RegistrationService drives registration for newly discovered games, strictly
// one game at a time with a fixed pacing delay between attempts.
type RegistrationService struct {
	registrar   domain.Registrar
	details     domain.GameDetailFetcher
	repo        domain.HandledGameRepository
	yearRules   []domain.YearRule
	defaultYear int
	months      domain.MonthTable
	pacing      time.Duration
	logger      *slog.Logger

	// injectable for tests
	sleep func(time.Duration)
	now   func() time.Time
}

// NewRegistrationService returns a registration processor over the given
// collaborators. yearRules and months are operator-maintained calendar data.
func NewRegistrationService(
	registrar domain.Registrar,
	details domain.GameDetailFetcher,
	repo domain.HandledGameRepository,
	yearRules []domain.YearRule,
	defaultYear int,
	months domain.MonthTable,
	pacing time.Duration,
	logger *slog.Logger,
) *RegistrationService {
	return &RegistrationService{
		registrar:   registrar,
		details:     details,
		repo:        repo,
		yearRules:   yearRules,
		defaultYear: defaultYear,
		months:      months,
		pacing:      pacing,
		logger:      logger,
		sleep:       time.Sleep,
		now:         time.Now,
	}
}

// Process registers each game in order and persists one handled record per
// success. A registration failure aborts the remaining batch; a detail-fetch
// or persist failure only skips the record, so the game is retried (and
// re-registered) on the next run. The pacing delay runs after every processed
// game as a crude rate limit on the registration endpoint. Returns the ids
// that were durably recorded.
func (s *RegistrationService) Process(ctx context.Context, gameIDs []string) ([]string, error) {
	var persisted []string
	for _, gameID := range gameIDs {
		recorded, err := s.processOne(ctx, gameID)
		if err != nil {
			return persisted, err
		}
		if recorded {
			persisted = append(persisted, gameID)
		}
		s.sleep(s.pacing)
	}
	return persisted, nil
}

func (s *RegistrationService) processOne(ctx context.Context, gameID string) (bool, error) {
	s.logger.Info("registering at game", "game_id", gameID)
	if err := s.registrar.Register(ctx, gameID); err != nil {
		s.logger.Error("registration failed", "game_id", gameID, "err", err)
		return false, fmt.Errorf("register game %s: %w", gameID, err)
	}

	det, err := s.details.FetchGameDetails(ctx, gameID)
	if err != nil {
		// Registered but not recorded: the game stays unhandled and will be
		// re-registered next run. Accepted at-least-once risk.
		s.logger.Error("failed to get game details, record not persisted", "game_id", gameID, "err", err)
		return false, nil
	}

	gameDate, err := domain.ResolveGameDate(det, s.yearRules, s.defaultYear, s.months, gameID)
	if err != nil {
		s.logger.Error("failed to resolve game date, record not persisted", "game_id", gameID, "err", err)
		return false, nil
	}

	record := &domain.HandledGame{
		GameID:        gameID,
		GameDate:      gameDate,
		GameTime:      det.Time,
		IsPollCreated: false,
		RegDate:       s.now().Format("2006-01-02"),
		Venue:         det.Venue,
		GameType:      det.GameType,
	}
	if err := s.repo.Put(ctx, record); err != nil {
		s.logger.Error("failed to persist handled game", "game_id", gameID, "err", err)
		return false, nil
	}
	s.logger.Info("game recorded as handled", "game_id", gameID, "game_date", gameDate)
	return true, nil
}
