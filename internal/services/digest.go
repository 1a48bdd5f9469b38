package services

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"quizreg/internal/domain"
)

// DigestService builds the weekly summary of thematic (non-target) games.
type DigestService struct {
	details     domain.GameDetailFetcher
	yearRules   []domain.YearRule
	defaultYear int
	months      domain.MonthTable
	logger      *slog.Logger
}

// NewDigestService returns a digest builder over the given detail fetcher and
// calendar data.
func NewDigestService(
	details domain.GameDetailFetcher,
	yearRules []domain.YearRule,
	defaultYear int,
	months domain.MonthTable,
	logger *slog.Logger,
) *DigestService {
	return &DigestService{
		details:     details,
		yearRules:   yearRules,
		defaultYear: defaultYear,
		months:      months,
		logger:      logger,
	}
}

// Build composes one line per game falling in the ISO calendar week after ref.
// Bucketing is by calendar week, not a rolling 7-day window: a game on the
// last day of the current week is excluded even if it is tomorrow. Games whose
// details cannot be fetched or dated are logged and skipped. Returns an empty
// string when no games qualify; callers must not send an empty digest.
func (s *DigestService) Build(ctx context.Context, games []domain.GameRef, ref time.Time) (string, error) {
	wantYear, wantWeek := ref.AddDate(0, 0, 7).ISOWeek()

	var lines []string
	for _, game := range games {
		det, err := s.details.FetchGameDetails(ctx, game.ID)
		if err != nil {
			s.logger.Error("failed to get game details for digest", "game_id", game.ID, "err", err)
			continue
		}
		gameDate, err := domain.ResolveGameDate(det, s.yearRules, s.defaultYear, s.months, game.ID)
		if err != nil {
			s.logger.Error("failed to resolve game date for digest", "game_id", game.ID, "err", err)
			continue
		}
		day, err := time.Parse("2006-01-02", gameDate)
		if err != nil {
			s.logger.Error("unparseable resolved game date", "game_id", game.ID, "game_date", gameDate, "err", err)
			continue
		}
		if y, w := day.ISOWeek(); y != wantYear || w != wantWeek {
			continue
		}
		lines = append(lines, fmt.Sprintf("%s %s, ID %s", gameDate, det.GameType, game.ID))
	}
	return strings.TrimSpace(strings.Join(lines, "\n")), nil
}
