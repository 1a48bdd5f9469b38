package services

import (
	"context"
	"log/slog"
	"time"

	"quizreg/internal/domain"
)

// WorkflowService wires one full run: fetch the schedule, diff against the
// handled set, drive registrations, and (on scheduled runs) deliver the
// thematic digest. Each run is independent; there is no shared state beyond
// the handled-game store, and at most one run is expected to be active at a
// time.
type WorkflowService struct {
	schedule      domain.ScheduleFetcher
	repo          domain.HandledGameRepository
	registrations domain.RegistrationProcessor
	digest        domain.DigestBuilder
	notifier      domain.Notifier
	mailer        domain.Mailer
	digestEmailTo string
	logger        *slog.Logger
	timeout       time.Duration

	now func() time.Time
}

// NewWorkflowService returns a WorkflowService. mailer may be nil or
// digestEmailTo empty to disable the email digest channel; notifier may be
// nil to disable the chat channel.
func NewWorkflowService(
	schedule domain.ScheduleFetcher,
	repo domain.HandledGameRepository,
	registrations domain.RegistrationProcessor,
	digest domain.DigestBuilder,
	notifier domain.Notifier,
	mailer domain.Mailer,
	digestEmailTo string,
	timeout time.Duration,
	logger *slog.Logger,
) *WorkflowService {
	return &WorkflowService{
		schedule:      schedule,
		repo:          repo,
		registrations: registrations,
		digest:        digest,
		notifier:      notifier,
		mailer:        mailer,
		digestEmailTo: digestEmailTo,
		logger:        logger,
		timeout:       timeout,
		now:           time.Now,
	}
}

// Run executes one reconciliation cycle. manualIDs are merged into the
// candidate set; a non-empty list marks the run as manual and suppresses the
// digest. Schedule-fetch and store-scan failures degrade to empty sets (the
// run continues, conservatively risking re-registration); a registration
// failure aborts the run and is returned alongside the partial report.
func (s *WorkflowService) Run(ctx context.Context, manualIDs []string) (*domain.RunReport, error) {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	s.logger.Info("run starting", "manual_ids", len(manualIDs))

	refs, err := s.schedule.FetchSchedule(ctx)
	if err != nil {
		s.logger.Error("failed to fetch schedule, continuing with empty list", "err", err)
		refs = nil
	}
	var discovered []string
	var other []domain.GameRef
	for _, ref := range refs {
		switch ref.Category {
		case domain.CategoryTarget:
			discovered = append(discovered, ref.ID)
		case domain.CategoryOther:
			other = append(other, ref)
		}
	}

	handled, err := s.repo.ScanIDs(ctx)
	if err != nil {
		// Treated as "nothing handled yet": re-registering an already-handled
		// game is preferred over silently skipping a new one.
		s.logger.Error("failed to scan handled games, treating as empty", "err", err)
		handled = nil
	}

	newIDs := NewGameIDs(discovered, manualIDs, handled)
	s.logger.Info("schedule reconciled",
		"discovered", len(discovered),
		"handled", len(handled),
		"new", len(newIDs),
	)

	report := &domain.RunReport{
		Discovered: len(discovered),
		New:        len(newIDs),
		Manual:     len(manualIDs) > 0,
	}

	registered, err := s.registrations.Process(ctx, newIDs)
	report.Registered = len(registered)
	if err != nil {
		return report, err
	}

	if !report.Manual {
		report.DigestSent = s.sendDigest(ctx, other)
	}

	s.logger.Info("run finished",
		"registered", report.Registered,
		"digest_sent", report.DigestSent,
	)
	return report, nil
}

// sendDigest builds and delivers the thematic digest over the configured
// channels. Delivery is best-effort: failures are logged only and never affect
// registration outcomes. Reports whether at least one channel accepted it.
func (s *WorkflowService) sendDigest(ctx context.Context, other []domain.GameRef) bool {
	text, err := s.digest.Build(ctx, other, s.now())
	if err != nil {
		s.logger.Error("failed to build digest", "err", err)
		return false
	}
	if text == "" {
		s.logger.Info("no thematic games next week, digest skipped")
		return false
	}

	sent := false
	if s.notifier != nil {
		if err := s.notifier.Send(ctx, text); err != nil {
			s.logger.Error("failed to send digest notification", "err", err)
		} else {
			sent = true
		}
	}
	if s.mailer != nil && s.digestEmailTo != "" {
		if err := s.mailer.Send(s.digestEmailTo, "Thematic games next week", "", text); err != nil {
			s.logger.Error("failed to send digest email", "err", err)
		} else {
			sent = true
		}
	}
	return sent
}
