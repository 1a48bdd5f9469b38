// Package app wires the run pipeline from configuration. Both the daemon and
// the one-shot runner build the same workflow.
package app

import (
	"database/sql"
	"log/slog"
	"net/http"

	"quizreg/config"
	"quizreg/internal/adapters/email"
	"quizreg/internal/adapters/quizplease"
	"quizreg/internal/adapters/telegram"
	"quizreg/internal/domain"
	"quizreg/internal/repository/postgres"
	"quizreg/internal/services"
)

// BuildWorkflow constructs the full workflow: scraper, store, registration
// driver, digest builder, and notification channels. Channels without
// credentials are left nil (disabled).
func BuildWorkflow(cfg *config.Config, db *sql.DB, logger *slog.Logger) domain.WorkflowService {
	httpClient := &http.Client{Timeout: cfg.HTTPTimeout}

	qp := quizplease.NewClient(httpClient, quizplease.Config{
		ScheduleURL:   cfg.ScheduleURL,
		GamePageURL:   cfg.GamePageURL,
		RegURL:        cfg.RegURL,
		TargetHeading: cfg.TargetHeading,
		CitySuffix:    cfg.CitySuffix,
		Team: quizplease.Team{
			Name:        cfg.Team.Name,
			Phone:       cfg.Team.Phone,
			Email:       cfg.Team.Email,
			CaptainName: cfg.Team.CaptainName,
			Size:        cfg.Team.Size,
		},
	}, logger)

	repo := postgres.NewHandledGameRepository(db)
	registrations := services.NewRegistrationService(
		qp, qp, repo,
		cfg.YearRules, cfg.DefaultYear, cfg.Months,
		cfg.RegPacing, logger,
	)
	digest := services.NewDigestService(qp, cfg.YearRules, cfg.DefaultYear, cfg.Months, logger)

	var notifier domain.Notifier
	if cfg.Telegram.BotToken != "" && cfg.Telegram.ChatID != "" {
		notifier = telegram.New(httpClient, cfg.Telegram.BotToken, cfg.Telegram.ChatID, logger)
	}
	var mailer domain.Mailer
	if cfg.Email.DigestTo != "" {
		m, err := email.NewMailer(email.MailerConfig{
			Provider:    cfg.Email.Provider,
			FromAddress: cfg.Email.FromAddress,
			FromName:    cfg.Email.FromName,
			SES: email.SESConfig{
				Region:          cfg.Email.Region,
				AccessKeyID:     cfg.Email.AccessKeyID,
				SecretAccessKey: cfg.Email.SecretKey,
			},
		}, logger)
		if err != nil {
			logger.Error("failed to build mailer, email digest disabled", "err", err)
		} else {
			mailer = m
		}
	}

	return services.NewWorkflowService(
		qp, repo, registrations, digest,
		notifier, mailer, cfg.Email.DigestTo,
		cfg.RunTimeout, logger,
	)
}
