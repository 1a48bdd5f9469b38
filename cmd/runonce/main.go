// Command runonce executes a single reconciliation run and exits. Suited to
// external schedulers (system cron, CI jobs). Manual game ids can be injected
// with -game-ids.
package main

import (
	"context"
	"database/sql"
	"flag"
	"log/slog"
	"os"
	"strings"

	_ "github.com/lib/pq"

	"quizreg/config"
	"quizreg/internal/app"
)

func main() {
	var gameIDs string
	flag.StringVar(&gameIDs, "game-ids", "", "comma-separated game ids to register in addition to discovered ones")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "err", err)
		os.Exit(1)
	}
	logger := config.NewLogger()

	db, err := sql.Open("postgres", cfg.DBUrl)
	if err != nil {
		logger.Error("failed to open database", "err", err)
		os.Exit(1)
	}
	defer db.Close()

	var manual []string
	for _, id := range strings.Split(gameIDs, ",") {
		if id = strings.TrimSpace(id); id != "" {
			manual = append(manual, id)
		}
	}

	workflow := app.BuildWorkflow(cfg, db, logger)
	report, err := workflow.Run(context.Background(), manual)
	if err != nil {
		logger.Error("run failed", "err", err)
		os.Exit(1)
	}
	logger.Info("all done",
		"discovered", report.Discovered,
		"new", report.New,
		"registered", report.Registered,
		"digest_sent", report.DigestSent,
	)
}
