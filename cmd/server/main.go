package main

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/lib/pq"

	"quizreg/config"
	_ "quizreg/docs"
	"quizreg/internal/adapters/auth"
	"quizreg/internal/app"
	deliveryhttp "quizreg/internal/delivery/http"
	"quizreg/internal/delivery/http/controllers"
	"quizreg/internal/delivery/http/middleware"
	"quizreg/internal/scheduler"
)

// @title quizreg API
// @version 1.0
// @description Trivia game discovery and idempotent team registration service.
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
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
	pingCtx, cancelPing := context.WithTimeout(context.Background(), 5*time.Second)
	if err := db.PingContext(pingCtx); err != nil {
		logger.Warn("database not reachable at startup", "err", err)
	}
	cancelPing()

	workflow := app.BuildWorkflow(cfg, db, logger)

	tokens := auth.NewHS256Tokens(cfg.APITokenSecret)
	runController := controllers.NewRunController(logger, workflow)
	healthController := controllers.NewHealthController(logger, db)
	router := deliveryhttp.NewRouter(runController, healthController, tokens)

	server := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           middleware.LoggingMiddleware(logger, router),
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      cfg.RunTimeout + 30*time.Second,
	}

	sched := scheduler.New(logger)
	if err := sched.Schedule(cfg.CronSpec, func() {
		if _, err := workflow.Run(context.Background(), nil); err != nil {
			logger.Error("scheduled run failed", "err", err)
		}
	}); err != nil {
		logger.Error("invalid cron spec", "spec", cfg.CronSpec, "err", err)
		os.Exit(1)
	}
	sched.Start()
	logger.Info("scheduler started", "spec", cfg.CronSpec)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		logger.Info("http server listening", "port", cfg.Port)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("http server failed", "err", err)
			stop()
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")
	sched.Stop()
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("http server shutdown failed", "err", err)
	}
}
