package scheduler

import (
	"log/slog"

	"github.com/robfig/cron/v3"
)

// Scheduler runs the workflow on a cron spec. Overlapping runs are skipped,
// never queued: the handled-game store is accessed read-then-write without a
// lock, so at most one run may be active at a time.
type Scheduler struct {
	cron   *cron.Cron
	logger *slog.Logger
}

// New returns a stopped Scheduler.
func New(logger *slog.Logger) *Scheduler {
	return &Scheduler{
		cron:   cron.New(),
		logger: logger,
	}
}

// Schedule registers job under the given cron spec (robfig/cron syntax,
// descriptors like "@hourly" included).
func (s *Scheduler) Schedule(spec string, job func()) error {
	chain := cron.NewChain(cron.SkipIfStillRunning(cronLogger{s.logger}))
	_, err := s.cron.AddJob(spec, chain.Then(cron.FuncJob(job)))
	return err
}

// Start begins running scheduled jobs in their own goroutine.
func (s *Scheduler) Start() {
	s.cron.Start()
}

// Stop stops scheduling new runs and waits for an active run to finish.
func (s *Scheduler) Stop() {
	<-s.cron.Stop().Done()
}

// cronLogger adapts slog to cron's logger interface.
type cronLogger struct {
	logger *slog.Logger
}

func (l cronLogger) Info(msg string, keysAndValues ...any) {
	l.logger.Info(msg, keysAndValues...)
}

func (l cronLogger) Error(err error, msg string, keysAndValues ...any) {
	l.logger.Error(msg, append([]any{"err", err}, keysAndValues...)...)
}
