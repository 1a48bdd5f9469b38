package domain

import (
	"context"
	"time"
)

// RunReport summarizes one workflow run for logs and the trigger response.
type RunReport struct {
	Discovered int  `json:"discovered"`
	New        int  `json:"new"`
	Registered int  `json:"registered"`
	Manual     bool `json:"manual"`
	DigestSent bool `json:"digest_sent"`
}

// WorkflowService runs one full discover-diff-register-notify cycle.
// manualIDs are merged into the candidate set; a non-empty list marks the run
// as manual and suppresses the digest.
type WorkflowService interface {
	Run(ctx context.Context, manualIDs []string) (*RunReport, error)
}

// RegistrationProcessor registers and persists new games strictly one at a
// time. It returns the ids that were durably recorded.
type RegistrationProcessor interface {
	Process(ctx context.Context, gameIDs []string) ([]string, error)
}

// DigestBuilder composes the weekly digest of thematic games falling in the
// calendar week after ref. Empty string means nothing qualifies.
type DigestBuilder interface {
	Build(ctx context.Context, games []GameRef, ref time.Time) (string, error)
}
