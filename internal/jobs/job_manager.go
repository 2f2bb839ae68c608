// Package jobs provides scheduled background tasks built on
// github.com/robfig/cron/v3.
//
// The only job today is the stale withdrawal review, which runs hourly and
// reminds admins about pending withdrawal requests that have waited longer
// than the configured age for a decision.
package jobs

import (
	"fmt"
	"log/slog"
	"time"

	"backoffice/internal/core/application/usecases/queries"
	"backoffice/internal/core/ports"
)

// JobManager coordinates all scheduled jobs in the application.
type JobManager struct {
	staleWithdrawalJob *StaleWithdrawalJob
}

// NewJobManager creates a job manager with all required jobs.
func NewJobManager(
	pendingWithdrawalsHandler queries.GetPendingWithdrawalsQueryHandler,
	notifier ports.NotificationDispatcher,
	staleWithdrawalMaxAge time.Duration,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		staleWithdrawalJob: NewStaleWithdrawalJob(
			pendingWithdrawalsHandler, notifier, staleWithdrawalMaxAge, logger),
	}
}

// StartAll starts all scheduled jobs.
func (jm *JobManager) StartAll() error {
	if err := jm.staleWithdrawalJob.Start(); err != nil {
		return fmt.Errorf("failed to start stale withdrawal job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.staleWithdrawalJob.Stop()
}
