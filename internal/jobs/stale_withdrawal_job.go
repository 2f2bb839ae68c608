package jobs

import (
	"context"
	"log/slog"
	"time"

	"backoffice/internal/core/application/usecases/queries"
	"backoffice/internal/core/ports"

	"github.com/robfig/cron/v3"
)

// staleWithdrawalSchedule runs the review at the top of every hour.
const staleWithdrawalSchedule = "0 0 * * * *"

// StaleWithdrawalJob periodically scans for pending withdrawal requests that
// have waited longer than maxAge for an admin decision and sends a reminder
// for each one.
type StaleWithdrawalJob struct {
	handler  queries.GetPendingWithdrawalsQueryHandler
	notifier ports.NotificationDispatcher
	maxAge   time.Duration
	cron     *cron.Cron
	logger   *slog.Logger
}

// NewStaleWithdrawalJob creates a job that reminds admins about withdrawal
// requests pending longer than maxAge.
func NewStaleWithdrawalJob(
	handler queries.GetPendingWithdrawalsQueryHandler,
	notifier ports.NotificationDispatcher,
	maxAge time.Duration,
	logger *slog.Logger,
) *StaleWithdrawalJob {
	return &StaleWithdrawalJob{
		handler:  handler,
		notifier: notifier,
		maxAge:   maxAge,
		cron:     cron.New(cron.WithSeconds()),
		logger:   logger.With("component", "stale_withdrawal_job"),
	}
}

// Start schedules the hourly review.
func (j *StaleWithdrawalJob) Start() error {
	_, err := j.cron.AddFunc(staleWithdrawalSchedule, j.run)
	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Stale withdrawal review job started",
		"max_age", j.maxAge.String())
	return nil
}

// Stop stops the review job.
func (j *StaleWithdrawalJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Stale withdrawal review job stopped")
}

func (j *StaleWithdrawalJob) run() {
	ctx := context.Background()

	cutoff := time.Now().UTC().Add(-j.maxAge)
	query := queries.NewGetPendingWithdrawalsQuery(&cutoff)

	stale, err := j.handler.Handle(ctx, query)
	if err != nil {
		j.logger.ErrorContext(ctx, "Stale withdrawal review failed", "error", err)
		return
	}

	for _, request := range stale {
		if err = j.notifier.NotifyStaleWithdrawal(ctx, request.ID, request.SellerID); err != nil {
			j.logger.ErrorContext(ctx, "Stale withdrawal reminder failed",
				"request_id", request.ID.String(), "error", err)
		}
	}

	if len(stale) > 0 {
		j.logger.InfoContext(ctx, "Stale withdrawal review completed", "reminded", len(stale))
	}
}
