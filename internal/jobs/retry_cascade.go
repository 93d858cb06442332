package jobs

import (
	"context"
	"time"

	"auction-settlement/internal/config"
	payment "auction-settlement/internal/paymentService"
	"auction-settlement/utils"
)

// RetryCascadeJob periodically sweeps payment attempts whose window expired
// without a confirmation and hands each to the cascade. The same cascade
// logic also runs synchronously when a confirmation explicitly fails; the
// idempotence of ProcessFailedAttempt keeps the two paths from
// double-processing an attempt.
type RetryCascadeJob struct {
	payments *payment.PaymentService
	interval time.Duration
	stopCh   chan struct{}
}

// NewRetryCascadeJob creates the sweep job polling at the configured interval.
func NewRetryCascadeJob(payments *payment.PaymentService, cfg config.SettlementConfig) *RetryCascadeJob {
	return &RetryCascadeJob{
		payments: payments,
		interval: cfg.RetryCheckInterval(),
		stopCh:   make(chan struct{}),
	}
}

// Start runs the polling loop until the context is canceled or Stop is
// called. The tick in flight finishes before the loop exits.
func (j *RetryCascadeJob) Start(ctx context.Context) {
	utils.Info("retry cascade job started", map[string]any{"interval": j.interval.String()})

	ticker := time.NewTicker(j.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			utils.Info("retry cascade job stopping", map[string]any{"reason": ctx.Err().Error()})
			return
		case <-j.stopCh:
			utils.Info("retry cascade job stopped", nil)
			return
		case <-ticker.C:
			if _, err := j.RunTick(); err != nil {
				utils.Error("retry cascade tick failed", map[string]any{"error": err.Error()})
			}
		}
	}
}

// Stop signals the polling loop to exit.
func (j *RetryCascadeJob) Stop() {
	close(j.stopCh)
}

// RunTick processes every expired Pending attempt once, failure-isolated per
// attempt.
func (j *RetryCascadeJob) RunTick() (int, error) {
	return j.payments.RunRetryCascadeTick()
}
