package jobs

import (
	"context"
	"errors"
	"fmt"
	"time"

	"auction-settlement/internal/config"
	payment "auction-settlement/internal/paymentService"
	"auction-settlement/internal/repository"
	"auction-settlement/internal/settlementerrors"
	"auction-settlement/utils"

	model "auction-settlement/internal/models"
)

// AuctionMonitor periodically finalizes auctions whose deadline has passed:
// auctions with a highest bid move to PendingPayment and get their first
// payment attempt, auctions without bids fail. It runs concurrently with
// request handling and the retry cascade; conflicts are resolved by the
// ledger's CAS transitions, never by blocking other actors.
type AuctionMonitor struct {
	ledger   repository.LedgerStore
	payments *payment.PaymentService
	interval time.Duration
	stopCh   chan struct{}
	now      func() time.Time
}

// NewAuctionMonitor creates a monitor polling at the configured interval.
func NewAuctionMonitor(ledger repository.LedgerStore, payments *payment.PaymentService, cfg config.SettlementConfig) *AuctionMonitor {
	return &AuctionMonitor{
		ledger:   ledger,
		payments: payments,
		interval: cfg.MonitoringInterval(),
		stopCh:   make(chan struct{}),
		now:      time.Now,
	}
}

// Start runs the polling loop until the context is canceled or Stop is
// called. The tick in flight finishes before the loop exits.
func (m *AuctionMonitor) Start(ctx context.Context) {
	utils.Info("auction monitor started", map[string]any{"interval": m.interval.String()})

	ticker := time.NewTicker(m.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			utils.Info("auction monitor stopping", map[string]any{"reason": ctx.Err().Error()})
			return
		case <-m.stopCh:
			utils.Info("auction monitor stopped", nil)
			return
		case <-ticker.C:
			if _, err := m.RunTick(); err != nil {
				utils.Error("auction monitor tick failed", map[string]any{"error": err.Error()})
			}
		}
	}
}

// Stop signals the polling loop to exit.
func (m *AuctionMonitor) Stop() {
	close(m.stopCh)
}

// RunTick finalizes every expired Active auction once. Each auction is
// processed independently: a failure is logged and does not block the rest
// of the batch. Returns how many auctions were finalized cleanly.
func (m *AuctionMonitor) RunTick() (int, error) {
	expired, err := m.ledger.ListExpiredActiveAuctions(m.now())
	if err != nil {
		return 0, fmt.Errorf("monitor: list expired auctions: %w", err)
	}

	finalized := 0
	for _, auction := range expired {
		if err := m.finalize(auction); err != nil {
			utils.Error("auction finalization failed", map[string]any{
				"auction_id": auction.AuctionID,
				"error":      err.Error(),
			})
			continue
		}
		finalized++
	}

	m.recoverUnattended()
	return finalized, nil
}

// finalize moves one expired auction out of Active. A CAS miss means another
// actor (a late extending bid, a concurrent tick) got there first; that is
// not a failure of this tick.
func (m *AuctionMonitor) finalize(auction model.Auction) error {
	if !auction.HasBid() {
		err := m.ledger.TransitionAuction(auction.AuctionID, model.AuctionActive, model.AuctionFailed)
		if err != nil {
			if errors.Is(err, settlementerrors.ErrStateConflict) {
				return nil
			}
			return fmt.Errorf("monitor: fail auction %s: %w", auction.AuctionID, err)
		}
		utils.Info("auction expired with no bids", map[string]any{"auction_id": auction.AuctionID})
		return nil
	}

	err := m.ledger.TransitionAuction(auction.AuctionID, model.AuctionActive, model.AuctionPendingPayment)
	if err != nil {
		if errors.Is(err, settlementerrors.ErrStateConflict) {
			return nil
		}
		return fmt.Errorf("monitor: finalize auction %s: %w", auction.AuctionID, err)
	}

	utils.Info("auction expired, awaiting payment", map[string]any{
		"auction_id":     auction.AuctionID,
		"highest_bid_id": auction.HighestBidID,
	})

	if _, err := m.payments.CreateFirstAttempt(auction.AuctionID); err != nil {
		return fmt.Errorf("monitor: open payment window for auction %s: %w", auction.AuctionID, err)
	}
	return nil
}

// recoverUnattended re-opens the first payment window for auctions left in
// PendingPayment with no attempt rows by an earlier crashed tick.
func (m *AuctionMonitor) recoverUnattended() {
	orphaned, err := m.ledger.ListUnattendedPendingPaymentAuctions()
	if err != nil {
		utils.Error("monitor: list unattended auctions failed", map[string]any{"error": err.Error()})
		return
	}

	for _, auction := range orphaned {
		if _, err := m.payments.CreateFirstAttempt(auction.AuctionID); err != nil {
			utils.Error("monitor: recover payment window failed", map[string]any{
				"auction_id": auction.AuctionID,
				"error":      err.Error(),
			})
		}
	}
}
