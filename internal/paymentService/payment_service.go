package payment

import (
	"errors"
	"fmt"
	"time"

	"auction-settlement/internal/config"
	"auction-settlement/internal/notifier"
	"auction-settlement/internal/repository"
	"auction-settlement/internal/settlementerrors"
	"auction-settlement/utils"

	model "auction-settlement/internal/models"
)

// PaymentService manages payment attempts for won auctions: the winner's
// first payment window, confirmation of payment claims, and the retry
// cascade that reassigns an unpaid win to the next-highest untried bidder.
type PaymentService struct {
	ledger   repository.LedgerStore
	notifier notifier.Notifier
	cfg      config.SettlementConfig
	now      func() time.Time
}

// NewPaymentService creates a new PaymentService instance
func NewPaymentService(ledger repository.LedgerStore, n notifier.Notifier, cfg config.SettlementConfig) *PaymentService {
	return &PaymentService{
		ledger:   ledger,
		notifier: n,
		cfg:      cfg,
		now:      time.Now,
	}
}

// CreateFirstAttempt opens attempt #1 for the auction's highest bidder with a
// fresh payment window and notifies the bidder best-effort.
func (s *PaymentService) CreateFirstAttempt(auctionID string) (model.PaymentAttempt, error) {
	auction, err := s.ledger.GetAuction(auctionID)
	if err != nil {
		return model.PaymentAttempt{}, fmt.Errorf("service: create first attempt for auction %s: %w", auctionID, err)
	}
	if auction.Status != model.AuctionPendingPayment {
		return model.PaymentAttempt{}, fmt.Errorf("service: auction %s is %s: %w",
			auctionID, auction.Status, settlementerrors.ErrStateConflict)
	}

	winning, err := s.ledger.GetWinningBid(auctionID)
	if err != nil {
		if errors.Is(err, settlementerrors.ErrNoBids) {
			return model.PaymentAttempt{}, fmt.Errorf("service: auction %s: %w", auctionID, settlementerrors.ErrNoBidsOnAuction)
		}
		return model.PaymentAttempt{}, fmt.Errorf("service: create first attempt for auction %s: %w", auctionID, err)
	}

	now := s.now().UTC()
	attempt := model.PaymentAttempt{
		AttemptID:     utils.GenerateID(),
		AuctionID:     auctionID,
		BidderID:      winning.BidderID,
		Status:        model.AttemptPending,
		AttemptNumber: 1,
		AttemptTime:   now,
		ExpiryTime:    now.Add(s.cfg.PaymentWindow()),
		Amount:        winning.Amount,
	}

	if err := s.ledger.CreateAttempt(attempt); err != nil {
		return model.PaymentAttempt{}, fmt.Errorf("service: create first attempt for auction %s: %w", auctionID, err)
	}

	s.notify(auction, attempt)
	utils.Info("payment attempt created", map[string]any{
		"auction_id":     auctionID,
		"attempt_id":     attempt.AttemptID,
		"attempt_number": attempt.AttemptNumber,
		"bidder_id":      attempt.BidderID,
		"amount":         attempt.Amount,
	})
	return attempt, nil
}

// ConfirmPayment settles the auction's open payment window. The caller must
// be the attempt's bidder. A matching amount completes the auction; forceFail
// or a mismatched amount rejects the attempt and triggers the retry cascade
// synchronously, returning the Failed transaction. A claim arriving after the
// window expired is rejected without touching state; the cascade tick owns
// that attempt's timeout. Commit conflicts with the background loops are
// retried once against re-read state.
func (s *PaymentService) ConfirmPayment(productID, callerUserID string, confirmedAmount float64, forceFail bool) (model.Transaction, error) {
	txn, err := s.tryConfirmPayment(productID, callerUserID, confirmedAmount, forceFail)
	if err != nil && isCommitConflict(err) {
		txn, err = s.tryConfirmPayment(productID, callerUserID, confirmedAmount, forceFail)
	}
	return txn, err
}

func (s *PaymentService) tryConfirmPayment(productID, callerUserID string, confirmedAmount float64, forceFail bool) (model.Transaction, error) {
	auction, err := s.ledger.GetAuctionByProduct(productID)
	if err != nil {
		return model.Transaction{}, fmt.Errorf("service: confirm payment for product %s: %w", productID, err)
	}

	attempt, err := s.ledger.GetPendingAttempt(auction.AuctionID)
	if err != nil {
		return model.Transaction{}, fmt.Errorf("service: confirm payment for product %s: %w", productID, err)
	}

	if callerUserID != attempt.BidderID {
		return model.Transaction{}, fmt.Errorf("service: user %s is not the bidder on attempt %s: %w",
			callerUserID, attempt.AttemptID, settlementerrors.ErrUnauthorizedPayment)
	}

	if forceFail {
		return s.rejectAttempt(auction, attempt, confirmedAmount, nil)
	}

	if s.now().After(attempt.ExpiryTime) {
		return model.Transaction{}, fmt.Errorf("service: attempt %s expired at %s: %w",
			attempt.AttemptID, attempt.ExpiryTime.UTC().Format(time.RFC3339), settlementerrors.ErrPaymentWindowExpired)
	}

	if confirmedAmount != attempt.Amount {
		return s.rejectAttempt(auction, attempt, confirmedAmount, settlementerrors.ErrInvalidPaymentAmount)
	}

	txn := s.newTransaction(attempt.AttemptID, model.TransactionSuccess, confirmedAmount)
	if err := s.ledger.CompletePayment(attempt.AttemptID, confirmedAmount, txn); err != nil {
		return model.Transaction{}, fmt.Errorf("service: complete payment for attempt %s: %w", attempt.AttemptID, err)
	}

	utils.Info("payment confirmed", map[string]any{
		"auction_id":     auction.AuctionID,
		"attempt_id":     attempt.AttemptID,
		"transaction_id": txn.TransactionID,
		"amount":         confirmedAmount,
	})
	return txn, nil
}

// rejectAttempt records the failed confirmation and runs the cascade step
// immediately instead of waiting for the next scheduler tick. The Failed
// transaction is returned together with the rejection reason, if any.
func (s *PaymentService) rejectAttempt(auction model.Auction, attempt model.PaymentAttempt, confirmedAmount float64, reason error) (model.Transaction, error) {
	txn := s.newTransaction(attempt.AttemptID, model.TransactionFailed, confirmedAmount)
	if err := s.ledger.FailAttempt(attempt.AttemptID, confirmedAmount, txn); err != nil {
		return model.Transaction{}, fmt.Errorf("service: fail attempt %s: %w", attempt.AttemptID, err)
	}

	utils.Warn("payment attempt rejected", map[string]any{
		"auction_id":       auction.AuctionID,
		"attempt_id":       attempt.AttemptID,
		"expected_amount":  attempt.Amount,
		"confirmed_amount": confirmedAmount,
		"forced":           reason == nil,
	})

	if err := s.ProcessFailedAttempt(attempt.AttemptID); err != nil {
		utils.Error("cascade after rejected attempt failed", map[string]any{
			"attempt_id": attempt.AttemptID,
			"error":      err.Error(),
		})
	}

	if reason != nil {
		return txn, fmt.Errorf("service: attempt %s: %w", attempt.AttemptID, reason)
	}
	return txn, nil
}

// ProcessFailedAttempt runs one cascade step for a failed or timed-out
// payment attempt. It is the single entry point shared by the periodic
// scheduler (timeout path) and ConfirmPayment (explicit-failure path) and is
// idempotent: a settled cascade (successful attempt, terminal auction, or an
// already-opened successor window) is a no-op.
func (s *PaymentService) ProcessFailedAttempt(attemptID string) error {
	attempt, err := s.ledger.GetAttempt(attemptID)
	if err != nil {
		return fmt.Errorf("service: process failed attempt %s: %w", attemptID, err)
	}
	if attempt.Status == model.AttemptSuccess {
		return nil
	}

	auction, err := s.ledger.GetAuction(attempt.AuctionID)
	if err != nil {
		return fmt.Errorf("service: process failed attempt %s: %w", attemptID, err)
	}
	if auction.Status != model.AuctionPendingPayment {
		return nil
	}

	// Timeout path: the attempt is still Pending, settle it as Failed with
	// its transaction. The explicit-failure path has already done this.
	if attempt.Status == model.AttemptPending {
		txn := s.newTransaction(attemptID, model.TransactionFailed, attempt.ConfirmedAmount)
		if err := s.ledger.FailAttempt(attemptID, attempt.ConfirmedAmount, txn); err != nil {
			if !errors.Is(err, settlementerrors.ErrAttemptNotPending) {
				return fmt.Errorf("service: process failed attempt %s: %w", attemptID, err)
			}
			// Another actor settled it first; fall through and let the
			// guards below decide whether a cascade step is still owed.
		} else {
			utils.Info("payment window expired", map[string]any{
				"auction_id":     auction.AuctionID,
				"attempt_id":     attemptID,
				"attempt_number": attempt.AttemptNumber,
			})
		}
	}

	// A successor window already open means this attempt's cascade step ran.
	if _, err := s.ledger.GetPendingAttempt(auction.AuctionID); err == nil {
		return nil
	} else if !errors.Is(err, settlementerrors.ErrNoPendingAttempt) {
		return fmt.Errorf("service: process failed attempt %s: %w", attemptID, err)
	}

	return s.cascade(auction)
}

// cascade opens the next payment window or terminates the auction when the
// retry budget is spent or no untried bidder remains.
func (s *PaymentService) cascade(auction model.Auction) error {
	attempts, err := s.ledger.ListAttemptsByAuction(auction.AuctionID)
	if err != nil {
		return fmt.Errorf("service: cascade for auction %s: %w", auction.AuctionID, err)
	}

	if len(attempts) >= s.cfg.MaxRetryAttempts {
		return s.terminate(auction, "retry attempts exhausted", len(attempts))
	}

	next, err := s.nextEligibleBid(auction.AuctionID, attempts)
	if err != nil {
		if errors.Is(err, settlementerrors.ErrNoEligibleBidder) {
			return s.terminate(auction, "no eligible bidder remaining", len(attempts))
		}
		return fmt.Errorf("service: cascade for auction %s: %w", auction.AuctionID, err)
	}

	now := s.now().UTC()
	attempt := model.PaymentAttempt{
		AttemptID:     utils.GenerateID(),
		AuctionID:     auction.AuctionID,
		BidderID:      next.BidderID,
		Status:        model.AttemptPending,
		AttemptNumber: maxAttemptNumber(attempts) + 1,
		AttemptTime:   now,
		ExpiryTime:    now.Add(s.cfg.PaymentWindow()),
		Amount:        next.Amount,
	}

	if err := s.ledger.CreateAttempt(attempt); err != nil {
		if errors.Is(err, settlementerrors.ErrPendingAttemptExists) {
			// Lost the race against the other cascade entry point.
			return nil
		}
		return fmt.Errorf("service: cascade for auction %s: %w", auction.AuctionID, err)
	}

	s.notify(auction, attempt)
	utils.Info("payment attempt created", map[string]any{
		"auction_id":     auction.AuctionID,
		"attempt_id":     attempt.AttemptID,
		"attempt_number": attempt.AttemptNumber,
		"bidder_id":      attempt.BidderID,
		"amount":         attempt.Amount,
	})
	return nil
}

// nextEligibleBid ranks the auction's bids by amount descending and returns
// the best bid whose bidder has no attempt recorded yet.
func (s *PaymentService) nextEligibleBid(auctionID string, attempts []model.PaymentAttempt) (model.Bid, error) {
	bids, err := s.ledger.GetBidsByAuction(auctionID)
	if err != nil {
		return model.Bid{}, err
	}

	tried := make(map[string]bool, len(attempts))
	for _, attempt := range attempts {
		tried[attempt.BidderID] = true
	}

	for _, bid := range bids {
		if !tried[bid.BidderID] {
			return bid, nil
		}
	}
	return model.Bid{}, settlementerrors.ErrNoEligibleBidder
}

func (s *PaymentService) terminate(auction model.Auction, why string, attemptsMade int) error {
	err := s.ledger.TransitionAuction(auction.AuctionID, model.AuctionPendingPayment, model.AuctionFailed)
	if err != nil {
		if errors.Is(err, settlementerrors.ErrStateConflict) {
			return nil
		}
		return fmt.Errorf("service: terminate auction %s: %w", auction.AuctionID, err)
	}

	utils.Warn("auction failed: "+why, map[string]any{
		"auction_id":    auction.AuctionID,
		"attempts_made": attemptsMade,
	})
	return nil
}

// RunRetryCascadeTick processes every Pending attempt whose payment window
// has passed. Failures are isolated per attempt: an error processing one is
// logged and the rest of the batch still runs. Returns how many attempts
// were processed cleanly.
func (s *PaymentService) RunRetryCascadeTick() (int, error) {
	expired, err := s.ledger.ListExpiredPendingAttempts(s.now())
	if err != nil {
		return 0, fmt.Errorf("service: list expired attempts: %w", err)
	}

	processed := 0
	for _, attempt := range expired {
		if err := s.ProcessFailedAttempt(attempt.AttemptID); err != nil {
			utils.Error("cascade step failed", map[string]any{
				"attempt_id": attempt.AttemptID,
				"auction_id": attempt.AuctionID,
				"error":      err.Error(),
			})
			continue
		}
		processed++
	}
	return processed, nil
}

// ListAttempts returns the attempt history for an auction.
func (s *PaymentService) ListAttempts(auctionID string) ([]model.PaymentAttempt, error) {
	if _, err := s.ledger.GetAuction(auctionID); err != nil {
		return nil, fmt.Errorf("service: list attempts for auction %s: %w", auctionID, err)
	}
	attempts, err := s.ledger.ListAttemptsByAuction(auctionID)
	if err != nil {
		return nil, fmt.Errorf("service: list attempts for auction %s: %w", auctionID, err)
	}
	return attempts, nil
}

func (s *PaymentService) notify(auction model.Auction, attempt model.PaymentAttempt) {
	if err := s.notifier.Notify(attempt.BidderID, auction, attempt); err != nil {
		utils.Warn("notification delivery failed", map[string]any{
			"bidder_id":  attempt.BidderID,
			"auction_id": auction.AuctionID,
			"attempt_id": attempt.AttemptID,
			"error":      err.Error(),
		})
	}
}

func (s *PaymentService) newTransaction(attemptID string, status model.TransactionStatus, amount float64) model.Transaction {
	return model.Transaction{
		TransactionID:    utils.GenerateID(),
		PaymentAttemptID: attemptID,
		Status:           status,
		Amount:           amount,
		CreatedAt:        s.now().UTC(),
	}
}

func maxAttemptNumber(attempts []model.PaymentAttempt) int {
	max := 0
	for _, attempt := range attempts {
		if attempt.AttemptNumber > max {
			max = attempt.AttemptNumber
		}
	}
	return max
}

func isCommitConflict(err error) bool {
	return errors.Is(err, settlementerrors.ErrAttemptNotPending) || errors.Is(err, settlementerrors.ErrStateConflict)
}
