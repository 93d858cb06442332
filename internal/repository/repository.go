package repository

import (
	"fmt"
	"sort"
	"sync"
	"time"

	model "auction-settlement/internal/models"
	"auction-settlement/internal/settlementerrors"
)

// LedgerStore is the durable-storage contract for the settlement engine.
// Every settlement unit of work (one bid commit, one confirmation, one
// monitor finalization, one cascade step) maps to a single call that either
// fully commits or fails with a conflict error, so that concurrent actors
// racing on the same auction cannot both win.
type LedgerStore interface {
	// Products and auctions
	AddProduct(product model.Product) error
	GetProduct(productID string) (model.Product, error)
	CreateAuction(auction model.Auction) error
	GetAuction(auctionID string) (model.Auction, error)
	GetAuctionByProduct(productID string) (model.Auction, error)
	ListExpiredActiveAuctions(now time.Time) ([]model.Auction, error)
	ListUnattendedPendingPaymentAuctions() ([]model.Auction, error)

	// CommitBid atomically persists the mutated auction (expiry, extension
	// count, highest-bid pointer), the bid, and the optional extension audit
	// row. The auction's version must match the stored one and its status
	// must still be Active, otherwise nothing is written.
	CommitBid(auction model.Auction, bid model.Bid, extension *model.ExtensionHistory) error

	// TransitionAuction compare-and-swaps the auction status.
	TransitionAuction(auctionID string, from, to model.AuctionStatus) error

	// Bids
	GetBid(bidID string) (model.Bid, error)
	GetBidsByAuction(auctionID string) ([]model.Bid, error)
	GetWinningBid(auctionID string) (model.Bid, error)

	// Payment attempts. CreateAttempt refuses a second Pending attempt per
	// auction; CompletePayment and FailAttempt settle a Pending attempt
	// exactly once, appending the Transaction in the same critical section.
	CreateAttempt(attempt model.PaymentAttempt) error
	GetAttempt(attemptID string) (model.PaymentAttempt, error)
	GetPendingAttempt(auctionID string) (model.PaymentAttempt, error)
	ListAttemptsByAuction(auctionID string) ([]model.PaymentAttempt, error)
	ListExpiredPendingAttempts(now time.Time) ([]model.PaymentAttempt, error)
	CompletePayment(attemptID string, confirmedAmount float64, txn model.Transaction) error
	FailAttempt(attemptID string, confirmedAmount float64, txn model.Transaction) error

	// Audit trails
	ListExtensions(auctionID string) ([]model.ExtensionHistory, error)
	ListTransactionsByAuction(auctionID string) ([]model.Transaction, error)
}

// MemoryLedger is a concurrency-safe in-memory implementation of LedgerStore.
// A single RWMutex makes each call atomic; auction versions still increment
// on every committed write so callers exercise the same optimistic-conflict
// handling a database-backed ledger would demand.
type MemoryLedger struct {
	mu              sync.RWMutex
	products        map[string]model.Product
	auctions        map[string]model.Auction
	auctionByProd   map[string]string         // productID -> auctionID
	bids            map[string]model.Bid      // bidID -> bid
	auctionBids     map[string][]string       // auctionID -> bidIDs in insertion order
	attempts        map[string]model.PaymentAttempt
	auctionAttempts map[string][]string       // auctionID -> attemptIDs in creation order
	transactions    map[string][]model.Transaction // attemptID -> transactions
	extensions      map[string][]model.ExtensionHistory
}

// NewMemoryLedger creates an empty in-memory ledger.
func NewMemoryLedger() *MemoryLedger {
	return &MemoryLedger{
		products:        make(map[string]model.Product),
		auctions:        make(map[string]model.Auction),
		auctionByProd:   make(map[string]string),
		bids:            make(map[string]model.Bid),
		auctionBids:     make(map[string][]string),
		attempts:        make(map[string]model.PaymentAttempt),
		auctionAttempts: make(map[string][]string),
		transactions:    make(map[string][]model.Transaction),
		extensions:      make(map[string][]model.ExtensionHistory),
	}
}

// AddProduct registers a product so auctions can reference it.
func (l *MemoryLedger) AddProduct(product model.Product) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.products[product.ProductID] = product
	return nil
}

// GetProduct returns a product by ID.
func (l *MemoryLedger) GetProduct(productID string) (model.Product, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	product, ok := l.products[productID]
	if !ok {
		return model.Product{}, fmt.Errorf("get product %s: %w", productID, settlementerrors.ErrProductNotFound)
	}
	return product, nil
}

// CreateAuction stores a new auction aggregate.
func (l *MemoryLedger) CreateAuction(auction model.Auction) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if _, ok := l.products[auction.ProductID]; !ok {
		return fmt.Errorf("create auction %s: %w", auction.AuctionID, settlementerrors.ErrProductNotFound)
	}

	l.auctions[auction.AuctionID] = auction
	l.auctionByProd[auction.ProductID] = auction.AuctionID
	return nil
}

// GetAuction returns an auction by ID.
func (l *MemoryLedger) GetAuction(auctionID string) (model.Auction, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	return l.getAuctionLocked(auctionID)
}

func (l *MemoryLedger) getAuctionLocked(auctionID string) (model.Auction, error) {
	auction, ok := l.auctions[auctionID]
	if !ok {
		return model.Auction{}, fmt.Errorf("get auction %s: %w", auctionID, settlementerrors.ErrAuctionNotFound)
	}
	return auction, nil
}

// GetAuctionByProduct returns the auction listing a given product.
func (l *MemoryLedger) GetAuctionByProduct(productID string) (model.Auction, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	auctionID, ok := l.auctionByProd[productID]
	if !ok {
		return model.Auction{}, fmt.Errorf("get auction for product %s: %w", productID, settlementerrors.ErrAuctionNotFound)
	}
	return l.getAuctionLocked(auctionID)
}

// ListExpiredActiveAuctions returns Active auctions whose expiry has passed.
func (l *MemoryLedger) ListExpiredActiveAuctions(now time.Time) ([]model.Auction, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	var expired []model.Auction
	for _, auction := range l.auctions {
		if auction.Status == model.AuctionActive && auction.ExpiryTime.Before(now) {
			expired = append(expired, auction)
		}
	}
	sortAuctionsByExpiry(expired)
	return expired, nil
}

// ListUnattendedPendingPaymentAuctions returns PendingPayment auctions with
// no payment attempt recorded yet. These exist only if a previous monitor
// tick crashed between the status transition and the first-attempt creation.
func (l *MemoryLedger) ListUnattendedPendingPaymentAuctions() ([]model.Auction, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	var orphaned []model.Auction
	for _, auction := range l.auctions {
		if auction.Status == model.AuctionPendingPayment && len(l.auctionAttempts[auction.AuctionID]) == 0 {
			orphaned = append(orphaned, auction)
		}
	}
	sortAuctionsByExpiry(orphaned)
	return orphaned, nil
}

// CommitBid persists the bid unit of work: auction mutation, bid row and
// optional extension row, all or nothing.
func (l *MemoryLedger) CommitBid(auction model.Auction, bid model.Bid, extension *model.ExtensionHistory) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	stored, ok := l.auctions[auction.AuctionID]
	if !ok {
		return fmt.Errorf("commit bid %s: %w", bid.BidID, settlementerrors.ErrAuctionNotFound)
	}
	if stored.Version != auction.Version {
		return fmt.Errorf("commit bid %s: %w", bid.BidID, settlementerrors.ErrVersionConflict)
	}
	if stored.Status != model.AuctionActive {
		return fmt.Errorf("commit bid %s: %w", bid.BidID, settlementerrors.ErrStateConflict)
	}

	auction.HighestBidID = bid.BidID
	auction.Version++
	l.auctions[auction.AuctionID] = auction

	l.bids[bid.BidID] = bid
	l.auctionBids[bid.AuctionID] = append(l.auctionBids[bid.AuctionID], bid.BidID)

	if extension != nil {
		l.extensions[extension.AuctionID] = append(l.extensions[extension.AuctionID], *extension)
	}
	return nil
}

// TransitionAuction compare-and-swaps the auction status from -> to.
func (l *MemoryLedger) TransitionAuction(auctionID string, from, to model.AuctionStatus) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	auction, ok := l.auctions[auctionID]
	if !ok {
		return fmt.Errorf("transition auction %s: %w", auctionID, settlementerrors.ErrAuctionNotFound)
	}
	if auction.Status != from {
		return fmt.Errorf("transition auction %s from %s to %s (currently %s): %w",
			auctionID, from, to, auction.Status, settlementerrors.ErrStateConflict)
	}

	auction.Status = to
	auction.Version++
	l.auctions[auctionID] = auction
	return nil
}

// GetBid returns a bid by ID.
func (l *MemoryLedger) GetBid(bidID string) (model.Bid, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	bid, ok := l.bids[bidID]
	if !ok {
		return model.Bid{}, fmt.Errorf("get bid %s: %w", bidID, settlementerrors.ErrBidNotFound)
	}
	return bid, nil
}

// GetBidsByAuction returns all bids for an auction ordered by amount
// descending, earlier bid first on equal amounts.
func (l *MemoryLedger) GetBidsByAuction(auctionID string) ([]model.Bid, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	ids := l.auctionBids[auctionID]
	bids := make([]model.Bid, 0, len(ids))
	for _, id := range ids {
		bids = append(bids, l.bids[id])
	}

	sort.SliceStable(bids, func(i, j int) bool {
		if bids[i].Amount != bids[j].Amount {
			return bids[i].Amount > bids[j].Amount
		}
		return bids[i].CreatedAt.Before(bids[j].CreatedAt)
	})
	return bids, nil
}

// GetWinningBid returns the auction's current highest bid.
func (l *MemoryLedger) GetWinningBid(auctionID string) (model.Bid, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	auction, err := l.getAuctionLocked(auctionID)
	if err != nil {
		return model.Bid{}, err
	}
	if auction.HighestBidID == "" {
		return model.Bid{}, fmt.Errorf("get winning bid for auction %s: %w", auctionID, settlementerrors.ErrNoBids)
	}
	return l.bids[auction.HighestBidID], nil
}

// CreateAttempt records a new Pending payment attempt. At most one Pending
// attempt may exist per auction at any time.
func (l *MemoryLedger) CreateAttempt(attempt model.PaymentAttempt) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if _, ok := l.auctions[attempt.AuctionID]; !ok {
		return fmt.Errorf("create attempt %s: %w", attempt.AttemptID, settlementerrors.ErrAuctionNotFound)
	}
	for _, id := range l.auctionAttempts[attempt.AuctionID] {
		if l.attempts[id].Status == model.AttemptPending {
			return fmt.Errorf("create attempt %s for auction %s: %w",
				attempt.AttemptID, attempt.AuctionID, settlementerrors.ErrPendingAttemptExists)
		}
	}

	l.attempts[attempt.AttemptID] = attempt
	l.auctionAttempts[attempt.AuctionID] = append(l.auctionAttempts[attempt.AuctionID], attempt.AttemptID)
	return nil
}

// GetAttempt returns a payment attempt by ID.
func (l *MemoryLedger) GetAttempt(attemptID string) (model.PaymentAttempt, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	attempt, ok := l.attempts[attemptID]
	if !ok {
		return model.PaymentAttempt{}, fmt.Errorf("get attempt %s: %w", attemptID, settlementerrors.ErrAttemptNotFound)
	}
	return attempt, nil
}

// GetPendingAttempt returns the auction's single open payment attempt.
func (l *MemoryLedger) GetPendingAttempt(auctionID string) (model.PaymentAttempt, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	for _, id := range l.auctionAttempts[auctionID] {
		if attempt := l.attempts[id]; attempt.Status == model.AttemptPending {
			return attempt, nil
		}
	}
	return model.PaymentAttempt{}, fmt.Errorf("pending attempt for auction %s: %w", auctionID, settlementerrors.ErrNoPendingAttempt)
}

// ListAttemptsByAuction returns all attempts for an auction in creation order.
func (l *MemoryLedger) ListAttemptsByAuction(auctionID string) ([]model.PaymentAttempt, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	ids := l.auctionAttempts[auctionID]
	attempts := make([]model.PaymentAttempt, 0, len(ids))
	for _, id := range ids {
		attempts = append(attempts, l.attempts[id])
	}
	return attempts, nil
}

// ListExpiredPendingAttempts returns Pending attempts whose payment window
// has passed.
func (l *MemoryLedger) ListExpiredPendingAttempts(now time.Time) ([]model.PaymentAttempt, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	var expired []model.PaymentAttempt
	for _, attempt := range l.attempts {
		if attempt.Status == model.AttemptPending && attempt.ExpiryTime.Before(now) {
			expired = append(expired, attempt)
		}
	}
	sort.Slice(expired, func(i, j int) bool { return expired[i].ExpiryTime.Before(expired[j].ExpiryTime) })
	return expired, nil
}

// CompletePayment settles a Pending attempt as Success, completes the auction
// and appends the Success transaction in one critical section.
func (l *MemoryLedger) CompletePayment(attemptID string, confirmedAmount float64, txn model.Transaction) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	attempt, ok := l.attempts[attemptID]
	if !ok {
		return fmt.Errorf("complete payment %s: %w", attemptID, settlementerrors.ErrAttemptNotFound)
	}
	if attempt.Status != model.AttemptPending {
		return fmt.Errorf("complete payment %s: %w", attemptID, settlementerrors.ErrAttemptNotPending)
	}

	auction, ok := l.auctions[attempt.AuctionID]
	if !ok {
		return fmt.Errorf("complete payment %s: %w", attemptID, settlementerrors.ErrAuctionNotFound)
	}
	if auction.Status != model.AuctionPendingPayment {
		return fmt.Errorf("complete payment %s: auction %s is %s: %w",
			attemptID, auction.AuctionID, auction.Status, settlementerrors.ErrStateConflict)
	}

	attempt.Status = model.AttemptSuccess
	attempt.ConfirmedAmount = confirmedAmount
	l.attempts[attemptID] = attempt

	auction.Status = model.AuctionCompleted
	auction.Version++
	l.auctions[auction.AuctionID] = auction

	l.transactions[attemptID] = append(l.transactions[attemptID], txn)
	return nil
}

// FailAttempt settles a Pending attempt as Failed and appends the Failed
// transaction. Settling an already-terminal attempt is rejected so the two
// cascade entry points cannot double-process one attempt.
func (l *MemoryLedger) FailAttempt(attemptID string, confirmedAmount float64, txn model.Transaction) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	attempt, ok := l.attempts[attemptID]
	if !ok {
		return fmt.Errorf("fail attempt %s: %w", attemptID, settlementerrors.ErrAttemptNotFound)
	}
	if attempt.Status != model.AttemptPending {
		return fmt.Errorf("fail attempt %s: %w", attemptID, settlementerrors.ErrAttemptNotPending)
	}

	attempt.Status = model.AttemptFailed
	attempt.ConfirmedAmount = confirmedAmount
	l.attempts[attemptID] = attempt

	l.transactions[attemptID] = append(l.transactions[attemptID], txn)
	return nil
}

// ListExtensions returns the extension audit trail for an auction.
func (l *MemoryLedger) ListExtensions(auctionID string) ([]model.ExtensionHistory, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	return append([]model.ExtensionHistory(nil), l.extensions[auctionID]...), nil
}

// ListTransactionsByAuction returns all transactions recorded for an
// auction's attempts, in attempt order.
func (l *MemoryLedger) ListTransactionsByAuction(auctionID string) ([]model.Transaction, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	var txns []model.Transaction
	for _, attemptID := range l.auctionAttempts[auctionID] {
		txns = append(txns, l.transactions[attemptID]...)
	}
	return txns, nil
}

func sortAuctionsByExpiry(auctions []model.Auction) {
	sort.Slice(auctions, func(i, j int) bool {
		return auctions[i].ExpiryTime.Before(auctions[j].ExpiryTime)
	})
}
