package models

import "time"

// AuctionStatus tracks an auction through its settlement lifecycle.
// Transitions are forward-only: Active -> PendingPayment -> Completed/Failed,
// or Active -> Failed when no bids arrive. Completed and Failed are terminal.
type AuctionStatus string

const (
	AuctionActive         AuctionStatus = "ACTIVE"
	AuctionPendingPayment AuctionStatus = "PENDING_PAYMENT"
	AuctionCompleted      AuctionStatus = "COMPLETED"
	AuctionFailed         AuctionStatus = "FAILED"
)

// AttemptStatus tracks a payment attempt. Pending transitions exactly once
// to Success or Failed and never back.
type AttemptStatus string

const (
	AttemptPending AttemptStatus = "PENDING"
	AttemptSuccess AttemptStatus = "SUCCESS"
	AttemptFailed  AttemptStatus = "FAILED"
)

// TransactionStatus is the recorded outcome of one payment confirmation.
type TransactionStatus string

const (
	TransactionSuccess TransactionStatus = "SUCCESS"
	TransactionFailed  TransactionStatus = "FAILED"
)

// User represents a participant in the auction
type User struct {
	UserID   string `json:"user_id"`
	Username string `json:"username"`
}

// Product represents an item put up for auction
type Product struct {
	ProductID     string  `json:"product_id"`
	Title         string  `json:"title"`
	Description   string  `json:"description"`
	SellerID      string  `json:"seller_id"`
	StartingPrice float64 `json:"starting_price"`
}

// Auction represents one product's bidding lifecycle
type Auction struct {
	AuctionID      string        `json:"auction_id"`
	ProductID      string        `json:"product_id"`
	ExpiryTime     time.Time     `json:"expiry_time"`
	Status         AuctionStatus `json:"status"`
	HighestBidID   string        `json:"highest_bid_id,omitempty"` // empty until the first bid lands
	ExtensionCount int           `json:"extension_count"`
	Version        int           `json:"-"` // optimistic-concurrency counter, bumped on every committed write
	CreatedAt      time.Time     `json:"created_at"`
}

// Bid represents a user's bid on an auction. Immutable once created.
type Bid struct {
	BidID     string    `json:"bid_id"`
	AuctionID string    `json:"auction_id"`
	BidderID  string    `json:"bidder_id"`
	Amount    float64   `json:"amount"`
	CreatedAt time.Time `json:"created_at"`
}

// PaymentAttempt is one bidder's opportunity to pay for a won auction.
// AttemptNumber is 1 for the highest bidder and increments for each fallback.
type PaymentAttempt struct {
	AttemptID       string        `json:"attempt_id"`
	AuctionID       string        `json:"auction_id"`
	BidderID        string        `json:"bidder_id"`
	Status          AttemptStatus `json:"status"`
	AttemptNumber   int           `json:"attempt_number"`
	AttemptTime     time.Time     `json:"attempt_time"`
	ExpiryTime      time.Time     `json:"expiry_time"`
	Amount          float64       `json:"amount"`
	ConfirmedAmount float64       `json:"confirmed_amount"`
}

// Transaction is the immutable record of a payment confirmation outcome,
// written exactly once per confirmation (success or failure).
type Transaction struct {
	TransactionID    string            `json:"transaction_id"`
	PaymentAttemptID string            `json:"payment_attempt_id"`
	Status           TransactionStatus `json:"status"`
	Amount           float64           `json:"amount"`
	CreatedAt        time.Time         `json:"created_at"`
}

// ExtensionHistory is the audit record of one anti-sniping extension.
type ExtensionHistory struct {
	ExtensionID    string    `json:"extension_id"`
	AuctionID      string    `json:"auction_id"`
	ExtendedAt     time.Time `json:"extended_at"`
	PreviousExpiry time.Time `json:"previous_expiry"`
	NewExpiry      time.Time `json:"new_expiry"`
}

// HasBid reports whether at least one bid has been recorded for the auction.
func (a Auction) HasBid() bool {
	return a.HighestBidID != ""
}

// Terminal reports whether the auction has reached a final state.
func (a Auction) Terminal() bool {
	return a.Status == AuctionCompleted || a.Status == AuctionFailed
}

// Terminal reports whether the attempt has left the Pending state.
func (p PaymentAttempt) Terminal() bool {
	return p.Status != AttemptPending
}
