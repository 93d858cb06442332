package settlementerrors

import "errors"

// Bid admission errors
var (
	ErrAuctionNotFound  = errors.New("auction not found")
	ErrAuctionNotActive = errors.New("auction is not active")
	ErrOwnerCannotBid   = errors.New("product owner cannot bid on own auction")
	ErrBidTooLow        = errors.New("bid amount too low")
)

// Payment settlement errors
var (
	ErrNoBidsOnAuction      = errors.New("no bids recorded for auction")
	ErrNoPendingAttempt     = errors.New("no pending payment attempt for auction")
	ErrUnauthorizedPayment  = errors.New("payment confirmation from wrong bidder")
	ErrPaymentWindowExpired = errors.New("payment window has expired")
	ErrInvalidPaymentAmount = errors.New("confirmed amount does not match attempt amount")
	ErrNoEligibleBidder     = errors.New("no eligible bidder remaining")
)

// Ledger concurrency errors. Operations hitting one of these re-read state,
// re-check their preconditions and retry at most once.
var (
	ErrVersionConflict      = errors.New("auction modified concurrently")
	ErrStateConflict        = errors.New("aggregate no longer in expected state")
	ErrAttemptNotPending    = errors.New("payment attempt already settled")
	ErrPendingAttemptExists = errors.New("auction already has a pending payment attempt")
)

// Repository-level errors
var (
	ErrProductNotFound = errors.New("product not found")
	ErrBidNotFound     = errors.New("bid not found")
	ErrAttemptNotFound = errors.New("payment attempt not found")
	ErrNoBids          = errors.New("no bids found for auction")
)
