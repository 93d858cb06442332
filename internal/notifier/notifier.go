package notifier

import (
	model "auction-settlement/internal/models"
	"auction-settlement/utils"
)

// Notifier delivers an out-of-band payment-window notification to a bidder.
// Delivery is best effort: callers log failures and carry on, settlement
// progress never depends on a notification landing.
type Notifier interface {
	Notify(bidderID string, auction model.Auction, attempt model.PaymentAttempt) error
}

// LogNotifier writes notifications to the application log. It is the default
// when no broker is configured.
type LogNotifier struct{}

// NewLogNotifier creates a LogNotifier.
func NewLogNotifier() *LogNotifier {
	return &LogNotifier{}
}

// Notify logs the payment-window notification.
func (n *LogNotifier) Notify(bidderID string, auction model.Auction, attempt model.PaymentAttempt) error {
	utils.Info("payment window opened", map[string]any{
		"bidder_id":      bidderID,
		"auction_id":     auction.AuctionID,
		"product_id":     auction.ProductID,
		"attempt_id":     attempt.AttemptID,
		"attempt_number": attempt.AttemptNumber,
		"amount":         attempt.Amount,
		"pay_before":     attempt.ExpiryTime.UTC().Format("2006-01-02T15:04:05Z07:00"),
	})
	return nil
}
