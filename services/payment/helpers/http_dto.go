package helpers

// Request/Response DTOs
type ConfirmPaymentRequest struct {
	ProductID string  `json:"product_id" binding:"required"`
	UserID    string  `json:"user_id" binding:"required"`
	Amount    float64 `json:"amount" binding:"required,gt=0"`
	ForceFail bool    `json:"force_fail"`
}

type TransactionResponse struct {
	TransactionID    string  `json:"transaction_id"`
	PaymentAttemptID string  `json:"payment_attempt_id"`
	Status           string  `json:"status"`
	Amount           float64 `json:"amount"`
	CreatedAt        string  `json:"created_at"`
}

type AttemptResponse struct {
	AttemptID       string  `json:"attempt_id"`
	AuctionID       string  `json:"auction_id"`
	BidderID        string  `json:"bidder_id"`
	Status          string  `json:"status"`
	AttemptNumber   int     `json:"attempt_number"`
	ExpiryTime      string  `json:"expiry_time"`
	Amount          float64 `json:"amount"`
	ConfirmedAmount float64 `json:"confirmed_amount"`
}
