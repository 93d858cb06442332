package helpers

// Request/Response DTOs
type PlaceBidRequest struct {
	AuctionID string  `json:"auction_id" binding:"required"`
	BidderID  string  `json:"bidder_id" binding:"required"`
	Amount    float64 `json:"amount" binding:"required,gt=0"`
}

type BidResponse struct {
	BidID     string  `json:"bid_id"`
	AuctionID string  `json:"auction_id"`
	BidderID  string  `json:"bidder_id"`
	Amount    float64 `json:"amount"`
	CreatedAt string  `json:"created_at"`
}

type AuctionResponse struct {
	AuctionID      string `json:"auction_id"`
	ProductID      string `json:"product_id"`
	Status         string `json:"status"`
	ExpiryTime     string `json:"expiry_time"`
	HighestBidID   string `json:"highest_bid_id,omitempty"`
	ExtensionCount int    `json:"extension_count"`
}
