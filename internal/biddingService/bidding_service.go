package bidding

import (
	"errors"
	"fmt"
	"time"

	"auction-settlement/internal/config"
	"auction-settlement/internal/repository"
	"auction-settlement/internal/settlementerrors"
	"auction-settlement/utils"

	model "auction-settlement/internal/models"
)

// BiddingService admits bids against active auctions and applies the
// anti-sniping extension rule before each commit.
type BiddingService struct {
	ledger repository.LedgerStore
	cfg    config.SettlementConfig
	now    func() time.Time
}

// NewBiddingService creates a new BiddingService instance
func NewBiddingService(ledger repository.LedgerStore, cfg config.SettlementConfig) *BiddingService {
	return &BiddingService{
		ledger: ledger,
		cfg:    cfg,
		now:    time.Now,
	}
}

// PlaceBid validates and records a bid on an auction. The extension decision,
// the bid row and the highest-bid pointer commit as one ledger operation. A
// commit conflict (another actor touched the auction first) is retried once
// with freshly read state; preconditions are re-checked on the retry.
func (s *BiddingService) PlaceBid(auctionID, bidderID string, amount float64) (model.Bid, error) {
	bid, err := s.tryPlaceBid(auctionID, bidderID, amount)
	if err != nil && isCommitConflict(err) {
		bid, err = s.tryPlaceBid(auctionID, bidderID, amount)
	}
	return bid, err
}

func (s *BiddingService) tryPlaceBid(auctionID, bidderID string, amount float64) (model.Bid, error) {
	auction, err := s.ledger.GetAuction(auctionID)
	if err != nil {
		return model.Bid{}, fmt.Errorf("service: place bid on auction %s: %w", auctionID, err)
	}
	if auction.Status != model.AuctionActive {
		return model.Bid{}, fmt.Errorf("service: auction %s is %s: %w",
			auctionID, auction.Status, settlementerrors.ErrAuctionNotActive)
	}

	product, err := s.ledger.GetProduct(auction.ProductID)
	if err != nil {
		return model.Bid{}, fmt.Errorf("service: load product for auction %s: %w", auctionID, err)
	}
	if bidderID == product.SellerID {
		return model.Bid{}, fmt.Errorf("service: bidder %s owns product %s: %w",
			bidderID, product.ProductID, settlementerrors.ErrOwnerCannotBid)
	}

	threshold := product.StartingPrice
	if auction.HasBid() {
		winning, err := s.ledger.GetBid(auction.HighestBidID)
		if err != nil {
			return model.Bid{}, fmt.Errorf("service: load highest bid for auction %s: %w", auctionID, err)
		}
		threshold = winning.Amount
	}
	if amount <= threshold {
		return model.Bid{}, fmt.Errorf("service: %w - must exceed %.2f", settlementerrors.ErrBidTooLow, threshold)
	}

	bidTime := s.now().UTC()
	extension := s.MaybeExtend(&auction, bidTime)

	bid := model.Bid{
		BidID:     utils.GenerateID(),
		AuctionID: auctionID,
		BidderID:  bidderID,
		Amount:    amount,
		CreatedAt: bidTime,
	}

	if err := s.ledger.CommitBid(auction, bid, extension); err != nil {
		return model.Bid{}, fmt.Errorf("service: commit bid for auction %s by bidder %s: %w", auctionID, bidderID, err)
	}

	if extension != nil {
		utils.Info("auction extended", map[string]any{
			"auction_id":      auctionID,
			"previous_expiry": extension.PreviousExpiry,
			"new_expiry":      extension.NewExpiry,
			"extension_count": auction.ExtensionCount,
		})
	}
	return bid, nil
}

// MaybeExtend applies the anti-sniping rule to the auction in place: when the
// bid lands with no more than the configured threshold remaining, the expiry
// moves out by the configured duration and an audit row is returned. There is
// no cap on how often an auction extends; sustained bidding keeps it open
// until a bid-free interval occurs.
func (s *BiddingService) MaybeExtend(auction *model.Auction, bidTime time.Time) *model.ExtensionHistory {
	remaining := auction.ExpiryTime.Sub(bidTime)
	if remaining > s.cfg.ExtensionThreshold() {
		return nil
	}

	previous := auction.ExpiryTime
	auction.ExpiryTime = previous.Add(s.cfg.ExtensionDuration())
	auction.ExtensionCount++

	return &model.ExtensionHistory{
		ExtensionID:    utils.GenerateID(),
		AuctionID:      auction.AuctionID,
		ExtendedAt:     bidTime,
		PreviousExpiry: previous,
		NewExpiry:      auction.ExpiryTime,
	}
}

// GetAuction returns the auction aggregate for read endpoints.
func (s *BiddingService) GetAuction(auctionID string) (model.Auction, error) {
	auction, err := s.ledger.GetAuction(auctionID)
	if err != nil {
		return model.Auction{}, fmt.Errorf("service: get auction %s: %w", auctionID, err)
	}
	return auction, nil
}

// GetBidsForAuction returns all bids for an auction, highest first.
func (s *BiddingService) GetBidsForAuction(auctionID string) ([]model.Bid, error) {
	if _, err := s.ledger.GetAuction(auctionID); err != nil {
		return nil, fmt.Errorf("service: get bids for auction %s: %w", auctionID, err)
	}
	bids, err := s.ledger.GetBidsByAuction(auctionID)
	if err != nil {
		return nil, fmt.Errorf("service: get bids for auction %s: %w", auctionID, err)
	}
	return bids, nil
}

// GetWinningBid returns the auction's current highest bid.
func (s *BiddingService) GetWinningBid(auctionID string) (model.Bid, error) {
	winning, err := s.ledger.GetWinningBid(auctionID)
	if err != nil {
		return model.Bid{}, fmt.Errorf("service: get winning bid for auction %s: %w", auctionID, err)
	}
	return winning, nil
}

func isCommitConflict(err error) bool {
	return errors.Is(err, settlementerrors.ErrVersionConflict) || errors.Is(err, settlementerrors.ErrStateConflict)
}
