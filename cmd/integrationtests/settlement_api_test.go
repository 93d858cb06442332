package integrationtests

import (
	"net/http"
	"testing"
	"time"

	"auction-settlement/services/bidding/helpers"

	payhelpers "auction-settlement/services/payment/helpers"

	model "auction-settlement/internal/models"

	"github.com/stretchr/testify/require"
)

// PlaceBidHandler Tests
func TestPlaceBidHandler(t *testing.T) {
	future := time.Now().UTC().Add(time.Hour)

	tests := []struct {
		name       string
		request    any
		wantStatus int
	}{
		{
			name:       "Valid_Bid",
			request:    helpers.PlaceBidRequest{AuctionID: "auction1", BidderID: "user1", Amount: 100},
			wantStatus: http.StatusCreated,
		},
		{
			name:       "Invalid_JSON",
			request:    "{auction_id: 'missing quotes', amount: 100}", // invalid JSON
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "Auction_Not_Found",
			request:    helpers.PlaceBidRequest{AuctionID: "nonexistent", BidderID: "user1", Amount: 100},
			wantStatus: http.StatusNotFound,
		},
		{
			name:       "Bid_At_Starting_Price",
			request:    helpers.PlaceBidRequest{AuctionID: "auction1", BidderID: "user1", Amount: 50},
			wantStatus: http.StatusConflict,
		},
		{
			name:       "Seller_Cannot_Bid",
			request:    helpers.PlaceBidRequest{AuctionID: "auction1", BidderID: "seller1", Amount: 100},
			wantStatus: http.StatusForbidden,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := SetupTestEnv(t, activeSeed("auction1", "product1", "seller1", 50, future))
			resp, w := ExecuteRequestAndParse(t, env.router, http.MethodPost, "/bids", tt.request)
			require.Equal(t, tt.wantStatus, w.Code)

			if tt.wantStatus == http.StatusCreated {
				require.Equal(t, "auction1", resp["auction_id"])
				require.Equal(t, "user1", resp["bidder_id"])
				require.Equal(t, 100.0, resp["amount"])
				require.NotEmpty(t, resp["bid_id"])

				_, err := time.Parse(time.RFC3339, resp["created_at"].(string))
				require.NoError(t, err)
			}
		})
	}
}

// Tests that bids on a closed auction are rejected
func TestPlaceBidHandler_ClosedAuction(t *testing.T) {
	past := time.Now().UTC().Add(-time.Minute)
	env := SetupTestEnv(t, activeSeed("auction1", "product1", "seller1", 50, past))
	env.seedBid(t, "auction1", "user1", 100)

	_, err := env.monitor.RunTick()
	require.NoError(t, err)

	_, w := ExecuteRequestAndParse(t, env.router, http.MethodPost, "/bids",
		helpers.PlaceBidRequest{AuctionID: "auction1", BidderID: "user2", Amount: 150})
	require.Equal(t, http.StatusConflict, w.Code)
}

// Tests the anti-sniping extension through the HTTP surface: a bid close to
// the deadline pushes the expiry out and increments the extension count.
func TestPlaceBidHandler_ExtendsNearExpiry(t *testing.T) {
	expiry := time.Now().UTC().Add(3 * time.Minute)
	env := SetupTestEnv(t, activeSeed("auction1", "product1", "seller1", 50, expiry))

	_, w := ExecuteRequestAndParse(t, env.router, http.MethodPost, "/bids",
		helpers.PlaceBidRequest{AuctionID: "auction1", BidderID: "user1", Amount: 100})
	require.Equal(t, http.StatusCreated, w.Code)

	resp, w := ExecuteRequestAndParse(t, env.router, http.MethodGet, "/auctions/auction1", nil)
	require.Equal(t, http.StatusOK, w.Code)

	data := resp["data"].(map[string]any)
	require.Equal(t, 1.0, data["extension_count"])

	newExpiry, err := time.Parse(time.RFC3339, data["expiry_time"].(string))
	require.NoError(t, err)
	require.Equal(t, expiry.Add(10*time.Minute).Truncate(time.Second), newExpiry)
}

// GetBidsByAuctionHandler and GetWinningBidHandler Tests
func TestBidQueryHandlers(t *testing.T) {
	future := time.Now().UTC().Add(time.Hour)
	env := SetupTestEnv(t, activeSeed("auction1", "product1", "seller1", 50, future))

	bids := []helpers.PlaceBidRequest{
		{AuctionID: "auction1", BidderID: "user1", Amount: 100},
		{AuctionID: "auction1", BidderID: "user3", Amount: 120},
		{AuctionID: "auction1", BidderID: "user2", Amount: 150},
	}
	for _, bid := range bids {
		_, w := ExecuteRequestAndParse(t, env.router, http.MethodPost, "/bids", bid)
		require.Equal(t, http.StatusCreated, w.Code)
	}

	t.Run("Bids_Highest_First", func(t *testing.T) {
		resp, w := ExecuteRequestAndParse(t, env.router, http.MethodGet, "/auctions/auction1/bids", nil)
		require.Equal(t, http.StatusOK, w.Code)

		list := resp["data"].([]any)
		require.Len(t, list, 3)
		amounts := make([]float64, 0, len(list))
		for _, b := range list {
			amounts = append(amounts, b.(map[string]any)["amount"].(float64))
		}
		require.Equal(t, []float64{150, 120, 100}, amounts)
	})

	t.Run("Winning_Bid", func(t *testing.T) {
		resp, w := ExecuteRequestAndParse(t, env.router, http.MethodGet, "/auctions/auction1/winning", nil)
		require.Equal(t, http.StatusOK, w.Code)

		data := resp["data"].(map[string]any)
		require.Equal(t, "user2", data["bidder_id"])
		require.Equal(t, 150.0, data["amount"])
	})

	t.Run("Auction_Not_Found", func(t *testing.T) {
		_, w := ExecuteRequestAndParse(t, env.router, http.MethodGet, "/auctions/nonexistent/bids", nil)
		require.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("No_Winning_Bid", func(t *testing.T) {
		empty := SetupTestEnv(t, activeSeed("auction2", "product2", "seller1", 50, future))
		_, w := ExecuteRequestAndParse(t, empty.router, http.MethodGet, "/auctions/auction2/winning", nil)
		require.Equal(t, http.StatusNotFound, w.Code)
	})
}

// Tests the happy settlement path end to end: the auction expires with a bid,
// the monitor opens the payment window, the winner confirms, the auction
// completes.
func TestSettlementFlow_WinnerPays(t *testing.T) {
	past := time.Now().UTC().Add(-time.Minute)
	env := SetupTestEnv(t, activeSeed("auction1", "product1", "seller1", 50, past))
	env.seedBid(t, "auction1", "user1", 100)
	env.seedBid(t, "auction1", "user2", 150)

	finalized, err := env.monitor.RunTick()
	require.NoError(t, err)
	require.Equal(t, 1, finalized)

	resp, w := ExecuteRequestAndParse(t, env.router, http.MethodGet, "/auctions/auction1", nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, "PENDING_PAYMENT", resp["data"].(map[string]any)["status"])

	resp, w = ExecuteRequestAndParse(t, env.router, http.MethodGet, "/auctions/auction1/attempts", nil)
	require.Equal(t, http.StatusOK, w.Code)
	attempts := resp["data"].([]any)
	require.Len(t, attempts, 1)
	attempt := attempts[0].(map[string]any)
	require.Equal(t, "user2", attempt["bidder_id"])
	require.Equal(t, 1.0, attempt["attempt_number"])
	require.Equal(t, 150.0, attempt["amount"])
	require.Equal(t, "PENDING", attempt["status"])

	resp, w = ExecuteRequestAndParse(t, env.router, http.MethodPost, "/payments/confirm",
		payhelpers.ConfirmPaymentRequest{ProductID: "product1", UserID: "user2", Amount: 150})
	require.Equal(t, http.StatusOK, w.Code)
	txn := resp["data"].(map[string]any)
	require.Equal(t, "SUCCESS", txn["status"])
	require.Equal(t, 150.0, txn["amount"])

	resp, w = ExecuteRequestAndParse(t, env.router, http.MethodGet, "/auctions/auction1", nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, "COMPLETED", resp["data"].(map[string]any)["status"])
}

// Tests that an auction expiring without bids fails outright
func TestSettlementFlow_NoBids(t *testing.T) {
	past := time.Now().UTC().Add(-time.Minute)
	env := SetupTestEnv(t, activeSeed("auction1", "product1", "seller1", 50, past))

	finalized, err := env.monitor.RunTick()
	require.NoError(t, err)
	require.Equal(t, 1, finalized)

	resp, w := ExecuteRequestAndParse(t, env.router, http.MethodGet, "/auctions/auction1", nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, "FAILED", resp["data"].(map[string]any)["status"])
}

// ConfirmPaymentHandler rejection Tests
func TestConfirmPaymentHandler_Rejections(t *testing.T) {
	setup := func(t *testing.T) *testEnv {
		past := time.Now().UTC().Add(-time.Minute)
		env := SetupTestEnv(t, activeSeed("auction1", "product1", "seller1", 50, past))
		env.seedBid(t, "auction1", "user1", 100)
		env.seedBid(t, "auction1", "user2", 150)
		_, err := env.monitor.RunTick()
		require.NoError(t, err)
		return env
	}

	t.Run("Wrong_User", func(t *testing.T) {
		env := setup(t)
		_, w := ExecuteRequestAndParse(t, env.router, http.MethodPost, "/payments/confirm",
			payhelpers.ConfirmPaymentRequest{ProductID: "product1", UserID: "user1", Amount: 150})
		require.Equal(t, http.StatusForbidden, w.Code)
	})

	t.Run("Unknown_Product", func(t *testing.T) {
		env := setup(t)
		_, w := ExecuteRequestAndParse(t, env.router, http.MethodPost, "/payments/confirm",
			payhelpers.ConfirmPaymentRequest{ProductID: "nonexistent", UserID: "user2", Amount: 150})
		require.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("No_Open_Attempt", func(t *testing.T) {
		future := time.Now().UTC().Add(time.Hour)
		env := SetupTestEnv(t, activeSeed("auction1", "product1", "seller1", 50, future))
		_, w := ExecuteRequestAndParse(t, env.router, http.MethodPost, "/payments/confirm",
			payhelpers.ConfirmPaymentRequest{ProductID: "product1", UserID: "user1", Amount: 150})
		require.Equal(t, http.StatusNotFound, w.Code)
	})

	// Amount mismatch fails the attempt, records the Failed transaction in
	// the response body, and reassigns the win to the runner-up.
	t.Run("Amount_Mismatch_Cascades", func(t *testing.T) {
		env := setup(t)
		resp, w := ExecuteRequestAndParse(t, env.router, http.MethodPost, "/payments/confirm",
			payhelpers.ConfirmPaymentRequest{ProductID: "product1", UserID: "user2", Amount: 125})
		require.Equal(t, http.StatusUnprocessableEntity, w.Code)

		txn := resp["data"].(map[string]any)
		require.Equal(t, "FAILED", txn["status"])
		require.Equal(t, 125.0, txn["amount"])

		resp, w = ExecuteRequestAndParse(t, env.router, http.MethodGet, "/auctions/auction1/attempts", nil)
		require.Equal(t, http.StatusOK, w.Code)
		attempts := resp["data"].([]any)
		require.Len(t, attempts, 2)

		second := attempts[1].(map[string]any)
		require.Equal(t, "user1", second["bidder_id"])
		require.Equal(t, 2.0, second["attempt_number"])
		require.Equal(t, 100.0, second["amount"])
		require.Equal(t, "PENDING", second["status"])
	})

	t.Run("Force_Fail", func(t *testing.T) {
		env := setup(t)
		resp, w := ExecuteRequestAndParse(t, env.router, http.MethodPost, "/payments/confirm",
			payhelpers.ConfirmPaymentRequest{ProductID: "product1", UserID: "user2", Amount: 150, ForceFail: true})
		require.Equal(t, http.StatusOK, w.Code)
		require.Equal(t, "FAILED", resp["data"].(map[string]any)["status"])

		// The runner-up now holds the open window and can still pay.
		resp, w = ExecuteRequestAndParse(t, env.router, http.MethodPost, "/payments/confirm",
			payhelpers.ConfirmPaymentRequest{ProductID: "product1", UserID: "user1", Amount: 100})
		require.Equal(t, http.StatusOK, w.Code)
		require.Equal(t, "SUCCESS", resp["data"].(map[string]any)["status"])

		resp, w = ExecuteRequestAndParse(t, env.router, http.MethodGet, "/auctions/auction1", nil)
		require.Equal(t, http.StatusOK, w.Code)
		require.Equal(t, "COMPLETED", resp["data"].(map[string]any)["status"])
	})
}

// Tests the timeout path through the cascade job: the winner never confirms,
// the sweep reassigns the win, and the runner-up pays.
func TestSettlementFlow_WinnerTimesOut(t *testing.T) {
	past := time.Now().UTC().Add(-time.Hour)
	env := SetupTestEnv(t, activeSeed("auction1", "product1", "seller1", 50, past))
	env.seedBid(t, "auction1", "user1", 100)
	env.seedBid(t, "auction1", "user2", 150)

	require.NoError(t, env.ledger.TransitionAuction("auction1", model.AuctionActive, model.AuctionPendingPayment))
	require.NoError(t, env.ledger.CreateAttempt(model.PaymentAttempt{
		AttemptID:     "attempt1",
		AuctionID:     "auction1",
		BidderID:      "user2",
		Status:        model.AttemptPending,
		AttemptNumber: 1,
		AttemptTime:   past,
		ExpiryTime:    past.Add(30 * time.Minute),
		Amount:        150,
	}))

	processed, err := env.cascade.RunTick()
	require.NoError(t, err)
	require.Equal(t, 1, processed)

	resp, w := ExecuteRequestAndParse(t, env.router, http.MethodGet, "/auctions/auction1/attempts", nil)
	require.Equal(t, http.StatusOK, w.Code)
	attempts := resp["data"].([]any)
	require.Len(t, attempts, 2)
	second := attempts[1].(map[string]any)
	require.Equal(t, "user1", second["bidder_id"])
	require.Equal(t, "PENDING", second["status"])

	resp, w = ExecuteRequestAndParse(t, env.router, http.MethodPost, "/payments/confirm",
		payhelpers.ConfirmPaymentRequest{ProductID: "product1", UserID: "user1", Amount: 100})
	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, "SUCCESS", resp["data"].(map[string]any)["status"])
}

// Tests that every bidder refusing to pay fails the auction once the bidder
// pool is exhausted.
func TestSettlementFlow_AllBiddersRefuse(t *testing.T) {
	past := time.Now().UTC().Add(-time.Minute)
	env := SetupTestEnv(t, activeSeed("auction1", "product1", "seller1", 50, past))
	env.seedBid(t, "auction1", "user1", 100)
	env.seedBid(t, "auction1", "user2", 150)

	_, err := env.monitor.RunTick()
	require.NoError(t, err)

	for _, refusal := range []payhelpers.ConfirmPaymentRequest{
		{ProductID: "product1", UserID: "user2", Amount: 150, ForceFail: true},
		{ProductID: "product1", UserID: "user1", Amount: 100, ForceFail: true},
	} {
		_, w := ExecuteRequestAndParse(t, env.router, http.MethodPost, "/payments/confirm", refusal)
		require.Equal(t, http.StatusOK, w.Code)
	}

	resp, w := ExecuteRequestAndParse(t, env.router, http.MethodGet, "/auctions/auction1", nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, "FAILED", resp["data"].(map[string]any)["status"])

	resp, w = ExecuteRequestAndParse(t, env.router, http.MethodGet, "/auctions/auction1/attempts", nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.Len(t, resp["data"].([]any), 2)
}
