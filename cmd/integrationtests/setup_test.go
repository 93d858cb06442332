package integrationtests

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"testing"
	"time"

	"auction-settlement/internal/config"
	"auction-settlement/internal/jobs"
	"auction-settlement/internal/notifier"
	"auction-settlement/internal/repository"
	"auction-settlement/internal/server"

	bidding "auction-settlement/internal/biddingService"
	payment "auction-settlement/internal/paymentService"

	model "auction-settlement/internal/models"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

func settlementConfig() config.SettlementConfig {
	return config.SettlementConfig{
		ExtensionThresholdMinutes: 5,
		ExtensionDurationMinutes:  10,
		MonitoringIntervalSeconds: 30,
		PaymentWindowMinutes:      30,
		MaxRetryAttempts:          3,
		RetryCheckIntervalSeconds: 60,
	}
}

// testEnv bundles the wired application with direct access to the ledger and
// background jobs, so tests drive expiry processing deterministically with
// RunTick instead of waiting on tickers.
type testEnv struct {
	router  *gin.Engine
	ledger  *repository.MemoryLedger
	monitor *jobs.AuctionMonitor
	cascade *jobs.RetryCascadeJob
}

type auctionSeed struct {
	product model.Product
	auction model.Auction
}

// SetupTestEnv wires the full stack against an in-memory ledger seeded with
// the given products and auctions.
func SetupTestEnv(t *testing.T, seeds ...auctionSeed) *testEnv {
	t.Helper()
	gin.SetMode(gin.TestMode)

	cfg := settlementConfig()
	ledger := repository.NewMemoryLedger()
	for _, seed := range seeds {
		require.NoError(t, ledger.AddProduct(seed.product))
		require.NoError(t, ledger.CreateAuction(seed.auction))
	}

	biddingSvc := bidding.NewBiddingService(ledger, cfg)
	paymentSvc := payment.NewPaymentService(ledger, notifier.NewLogNotifier(), cfg)

	return &testEnv{
		router:  server.SetupRouter(biddingSvc, paymentSvc),
		ledger:  ledger,
		monitor: jobs.NewAuctionMonitor(ledger, paymentSvc, cfg),
		cascade: jobs.NewRetryCascadeJob(paymentSvc, cfg),
	}
}

// seedBid commits a bid directly on the ledger, bypassing admission. Used to
// set up auctions whose expiry is already in the past, where the HTTP path
// would trigger the anti-sniping extension.
func (e *testEnv) seedBid(t *testing.T, auctionID, bidderID string, amount float64) {
	t.Helper()
	auction, err := e.ledger.GetAuction(auctionID)
	require.NoError(t, err)
	require.NoError(t, e.ledger.CommitBid(auction, model.Bid{
		BidID:     auctionID + "-bid-" + bidderID,
		AuctionID: auctionID,
		BidderID:  bidderID,
		Amount:    amount,
		CreatedAt: time.Now().UTC(),
	}, nil))
}

func activeSeed(auctionID, productID, sellerID string, startingPrice float64, expiry time.Time) auctionSeed {
	return auctionSeed{
		product: model.Product{
			ProductID:     productID,
			Title:         "title-" + productID,
			Description:   "description-" + productID,
			SellerID:      sellerID,
			StartingPrice: startingPrice,
		},
		auction: model.Auction{
			AuctionID:  auctionID,
			ProductID:  productID,
			ExpiryTime: expiry,
			Status:     model.AuctionActive,
			CreatedAt:  time.Now().UTC(),
		},
	}
}

// ExecuteRequest executes an HTTP request and returns the response recorder.
func ExecuteRequest(t *testing.T, router *gin.Engine, method, url string, body []byte) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, url, bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

// ExecuteRequestAndParse executes an HTTP request on the given router and parses the response
func ExecuteRequestAndParse(t *testing.T, router *gin.Engine, method, url string, body any) (map[string]any, *httptest.ResponseRecorder) {
	var reqBody []byte
	var err error

	switch v := body.(type) {
	case []byte:
		reqBody = v
	default:
		reqBody, err = json.Marshal(v)
		if err != nil {
			t.Fatalf("failed to marshal body: %v", err)
		}
	}

	w := httptest.NewRecorder()
	req := httptest.NewRequest(method, url, bytes.NewReader(reqBody))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	var resp map[string]any
	if len(w.Body.Bytes()) > 0 {
		err := json.Unmarshal(w.Body.Bytes(), &resp)
		if err != nil {
			t.Fatalf("failed to unmarshal response: %v", err)
		}

		if w.Code == 201 {
			resp = resp["data"].(map[string]any)
		}
	}

	return resp, w
}
