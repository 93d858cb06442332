package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	bidding "auction-settlement/internal/biddingService"
	"auction-settlement/internal/config"
	"auction-settlement/internal/jobs"
	"auction-settlement/internal/notifier"
	payment "auction-settlement/internal/paymentService"
	"auction-settlement/internal/repository"
	"auction-settlement/internal/server"
	"auction-settlement/utils"

	model "auction-settlement/internal/models"
)

func main() {
	cfg, err := config.Load(os.Getenv("AUCTION_CONFIG"))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	ledger := repository.NewMemoryLedger()
	prepopulateAuctions(ledger)

	bidderNotifier, closeNotifier := buildNotifier(cfg)
	defer closeNotifier()

	biddingSvc := bidding.NewBiddingService(ledger, cfg.Settlement)
	paymentSvc := payment.NewPaymentService(ledger, bidderNotifier, cfg.Settlement)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	monitor := jobs.NewAuctionMonitor(ledger, paymentSvc, cfg.Settlement)
	go monitor.Start(ctx)

	cascade := jobs.NewRetryCascadeJob(paymentSvc, cfg.Settlement)
	go cascade.Start(ctx)

	router := server.SetupRouter(biddingSvc, paymentSvc)
	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.Server.Port),
		Handler: router,
	}

	go func() {
		utils.Info("auction settlement server started", map[string]any{"port": cfg.Server.Port})
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			utils.Fatal("server failed", map[string]any{"error": err.Error()})
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	utils.Info("shutting down", nil)
	cancel()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		utils.Error("server shutdown error", map[string]any{"error": err.Error()})
	}
}

// buildNotifier selects the Kafka notifier when brokers are configured and
// falls back to log-only delivery otherwise.
func buildNotifier(cfg config.Config) (notifier.Notifier, func()) {
	if len(cfg.Kafka.Brokers) == 0 {
		return notifier.NewLogNotifier(), func() {}
	}

	kafkaNotifier, err := notifier.NewKafkaNotifier(cfg.Kafka)
	if err != nil {
		utils.Warn("kafka notifier unavailable, using log notifier", map[string]any{"error": err.Error()})
		return notifier.NewLogNotifier(), func() {}
	}

	utils.Info("kafka notifier enabled", map[string]any{"topic": cfg.Kafka.Topic})
	return kafkaNotifier, func() {
		if err := kafkaNotifier.Close(); err != nil {
			utils.Error("kafka notifier close error", map[string]any{"error": err.Error()})
		}
	}
}

// prepopulateAuctions seeds sample products and auctions into the in-memory
// ledger so the server is usable out of the box.
func prepopulateAuctions(ledger *repository.MemoryLedger) {
	now := time.Now().UTC()
	products := []model.Product{
		{ProductID: "product1", Title: "title1", Description: "description1", SellerID: "seller1", StartingPrice: 100},
		{ProductID: "product2", Title: "title2", Description: "description2", SellerID: "seller1", StartingPrice: 200},
		{ProductID: "product3", Title: "title3", Description: "description3", SellerID: "seller2", StartingPrice: 150},
	}

	for i, product := range products {
		if err := ledger.AddProduct(product); err != nil {
			utils.Fatal("seed product failed", map[string]any{"error": err.Error()})
		}
		auction := model.Auction{
			AuctionID:  fmt.Sprintf("auction%d", i+1),
			ProductID:  product.ProductID,
			ExpiryTime: now.Add(time.Duration(i+1) * time.Hour),
			Status:     model.AuctionActive,
			CreatedAt:  now,
		}
		if err := ledger.CreateAuction(auction); err != nil {
			utils.Fatal("seed auction failed", map[string]any{"error": err.Error()})
		}
	}
}
