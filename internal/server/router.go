package server

import (
	bidding "auction-settlement/internal/biddingService"
	payment "auction-settlement/internal/paymentService"
	bidhandler "auction-settlement/services/bidding/handler"
	payhandler "auction-settlement/services/payment/handler"

	"github.com/gin-gonic/gin"
)

// SetupRouter configures all Gin routes for the application
func SetupRouter(biddingService *bidding.BiddingService, paymentService *payment.PaymentService) *gin.Engine {
	router := gin.New() // New router without default middleware for full control over middleware and logging

	router.Use(gin.Recovery())          // recover from panics
	router.Use(RequestLoggerMiddleware) // custom request logging

	biddingHandler := bidhandler.NewBiddingHandler(biddingService)
	paymentHandler := payhandler.NewPaymentHandler(paymentService)

	bids := router.Group("/bids")
	{
		bids.POST("", biddingHandler.PlaceBidHandler)
	}

	auctions := router.Group("/auctions")
	{
		auctions.GET("/:auction_id", biddingHandler.GetAuctionHandler)
		auctions.GET("/:auction_id/bids", biddingHandler.GetBidsByAuctionHandler)
		auctions.GET("/:auction_id/winning", biddingHandler.GetWinningBidHandler)
		auctions.GET("/:auction_id/attempts", paymentHandler.ListAttemptsHandler)
	}

	payments := router.Group("/payments")
	{
		payments.POST("/confirm", paymentHandler.ConfirmPaymentHandler)
	}

	return router
}
