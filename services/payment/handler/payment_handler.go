package handler

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"auction-settlement/internal/settlementerrors"
	bidhelpers "auction-settlement/services/bidding/helpers"
	"auction-settlement/services/payment/helpers"
	"auction-settlement/utils"

	model "auction-settlement/internal/models"

	"github.com/gin-gonic/gin"
)

type PaymentServiceInterface interface {
	ConfirmPayment(productID, callerUserID string, confirmedAmount float64, forceFail bool) (model.Transaction, error)
	ListAttempts(auctionID string) ([]model.PaymentAttempt, error)
}

type PaymentHandler struct {
	service PaymentServiceInterface
}

func NewPaymentHandler(service PaymentServiceInterface) *PaymentHandler {
	return &PaymentHandler{service: service}
}

// ConfirmPaymentHandler handles POST /payments/confirm
func (h *PaymentHandler) ConfirmPaymentHandler(c *gin.Context) {
	var req helpers.ConfirmPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bidhelpers.HandleBindError(c, "ConfirmPaymentHandler", err)
		return
	}

	txn, err := h.service.ConfirmPayment(req.ProductID, req.UserID, req.Amount, req.ForceFail)
	if err != nil {
		// An amount mismatch still produces a recorded Failed transaction;
		// surface both the rejection and the transaction.
		if errors.Is(err, settlementerrors.ErrInvalidPaymentAmount) {
			utils.JSONResponse(c, http.StatusUnprocessableEntity, transactionResponse(txn), "confirmed amount does not match")
			utils.Warn("ConfirmPaymentHandler: amount mismatch", map[string]any{
				"product_id":     req.ProductID,
				"user_id":        req.UserID,
				"transaction_id": txn.TransactionID,
			})
			return
		}

		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Error("ConfirmPaymentHandler: failed to confirm payment", map[string]any{
			"product_id": req.ProductID,
			"user_id":    req.UserID,
			"error":      err.Error(),
		})
		return
	}

	utils.JSONResponse(c, http.StatusOK, transactionResponse(txn), "payment processed")
	utils.Info("ConfirmPaymentHandler: payment processed", map[string]any{
		"product_id":     req.ProductID,
		"user_id":        req.UserID,
		"transaction_id": txn.TransactionID,
		"status":         string(txn.Status),
	})
}

// ListAttemptsHandler handles GET /auctions/:auction_id/attempts
func (h *PaymentHandler) ListAttemptsHandler(c *gin.Context) {
	auctionID := c.Param("auction_id")
	attempts, err := h.service.ListAttempts(auctionID)
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Warn("ListAttemptsHandler: error retrieving attempts", map[string]any{"auction_id": auctionID, "error": err.Error()})
		return
	}

	resp := make([]helpers.AttemptResponse, 0, len(attempts))
	for _, attempt := range attempts {
		resp = append(resp, helpers.AttemptResponse{
			AttemptID:       attempt.AttemptID,
			AuctionID:       attempt.AuctionID,
			BidderID:        attempt.BidderID,
			Status:          string(attempt.Status),
			AttemptNumber:   attempt.AttemptNumber,
			ExpiryTime:      attempt.ExpiryTime.UTC().Format(time.RFC3339),
			Amount:          attempt.Amount,
			ConfirmedAmount: attempt.ConfirmedAmount,
		})
	}

	utils.JSONResponse(c, http.StatusOK, resp, "attempts retrieved successfully")
}

func transactionResponse(txn model.Transaction) helpers.TransactionResponse {
	return helpers.TransactionResponse{
		TransactionID:    txn.TransactionID,
		PaymentAttemptID: txn.PaymentAttemptID,
		Status:           string(txn.Status),
		Amount:           txn.Amount,
		CreatedAt:        txn.CreatedAt.UTC().Format(time.RFC3339),
	}
}
