package handler

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"auction-settlement/internal/settlementerrors"
	"auction-settlement/services/payment/helpers"

	model "auction-settlement/internal/models"

	"github.com/gin-gonic/gin"
	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

// Test ConfirmPaymentHandler
func TestConfirmPaymentHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockService := NewMockPaymentServiceInterface(ctrl)
	handler := NewPaymentHandler(mockService)

	// Initialize Gin in test mode
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.POST("/payments/confirm", handler.ConfirmPaymentHandler)

	now := time.Now().UTC()

	tests := []struct {
		name           string
		requestBody    any
		mockSetup      func()
		expectedStatus int
		expectedMsg    string
		validateData   func(t *testing.T, data map[string]any)
	}{
		{
			name: "success_payment_confirmed",
			requestBody: helpers.ConfirmPaymentRequest{
				ProductID: "product1",
				UserID:    "user1",
				Amount:    150,
			},
			mockSetup: func() {
				mockService.EXPECT().
					ConfirmPayment("product1", "user1", 150.0, false).
					Return(model.Transaction{
						TransactionID:    uuid.NewString(),
						PaymentAttemptID: "attempt1",
						Status:           model.TransactionSuccess,
						Amount:           150.0,
						CreatedAt:        now,
					}, nil)
			},
			expectedStatus: http.StatusOK,
			expectedMsg:    "payment processed",
			validateData: func(t *testing.T, data map[string]any) {
				txnID := data["transaction_id"].(string)
				require.NotEmpty(t, txnID)
				_, parseErr := uuid.Parse(txnID)
				require.NoError(t, parseErr, "TransactionID should be a valid UUID")
				require.Equal(t, "attempt1", data["payment_attempt_id"])
				require.Equal(t, "SUCCESS", data["status"])
				require.Equal(t, 150.0, data["amount"])
			},
		},
		{
			name: "force_fail_returns_failed_transaction",
			requestBody: helpers.ConfirmPaymentRequest{
				ProductID: "product1",
				UserID:    "user1",
				Amount:    150,
				ForceFail: true,
			},
			mockSetup: func() {
				mockService.EXPECT().
					ConfirmPayment("product1", "user1", 150.0, true).
					Return(model.Transaction{
						TransactionID:    uuid.NewString(),
						PaymentAttemptID: "attempt1",
						Status:           model.TransactionFailed,
						Amount:           150.0,
						CreatedAt:        now,
					}, nil)
			},
			expectedStatus: http.StatusOK,
			expectedMsg:    "payment processed",
			validateData: func(t *testing.T, data map[string]any) {
				require.Equal(t, "FAILED", data["status"])
			},
		},
		{
			name:           "invalid_json",
			requestBody:    `{invalid json}`,
			mockSetup:      func() {},
			expectedStatus: http.StatusBadRequest,
			expectedMsg:    "invalid request payload",
		},
		{
			name: "missing_product_id",
			requestBody: helpers.ConfirmPaymentRequest{
				ProductID: "",
				UserID:    "user1",
				Amount:    150,
			},
			mockSetup:      func() {},
			expectedStatus: http.StatusBadRequest,
			expectedMsg:    "invalid request payload",
		},
		{
			name: "invalid_amount_zero",
			requestBody: helpers.ConfirmPaymentRequest{
				ProductID: "product1",
				UserID:    "user1",
				Amount:    0,
			},
			mockSetup:      func() {},
			expectedStatus: http.StatusBadRequest,
			expectedMsg:    "invalid request payload",
		},
		{
			name: "amount_mismatch_returns_failed_transaction",
			requestBody: helpers.ConfirmPaymentRequest{
				ProductID: "product1",
				UserID:    "user1",
				Amount:    120,
			},
			mockSetup: func() {
				mockService.EXPECT().
					ConfirmPayment("product1", "user1", 120.0, false).
					Return(model.Transaction{
						TransactionID:    uuid.NewString(),
						PaymentAttemptID: "attempt1",
						Status:           model.TransactionFailed,
						Amount:           120.0,
						CreatedAt:        now,
					}, settlementerrors.ErrInvalidPaymentAmount)
			},
			expectedStatus: http.StatusUnprocessableEntity,
			expectedMsg:    "confirmed amount does not match",
			validateData: func(t *testing.T, data map[string]any) {
				require.Equal(t, "FAILED", data["status"])
				require.Equal(t, 120.0, data["amount"])
			},
		},
		{
			name: "service_unauthorized",
			requestBody: helpers.ConfirmPaymentRequest{
				ProductID: "product1",
				UserID:    "user2",
				Amount:    150,
			},
			mockSetup: func() {
				mockService.EXPECT().
					ConfirmPayment("product1", "user2", 150.0, false).
					Return(model.Transaction{}, settlementerrors.ErrUnauthorizedPayment)
			},
			expectedStatus: http.StatusForbidden,
			expectedMsg:    "payment must come from the attempt's bidder",
		},
		{
			name: "service_no_pending_attempt",
			requestBody: helpers.ConfirmPaymentRequest{
				ProductID: "product1",
				UserID:    "user1",
				Amount:    150,
			},
			mockSetup: func() {
				mockService.EXPECT().
					ConfirmPayment("product1", "user1", 150.0, false).
					Return(model.Transaction{}, settlementerrors.ErrNoPendingAttempt)
			},
			expectedStatus: http.StatusNotFound,
			expectedMsg:    "no open payment attempt",
		},
		{
			name: "service_window_expired",
			requestBody: helpers.ConfirmPaymentRequest{
				ProductID: "product1",
				UserID:    "user1",
				Amount:    150,
			},
			mockSetup: func() {
				mockService.EXPECT().
					ConfirmPayment("product1", "user1", 150.0, false).
					Return(model.Transaction{}, settlementerrors.ErrPaymentWindowExpired)
			},
			expectedStatus: http.StatusConflict,
			expectedMsg:    "payment window has expired",
		},
		{
			name: "service_generic_error",
			requestBody: helpers.ConfirmPaymentRequest{
				ProductID: "product1",
				UserID:    "user1",
				Amount:    150,
			},
			mockSetup: func() {
				mockService.EXPECT().
					ConfirmPayment("product1", "user1", 150.0, false).
					Return(model.Transaction{}, errors.New("store failure"))
			},
			expectedStatus: http.StatusInternalServerError,
			expectedMsg:    "internal server error",
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			var reqBody []byte
			var err error
			switch v := tc.requestBody.(type) {
			case string:
				reqBody = []byte(v)
			default:
				reqBody, err = json.Marshal(v)
				require.NoError(t, err)
			}

			tc.mockSetup()

			req := httptest.NewRequest(http.MethodPost, "/payments/confirm", bytes.NewReader(reqBody))
			req.Header.Set("Content-Type", "application/json")
			w := httptest.NewRecorder()

			router.ServeHTTP(w, req)

			require.Equal(t, tc.expectedStatus, w.Code)

			var resp map[string]any
			err = json.Unmarshal(w.Body.Bytes(), &resp)
			require.NoError(t, err)

			require.Contains(t, resp["message"], tc.expectedMsg)

			if tc.validateData != nil {
				data := resp["data"].(map[string]any)
				tc.validateData(t, data)
			}
		})
	}
}

// Test ListAttemptsHandler
func TestListAttemptsHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockService := NewMockPaymentServiceInterface(ctrl)
	handler := NewPaymentHandler(mockService)

	// Initialize Gin in test mode
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/auctions/:auction_id/attempts", handler.ListAttemptsHandler)

	now := time.Now().UTC()

	tests := []struct {
		name           string
		auctionID      string
		mockSetup      func()
		expectedStatus int
		expectedMsg    string
		validateData   func(t *testing.T, data []map[string]any)
	}{
		{
			name:      "success_attempt_history",
			auctionID: "auction1",
			mockSetup: func() {
				mockService.EXPECT().
					ListAttempts("auction1").
					Return([]model.PaymentAttempt{
						{
							AttemptID:       uuid.NewString(),
							AuctionID:       "auction1",
							BidderID:        "user1",
							Status:          model.AttemptFailed,
							AttemptNumber:   1,
							AttemptTime:     now.Add(-time.Hour),
							ExpiryTime:      now.Add(-30 * time.Minute),
							Amount:          200,
							ConfirmedAmount: 180,
						},
						{
							AttemptID:     uuid.NewString(),
							AuctionID:     "auction1",
							BidderID:      "user2",
							Status:        model.AttemptPending,
							AttemptNumber: 2,
							AttemptTime:   now,
							ExpiryTime:    now.Add(30 * time.Minute),
							Amount:        150,
						},
					}, nil)
			},
			expectedStatus: http.StatusOK,
			expectedMsg:    "attempts retrieved successfully",
			validateData: func(t *testing.T, data []map[string]any) {
				require.Len(t, data, 2)
				require.Equal(t, "user1", data[0]["bidder_id"])
				require.Equal(t, "FAILED", data[0]["status"])
				require.Equal(t, 1.0, data[0]["attempt_number"])
				require.Equal(t, 180.0, data[0]["confirmed_amount"])
				require.Equal(t, "user2", data[1]["bidder_id"])
				require.Equal(t, "PENDING", data[1]["status"])
				require.Equal(t, 2.0, data[1]["attempt_number"])
			},
		},
		{
			name:      "success_no_attempts",
			auctionID: "auction2",
			mockSetup: func() {
				mockService.EXPECT().
					ListAttempts("auction2").
					Return([]model.PaymentAttempt{}, nil)
			},
			expectedStatus: http.StatusOK,
			expectedMsg:    "attempts retrieved successfully",
			validateData: func(t *testing.T, data []map[string]any) {
				require.Len(t, data, 0)
			},
		},
		{
			name:      "auction_not_found",
			auctionID: "nonexistent",
			mockSetup: func() {
				mockService.EXPECT().
					ListAttempts("nonexistent").
					Return(nil, settlementerrors.ErrAuctionNotFound)
			},
			expectedStatus: http.StatusNotFound,
			expectedMsg:    "auction not found",
		},
		{
			name:      "service_generic_error",
			auctionID: "auction3",
			mockSetup: func() {
				mockService.EXPECT().
					ListAttempts("auction3").
					Return(nil, errors.New("store failure"))
			},
			expectedStatus: http.StatusInternalServerError,
			expectedMsg:    "internal server error",
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			tc.mockSetup()

			req := httptest.NewRequest(http.MethodGet, fmt.Sprintf("/auctions/%s/attempts", tc.auctionID), nil)
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			require.Equal(t, tc.expectedStatus, w.Code)

			var resp map[string]any
			err := json.Unmarshal(w.Body.Bytes(), &resp)
			require.NoError(t, err)

			require.Contains(t, resp["message"], tc.expectedMsg)

			if tc.validateData != nil && w.Code == http.StatusOK {
				dataRaw := resp["data"].([]any)
				data := make([]map[string]any, len(dataRaw))
				for i, v := range dataRaw {
					data[i] = v.(map[string]any)
				}
				tc.validateData(t, data)
			}
		})
	}
}
