package helpers

import (
	"errors"
	"fmt"
	"net/http"

	"auction-settlement/internal/settlementerrors"
	"auction-settlement/utils"

	"github.com/gin-gonic/gin"
)

// HandleBindError sends a standardized JSON error for binding failures
func HandleBindError(c *gin.Context, handlerName string, err error) {
	wrappedErr := fmt.Errorf("invalid request payload: %w", err)
	utils.JSONError(c, http.StatusBadRequest, wrappedErr, "invalid request payload")
	utils.Warn(handlerName+": binding error", map[string]any{"error": err.Error()})
}

// MapErrorToHTTP maps bid-admission errors to HTTP status code and message
func MapErrorToHTTP(err error) (int, string) {
	switch {
	case errors.Is(err, settlementerrors.ErrAuctionNotFound):
		return http.StatusNotFound, "auction not found"
	case errors.Is(err, settlementerrors.ErrProductNotFound):
		return http.StatusNotFound, "product not found"
	case errors.Is(err, settlementerrors.ErrAuctionNotActive):
		return http.StatusConflict, "auction is not active"
	case errors.Is(err, settlementerrors.ErrOwnerCannotBid):
		return http.StatusForbidden, "owner cannot bid on own auction"
	case errors.Is(err, settlementerrors.ErrBidTooLow):
		return http.StatusConflict, "bid amount too low"
	case errors.Is(err, settlementerrors.ErrNoBids):
		return http.StatusNotFound, "no bids found for auction"
	case errors.Is(err, settlementerrors.ErrVersionConflict), errors.Is(err, settlementerrors.ErrStateConflict):
		return http.StatusConflict, "auction modified concurrently, retry"
	default:
		return http.StatusInternalServerError, "internal server error"
	}
}

// LogSuccess is a small helper to standardize logging of successful operations
func LogSuccess(handlerName, message string, ctx map[string]any) {
	utils.Info(handlerName+": "+message, ctx)
}
