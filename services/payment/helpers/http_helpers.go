package helpers

import (
	"errors"
	"net/http"

	"auction-settlement/internal/settlementerrors"
)

// MapErrorToHTTP maps payment-settlement errors to HTTP status code and message
func MapErrorToHTTP(err error) (int, string) {
	switch {
	case errors.Is(err, settlementerrors.ErrAuctionNotFound):
		return http.StatusNotFound, "auction not found"
	case errors.Is(err, settlementerrors.ErrNoPendingAttempt):
		return http.StatusNotFound, "no open payment attempt"
	case errors.Is(err, settlementerrors.ErrUnauthorizedPayment):
		return http.StatusForbidden, "payment must come from the attempt's bidder"
	case errors.Is(err, settlementerrors.ErrPaymentWindowExpired):
		return http.StatusConflict, "payment window has expired"
	case errors.Is(err, settlementerrors.ErrInvalidPaymentAmount):
		return http.StatusUnprocessableEntity, "confirmed amount does not match"
	case errors.Is(err, settlementerrors.ErrAttemptNotPending), errors.Is(err, settlementerrors.ErrStateConflict):
		return http.StatusConflict, "payment state changed concurrently, retry"
	default:
		return http.StatusInternalServerError, "internal server error"
	}
}
