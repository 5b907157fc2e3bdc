// Package errhttp maps domain sentinel errors to HTTP status codes.
// Add a case to mapErrorToStatus for each new domain sentinel error.
package errhttp

import (
	"errors"
	"net/http"

	"github.com/jaiswal09/medi-sys-offline-sub001/pkg/httpx"
	"github.com/jaiswal09/medi-sys-offline-sub001/services/inventory/domain"
)

// WriteError maps err to an HTTP status code and writes a JSON error response.
// Uses errors.Is() so wrapped sentinel errors are matched correctly.
// Defaults to 500 Internal Server Error for unrecognized errors.
func WriteError(w http.ResponseWriter, err error) {
	httpx.JSONError(w, mapErrorToStatus(err), err.Error())
}

func mapErrorToStatus(err error) int {
	switch {
	case errors.Is(err, domain.ErrItemNotFound),
		errors.Is(err, domain.ErrTransactionNotFound),
		errors.Is(err, domain.ErrAlertNotFound):
		return http.StatusNotFound // 404
	case errors.Is(err, domain.ErrInsufficientQuantity):
		return http.StatusConflict // 409
	case errors.Is(err, domain.ErrInvalidState),
		errors.Is(err, domain.ErrActiveTransactions),
		errors.Is(err, domain.ErrItemHasHistory):
		return http.StatusConflict // 409
	case errors.Is(err, domain.ErrForbidden):
		return http.StatusForbidden // 403
	case errors.Is(err, domain.ErrInvalidMovement):
		return http.StatusUnprocessableEntity // 422
	case errors.Is(err, domain.ErrConflict):
		return http.StatusServiceUnavailable // 503 — transient, retry later
	default:
		return http.StatusInternalServerError // 500
	}
}
