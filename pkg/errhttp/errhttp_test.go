package errhttp

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/jaiswal09/medi-sys-offline-sub001/services/inventory/domain"
)

func TestWriteError_StatusCodes(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{"ErrItemNotFound", domain.ErrItemNotFound, http.StatusNotFound},
		{"ErrTransactionNotFound", domain.ErrTransactionNotFound, http.StatusNotFound},
		{"ErrAlertNotFound", domain.ErrAlertNotFound, http.StatusNotFound},
		{"ErrInsufficientQuantity", domain.ErrInsufficientQuantity, http.StatusConflict},
		{"ErrInvalidState", domain.ErrInvalidState, http.StatusConflict},
		{"ErrActiveTransactions", domain.ErrActiveTransactions, http.StatusConflict},
		{"ErrItemHasHistory", domain.ErrItemHasHistory, http.StatusConflict},
		{"ErrForbidden", domain.ErrForbidden, http.StatusForbidden},
		{"ErrInvalidMovement", domain.ErrInvalidMovement, http.StatusUnprocessableEntity},
		{"ErrConflict", domain.ErrConflict, http.StatusServiceUnavailable},
		{"wrapped ErrInsufficientQuantity", fmt.Errorf("requested 5, available 2: %w", domain.ErrInsufficientQuantity), http.StatusConflict},
		{"wrapped ErrItemNotFound", fmt.Errorf("get item: %w", domain.ErrItemNotFound), http.StatusNotFound},
		{"unknown error", errors.New("something unexpected"), http.StatusInternalServerError},
		{"generic wrapped error", fmt.Errorf("context: %w", errors.New("db down")), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			WriteError(w, tt.err)

			if w.Code != tt.wantStatus {
				t.Fatalf("expected status %d, got %d", tt.wantStatus, w.Code)
			}
		})
	}
}

func TestWriteError_JSONBody(t *testing.T) {
	w := httptest.NewRecorder()
	WriteError(w, domain.ErrItemNotFound)

	var body map[string]string
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("response body is not valid JSON: %v", err)
	}
	if _, ok := body["error"]; !ok {
		t.Fatal("response body missing 'error' key")
	}
}

func TestWriteError_ContentType(t *testing.T) {
	w := httptest.NewRecorder()
	WriteError(w, domain.ErrItemNotFound)

	ct := w.Header().Get("Content-Type")
	if ct == "" {
		t.Fatal("Content-Type header not set")
	}
}
