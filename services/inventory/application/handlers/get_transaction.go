package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/jaiswal09/medi-sys-offline-sub001/pkg/errhttp"
	"github.com/jaiswal09/medi-sys-offline-sub001/pkg/httpx"
	appsvcs "github.com/jaiswal09/medi-sys-offline-sub001/services/inventory/application/services"
)

// GetTransactionHandler handles GET /inventory/transactions/{id} requests.
type GetTransactionHandler struct {
	svc *appsvcs.Services
}

// NewGetTransactionHandler returns a GetTransactionHandler backed by the given services.
func NewGetTransactionHandler(svc *appsvcs.Services) *GetTransactionHandler {
	return &GetTransactionHandler{svc: svc}
}

// Execute fetches a single ledger entry.
//
//	@Summary		Get transaction
//	@Description	Fetches one ledger entry by ID
//	@Tags			movements
//	@Produce		json
//	@Param			id	path		string	true	"Transaction ID"
//	@Success		200	{object}	TransactionResponse
//	@Failure		400	{object}	ErrorResponse
//	@Failure		404	{object}	ErrorResponse
//	@Router			/inventory/transactions/{id} [get]
func (h *GetTransactionHandler) Execute(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		httpx.JSONError(w, http.StatusBadRequest, "invalid transaction id")
		return
	}

	txn, err := h.svc.Ledger.GetByID(r.Context(), id)
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}

	httpx.JSON(w, http.StatusOK, toTransactionResponse(txn))
}
