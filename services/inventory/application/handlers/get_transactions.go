package handlers

import (
	"net/http"

	"github.com/google/uuid"

	"github.com/jaiswal09/medi-sys-offline-sub001/pkg/errhttp"
	"github.com/jaiswal09/medi-sys-offline-sub001/pkg/httpx"
	appsvcs "github.com/jaiswal09/medi-sys-offline-sub001/services/inventory/application/services"
)

// ListTransactionsResponse is returned by GET /inventory/transactions.
type ListTransactionsResponse struct {
	Transactions []TransactionResponse `json:"transactions"`
	Total        int                   `json:"total" example:"12"`
} // @name ListTransactionsResponse

// GetTransactionsHandler handles GET /inventory/transactions requests.
type GetTransactionsHandler struct {
	svc *appsvcs.Services
}

// NewGetTransactionsHandler returns a GetTransactionsHandler backed by the given services.
func NewGetTransactionsHandler(svc *appsvcs.Services) *GetTransactionsHandler {
	return &GetTransactionsHandler{svc: svc}
}

// Execute lists an item's movement ledger, newest first.
//
//	@Summary		List transactions
//	@Description	Returns the movement ledger for one item with pagination
//	@Tags			movements
//	@Produce		json
//	@Param			item_id	query		string	true	"Item ID"
//	@Param			limit	query		int		false	"Page size (max 200)"	default(50)
//	@Param			offset	query		int		false	"Offset"				default(0)
//	@Success		200		{object}	ListTransactionsResponse
//	@Failure		400		{object}	ErrorResponse
//	@Router			/inventory/transactions [get]
func (h *GetTransactionsHandler) Execute(w http.ResponseWriter, r *http.Request) {
	itemID, err := uuid.Parse(r.URL.Query().Get("item_id"))
	if err != nil {
		httpx.JSONError(w, http.StatusBadRequest, "item_id is required and must be a valid UUID")
		return
	}

	txns, total, err := h.svc.Ledger.ListByItem(r.Context(), itemID, pageOpts(r))
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}

	out := make([]TransactionResponse, 0, len(txns))
	for _, t := range txns {
		out = append(out, toTransactionResponse(t))
	}
	httpx.JSON(w, http.StatusOK, ListTransactionsResponse{Transactions: out, Total: total})
}
