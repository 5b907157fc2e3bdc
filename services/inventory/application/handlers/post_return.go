package handlers

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/jaiswal09/medi-sys-offline-sub001/pkg/auth"
	"github.com/jaiswal09/medi-sys-offline-sub001/pkg/errhttp"
	"github.com/jaiswal09/medi-sys-offline-sub001/pkg/httpx"
	pkgvalidator "github.com/jaiswal09/medi-sys-offline-sub001/pkg/validator"
	appsvcs "github.com/jaiswal09/medi-sys-offline-sub001/services/inventory/application/services"
)

// ReturnTransactionRequest is the request body for
// POST /inventory/transactions/{id}/return. All fields are optional.
type ReturnTransactionRequest struct {
	ReturnedAt        *time.Time `json:"returned_at,omitempty"`
	ConditionOnReturn string     `json:"condition_on_return,omitempty" validate:"omitempty,max=255" example:"good"`
	Notes             string     `json:"notes,omitempty"               validate:"omitempty,max=1000"`
} // @name ReturnTransactionRequest

// PostReturnHandler handles POST /inventory/transactions/{id}/return requests.
type PostReturnHandler struct {
	svc *appsvcs.Services
}

// NewPostReturnHandler returns a PostReturnHandler backed by the given services.
func NewPostReturnHandler(svc *appsvcs.Services) *PostReturnHandler {
	return &PostReturnHandler{svc: svc}
}

// Execute returns a checked-out transaction.
//
//	@Summary		Return a checkout
//	@Description	Completes an ACTIVE CHECKOUT transaction, restores the item quantity, and recomputes the low-stock alert state
//	@Tags			movements
//	@Accept			json
//	@Produce		json
//	@Param			id		path		string						true	"Transaction ID"
//	@Param			request	body		ReturnTransactionRequest	false	"Return details"
//	@Success		200		{object}	MovementResponse
//	@Failure		400		{object}	ErrorResponse
//	@Failure		401		{object}	ErrorResponse
//	@Failure		403		{object}	ErrorResponse	"transaction belongs to another user"
//	@Failure		404		{object}	ErrorResponse
//	@Failure		409		{object}	ErrorResponse	"transaction already completed"
//	@Router			/inventory/transactions/{id}/return [post]
func (h *PostReturnHandler) Execute(w http.ResponseWriter, r *http.Request) {
	actor, err := auth.ActorFromCtx(r.Context())
	if err != nil {
		httpx.JSON(w, http.StatusUnauthorized, ErrorResponse{Error: "authentication required"})
		return
	}

	txnID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		httpx.JSONError(w, http.StatusBadRequest, "invalid transaction id")
		return
	}

	var req ReturnTransactionRequest
	if r.ContentLength > 0 {
		parsed, ok := pkgvalidator.ValidateRequest[ReturnTransactionRequest](w, r)
		if !ok {
			return
		}
		req = *parsed
	}

	res, err := h.svc.Engine.CompleteCheckout(r.Context(), appsvcs.CompleteCheckoutInput{
		TransactionID:     txnID,
		ActingUserID:      actor.UserID,
		OverrideOwnership: actor.CanOverrideOwnership(),
		ReturnedAt:        req.ReturnedAt,
		ConditionOnReturn: req.ConditionOnReturn,
		Notes:             req.Notes,
	})
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}

	httpx.JSON(w, http.StatusOK, MovementResponse{
		Transaction: toTransactionResponse(res.Transaction),
		Item:        toItemResponse(res.Item),
	})
}
