package handlers

import (
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/jaiswal09/medi-sys-offline-sub001/pkg/auth"
	"github.com/jaiswal09/medi-sys-offline-sub001/pkg/errhttp"
	"github.com/jaiswal09/medi-sys-offline-sub001/pkg/httpx"
	pkgvalidator "github.com/jaiswal09/medi-sys-offline-sub001/pkg/validator"
	appsvcs "github.com/jaiswal09/medi-sys-offline-sub001/services/inventory/application/services"
	"github.com/jaiswal09/medi-sys-offline-sub001/services/inventory/domain/models"
)

// CreateMovementRequest is the request body for POST /inventory/movements.
type CreateMovementRequest struct {
	ItemID       string     `json:"item_id"  validate:"required,uuid4" example:"123e4567-e89b-12d3-a456-426614174000"`
	Type         string     `json:"type"     validate:"required,oneof=CHECKOUT CHECKIN" example:"CHECKOUT"`
	Quantity     int        `json:"quantity" validate:"required,gt=0" example:"2"`
	DueDate      *time.Time `json:"due_date,omitempty"`
	LocationUsed string     `json:"location_used,omitempty" validate:"omitempty,max=255" example:"OR 3"`
	Notes        string     `json:"notes,omitempty"         validate:"omitempty,max=1000"`
} // @name CreateMovementRequest

// PostMovementHandler handles POST /inventory/movements requests.
type PostMovementHandler struct {
	svc *appsvcs.Services
}

// NewPostMovementHandler returns a PostMovementHandler backed by the given services.
func NewPostMovementHandler(svc *appsvcs.Services) *PostMovementHandler {
	return &PostMovementHandler{svc: svc}
}

// Execute records a checkout or checkin movement.
//
//	@Summary		Record stock movement
//	@Description	Atomically appends a CHECKOUT or CHECKIN ledger entry, adjusts the item quantity, and recomputes the low-stock alert state
//	@Tags			movements
//	@Accept			json
//	@Produce		json
//	@Param			request	body		CreateMovementRequest	true	"Movement request"
//	@Success		201		{object}	MovementResponse
//	@Failure		400		{object}	ErrorResponse
//	@Failure		401		{object}	ErrorResponse
//	@Failure		404		{object}	ErrorResponse
//	@Failure		409		{object}	ErrorResponse	"insufficient quantity"
//	@Failure		422		{object}	ErrorResponse
//	@Router			/inventory/movements [post]
func (h *PostMovementHandler) Execute(w http.ResponseWriter, r *http.Request) {
	actor, err := auth.ActorFromCtx(r.Context())
	if err != nil {
		httpx.JSON(w, http.StatusUnauthorized, ErrorResponse{Error: "authentication required"})
		return
	}

	req, ok := pkgvalidator.ValidateRequest[CreateMovementRequest](w, r)
	if !ok {
		return
	}
	itemID := uuid.MustParse(req.ItemID) // validated uuid4 above

	res, err := h.svc.Engine.CreateMovement(r.Context(), appsvcs.CreateMovementInput{
		ItemID:       itemID,
		UserID:       actor.UserID,
		Type:         models.TransactionType(req.Type),
		Quantity:     req.Quantity,
		DueDate:      req.DueDate,
		LocationUsed: req.LocationUsed,
		Notes:        req.Notes,
	})
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}

	httpx.JSON(w, http.StatusCreated, MovementResponse{
		Transaction: toTransactionResponse(res.Transaction),
		Item:        toItemResponse(res.Item),
	})
}
