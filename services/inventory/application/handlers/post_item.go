package handlers

import (
	"net/http"

	"github.com/jaiswal09/medi-sys-offline-sub001/pkg/auth"
	"github.com/jaiswal09/medi-sys-offline-sub001/pkg/errhttp"
	"github.com/jaiswal09/medi-sys-offline-sub001/pkg/httpx"
	pkgvalidator "github.com/jaiswal09/medi-sys-offline-sub001/pkg/validator"
	appsvcs "github.com/jaiswal09/medi-sys-offline-sub001/services/inventory/application/services"
)

// CreateItemRequest is the request body for POST /inventory/items.
type CreateItemRequest struct {
	Name        string `json:"name"         validate:"required,min=1,max=255" example:"Surgical Gloves (M)"`
	Quantity    int    `json:"quantity"     validate:"gte=0" example:"42"`
	MinQuantity int    `json:"min_quantity" validate:"gte=0" example:"10"`
	MaxQuantity *int   `json:"max_quantity,omitempty" validate:"omitempty,gte=0" example:"100"`
	Location    string `json:"location,omitempty"     validate:"omitempty,max=255" example:"Storage B2"`
} // @name CreateItemRequest

// PostItemHandler handles POST /inventory/items requests.
type PostItemHandler struct {
	svc *appsvcs.Services
}

// NewPostItemHandler returns a PostItemHandler backed by the given services.
func NewPostItemHandler(svc *appsvcs.Services) *PostItemHandler {
	return &PostItemHandler{svc: svc}
}

// Execute creates a new inventory item.
//
//	@Summary		Create item
//	@Description	Creates a new inventory item with its starting quantity and thresholds
//	@Tags			items
//	@Accept			json
//	@Produce		json
//	@Param			request	body		CreateItemRequest	true	"Item creation request"
//	@Success		201		{object}	ItemResponse
//	@Failure		400		{object}	ErrorResponse
//	@Failure		401		{object}	ErrorResponse
//	@Failure		422		{object}	ErrorResponse
//	@Router			/inventory/items [post]
func (h *PostItemHandler) Execute(w http.ResponseWriter, r *http.Request) {
	if _, err := auth.ActorFromCtx(r.Context()); err != nil {
		httpx.JSON(w, http.StatusUnauthorized, ErrorResponse{Error: "authentication required"})
		return
	}

	req, ok := pkgvalidator.ValidateRequest[CreateItemRequest](w, r)
	if !ok {
		return
	}

	item, err := h.svc.Item.Create(r.Context(), req.Name, req.Quantity, req.MinQuantity, req.MaxQuantity, req.Location)
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}

	httpx.JSON(w, http.StatusCreated, toItemResponse(item))
}
