package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/jaiswal09/medi-sys-offline-sub001/pkg/auth"
	"github.com/jaiswal09/medi-sys-offline-sub001/pkg/errhttp"
	"github.com/jaiswal09/medi-sys-offline-sub001/pkg/httpx"
	appsvcs "github.com/jaiswal09/medi-sys-offline-sub001/services/inventory/application/services"
)

// DeleteItemHandler handles DELETE /inventory/items/{id} requests.
type DeleteItemHandler struct {
	svc *appsvcs.Services
}

// NewDeleteItemHandler returns a DeleteItemHandler backed by the given services.
func NewDeleteItemHandler(svc *appsvcs.Services) *DeleteItemHandler {
	return &DeleteItemHandler{svc: svc}
}

// Execute deletes an item with no stock transactions referencing it.
//
//	@Summary		Delete item
//	@Description	Deletes an item. Fails with 409 while stock transactions reference it.
//	@Tags			items
//	@Produce		json
//	@Param			id	path	string	true	"Item ID"
//	@Success		204
//	@Failure		400	{object}	ErrorResponse
//	@Failure		401	{object}	ErrorResponse
//	@Failure		403	{object}	ErrorResponse
//	@Failure		404	{object}	ErrorResponse
//	@Failure		409	{object}	ErrorResponse	"stock transactions reference the item"
//	@Router			/inventory/items/{id} [delete]
func (h *DeleteItemHandler) Execute(w http.ResponseWriter, r *http.Request) {
	actor, err := auth.ActorFromCtx(r.Context())
	if err != nil {
		httpx.JSON(w, http.StatusUnauthorized, ErrorResponse{Error: "authentication required"})
		return
	}
	if actor.Role != auth.RoleAdmin {
		httpx.JSON(w, http.StatusForbidden, ErrorResponse{Error: "admin role required"})
		return
	}

	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		httpx.JSONError(w, http.StatusBadRequest, "invalid item id")
		return
	}

	if err := h.svc.Item.Delete(r.Context(), id); err != nil {
		errhttp.WriteError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
