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

// PostAcknowledgeAlertHandler handles POST /inventory/alerts/{id}/acknowledge requests.
type PostAcknowledgeAlertHandler struct {
	svc *appsvcs.Services
}

// NewPostAcknowledgeAlertHandler returns a PostAcknowledgeAlertHandler backed by the given services.
func NewPostAcknowledgeAlertHandler(svc *appsvcs.Services) *PostAcknowledgeAlertHandler {
	return &PostAcknowledgeAlertHandler{svc: svc}
}

// Execute acknowledges an active low-stock alert.
//
//	@Summary		Acknowledge alert
//	@Description	Transitions an ACTIVE low-stock alert to ACKNOWLEDGED on behalf of the authenticated user
//	@Tags			alerts
//	@Produce		json
//	@Param			id	path		string	true	"Alert ID"
//	@Success		200	{object}	AlertResponse
//	@Failure		400	{object}	ErrorResponse
//	@Failure		401	{object}	ErrorResponse
//	@Failure		404	{object}	ErrorResponse
//	@Failure		409	{object}	ErrorResponse	"alert not ACTIVE"
//	@Router			/inventory/alerts/{id}/acknowledge [post]
func (h *PostAcknowledgeAlertHandler) Execute(w http.ResponseWriter, r *http.Request) {
	actor, err := auth.ActorFromCtx(r.Context())
	if err != nil {
		httpx.JSON(w, http.StatusUnauthorized, ErrorResponse{Error: "authentication required"})
		return
	}

	alertID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		httpx.JSONError(w, http.StatusBadRequest, "invalid alert id")
		return
	}

	alert, err := h.svc.Engine.AcknowledgeAlert(r.Context(), alertID, actor.UserID)
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}

	httpx.JSON(w, http.StatusOK, toAlertResponse(alert))
}
