package handlers

import (
	"net/http"

	"github.com/google/uuid"

	"github.com/jaiswal09/medi-sys-offline-sub001/pkg/errhttp"
	"github.com/jaiswal09/medi-sys-offline-sub001/pkg/httpx"
	appsvcs "github.com/jaiswal09/medi-sys-offline-sub001/services/inventory/application/services"
	"github.com/jaiswal09/medi-sys-offline-sub001/services/inventory/domain/models"
)

// ListAlertsResponse is returned by GET /inventory/alerts.
type ListAlertsResponse struct {
	Alerts []AlertResponse `json:"alerts"`
} // @name ListAlertsResponse

// GetAlertsHandler handles GET /inventory/alerts requests.
type GetAlertsHandler struct {
	svc *appsvcs.Services
}

// NewGetAlertsHandler returns a GetAlertsHandler backed by the given services.
func NewGetAlertsHandler(svc *appsvcs.Services) *GetAlertsHandler {
	return &GetAlertsHandler{svc: svc}
}

// Execute lists low-stock alerts.
//
//	@Summary		List alerts
//	@Description	Without filters, returns all open alerts (ACTIVE or ACKNOWLEDGED). With item_id, returns the full alert history for that item.
//	@Tags			alerts
//	@Produce		json
//	@Param			item_id	query		string	false	"Filter by item ID (includes resolved alerts)"
//	@Success		200		{object}	ListAlertsResponse
//	@Failure		400		{object}	ErrorResponse
//	@Router			/inventory/alerts [get]
func (h *GetAlertsHandler) Execute(w http.ResponseWriter, r *http.Request) {
	var (
		alerts []*models.LowStockAlert
		err    error
	)
	if raw := r.URL.Query().Get("item_id"); raw != "" {
		itemID, parseErr := uuid.Parse(raw)
		if parseErr != nil {
			httpx.JSONError(w, http.StatusBadRequest, "invalid item_id")
			return
		}
		alerts, err = h.svc.Alert.ListByItem(r.Context(), itemID)
	} else {
		alerts, err = h.svc.Alert.ListOpen(r.Context())
	}
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}

	out := make([]AlertResponse, 0, len(alerts))
	for _, a := range alerts {
		out = append(out, toAlertResponse(a))
	}
	httpx.JSON(w, http.StatusOK, ListAlertsResponse{Alerts: out})
}
