package handlers

import (
	"net/http"
	"strconv"

	"github.com/jaiswal09/medi-sys-offline-sub001/pkg/errhttp"
	"github.com/jaiswal09/medi-sys-offline-sub001/pkg/httpx"
	appsvcs "github.com/jaiswal09/medi-sys-offline-sub001/services/inventory/application/services"
	"github.com/jaiswal09/medi-sys-offline-sub001/services/inventory/domain/repositories"
)

const (
	defaultPageSize = 50
	maxPageSize     = 200
)

// ListItemsResponse is returned by GET /inventory/items.
type ListItemsResponse struct {
	Items []ItemResponse `json:"items"`
	Total int            `json:"total" example:"128"`
} // @name ListItemsResponse

// GetItemsHandler handles GET /inventory/items requests.
type GetItemsHandler struct {
	svc *appsvcs.Services
}

// NewGetItemsHandler returns a GetItemsHandler backed by the given services.
func NewGetItemsHandler(svc *appsvcs.Services) *GetItemsHandler {
	return &GetItemsHandler{svc: svc}
}

// Execute lists items with pagination.
//
//	@Summary		List items
//	@Description	Returns a paginated slice of items plus the total count
//	@Tags			items
//	@Produce		json
//	@Param			limit	query		int	false	"Page size (max 200)"	default(50)
//	@Param			offset	query		int	false	"Offset"				default(0)
//	@Success		200		{object}	ListItemsResponse
//	@Router			/inventory/items [get]
func (h *GetItemsHandler) Execute(w http.ResponseWriter, r *http.Request) {
	items, total, err := h.svc.Item.List(r.Context(), pageOpts(r))
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}

	out := make([]ItemResponse, 0, len(items))
	for _, item := range items {
		out = append(out, toItemResponse(item))
	}
	httpx.JSON(w, http.StatusOK, ListItemsResponse{Items: out, Total: total})
}

// pageOpts parses limit/offset query parameters with sane bounds.
func pageOpts(r *http.Request) repositories.QueryOpts {
	opts := repositories.QueryOpts{Limit: defaultPageSize}
	if raw := r.URL.Query().Get("limit"); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil && n > 0 {
			opts.Limit = min(n, maxPageSize)
		}
	}
	if raw := r.URL.Query().Get("offset"); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil && n >= 0 {
			opts.Offset = n
		}
	}
	return opts
}
