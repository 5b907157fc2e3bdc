package api

import (
	"github.com/go-chi/chi/v5"

	"github.com/jaiswal09/medi-sys-offline-sub001/pkg/app"
	"github.com/jaiswal09/medi-sys-offline-sub001/pkg/auth"
	"github.com/jaiswal09/medi-sys-offline-sub001/services/inventory/application/handlers"
	appsvcs "github.com/jaiswal09/medi-sys-offline-sub001/services/inventory/application/services"
)

// InventoryRoutes registers inventory endpoints on the provided chi router.
// Read endpoints are open; every mutating endpoint requires an authenticated
// session.
func InventoryRoutes(r chi.Router, a *app.Application) {
	svcs := appsvcs.New(a)
	requireAuth := auth.RequireAuth(a.SessionStore, a.Logger)

	r.Route("/inventory", func(r chi.Router) {
		r.Route("/items", func(r chi.Router) {
			r.Get("/", handlers.NewGetItemsHandler(svcs).Execute)
			r.Get("/{id}", handlers.NewGetItemHandler(svcs).Execute)
			r.Group(func(r chi.Router) {
				r.Use(requireAuth)
				r.Post("/", handlers.NewPostItemHandler(svcs).Execute)
				r.Delete("/{id}", handlers.NewDeleteItemHandler(svcs).Execute)
			})
		})

		r.Route("/transactions", func(r chi.Router) {
			r.Get("/", handlers.NewGetTransactionsHandler(svcs).Execute)
			r.Get("/{id}", handlers.NewGetTransactionHandler(svcs).Execute)
			r.Group(func(r chi.Router) {
				r.Use(requireAuth)
				r.Post("/{id}/return", handlers.NewPostReturnHandler(svcs).Execute)
			})
		})

		r.Route("/alerts", func(r chi.Router) {
			r.Get("/", handlers.NewGetAlertsHandler(svcs).Execute)
			r.Group(func(r chi.Router) {
				r.Use(requireAuth)
				r.Post("/{id}/acknowledge", handlers.NewPostAcknowledgeAlertHandler(svcs).Execute)
			})
		})

		r.Group(func(r chi.Router) {
			r.Use(requireAuth)
			r.Post("/movements", handlers.NewPostMovementHandler(svcs).Execute)
		})
	})
}
