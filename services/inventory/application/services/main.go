package services

import (
	"github.com/jaiswal09/medi-sys-offline-sub001/pkg/app"
	"github.com/jaiswal09/medi-sys-offline-sub001/pkg/cache"
	"github.com/jaiswal09/medi-sys-offline-sub001/services/inventory/infrastructure/persistence/postgres"
)

// Services is the application-layer service container for this bounded context.
// It wires domain services with their infrastructure implementations.
type Services struct {
	Engine *StockEngine
	Item   *ItemService
	Alert  *AlertService
	Ledger *LedgerService
}

// New wires all inventory application services with infrastructure from the
// Application container.
func New(a *app.Application) *Services {
	store := postgres.NewStore(a.Db, a.EventBus)
	itemCache := cache.NewItemCache(a.Redis)
	return &Services{
		Engine: NewStockEngine(store, a.Logger, a.TxMaxRetries),
		Item:   NewItemService(store, itemCache),
		Alert:  NewAlertService(store),
		Ledger: NewLedgerService(store),
	}
}
