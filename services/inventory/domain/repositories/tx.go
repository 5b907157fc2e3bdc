package repositories

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/jaiswal09/medi-sys-offline-sub001/services/inventory/domain/models"
)

// Tx is the transactional write surface the stock engine operates on. Every
// method runs inside the unit of work opened by Store.InTx; the backing store
// serializes conflicting writers on the same item via the ForUpdate methods
// (row-level write-intent locks), while writers on different items proceed in
// parallel.
type Tx interface {
	// ItemForUpdate loads an item holding a write-intent lock until the unit
	// of work ends. Returns ErrItemNotFound if absent.
	ItemForUpdate(ctx context.Context, id uuid.UUID) (*models.Item, error)

	// AdjustItemQuantity applies a signed delta to the item's quantity and
	// returns the refreshed item. An adjustment that would drive the quantity
	// negative fails with ErrInvalidState — never clamped.
	AdjustItemQuantity(ctx context.Context, id uuid.UUID, delta int) (*models.Item, error)

	// AppendTransaction writes a new ledger entry.
	AppendTransaction(ctx context.Context, txn *models.StockTransaction) error

	// TransactionForUpdate loads a ledger entry holding a write-intent lock.
	// Returns ErrTransactionNotFound if absent.
	TransactionForUpdate(ctx context.Context, id uuid.UUID) (*models.StockTransaction, error)

	// CompleteTransaction transitions a ledger entry ACTIVE → COMPLETED,
	// recording the return time and optional condition/notes.
	CompleteTransaction(ctx context.Context, id uuid.UUID, returnedAt time.Time, condition, notes string) (*models.StockTransaction, error)

	// OpenAlertForUpdate loads the item's open (ACTIVE or ACKNOWLEDGED) alert
	// holding a write-intent lock. Returns ErrAlertNotFound when no alert is open.
	OpenAlertForUpdate(ctx context.Context, itemID uuid.UUID) (*models.LowStockAlert, error)

	// InsertAlert writes a new ACTIVE alert.
	InsertAlert(ctx context.Context, alert *models.LowStockAlert) error

	// UpdateOpenAlert rewrites the open alert's snapshot quantity and level in
	// place. Alerts are never level-escalated by creating a duplicate.
	UpdateOpenAlert(ctx context.Context, alertID uuid.UUID, currentQuantity int, level models.AlertLevel) error

	// ResolveOpenAlerts sets status RESOLVED and resolvedAt on any open alert
	// for the item. No-op if none open.
	ResolveOpenAlerts(ctx context.Context, itemID uuid.UUID, resolvedAt time.Time) error

	// AlertForUpdate loads an alert by ID holding a write-intent lock.
	// Returns ErrAlertNotFound if absent.
	AlertForUpdate(ctx context.Context, id uuid.UUID) (*models.LowStockAlert, error)

	// AcknowledgeAlert transitions an alert ACTIVE → ACKNOWLEDGED and records
	// the acknowledging user.
	AcknowledgeAlert(ctx context.Context, id, byUser uuid.UUID) (*models.LowStockAlert, error)

	// PublishEvent emits a domain event through the store's transactional
	// publisher. The event becomes visible to subscribers only if the unit of
	// work commits.
	PublishEvent(ctx context.Context, topic string, payload []byte) error
}
