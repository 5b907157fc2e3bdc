package repositories

import (
	"context"

	"github.com/google/uuid"

	"github.com/jaiswal09/medi-sys-offline-sub001/services/inventory/domain/models"
)

// QueryOpts contains pagination parameters for list queries.
type QueryOpts struct {
	Limit  int // Maximum number of records to return
	Offset int // Number of records to skip
}

// Store is the persistence interface for the inventory bounded context.
// The domain layer owns this interface; infrastructure implements it.
//
// Reads are unrestricted and run outside any unit of work. All writes to item
// quantity, transaction status, and alert state go through InTx — the stock
// engine exclusively owns that write path.
type Store interface {
	// InTx runs fn against a transactional view of the store as one atomic
	// unit of work. fn's writes commit together when it returns nil and are
	// rolled back together otherwise; the caller observes no partial effect.
	InTx(ctx context.Context, fn func(tx Tx) error) error

	// SaveItem persists a new Item (administrative creation path).
	SaveItem(ctx context.Context, item *models.Item) error

	// GetItemByID retrieves an Item. Returns ErrItemNotFound if absent.
	GetItemByID(ctx context.Context, id uuid.UUID) (*models.Item, error)

	// ListItems retrieves a paginated list of items and the total count
	// (ignoring pagination).
	ListItems(ctx context.Context, opts QueryOpts) ([]*models.Item, int, error)

	// DeleteItem removes an item. Callers must check CountActiveByItem first;
	// deletion while ACTIVE transactions reference the item is forbidden.
	DeleteItem(ctx context.Context, id uuid.UUID) error

	// GetTransactionByID retrieves a ledger entry. Returns
	// ErrTransactionNotFound if absent.
	GetTransactionByID(ctx context.Context, id uuid.UUID) (*models.StockTransaction, error)

	// ListTransactionsByItem retrieves a paginated ledger slice for one item,
	// newest first.
	ListTransactionsByItem(ctx context.Context, itemID uuid.UUID, opts QueryOpts) ([]*models.StockTransaction, int, error)

	// CountActiveByItem counts ACTIVE transactions referencing an item
	// (deletion guard).
	CountActiveByItem(ctx context.Context, itemID uuid.UUID) (int, error)

	// CountActiveByUser counts ACTIVE transactions held by a user.
	CountActiveByUser(ctx context.Context, userID uuid.UUID) (int, error)

	// ListOpenAlerts retrieves all alerts with status ACTIVE or ACKNOWLEDGED.
	ListOpenAlerts(ctx context.Context) ([]*models.LowStockAlert, error)

	// ListAlertsByItem retrieves the full alert history for an item, newest first.
	ListAlertsByItem(ctx context.Context, itemID uuid.UUID) ([]*models.LowStockAlert, error)
}
