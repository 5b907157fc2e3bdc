// Package postgres implements the inventory Store against PostgreSQL.
//
// Concurrency discipline: every engine unit of work runs in one database
// transaction; the Tx view locks the item row (SELECT ... FOR UPDATE) before
// any validation, so conflicting movements on the same item serialize at the
// row lock while movements on different items proceed in parallel. Transient
// contention (serialization failure, deadlock, lock timeout) surfaces as
// domain.ErrConflict so callers can retry the whole unit of work.
package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/jaiswal09/medi-sys-offline-sub001/pkg/database"
	"github.com/jaiswal09/medi-sys-offline-sub001/pkg/events"
	"github.com/jaiswal09/medi-sys-offline-sub001/services/inventory/domain"
	"github.com/jaiswal09/medi-sys-offline-sub001/services/inventory/domain/models"
	"github.com/jaiswal09/medi-sys-offline-sub001/services/inventory/domain/repositories"
	"github.com/jaiswal09/medi-sys-offline-sub001/services/inventory/infrastructure/persistence/postgres/db"
)

// Store implements repositories.Store against PostgreSQL.
type Store struct {
	db  *database.Database
	bus *events.EventBus
}

// NewStore returns a Store backed by the given connection pool and event bus.
// The bus provides the transactional publisher used to emit domain events
// atomically with the unit of work; it may be nil in tests.
func NewStore(database *database.Database, bus *events.EventBus) *Store {
	return &Store{db: database, bus: bus}
}

// InTx runs fn inside one database transaction. Postgres contention errors are
// rewrapped as domain.ErrConflict so the engine's bounded retry applies.
func (s *Store) InTx(ctx context.Context, fn func(tx repositories.Tx) error) error {
	err := s.db.WithTx(ctx, func(tx *sql.Tx) error {
		return fn(&storeTx{q: db.New(tx), tx: tx, bus: s.bus})
	})
	if err != nil && database.IsRetryable(err) {
		return fmt.Errorf("%w: %v", domain.ErrConflict, err)
	}
	return err
}

// SaveItem persists a new Item.
func (s *Store) SaveItem(ctx context.Context, item *models.Item) error {
	q := db.New(s.db.DB())
	if err := q.InsertItem(ctx, db.InsertItemParams{
		ID:          item.ID,
		Name:        item.Name.String(),
		Status:      string(item.Status),
		Quantity:    int32(item.Quantity),
		MinQuantity: int32(item.MinQuantity),
		MaxQuantity: nullInt32(item.MaxQuantity),
		Location:    item.Location,
		CreatedAt:   item.CreatedAt,
		UpdatedAt:   item.UpdatedAt,
	}); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return fmt.Errorf("%w: duplicate item id", domain.ErrConflict)
		}
		return fmt.Errorf("insert item: %w", err)
	}
	return nil
}

// GetItemByID retrieves an Item. Returns ErrItemNotFound if absent.
func (s *Store) GetItemByID(ctx context.Context, id uuid.UUID) (*models.Item, error) {
	row, err := db.New(s.db.DB()).GetItemByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrItemNotFound
		}
		return nil, fmt.Errorf("query item: %w", err)
	}
	return rowToItem(row), nil
}

// ListItems retrieves a paginated list of items and the total count.
func (s *Store) ListItems(ctx context.Context, opts repositories.QueryOpts) ([]*models.Item, int, error) {
	q := db.New(s.db.DB())

	rows, err := q.ListItems(ctx, db.ListItemsParams{
		Limit:  int32(opts.Limit),
		Offset: int32(opts.Offset),
	})
	if err != nil {
		return nil, 0, fmt.Errorf("query items: %w", err)
	}

	total, err := q.CountItems(ctx)
	if err != nil {
		return nil, 0, fmt.Errorf("count items: %w", err)
	}

	items := make([]*models.Item, len(rows))
	for i, row := range rows {
		items[i] = rowToItem(row)
	}
	return items, int(total), nil
}

// DeleteItem removes an item by ID. The ledger FK has no ON DELETE clause, so
// an item with completed transactions cannot be deleted; the foreign-key
// violation surfaces as ErrItemHasHistory.
func (s *Store) DeleteItem(ctx context.Context, id uuid.UUID) error {
	if err := db.New(s.db.DB()).DeleteItem(ctx, id); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23503" {
			return fmt.Errorf("%w: ledger entries reference item %s", domain.ErrItemHasHistory, id)
		}
		return fmt.Errorf("delete item: %w", err)
	}
	return nil
}

// GetTransactionByID retrieves a ledger entry. Returns ErrTransactionNotFound if absent.
func (s *Store) GetTransactionByID(ctx context.Context, id uuid.UUID) (*models.StockTransaction, error) {
	row, err := db.New(s.db.DB()).GetTransactionByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrTransactionNotFound
		}
		return nil, fmt.Errorf("query transaction: %w", err)
	}
	return rowToTransaction(row), nil
}

// ListTransactionsByItem retrieves a paginated ledger slice for one item.
func (s *Store) ListTransactionsByItem(ctx context.Context, itemID uuid.UUID, opts repositories.QueryOpts) ([]*models.StockTransaction, int, error) {
	q := db.New(s.db.DB())

	rows, err := q.ListTransactionsByItem(ctx, db.ListTransactionsByItemParams{
		ItemID: itemID,
		Limit:  int32(opts.Limit),
		Offset: int32(opts.Offset),
	})
	if err != nil {
		return nil, 0, fmt.Errorf("query transactions: %w", err)
	}

	total, err := q.CountTransactionsByItem(ctx, itemID)
	if err != nil {
		return nil, 0, fmt.Errorf("count transactions: %w", err)
	}

	txns := make([]*models.StockTransaction, len(rows))
	for i, row := range rows {
		txns[i] = rowToTransaction(row)
	}
	return txns, int(total), nil
}

// CountActiveByItem counts ACTIVE transactions referencing an item.
func (s *Store) CountActiveByItem(ctx context.Context, itemID uuid.UUID) (int, error) {
	n, err := db.New(s.db.DB()).CountActiveTransactionsByItem(ctx, itemID)
	if err != nil {
		return 0, fmt.Errorf("count active transactions: %w", err)
	}
	return int(n), nil
}

// CountActiveByUser counts ACTIVE transactions held by a user.
func (s *Store) CountActiveByUser(ctx context.Context, userID uuid.UUID) (int, error) {
	n, err := db.New(s.db.DB()).CountActiveTransactionsByUser(ctx, userID)
	if err != nil {
		return 0, fmt.Errorf("count active transactions: %w", err)
	}
	return int(n), nil
}

// ListOpenAlerts retrieves all ACTIVE or ACKNOWLEDGED alerts.
func (s *Store) ListOpenAlerts(ctx context.Context) ([]*models.LowStockAlert, error) {
	rows, err := db.New(s.db.DB()).ListOpenAlerts(ctx)
	if err != nil {
		return nil, fmt.Errorf("query open alerts: %w", err)
	}
	alerts := make([]*models.LowStockAlert, len(rows))
	for i, row := range rows {
		alerts[i] = rowToAlert(row)
	}
	return alerts, nil
}

// ListAlertsByItem retrieves the full alert history for an item.
func (s *Store) ListAlertsByItem(ctx context.Context, itemID uuid.UUID) ([]*models.LowStockAlert, error) {
	rows, err := db.New(s.db.DB()).ListAlertsByItem(ctx, itemID)
	if err != nil {
		return nil, fmt.Errorf("query alerts: %w", err)
	}
	alerts := make([]*models.LowStockAlert, len(rows))
	for i, row := range rows {
		alerts[i] = rowToAlert(row)
	}
	return alerts, nil
}
