package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/google/uuid"

	"github.com/jaiswal09/medi-sys-offline-sub001/pkg/events"
	"github.com/jaiswal09/medi-sys-offline-sub001/services/inventory/domain"
	"github.com/jaiswal09/medi-sys-offline-sub001/services/inventory/domain/models"
	"github.com/jaiswal09/medi-sys-offline-sub001/services/inventory/infrastructure/persistence/postgres/db"
)

// storeTx is the transactional view handed to the stock engine. All methods
// run on the same *sql.Tx; row locks taken by the ForUpdate methods hold
// until the unit of work commits or rolls back.
type storeTx struct {
	q   *db.Queries
	tx  *sql.Tx
	bus *events.EventBus
}

func (t *storeTx) ItemForUpdate(ctx context.Context, id uuid.UUID) (*models.Item, error) {
	row, err := t.q.GetItemForUpdate(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrItemNotFound
		}
		return nil, fmt.Errorf("lock item: %w", err)
	}
	return rowToItem(row), nil
}

// AdjustItemQuantity uses a conditional update (quantity + delta >= 0); zero
// rows means the adjustment would have driven the quantity negative, which is
// an invariant violation — the unit of work aborts rather than clamping.
func (t *storeTx) AdjustItemQuantity(ctx context.Context, id uuid.UUID, delta int) (*models.Item, error) {
	row, err := t.q.AdjustItemQuantity(ctx, db.AdjustItemQuantityParams{
		ID:        id,
		Delta:     int32(delta),
		UpdatedAt: time.Now().UTC(),
	})
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%w: adjusting item %s by %d would make quantity negative",
				domain.ErrInvalidState, id, delta)
		}
		return nil, fmt.Errorf("adjust quantity: %w", err)
	}
	return rowToItem(row), nil
}

func (t *storeTx) AppendTransaction(ctx context.Context, txn *models.StockTransaction) error {
	if err := t.q.InsertTransaction(ctx, db.InsertTransactionParams{
		ID:                txn.ID,
		ItemID:            txn.ItemID,
		UserID:            txn.UserID,
		Type:              string(txn.Type),
		Quantity:          int32(txn.Quantity),
		Status:            string(txn.Status),
		DueDate:           nullTime(txn.DueDate),
		LocationUsed:      txn.LocationUsed,
		ConditionOnReturn: txn.ConditionOnReturn,
		Notes:             txn.Notes,
		CreatedAt:         txn.CreatedAt,
		ReturnedAt:        nullTime(txn.ReturnedAt),
	}); err != nil {
		return fmt.Errorf("append transaction: %w", err)
	}
	return nil
}

func (t *storeTx) TransactionForUpdate(ctx context.Context, id uuid.UUID) (*models.StockTransaction, error) {
	row, err := t.q.GetTransactionForUpdate(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrTransactionNotFound
		}
		return nil, fmt.Errorf("lock transaction: %w", err)
	}
	return rowToTransaction(row), nil
}

// CompleteTransaction transitions the row to COMPLETED. Empty notes leave the
// notes recorded at checkout untouched.
func (t *storeTx) CompleteTransaction(ctx context.Context, id uuid.UUID, returnedAt time.Time, condition, notes string) (*models.StockTransaction, error) {
	row, err := t.q.CompleteTransaction(ctx, db.CompleteTransactionParams{
		ID:                id,
		ReturnedAt:        sql.NullTime{Time: returnedAt, Valid: true},
		ConditionOnReturn: condition,
		Notes:             notes,
	})
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrTransactionNotFound
		}
		return nil, fmt.Errorf("complete transaction: %w", err)
	}
	return rowToTransaction(row), nil
}

func (t *storeTx) OpenAlertForUpdate(ctx context.Context, itemID uuid.UUID) (*models.LowStockAlert, error) {
	row, err := t.q.GetOpenAlertForUpdate(ctx, itemID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrAlertNotFound
		}
		return nil, fmt.Errorf("lock open alert: %w", err)
	}
	return rowToAlert(row), nil
}

func (t *storeTx) InsertAlert(ctx context.Context, alert *models.LowStockAlert) error {
	if err := t.q.InsertAlert(ctx, db.InsertAlertParams{
		ID:              alert.ID,
		ItemID:          alert.ItemID,
		CurrentQuantity: int32(alert.CurrentQuantity),
		MinQuantity:     int32(alert.MinQuantity),
		AlertLevel:      string(alert.Level),
		Status:          string(alert.Status),
		AcknowledgedBy:  nullUUID(alert.AcknowledgedBy),
		CreatedAt:       alert.CreatedAt,
		ResolvedAt:      nullTime(alert.ResolvedAt),
	}); err != nil {
		return fmt.Errorf("insert alert: %w", err)
	}
	return nil
}

func (t *storeTx) UpdateOpenAlert(ctx context.Context, alertID uuid.UUID, currentQuantity int, level models.AlertLevel) error {
	if err := t.q.UpdateOpenAlert(ctx, db.UpdateOpenAlertParams{
		ID:              alertID,
		CurrentQuantity: int32(currentQuantity),
		AlertLevel:      string(level),
	}); err != nil {
		return fmt.Errorf("update open alert: %w", err)
	}
	return nil
}

func (t *storeTx) ResolveOpenAlerts(ctx context.Context, itemID uuid.UUID, resolvedAt time.Time) error {
	if err := t.q.ResolveOpenAlerts(ctx, db.ResolveOpenAlertsParams{
		ItemID:     itemID,
		ResolvedAt: sql.NullTime{Time: resolvedAt, Valid: true},
	}); err != nil {
		return fmt.Errorf("resolve open alerts: %w", err)
	}
	return nil
}

func (t *storeTx) AlertForUpdate(ctx context.Context, id uuid.UUID) (*models.LowStockAlert, error) {
	row, err := t.q.GetAlertForUpdate(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrAlertNotFound
		}
		return nil, fmt.Errorf("lock alert: %w", err)
	}
	return rowToAlert(row), nil
}

func (t *storeTx) AcknowledgeAlert(ctx context.Context, id, byUser uuid.UUID) (*models.LowStockAlert, error) {
	row, err := t.q.AcknowledgeAlert(ctx, db.AcknowledgeAlertParams{
		ID:             id,
		AcknowledgedBy: uuid.NullUUID{UUID: byUser, Valid: true},
	})
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrAlertNotFound
		}
		return nil, fmt.Errorf("acknowledge alert: %w", err)
	}
	return rowToAlert(row), nil
}

// PublishEvent writes the event through a publisher bound to this transaction;
// it becomes visible to subscribers only if the unit of work commits.
func (t *storeTx) PublishEvent(ctx context.Context, topic string, payload []byte) error {
	if t.bus == nil {
		return nil
	}
	p, err := t.bus.NewTxPublisher(t.tx)
	if err != nil {
		return fmt.Errorf("create tx publisher: %w", err)
	}
	msg := message.NewMessage(watermill.NewUUID(), payload)
	if err := p.Publish(topic, msg); err != nil {
		return fmt.Errorf("publish %s: %w", topic, err)
	}
	return nil
}
