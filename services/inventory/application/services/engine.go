package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/jaiswal09/medi-sys-offline-sub001/pkg/logger"
	"github.com/jaiswal09/medi-sys-offline-sub001/services/inventory/domain"
	domainevents "github.com/jaiswal09/medi-sys-offline-sub001/services/inventory/domain/events"
	"github.com/jaiswal09/medi-sys-offline-sub001/services/inventory/domain/models"
	"github.com/jaiswal09/medi-sys-offline-sub001/services/inventory/domain/repositories"
	domainsvcs "github.com/jaiswal09/medi-sys-offline-sub001/services/inventory/domain/services"
)

const retryBaseDelay = 100 * time.Millisecond

// StockEngine executes stock movements. Each operation is one atomic unit of
// work that validates availability, writes the ledger, adjusts the item's
// quantity, and recomputes the low-stock alert state — committed or aborted
// together. Conflicting movements on the same item serialize on the item's
// row lock, acquired before validation; movements on different items do not
// block each other.
type StockEngine struct {
	store      repositories.Store
	log        logger.Logger
	maxRetries int
}

// NewStockEngine returns a StockEngine over the given store. maxRetries bounds
// how many times a unit of work is re-run after transient store contention.
func NewStockEngine(store repositories.Store, log logger.Logger, maxRetries int) *StockEngine {
	if maxRetries < 1 {
		maxRetries = 1
	}
	return &StockEngine{store: store, log: log, maxRetries: maxRetries}
}

// CreateMovementInput describes a checkout or checkin request.
type CreateMovementInput struct {
	ItemID       uuid.UUID
	UserID       uuid.UUID
	Type         models.TransactionType
	Quantity     int
	DueDate      *time.Time
	LocationUsed string
	Notes        string
}

// CompleteCheckoutInput describes a return of a checked-out transaction.
type CompleteCheckoutInput struct {
	TransactionID     uuid.UUID
	ActingUserID      uuid.UUID
	OverrideOwnership bool // elevated actors may return transactions they do not own
	ReturnedAt        *time.Time
	ConditionOnReturn string
	Notes             string
}

// MovementResult is the created or completed ledger entry joined with the
// refreshed item.
type MovementResult struct {
	Transaction *models.StockTransaction
	Item        *models.Item
}

// CreateMovement records a CHECKOUT or CHECKIN movement.
//
// Within one unit of work it locks the item, validates availability, appends
// the ledger entry (ACTIVE), applies the signed delta to the item's quantity,
// and recomputes the alert state from the new quantity. Any step failing
// aborts all prior writes.
func (e *StockEngine) CreateMovement(ctx context.Context, in CreateMovementInput) (*MovementResult, error) {
	if in.Type != models.TransactionCheckout && in.Type != models.TransactionCheckin {
		return nil, fmt.Errorf("%w: unknown type %q", domain.ErrInvalidMovement, in.Type)
	}
	if in.Quantity <= 0 {
		return nil, fmt.Errorf("%w: quantity must be positive, got %d", domain.ErrInvalidMovement, in.Quantity)
	}

	var res MovementResult
	err := e.withRetry(ctx, "create movement", func() error {
		return e.store.InTx(ctx, func(tx repositories.Tx) error {
			item, err := tx.ItemForUpdate(ctx, in.ItemID)
			if err != nil {
				return err
			}

			if in.Type == models.TransactionCheckout && in.Quantity > item.Quantity {
				return fmt.Errorf("%w: requested %d, available %d",
					domain.ErrInsufficientQuantity, in.Quantity, item.Quantity)
			}

			txn := models.NewStockTransaction(item.ID, in.UserID, in.Type, in.Quantity,
				in.DueDate, in.LocationUsed, in.Notes)
			if err := tx.AppendTransaction(ctx, txn); err != nil {
				return err
			}

			updated, err := tx.AdjustItemQuantity(ctx, item.ID, txn.SignedDelta())
			if err != nil {
				return err
			}

			if err := e.recomputeAlert(ctx, tx, updated); err != nil {
				return err
			}

			if err := e.publishMovement(ctx, tx, txn, string(txn.Type), updated.Quantity); err != nil {
				return err
			}

			res = MovementResult{Transaction: txn, Item: updated}
			return nil
		})
	})
	if err != nil {
		return nil, err
	}

	e.log.InfoContext(ctx, "movement recorded",
		"transaction_id", res.Transaction.ID,
		"item_id", in.ItemID,
		"type", in.Type,
		"quantity", in.Quantity,
		"new_quantity", res.Item.Quantity,
	)
	return &res, nil
}

// CompleteCheckout returns a checked-out transaction: transitions it
// ACTIVE → COMPLETED, restores the item's quantity, and recomputes the alert
// state, all in one unit of work. Completing a transaction that is not an
// ACTIVE CHECKOUT fails with ErrInvalidState — the item's quantity is never
// incremented twice for the same transaction.
func (e *StockEngine) CompleteCheckout(ctx context.Context, in CompleteCheckoutInput) (*MovementResult, error) {
	returnedAt := time.Now().UTC()
	if in.ReturnedAt != nil {
		returnedAt = in.ReturnedAt.UTC()
	}

	var res MovementResult
	err := e.withRetry(ctx, "complete checkout", func() error {
		return e.store.InTx(ctx, func(tx repositories.Tx) error {
			txn, err := tx.TransactionForUpdate(ctx, in.TransactionID)
			if err != nil {
				return err
			}

			if !in.OverrideOwnership && txn.UserID != in.ActingUserID {
				return fmt.Errorf("%w: transaction %s belongs to another user",
					domain.ErrForbidden, txn.ID)
			}

			if !txn.Returnable() {
				return fmt.Errorf("%w: transaction %s is %s %s, only ACTIVE CHECKOUT can be returned",
					domain.ErrInvalidState, txn.ID, txn.Status, txn.Type)
			}

			completed, err := tx.CompleteTransaction(ctx, txn.ID, returnedAt, in.ConditionOnReturn, in.Notes)
			if err != nil {
				return err
			}

			updated, err := tx.AdjustItemQuantity(ctx, txn.ItemID, txn.Quantity)
			if err != nil {
				return err
			}

			if err := e.recomputeAlert(ctx, tx, updated); err != nil {
				return err
			}

			if err := e.publishMovement(ctx, tx, completed, "RETURN", updated.Quantity); err != nil {
				return err
			}

			res = MovementResult{Transaction: completed, Item: updated}
			return nil
		})
	})
	if err != nil {
		return nil, err
	}

	e.log.InfoContext(ctx, "checkout returned",
		"transaction_id", in.TransactionID,
		"item_id", res.Item.ID,
		"new_quantity", res.Item.Quantity,
	)
	return &res, nil
}

// AcknowledgeAlert transitions an alert ACTIVE → ACKNOWLEDGED on behalf of the
// reviewing user. Fails with ErrInvalidState if the alert was already
// acknowledged or resolved.
func (e *StockEngine) AcknowledgeAlert(ctx context.Context, alertID, byUser uuid.UUID) (*models.LowStockAlert, error) {
	var ack *models.LowStockAlert
	err := e.withRetry(ctx, "acknowledge alert", func() error {
		return e.store.InTx(ctx, func(tx repositories.Tx) error {
			alert, err := tx.AlertForUpdate(ctx, alertID)
			if err != nil {
				return err
			}
			if alert.Status != models.AlertActive {
				return fmt.Errorf("%w: alert %s is %s, only ACTIVE alerts can be acknowledged",
					domain.ErrInvalidState, alert.ID, alert.Status)
			}
			ack, err = tx.AcknowledgeAlert(ctx, alertID, byUser)
			return err
		})
	})
	if err != nil {
		return nil, err
	}

	e.log.InfoContext(ctx, "alert acknowledged", "alert_id", alertID, "by_user", byUser)
	return ack, nil
}

// recomputeAlert re-evaluates the item's alert state from its current
// quantity inside the same unit of work as the quantity change. Above
// threshold: any open alert resolves. At or below: the open alert is updated
// in place, or a fresh ACTIVE alert is created when none is open — at most
// one open alert per item ever exists.
func (e *StockEngine) recomputeAlert(ctx context.Context, tx repositories.Tx, item *models.Item) error {
	level := domainsvcs.Classify(item.Quantity, item.MinQuantity)
	now := time.Now().UTC()

	open, err := tx.OpenAlertForUpdate(ctx, item.ID)
	if err != nil && !errors.Is(err, domain.ErrAlertNotFound) {
		return err
	}
	hasOpen := err == nil

	if level == "" {
		if !hasOpen {
			return nil
		}
		if err := tx.ResolveOpenAlerts(ctx, item.ID, now); err != nil {
			return err
		}
		return e.publish(ctx, tx, domainevents.TopicAlertResolved, domainevents.AlertResolvedEvent{
			EventID:    uuid.New(),
			Version:    1,
			ItemID:     item.ID,
			OccurredAt: now,
		})
	}

	alertID := uuid.Nil
	if hasOpen {
		if err := tx.UpdateOpenAlert(ctx, open.ID, item.Quantity, level); err != nil {
			return err
		}
		alertID = open.ID
	} else {
		alert := models.NewLowStockAlert(item.ID, item.Quantity, item.MinQuantity, level)
		if err := tx.InsertAlert(ctx, alert); err != nil {
			return err
		}
		alertID = alert.ID
	}

	return e.publish(ctx, tx, domainevents.TopicAlertRaised, domainevents.AlertRaisedEvent{
		EventID:         uuid.New(),
		Version:         1,
		AlertID:         alertID,
		ItemID:          item.ID,
		Level:           string(level),
		CurrentQuantity: item.Quantity,
		MinQuantity:     item.MinQuantity,
		OccurredAt:      now,
	})
}

func (e *StockEngine) publishMovement(ctx context.Context, tx repositories.Tx, txn *models.StockTransaction, movementType string, newQuantity int) error {
	return e.publish(ctx, tx, domainevents.TopicMovementRecorded, domainevents.MovementRecordedEvent{
		EventID:       uuid.New(),
		Version:       1,
		TransactionID: txn.ID,
		ItemID:        txn.ItemID,
		UserID:        txn.UserID,
		Type:          movementType,
		Quantity:      txn.Quantity,
		NewQuantity:   newQuantity,
		OccurredAt:    time.Now().UTC(),
	})
}

func (e *StockEngine) publish(ctx context.Context, tx repositories.Tx, topic string, event any) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("marshal event: %w", err)
	}
	return tx.PublishEvent(ctx, topic, payload)
}

// withRetry re-runs fn after transient store contention (ErrConflict), with
// exponential backoff, up to the configured bound. Business failures and
// lifecycle violations surface immediately.
func (e *StockEngine) withRetry(ctx context.Context, op string, fn func() error) error {
	delay := retryBaseDelay
	var err error
	for attempt := 1; attempt <= e.maxRetries; attempt++ {
		if err = fn(); err == nil || !errors.Is(err, domain.ErrConflict) {
			return err
		}
		if attempt < e.maxRetries {
			e.log.WarnContext(ctx, "store contention, retrying unit of work",
				"operation", op,
				"attempt", attempt,
				"max_retries", e.maxRetries,
				"next_delay", delay,
				"error", err,
			)
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(delay):
			}
			delay *= 2
		}
	}
	return fmt.Errorf("%s failed after %d attempts: %w", op, e.maxRetries, err)
}
