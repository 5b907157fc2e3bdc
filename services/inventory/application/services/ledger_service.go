package services

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/jaiswal09/medi-sys-offline-sub001/services/inventory/domain/models"
	"github.com/jaiswal09/medi-sys-offline-sub001/services/inventory/domain/repositories"
)

// LedgerService serves the read paths over the movement ledger.
type LedgerService struct {
	store repositories.Store
}

// NewLedgerService returns a LedgerService over the given store.
func NewLedgerService(store repositories.Store) *LedgerService {
	return &LedgerService{store: store}
}

// GetByID returns one ledger entry.
func (s *LedgerService) GetByID(ctx context.Context, id uuid.UUID) (*models.StockTransaction, error) {
	txn, err := s.store.GetTransactionByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get transaction: %w", err)
	}
	return txn, nil
}

// ListByItem returns a paginated slice of an item's movements plus total count.
func (s *LedgerService) ListByItem(ctx context.Context, itemID uuid.UUID, opts repositories.QueryOpts) ([]*models.StockTransaction, int, error) {
	txns, total, err := s.store.ListTransactionsByItem(ctx, itemID, opts)
	if err != nil {
		return nil, 0, fmt.Errorf("list transactions: %w", err)
	}
	return txns, total, nil
}

// CountActiveForUser counts a user's open checkouts (deletion guard for the
// administrative user routes).
func (s *LedgerService) CountActiveForUser(ctx context.Context, userID uuid.UUID) (int, error) {
	n, err := s.store.CountActiveByUser(ctx, userID)
	if err != nil {
		return 0, fmt.Errorf("count active transactions: %w", err)
	}
	return n, nil
}
