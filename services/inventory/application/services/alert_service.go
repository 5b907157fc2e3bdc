package services

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/jaiswal09/medi-sys-offline-sub001/services/inventory/domain/models"
	"github.com/jaiswal09/medi-sys-offline-sub001/services/inventory/domain/repositories"
)

// AlertService serves the read paths over low-stock alerts. Alert state is
// written exclusively by the StockEngine.
type AlertService struct {
	store repositories.Store
}

// NewAlertService returns an AlertService over the given store.
func NewAlertService(store repositories.Store) *AlertService {
	return &AlertService{store: store}
}

// ListOpen returns all alerts still demanding attention (ACTIVE or ACKNOWLEDGED).
func (s *AlertService) ListOpen(ctx context.Context) ([]*models.LowStockAlert, error) {
	alerts, err := s.store.ListOpenAlerts(ctx)
	if err != nil {
		return nil, fmt.Errorf("list open alerts: %w", err)
	}
	return alerts, nil
}

// ListByItem returns the full alert history for one item, newest first.
func (s *AlertService) ListByItem(ctx context.Context, itemID uuid.UUID) ([]*models.LowStockAlert, error) {
	alerts, err := s.store.ListAlertsByItem(ctx, itemID)
	if err != nil {
		return nil, fmt.Errorf("list alerts for item: %w", err)
	}
	return alerts, nil
}
