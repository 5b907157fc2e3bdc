package models

import (
	"time"

	"github.com/google/uuid"
)

// AlertLevel grades how far below threshold an item has fallen.
type AlertLevel string

const (
	AlertLevelLow        AlertLevel = "LOW"
	AlertLevelCritical   AlertLevel = "CRITICAL"
	AlertLevelOutOfStock AlertLevel = "OUT_OF_STOCK"
)

// AlertStatus is the lifecycle state of a low-stock alert.
// ACTIVE → ACKNOWLEDGED (human review) or ACTIVE/ACKNOWLEDGED → RESOLVED
// (quantity recovers above threshold). Resolved alerts are historical records.
type AlertStatus string

const (
	AlertActive       AlertStatus = "ACTIVE"
	AlertAcknowledged AlertStatus = "ACKNOWLEDGED"
	AlertResolved     AlertStatus = "RESOLVED"
)

// LowStockAlert records that an item's quantity fell to or below its
// configured minimum. At most one alert with status ACTIVE or ACKNOWLEDGED
// may exist per item at any time; the stock engine updates the open alert in
// place on every quantity change rather than creating duplicates.
type LowStockAlert struct {
	ID              uuid.UUID
	ItemID          uuid.UUID
	CurrentQuantity int
	MinQuantity     int
	Level           AlertLevel
	Status          AlertStatus
	AcknowledgedBy  *uuid.UUID
	CreatedAt       time.Time
	ResolvedAt      *time.Time
}

// Open reports whether the alert still demands attention.
func (a *LowStockAlert) Open() bool {
	return a.Status == AlertActive || a.Status == AlertAcknowledged
}

// NewLowStockAlert constructs an ACTIVE alert snapshotting the item's
// quantity and threshold at creation time.
func NewLowStockAlert(itemID uuid.UUID, currentQuantity, minQuantity int, level AlertLevel) *LowStockAlert {
	return &LowStockAlert{
		ID:              uuid.New(),
		ItemID:          itemID,
		CurrentQuantity: currentQuantity,
		MinQuantity:     minQuantity,
		Level:           level,
		Status:          AlertActive,
		CreatedAt:       time.Now().UTC(),
	}
}
