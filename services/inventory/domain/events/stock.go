package events

import (
	"time"

	"github.com/google/uuid"
)

// Watermill topics published by the stock engine. Events are emitted through
// the transactional publisher, so they are only visible once the movement's
// unit of work commits.
const (
	TopicMovementRecorded = "inventory.movement.recorded"
	TopicAlertRaised      = "inventory.alert.raised"
	TopicAlertResolved    = "inventory.alert.resolved"
)

// MovementRecordedEvent is published after a stock movement (checkout,
// checkin, or return) commits. Consumers refresh the item read-model cache.
type MovementRecordedEvent struct {
	EventID       uuid.UUID `json:"event_id"` // Unique publish-time identifier for deduplication
	Version       int       `json:"version"`  // Schema version; increment on breaking changes
	TransactionID uuid.UUID `json:"transaction_id"`
	ItemID        uuid.UUID `json:"item_id"`
	UserID        uuid.UUID `json:"user_id"`
	Type          string    `json:"type"`
	Quantity      int       `json:"quantity"`
	NewQuantity   int       `json:"new_quantity"` // Item quantity after the movement
	OccurredAt    time.Time `json:"occurred_at"`
}

// AlertRaisedEvent is published when a movement creates or re-grades an open
// low-stock alert.
type AlertRaisedEvent struct {
	EventID         uuid.UUID `json:"event_id"`
	Version         int       `json:"version"`
	AlertID         uuid.UUID `json:"alert_id"`
	ItemID          uuid.UUID `json:"item_id"`
	Level           string    `json:"level"`
	CurrentQuantity int       `json:"current_quantity"`
	MinQuantity     int       `json:"min_quantity"`
	OccurredAt      time.Time `json:"occurred_at"`
}

// AlertResolvedEvent is published when a movement lifts an item back above
// its threshold and the open alert transitions to RESOLVED.
type AlertResolvedEvent struct {
	EventID    uuid.UUID `json:"event_id"`
	Version    int       `json:"version"`
	ItemID     uuid.UUID `json:"item_id"`
	OccurredAt time.Time `json:"occurred_at"`
}
