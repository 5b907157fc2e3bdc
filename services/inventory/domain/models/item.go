package models

import (
	"time"

	"github.com/google/uuid"
)

// ItemStatus is the administrative lifecycle state of an inventory item.
type ItemStatus string

const (
	ItemStatusAvailable     ItemStatus = "AVAILABLE"
	ItemStatusInMaintenance ItemStatus = "IN_MAINTENANCE"
	ItemStatusRetired       ItemStatus = "RETIRED"
)

// Item is the core aggregate for the inventory bounded context.
// Quantity is a running counter maintained in lock-step with the transaction
// ledger by the stock engine; it is never recomputed by summing movements
// (checkin quantities are recorded as movements too, so summation would
// double-count).
type Item struct {
	ID          uuid.UUID
	Name        ItemName
	Status      ItemStatus
	Quantity    int
	MinQuantity int
	MaxQuantity *int
	Location    string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// NewItem constructs a valid Item aggregate with generated ID and current timestamp.
// Quantity and minQuantity must be non-negative; the constructor is the only
// place quantity is set outside the stock engine's adjustment step.
func NewItem(name ItemName, quantity, minQuantity int, maxQuantity *int, location string) (*Item, error) {
	if quantity < 0 {
		return nil, errNegativeQuantity
	}
	if minQuantity < 0 {
		return nil, errNegativeMinQuantity
	}
	now := time.Now().UTC()
	return &Item{
		ID:          uuid.New(),
		Name:        name,
		Status:      ItemStatusAvailable,
		Quantity:    quantity,
		MinQuantity: minQuantity,
		MaxQuantity: maxQuantity,
		Location:    location,
		CreatedAt:   now,
		UpdatedAt:   now,
	}, nil
}
