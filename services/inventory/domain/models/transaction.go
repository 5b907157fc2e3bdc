package models

import (
	"time"

	"github.com/google/uuid"
)

// TransactionType distinguishes the two movement directions.
type TransactionType string

const (
	// TransactionCheckout removes units from stock and stays ACTIVE until returned.
	TransactionCheckout TransactionType = "CHECKOUT"
	// TransactionCheckin adds units to stock and is settled on creation.
	TransactionCheckin TransactionType = "CHECKIN"
)

// TransactionStatus is the lifecycle state of a stock transaction.
// The only transition is ACTIVE → COMPLETED, for CHECKOUT records, exactly once.
type TransactionStatus string

const (
	TransactionActive    TransactionStatus = "ACTIVE"
	TransactionCompleted TransactionStatus = "COMPLETED"
)

// StockTransaction is an entry in the append-only movement ledger. Once
// created it is immutable except for Status, ReturnedAt, ConditionOnReturn,
// and Notes.
type StockTransaction struct {
	ID                uuid.UUID
	ItemID            uuid.UUID
	UserID            uuid.UUID
	Type              TransactionType
	Quantity          int
	Status            TransactionStatus
	DueDate           *time.Time
	LocationUsed      string
	ConditionOnReturn string
	Notes             string
	CreatedAt         time.Time
	ReturnedAt        *time.Time
}

// SignedDelta returns the quantity change this movement applies to its item:
// negative for CHECKOUT, positive for CHECKIN.
func (t *StockTransaction) SignedDelta() int {
	if t.Type == TransactionCheckout {
		return -t.Quantity
	}
	return t.Quantity
}

// Returnable reports whether the transaction can still be completed:
// only ACTIVE CHECKOUT records return units to stock. CHECKIN movements are
// terminal on creation.
func (t *StockTransaction) Returnable() bool {
	return t.Type == TransactionCheckout && t.Status == TransactionActive
}

// NewStockTransaction constructs a ledger entry in the ACTIVE state.
func NewStockTransaction(itemID, userID uuid.UUID, typ TransactionType, quantity int, dueDate *time.Time, locationUsed, notes string) *StockTransaction {
	return &StockTransaction{
		ID:           uuid.New(),
		ItemID:       itemID,
		UserID:       userID,
		Type:         typ,
		Quantity:     quantity,
		Status:       TransactionActive,
		DueDate:      dueDate,
		LocationUsed: locationUsed,
		Notes:        notes,
		CreatedAt:    time.Now().UTC(),
	}
}
