package models

import (
	"testing"

	"github.com/google/uuid"
)

func TestStockTransaction_SignedDelta(t *testing.T) {
	checkout := NewStockTransaction(uuid.New(), uuid.New(), TransactionCheckout, 3, nil, "", "")
	if got := checkout.SignedDelta(); got != -3 {
		t.Fatalf("checkout SignedDelta = %d, want -3", got)
	}

	checkin := NewStockTransaction(uuid.New(), uuid.New(), TransactionCheckin, 5, nil, "", "")
	if got := checkin.SignedDelta(); got != 5 {
		t.Fatalf("checkin SignedDelta = %d, want 5", got)
	}
}

func TestStockTransaction_Returnable(t *testing.T) {
	tests := []struct {
		name   string
		typ    TransactionType
		status TransactionStatus
		want   bool
	}{
		{"active checkout", TransactionCheckout, TransactionActive, true},
		{"completed checkout", TransactionCheckout, TransactionCompleted, false},
		{"active checkin", TransactionCheckin, TransactionActive, false},
		{"completed checkin", TransactionCheckin, TransactionCompleted, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			txn := &StockTransaction{Type: tt.typ, Status: tt.status}
			if got := txn.Returnable(); got != tt.want {
				t.Fatalf("Returnable() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestNewStockTransaction_Defaults(t *testing.T) {
	itemID, userID := uuid.New(), uuid.New()
	txn := NewStockTransaction(itemID, userID, TransactionCheckout, 2, nil, "OR 3", "urgent")

	if txn.ID == uuid.Nil {
		t.Fatal("expected generated ID")
	}
	if txn.Status != TransactionActive {
		t.Fatalf("expected status ACTIVE, got %s", txn.Status)
	}
	if txn.ItemID != itemID || txn.UserID != userID {
		t.Fatal("expected item and user IDs to be set")
	}
	if txn.ReturnedAt != nil {
		t.Fatal("expected ReturnedAt to be nil on creation")
	}
}

func TestLowStockAlert_Open(t *testing.T) {
	tests := []struct {
		status AlertStatus
		want   bool
	}{
		{AlertActive, true},
		{AlertAcknowledged, true},
		{AlertResolved, false},
	}

	for _, tt := range tests {
		t.Run(string(tt.status), func(t *testing.T) {
			a := &LowStockAlert{Status: tt.status}
			if got := a.Open(); got != tt.want {
				t.Fatalf("Open() = %v, want %v", got, tt.want)
			}
		})
	}
}
