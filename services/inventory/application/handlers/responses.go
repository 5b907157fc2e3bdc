package handlers

import (
	"time"

	"github.com/google/uuid"

	"github.com/jaiswal09/medi-sys-offline-sub001/services/inventory/domain/models"
)

// ItemResponse is the item representation returned by all item endpoints.
type ItemResponse struct {
	ID          uuid.UUID `json:"id"           example:"123e4567-e89b-12d3-a456-426614174000"`
	Name        string    `json:"name"         example:"Surgical Gloves (M)"`
	Status      string    `json:"status"       example:"AVAILABLE"`
	Quantity    int       `json:"quantity"     example:"42"`
	MinQuantity int       `json:"min_quantity" example:"10"`
	MaxQuantity *int      `json:"max_quantity,omitempty" example:"100"`
	Location    string    `json:"location"     example:"Storage B2"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
} // @name ItemResponse

// TransactionResponse is the ledger entry representation.
type TransactionResponse struct {
	ID                uuid.UUID  `json:"id"`
	ItemID            uuid.UUID  `json:"item_id"`
	UserID            uuid.UUID  `json:"user_id"`
	Type              string     `json:"type"     example:"CHECKOUT"`
	Quantity          int        `json:"quantity" example:"2"`
	Status            string     `json:"status"   example:"ACTIVE"`
	DueDate           *time.Time `json:"due_date,omitempty"`
	LocationUsed      string     `json:"location_used,omitempty"`
	ConditionOnReturn string     `json:"condition_on_return,omitempty"`
	Notes             string     `json:"notes,omitempty"`
	CreatedAt         time.Time  `json:"created_at"`
	ReturnedAt        *time.Time `json:"returned_at,omitempty"`
} // @name TransactionResponse

// MovementResponse joins the created or completed transaction with the
// refreshed item.
type MovementResponse struct {
	Transaction TransactionResponse `json:"transaction"`
	Item        ItemResponse        `json:"item"`
} // @name MovementResponse

// AlertResponse is the low-stock alert representation.
type AlertResponse struct {
	ID              uuid.UUID  `json:"id"`
	ItemID          uuid.UUID  `json:"item_id"`
	CurrentQuantity int        `json:"current_quantity" example:"3"`
	MinQuantity     int        `json:"min_quantity"     example:"10"`
	Level           string     `json:"level"            example:"CRITICAL"`
	Status          string     `json:"status"           example:"ACTIVE"`
	AcknowledgedBy  *uuid.UUID `json:"acknowledged_by,omitempty"`
	CreatedAt       time.Time  `json:"created_at"`
	ResolvedAt      *time.Time `json:"resolved_at,omitempty"`
} // @name AlertResponse

// ErrorResponse is returned on all error responses.
type ErrorResponse struct {
	Error string `json:"error" example:"insufficient quantity"`
} // @name ErrorResponse

func toItemResponse(i *models.Item) ItemResponse {
	return ItemResponse{
		ID:          i.ID,
		Name:        i.Name.String(),
		Status:      string(i.Status),
		Quantity:    i.Quantity,
		MinQuantity: i.MinQuantity,
		MaxQuantity: i.MaxQuantity,
		Location:    i.Location,
		CreatedAt:   i.CreatedAt,
		UpdatedAt:   i.UpdatedAt,
	}
}

func toTransactionResponse(t *models.StockTransaction) TransactionResponse {
	return TransactionResponse{
		ID:                t.ID,
		ItemID:            t.ItemID,
		UserID:            t.UserID,
		Type:              string(t.Type),
		Quantity:          t.Quantity,
		Status:            string(t.Status),
		DueDate:           t.DueDate,
		LocationUsed:      t.LocationUsed,
		ConditionOnReturn: t.ConditionOnReturn,
		Notes:             t.Notes,
		CreatedAt:         t.CreatedAt,
		ReturnedAt:        t.ReturnedAt,
	}
}

func toAlertResponse(a *models.LowStockAlert) AlertResponse {
	return AlertResponse{
		ID:              a.ID,
		ItemID:          a.ItemID,
		CurrentQuantity: a.CurrentQuantity,
		MinQuantity:     a.MinQuantity,
		Level:           string(a.Level),
		Status:          string(a.Status),
		AcknowledgedBy:  a.AcknowledgedBy,
		CreatedAt:       a.CreatedAt,
		ResolvedAt:      a.ResolvedAt,
	}
}
