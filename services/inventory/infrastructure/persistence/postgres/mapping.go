package postgres

import (
	"database/sql"
	"time"

	"github.com/google/uuid"

	"github.com/jaiswal09/medi-sys-offline-sub001/services/inventory/domain/models"
	"github.com/jaiswal09/medi-sys-offline-sub001/services/inventory/infrastructure/persistence/postgres/db"
)

func rowToItem(row db.Item) *models.Item {
	return &models.Item{
		ID:          row.ID,
		Name:        models.ItemName(row.Name),
		Status:      models.ItemStatus(row.Status),
		Quantity:    int(row.Quantity),
		MinQuantity: int(row.MinQuantity),
		MaxQuantity: int32Ptr(row.MaxQuantity),
		Location:    row.Location,
		CreatedAt:   row.CreatedAt,
		UpdatedAt:   row.UpdatedAt,
	}
}

func rowToTransaction(row db.StockTransaction) *models.StockTransaction {
	return &models.StockTransaction{
		ID:                row.ID,
		ItemID:            row.ItemID,
		UserID:            row.UserID,
		Type:              models.TransactionType(row.Type),
		Quantity:          int(row.Quantity),
		Status:            models.TransactionStatus(row.Status),
		DueDate:           timePtr(row.DueDate),
		LocationUsed:      row.LocationUsed,
		ConditionOnReturn: row.ConditionOnReturn,
		Notes:             row.Notes,
		CreatedAt:         row.CreatedAt,
		ReturnedAt:        timePtr(row.ReturnedAt),
	}
}

func rowToAlert(row db.LowStockAlert) *models.LowStockAlert {
	return &models.LowStockAlert{
		ID:              row.ID,
		ItemID:          row.ItemID,
		CurrentQuantity: int(row.CurrentQuantity),
		MinQuantity:     int(row.MinQuantity),
		Level:           models.AlertLevel(row.AlertLevel),
		Status:          models.AlertStatus(row.Status),
		AcknowledgedBy:  uuidPtr(row.AcknowledgedBy),
		CreatedAt:       row.CreatedAt,
		ResolvedAt:      timePtr(row.ResolvedAt),
	}
}

func nullTime(t *time.Time) sql.NullTime {
	if t == nil {
		return sql.NullTime{}
	}
	return sql.NullTime{Time: *t, Valid: true}
}

func timePtr(t sql.NullTime) *time.Time {
	if !t.Valid {
		return nil
	}
	v := t.Time
	return &v
}

func nullInt32(n *int) sql.NullInt32 {
	if n == nil {
		return sql.NullInt32{}
	}
	return sql.NullInt32{Int32: int32(*n), Valid: true}
}

func int32Ptr(n sql.NullInt32) *int {
	if !n.Valid {
		return nil
	}
	v := int(n.Int32)
	return &v
}

func nullUUID(id *uuid.UUID) uuid.NullUUID {
	if id == nil {
		return uuid.NullUUID{}
	}
	return uuid.NullUUID{UUID: *id, Valid: true}
}

func uuidPtr(id uuid.NullUUID) *uuid.UUID {
	if !id.Valid {
		return nil
	}
	v := id.UUID
	return &v
}
