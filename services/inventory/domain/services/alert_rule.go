// Package services contains stateless domain services for the inventory
// bounded context. Domain services enforce business rules that operate purely
// on domain types and have zero external dependencies beyond stdlib and the
// domain layer.
package services

import "github.com/jaiswal09/medi-sys-offline-sub001/services/inventory/domain/models"

// Classify maps an item's quantity against its configured minimum to an alert
// level, or "" when no alert applies:
//
//	quantity == 0                              → OUT_OF_STOCK
//	0 < quantity <= minQuantity/2              → CRITICAL
//	minQuantity/2 < quantity <= minQuantity    → LOW
//	quantity > minQuantity                     → "" (resolve any open alert)
//
// The CRITICAL comparison is quantity <= minQuantity * 0.5 with the tie going
// to CRITICAL; 2*quantity <= minQuantity is the exact integer form, so odd
// thresholds keep their half-unit boundary (minQuantity=5 → CRITICAL at 2,
// LOW at 3). A zero minQuantity leaves the CRITICAL and LOW bands empty, so
// only OUT_OF_STOCK or no alert apply.
func Classify(quantity, minQuantity int) models.AlertLevel {
	switch {
	case quantity == 0:
		return models.AlertLevelOutOfStock
	case quantity > minQuantity:
		return ""
	case 2*quantity <= minQuantity:
		return models.AlertLevelCritical
	default:
		return models.AlertLevelLow
	}
}
