package domain

import "errors"

// Sentinel errors for the inventory domain. Use errors.Is() to check these.
var (
	// ErrItemNotFound indicates the requested item does not exist.
	ErrItemNotFound = errors.New("item not found")

	// ErrTransactionNotFound indicates the requested stock transaction does not exist.
	ErrTransactionNotFound = errors.New("transaction not found")

	// ErrAlertNotFound indicates the requested low-stock alert does not exist.
	ErrAlertNotFound = errors.New("alert not found")

	// ErrInsufficientQuantity indicates a checkout asked for more units than
	// the item has on hand at the instant of approval.
	ErrInsufficientQuantity = errors.New("insufficient quantity")

	// ErrInvalidState indicates an attempted transition violates the entity's
	// lifecycle: completing a non-ACTIVE or non-CHECKOUT transaction,
	// acknowledging a non-ACTIVE alert, or an adjustment that would drive an
	// item's quantity negative.
	ErrInvalidState = errors.New("invalid state")

	// ErrForbidden indicates the actor lacks rights over a resource they do not own.
	ErrForbidden = errors.New("forbidden")

	// ErrConflict indicates transient store contention; the whole unit of work
	// may be retried a bounded number of times.
	ErrConflict = errors.New("conflict")

	// ErrActiveTransactions indicates an item cannot be deleted while ACTIVE
	// stock transactions reference it.
	ErrActiveTransactions = errors.New("item has active transactions")

	// ErrItemHasHistory indicates an item cannot be deleted because completed
	// stock transactions still reference it; the ledger is append-only and
	// deleting the item would orphan its entries.
	ErrItemHasHistory = errors.New("item has transaction history")

	// ErrInvalidMovement indicates a movement request with a bad type or
	// non-positive quantity.
	ErrInvalidMovement = errors.New("invalid movement")
)
