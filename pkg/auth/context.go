package auth

import (
	"context"
	"errors"

	"github.com/google/uuid"
)

// Role is the coarse permission level carried by an authenticated actor.
type Role string

const (
	// RoleAdmin may act on resources owned by other users (return another
	// user's checkout, delete items).
	RoleAdmin Role = "ADMIN"
	// RoleStaff may only act on their own transactions.
	RoleStaff Role = "STAFF"
)

// Actor is the authenticated identity performing a request.
type Actor struct {
	UserID uuid.UUID
	Role   Role
}

// CanOverrideOwnership reports whether the actor may operate on transactions
// they do not own.
func (a Actor) CanOverrideOwnership() bool {
	return a.Role == RoleAdmin
}

// contextKey is an unexported type to prevent key collisions in context.
type contextKey string

const actorKey contextKey = "actor"

// ErrActorNotFound is returned when no Actor exists in the request context.
// Handlers should return 401 when this error occurs.
var ErrActorNotFound = errors.New("actor not found in context")

// ActorFromCtx extracts the authenticated actor from the request context.
// Returns ErrActorNotFound if no actor is set (unauthenticated request).
func ActorFromCtx(ctx context.Context) (Actor, error) {
	actor, ok := ctx.Value(actorKey).(Actor)
	if !ok || actor.UserID == uuid.Nil {
		return Actor{}, ErrActorNotFound
	}
	return actor, nil
}

// WithActor returns a new context with the given actor attached.
// Used by authentication middleware after validating the session.
func WithActor(ctx context.Context, actor Actor) context.Context {
	return context.WithValue(ctx, actorKey, actor)
}
