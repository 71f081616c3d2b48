// Package kvstore is the persistence boundary for per-profile browser-like
// state: named slots holding opaque JSON documents. No transactions, no
// expiry; concurrent writers to the same slot are last-writer-wins.
package kvstore

import (
	"context"

	"github.com/google/uuid"
)

// Slot names. The cart slot holds the line item list, favorites a list of
// tour ids, user a signed-in profile snapshot.
const (
	SlotCart      = "cart"
	SlotUser      = "user"
	SlotFavorites = "favorites"
)

type Store interface {
	// Get unmarshals the slot value into dest and reports whether the slot
	// existed. A missing slot leaves dest untouched.
	Get(ctx context.Context, profileID uuid.UUID, slot string, dest any) (bool, error)
	// Set replaces the slot value. The write is durable when Set returns.
	Set(ctx context.Context, profileID uuid.UUID, slot string, value any) error
	// Remove deletes the slot. Removing an absent slot is a no-op.
	Remove(ctx context.Context, profileID uuid.UUID, slot string) error
}
