// Package slot provides durable key-value slots holding text blobs.
//
// A slot is read whole and overwritten whole; there are no partial updates and no
// cross-key transactions. Several backends are available and share the same
// Store contract so callers never depend on where the bytes live.
package slot

import (
	"context"
	"errors"
)

// Well-known slot keys.
const (
	// ContentKey holds the serialized site document.
	ContentKey = "content"
	// SessionKey holds SessionMarker while an administrator session is active.
	SessionKey = "session"
	// SessionMarker is the literal value stored under SessionKey.
	SessionMarker = "true"
)

// ErrSlotEmpty is returned by Get when nothing is stored under the key.
var ErrSlotEmpty = errors.New("slot is empty")

// Store defines the contract for durable slot backends.
type Store interface {
	// Get returns the stored value, or ErrSlotEmpty if the slot is absent.
	Get(ctx context.Context, key string) ([]byte, error)
	// Set overwrites the slot with value.
	Set(ctx context.Context, key string, value []byte) error
	// Delete removes the slot. Deleting an absent slot is not an error.
	Delete(ctx context.Context, key string) error
	// Close releases backend resources.
	Close() error
}
