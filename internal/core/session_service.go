package core

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"go.uber.org/zap"

	"github.com/starterkart/starterkart-backend/pkg/slot"
)

var _ SessionService = (*SessionFlag)(nil)

// SessionFlag is the administrator display gate. The flag is mirrored in the session slot,
// which holds the marker "true" while a session is active and is absent otherwise.
// It performs no credential checks; see CheckCredentials.
type SessionFlag struct {
	mu     sync.RWMutex
	store  slot.Store
	logger *zap.Logger
	admin  bool
	ready  bool
}

// NewSessionFlag creates a session flag over the given slot store.
func NewSessionFlag(store slot.Store, logger *zap.Logger) *SessionFlag {
	return &SessionFlag{store: store, logger: logger}
}

// Hydrate sets the flag from the presence of the persisted marker.
func (s *SessionFlag) Hydrate(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	marker, err := s.store.Get(ctx, slot.SessionKey)
	switch {
	case errors.Is(err, slot.ErrSlotEmpty):
		s.admin = false
	case err != nil:
		return fmt.Errorf("failed to read session slot: %w", err)
	default:
		s.admin = string(marker) == slot.SessionMarker
	}
	s.ready = true
	s.logger.Info("Session flag loaded", zap.Bool("admin", s.admin))
	return nil
}

// Login raises the flag and writes the marker.
func (s *SessionFlag) Login(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.ready {
		return ErrNotReady
	}
	s.admin = true
	if err := s.store.Set(ctx, slot.SessionKey, []byte(slot.SessionMarker)); err != nil {
		return fmt.Errorf("%w: %w", ErrPersist, err)
	}
	return nil
}

// Logout clears the flag and removes the marker.
func (s *SessionFlag) Logout(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.ready {
		return ErrNotReady
	}
	s.admin = false
	if err := s.store.Delete(ctx, slot.SessionKey); err != nil {
		return fmt.Errorf("%w: %w", ErrPersist, err)
	}
	return nil
}

// IsAdmin reports the in-memory flag. It is false until Hydrate has run.
func (s *SessionFlag) IsAdmin() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.admin
}
