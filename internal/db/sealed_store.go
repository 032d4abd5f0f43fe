package db

import (
	"context"
	"errors"
	"fmt"

	"github.com/starterkart/starterkart-backend/internal/crypto"
	"github.com/starterkart/starterkart-backend/pkg/slot"
)

// ErrUnsealFailed is returned when a stored value cannot be decrypted with the configured key.
var ErrUnsealFailed = errors.New("failed to unseal slot value")

// SealedStore encrypts values with AES-256-GCM before handing them to the wrapped store.
// Keys are stored in the clear.
type SealedStore struct {
	inner slot.Store
	key   []byte
}

// NewSealedStore wraps inner so every value it holds is sealed with key.
func NewSealedStore(inner slot.Store, key []byte) (*SealedStore, error) {
	if inner == nil {
		return nil, errors.New("sealed store requires an inner store")
	}
	if len(key) != crypto.KeyLength {
		return nil, crypto.ErrInvalidKey
	}
	return &SealedStore{inner: inner, key: append([]byte(nil), key...)}, nil
}

func (s *SealedStore) Get(ctx context.Context, key string) ([]byte, error) {
	sealed, err := s.inner.Get(ctx, key)
	if err != nil {
		return nil, err
	}
	plain, err := crypto.Open(sealed, s.key)
	if err != nil {
		return nil, fmt.Errorf("%w: slot %q: %v", ErrUnsealFailed, key, err)
	}
	return plain, nil
}

func (s *SealedStore) Set(ctx context.Context, key string, value []byte) error {
	sealed, err := crypto.Seal(value, s.key)
	if err != nil {
		return fmt.Errorf("failed to seal slot %q: %w", key, err)
	}
	return s.inner.Set(ctx, key, sealed)
}

func (s *SealedStore) Delete(ctx context.Context, key string) error {
	return s.inner.Delete(ctx, key)
}

func (s *SealedStore) Close() error {
	return s.inner.Close()
}
