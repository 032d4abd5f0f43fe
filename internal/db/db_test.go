package db

import (
	"context"
	"encoding/base64"
	"path/filepath"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/starterkart/starterkart-backend/internal/config"
	"github.com/starterkart/starterkart-backend/internal/crypto"
	"github.com/starterkart/starterkart-backend/pkg/slot"
)

func testKey() []byte {
	key := make([]byte, crypto.KeyLength)
	for i := range key {
		key[i] = byte(i)
	}
	return key
}

func TestSealedStoreRoundTrip(t *testing.T) {
	ctx := context.Background()
	inner := slot.NewMemoryStore()
	store, err := NewSealedStore(inner, testKey())
	require.NoError(t, err)

	require.NoError(t, store.Set(ctx, slot.ContentKey, []byte(`{"services":[]}`)))

	raw, err := inner.Get(ctx, slot.ContentKey)
	require.NoError(t, err)
	assert.NotContains(t, string(raw), "services", "inner store must only see ciphertext")

	got, err := store.Get(ctx, slot.ContentKey)
	require.NoError(t, err)
	assert.Equal(t, `{"services":[]}`, string(got))
}

func TestSealedStorePassesThroughEmptySlot(t *testing.T) {
	store, err := NewSealedStore(slot.NewMemoryStore(), testKey())
	require.NoError(t, err)

	_, err = store.Get(context.Background(), slot.SessionKey)
	assert.ErrorIs(t, err, slot.ErrSlotEmpty)
}

func TestSealedStoreRejectsForeignValues(t *testing.T) {
	ctx := context.Background()
	inner := slot.NewMemoryStore()
	require.NoError(t, inner.Set(ctx, slot.ContentKey, []byte("plain text")))

	store, err := NewSealedStore(inner, testKey())
	require.NoError(t, err)

	_, err = store.Get(ctx, slot.ContentKey)
	assert.ErrorIs(t, err, ErrUnsealFailed)
}

func TestNewSealedStoreValidates(t *testing.T) {
	_, err := NewSealedStore(nil, testKey())
	assert.Error(t, err)

	_, err = NewSealedStore(slot.NewMemoryStore(), []byte("short"))
	assert.ErrorIs(t, err, crypto.ErrInvalidKey)
}

func TestOpenSlotStoreFile(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "slots")
	cfg := &config.Config{SlotBackend: config.BackendFile, SlotDir: dir}

	store, err := OpenSlotStore(context.Background(), cfg, zap.NewNop())
	require.NoError(t, err)
	defer store.Close()

	assert.IsType(t, &slot.FileStore{}, store)
	require.NoError(t, store.Set(context.Background(), slot.SessionKey, []byte(slot.SessionMarker)))
	assert.FileExists(t, filepath.Join(dir, "session.slot"))
}

func TestOpenSlotStoreMemorySealed(t *testing.T) {
	cfg := &config.Config{
		SlotBackend:       config.BackendMemory,
		SlotEncryptionKey: base64.StdEncoding.EncodeToString(testKey()),
	}

	store, err := OpenSlotStore(context.Background(), cfg, zap.NewNop())
	require.NoError(t, err)
	defer store.Close()

	assert.IsType(t, &SealedStore{}, store)
}

func TestOpenSlotStoreBadKey(t *testing.T) {
	cfg := &config.Config{SlotBackend: config.BackendMemory, SlotEncryptionKey: "not-base64!"}

	_, err := OpenSlotStore(context.Background(), cfg, zap.NewNop())
	assert.Error(t, err)
}

func TestOpenSlotStoreRedis(t *testing.T) {
	mr := miniredis.RunT(t)
	cfg := &config.Config{SlotBackend: config.BackendRedis, RedisAddr: mr.Addr(), SlotNamespace: "sk:"}

	store, err := OpenSlotStore(context.Background(), cfg, zap.NewNop())
	require.NoError(t, err)
	defer store.Close()

	require.NoError(t, store.Set(context.Background(), slot.SessionKey, []byte(slot.SessionMarker)))
	got, err := mr.Get("sk:session")
	require.NoError(t, err)
	assert.Equal(t, slot.SessionMarker, got)
}

func TestOpenSlotStoreUnknownBackend(t *testing.T) {
	_, err := OpenSlotStore(context.Background(), &config.Config{SlotBackend: "tape"}, zap.NewNop())
	assert.Error(t, err)
}
