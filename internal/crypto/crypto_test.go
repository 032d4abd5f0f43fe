package crypto

import (
	"bytes"
	"encoding/base64"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testKey() []byte {
	return bytes.Repeat([]byte{0x42}, KeyLength)
}

func TestSealOpenRoundTrip(t *testing.T) {
	plain := []byte(`{"services":[],"inquiries":[]}`)

	sealed, err := Seal(plain, testKey())
	require.NoError(t, err)
	assert.NotContains(t, string(sealed), "services")

	opened, err := Open(sealed, testKey())
	require.NoError(t, err)
	assert.Equal(t, plain, opened)
}

func TestSealUsesFreshNonce(t *testing.T) {
	a, err := Seal([]byte("same"), testKey())
	require.NoError(t, err)
	b, err := Seal([]byte("same"), testKey())
	require.NoError(t, err)
	assert.NotEqual(t, a, b)
}

func TestOpenRejectsTampering(t *testing.T) {
	sealed, err := Seal([]byte("hello"), testKey())
	require.NoError(t, err)

	raw, err := base64.StdEncoding.DecodeString(string(sealed))
	require.NoError(t, err)
	raw[len(raw)-1] ^= 0xff
	tampered := []byte(base64.StdEncoding.EncodeToString(raw))

	_, err = Open(tampered, testKey())
	assert.Error(t, err)
}

func TestOpenRejectsWrongKey(t *testing.T) {
	sealed, err := Seal([]byte("hello"), testKey())
	require.NoError(t, err)

	other := bytes.Repeat([]byte{0x01}, KeyLength)
	_, err = Open(sealed, other)
	assert.Error(t, err)
}

func TestOpenRejectsShortInput(t *testing.T) {
	_, err := Open([]byte(base64.StdEncoding.EncodeToString([]byte("abc"))), testKey())
	assert.Error(t, err)
}

func TestDecodeKey(t *testing.T) {
	t.Run("valid key", func(t *testing.T) {
		key, err := DecodeKey(base64.StdEncoding.EncodeToString(testKey()))
		require.NoError(t, err)
		assert.Len(t, key, KeyLength)
	})

	t.Run("wrong length", func(t *testing.T) {
		_, err := DecodeKey(base64.StdEncoding.EncodeToString([]byte("short")))
		assert.ErrorIs(t, err, ErrInvalidKey)
	})

	t.Run("not base64", func(t *testing.T) {
		_, err := DecodeKey("%%%")
		assert.Error(t, err)
	})

	t.Run("empty", func(t *testing.T) {
		_, err := DecodeKey("")
		assert.Error(t, err)
	})
}

func TestSealRejectsBadKey(t *testing.T) {
	_, err := Seal([]byte("x"), []byte("short"))
	assert.ErrorIs(t, err, ErrInvalidKey)
}
