package auth

import (
	"crypto/rand"
	"encoding/base64"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"jobboard/config"
)

func newTestCodec(t *testing.T, key string) *aesGCMCodec {
	t.Helper()
	codec, err := newAESGCMCodec([]byte(key), rand.Reader)
	require.NoError(t, err)

	return codec
}

func TestFieldCodec_RoundTrip(t *testing.T) {
	codec := newTestCodec(t, strings.Repeat("k", 32))

	phones := []string{"01012345678", "+20 115 555 0000", "", "٠١٠١٢٣٤٥٦٧٨", strings.Repeat("9", 512)}
	for _, phone := range phones {
		sealed, err := codec.Encrypt(phone)
		require.NoError(t, err)
		if phone != "" {
			assert.NotContains(t, sealed, phone)
		}

		opened, err := codec.Decrypt(sealed)
		require.NoError(t, err)
		assert.Equal(t, phone, opened)
	}
}

func TestFieldCodec_FreshNoncePerEncryption(t *testing.T) {
	codec := newTestCodec(t, strings.Repeat("k", 32))

	first, err := codec.Encrypt("01012345678")
	require.NoError(t, err)
	second, err := codec.Encrypt("01012345678")
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
}

func TestFieldCodec_DecryptFailsLoudly(t *testing.T) {
	codec := newTestCodec(t, strings.Repeat("k", 32))
	other := newTestCodec(t, strings.Repeat("o", 32))

	sealed, err := codec.Encrypt("01012345678")
	require.NoError(t, err)

	t.Run("wrong key", func(t *testing.T) {
		_, err := other.Decrypt(sealed)
		assert.ErrorIs(t, err, ErrCiphertextInvalid)
	})

	t.Run("tampered", func(t *testing.T) {
		raw, err := base64.RawURLEncoding.DecodeString(sealed)
		require.NoError(t, err)
		raw[len(raw)-1] ^= 0x01
		_, err = codec.Decrypt(base64.RawURLEncoding.EncodeToString(raw))
		assert.ErrorIs(t, err, ErrCiphertextInvalid)
	})

	t.Run("not base64", func(t *testing.T) {
		_, err := codec.Decrypt("U2FsdGVkX1+legacy/cipher==")
		assert.ErrorIs(t, err, ErrCiphertextInvalid)
	})

	t.Run("too short", func(t *testing.T) {
		_, err := codec.Decrypt("AAAA")
		assert.ErrorIs(t, err, ErrCiphertextInvalid)
	})
}

func TestFieldCodec_Fingerprint(t *testing.T) {
	codec := newTestCodec(t, strings.Repeat("k", 32))
	other := newTestCodec(t, strings.Repeat("o", 32))

	assert.Equal(t, codec.Fingerprint("01012345678"), codec.Fingerprint("01012345678"))
	assert.NotEqual(t, codec.Fingerprint("01012345678"), codec.Fingerprint("01012345679"))
	assert.NotEqual(t, codec.Fingerprint("01012345678"), other.Fingerprint("01012345678"))
	assert.Len(t, codec.Fingerprint("x"), 64)
}

func TestNewFieldCodec_RequiresKey(t *testing.T) {
	_, err := NewFieldCodec(&config.Config{})
	assert.Error(t, err)

	_, err = NewFieldCodec(&config.Config{Auth: &config.AuthConfig{EncryptionKey: strings.Repeat("k", 32)}})
	assert.NoError(t, err)
}
