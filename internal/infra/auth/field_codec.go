package auth

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/hmac"
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"encoding/hex"
	"io"

	"jobboard/config"
	"jobboard/internal/domain/service"
	"jobboard/internal/errors"

	"golang.org/x/crypto/hkdf"
)

const (
	fieldKeySize       = 32
	encryptionKeyInfo  = "jobboard field encryption v1"
	fingerprintKeyInfo = "jobboard field fingerprint v1"
)

// ErrCiphertextInvalid is returned when a value cannot be opened with the configured key.
var ErrCiphertextInvalid = errors.New("ciphertext is malformed or was not produced with this key")

// aesGCMCodec seals fields with AES-256-GCM. Output is base64(nonce || ciphertext || tag).
type aesGCMCodec struct {
	aead           cipher.AEAD
	fingerprintKey []byte
	random         io.Reader
}

// NewFieldCodec derives independent encryption and fingerprint keys from the configured master key.
func NewFieldCodec(cfg *config.Config) (service.FieldCodec, error) {
	if cfg.Auth == nil || len(cfg.Auth.EncryptionKey) == 0 {
		return nil, errors.New("field encryption key must be provided")
	}

	return newAESGCMCodec([]byte(cfg.Auth.EncryptionKey), rand.Reader)
}

func newAESGCMCodec(masterKey []byte, random io.Reader) (*aesGCMCodec, error) {
	encKey, err := deriveKey(masterKey, encryptionKeyInfo)
	if err != nil {
		return nil, err
	}
	fpKey, err := deriveKey(masterKey, fingerprintKeyInfo)
	if err != nil {
		return nil, err
	}

	block, err := aes.NewCipher(encKey)
	if err != nil {
		return nil, errors.Wrap(err, "create aes cipher")
	}
	aead, err := cipher.NewGCM(block)
	if err != nil {
		return nil, errors.Wrap(err, "create gcm")
	}

	return &aesGCMCodec{
		aead:           aead,
		fingerprintKey: fpKey,
		random:         random,
	}, nil
}

func deriveKey(masterKey []byte, info string) ([]byte, error) {
	key := make([]byte, fieldKeySize)
	if _, err := io.ReadFull(hkdf.New(sha256.New, masterKey, nil, []byte(info)), key); err != nil {
		return nil, errors.Wrap(err, "derive key")
	}

	return key, nil
}

// Encrypt seals the plaintext with a fresh random nonce.
func (c *aesGCMCodec) Encrypt(plaintext string) (string, error) {
	nonce := make([]byte, c.aead.NonceSize())
	if _, err := io.ReadFull(c.random, nonce); err != nil {
		return "", errors.Wrap(err, "generate nonce")
	}

	sealed := c.aead.Seal(nonce, nonce, []byte(plaintext), nil)

	return base64.RawURLEncoding.EncodeToString(sealed), nil
}

// Decrypt opens a value produced by Encrypt. Any tampering fails authentication.
func (c *aesGCMCodec) Decrypt(ciphertext string) (string, error) {
	raw, err := base64.RawURLEncoding.DecodeString(ciphertext)
	if err != nil {
		return "", errors.WithStack(ErrCiphertextInvalid)
	}
	if len(raw) < c.aead.NonceSize()+c.aead.Overhead() {
		return "", errors.WithStack(ErrCiphertextInvalid)
	}

	nonce, sealed := raw[:c.aead.NonceSize()], raw[c.aead.NonceSize():]
	plaintext, err := c.aead.Open(nil, nonce, sealed, nil)
	if err != nil {
		return "", errors.WithStack(ErrCiphertextInvalid)
	}

	return string(plaintext), nil
}

// Fingerprint returns hex(HMAC-SHA256(fingerprintKey, plaintext)).
func (c *aesGCMCodec) Fingerprint(plaintext string) string {
	mac := hmac.New(sha256.New, c.fingerprintKey)
	mac.Write([]byte(plaintext))

	return hex.EncodeToString(mac.Sum(nil))
}
