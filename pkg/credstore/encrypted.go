package credstore

import (
	"context"
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"errors"
	"io"

	"golang.org/x/crypto/hkdf"
)

const (
	// KeySize is the required encryption key length (AES-256).
	KeySize = 32

	// hkdfInfo provides domain separation for the derived key.
	hkdfInfo = "ballers-credstore-v1"
)

// Encrypted wraps another Store and transparently seals values with
// AES-256-GCM. The working key is derived from the supplied key via HKDF so
// the raw key material is never used directly as a cipher key.
type Encrypted struct {
	inner Store
	key   []byte
}

// NewEncrypted creates an encrypting wrapper around inner. The key must be
// exactly KeySize bytes.
func NewEncrypted(inner Store, key []byte) (*Encrypted, error) {
	if len(key) != KeySize {
		return nil, ErrInvalidKey
	}

	derived := make([]byte, KeySize)
	reader := hkdf.New(sha256.New, key, nil, []byte(hkdfInfo))
	if _, err := io.ReadFull(reader, derived); err != nil {
		return nil, errors.Join(ErrEncryptionFailed, err)
	}

	return &Encrypted{inner: inner, key: derived}, nil
}

// GenerateKey creates a new random key suitable for NewEncrypted.
func GenerateKey() ([]byte, error) {
	key := make([]byte, KeySize)
	if _, err := rand.Read(key); err != nil {
		return nil, err
	}
	return key, nil
}

func (e *Encrypted) Get(ctx context.Context, key string) (string, error) {
	sealed, err := e.inner.Get(ctx, key)
	if err != nil {
		return "", err
	}
	return e.open(sealed)
}

func (e *Encrypted) Set(ctx context.Context, key, value string) error {
	sealed, err := e.seal(value)
	if err != nil {
		return err
	}
	return e.inner.Set(ctx, key, sealed)
}

func (e *Encrypted) Remove(ctx context.Context, key string) error {
	return e.inner.Remove(ctx, key)
}

// seal encrypts plaintext and returns base64(nonce + ciphertext + tag).
func (e *Encrypted) seal(plaintext string) (string, error) {
	aead, err := e.aead()
	if err != nil {
		return "", errors.Join(ErrEncryptionFailed, err)
	}

	nonce := make([]byte, aead.NonceSize())
	if _, err := io.ReadFull(rand.Reader, nonce); err != nil {
		return "", errors.Join(ErrEncryptionFailed, err)
	}

	ciphertext := aead.Seal(nonce, nonce, []byte(plaintext), nil)
	return base64.StdEncoding.EncodeToString(ciphertext), nil
}

func (e *Encrypted) open(sealed string) (string, error) {
	raw, err := base64.StdEncoding.DecodeString(sealed)
	if err != nil {
		return "", errors.Join(ErrInvalidCiphertext, err)
	}

	aead, err := e.aead()
	if err != nil {
		return "", errors.Join(ErrDecryptionFailed, err)
	}

	nonceSize := aead.NonceSize()
	if len(raw) < nonceSize {
		return "", ErrInvalidCiphertext
	}

	nonce, ciphertext := raw[:nonceSize], raw[nonceSize:]
	plaintext, err := aead.Open(nil, nonce, ciphertext, nil)
	if err != nil {
		return "", errors.Join(ErrDecryptionFailed, err)
	}

	return string(plaintext), nil
}

func (e *Encrypted) aead() (cipher.AEAD, error) {
	block, err := aes.NewCipher(e.key)
	if err != nil {
		return nil, err
	}
	return cipher.NewGCM(block)
}

var _ Store = (*Encrypted)(nil)
