package credstore

import "errors"

var (
	// ErrNotFound indicates no value is stored under the requested key.
	ErrNotFound = errors.New("credstore: key not found")

	// ErrInvalidKey indicates the encryption key has the wrong length.
	ErrInvalidKey = errors.New("credstore: encryption key must be 32 bytes")

	// ErrEncryptionFailed wraps failures while sealing a value.
	ErrEncryptionFailed = errors.New("credstore: encryption failed")

	// ErrDecryptionFailed wraps failures while opening a stored value.
	ErrDecryptionFailed = errors.New("credstore: decryption failed")

	// ErrInvalidCiphertext indicates a stored value is malformed.
	ErrInvalidCiphertext = errors.New("credstore: invalid ciphertext format")

	// ErrRedisNotReady indicates the Redis connection could not be established.
	ErrRedisNotReady = errors.New("credstore: redis is not ready")

	// ErrFailedToParseRedisConnString indicates an invalid Redis URL.
	ErrFailedToParseRedisConnString = errors.New("credstore: failed to parse redis connection string")
)
