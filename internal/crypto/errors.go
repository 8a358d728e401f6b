package crypto

import "errors"

var (
	ErrInvalidViewingKey  = errors.New("invalid viewing key")
	ErrViewingKeyExpired  = errors.New("viewing key is expired")
	ErrInvalidParams      = errors.New("invalid crypto parameters")
	ErrCiphertextTooShort = errors.New("ciphertext too short")
)
