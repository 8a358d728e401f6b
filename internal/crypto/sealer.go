// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"crypto/rand"
	"fmt"
	"io"

	"golang.org/x/crypto/argon2"
	"golang.org/x/crypto/chacha20poly1305"
)

// sealerSalt domain-separates keys derived by this package.
var sealerSalt = []byte("shielded-nft/sealer/v1")

// sealer is the XChaCha20-Poly1305 implementation of [Sealer].
// Output layout: nonce ‖ ciphertext.
type sealer struct {
	key []byte
}

// Argon2id parameters used to stretch the seal passphrase:
//   - time cost:   1 iteration
//   - memory cost: 64 MiB
//   - parallelism: 4 threads
//   - key length:  32 bytes (256 bits)
const (
	argonTime    = 1
	argonMemory  = 64 * 1024
	argonThreads = 4
	argonKeyLen  = chacha20poly1305.KeySize
)

// NewSealer derives a 256-bit key from passphrase with Argon2id and returns
// a [Sealer] using it.
func NewSealer(passphrase string) (Sealer, error) {
	if passphrase == "" {
		return nil, fmt.Errorf("%w: empty seal passphrase", ErrInvalidParams)
	}

	key := argon2.IDKey([]byte(passphrase), sealerSalt, argonTime, argonMemory, argonThreads, argonKeyLen)

	return &sealer{key: key}, nil
}

// Seal implements [Sealer]. A random 24-byte nonce is prepended to the
// ciphertext.
func (s *sealer) Seal(plaintext, aad []byte) ([]byte, error) {
	aead, err := chacha20poly1305.NewX(s.key)
	if err != nil {
		return nil, err
	}

	nonce := make([]byte, aead.NonceSize(), aead.NonceSize()+len(plaintext)+aead.Overhead())
	if _, err := io.ReadFull(rand.Reader, nonce); err != nil {
		return nil, err
	}

	return aead.Seal(nonce, nonce, plaintext, aad), nil
}

// Open implements [Sealer]. It fails if ciphertext was tampered with or was
// sealed under a different key or aad.
func (s *sealer) Open(ciphertext, aad []byte) ([]byte, error) {
	aead, err := chacha20poly1305.NewX(s.key)
	if err != nil {
		return nil, err
	}

	if len(ciphertext) < aead.NonceSize()+aead.Overhead() {
		return nil, ErrCiphertextTooShort
	}

	nonce, sealed := ciphertext[:aead.NonceSize()], ciphertext[aead.NonceSize():]
	plaintext, err := aead.Open(nil, nonce, sealed, aad)
	if err != nil {
		return nil, fmt.Errorf("error opening sealed data: %w", err)
	}

	return plaintext, nil
}
