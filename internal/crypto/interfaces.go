// Package crypto holds the credential and at-rest sealing primitives of the
// registry. It knows nothing about transport or storage layout.
package crypto

import "github.com/MKhiriev/shielded-nft/models"

//go:generate mockgen -source=interfaces.go -destination=../mock/crypto_mock.go -package=mock

// ViewingKeyIssuer issues and verifies viewing keys.
//
// A viewing key unlocks the shielded fields of exactly one asset, and only
// while the principal it was issued to still owns that asset.
type ViewingKeyIssuer interface {
	// Issue signs a new viewing key for asset id on behalf of owner.
	Issue(id models.AssetID, owner string) (models.ViewingKey, error)

	// Verify checks signature, issuer, expiry and scope of key and that it
	// was issued for id and owner. Returns ErrInvalidViewingKey or
	// ErrViewingKeyExpired on failure.
	Verify(key models.ViewingKey, id models.AssetID, owner string) error
}

// Sealer encrypts and authenticates small blobs at rest.
//
// The aad argument binds a ciphertext to its context (the asset id), so a
// sealed column copied to another row fails to open.
type Sealer interface {
	Seal(plaintext, aad []byte) ([]byte, error)
	Open(ciphertext, aad []byte) ([]byte, error)
}
