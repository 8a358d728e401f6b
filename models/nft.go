// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package models holds the domain types shared by every layer of the
// shielded NFT registry: asset identifiers, shielded metadata, lock state,
// the asset record itself and the request/response shapes used by the
// transport adapters.
package models

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// ErrInvalidAssetID is returned by [ParseAssetID] when the input is not a
// canonical UUID string.
var ErrInvalidAssetID = errors.New("invalid asset identifier")

// AssetID is the opaque, globally unique identifier assigned to an NFT at
// mint time. It is the canonical lower-case text form of a UUID and never
// changes for the lifetime of the asset.
type AssetID string

// String implements fmt.Stringer.
func (id AssetID) String() string {
	return string(id)
}

// ParseAssetID validates s and returns it as an [AssetID].
// Only the canonical 36-character form is accepted; braces, URN prefixes and
// upper-case variants are rejected so that every id has exactly one spelling.
func ParseAssetID(s string) (AssetID, error) {
	parsed, err := uuid.Parse(s)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrInvalidAssetID, err)
	}
	if parsed.String() != s {
		return "", fmt.Errorf("%w: %q is not in canonical form", ErrInvalidAssetID, s)
	}

	return AssetID(s), nil
}

// ShieldedMetadata is the metadata envelope of an NFT.
//
// When Shielded is true, Description, ImageCID and Attributes are private:
// only a holder of a valid viewing key sees them. Name stays public.
// Attributes is an opaque blob; the registry never interprets it.
type ShieldedMetadata struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	ImageCID    string `json:"image_cid"`
	Attributes  []byte `json:"attributes"`
	Shielded    bool   `json:"shielded"`
}

// Clone returns a deep copy of m.
func (m ShieldedMetadata) Clone() ShieldedMetadata {
	clone := m
	if m.Attributes != nil {
		clone.Attributes = append([]byte{}, m.Attributes...)
	}
	return clone
}

// NFT is a single asset record stored in the registry.
//
// ID never changes after creation, Owner changes only through a transfer and
// Lock changes only through staking operations. LockMaturity is the advisory
// maturity chosen at mint time; it is applied when the asset is first staked.
type NFT struct {
	ID           AssetID          `json:"id"`
	Owner        string           `json:"owner"`
	Metadata     ShieldedMetadata `json:"metadata"`
	LockMaturity *Maturity        `json:"lock_maturity,omitempty"`
	Lock         LockState        `json:"lock"`
	CreatedAt    time.Time        `json:"created_at"`
}

// Clone returns a deep copy of n that shares no memory with the original.
func (n NFT) Clone() NFT {
	clone := n
	clone.Metadata = n.Metadata.Clone()
	clone.LockMaturity = n.LockMaturity.Clone()
	clone.Lock = n.Lock.Clone()
	return clone
}

// Reveal returns the full, unredacted projection of n.
func (n NFT) Reveal() RevealedNFT {
	description := n.Metadata.Description
	imageCID := n.Metadata.ImageCID

	return RevealedNFT{
		ID:          n.ID,
		Owner:       n.Owner,
		Name:        n.Metadata.Name,
		Shielded:    n.Metadata.Shielded,
		Description: &description,
		ImageCID:    &imageCID,
		Attributes:  n.Metadata.Clone().Attributes,
		Lock:        n.Lock.Clone(),
	}
}

// Redact returns the public projection of n: identifier, owner, name,
// shielding flag and lock state. Private fields are omitted.
func (n NFT) Redact() RevealedNFT {
	return RevealedNFT{
		ID:       n.ID,
		Owner:    n.Owner,
		Name:     n.Metadata.Name,
		Shielded: n.Metadata.Shielded,
		Redacted: true,
		Lock:     n.Lock.Clone(),
	}
}

// RevealedNFT is what the disclosure engine hands out. Description, ImageCID
// and Attributes are nil when Redacted is true.
type RevealedNFT struct {
	ID          AssetID   `json:"id"`
	Owner       string    `json:"owner"`
	Name        string    `json:"name"`
	Shielded    bool      `json:"shielded"`
	Redacted    bool      `json:"redacted"`
	Description *string   `json:"description,omitempty"`
	ImageCID    *string   `json:"image_cid,omitempty"`
	Attributes  []byte    `json:"attributes,omitempty"`
	Lock        LockState `json:"lock"`
}

// MintParams are the inputs of a mint operation.
type MintParams struct {
	Owner        string
	Metadata     ShieldedMetadata
	LockMaturity *Maturity
}

// ViewingKey is a credential that unlocks the shielded fields of one asset
// for its current owner. The empty value means "no credential".
type ViewingKey string
