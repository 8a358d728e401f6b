// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the client side of the shielded NFT registry
// transports.
//
// The primary abstraction is [RegistryAdapter], which decouples the command
// line client from the underlying protocol. Two implementations ship with
// the package: HTTP/REST over resty ([NewHTTPRegistryAdapter]) and gRPC with
// the JSON codec ([NewGRPCRegistryAdapter]).
//
// Transport failures are mapped to the sentinel values in errors.go so that
// callers can use [errors.Is] regardless of the protocol (e.g. [ErrConflict]
// for HTTP 409 or gRPC FailedPrecondition).
package adapter

import (
	"context"

	"github.com/MKhiriev/shielded-nft/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/adapter_mock.go -package=mock

// RegistryAdapter is transport-agnostic access to a registry server.
type RegistryAdapter interface {
	// Version returns the server build version.
	Version(ctx context.Context) (string, error)

	// Mint creates an asset and returns its id with a viewing key for the
	// owner.
	Mint(ctx context.Context, req models.MintRequest) (models.MintResponse, error)

	// Transfer moves an unlocked asset to a new owner.
	Transfer(ctx context.Context, id models.AssetID, to string) error

	// View returns the asset, revealed when key unlocks it and redacted
	// otherwise. An empty key always yields the redacted view.
	View(ctx context.Context, id models.AssetID, key models.ViewingKey) (models.RevealedNFT, error)

	// List returns the public projections of the assets held by owner, or of
	// every asset when owner is empty.
	List(ctx context.Context, owner string) ([]models.RevealedNFT, error)

	// IssueViewingKey asks for a fresh viewing key on behalf of owner.
	IssueViewingKey(ctx context.Context, id models.AssetID, owner string) (models.ViewingKey, error)

	Stake(ctx context.Context, id models.AssetID) error
	Unstake(ctx context.Context, id models.AssetID) error

	// Airdrop clones the source asset to every recipient. Per-recipient
	// failures are reported in the result, not as an error.
	Airdrop(ctx context.Context, id models.AssetID, recipients []string) (models.AirdropResult, error)

	// Export returns the packet carrying the full record of id.
	Export(ctx context.Context, id models.AssetID) ([]byte, error)

	// Import registers the record carried by packet and returns its id.
	Import(ctx context.Context, packet []byte) (models.AssetID, error)

	// Close releases the underlying connection.
	Close() error
}
