package service

import (
	"context"

	"github.com/MKhiriev/shielded-nft/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/services_mock.go -package=mock

// MintService creates new assets.
type MintService interface {
	// Mint validates params, assigns a fresh id and stores an unlocked
	// record owned by params.Owner.
	Mint(ctx context.Context, params models.MintParams) (models.AssetID, error)
}

// TransferService moves assets between owners.
type TransferService interface {
	// Transfer replaces the owner of an unlocked asset. Transferring to the
	// current owner succeeds without change.
	Transfer(ctx context.Context, id models.AssetID, newOwner string) error
}

// DisclosureService decides what a caller may see of an asset.
type DisclosureService interface {
	// Reveal returns the full record when the asset is unshielded or key is
	// a valid viewing key of the current owner, and the redacted projection
	// otherwise. An empty key means no credential.
	Reveal(ctx context.Context, id models.AssetID, key models.ViewingKey) (models.RevealedNFT, error)

	// IssueViewingKey signs a viewing key for the current owner of id.
	IssueViewingKey(ctx context.Context, id models.AssetID, owner string) (models.ViewingKey, error)

	// List returns the public projections of the assets of owner, or of all
	// assets when owner is empty.
	List(ctx context.Context, owner string) ([]models.RevealedNFT, error)
}

// StakingService drives the lock state machine.
type StakingService interface {
	Stake(ctx context.Context, id models.AssetID) error
	Unstake(ctx context.Context, id models.AssetID) error
}

// AirdropService mints copies of one asset to many recipients.
type AirdropService interface {
	// Airdrop mints a clone of the source asset for every recipient, in
	// order. Per-recipient failures are reported in the result; successes
	// are never rolled back.
	Airdrop(ctx context.Context, id models.AssetID, recipients []string) (models.AirdropResult, error)
}

// PacketService serializes assets for transport to another domain.
type PacketService interface {
	// Export encodes the full record of id as a packet.
	Export(ctx context.Context, id models.AssetID) ([]byte, error)

	// Import decodes and validates a packet. It does not touch the registry.
	Import(ctx context.Context, packet []byte) (models.NFT, error)

	// ImportAndInsert imports a packet and stores the record. A record with
	// the same id is rejected.
	ImportAndInsert(ctx context.Context, packet []byte) (models.NFT, error)
}

type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
}

// IDGenerator issues asset identifiers.
type IDGenerator interface {
	Generate() models.AssetID
}
