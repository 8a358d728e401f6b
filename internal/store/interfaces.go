package store

import (
	"context"

	"github.com/MKhiriev/shielded-nft/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/registry_mock.go -package=mock

// MutateFunc changes a record in place. Returning an error aborts the
// mutation and leaves the stored record untouched.
type MutateFunc func(nft *models.NFT) error

// Registry is the single source of truth for asset records.
//
// Every method is safe for concurrent use. Mutations are serialized:
// Mutate runs fn while holding exclusive access to the record, so a
// check-then-write inside fn is atomic. Readers never observe a partially
// mutated record, and returned records share no memory with the registry.
type Registry interface {
	// Insert stores a new record. Returns ErrDuplicateIdentifier if the id is
	// taken and ErrInvalidRecord if the id or owner is malformed.
	Insert(ctx context.Context, nft models.NFT) error

	// Get returns a snapshot of the record or ErrNotFound.
	Get(ctx context.Context, id models.AssetID) (models.NFT, error)

	// Mutate applies fn to the record and persists the result only when fn
	// returns nil. The id must not be changed by fn.
	Mutate(ctx context.Context, id models.AssetID, fn MutateFunc) (models.NFT, error)

	// List returns snapshots in creation order. An empty owner lists all.
	List(ctx context.Context, owner string) ([]models.NFT, error)
}

// ErrorClassificator tells retryable driver errors apart from permanent
// ones and detects unique-key violations.
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
	IsDuplicate(err error) bool
}
