package service

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/shielded-nft/internal/logger"
	"github.com/MKhiriev/shielded-nft/internal/metrics"
	"github.com/MKhiriev/shielded-nft/internal/store"
	"github.com/MKhiriev/shielded-nft/internal/validators"
	"github.com/MKhiriev/shielded-nft/models"
)

// mintService is the concrete implementation of MintService.
type mintService struct {
	registry store.Registry
	ids      IDGenerator
	metrics  *metrics.Metrics

	now func() time.Time

	logger *logger.Logger
}

// NewMintService constructs a MintService that stores new assets in
// registry under ids drawn from ids.
func NewMintService(registry store.Registry, ids IDGenerator, m *metrics.Metrics, logger *logger.Logger) MintService {
	return newMintService(registry, ids, m, logger)
}

func newMintService(registry store.Registry, ids IDGenerator, m *metrics.Metrics, logger *logger.Logger) *mintService {
	return &mintService{
		registry: registry,
		ids:      ids,
		metrics:  m,
		now:      time.Now,
		logger:   logger,
	}
}

// Mint implements MintService.
func (s *mintService) Mint(ctx context.Context, params models.MintParams) (id models.AssetID, err error) {
	defer observe(s.metrics, opMint, time.Now(), &err)

	return s.mint(ctx, params)
}

// mint is the primitive shared with the airdrop engine. The new record is
// always unlocked; the maturity marker is copied, never applied.
func (s *mintService) mint(ctx context.Context, params models.MintParams) (models.AssetID, error) {
	log := logger.FromContext(ctx)

	if err := validators.ValidateAddress(params.Owner); err != nil {
		return "", fmt.Errorf("%w: %w", ErrInvalidRecipient, err)
	}
	if params.Metadata.Name == "" {
		return "", fmt.Errorf("%w: empty name", ErrInvalidDataProvided)
	}
	if len(params.Metadata.Name) > validators.MaxNameLength {
		return "", fmt.Errorf("%w: name is longer than %d bytes", ErrInvalidDataProvided, validators.MaxNameLength)
	}

	nft := models.NFT{
		ID:           s.ids.Generate(),
		Owner:        params.Owner,
		Metadata:     params.Metadata.Clone(),
		LockMaturity: params.LockMaturity.Clone(),
		Lock:         models.Unlocked(),
		CreatedAt:    s.now().UTC(),
	}

	if err := s.registry.Insert(ctx, nft); err != nil {
		log.Err(err).Str("func", "mintService.mint").Str("id", nft.ID.String()).Msg("failed to store minted asset")
		return "", err
	}

	log.Info().
		Str("func", "mintService.mint").
		Str("id", nft.ID.String()).
		Str("owner", nft.Owner).
		Bool("shielded", nft.Metadata.Shielded).
		Msg("asset minted")

	return nft.ID, nil
}
