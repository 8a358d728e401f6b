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

type transferService struct {
	registry store.Registry
	metrics  *metrics.Metrics

	logger *logger.Logger
}

func NewTransferService(registry store.Registry, m *metrics.Metrics, logger *logger.Logger) TransferService {
	return &transferService{
		registry: registry,
		metrics:  m,
		logger:   logger,
	}
}

// Transfer implements TransferService. The lock check and the owner change
// happen inside one registry mutation, so a concurrent stake either lands
// before (and the transfer fails) or after (and stakes the new owner's
// asset).
func (s *transferService) Transfer(ctx context.Context, id models.AssetID, newOwner string) (err error) {
	defer observe(s.metrics, opTransfer, time.Now(), &err)
	log := logger.FromContext(ctx)

	if err := validators.ValidateAddress(newOwner); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidRecipient, err)
	}

	var previousOwner string
	_, err = s.registry.Mutate(ctx, id, func(nft *models.NFT) error {
		if nft.Lock.IsStaked() {
			return fmt.Errorf("%w: %s is staked", ErrAssetLocked, nft.ID)
		}
		previousOwner = nft.Owner
		nft.Owner = newOwner
		return nil
	})
	if err != nil {
		log.Debug().Err(err).Str("func", "transferService.Transfer").Str("id", id.String()).Msg("transfer rejected")
		return err
	}

	log.Info().
		Str("func", "transferService.Transfer").
		Str("id", id.String()).
		Str("from", previousOwner).
		Str("to", newOwner).
		Msg("asset transferred")

	return nil
}
