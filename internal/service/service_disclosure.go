package service

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/shielded-nft/internal/crypto"
	"github.com/MKhiriev/shielded-nft/internal/logger"
	"github.com/MKhiriev/shielded-nft/internal/metrics"
	"github.com/MKhiriev/shielded-nft/internal/store"
	"github.com/MKhiriev/shielded-nft/internal/validators"
	"github.com/MKhiriev/shielded-nft/models"
)

// disclosureService is the concrete implementation of DisclosureService.
// It never mutates the registry.
type disclosureService struct {
	registry store.Registry
	keys     crypto.ViewingKeyIssuer
	metrics  *metrics.Metrics

	logger *logger.Logger
}

func NewDisclosureService(registry store.Registry, keys crypto.ViewingKeyIssuer, m *metrics.Metrics, logger *logger.Logger) DisclosureService {
	return &disclosureService{
		registry: registry,
		keys:     keys,
		metrics:  m,
		logger:   logger,
	}
}

// Reveal implements DisclosureService.
//
// A key is checked against the owner at the time of the call, so a key
// issued to a previous owner stops working after a transfer. An invalid or
// expired key is not an error: the caller simply gets the redacted view.
func (s *disclosureService) Reveal(ctx context.Context, id models.AssetID, key models.ViewingKey) (revealed models.RevealedNFT, err error) {
	defer observe(s.metrics, opReveal, time.Now(), &err)
	log := logger.FromContext(ctx)

	nft, err := s.registry.Get(ctx, id)
	if err != nil {
		return models.RevealedNFT{}, err
	}

	if !nft.Metadata.Shielded {
		return nft.Reveal(), nil
	}

	if key == "" {
		return nft.Redact(), nil
	}

	if verifyErr := s.keys.Verify(key, nft.ID, nft.Owner); verifyErr != nil {
		log.Debug().
			Err(verifyErr).
			Str("func", "disclosureService.Reveal").
			Str("id", id.String()).
			Msg("viewing key rejected, returning redacted view")
		return nft.Redact(), nil
	}

	return nft.Reveal(), nil
}

// IssueViewingKey implements DisclosureService. Proving that the caller is
// owner is left to the transport layer.
func (s *disclosureService) IssueViewingKey(ctx context.Context, id models.AssetID, owner string) (key models.ViewingKey, err error) {
	defer observe(s.metrics, opIssueViewingKey, time.Now(), &err)
	log := logger.FromContext(ctx)

	if err := validators.ValidateAddress(owner); err != nil {
		return "", fmt.Errorf("%w: %w", ErrInvalidRecipient, err)
	}

	nft, err := s.registry.Get(ctx, id)
	if err != nil {
		return "", err
	}
	if nft.Owner != owner {
		return "", fmt.Errorf("%w: %s", ErrNotOwner, id)
	}

	key, err = s.keys.Issue(nft.ID, nft.Owner)
	if err != nil {
		log.Err(err).Str("func", "disclosureService.IssueViewingKey").Str("id", id.String()).Msg("failed to sign viewing key")
		return "", err
	}

	return key, nil
}

// List implements DisclosureService. Shielded assets are always redacted.
func (s *disclosureService) List(ctx context.Context, owner string) (list []models.RevealedNFT, err error) {
	defer observe(s.metrics, opList, time.Now(), &err)

	nfts, err := s.registry.List(ctx, owner)
	if err != nil {
		return nil, err
	}

	list = make([]models.RevealedNFT, 0, len(nfts))
	for _, nft := range nfts {
		if nft.Metadata.Shielded {
			list = append(list, nft.Redact())
			continue
		}
		list = append(list, nft.Reveal())
	}

	return list, nil
}
