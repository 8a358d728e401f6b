package service

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/shielded-nft/internal/logger"
	"github.com/MKhiriev/shielded-nft/internal/metrics"
	"github.com/MKhiriev/shielded-nft/internal/store"
	"github.com/MKhiriev/shielded-nft/models"
)

// airdropService clones one asset to many recipients through the mint
// primitive.
type airdropService struct {
	registry store.Registry
	minter   *mintService
	metrics  *metrics.Metrics

	logger *logger.Logger
}

func NewAirdropService(registry store.Registry, ids IDGenerator, m *metrics.Metrics, logger *logger.Logger) AirdropService {
	return &airdropService{
		registry: registry,
		minter:   newMintService(registry, ids, m, logger),
		metrics:  m,
		logger:   logger,
	}
}

// Airdrop implements AirdropService.
//
// The source is read once; each recipient is then an independent mint, so
// a failure for one recipient neither stops nor undoes the others. The
// source record is never modified.
func (s *airdropService) Airdrop(ctx context.Context, id models.AssetID, recipients []string) (result models.AirdropResult, err error) {
	defer observe(s.metrics, opAirdrop, time.Now(), &err)
	log := logger.FromContext(ctx)

	if len(recipients) == 0 {
		return models.AirdropResult{}, fmt.Errorf("%w: no recipients", ErrInvalidDataProvided)
	}

	source, err := s.registry.Get(ctx, id)
	if err != nil {
		return models.AirdropResult{}, err
	}

	result = models.AirdropResult{
		SourceID: source.ID,
		Outcomes: make([]models.AirdropOutcome, 0, len(recipients)),
	}

	var minted, failed int
	for _, recipient := range recipients {
		outcome := models.AirdropOutcome{Recipient: recipient}

		newID, mintErr := s.minter.mint(ctx, models.MintParams{
			Owner:        recipient,
			Metadata:     source.Metadata,
			LockMaturity: source.LockMaturity,
		})
		if mintErr != nil {
			outcome.Err = mintErr
			outcome.Error = mintErr.Error()
			failed++
		} else {
			outcome.ID = newID
			minted++
		}

		result.Outcomes = append(result.Outcomes, outcome)
	}

	s.metrics.AddAirdropRecipients(minted, failed)
	log.Info().
		Str("func", "airdropService.Airdrop").
		Str("source_id", id.String()).
		Int("minted", minted).
		Int("failed", failed).
		Msg("airdrop finished")

	return result, nil
}
