package service

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/shielded-nft/internal/config"
	"github.com/MKhiriev/shielded-nft/internal/logger"
	"github.com/MKhiriev/shielded-nft/internal/metrics"
	"github.com/MKhiriev/shielded-nft/internal/store"
	"github.com/MKhiriev/shielded-nft/models"
)

// stakingService is the concrete implementation of StakingService.
//
//	Unlocked --Stake--> Staked(now, maturity) --Unstake--> Unlocked
type stakingService struct {
	registry store.Registry
	metrics  *metrics.Metrics

	// defaultMaturity applies to assets minted without a maturity marker.
	defaultMaturity models.Maturity

	// epoch is the wall-clock length of one maturity unit.
	epoch time.Duration

	// enforceMaturity rejects an unstake before the maturity window ends.
	enforceMaturity bool

	now func() time.Time

	logger *logger.Logger
}

func NewStakingService(registry store.Registry, cfg config.App, m *metrics.Metrics, logger *logger.Logger) StakingService {
	defaultMaturity := models.Maturity(cfg.DefaultLockMaturity)
	if defaultMaturity == 0 {
		defaultMaturity = models.DefaultLockMaturity
	}

	return &stakingService{
		registry:        registry,
		metrics:         m,
		defaultMaturity: defaultMaturity,
		epoch:           cfg.EpochDuration,
		enforceMaturity: cfg.EnforceMaturity,
		now:             time.Now,
		logger:          logger,
	}
}

// Stake implements StakingService.
func (s *stakingService) Stake(ctx context.Context, id models.AssetID) (err error) {
	defer observe(s.metrics, opStake, time.Now(), &err)
	log := logger.FromContext(ctx)

	updated, err := s.registry.Mutate(ctx, id, func(nft *models.NFT) error {
		if nft.Lock.IsStaked() {
			return fmt.Errorf("%w: %s", ErrAlreadyStaked, nft.ID)
		}

		maturity := s.defaultMaturity
		if nft.LockMaturity != nil {
			maturity = *nft.LockMaturity
		}
		nft.Lock = models.Staked(s.now().UTC(), maturity)
		return nil
	})
	if err != nil {
		return err
	}

	log.Info().
		Str("func", "stakingService.Stake").
		Str("id", id.String()).
		Uint64("maturity", uint64(*updated.Lock.Maturity)).
		Msg("asset staked")

	return nil
}

// Unstake implements StakingService. The mint-time maturity marker is kept.
func (s *stakingService) Unstake(ctx context.Context, id models.AssetID) (err error) {
	defer observe(s.metrics, opUnstake, time.Now(), &err)
	log := logger.FromContext(ctx)

	_, err = s.registry.Mutate(ctx, id, func(nft *models.NFT) error {
		if !nft.Lock.IsStaked() {
			return fmt.Errorf("%w: %s", ErrNotStaked, nft.ID)
		}

		if s.enforceMaturity {
			maturesAt, ok := nft.Lock.MaturesAt(s.epoch)
			if ok && s.now().Before(maturesAt) {
				return fmt.Errorf("%w: %s matures at %s", ErrMaturityNotReached, nft.ID, maturesAt.Format(time.RFC3339))
			}
		}

		nft.Lock = models.Unlocked()
		return nil
	})
	if err != nil {
		return err
	}

	log.Info().Str("func", "stakingService.Unstake").Str("id", id.String()).Msg("asset unstaked")
	return nil
}
