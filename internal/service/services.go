package service

import (
	"fmt"

	"github.com/MKhiriev/shielded-nft/internal/config"
	"github.com/MKhiriev/shielded-nft/internal/crypto"
	"github.com/MKhiriev/shielded-nft/internal/logger"
	"github.com/MKhiriev/shielded-nft/internal/metrics"
	"github.com/MKhiriev/shielded-nft/internal/store"
	"github.com/MKhiriev/shielded-nft/internal/utils"
)

// Services aggregates every engine of the registry. All engines share one
// Registry, which is the only state they have.
type Services struct {
	MintService       MintService
	TransferService   TransferService
	DisclosureService DisclosureService
	StakingService    StakingService
	AirdropService    AirdropService
	PacketService     PacketService
	AppInfoService    AppInfoService
}

func NewServices(registry store.Registry, cfg config.App, m *metrics.Metrics, logger *logger.Logger) (*Services, error) {
	keys, err := crypto.NewViewingKeyIssuer(cfg.ViewingKeyIssuer, cfg.ViewingKeyDuration, cfg.ViewingKeySignKey)
	if err != nil {
		return nil, fmt.Errorf("error creating viewing key issuer: %w", err)
	}

	appInfoService, err := NewAppInfoService(cfg, logger)
	if err != nil {
		return nil, err
	}

	ids := utils.NewUUIDGenerator()

	return &Services{
		MintService:       NewMintService(registry, ids, m, logger),
		TransferService:   NewTransferService(registry, m, logger),
		DisclosureService: NewDisclosureService(registry, keys, m, logger),
		StakingService:    NewStakingService(registry, cfg, m, logger),
		AirdropService:    NewAirdropService(registry, ids, m, logger),
		PacketService:     NewPacketService(registry, m, logger),
		AppInfoService:    appInfoService,
	}, nil
}
