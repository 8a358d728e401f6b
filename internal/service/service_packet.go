package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/MKhiriev/shielded-nft/internal/logger"
	"github.com/MKhiriev/shielded-nft/internal/metrics"
	"github.com/MKhiriev/shielded-nft/internal/store"
	"github.com/MKhiriev/shielded-nft/internal/validators"
	"github.com/MKhiriev/shielded-nft/models"
)

// packetService encodes and decodes inter-domain packets.
//
// Packets are JSON with a fixed field order, UTC timestamps and base64
// blobs, so exporting the same record twice yields identical bytes.
type packetService struct {
	registry store.Registry
	metrics  *metrics.Metrics

	logger *logger.Logger
}

func NewPacketService(registry store.Registry, m *metrics.Metrics, logger *logger.Logger) PacketService {
	return &packetService{
		registry: registry,
		metrics:  m,
		logger:   logger,
	}
}

// Export implements PacketService. The packet carries the unredacted
// record; protecting it in transit is the relayer's job.
func (s *packetService) Export(ctx context.Context, id models.AssetID) (packet []byte, err error) {
	defer observe(s.metrics, opExport, time.Now(), &err)
	log := logger.FromContext(ctx)

	nft, err := s.registry.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	packet, err = encodePacket(nft)
	if err != nil {
		log.Err(err).Str("func", "packetService.Export").Str("id", id.String()).Msg("failed to encode packet")
		return nil, err
	}

	log.Debug().Str("func", "packetService.Export").Str("id", id.String()).Int("size", len(packet)).Msg("asset exported")
	return packet, nil
}

// Import implements PacketService.
func (s *packetService) Import(ctx context.Context, packet []byte) (nft models.NFT, err error) {
	defer observe(s.metrics, opImport, time.Now(), &err)

	return decodePacket(packet)
}

// ImportAndInsert implements PacketService.
func (s *packetService) ImportAndInsert(ctx context.Context, packet []byte) (nft models.NFT, err error) {
	defer observe(s.metrics, opImport, time.Now(), &err)
	log := logger.FromContext(ctx)

	nft, err = decodePacket(packet)
	if err != nil {
		log.Debug().Err(err).Str("func", "packetService.ImportAndInsert").Msg("packet rejected")
		return models.NFT{}, err
	}

	if err := s.registry.Insert(ctx, nft); err != nil {
		log.Warn().Err(err).Str("func", "packetService.ImportAndInsert").Str("id", nft.ID.String()).Msg("failed to store imported asset")
		return models.NFT{}, err
	}

	log.Info().Str("func", "packetService.ImportAndInsert").Str("id", nft.ID.String()).Str("owner", nft.Owner).Msg("asset imported")
	return nft, nil
}

func encodePacket(nft models.NFT) ([]byte, error) {
	nft = nft.Clone()
	nft.CreatedAt = nft.CreatedAt.UTC()
	if nft.Lock.Since != nil {
		since := nft.Lock.Since.UTC()
		nft.Lock.Since = &since
	}

	return json.Marshal(models.Packet{
		Version: models.PacketVersion,
		Kind:    models.PacketKind,
		NFT:     nft,
	})
}

func decodePacket(packet []byte) (models.NFT, error) {
	if len(packet) == 0 {
		return models.NFT{}, fmt.Errorf("%w: empty packet", ErrMalformedPacket)
	}

	var p models.Packet
	if err := json.Unmarshal(packet, &p); err != nil {
		return models.NFT{}, fmt.Errorf("%w: %w", ErrMalformedPacket, err)
	}

	if p.Version != models.PacketVersion {
		return models.NFT{}, fmt.Errorf("%w: unsupported version %d", ErrMalformedPacket, p.Version)
	}
	if p.Kind != models.PacketKind {
		return models.NFT{}, fmt.Errorf("%w: unexpected kind %q", ErrMalformedPacket, p.Kind)
	}
	if _, err := models.ParseAssetID(string(p.NFT.ID)); err != nil {
		return models.NFT{}, fmt.Errorf("%w: %w", ErrMalformedPacket, err)
	}
	if err := validators.ValidateAddress(p.NFT.Owner); err != nil {
		return models.NFT{}, fmt.Errorf("%w: %w", ErrMalformedPacket, err)
	}
	if !p.NFT.Lock.Valid() {
		return models.NFT{}, fmt.Errorf("%w: invalid lock state", ErrMalformedPacket)
	}

	return p.NFT, nil
}
