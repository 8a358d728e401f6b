package adapter

import (
	"fmt"

	"github.com/MKhiriev/shielded-nft/internal/config"
	"github.com/MKhiriev/shielded-nft/internal/logger"
)

// NewRegistryAdapter returns the adapter for the configured transport.
func NewRegistryAdapter(cfg *config.ClientConfig, logger *logger.Logger) (RegistryAdapter, error) {
	switch cfg.Adapter.Transport {
	case config.TransportHTTP:
		return NewHTTPRegistryAdapter(cfg.Adapter, cfg.HashKey, logger)
	case config.TransportGRPC:
		return NewGRPCRegistryAdapter(cfg.Adapter, logger)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownTransport, cfg.Adapter.Transport)
	}
}
