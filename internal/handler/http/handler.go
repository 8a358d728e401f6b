package http

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/MKhiriev/shielded-nft/internal/logger"
	"github.com/MKhiriev/shielded-nft/internal/service"
	"github.com/MKhiriev/shielded-nft/internal/utils"
	"github.com/MKhiriev/shielded-nft/internal/validators"
)

// Settings tune the HTTP transport.
type Settings struct {
	// RequestTimeout bounds the handling of one request. Zero disables it.
	RequestTimeout time.Duration

	// HashKey enables the HashSHA256 body integrity check when non-empty.
	HashKey string

	// Gatherer backs the /metrics endpoint. Nil disables the endpoint.
	Gatherer prometheus.Gatherer
}

type Handler struct {
	services  *service.Services
	validator validators.Validator
	settings  Settings

	logger *logger.Logger
}

func NewHandler(services *service.Services, settings Settings, logger *logger.Logger) *Handler {
	if settings.HashKey != "" {
		utils.InitHasherPool(settings.HashKey)
	}

	logger.Info().Msg("http handler created")
	return &Handler{
		services:  services,
		validator: validators.NewNFTValidator(),
		settings:  settings,
		logger:    logger,
	}
}
