package handler

import (
	"github.com/MKhiriev/shielded-nft/internal/config"
	"github.com/MKhiriev/shielded-nft/internal/handler/grpc"
	"github.com/MKhiriev/shielded-nft/internal/handler/http"
	"github.com/MKhiriev/shielded-nft/internal/logger"
	"github.com/MKhiriev/shielded-nft/internal/service"
)

type Handlers struct {
	HTTP *http.Handler
	GRPC *grpc.Handler
}

// NewHandlers creates a transport handler for every configured listener.
// The HTTP request timeout defaults to cfg.RequestTimeout.
func NewHandlers(services *service.Services, cfg config.Server, settings http.Settings, logger *logger.Logger) (*Handlers, error) {
	logger.Info().Msg("creating new handlers...")

	handlers := &Handlers{}

	if cfg.HTTPAddress != "" {
		if settings.RequestTimeout == 0 {
			settings.RequestTimeout = cfg.RequestTimeout
		}
		handlers.HTTP = http.NewHandler(services, settings, logger)
	}
	if cfg.GRPCAddress != "" {
		handlers.GRPC = grpc.NewHandler(services, logger)
	}

	if handlers.HTTP == nil && handlers.GRPC == nil {
		return nil, errNoHandlersAreCreated
	}

	return handlers, nil
}
