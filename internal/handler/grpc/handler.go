package grpc

import (
	"google.golang.org/grpc"

	registrypb "github.com/MKhiriev/shielded-nft/api/proto/shieldednft/v1"
	"github.com/MKhiriev/shielded-nft/internal/logger"
	"github.com/MKhiriev/shielded-nft/internal/service"
	"github.com/MKhiriev/shielded-nft/internal/validators"
)

// Handler is the root gRPC transport handler. It implements
// [registrypb.RegistryServer] on top of the service layer.
type Handler struct {
	registrypb.UnimplementedRegistryServer

	services  *service.Services
	validator validators.Validator

	logger *logger.Logger
}

// NewHandler constructs a [Handler] with the provided service container and
// logger.
func NewHandler(services *service.Services, logger *logger.Logger) *Handler {
	logger.Debug().Msg("gRPC handler created")
	return &Handler{
		services:  services,
		validator: validators.NewNFTValidator(),
		logger:    logger,
	}
}

// Register attaches the registry service to s.
func (h *Handler) Register(s grpc.ServiceRegistrar) {
	registrypb.RegisterRegistryServer(s, h)
}

// ServerOptions returns the interceptors every registry server runs with.
func (h *Handler) ServerOptions() []grpc.ServerOption {
	return []grpc.ServerOption{
		grpc.ChainUnaryInterceptor(h.withTraceID, h.withLogging),
	}
}
