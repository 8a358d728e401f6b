package grpc

import (
	"context"
	"time"

	"github.com/google/uuid"
	"google.golang.org/grpc"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"

	"github.com/MKhiriev/shielded-nft/internal/logger"
	"github.com/MKhiriev/shielded-nft/internal/utils"
)

// TraceIDKey is the metadata key carrying the trace id in both directions.
const TraceIDKey = "x-trace-id"

// withTraceID tags the call with the incoming trace id or a fresh one and
// echoes it in the response header.
func (h *Handler) withTraceID(ctx context.Context, req any, _ *grpc.UnaryServerInfo, next grpc.UnaryHandler) (any, error) {
	var traceID string
	if md, ok := metadata.FromIncomingContext(ctx); ok {
		if values := md.Get(TraceIDKey); len(values) > 0 {
			traceID = values[0]
		}
	}
	if traceID == "" {
		traceID = uuid.NewString()
	}

	l := h.logger.WithTraceID(traceID)
	ctx = utils.WithTraceID(l.WithContext(ctx), traceID)

	if err := grpc.SetHeader(ctx, metadata.Pairs(TraceIDKey, traceID)); err != nil {
		l.Debug().Err(err).Str("func", "*Handler.withTraceID").Msg("failed to set trace id header")
	}

	return next(ctx, req)
}

func (h *Handler) withLogging(ctx context.Context, req any, info *grpc.UnaryServerInfo, next grpc.UnaryHandler) (any, error) {
	start := time.Now()

	resp, err := next(ctx, req)

	logger.FromContext(ctx).Info().
		Str("method", info.FullMethod).
		Str("code", status.Code(err).String()).
		Dur("duration", time.Since(start)).
		Send()

	return resp, err
}
