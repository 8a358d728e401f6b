package grpc

import (
	"context"
	"errors"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/MKhiriev/shielded-nft/internal/app"
	"github.com/MKhiriev/shielded-nft/internal/logger"
	"github.com/MKhiriev/shielded-nft/internal/service"
	"github.com/MKhiriev/shielded-nft/internal/store"
)

var errorCodeMap = map[error]codes.Code{
	service.ErrInvalidDataProvided: codes.InvalidArgument,
	service.ErrInvalidRecipient:    codes.InvalidArgument,
	service.ErrMalformedPacket:     codes.InvalidArgument,
	service.ErrAssetLocked:         codes.FailedPrecondition,
	service.ErrAlreadyStaked:       codes.FailedPrecondition,
	service.ErrNotStaked:           codes.FailedPrecondition,
	service.ErrMaturityNotReached:  codes.FailedPrecondition,
	service.ErrNotOwner:            codes.PermissionDenied,

	store.ErrNotFound:            codes.NotFound,
	store.ErrDuplicateIdentifier: codes.AlreadyExists,
	store.ErrInvalidRecord:       codes.InvalidArgument,

	context.Canceled:         codes.Canceled,
	context.DeadlineExceeded: codes.DeadlineExceeded,
}

func codeFromError(err error) codes.Code {
	for target, code := range errorCodeMap {
		if errors.Is(err, target) {
			return code
		}
	}
	return codes.Internal
}

// statusError converts a service error into a gRPC status. Internal
// failures are logged and returned without details.
func statusError(ctx context.Context, fn string, err error) error {
	log := logger.FromContext(ctx)

	code := codeFromError(err)
	if code == codes.Internal {
		log.Err(err).Str("func", fn).Msg("internal error")
		return status.Error(codes.Internal, app.MsgInternalServerError)
	}

	log.Debug().Err(err).Str("func", fn).Str("code", code.String()).Msg("request rejected")
	return status.Error(code, err.Error())
}

// invalidArgument reports a request that failed validation.
func invalidArgument(err error) error {
	return status.Error(codes.InvalidArgument, err.Error())
}
