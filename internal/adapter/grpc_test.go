package adapter

import (
	"context"
	"net"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/grpc/test/bufconn"

	"github.com/MKhiriev/shielded-nft/internal/config"
	myGRPC "github.com/MKhiriev/shielded-nft/internal/handler/grpc"
	"github.com/MKhiriev/shielded-nft/internal/logger"
	"github.com/MKhiriev/shielded-nft/internal/metrics"
	"github.com/MKhiriev/shielded-nft/internal/service"
	"github.com/MKhiriev/shielded-nft/internal/store"
	"github.com/MKhiriev/shielded-nft/models"
)

func newTestServices(t *testing.T) *service.Services {
	t.Helper()

	services, err := service.NewServices(store.NewMemoryRegistry(), config.App{
		Version:            "test",
		ViewingKeySignKey:  "0123456789abcdef0123456789abcdef",
		ViewingKeyIssuer:   "shielded-nft",
		ViewingKeyDuration: time.Hour,
		EpochDuration:      time.Hour,
	}, metrics.New(prometheus.NewRegistry()), logger.Nop())
	require.NoError(t, err)

	return services
}

// exerciseAdapter runs the same scenario over any transport.
func exerciseAdapter(t *testing.T, a RegistryAdapter) {
	t.Helper()
	ctx := context.Background()

	minted, err := a.Mint(ctx, models.MintRequest{Owner: "alice", Name: "Art", Description: "hidden"})
	require.NoError(t, err)

	nft, err := a.View(ctx, minted.ID, "")
	require.NoError(t, err)
	assert.True(t, nft.Redacted)

	nft, err = a.View(ctx, minted.ID, minted.ViewingKey)
	require.NoError(t, err)
	assert.False(t, nft.Redacted)

	require.NoError(t, a.Stake(ctx, minted.ID))
	assert.ErrorIs(t, a.Transfer(ctx, minted.ID, "bob"), ErrConflict)
	require.NoError(t, a.Unstake(ctx, minted.ID))
	require.NoError(t, a.Transfer(ctx, minted.ID, "bob"))

	key, err := a.IssueViewingKey(ctx, minted.ID, "bob")
	require.NoError(t, err)
	assert.NotEmpty(t, key)

	_, err = a.IssueViewingKey(ctx, minted.ID, "alice")
	assert.ErrorIs(t, err, ErrForbidden)

	result, err := a.Airdrop(ctx, minted.ID, []string{"carol", "bad addr"})
	require.NoError(t, err)
	assert.Len(t, result.Succeeded(), 1)
	assert.Len(t, result.Failed(), 1)

	list, err := a.List(ctx, "carol")
	require.NoError(t, err)
	assert.Len(t, list, 1)

	packet, err := a.Export(ctx, minted.ID)
	require.NoError(t, err)
	_, err = a.Import(ctx, packet)
	assert.ErrorIs(t, err, ErrConflict)

	_, err = a.View(ctx, "0190f5a8-6c1e-7c3a-9b7e-3f1d2c4b5a69", "")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestGRPCAdapter_AgainstServer(t *testing.T) {
	h := myGRPC.NewHandler(newTestServices(t), logger.Nop())
	lis := bufconn.Listen(1 << 20)
	srv := grpc.NewServer(h.ServerOptions()...)
	h.Register(srv)
	go srv.Serve(lis)
	defer srv.Stop()

	a, err := NewGRPCRegistryAdapter(config.Adapter{GRPCAddress: "passthrough:///bufnet"}, logger.Nop(),
		grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) {
			return lis.DialContext(ctx)
		}))
	require.NoError(t, err)
	defer a.Close()

	exerciseAdapter(t, a)

	_, err = a.Version(context.Background())
	assert.ErrorIs(t, err, ErrBadRequest)
}

func TestNewGRPCRegistryAdapter_EmptyAddress(t *testing.T) {
	_, err := NewGRPCRegistryAdapter(config.Adapter{}, logger.Nop())

	assert.Error(t, err)
}

func TestMapGRPCError(t *testing.T) {
	tests := []struct {
		code codes.Code
		want error
	}{
		{code: codes.InvalidArgument, want: ErrBadRequest},
		{code: codes.PermissionDenied, want: ErrForbidden},
		{code: codes.NotFound, want: ErrNotFound},
		{code: codes.AlreadyExists, want: ErrConflict},
		{code: codes.FailedPrecondition, want: ErrConflict},
		{code: codes.Internal, want: ErrInternalServerError},
		{code: codes.Unavailable, want: ErrUnavailable},
	}

	for _, tt := range tests {
		t.Run(tt.code.String(), func(t *testing.T) {
			assert.ErrorIs(t, mapGRPCError(status.Error(tt.code, "x")), tt.want)
		})
	}

	assert.NoError(t, mapGRPCError(nil))
}
