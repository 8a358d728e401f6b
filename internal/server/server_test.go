package server

import (
	"context"
	"net"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/status"

	registrypb "github.com/MKhiriev/shielded-nft/api/proto/shieldednft/v1"
	"github.com/MKhiriev/shielded-nft/internal/config"
	"github.com/MKhiriev/shielded-nft/internal/handler"
	myGRPC "github.com/MKhiriev/shielded-nft/internal/handler/grpc"
	myHTTP "github.com/MKhiriev/shielded-nft/internal/handler/http"
	"github.com/MKhiriev/shielded-nft/internal/logger"
	"github.com/MKhiriev/shielded-nft/internal/service"
)

func freeAddress(t *testing.T) string {
	t.Helper()

	l, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	addr := l.Addr().String()
	require.NoError(t, l.Close())
	return addr
}

func TestNewServer_NoServers(t *testing.T) {
	s, err := NewServer(&handler.Handlers{}, config.Server{}, logger.Nop())

	require.ErrorIs(t, err, errNoServersAreCreated)
	assert.Nil(t, s)
}

func TestNewServer_GRPCListenError(t *testing.T) {
	handlers := &handler.Handlers{GRPC: myGRPC.NewHandler(nil, logger.Nop())}

	_, err := NewServer(handlers, config.Server{GRPCAddress: "256.0.0.1:bad"}, logger.Nop())

	assert.Error(t, err)
}

func TestServer_RunUntilCanceled(t *testing.T) {
	services := &service.Services{}
	cfg := config.Server{HTTPAddress: freeAddress(t), GRPCAddress: "127.0.0.1:0"}

	handlers, err := handler.NewHandlers(services, cfg, myHTTP.Settings{}, logger.Nop())
	require.NoError(t, err)

	srv, err := NewServer(handlers, cfg, logger.Nop())
	require.NoError(t, err)
	s := srv.(*server)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		s.run(ctx)
		close(done)
	}()

	// the HTTP listener comes up asynchronously
	require.Eventually(t, func() bool {
		resp, err := http.Get("http://" + cfg.HTTPAddress + "/api/nft/mint")
		if err != nil {
			return false
		}
		resp.Body.Close()
		return resp.StatusCode == http.StatusNotFound
	}, 5*time.Second, 20*time.Millisecond)

	conn, err := grpc.NewClient(s.gRPCServer.Addr(),
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	require.NoError(t, err)
	defer conn.Close()

	// validation fails before any service is touched
	_, err = registrypb.NewRegistryClient(conn).View(ctx, &registrypb.AssetRequest{Id: "bad"})
	assert.Equal(t, codes.InvalidArgument, status.Code(err))

	cancel()

	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("server did not shut down")
	}
}
