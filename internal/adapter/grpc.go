package adapter

import (
	"context"
	"fmt"

	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/metadata"

	registrypb "github.com/MKhiriev/shielded-nft/api/proto/shieldednft/v1"
	"github.com/MKhiriev/shielded-nft/internal/config"
	myGRPC "github.com/MKhiriev/shielded-nft/internal/handler/grpc"
	"github.com/MKhiriev/shielded-nft/internal/logger"
	"github.com/MKhiriev/shielded-nft/internal/utils"
	"github.com/MKhiriev/shielded-nft/models"
)

type grpcRegistryAdapter struct {
	conn   *grpc.ClientConn
	client registrypb.RegistryClient

	logger *logger.Logger
}

// NewGRPCRegistryAdapter constructs the gRPC implementation of
// [RegistryAdapter]. The connection is established lazily on the first call.
func NewGRPCRegistryAdapter(cfg config.Adapter, logger *logger.Logger, opts ...grpc.DialOption) (RegistryAdapter, error) {
	if cfg.GRPCAddress == "" {
		return nil, fmt.Errorf("invalid adapter grpc address: empty address")
	}

	g := &grpcRegistryAdapter{logger: logger}

	opts = append([]grpc.DialOption{
		grpc.WithTransportCredentials(insecure.NewCredentials()),
		grpc.WithChainUnaryInterceptor(g.withTraceID),
	}, opts...)

	conn, err := grpc.NewClient(cfg.GRPCAddress, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create registry client: %w", err)
	}

	g.conn = conn
	g.client = registrypb.NewRegistryClient(conn)
	return g, nil
}

// withTraceID forwards the trace id of ctx, if any, and maps failed calls
// onto the adapter errors.
func (g *grpcRegistryAdapter) withTraceID(ctx context.Context, method string, req, reply any, cc *grpc.ClientConn, invoker grpc.UnaryInvoker, opts ...grpc.CallOption) error {
	if traceID, ok := utils.GetTraceIDFromContext(ctx); ok {
		ctx = metadata.AppendToOutgoingContext(ctx, myGRPC.TraceIDKey, traceID)
	}

	if err := invoker(ctx, method, req, reply, cc, opts...); err != nil {
		g.logger.Debug().Err(err).Str("func", "*grpcRegistryAdapter.withTraceID").Str("method", method).Msg("call failed")
		return mapGRPCError(err)
	}
	return nil
}

// Version is not exposed over gRPC.
func (g *grpcRegistryAdapter) Version(context.Context) (string, error) {
	return "", fmt.Errorf("%w: version is only served over http", ErrBadRequest)
}

func (g *grpcRegistryAdapter) Mint(ctx context.Context, req models.MintRequest) (models.MintResponse, error) {
	minted, err := g.client.Mint(ctx, myGRPC.MintRequestToProto(req))
	if err != nil {
		return models.MintResponse{}, err
	}
	return models.MintResponse{
		ID:         models.AssetID(minted.GetId()),
		ViewingKey: models.ViewingKey(minted.GetViewingKey()),
	}, nil
}

func (g *grpcRegistryAdapter) Transfer(ctx context.Context, id models.AssetID, to string) error {
	_, err := g.client.Transfer(ctx, &registrypb.TransferRequest{Id: id.String(), To: to})
	return err
}

func (g *grpcRegistryAdapter) View(ctx context.Context, id models.AssetID, key models.ViewingKey) (models.RevealedNFT, error) {
	nft, err := g.client.View(ctx, &registrypb.AssetRequest{Id: id.String(), ViewingKey: string(key)})
	if err != nil {
		return models.RevealedNFT{}, err
	}
	return myGRPC.NFTFromProto(nft), nil
}

func (g *grpcRegistryAdapter) List(ctx context.Context, owner string) ([]models.RevealedNFT, error) {
	list, err := g.client.List(ctx, &registrypb.ListRequest{Owner: owner})
	if err != nil {
		return nil, err
	}
	return myGRPC.NFTListFromProto(list), nil
}

func (g *grpcRegistryAdapter) IssueViewingKey(ctx context.Context, id models.AssetID, owner string) (models.ViewingKey, error) {
	issued, err := g.client.IssueViewingKey(ctx, &registrypb.ViewingKeyRequest{Id: id.String(), Owner: owner})
	if err != nil {
		return "", err
	}
	return models.ViewingKey(issued.GetViewingKey()), nil
}

func (g *grpcRegistryAdapter) Stake(ctx context.Context, id models.AssetID) error {
	_, err := g.client.Stake(ctx, &registrypb.AssetRequest{Id: id.String()})
	return err
}

func (g *grpcRegistryAdapter) Unstake(ctx context.Context, id models.AssetID) error {
	_, err := g.client.Unstake(ctx, &registrypb.AssetRequest{Id: id.String()})
	return err
}

func (g *grpcRegistryAdapter) Airdrop(ctx context.Context, id models.AssetID, recipients []string) (models.AirdropResult, error) {
	result, err := g.client.Airdrop(ctx, &registrypb.AirdropRequest{Id: id.String(), Recipients: recipients})
	if err != nil {
		return models.AirdropResult{}, err
	}
	return myGRPC.AirdropResultFromProto(result), nil
}

func (g *grpcRegistryAdapter) Export(ctx context.Context, id models.AssetID) ([]byte, error) {
	exported, err := g.client.Export(ctx, &registrypb.AssetRequest{Id: id.String()})
	if err != nil {
		return nil, err
	}
	return exported.GetPacket(), nil
}

func (g *grpcRegistryAdapter) Import(ctx context.Context, packet []byte) (models.AssetID, error) {
	imported, err := g.client.Import(ctx, &registrypb.ImportRequest{Packet: packet})
	if err != nil {
		return "", err
	}
	return models.AssetID(imported.GetId()), nil
}

func (g *grpcRegistryAdapter) Close() error {
	return g.conn.Close()
}
