package grpc

import (
	"context"

	registrypb "github.com/MKhiriev/shielded-nft/api/proto/shieldednft/v1"
	"github.com/MKhiriev/shielded-nft/internal/logger"
	"github.com/MKhiriev/shielded-nft/models"
)

// Mint implements [registrypb.RegistryServer]. The response carries a viewing
// key for the minting owner.
func (h *Handler) Mint(ctx context.Context, in *registrypb.MintRequest) (*registrypb.MintResponse, error) {
	req := MintRequestFromProto(in)
	if err := h.validator.Validate(ctx, req); err != nil {
		return nil, invalidArgument(err)
	}

	id, err := h.services.MintService.Mint(ctx, req.ToParams())
	if err != nil {
		return nil, statusError(ctx, "*Handler.Mint", err)
	}

	// the asset exists at this point; a signing failure only costs the key
	key, err := h.services.DisclosureService.IssueViewingKey(ctx, id, req.Owner)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*Handler.Mint").Str("id", id.String()).Msg("failed to issue viewing key for minted asset")
		key = ""
	}

	return &registrypb.MintResponse{Id: id.String(), ViewingKey: string(key)}, nil
}

func (h *Handler) Transfer(ctx context.Context, in *registrypb.TransferRequest) (*registrypb.StatusResponse, error) {
	req := models.TransferRequest{ID: models.AssetID(in.GetId()), To: in.GetTo()}
	if err := h.validator.Validate(ctx, req); err != nil {
		return nil, invalidArgument(err)
	}

	if err := h.services.TransferService.Transfer(ctx, req.ID, req.To); err != nil {
		return nil, statusError(ctx, "*Handler.Transfer", err)
	}

	return &registrypb.StatusResponse{Status: "ok", Id: req.ID.String()}, nil
}

// View reveals the asset when the request's viewing key unlocks it and
// returns the redacted projection otherwise.
func (h *Handler) View(ctx context.Context, in *registrypb.AssetRequest) (*registrypb.NFTView, error) {
	req := assetRequest(in)
	if err := h.validator.Validate(ctx, req); err != nil {
		return nil, invalidArgument(err)
	}

	revealed, err := h.services.DisclosureService.Reveal(ctx, req.ID, req.ViewingKey)
	if err != nil {
		return nil, statusError(ctx, "*Handler.View", err)
	}

	return NFTToProto(revealed), nil
}

func (h *Handler) List(ctx context.Context, in *registrypb.ListRequest) (*registrypb.ListResponse, error) {
	req := models.ListRequest{Owner: in.GetOwner()}
	if err := h.validator.Validate(ctx, req); err != nil {
		return nil, invalidArgument(err)
	}

	nfts, err := h.services.DisclosureService.List(ctx, req.Owner)
	if err != nil {
		return nil, statusError(ctx, "*Handler.List", err)
	}

	out := &registrypb.ListResponse{Nfts: make([]*registrypb.NFTView, 0, len(nfts))}
	for _, nft := range nfts {
		out.Nfts = append(out.Nfts, NFTToProto(nft))
	}
	return out, nil
}

func (h *Handler) IssueViewingKey(ctx context.Context, in *registrypb.ViewingKeyRequest) (*registrypb.ViewingKeyResponse, error) {
	req := models.ViewingKeyRequest{ID: models.AssetID(in.GetId()), Owner: in.GetOwner()}
	if err := h.validator.Validate(ctx, req); err != nil {
		return nil, invalidArgument(err)
	}

	key, err := h.services.DisclosureService.IssueViewingKey(ctx, req.ID, req.Owner)
	if err != nil {
		return nil, statusError(ctx, "*Handler.IssueViewingKey", err)
	}

	return &registrypb.ViewingKeyResponse{ViewingKey: string(key)}, nil
}

func (h *Handler) Stake(ctx context.Context, in *registrypb.AssetRequest) (*registrypb.StatusResponse, error) {
	req := assetRequest(in)
	if err := h.validator.Validate(ctx, req); err != nil {
		return nil, invalidArgument(err)
	}

	if err := h.services.StakingService.Stake(ctx, req.ID); err != nil {
		return nil, statusError(ctx, "*Handler.Stake", err)
	}

	return &registrypb.StatusResponse{Status: "staked", Id: req.ID.String()}, nil
}

func (h *Handler) Unstake(ctx context.Context, in *registrypb.AssetRequest) (*registrypb.StatusResponse, error) {
	req := assetRequest(in)
	if err := h.validator.Validate(ctx, req); err != nil {
		return nil, invalidArgument(err)
	}

	if err := h.services.StakingService.Unstake(ctx, req.ID); err != nil {
		return nil, statusError(ctx, "*Handler.Unstake", err)
	}

	return &registrypb.StatusResponse{Status: "unstaked", Id: req.ID.String()}, nil
}

// Airdrop succeeds even when some recipients failed; see the outcomes.
func (h *Handler) Airdrop(ctx context.Context, in *registrypb.AirdropRequest) (*registrypb.AirdropResult, error) {
	req := models.AirdropRequest{ID: models.AssetID(in.GetId()), Recipients: in.GetRecipients()}
	if err := h.validator.Validate(ctx, req); err != nil {
		return nil, invalidArgument(err)
	}

	result, err := h.services.AirdropService.Airdrop(ctx, req.ID, req.Recipients)
	if err != nil {
		return nil, statusError(ctx, "*Handler.Airdrop", err)
	}

	return AirdropResultToProto(result), nil
}

func (h *Handler) Export(ctx context.Context, in *registrypb.AssetRequest) (*registrypb.ExportResponse, error) {
	req := assetRequest(in)
	if err := h.validator.Validate(ctx, req); err != nil {
		return nil, invalidArgument(err)
	}

	packet, err := h.services.PacketService.Export(ctx, req.ID)
	if err != nil {
		return nil, statusError(ctx, "*Handler.Export", err)
	}

	return &registrypb.ExportResponse{Id: req.ID.String(), Packet: packet}, nil
}

func (h *Handler) Import(ctx context.Context, in *registrypb.ImportRequest) (*registrypb.StatusResponse, error) {
	req := models.ImportRequest{Packet: in.GetPacket()}
	if err := h.validator.Validate(ctx, req); err != nil {
		return nil, invalidArgument(err)
	}

	nft, err := h.services.PacketService.ImportAndInsert(ctx, req.Packet)
	if err != nil {
		return nil, statusError(ctx, "*Handler.Import", err)
	}

	return &registrypb.StatusResponse{Status: "imported", Id: nft.ID.String()}, nil
}

func assetRequest(in *registrypb.AssetRequest) models.AssetRequest {
	return models.AssetRequest{
		ID:         models.AssetID(in.GetId()),
		ViewingKey: models.ViewingKey(in.GetViewingKey()),
	}
}
