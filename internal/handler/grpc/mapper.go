package grpc

import (
	"google.golang.org/protobuf/types/known/timestamppb"
	"google.golang.org/protobuf/types/known/wrapperspb"

	registrypb "github.com/MKhiriev/shielded-nft/api/proto/shieldednft/v1"
	"github.com/MKhiriev/shielded-nft/models"
)

// The mappers below translate between the protobuf messages of the registry
// service and the domain models. They are shared by the server handler and
// the client adapter.

// MintRequestToProto converts a mint request into its wire form.
func MintRequestToProto(req models.MintRequest) *registrypb.MintRequest {
	out := &registrypb.MintRequest{
		Owner:       req.Owner,
		Name:        req.Name,
		Description: req.Description,
		ImageCid:    req.ImageCID,
		Attributes:  req.Attributes,
	}
	if req.Shielded != nil {
		out.Shielded = wrapperspb.Bool(*req.Shielded)
	}
	if req.LockMaturity != nil {
		out.LockMaturity = wrapperspb.UInt64(uint64(*req.LockMaturity))
	}
	return out
}

// MintRequestFromProto is the inverse of [MintRequestToProto]. An unset
// shielded flag stays nil so the mint default applies.
func MintRequestFromProto(req *registrypb.MintRequest) models.MintRequest {
	out := models.MintRequest{
		Owner:       req.GetOwner(),
		Name:        req.GetName(),
		Description: req.GetDescription(),
		ImageCID:    req.GetImageCid(),
		Attributes:  req.GetAttributes(),
	}
	if req.GetShielded() != nil {
		shielded := req.GetShielded().GetValue()
		out.Shielded = &shielded
	}
	if req.GetLockMaturity() != nil {
		out.LockMaturity = models.NewMaturity(models.Maturity(req.GetLockMaturity().GetValue()))
	}
	return out
}

func lockToProto(lock models.LockState) *registrypb.LockState {
	out := &registrypb.LockState{}
	switch lock.Status {
	case models.LockUnlocked:
		out.Status = registrypb.LockStatus_LOCK_STATUS_UNLOCKED
	case models.LockStaked:
		out.Status = registrypb.LockStatus_LOCK_STATUS_STAKED
	}
	if lock.Since != nil {
		out.Since = timestamppb.New(*lock.Since)
	}
	if lock.Maturity != nil {
		out.Maturity = wrapperspb.UInt64(uint64(*lock.Maturity))
	}
	return out
}

func lockFromProto(lock *registrypb.LockState) models.LockState {
	var out models.LockState
	switch lock.GetStatus() {
	case registrypb.LockStatus_LOCK_STATUS_UNLOCKED:
		out.Status = models.LockUnlocked
	case registrypb.LockStatus_LOCK_STATUS_STAKED:
		out.Status = models.LockStaked
	}
	if lock.GetSince() != nil {
		since := lock.GetSince().AsTime()
		out.Since = &since
	}
	if lock.GetMaturity() != nil {
		out.Maturity = models.NewMaturity(models.Maturity(lock.GetMaturity().GetValue()))
	}
	return out
}

// NFTToProto converts a projection into its wire form. Private fields are
// only filled for unredacted projections.
func NFTToProto(nft models.RevealedNFT) *registrypb.NFTView {
	out := &registrypb.NFTView{
		Id:       nft.ID.String(),
		Owner:    nft.Owner,
		Name:     nft.Name,
		Shielded: nft.Shielded,
		Redacted: nft.Redacted,
		Lock:     lockToProto(nft.Lock),
	}
	if !nft.Redacted {
		if nft.Description != nil {
			out.Description = *nft.Description
		}
		if nft.ImageCID != nil {
			out.ImageCid = *nft.ImageCID
		}
		out.Attributes = nft.Attributes
	}
	return out
}

// NFTFromProto is the inverse of [NFTToProto].
func NFTFromProto(nft *registrypb.NFTView) models.RevealedNFT {
	out := models.RevealedNFT{
		ID:       models.AssetID(nft.GetId()),
		Owner:    nft.GetOwner(),
		Name:     nft.GetName(),
		Shielded: nft.GetShielded(),
		Redacted: nft.GetRedacted(),
		Lock:     lockFromProto(nft.GetLock()),
	}
	if !out.Redacted {
		description := nft.GetDescription()
		imageCID := nft.GetImageCid()
		out.Description = &description
		out.ImageCID = &imageCID
		out.Attributes = nft.GetAttributes()
	}
	return out
}

// NFTListFromProto converts every listed projection.
func NFTListFromProto(list *registrypb.ListResponse) []models.RevealedNFT {
	out := make([]models.RevealedNFT, 0, len(list.GetNfts()))
	for _, nft := range list.GetNfts() {
		out = append(out, NFTFromProto(nft))
	}
	return out
}

// AirdropResultToProto converts an airdrop result into its wire form.
func AirdropResultToProto(result models.AirdropResult) *registrypb.AirdropResult {
	out := &registrypb.AirdropResult{
		SourceId: result.SourceID.String(),
		Outcomes: make([]*registrypb.AirdropOutcome, 0, len(result.Outcomes)),
	}
	for _, o := range result.Outcomes {
		outcome := &registrypb.AirdropOutcome{
			Recipient: o.Recipient,
			Id:        o.ID.String(),
			Error:     o.Error,
		}
		if outcome.Error == "" && o.Err != nil {
			outcome.Error = o.Err.Error()
		}
		out.Outcomes = append(out.Outcomes, outcome)
	}
	return out
}

// AirdropResultFromProto is the inverse of [AirdropResultToProto]. Remote
// errors are kept as text only.
func AirdropResultFromProto(result *registrypb.AirdropResult) models.AirdropResult {
	out := models.AirdropResult{
		SourceID: models.AssetID(result.GetSourceId()),
		Outcomes: make([]models.AirdropOutcome, 0, len(result.GetOutcomes())),
	}
	for _, o := range result.GetOutcomes() {
		out.Outcomes = append(out.Outcomes, models.AirdropOutcome{
			Recipient: o.GetRecipient(),
			ID:        models.AssetID(o.GetId()),
			Error:     o.GetError(),
		})
	}
	return out
}
