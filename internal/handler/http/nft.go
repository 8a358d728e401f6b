package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/shielded-nft/internal/logger"
	"github.com/MKhiriev/shielded-nft/internal/utils"
	"github.com/MKhiriev/shielded-nft/models"
)

const (
	viewingKeyHeader = "X-Viewing-Key"
	viewingKeyQuery  = "viewing_key"
)

func assetIDFromURL(r *http.Request) models.AssetID {
	return models.AssetID(chi.URLParam(r, "id"))
}

// mint stores a new asset and returns its id together with a viewing key
// for the minting owner.
func (h *Handler) mint(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req models.MintRequest
	if err := decodeJSON(r, &req); err != nil {
		writeBadRequest(w, r, "*Handler.mint", err)
		return
	}
	if err := h.validator.Validate(ctx, req); err != nil {
		writeBadRequest(w, r, "*Handler.mint", err)
		return
	}

	id, err := h.services.MintService.Mint(ctx, req.ToParams())
	if err != nil {
		writeServiceError(w, r, "*Handler.mint", err)
		return
	}

	// the asset exists at this point; a signing failure only costs the key
	key, err := h.services.DisclosureService.IssueViewingKey(ctx, id, req.Owner)
	if err != nil {
		log.Err(err).Str("func", "*Handler.mint").Str("id", id.String()).Msg("failed to issue viewing key for minted asset")
		key = ""
	}

	log.Debug().Str("func", "*Handler.mint").Str("id", id.String()).Msg("asset minted")
	utils.WriteJSON(w, models.MintResponse{ID: id, ViewingKey: key}, http.StatusCreated)
}

func (h *Handler) transfer(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req models.TransferRequest
	if err := decodeJSON(r, &req); err != nil {
		writeBadRequest(w, r, "*Handler.transfer", err)
		return
	}
	if err := h.validator.Validate(ctx, req); err != nil {
		writeBadRequest(w, r, "*Handler.transfer", err)
		return
	}

	if err := h.services.TransferService.Transfer(ctx, req.ID, req.To); err != nil {
		writeServiceError(w, r, "*Handler.transfer", err)
		return
	}

	utils.WriteJSON(w, models.StatusResponse{Status: "ok", ID: req.ID}, http.StatusOK)
}

// view reveals an asset. The viewing key is read from the X-Viewing-Key
// header and, failing that, from the viewing_key query parameter.
func (h *Handler) view(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	req := models.AssetRequest{
		ID:         assetIDFromURL(r),
		ViewingKey: models.ViewingKey(r.Header.Get(viewingKeyHeader)),
	}
	if req.ViewingKey == "" {
		req.ViewingKey = models.ViewingKey(r.URL.Query().Get(viewingKeyQuery))
	}
	if err := h.validator.Validate(ctx, req); err != nil {
		writeBadRequest(w, r, "*Handler.view", err)
		return
	}

	revealed, err := h.services.DisclosureService.Reveal(ctx, req.ID, req.ViewingKey)
	if err != nil {
		writeServiceError(w, r, "*Handler.view", err)
		return
	}

	utils.WriteJSON(w, revealed, http.StatusOK)
}

func (h *Handler) list(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	req := models.ListRequest{Owner: r.URL.Query().Get("owner")}
	if err := h.validator.Validate(ctx, req); err != nil {
		writeBadRequest(w, r, "*Handler.list", err)
		return
	}

	nfts, err := h.services.DisclosureService.List(ctx, req.Owner)
	if err != nil {
		writeServiceError(w, r, "*Handler.list", err)
		return
	}

	utils.WriteJSON(w, models.ListResponse{NFTs: nfts}, http.StatusOK)
}

func (h *Handler) stake(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	req := models.AssetRequest{ID: assetIDFromURL(r)}
	if err := h.validator.Validate(ctx, req); err != nil {
		writeBadRequest(w, r, "*Handler.stake", err)
		return
	}

	if err := h.services.StakingService.Stake(ctx, req.ID); err != nil {
		writeServiceError(w, r, "*Handler.stake", err)
		return
	}

	utils.WriteJSON(w, models.StatusResponse{Status: "staked", ID: req.ID}, http.StatusOK)
}

func (h *Handler) unstake(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	req := models.AssetRequest{ID: assetIDFromURL(r)}
	if err := h.validator.Validate(ctx, req); err != nil {
		writeBadRequest(w, r, "*Handler.unstake", err)
		return
	}

	if err := h.services.StakingService.Unstake(ctx, req.ID); err != nil {
		writeServiceError(w, r, "*Handler.unstake", err)
		return
	}

	utils.WriteJSON(w, models.StatusResponse{Status: "unstaked", ID: req.ID}, http.StatusOK)
}

func (h *Handler) issueViewingKey(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req models.ViewingKeyRequest
	if err := decodeJSON(r, &req); err != nil {
		writeBadRequest(w, r, "*Handler.issueViewingKey", err)
		return
	}
	req.ID = assetIDFromURL(r)
	if err := h.validator.Validate(ctx, req); err != nil {
		writeBadRequest(w, r, "*Handler.issueViewingKey", err)
		return
	}

	key, err := h.services.DisclosureService.IssueViewingKey(ctx, req.ID, req.Owner)
	if err != nil {
		writeServiceError(w, r, "*Handler.issueViewingKey", err)
		return
	}

	utils.WriteJSON(w, models.ViewingKeyResponse{ViewingKey: key}, http.StatusOK)
}

// airdrop answers 200 even when some recipients failed; the outcome of
// every recipient is in the body.
func (h *Handler) airdrop(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req models.AirdropRequest
	if err := decodeJSON(r, &req); err != nil {
		writeBadRequest(w, r, "*Handler.airdrop", err)
		return
	}
	if err := h.validator.Validate(ctx, req); err != nil {
		writeBadRequest(w, r, "*Handler.airdrop", err)
		return
	}

	result, err := h.services.AirdropService.Airdrop(ctx, req.ID, req.Recipients)
	if err != nil {
		writeServiceError(w, r, "*Handler.airdrop", err)
		return
	}

	utils.WriteJSON(w, result, http.StatusOK)
}
