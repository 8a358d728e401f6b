package http

import (
	"net/http"

	"github.com/MKhiriev/shielded-nft/internal/utils"
	"github.com/MKhiriev/shielded-nft/models"
)

func (h *Handler) export(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	req := models.AssetRequest{ID: assetIDFromURL(r)}
	if err := h.validator.Validate(ctx, req); err != nil {
		writeBadRequest(w, r, "*Handler.export", err)
		return
	}

	packet, err := h.services.PacketService.Export(ctx, req.ID)
	if err != nil {
		writeServiceError(w, r, "*Handler.export", err)
		return
	}

	utils.WriteJSON(w, models.ExportResponse{ID: req.ID, Packet: packet}, http.StatusOK)
}

// importPacket inserts the record carried by a packet. An id that is already
// registered is rejected with 409.
func (h *Handler) importPacket(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req models.ImportRequest
	if err := decodeJSON(r, &req); err != nil {
		writeBadRequest(w, r, "*Handler.importPacket", err)
		return
	}
	if err := h.validator.Validate(ctx, req); err != nil {
		writeBadRequest(w, r, "*Handler.importPacket", err)
		return
	}

	nft, err := h.services.PacketService.ImportAndInsert(ctx, req.Packet)
	if err != nil {
		writeServiceError(w, r, "*Handler.importPacket", err)
		return
	}

	utils.WriteJSON(w, models.StatusResponse{Status: "imported", ID: nft.ID}, http.StatusCreated)
}
