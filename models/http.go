// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// MintRequest is the body of POST /api/nft/mint.
// Shielded defaults to true when omitted.
type MintRequest struct {
	Owner        string    `json:"owner"`
	Name         string    `json:"name"`
	Description  string    `json:"description"`
	ImageCID     string    `json:"image_cid"`
	Attributes   []byte    `json:"attributes"`
	Shielded     *bool     `json:"shielded,omitempty"`
	LockMaturity *Maturity `json:"lock_maturity,omitempty"`
}

// ToParams converts the request into mint parameters.
func (r MintRequest) ToParams() MintParams {
	shielded := true
	if r.Shielded != nil {
		shielded = *r.Shielded
	}

	return MintParams{
		Owner: r.Owner,
		Metadata: ShieldedMetadata{
			Name:        r.Name,
			Description: r.Description,
			ImageCID:    r.ImageCID,
			Attributes:  r.Attributes,
			Shielded:    shielded,
		},
		LockMaturity: r.LockMaturity.Clone(),
	}
}

// MintResponse is returned after a successful mint. ViewingKey unlocks the
// shielded fields for the minting owner.
type MintResponse struct {
	ID         AssetID    `json:"id"`
	ViewingKey ViewingKey `json:"viewing_key"`
}

// TransferRequest is the body of POST /api/nft/transfer.
type TransferRequest struct {
	ID AssetID `json:"id"`
	To string  `json:"to"`
}

// AssetRequest addresses a single asset. ViewingKey is only read by view.
type AssetRequest struct {
	ID         AssetID    `json:"id"`
	ViewingKey ViewingKey `json:"viewing_key,omitempty"`
}

// ListRequest filters the asset listing by owner. An empty owner lists all.
type ListRequest struct {
	Owner string `json:"owner,omitempty"`
}

// ListResponse carries public projections of the listed assets.
type ListResponse struct {
	NFTs []RevealedNFT `json:"nfts"`
}

// ViewingKeyRequest asks for a viewing key for ID on behalf of Owner.
type ViewingKeyRequest struct {
	ID    AssetID `json:"id"`
	Owner string  `json:"owner"`
}

// ViewingKeyResponse carries a freshly issued viewing key.
type ViewingKeyResponse struct {
	ViewingKey ViewingKey `json:"viewing_key"`
}

// AirdropRequest is the body of POST /api/nft/airdrop.
type AirdropRequest struct {
	ID         AssetID  `json:"id"`
	Recipients []string `json:"recipients"`
}

// ExportResponse carries an exported packet. Packet is base64 encoded in
// JSON.
type ExportResponse struct {
	ID     AssetID `json:"id"`
	Packet []byte  `json:"packet"`
}

// ImportRequest is the body of POST /api/ibc/import.
type ImportRequest struct {
	Packet []byte `json:"packet"`
}

// StatusResponse is the generic acknowledgement of a state change.
type StatusResponse struct {
	Status string  `json:"status"`
	ID     AssetID `json:"id,omitempty"`
}

// ErrorResponse is written for every failed request.
type ErrorResponse struct {
	Error string `json:"error"`
}
