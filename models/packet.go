// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

const (
	// PacketVersion is the only packet layout this build can read and write.
	PacketVersion = 1

	// PacketKind tags packets produced by this registry.
	PacketKind = "shielded-nft"
)

// Packet is the versioned, self-describing envelope used to move one NFT
// record between domains. It carries the full record including shielded
// fields.
type Packet struct {
	Version int    `json:"version"`
	Kind    string `json:"kind"`
	NFT     NFT    `json:"nft"`
}
