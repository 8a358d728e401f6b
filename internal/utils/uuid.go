// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"github.com/MKhiriev/shielded-nft/models"
	"github.com/google/uuid"
)

// UUIDGenerator issues asset identifiers.
//
// Version 7 UUIDs are preferred because they sort by creation time, which
// keeps registry listings stable. If the time-based generator fails the
// generator falls back to a random version 4 UUID.
type UUIDGenerator struct {
}

// NewUUIDGenerator returns a ready to use [UUIDGenerator].
func NewUUIDGenerator() *UUIDGenerator {
	return &UUIDGenerator{}
}

// Generate returns a fresh [models.AssetID] in canonical UUID form.
func (g *UUIDGenerator) Generate() models.AssetID {
	v7, err := uuid.NewV7()
	if err != nil {
		return models.AssetID(uuid.NewString())
	}

	return models.AssetID(v7.String())
}

// NewTraceID returns a random identifier for correlating log lines of one
// request.
func NewTraceID() string {
	return uuid.NewString()
}
