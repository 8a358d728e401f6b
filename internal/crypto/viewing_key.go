// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/shielded-nft/models"
	"github.com/golang-jwt/jwt/v5"
)

// viewScope is the only scope a viewing key can carry.
const viewScope = "view"

// viewingKeyClaims are the claims of a signed viewing key.
//
//   - Issuer    (iss): the registry that issued the key
//   - Subject   (sub): the owner the key was issued to
//   - IssuedAt  (iat), ExpiresAt (exp)
//   - nft_id: the asset the key unlocks
//   - scope:  always "view"
type viewingKeyClaims struct {
	jwt.RegisteredClaims
	AssetID models.AssetID `json:"nft_id"`
	Scope   string         `json:"scope"`
}

// viewingKeyIssuer is the HMAC-SHA256 JWT implementation of [ViewingKeyIssuer].
type viewingKeyIssuer struct {
	issuer   string
	duration time.Duration
	signKey  []byte

	now func() time.Time
}

// NewViewingKeyIssuer constructs a [ViewingKeyIssuer]. All parameters are
// required.
func NewViewingKeyIssuer(issuer string, duration time.Duration, signKey string) (ViewingKeyIssuer, error) {
	if issuer == "" || duration <= 0 || signKey == "" {
		return nil, fmt.Errorf("%w: issuer, duration and sign key are required", ErrInvalidParams)
	}

	return &viewingKeyIssuer{
		issuer:   issuer,
		duration: duration,
		signKey:  []byte(signKey),
		now:      time.Now,
	}, nil
}

// Issue implements [ViewingKeyIssuer].
func (v *viewingKeyIssuer) Issue(id models.AssetID, owner string) (models.ViewingKey, error) {
	if id == "" || owner == "" {
		return "", fmt.Errorf("%w: id and owner are required", ErrInvalidParams)
	}

	now := v.now()
	claims := &viewingKeyClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    v.issuer,
			Subject:   owner,
			ExpiresAt: jwt.NewNumericDate(now.Add(v.duration)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
		AssetID: id,
		Scope:   viewScope,
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(v.signKey)
	if err != nil {
		return "", fmt.Errorf("error occurred during signing viewing key: %w", err)
	}

	return models.ViewingKey(signed), nil
}

// Verify implements [ViewingKeyIssuer].
func (v *viewingKeyIssuer) Verify(key models.ViewingKey, id models.AssetID, owner string) error {
	if key == "" {
		return ErrInvalidViewingKey
	}

	claims := &viewingKeyClaims{}
	_, err := jwt.ParseWithClaims(string(key), claims, func(token *jwt.Token) (any, error) {
		return v.signKey, nil
	},
		jwt.WithIssuer(v.issuer),
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(v.now),
	)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return fmt.Errorf("%w: %w", ErrViewingKeyExpired, err)
		}
		return fmt.Errorf("%w: %w", ErrInvalidViewingKey, err)
	}

	if claims.Scope != viewScope {
		return fmt.Errorf("%w: unexpected scope %q", ErrInvalidViewingKey, claims.Scope)
	}
	if claims.AssetID != id {
		return fmt.Errorf("%w: issued for another asset", ErrInvalidViewingKey)
	}
	if claims.Subject != owner {
		return fmt.Errorf("%w: issued for another owner", ErrInvalidViewingKey)
	}

	return nil
}
