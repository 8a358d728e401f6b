// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"testing"
	"time"

	"github.com/MKhiriev/shielded-nft/models"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	testIssuer  = "shielded-nft-test"
	testSignKey = "0123456789abcdef-sign-key"
	testID      = models.AssetID("0190f5a8-6c1e-7c3a-9b7e-3f1d2c4b5a69")
)

func newTestIssuer(t *testing.T, now func() time.Time) *viewingKeyIssuer {
	t.Helper()
	iss, err := NewViewingKeyIssuer(testIssuer, time.Hour, testSignKey)
	require.NoError(t, err)

	v := iss.(*viewingKeyIssuer)
	if now != nil {
		v.now = now
	}
	return v
}

func TestNewViewingKeyIssuer_InvalidParams(t *testing.T) {
	tests := []struct {
		name     string
		issuer   string
		duration time.Duration
		key      string
	}{
		{name: "empty issuer", duration: time.Hour, key: testSignKey},
		{name: "zero duration", issuer: testIssuer, key: testSignKey},
		{name: "empty key", issuer: testIssuer, duration: time.Hour},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			iss, err := NewViewingKeyIssuer(tt.issuer, tt.duration, tt.key)
			require.ErrorIs(t, err, ErrInvalidParams)
			assert.Nil(t, iss)
		})
	}
}

func TestViewingKey_IssueAndVerify(t *testing.T) {
	v := newTestIssuer(t, nil)

	key, err := v.Issue(testID, "alice")
	require.NoError(t, err)
	require.NotEmpty(t, key)

	assert.NoError(t, v.Verify(key, testID, "alice"))
}

func TestViewingKey_Issue_RequiresIDAndOwner(t *testing.T) {
	v := newTestIssuer(t, nil)

	_, err := v.Issue("", "alice")
	assert.ErrorIs(t, err, ErrInvalidParams)

	_, err = v.Issue(testID, "")
	assert.ErrorIs(t, err, ErrInvalidParams)
}

func TestViewingKey_Verify_BoundToAssetAndOwner(t *testing.T) {
	v := newTestIssuer(t, nil)
	key, err := v.Issue(testID, "alice")
	require.NoError(t, err)

	t.Run("another owner", func(t *testing.T) {
		assert.ErrorIs(t, v.Verify(key, testID, "bob"), ErrInvalidViewingKey)
	})

	t.Run("another asset", func(t *testing.T) {
		other := models.AssetID("9b2f6a1e-3c4d-4e5f-8a9b-0c1d2e3f4a5b")
		assert.ErrorIs(t, v.Verify(key, other, "alice"), ErrInvalidViewingKey)
	})

	t.Run("empty key", func(t *testing.T) {
		assert.ErrorIs(t, v.Verify("", testID, "alice"), ErrInvalidViewingKey)
	})

	t.Run("garbage", func(t *testing.T) {
		assert.ErrorIs(t, v.Verify("not.a.jwt", testID, "alice"), ErrInvalidViewingKey)
	})
}

func TestViewingKey_Verify_Expired(t *testing.T) {
	issuedAt := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	current := issuedAt
	v := newTestIssuer(t, func() time.Time { return current })

	key, err := v.Issue(testID, "alice")
	require.NoError(t, err)

	current = issuedAt.Add(59 * time.Minute)
	require.NoError(t, v.Verify(key, testID, "alice"))

	current = issuedAt.Add(2 * time.Hour)
	err = v.Verify(key, testID, "alice")
	assert.ErrorIs(t, err, ErrViewingKeyExpired)
}

func TestViewingKey_Verify_WrongSignKey(t *testing.T) {
	v := newTestIssuer(t, nil)
	key, err := v.Issue(testID, "alice")
	require.NoError(t, err)

	other, err := NewViewingKeyIssuer(testIssuer, time.Hour, "another-sign-key-of-16")
	require.NoError(t, err)

	assert.ErrorIs(t, other.Verify(key, testID, "alice"), ErrInvalidViewingKey)
}

func TestViewingKey_Verify_WrongIssuer(t *testing.T) {
	v := newTestIssuer(t, nil)
	key, err := v.Issue(testID, "alice")
	require.NoError(t, err)

	other, err := NewViewingKeyIssuer("someone-else", time.Hour, testSignKey)
	require.NoError(t, err)

	assert.ErrorIs(t, other.Verify(key, testID, "alice"), ErrInvalidViewingKey)
}

func TestViewingKey_Verify_RejectsOtherScope(t *testing.T) {
	v := newTestIssuer(t, nil)
	now := time.Now()

	claims := &viewingKeyClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    testIssuer,
			Subject:   "alice",
			ExpiresAt: jwt.NewNumericDate(now.Add(time.Hour)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
		AssetID: testID,
		Scope:   "transfer",
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testSignKey))
	require.NoError(t, err)

	assert.ErrorIs(t, v.Verify(models.ViewingKey(signed), testID, "alice"), ErrInvalidViewingKey)
}

func TestViewingKey_Verify_RejectsNoneAlg(t *testing.T) {
	v := newTestIssuer(t, nil)

	claims := &viewingKeyClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    testIssuer,
			Subject:   "alice",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
		AssetID: testID,
		Scope:   viewScope,
	}
	unsigned, err := jwt.NewWithClaims(jwt.SigningMethodNone, claims).SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	assert.ErrorIs(t, v.Verify(models.ViewingKey(unsigned), testID, "alice"), ErrInvalidViewingKey)
}
