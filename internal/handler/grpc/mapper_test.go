package grpc

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/protobuf/types/known/wrapperspb"

	registrypb "github.com/MKhiriev/shielded-nft/api/proto/shieldednft/v1"
	"github.com/MKhiriev/shielded-nft/models"
)

func TestMintRequestFromProto_OptionalFields(t *testing.T) {
	t.Run("unset wrappers stay nil", func(t *testing.T) {
		req := MintRequestFromProto(&registrypb.MintRequest{Owner: "alice", Name: "Art"})

		assert.Nil(t, req.Shielded)
		assert.Nil(t, req.LockMaturity)
	})

	t.Run("zero values are kept", func(t *testing.T) {
		req := MintRequestFromProto(&registrypb.MintRequest{
			Owner:        "alice",
			Name:         "Art",
			Shielded:     wrapperspb.Bool(false),
			LockMaturity: wrapperspb.UInt64(0),
		})

		require.NotNil(t, req.Shielded)
		assert.False(t, *req.Shielded)
		require.NotNil(t, req.LockMaturity)
		assert.Equal(t, models.Maturity(0), *req.LockMaturity)
	})
}

func TestMintRequestToProto(t *testing.T) {
	public := false
	in := models.MintRequest{
		Owner:        "alice",
		Name:         "Art",
		Description:  "hidden",
		ImageCID:     "bafy",
		Attributes:   []byte(`{"k":"v"}`),
		Shielded:     &public,
		LockMaturity: models.NewMaturity(7),
	}

	assert.Equal(t, in, MintRequestFromProto(MintRequestToProto(in)))
}

func TestNFTToProto_RedactedDropsPrivateFields(t *testing.T) {
	description := "hidden"
	imageCID := "bafy"

	view := NFTToProto(models.RevealedNFT{
		ID:          "0190f5a8-6c1e-7c3a-9b7e-3f1d2c4b5a69",
		Owner:       "alice",
		Name:        "Art",
		Shielded:    true,
		Redacted:    true,
		Description: &description,
		ImageCID:    &imageCID,
		Attributes:  []byte("{}"),
		Lock:        models.Unlocked(),
	})

	assert.True(t, view.GetRedacted())
	assert.Empty(t, view.GetDescription())
	assert.Empty(t, view.GetImageCid())
	assert.Empty(t, view.GetAttributes())

	nft := NFTFromProto(view)
	assert.Nil(t, nft.Description)
	assert.Nil(t, nft.ImageCID)
}

func TestNFTFromProto_StakedLock(t *testing.T) {
	since := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	description := "hidden"
	imageCID := "bafy"

	in := models.RevealedNFT{
		ID:          "0190f5a8-6c1e-7c3a-9b7e-3f1d2c4b5a69",
		Owner:       "alice",
		Name:        "Art",
		Description: &description,
		ImageCID:    &imageCID,
		Lock:        models.Staked(since, 3),
	}

	out := NFTFromProto(NFTToProto(in))

	assert.Equal(t, models.LockStaked, out.Lock.Status)
	require.NotNil(t, out.Lock.Since)
	assert.True(t, since.Equal(*out.Lock.Since))
	require.NotNil(t, out.Lock.Maturity)
	assert.Equal(t, models.Maturity(3), *out.Lock.Maturity)
	require.NotNil(t, out.Description)
	assert.Equal(t, "hidden", *out.Description)
}

func TestAirdropResultToProto_KeepsFailures(t *testing.T) {
	result := AirdropResultToProto(models.AirdropResult{
		SourceID: "0190f5a8-6c1e-7c3a-9b7e-3f1d2c4b5a69",
		Outcomes: []models.AirdropOutcome{
			{Recipient: "carol", ID: "0190f5a8-6c1e-7c3a-9b7e-3f1d2c4b5a70"},
			{Recipient: "bad addr", Err: errors.New("invalid recipient")},
		},
	})

	back := AirdropResultFromProto(result)
	assert.Len(t, back.Succeeded(), 1)
	require.Len(t, back.Failed(), 1)
	assert.Equal(t, "invalid recipient", back.Failed()[0].Error)
}
