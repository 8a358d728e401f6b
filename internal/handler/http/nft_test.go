package http

import (
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/shielded-nft/models"
)

const missingID = "0190f5a8-6c1e-7c3a-9b7e-3f1d2c4b5a69"

func TestMint(t *testing.T) {
	router := newTestRouter(t, Settings{})

	t.Run("created", func(t *testing.T) {
		resp := mintVia(t, router, "alice", "Art#1")

		_, err := models.ParseAssetID(resp.ID.String())
		assert.NoError(t, err)
		assert.NotEmpty(t, resp.ViewingKey)
	})

	tests := []struct {
		name string
		body string
	}{
		{name: "invalid json", body: `{bad json}`},
		{name: "empty body", body: ``},
		{name: "bad owner", body: `{"owner":"a b","name":"x"}`},
		{name: "empty name", body: `{"owner":"alice","name":""}`},
		{name: "name too long", body: `{"owner":"alice","name":"` + strings.Repeat("n", 300) + `"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := doRequest(t, router, http.MethodPost, "/api/nft/mint", []byte(tt.body), nil)

			assert.Equal(t, http.StatusBadRequest, rec.Code)
			errResp := decodeResponse[models.ErrorResponse](t, rec)
			assert.NotEmpty(t, errResp.Error)
		})
	}
}

func TestView(t *testing.T) {
	router := newTestRouter(t, Settings{})
	minted := mintVia(t, router, "alice", "Art#1")

	t.Run("without key is redacted", func(t *testing.T) {
		rec := doRequest(t, router, http.MethodGet, "/api/nft/"+minted.ID.String(), nil, nil)
		require.Equal(t, http.StatusOK, rec.Code)

		got := decodeResponse[models.RevealedNFT](t, rec)
		assert.True(t, got.Redacted)
		assert.Equal(t, "Art#1", got.Name)
		assert.Equal(t, "alice", got.Owner)
		assert.Nil(t, got.Description)
		assert.Nil(t, got.ImageCID)
		assert.NotContains(t, rec.Body.String(), "hidden Art#1")
	})

	t.Run("header key reveals", func(t *testing.T) {
		rec := doRequest(t, router, http.MethodGet, "/api/nft/"+minted.ID.String(), nil,
			map[string]string{viewingKeyHeader: string(minted.ViewingKey)})
		require.Equal(t, http.StatusOK, rec.Code)

		got := decodeResponse[models.RevealedNFT](t, rec)
		assert.False(t, got.Redacted)
		require.NotNil(t, got.Description)
		assert.Equal(t, "hidden Art#1", *got.Description)
		assert.JSONEq(t, `{"rarity":"rare"}`, string(got.Attributes))
	})

	t.Run("query key reveals", func(t *testing.T) {
		target := "/api/nft/" + minted.ID.String() + "?viewing_key=" + string(minted.ViewingKey)
		rec := doRequest(t, router, http.MethodGet, target, nil, nil)
		require.Equal(t, http.StatusOK, rec.Code)

		got := decodeResponse[models.RevealedNFT](t, rec)
		assert.False(t, got.Redacted)
	})

	t.Run("garbage key is redacted", func(t *testing.T) {
		rec := doRequest(t, router, http.MethodGet, "/api/nft/"+minted.ID.String(), nil,
			map[string]string{viewingKeyHeader: "garbage"})
		require.Equal(t, http.StatusOK, rec.Code)

		got := decodeResponse[models.RevealedNFT](t, rec)
		assert.True(t, got.Redacted)
	})

	t.Run("unknown id", func(t *testing.T) {
		rec := doRequest(t, router, http.MethodGet, "/api/nft/"+missingID, nil, nil)
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("malformed id", func(t *testing.T) {
		rec := doRequest(t, router, http.MethodGet, "/api/nft/abc-123", nil, nil)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestTransfer(t *testing.T) {
	router := newTestRouter(t, Settings{})
	minted := mintVia(t, router, "alice", "Art#1")

	rec := doRequest(t, router, http.MethodPost, "/api/nft/transfer",
		encodeBody(t, models.TransferRequest{ID: minted.ID, To: "bob"}), nil)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Equal(t, models.StatusResponse{Status: "ok", ID: minted.ID}, decodeResponse[models.StatusResponse](t, rec))

	// the key issued to alice no longer unlocks the asset
	rec = doRequest(t, router, http.MethodGet, "/api/nft/"+minted.ID.String(), nil,
		map[string]string{viewingKeyHeader: string(minted.ViewingKey)})
	require.Equal(t, http.StatusOK, rec.Code)
	got := decodeResponse[models.RevealedNFT](t, rec)
	assert.Equal(t, "bob", got.Owner)
	assert.True(t, got.Redacted)

	t.Run("unknown id", func(t *testing.T) {
		rec := doRequest(t, router, http.MethodPost, "/api/nft/transfer",
			encodeBody(t, models.TransferRequest{ID: missingID, To: "bob"}), nil)
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("bad recipient", func(t *testing.T) {
		rec := doRequest(t, router, http.MethodPost, "/api/nft/transfer",
			encodeBody(t, models.TransferRequest{ID: minted.ID, To: ""}), nil)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestIssueViewingKey(t *testing.T) {
	router := newTestRouter(t, Settings{})
	minted := mintVia(t, router, "alice", "Art#1")
	target := "/api/nft/" + minted.ID.String() + "/viewing-key"

	rec := doRequest(t, router, http.MethodPost, target, encodeBody(t, models.ViewingKeyRequest{Owner: "alice"}), nil)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	key := decodeResponse[models.ViewingKeyResponse](t, rec).ViewingKey
	require.NotEmpty(t, key)

	rec = doRequest(t, router, http.MethodGet, "/api/nft/"+minted.ID.String(), nil,
		map[string]string{viewingKeyHeader: string(key)})
	require.Equal(t, http.StatusOK, rec.Code)
	assert.False(t, decodeResponse[models.RevealedNFT](t, rec).Redacted)

	rec = doRequest(t, router, http.MethodPost, target, encodeBody(t, models.ViewingKeyRequest{Owner: "mallory"}), nil)
	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestList(t *testing.T) {
	router := newTestRouter(t, Settings{})
	mintVia(t, router, "alice", "A")
	mintVia(t, router, "bob", "B")
	mintVia(t, router, "alice", "C")

	rec := doRequest(t, router, http.MethodGet, "/api/nft/", nil, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, decodeResponse[models.ListResponse](t, rec).NFTs, 3)

	rec = doRequest(t, router, http.MethodGet, "/api/nft/?owner=alice", nil, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	list := decodeResponse[models.ListResponse](t, rec).NFTs
	require.Len(t, list, 2)
	for _, n := range list {
		assert.Equal(t, "alice", n.Owner)
		assert.True(t, n.Redacted)
	}

	rec = doRequest(t, router, http.MethodGet, "/api/nft/?owner=a%20b", nil, nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestStakeUnstake(t *testing.T) {
	router := newTestRouter(t, Settings{})
	minted := mintVia(t, router, "alice", "Art#1")
	stake := "/api/nft/" + minted.ID.String() + "/stake"
	unstake := "/api/nft/" + minted.ID.String() + "/unstake"

	rec := doRequest(t, router, http.MethodPost, unstake, nil, nil)
	assert.Equal(t, http.StatusConflict, rec.Code, "unstake of an unlocked asset")

	rec = doRequest(t, router, http.MethodPost, stake, nil, nil)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Equal(t, "staked", decodeResponse[models.StatusResponse](t, rec).Status)

	rec = doRequest(t, router, http.MethodPost, stake, nil, nil)
	assert.Equal(t, http.StatusConflict, rec.Code, "double stake")

	rec = doRequest(t, router, http.MethodPost, "/api/nft/transfer",
		encodeBody(t, models.TransferRequest{ID: minted.ID, To: "bob"}), nil)
	assert.Equal(t, http.StatusConflict, rec.Code, "transfer of a staked asset")

	rec = doRequest(t, router, http.MethodGet, "/api/nft/"+minted.ID.String(), nil, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, decodeResponse[models.RevealedNFT](t, rec).Lock.IsStaked())

	rec = doRequest(t, router, http.MethodPost, unstake, nil, nil)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Equal(t, "unstaked", decodeResponse[models.StatusResponse](t, rec).Status)

	rec = doRequest(t, router, http.MethodPost, "/api/nft/"+missingID+"/stake", nil, nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestAirdrop(t *testing.T) {
	router := newTestRouter(t, Settings{})
	source := mintVia(t, router, "alice", "Drop")

	rec := doRequest(t, router, http.MethodPost, "/api/nft/airdrop",
		encodeBody(t, models.AirdropRequest{ID: source.ID, Recipients: []string{"bob", "bad addr", "carol"}}), nil)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	result := decodeResponse[models.AirdropResult](t, rec)
	assert.Equal(t, source.ID, result.SourceID)
	require.Len(t, result.Outcomes, 3)
	assert.Equal(t, "bob", result.Outcomes[0].Recipient)
	assert.NotEmpty(t, result.Outcomes[0].ID)
	assert.NotEmpty(t, result.Outcomes[1].Error)
	assert.Empty(t, result.Outcomes[1].ID)
	assert.NotEmpty(t, result.Outcomes[2].ID)

	rec = doRequest(t, router, http.MethodGet, "/api/nft/?owner=carol", nil, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	list := decodeResponse[models.ListResponse](t, rec).NFTs
	require.Len(t, list, 1)
	assert.Equal(t, "Drop", list[0].Name)

	t.Run("empty recipients", func(t *testing.T) {
		rec := doRequest(t, router, http.MethodPost, "/api/nft/airdrop",
			encodeBody(t, models.AirdropRequest{ID: source.ID}), nil)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("unknown source", func(t *testing.T) {
		rec := doRequest(t, router, http.MethodPost, "/api/nft/airdrop",
			encodeBody(t, models.AirdropRequest{ID: missingID, Recipients: []string{"bob"}}), nil)
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}
