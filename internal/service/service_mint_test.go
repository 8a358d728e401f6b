package service

import (
	"context"
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/shielded-nft/internal/config"
	"github.com/MKhiriev/shielded-nft/internal/logger"
	"github.com/MKhiriev/shielded-nft/internal/store"
	"github.com/MKhiriev/shielded-nft/models"
)

func TestMint_StoresUnlockedRecord(t *testing.T) {
	env := newTestEnv(t, config.App{})
	params := artParams("alice")
	params.LockMaturity = models.NewMaturity(9)

	id := env.mustMint(t, params)

	_, err := models.ParseAssetID(string(id))
	require.NoError(t, err)

	nft := env.mustGet(t, id)
	assert.Equal(t, "alice", nft.Owner)
	assert.Equal(t, params.Metadata, nft.Metadata)
	assert.Equal(t, models.Unlocked(), nft.Lock)
	require.NotNil(t, nft.LockMaturity)
	assert.Equal(t, models.Maturity(9), *nft.LockMaturity)
	assert.Equal(t, env.clock.Now(), nft.CreatedAt)

	assert.Equal(t, float64(1), testutil.ToFloat64(env.metrics.Operations.WithLabelValues(opMint, "ok")))
}

func TestMint_DoesNotAliasCallerMemory(t *testing.T) {
	env := newTestEnv(t, config.App{})
	params := artParams("alice")
	params.LockMaturity = models.NewMaturity(2)

	id := env.mustMint(t, params)
	params.Metadata.Attributes[0] = 'X'
	*params.LockMaturity = 7

	nft := env.mustGet(t, id)
	assert.Equal(t, byte('{'), nft.Metadata.Attributes[0])
	assert.Equal(t, models.Maturity(2), *nft.LockMaturity)
}

func TestMint_Validation(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(p *models.MintParams)
		wantErr error
	}{
		{name: "empty owner", mutate: func(p *models.MintParams) { p.Owner = "" }, wantErr: ErrInvalidRecipient},
		{name: "owner with spaces", mutate: func(p *models.MintParams) { p.Owner = "not an address" }, wantErr: ErrInvalidRecipient},
		{name: "empty name", mutate: func(p *models.MintParams) { p.Metadata.Name = "" }, wantErr: ErrInvalidDataProvided},
		{name: "name too long", mutate: func(p *models.MintParams) { p.Metadata.Name = string(make([]byte, 257)) }, wantErr: ErrInvalidDataProvided},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := newTestEnv(t, config.App{})
			params := artParams("alice")
			tt.mutate(&params)

			id, err := env.mint.Mint(context.Background(), params)
			require.ErrorIs(t, err, tt.wantErr)
			assert.Empty(t, id)

			all, err := env.registry.List(context.Background(), "")
			require.NoError(t, err)
			assert.Empty(t, all)
		})
	}
}

func TestMint_IdentifiersAreUnique(t *testing.T) {
	env := newTestEnv(t, config.App{})

	const workers, perWorker = 8, 50
	var (
		mu  sync.Mutex
		ids = make(map[models.AssetID]struct{})
		wg  sync.WaitGroup
	)
	for range workers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for range perWorker {
				id, err := env.mint.Mint(context.Background(), artParams("alice"))
				if !assert.NoError(t, err) {
					return
				}
				mu.Lock()
				ids[id] = struct{}{}
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	assert.Len(t, ids, workers*perWorker)
}

func TestMint_ForcedDuplicateIsRejected(t *testing.T) {
	registry := store.NewMemoryRegistry()
	svc := NewMintService(registry, fixedIDs{id: models.AssetID(uuid.NewString())}, nil, logger.Nop())

	_, err := svc.Mint(context.Background(), artParams("alice"))
	require.NoError(t, err)

	_, err = svc.Mint(context.Background(), artParams("bob"))
	require.ErrorIs(t, err, store.ErrDuplicateIdentifier)
}
