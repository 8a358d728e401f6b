package service

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/shielded-nft/internal/config"
	"github.com/MKhiriev/shielded-nft/internal/store"
	"github.com/MKhiriev/shielded-nft/models"
)

func TestStake_ThenUnstakeRestoresRecord(t *testing.T) {
	env := newTestEnv(t, config.App{})
	ctx := context.Background()
	params := artParams("alice")
	params.LockMaturity = models.NewMaturity(3)
	id := env.mustMint(t, params)
	before := env.mustGet(t, id)

	require.NoError(t, env.staking.Stake(ctx, id))

	staked := env.mustGet(t, id)
	require.True(t, staked.Lock.IsStaked())
	assert.Equal(t, env.clock.Now(), *staked.Lock.Since)
	assert.Equal(t, models.Maturity(3), *staked.Lock.Maturity)

	require.NoError(t, env.staking.Unstake(ctx, id))

	assert.Equal(t, before, env.mustGet(t, id))
}

func TestStake_AppliesDefaultMaturity(t *testing.T) {
	tests := []struct {
		name string
		cfg  config.App
		want models.Maturity
	}{
		{name: "named default", cfg: config.App{}, want: models.DefaultLockMaturity},
		{name: "configured default", cfg: config.App{DefaultLockMaturity: 12}, want: 12},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := newTestEnv(t, tt.cfg)
			id := env.mustMint(t, artParams("alice"))

			require.NoError(t, env.staking.Stake(context.Background(), id))

			nft := env.mustGet(t, id)
			assert.Equal(t, tt.want, *nft.Lock.Maturity)
			assert.Nil(t, nft.LockMaturity, "the mint-time marker is not rewritten")
		})
	}
}

func TestStake_TwiceFails(t *testing.T) {
	env := newTestEnv(t, config.App{})
	ctx := context.Background()
	id := env.mustMint(t, artParams("alice"))

	require.NoError(t, env.staking.Stake(ctx, id))
	staked := env.mustGet(t, id)

	env.clock.Advance(time.Minute)
	require.ErrorIs(t, env.staking.Stake(ctx, id), ErrAlreadyStaked)
	assert.Equal(t, staked, env.mustGet(t, id))
}

func TestUnstake_NotStaked(t *testing.T) {
	env := newTestEnv(t, config.App{})
	id := env.mustMint(t, artParams("alice"))

	require.ErrorIs(t, env.staking.Unstake(context.Background(), id), ErrNotStaked)
}

func TestStaking_NotFound(t *testing.T) {
	env := newTestEnv(t, config.App{})
	missing := models.AssetID(uuid.NewString())

	require.ErrorIs(t, env.staking.Stake(context.Background(), missing), store.ErrNotFound)
	require.ErrorIs(t, env.staking.Unstake(context.Background(), missing), store.ErrNotFound)
}

func TestUnstake_EnforcedMaturity(t *testing.T) {
	env := newTestEnv(t, config.App{EnforceMaturity: true, EpochDuration: time.Hour})
	ctx := context.Background()
	params := artParams("alice")
	params.LockMaturity = models.NewMaturity(2)
	id := env.mustMint(t, params)

	require.NoError(t, env.staking.Stake(ctx, id))

	env.clock.Advance(time.Hour)
	require.ErrorIs(t, env.staking.Unstake(ctx, id), ErrMaturityNotReached)
	assert.True(t, env.mustGet(t, id).Lock.IsStaked())

	env.clock.Advance(time.Hour)
	require.NoError(t, env.staking.Unstake(ctx, id))
	assert.False(t, env.mustGet(t, id).Lock.IsStaked())
}

func TestUnstake_MaturityIsAdvisoryByDefault(t *testing.T) {
	env := newTestEnv(t, config.App{})
	ctx := context.Background()
	id := env.mustMint(t, artParams("alice"))

	require.NoError(t, env.staking.Stake(ctx, id))
	require.NoError(t, env.staking.Unstake(ctx, id))
}
