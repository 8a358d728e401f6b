// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/MKhiriev/shielded-nft/models"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestNFT(owner string) models.NFT {
	return models.NFT{
		ID:    models.AssetID(uuid.NewString()),
		Owner: owner,
		Metadata: models.ShieldedMetadata{
			Name:        "Art#1",
			Description: "secret description",
			ImageCID:    "bafybeigdyrzt",
			Attributes:  []byte(`{"rarity":"legendary"}`),
			Shielded:    true,
		},
		LockMaturity: models.NewMaturity(3),
		Lock:         models.Unlocked(),
		CreatedAt:    time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC),
	}
}

// ── Insert / Get ──────────────────────────────────────────────────────────────

func TestMemoryRegistry_InsertAndGet(t *testing.T) {
	r := NewMemoryRegistry()
	ctx := context.Background()
	nft := newTestNFT("alice")

	require.NoError(t, r.Insert(ctx, nft))

	got, err := r.Get(ctx, nft.ID)
	require.NoError(t, err)
	assert.Equal(t, nft, got)
}

func TestMemoryRegistry_Insert_Duplicate(t *testing.T) {
	r := NewMemoryRegistry()
	ctx := context.Background()
	nft := newTestNFT("alice")

	require.NoError(t, r.Insert(ctx, nft))

	other := nft
	other.Owner = "mallory"
	err := r.Insert(ctx, other)
	require.ErrorIs(t, err, ErrDuplicateIdentifier)

	got, err := r.Get(ctx, nft.ID)
	require.NoError(t, err)
	assert.Equal(t, "alice", got.Owner)
}

func TestMemoryRegistry_Insert_InvalidRecord(t *testing.T) {
	r := NewMemoryRegistry()
	ctx := context.Background()

	tests := []struct {
		name   string
		mutate func(n *models.NFT)
	}{
		{name: "empty owner", mutate: func(n *models.NFT) { n.Owner = "" }},
		{name: "malformed id", mutate: func(n *models.NFT) { n.ID = "not-a-uuid" }},
		{name: "bad lock", mutate: func(n *models.NFT) { n.Lock = models.LockState{Status: "frozen"} }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			nft := newTestNFT("alice")
			tt.mutate(&nft)

			require.ErrorIs(t, r.Insert(ctx, nft), ErrInvalidRecord)
		})
	}
}

func TestMemoryRegistry_Get_NotFound(t *testing.T) {
	r := NewMemoryRegistry()

	_, err := r.Get(context.Background(), models.AssetID(uuid.NewString()))
	require.ErrorIs(t, err, ErrNotFound)
}

func TestMemoryRegistry_ReturnsClones(t *testing.T) {
	r := NewMemoryRegistry()
	ctx := context.Background()
	nft := newTestNFT("alice")
	require.NoError(t, r.Insert(ctx, nft))

	// mutate the caller's copy after insert
	nft.Metadata.Attributes[0] = 'X'

	got, err := r.Get(ctx, nft.ID)
	require.NoError(t, err)
	assert.Equal(t, byte('{'), got.Metadata.Attributes[0])

	// mutate the returned snapshot
	got.Metadata.Attributes[0] = 'Y'
	*got.LockMaturity = 99

	again, err := r.Get(ctx, nft.ID)
	require.NoError(t, err)
	assert.Equal(t, byte('{'), again.Metadata.Attributes[0])
	assert.Equal(t, models.Maturity(3), *again.LockMaturity)
}

// ── Mutate ────────────────────────────────────────────────────────────────────

func TestMemoryRegistry_Mutate(t *testing.T) {
	r := NewMemoryRegistry()
	ctx := context.Background()
	nft := newTestNFT("alice")
	require.NoError(t, r.Insert(ctx, nft))

	updated, err := r.Mutate(ctx, nft.ID, func(n *models.NFT) error {
		n.Owner = "bob"
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, "bob", updated.Owner)

	got, err := r.Get(ctx, nft.ID)
	require.NoError(t, err)
	assert.Equal(t, "bob", got.Owner)
	assert.Equal(t, nft.Metadata, got.Metadata)
}

func TestMemoryRegistry_Mutate_ErrorLeavesRecordUntouched(t *testing.T) {
	r := NewMemoryRegistry()
	ctx := context.Background()
	nft := newTestNFT("alice")
	require.NoError(t, r.Insert(ctx, nft))

	errBoom := errors.New("boom")
	_, err := r.Mutate(ctx, nft.ID, func(n *models.NFT) error {
		n.Owner = "bob"
		n.Metadata.Attributes[0] = 'X'
		return errBoom
	})
	require.ErrorIs(t, err, errBoom)

	got, err := r.Get(ctx, nft.ID)
	require.NoError(t, err)
	assert.Equal(t, nft, got)
}

func TestMemoryRegistry_Mutate_RejectsIDChangeAndEmptyOwner(t *testing.T) {
	r := NewMemoryRegistry()
	ctx := context.Background()
	nft := newTestNFT("alice")
	require.NoError(t, r.Insert(ctx, nft))

	_, err := r.Mutate(ctx, nft.ID, func(n *models.NFT) error {
		n.ID = models.AssetID(uuid.NewString())
		return nil
	})
	require.ErrorIs(t, err, ErrInvalidRecord)

	_, err = r.Mutate(ctx, nft.ID, func(n *models.NFT) error {
		n.Owner = ""
		return nil
	})
	require.ErrorIs(t, err, ErrInvalidRecord)

	got, err := r.Get(ctx, nft.ID)
	require.NoError(t, err)
	assert.Equal(t, nft, got)
}

func TestMemoryRegistry_Mutate_NotFound(t *testing.T) {
	r := NewMemoryRegistry()

	called := false
	_, err := r.Mutate(context.Background(), models.AssetID(uuid.NewString()), func(n *models.NFT) error {
		called = true
		return nil
	})
	require.ErrorIs(t, err, ErrNotFound)
	assert.False(t, called)
}

func TestMemoryRegistry_Mutate_CanceledContext(t *testing.T) {
	r := NewMemoryRegistry()
	nft := newTestNFT("alice")
	require.NoError(t, r.Insert(context.Background(), nft))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := r.Mutate(ctx, nft.ID, func(n *models.NFT) error {
		n.Owner = "bob"
		return nil
	})
	require.ErrorIs(t, err, context.Canceled)

	got, err := r.Get(context.Background(), nft.ID)
	require.NoError(t, err)
	assert.Equal(t, "alice", got.Owner)
}

// ── List ──────────────────────────────────────────────────────────────────────

func TestMemoryRegistry_List_InsertionOrderAndOwnerFilter(t *testing.T) {
	r := NewMemoryRegistry()
	ctx := context.Background()

	a1 := newTestNFT("alice")
	b1 := newTestNFT("bob")
	a2 := newTestNFT("alice")
	for _, n := range []models.NFT{a1, b1, a2} {
		require.NoError(t, r.Insert(ctx, n))
	}

	all, err := r.List(ctx, "")
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, []models.AssetID{a1.ID, b1.ID, a2.ID}, []models.AssetID{all[0].ID, all[1].ID, all[2].ID})

	alice, err := r.List(ctx, "alice")
	require.NoError(t, err)
	require.Len(t, alice, 2)
	assert.Equal(t, a1.ID, alice[0].ID)
	assert.Equal(t, a2.ID, alice[1].ID)

	nobody, err := r.List(ctx, "carol")
	require.NoError(t, err)
	assert.Empty(t, nobody)
}

// ── concurrency ───────────────────────────────────────────────────────────────

// TestMemoryRegistry_ConcurrentMutationsAreSerialized runs many
// read-modify-write cycles on one record; a lost update would show up as a
// counter below the number of writers.
func TestMemoryRegistry_ConcurrentMutationsAreSerialized(t *testing.T) {
	r := NewMemoryRegistry()
	ctx := context.Background()
	nft := newTestNFT("owner-0")
	require.NoError(t, r.Insert(ctx, nft))

	const writers = 64
	var wg sync.WaitGroup
	for range writers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := r.Mutate(ctx, nft.ID, func(n *models.NFT) error {
				var i int
				_, _ = fmt.Sscanf(n.Owner, "owner-%d", &i)
				n.Owner = fmt.Sprintf("owner-%d", i+1)
				return nil
			})
			assert.NoError(t, err)
		}()
	}

	// concurrent readers must always see a well-formed record
	for range writers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			got, err := r.Get(ctx, nft.ID)
			assert.NoError(t, err)
			assert.NotEmpty(t, got.Owner)
		}()
	}
	wg.Wait()

	got, err := r.Get(ctx, nft.ID)
	require.NoError(t, err)
	assert.Equal(t, fmt.Sprintf("owner-%d", writers), got.Owner)
}

func TestMemoryRegistry_ConcurrentDuplicateInsert(t *testing.T) {
	r := NewMemoryRegistry()
	ctx := context.Background()
	nft := newTestNFT("alice")

	const inserters = 16
	errs := make(chan error, inserters)
	var wg sync.WaitGroup
	for range inserters {
		wg.Add(1)
		go func() {
			defer wg.Done()
			errs <- r.Insert(ctx, nft)
		}()
	}
	wg.Wait()
	close(errs)

	var ok, dup int
	for err := range errs {
		switch {
		case err == nil:
			ok++
		case errors.Is(err, ErrDuplicateIdentifier):
			dup++
		}
	}
	assert.Equal(t, 1, ok)
	assert.Equal(t, inserters-1, dup)
}
