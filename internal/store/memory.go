// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"
	"sync"

	"github.com/MKhiriev/shielded-nft/models"
)

// memoryRegistry implements Registry with a map guarded by one RWMutex.
// Mutations take the write lock for the whole registry; readers share the
// read lock. Records are cloned on the way in and out.
type memoryRegistry struct {
	mu    sync.RWMutex
	nfts  map[models.AssetID]models.NFT
	order []models.AssetID
}

// NewMemoryRegistry creates an empty in-memory registry.
func NewMemoryRegistry() Registry {
	return &memoryRegistry{
		nfts: make(map[models.AssetID]models.NFT),
	}
}

// Insert implements [Registry].
func (r *memoryRegistry) Insert(ctx context.Context, nft models.NFT) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := validateRecord(nft); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.nfts[nft.ID]; ok {
		return fmt.Errorf("%w: %s", ErrDuplicateIdentifier, nft.ID)
	}

	r.nfts[nft.ID] = nft.Clone()
	r.order = append(r.order, nft.ID)
	return nil
}

// Get implements [Registry].
func (r *memoryRegistry) Get(ctx context.Context, id models.AssetID) (models.NFT, error) {
	if err := ctx.Err(); err != nil {
		return models.NFT{}, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	nft, ok := r.nfts[id]
	if !ok {
		return models.NFT{}, ErrNotFound
	}
	return nft.Clone(), nil
}

// Mutate implements [Registry]. fn works on a clone, so an error from fn
// leaves the stored record unchanged.
func (r *memoryRegistry) Mutate(ctx context.Context, id models.AssetID, fn MutateFunc) (models.NFT, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	// checked under the lock: once the mutation starts it is applied in full
	if err := ctx.Err(); err != nil {
		return models.NFT{}, err
	}

	current, ok := r.nfts[id]
	if !ok {
		return models.NFT{}, ErrNotFound
	}

	next := current.Clone()
	if err := fn(&next); err != nil {
		return models.NFT{}, err
	}
	if next.ID != id {
		return models.NFT{}, fmt.Errorf("%w: identifier cannot change", ErrInvalidRecord)
	}
	if err := validateRecord(next); err != nil {
		return models.NFT{}, err
	}

	r.nfts[id] = next
	return next.Clone(), nil
}

// List implements [Registry].
func (r *memoryRegistry) List(ctx context.Context, owner string) ([]models.NFT, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]models.NFT, 0, len(r.order))
	for _, id := range r.order {
		nft := r.nfts[id]
		if owner != "" && nft.Owner != owner {
			continue
		}
		out = append(out, nft.Clone())
	}
	return out, nil
}
