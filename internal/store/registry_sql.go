// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"sync"

	"github.com/MKhiriev/shielded-nft/internal/crypto"
	"github.com/MKhiriev/shielded-nft/internal/logger"
	"github.com/MKhiriev/shielded-nft/models"
)

// sqlRegistry is the relational implementation of [Registry] for both
// PostgreSQL and SQLite.
//
// Mutations are serialized by mu inside the process and by a row lock
// (SELECT ... FOR UPDATE) or SQLite's database lock across processes.
// Every public method obtains a context-scoped logger via
// [logger.FromContext].
type sqlRegistry struct {
	*DB
	sealer crypto.Sealer

	mu sync.Mutex
}

// NewSQLRegistry constructs a [Registry] backed by db. A non-nil sealer
// encrypts the description and attributes columns at rest.
func NewSQLRegistry(db *DB, sealer crypto.Sealer) Registry {
	return &sqlRegistry{
		DB:     db,
		sealer: sealer,
	}
}

// Insert implements [Registry].
func (r *sqlRegistry) Insert(ctx context.Context, nft models.NFT) error {
	log := logger.FromContext(ctx)

	if err := validateRecord(nft); err != nil {
		return err
	}

	row, err := toNFTRow(nft, r.sealer)
	if err != nil {
		log.Err(err).Str("func", "sqlRegistry.Insert").Str("id", nft.ID.String()).Msg("failed to seal record")
		return err
	}

	query, args, err := r.buildInsertNFTQuery(row)
	if err != nil {
		log.Err(err).Str("func", "sqlRegistry.Insert").Msg("failed to create query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, err := r.DB.ExecContext(ctx, query, args...); err != nil {
		if r.errorClassificator.IsDuplicate(err) {
			log.Warn().Str("func", "sqlRegistry.Insert").Str("id", nft.ID.String()).Msg("duplicate asset identifier")
			return fmt.Errorf("%w: %s", ErrDuplicateIdentifier, nft.ID)
		}
		log.Err(err).
			Str("func", "sqlRegistry.Insert").
			Str("id", nft.ID.String()).
			Bool("retryable", r.errorClassificator.Classify(err) == Retryable).
			Msg("failed to insert asset")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	log.Debug().Str("func", "sqlRegistry.Insert").Str("id", nft.ID.String()).Msg("asset inserted")
	return nil
}

// Get implements [Registry].
func (r *sqlRegistry) Get(ctx context.Context, id models.AssetID) (models.NFT, error) {
	log := logger.FromContext(ctx)

	// a malformed id cannot be stored, and postgres rejects it for a uuid column
	if _, err := models.ParseAssetID(string(id)); err != nil {
		return models.NFT{}, ErrNotFound
	}

	query, args, err := r.buildSelectNFTQuery(id, false)
	if err != nil {
		log.Err(err).Str("func", "sqlRegistry.Get").Msg("failed to create query")
		return models.NFT{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	nft, err := r.scanOne(r.DB.QueryRowContext(ctx, query, args...))
	if err != nil {
		if !errors.Is(err, ErrNotFound) {
			log.Err(err).Str("func", "sqlRegistry.Get").Str("id", id.String()).Msg("failed to get asset")
		}
		return models.NFT{}, err
	}

	return nft, nil
}

// Mutate implements [Registry]. The read, fn and the write run in one
// transaction; any failure rolls it back.
func (r *sqlRegistry) Mutate(ctx context.Context, id models.AssetID, fn MutateFunc) (models.NFT, error) {
	log := logger.FromContext(ctx)

	if _, err := models.ParseAssetID(string(id)); err != nil {
		return models.NFT{}, ErrNotFound
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).Str("func", "sqlRegistry.Mutate").Str("id", id.String()).Msg("failed to begin transaction")
		return models.NFT{}, fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer tx.Rollback()

	query, args, err := r.buildSelectNFTQuery(id, true)
	if err != nil {
		return models.NFT{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	current, err := r.scanOne(tx.QueryRowContext(ctx, query, args...))
	if err != nil {
		if !errors.Is(err, ErrNotFound) {
			log.Err(err).Str("func", "sqlRegistry.Mutate").Str("id", id.String()).Msg("failed to select asset for update")
		}
		return models.NFT{}, err
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

	row, err := toNFTRow(next, r.sealer)
	if err != nil {
		return models.NFT{}, err
	}

	query, args, err = r.buildUpdateNFTQuery(row)
	if err != nil {
		return models.NFT{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err := tx.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).
			Str("func", "sqlRegistry.Mutate").
			Str("id", id.String()).
			Bool("retryable", r.errorClassificator.Classify(err) == Retryable).
			Msg("failed to update asset")
		return models.NFT{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	if commitErr := tx.Commit(); commitErr != nil {
		log.Err(commitErr).Str("func", "sqlRegistry.Mutate").Str("id", id.String()).Msg("failed to commit transaction")
		return models.NFT{}, fmt.Errorf("%w: %w", ErrCommitingTransaction, commitErr)
	}

	log.Debug().Str("func", "sqlRegistry.Mutate").Str("id", id.String()).Msg("asset updated")
	return next, nil
}

// List implements [Registry].
func (r *sqlRegistry) List(ctx context.Context, owner string) ([]models.NFT, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.buildListNFTsQuery(owner)
	if err != nil {
		log.Err(err).Str("func", "sqlRegistry.List").Msg("failed to create query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "sqlRegistry.List").Str("owner", owner).Msg("failed to execute query for listing assets")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	results := make([]models.NFT, 0, 50)
	for rows.Next() {
		row, scanErr := scanNFTRow(rows)
		if scanErr != nil {
			log.Err(scanErr).Str("func", "sqlRegistry.List").Msg("failed to scan asset row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}

		nft, err := row.toNFT(r.sealer)
		if err != nil {
			log.Err(err).Str("func", "sqlRegistry.List").Str("id", row.ID).Msg("failed to open sealed columns")
			return nil, err
		}
		results = append(results, nft)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).Str("func", "sqlRegistry.List").Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return results, nil
}

func (r *sqlRegistry) scanOne(s rowScanner) (models.NFT, error) {
	row, err := scanNFTRow(s)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.NFT{}, ErrNotFound
		}
		return models.NFT{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return row.toNFT(r.sealer)
}
