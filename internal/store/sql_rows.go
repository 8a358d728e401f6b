package store

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/MKhiriev/shielded-nft/internal/crypto"
	"github.com/MKhiriev/shielded-nft/models"
)

// nftRow is the column-level shape of a record. Description, image CID and
// attributes hold sealed bytes when a sealer is configured.
type nftRow struct {
	ID            string
	Owner         string
	Name          string
	Description   []byte
	ImageCID      []byte
	Attributes    []byte
	Shielded      bool
	LockMaturity  sql.NullInt64
	LockStatus    string
	StakedAt      sql.NullTime
	StakeMaturity sql.NullInt64
	CreatedAt     time.Time
}

// rowScanner is satisfied by both *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func (r nftRow) values() []any {
	return []any{
		r.ID,
		r.Owner,
		r.Name,
		r.Description,
		r.ImageCID,
		r.Attributes,
		r.Shielded,
		r.LockMaturity,
		r.LockStatus,
		r.StakedAt,
		r.StakeMaturity,
		r.CreatedAt,
	}
}

func scanNFTRow(s rowScanner) (nftRow, error) {
	var row nftRow
	err := s.Scan(
		&row.ID,
		&row.Owner,
		&row.Name,
		&row.Description,
		&row.ImageCID,
		&row.Attributes,
		&row.Shielded,
		&row.LockMaturity,
		&row.LockStatus,
		&row.StakedAt,
		&row.StakeMaturity,
		&row.CreatedAt,
	)
	return row, err
}

func nullMaturity(m *models.Maturity) sql.NullInt64 {
	if m == nil {
		return sql.NullInt64{}
	}
	return sql.NullInt64{Int64: int64(*m), Valid: true}
}

func maturityFromNull(n sql.NullInt64) *models.Maturity {
	if !n.Valid {
		return nil
	}
	return models.NewMaturity(models.Maturity(n.Int64))
}

// toNFTRow converts a record into columns, sealing the private fields with
// the record id as associated data. A nil sealer stores them as is.
func toNFTRow(nft models.NFT, sealer crypto.Sealer) (nftRow, error) {
	row := nftRow{
		ID:            string(nft.ID),
		Owner:         nft.Owner,
		Name:          nft.Metadata.Name,
		Description:   []byte(nft.Metadata.Description),
		ImageCID:      []byte(nft.Metadata.ImageCID),
		Attributes:    nft.Metadata.Attributes,
		Shielded:      nft.Metadata.Shielded,
		LockMaturity:  nullMaturity(nft.LockMaturity),
		LockStatus:    string(nft.Lock.Status),
		StakeMaturity: nullMaturity(nft.Lock.Maturity),
		CreatedAt:     nft.CreatedAt.UTC(),
	}
	if nft.Lock.Since != nil {
		row.StakedAt = sql.NullTime{Time: nft.Lock.Since.UTC(), Valid: true}
	}

	if sealer == nil {
		return row, nil
	}

	aad := []byte(nft.ID)
	description, err := sealer.Seal(row.Description, aad)
	if err != nil {
		return nftRow{}, fmt.Errorf("%w: %w", ErrSealing, err)
	}
	row.Description = description

	imageCID, err := sealer.Seal(row.ImageCID, aad)
	if err != nil {
		return nftRow{}, fmt.Errorf("%w: %w", ErrSealing, err)
	}
	row.ImageCID = imageCID

	if row.Attributes != nil {
		attributes, err := sealer.Seal(row.Attributes, aad)
		if err != nil {
			return nftRow{}, fmt.Errorf("%w: %w", ErrSealing, err)
		}
		row.Attributes = attributes
	}

	return row, nil
}

// toNFT is the inverse of toNFTRow.
func (r nftRow) toNFT(sealer crypto.Sealer) (models.NFT, error) {
	description := r.Description
	imageCID := r.ImageCID
	attributes := r.Attributes

	if sealer != nil {
		aad := []byte(r.ID)
		if description != nil {
			opened, err := sealer.Open(description, aad)
			if err != nil {
				return models.NFT{}, fmt.Errorf("%w: description of %s: %w", ErrSealing, r.ID, err)
			}
			description = opened
		}
		if imageCID != nil {
			opened, err := sealer.Open(imageCID, aad)
			if err != nil {
				return models.NFT{}, fmt.Errorf("%w: image cid of %s: %w", ErrSealing, r.ID, err)
			}
			imageCID = opened
		}
		if attributes != nil {
			opened, err := sealer.Open(attributes, aad)
			if err != nil {
				return models.NFT{}, fmt.Errorf("%w: attributes of %s: %w", ErrSealing, r.ID, err)
			}
			if opened == nil {
				opened = []byte{}
			}
			attributes = opened
		}
	}

	nft := models.NFT{
		ID:    models.AssetID(r.ID),
		Owner: r.Owner,
		Metadata: models.ShieldedMetadata{
			Name:        r.Name,
			Description: string(description),
			ImageCID:    string(imageCID),
			Attributes:  attributes,
			Shielded:    r.Shielded,
		},
		LockMaturity: maturityFromNull(r.LockMaturity),
		Lock: models.LockState{
			Status:   models.LockStatus(r.LockStatus),
			Maturity: maturityFromNull(r.StakeMaturity),
		},
		CreatedAt: r.CreatedAt.UTC(),
	}
	if r.StakedAt.Valid {
		since := r.StakedAt.Time.UTC()
		nft.Lock.Since = &since
	}

	return nft, nil
}
