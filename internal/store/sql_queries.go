package store

import (
	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/shielded-nft/models"
)

const nftsTable = "nfts"

// nftColumns is the column order shared by every SELECT and the INSERT.
var nftColumns = []string{
	"id",
	"owner",
	"name",
	"description",
	"image_cid",
	"attributes",
	"shielded",
	"lock_maturity",
	"lock_status",
	"staked_at",
	"stake_maturity",
	"created_at",
}

func (db *DB) buildInsertNFTQuery(row nftRow) (string, []any, error) {
	return db.builder.
		Insert(nftsTable).
		Columns(nftColumns...).
		Values(row.values()...).
		ToSql()
}

// buildSelectNFTQuery selects one record. With forUpdate the row is locked
// until the surrounding transaction ends; SQLite locks the whole database
// on write instead and has no FOR UPDATE.
func (db *DB) buildSelectNFTQuery(id models.AssetID, forUpdate bool) (string, []any, error) {
	query := db.builder.
		Select(nftColumns...).
		From(nftsTable).
		Where(sq.Eq{"id": string(id)})

	if forUpdate && db.dialect == DialectPostgres {
		query = query.Suffix("FOR UPDATE")
	}

	return query.ToSql()
}

func (db *DB) buildListNFTsQuery(owner string) (string, []any, error) {
	query := db.builder.
		Select(nftColumns...).
		From(nftsTable).
		OrderBy("created_at", "id")

	if owner != "" {
		query = query.Where(sq.Eq{"owner": owner})
	}

	return query.ToSql()
}

// buildUpdateNFTQuery rewrites every mutable column of the record. id and
// created_at never change.
func (db *DB) buildUpdateNFTQuery(row nftRow) (string, []any, error) {
	return db.builder.
		Update(nftsTable).
		Set("owner", row.Owner).
		Set("name", row.Name).
		Set("description", row.Description).
		Set("image_cid", row.ImageCID).
		Set("attributes", row.Attributes).
		Set("shielded", row.Shielded).
		Set("lock_maturity", row.LockMaturity).
		Set("lock_status", row.LockStatus).
		Set("staked_at", row.StakedAt).
		Set("stake_maturity", row.StakeMaturity).
		Where(sq.Eq{"id": row.ID}).
		ToSql()
}
