package store

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"errors"
	"regexp"
	"sync"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/shielded-nft/internal/config"
	"github.com/MKhiriev/shielded-nft/internal/crypto"
	"github.com/MKhiriev/shielded-nft/internal/logger"
	"github.com/MKhiriev/shielded-nft/models"
)

func newMockRegistry(t *testing.T) (Registry, sqlmock.Sqlmock) {
	t.Helper()

	conn, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })

	db := newDB(conn, DialectPostgres, NewPostgresErrorClassifier(), logger.Nop())
	return NewSQLRegistry(db, nil), mock
}

func nftRowsFor(nfts ...models.NFT) *sqlmock.Rows {
	rows := sqlmock.NewRows(nftColumns)
	for _, n := range nfts {
		row, _ := toNFTRow(n, nil)
		values := make([]driver.Value, 0, len(nftColumns))
		for _, v := range row.values() {
			values = append(values, toDriverValue(v))
		}
		rows.AddRow(values...)
	}
	return rows
}

// toDriverValue unwraps the sql.Null* helpers the way a real driver would
// hand them back.
func toDriverValue(v any) any {
	switch val := v.(type) {
	case sql.NullInt64:
		if !val.Valid {
			return nil
		}
		return val.Int64
	case sql.NullTime:
		if !val.Valid {
			return nil
		}
		return val.Time
	}
	return v
}

var (
	insertRe = regexp.QuoteMeta("INSERT INTO nfts")
	selectRe = regexp.QuoteMeta("FROM nfts WHERE id = $1")
	forUpdRe = regexp.QuoteMeta("FROM nfts WHERE id = $1 FOR UPDATE")
	updateRe = regexp.QuoteMeta("UPDATE nfts SET owner = $1")
	listRe   = regexp.QuoteMeta("FROM nfts")
)

// ── Insert ────────────────────────────────────────────────────────────────────

func TestSQLRegistry_Insert(t *testing.T) {
	r, mock := newMockRegistry(t)
	nft := newTestNFT("alice")

	mock.ExpectExec(insertRe).
		WithArgs(string(nft.ID), "alice", sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg(),
			sqlmock.AnyArg(), true, int64(3), "unlocked", nil, nil, sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, r.Insert(context.Background(), nft))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestSQLRegistry_Insert_Duplicate(t *testing.T) {
	r, mock := newMockRegistry(t)
	nft := newTestNFT("alice")

	mock.ExpectExec(insertRe).
		WillReturnError(&pgconn.PgError{Code: pgerrcode.UniqueViolation})

	err := r.Insert(context.Background(), nft)
	require.ErrorIs(t, err, ErrDuplicateIdentifier)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestSQLRegistry_Insert_DriverError(t *testing.T) {
	r, mock := newMockRegistry(t)

	mock.ExpectExec(insertRe).
		WillReturnError(&pgconn.PgError{Code: pgerrcode.ConnectionFailure})

	err := r.Insert(context.Background(), newTestNFT("alice"))
	require.ErrorIs(t, err, ErrExecutingStatement)
}

func TestSQLRegistry_Insert_InvalidRecordNeverReachesDB(t *testing.T) {
	r, mock := newMockRegistry(t)
	nft := newTestNFT("")

	require.ErrorIs(t, r.Insert(context.Background(), nft), ErrInvalidRecord)
	require.NoError(t, mock.ExpectationsWereMet())
}

// ── Get ───────────────────────────────────────────────────────────────────────

func TestSQLRegistry_Get(t *testing.T) {
	r, mock := newMockRegistry(t)
	nft := newTestNFT("alice")

	mock.ExpectQuery(selectRe).
		WithArgs(string(nft.ID)).
		WillReturnRows(nftRowsFor(nft))

	got, err := r.Get(context.Background(), nft.ID)
	require.NoError(t, err)
	assert.Equal(t, nft, got)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestSQLRegistry_Get_NotFound(t *testing.T) {
	r, mock := newMockRegistry(t)
	id := models.AssetID(uuid.NewString())

	mock.ExpectQuery(selectRe).
		WithArgs(string(id)).
		WillReturnRows(sqlmock.NewRows(nftColumns))

	_, err := r.Get(context.Background(), id)
	require.ErrorIs(t, err, ErrNotFound)
}

func TestSQLRegistry_Get_MalformedIDIsNotFound(t *testing.T) {
	r, mock := newMockRegistry(t)

	_, err := r.Get(context.Background(), "not-a-uuid")
	require.ErrorIs(t, err, ErrNotFound)
	require.NoError(t, mock.ExpectationsWereMet())
}

// ── Mutate ────────────────────────────────────────────────────────────────────

func TestSQLRegistry_Mutate_CommitsInOneTransaction(t *testing.T) {
	r, mock := newMockRegistry(t)
	nft := newTestNFT("alice")

	mock.ExpectBegin()
	mock.ExpectQuery(forUpdRe).
		WithArgs(string(nft.ID)).
		WillReturnRows(nftRowsFor(nft))
	mock.ExpectExec(updateRe).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	got, err := r.Mutate(context.Background(), nft.ID, func(n *models.NFT) error {
		n.Owner = "bob"
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, "bob", got.Owner)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestSQLRegistry_Mutate_FnErrorRollsBack(t *testing.T) {
	r, mock := newMockRegistry(t)
	nft := newTestNFT("alice")
	errBoom := errors.New("boom")

	mock.ExpectBegin()
	mock.ExpectQuery(forUpdRe).
		WithArgs(string(nft.ID)).
		WillReturnRows(nftRowsFor(nft))
	mock.ExpectRollback()

	_, err := r.Mutate(context.Background(), nft.ID, func(n *models.NFT) error {
		return errBoom
	})
	require.ErrorIs(t, err, errBoom)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestSQLRegistry_Mutate_NotFoundRollsBack(t *testing.T) {
	r, mock := newMockRegistry(t)
	id := models.AssetID(uuid.NewString())

	mock.ExpectBegin()
	mock.ExpectQuery(forUpdRe).
		WithArgs(string(id)).
		WillReturnRows(sqlmock.NewRows(nftColumns))
	mock.ExpectRollback()

	_, err := r.Mutate(context.Background(), id, func(n *models.NFT) error {
		t.Fatal("fn must not run for a missing record")
		return nil
	})
	require.ErrorIs(t, err, ErrNotFound)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestSQLRegistry_Mutate_IDChangeRollsBack(t *testing.T) {
	r, mock := newMockRegistry(t)
	nft := newTestNFT("alice")

	mock.ExpectBegin()
	mock.ExpectQuery(forUpdRe).
		WithArgs(string(nft.ID)).
		WillReturnRows(nftRowsFor(nft))
	mock.ExpectRollback()

	_, err := r.Mutate(context.Background(), nft.ID, func(n *models.NFT) error {
		n.ID = models.AssetID(uuid.NewString())
		return nil
	})
	require.ErrorIs(t, err, ErrInvalidRecord)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestSQLRegistry_Mutate_BeginError(t *testing.T) {
	r, mock := newMockRegistry(t)

	mock.ExpectBegin().WillReturnError(errors.New("connection reset"))

	_, err := r.Mutate(context.Background(), models.AssetID(uuid.NewString()), func(n *models.NFT) error {
		return nil
	})
	require.ErrorIs(t, err, ErrBeginningTransaction)
}

func TestSQLRegistry_Mutate_CommitError(t *testing.T) {
	r, mock := newMockRegistry(t)
	nft := newTestNFT("alice")

	mock.ExpectBegin()
	mock.ExpectQuery(forUpdRe).WillReturnRows(nftRowsFor(nft))
	mock.ExpectExec(updateRe).WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit().WillReturnError(errors.New("serialization failure"))

	_, err := r.Mutate(context.Background(), nft.ID, func(n *models.NFT) error {
		n.Owner = "bob"
		return nil
	})
	require.ErrorIs(t, err, ErrCommitingTransaction)
}

// ── List ──────────────────────────────────────────────────────────────────────

func TestSQLRegistry_List(t *testing.T) {
	r, mock := newMockRegistry(t)
	a := newTestNFT("alice")
	b := newTestNFT("alice")

	mock.ExpectQuery(listRe).
		WithArgs("alice").
		WillReturnRows(nftRowsFor(a, b))

	got, err := r.List(context.Background(), "alice")
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, a.ID, got[0].ID)
	assert.Equal(t, b.ID, got[1].ID)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestSQLRegistry_List_QueryError(t *testing.T) {
	r, mock := newMockRegistry(t)

	mock.ExpectQuery(listRe).WillReturnError(errors.New("db down"))

	_, err := r.List(context.Background(), "")
	require.ErrorIs(t, err, ErrExecutingQuery)
}

// ── SQLite ────────────────────────────────────────────────────────────────────

func newSQLiteRegistry(t *testing.T, sealer crypto.Sealer) (Registry, *DB) {
	t.Helper()

	db, err := NewConnectSQLite(context.Background(), config.DB{DSN: ":memory:"}, logger.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	require.NoError(t, db.Migrate())

	return NewSQLRegistry(db, sealer), db
}

func assertSameNFT(t *testing.T, want, got models.NFT) {
	t.Helper()

	assert.True(t, want.CreatedAt.Equal(got.CreatedAt), "created_at: want %s got %s", want.CreatedAt, got.CreatedAt)
	if want.Lock.Since != nil {
		require.NotNil(t, got.Lock.Since)
		assert.True(t, want.Lock.Since.Equal(*got.Lock.Since))
	} else {
		assert.Nil(t, got.Lock.Since)
	}

	want.CreatedAt, got.CreatedAt = time.Time{}, time.Time{}
	want.Lock.Since, got.Lock.Since = nil, nil
	assert.Equal(t, want, got)
}

func TestSQLiteRegistry_RoundTrip(t *testing.T) {
	sealer, err := crypto.NewSealer("correct horse battery staple")
	require.NoError(t, err)

	for name, s := range map[string]crypto.Sealer{"plain": nil, "sealed": sealer} {
		t.Run(name, func(t *testing.T) {
			r, _ := newSQLiteRegistry(t, s)
			ctx := context.Background()
			nft := newTestNFT("alice")

			require.NoError(t, r.Insert(ctx, nft))
			require.ErrorIs(t, r.Insert(ctx, nft), ErrDuplicateIdentifier)

			got, err := r.Get(ctx, nft.ID)
			require.NoError(t, err)
			assertSameNFT(t, nft, got)

			since := time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC)
			updated, err := r.Mutate(ctx, nft.ID, func(n *models.NFT) error {
				n.Owner = "bob"
				n.Lock = models.Staked(since, 3)
				return nil
			})
			require.NoError(t, err)
			assert.Equal(t, "bob", updated.Owner)

			got, err = r.Get(ctx, nft.ID)
			require.NoError(t, err)
			assert.Equal(t, "bob", got.Owner)
			require.True(t, got.Lock.IsStaked())
			assert.True(t, since.Equal(*got.Lock.Since))
			assert.Equal(t, models.Maturity(3), *got.Lock.Maturity)
			assert.Equal(t, nft.Metadata, got.Metadata)

			list, err := r.List(ctx, "bob")
			require.NoError(t, err)
			require.Len(t, list, 1)

			list, err = r.List(ctx, "alice")
			require.NoError(t, err)
			assert.Empty(t, list)
		})
	}
}

func TestSQLiteRegistry_SealedColumnsAreNotPlaintext(t *testing.T) {
	sealer, err := crypto.NewSealer("correct horse battery staple")
	require.NoError(t, err)
	r, db := newSQLiteRegistry(t, sealer)
	nft := newTestNFT("alice")

	require.NoError(t, r.Insert(context.Background(), nft))

	var description, imageCID, attributes []byte
	err = db.QueryRow("SELECT description, image_cid, attributes FROM nfts WHERE id = ?", string(nft.ID)).
		Scan(&description, &imageCID, &attributes)
	require.NoError(t, err)
	assert.NotContains(t, string(description), nft.Metadata.Description)
	assert.NotContains(t, string(imageCID), nft.Metadata.ImageCID)
	assert.NotContains(t, string(attributes), "legendary")

	// a different key cannot open the record
	other, err := crypto.NewSealer("another passphrase")
	require.NoError(t, err)
	_, err = NewSQLRegistry(db, other).Get(context.Background(), nft.ID)
	require.ErrorIs(t, err, ErrSealing)
}

func TestSQLiteRegistry_ConcurrentMutations(t *testing.T) {
	r, _ := newSQLiteRegistry(t, nil)
	ctx := context.Background()
	nft := newTestNFT("alice")
	nft.LockMaturity = models.NewMaturity(0)
	require.NoError(t, r.Insert(ctx, nft))

	const writers = 20
	var wg sync.WaitGroup
	for range writers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := r.Mutate(ctx, nft.ID, func(n *models.NFT) error {
				*n.LockMaturity++
				return nil
			})
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	got, err := r.Get(ctx, nft.ID)
	require.NoError(t, err)
	assert.Equal(t, models.Maturity(writers), *got.LockMaturity)
}
