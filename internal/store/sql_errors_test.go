package store

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
)

func TestPostgresErrorClassifier(t *testing.T) {
	c := NewPostgresErrorClassifier()

	dup := fmt.Errorf("insert: %w", &pgconn.PgError{Code: pgerrcode.UniqueViolation})
	assert.True(t, c.IsDuplicate(dup))
	assert.Equal(t, NonRetryable, c.Classify(dup))

	conn := &pgconn.PgError{Code: pgerrcode.ConnectionFailure}
	assert.False(t, c.IsDuplicate(conn))
	assert.Equal(t, Retryable, c.Classify(conn))

	plain := errors.New("not a driver error")
	assert.False(t, c.IsDuplicate(plain))
	assert.Equal(t, NonRetryable, c.Classify(plain))
}

func TestSQLiteErrorClassifier(t *testing.T) {
	c := NewSQLiteErrorClassifier()

	dup := sqlite3.Error{Code: sqlite3.ErrConstraint, ExtendedCode: sqlite3.ErrConstraintPrimaryKey}
	assert.True(t, c.IsDuplicate(dup))
	assert.Equal(t, NonRetryable, c.Classify(dup))

	busy := sqlite3.Error{Code: sqlite3.ErrBusy}
	assert.False(t, c.IsDuplicate(busy))
	assert.Equal(t, Retryable, c.Classify(fmt.Errorf("exec: %w", busy)))

	assert.False(t, c.IsDuplicate(errors.New("boom")))
}
