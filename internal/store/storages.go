package store

import (
	"context"
	"fmt"
	"strings"

	"github.com/MKhiriev/shielded-nft/internal/config"
	"github.com/MKhiriev/shielded-nft/internal/crypto"
	"github.com/MKhiriev/shielded-nft/internal/logger"
)

// Backend names reported by [Storages.Backend].
const (
	BackendMemory   = "memory"
	BackendPostgres = DialectPostgres
	BackendSQLite   = DialectSQLite
)

// Storages owns the registry and the connection behind it.
type Storages struct {
	Registry Registry

	backend string
	db      *DB
}

// NewStorages selects the backend from cfg.DB.DSN:
//   - empty: in-memory registry;
//   - postgres:// or postgresql://: PostgreSQL;
//   - anything else: SQLite.
//
// SQL backends are migrated before use.
func NewStorages(ctx context.Context, cfg config.Storage, log *logger.Logger) (*Storages, error) {
	backend := backendFromDSN(cfg.DB.DSN)
	if backend == BackendMemory {
		log.Info().Str("func", "NewStorages").Msg("using in-memory registry")
		return &Storages{Registry: NewMemoryRegistry(), backend: backend}, nil
	}

	var sealer crypto.Sealer
	if cfg.SealKey != "" {
		s, err := crypto.NewSealer(cfg.SealKey)
		if err != nil {
			return nil, fmt.Errorf("error creating sealer: %w", err)
		}
		sealer = s
	}

	var (
		db  *DB
		err error
	)
	switch backend {
	case BackendPostgres:
		db, err = NewConnectPostgres(ctx, cfg.DB, log)
	default:
		db, err = NewConnectSQLite(ctx, cfg.DB, log)
	}
	if err != nil {
		return nil, err
	}

	if err := db.Migrate(); err != nil {
		log.Err(err).Str("func", "NewStorages").Str("backend", backend).Msg("failed to migrate database")
		_ = db.Close()
		return nil, err
	}

	log.Info().
		Str("func", "NewStorages").
		Str("backend", backend).
		Bool("sealed", sealer != nil).
		Msg("using sql registry")

	return &Storages{
		Registry: NewSQLRegistry(db, sealer),
		backend:  backend,
		db:       db,
	}, nil
}

// Backend returns the name of the selected backend.
func (s *Storages) Backend() string {
	return s.backend
}

// Close releases the database connection, if any.
func (s *Storages) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}

func backendFromDSN(dsn string) string {
	switch {
	case dsn == "":
		return BackendMemory
	case strings.HasPrefix(dsn, "postgres://"), strings.HasPrefix(dsn, "postgresql://"):
		return BackendPostgres
	default:
		return BackendSQLite
	}
}
