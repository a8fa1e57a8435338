package store

import (
	"context"
	"fmt"
	"strings"

	"github.com/MKhiriev/ucip-keeper/internal/config"
	"github.com/MKhiriev/ucip-keeper/internal/logger"
)

// Storages groups the storage components built from configuration.
type Storages struct {
	ContextStorage ContextStorage

	db *DB
}

// NewStorages selects the backend from cfg.DB.DSN, connects it and applies
// migrations for SQL backends:
//   - "" or "memory": in-memory map
//   - "postgres://..." or "postgresql://...": PostgreSQL
//   - "sqlite://...", "file:..." or a path ending in ".db": SQLite
func NewStorages(ctx context.Context, cfg config.Storage, log *logger.Logger) (*Storages, error) {
	dsn := strings.TrimSpace(cfg.DB.DSN)

	var (
		db  *DB
		err error
	)
	switch {
	case dsn == "" || dsn == "memory":
		log.Warn().Msg("using in-memory context storage; documents will not survive a restart")
		return &Storages{ContextStorage: NewMemoryStorage()}, nil
	case strings.HasPrefix(dsn, "postgres://"), strings.HasPrefix(dsn, "postgresql://"):
		db, err = NewConnectPostgres(ctx, dsn, log)
	case strings.HasPrefix(dsn, "sqlite://"), strings.HasPrefix(dsn, "file:"), strings.HasSuffix(dsn, ".db"):
		db, err = NewConnectSQLite(ctx, dsn, log)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedDSN, redactDSN(dsn))
	}
	if err != nil {
		return nil, err
	}

	if err = db.Migrate(); err != nil {
		_ = db.Close()
		return nil, err
	}

	repo, err := NewContextRepository(db, log)
	if err != nil {
		_ = db.Close()
		return nil, err
	}

	return &Storages{ContextStorage: repo, db: db}, nil
}

// Close releases the database connection, if any.
func (s *Storages) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}

// redactDSN drops everything after the scheme so credentials never reach
// logs or error messages.
func redactDSN(dsn string) string {
	if scheme, _, ok := strings.Cut(dsn, "://"); ok {
		return scheme + "://..."
	}
	return "..."
}
