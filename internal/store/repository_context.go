// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/MKhiriev/ucip-keeper/internal/logger"
)

const (
	contextsTable = "contexts"

	upsertContextSuffix = "ON CONFLICT (user_id) DO UPDATE SET ciphertext = excluded.ciphertext, updated_at = excluded.updated_at"
)

// contextRepository is the SQL implementation of [ContextStorage] over the
// "contexts" table. It works with both PostgreSQL and SQLite; the dialect
// only changes placeholders and error classification.
type contextRepository struct {
	db     *DB
	logger *logger.Logger
	now    func() time.Time
}

// NewContextRepository constructs a [ContextStorage] backed by db.
func NewContextRepository(db *DB, logger *logger.Logger) (ContextStorage, error) {
	if db == nil || db.DB == nil {
		return nil, ErrNilDatabase
	}

	logger.Debug().Str("dialect", db.dialect).Msg("creating context repository")
	return &contextRepository{
		db:     db,
		logger: logger,
		now:    time.Now,
	}, nil
}

func (r *contextRepository) Get(ctx context.Context, userID string) ([]byte, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.db.builder().
		Select("ciphertext").
		From(contextsTable).
		Where(sq.Eq{"user_id": userID}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "contextRepository.Get").
			Str("user_id", userID).
			Msg("failed to select context")
		return nil, r.db.wrapError(err)
	}
	defer rows.Close()

	if !rows.Next() {
		if err = rows.Err(); err != nil {
			return nil, r.db.wrapError(err)
		}
		return nil, ErrContextNotFound
	}

	var ciphertext []byte
	if err = rows.Scan(&ciphertext); err != nil {
		log.Err(err).
			Str("func", "contextRepository.Get").
			Str("user_id", userID).
			Msg("failed to scan context row")
		return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return ciphertext, nil
}

func (r *contextRepository) Put(ctx context.Context, userID string, ciphertext []byte) error {
	log := logger.FromContext(ctx)

	query, args, err := r.db.builder().
		Insert(contextsTable).
		Columns("user_id", "ciphertext", "updated_at").
		Values(userID, ciphertext, r.now().UTC()).
		Suffix(upsertContextSuffix).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = r.db.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).
			Str("func", "contextRepository.Put").
			Str("user_id", userID).
			Msg("failed to upsert context")
		return r.db.wrapError(err)
	}

	return nil
}

func (r *contextRepository) Ping(ctx context.Context) error {
	if err := r.db.PingContext(ctx); err != nil {
		return fmt.Errorf("%w: %w", ErrStorageUnavailable, err)
	}
	return nil
}
