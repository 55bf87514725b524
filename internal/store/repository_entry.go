// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-diary/internal/logger"
	"github.com/MKhiriev/go-diary/models"
)

// entryRepository is the SQL implementation of [EntryRepository] over the
// "entries" table.
type entryRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewEntryRepository constructs an [EntryRepository] backed by db.
func NewEntryRepository(db *DB, logger *logger.Logger) EntryRepository {
	logger.Debug().Msg("creating entry repository")
	return &entryRepository{
		db:     db,
		logger: logger,
	}
}

// CreateEntry inserts entry with the timestamp supplied by the caller and
// returns it with the store-assigned id.
//
// A missing owner surfaces as [ErrUserReferenceViolation].
func (r *entryRepository) CreateEntry(ctx context.Context, entry models.Entry) (models.Entry, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildInsertEntryQuery(r.db.builder(), r.db.dialect, entry)
	if err != nil {
		log.Err(err).Str("func", "*entryRepository.CreateEntry").Msg("error building query")
		return models.Entry{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	id, err := insertReturningID(ctx, r.db, query, args)
	if err != nil {
		if r.db.classify(err) == ForeignKeyViolation {
			log.Error().Str("func", "*entryRepository.CreateEntry").Int64("user_id", entry.UserID).Msg("entry references a missing user")
			return models.Entry{}, fmt.Errorf("%w: user_id=%d", ErrUserReferenceViolation, entry.UserID)
		}

		log.Err(err).Str("func", "*entryRepository.CreateEntry").Int64("user_id", entry.UserID).Msg("error inserting entry")
		return models.Entry{}, r.db.wrapDriverError(ErrExecutingStatement, err)
	}

	entry.ID = id
	log.Debug().Str("func", "*entryRepository.CreateEntry").Int64("user_id", entry.UserID).Int64("entry_id", id).Msg("entry created")
	return entry, nil
}

// ListEntries returns every entry of userID ordered by descending id. No
// entries is an empty slice, not an error.
func (r *entryRepository) ListEntries(ctx context.Context, userID int64) ([]models.Entry, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildListEntriesQuery(r.db.builder(), userID)
	if err != nil {
		log.Err(err).Str("func", "*entryRepository.ListEntries").Msg("error building query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*entryRepository.ListEntries").Int64("user_id", userID).Msg("error querying entries")
		return nil, r.db.wrapDriverError(ErrExecutingQuery, err)
	}
	defer rows.Close()

	entries := make([]models.Entry, 0)
	for rows.Next() {
		var entry models.Entry
		if err := rows.Scan(&entry.ID, &entry.UserID, &entry.Title, &entry.Content, &entry.Timestamp); err != nil {
			log.Err(err).Str("func", "*entryRepository.ListEntries").Int64("user_id", userID).Msg("error scanning entry row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		entries = append(entries, entry)
	}

	if err := rows.Err(); err != nil {
		log.Err(err).Str("func", "*entryRepository.ListEntries").Int64("user_id", userID).Msg("error iterating entry rows")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return entries, nil
}

// GetEntry returns entryID if it belongs to userID.
func (r *entryRepository) GetEntry(ctx context.Context, userID, entryID int64) (models.Entry, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildGetEntryQuery(r.db.builder(), entryID)
	if err != nil {
		log.Err(err).Str("func", "*entryRepository.GetEntry").Msg("error building query")
		return models.Entry{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var entry models.Entry
	err = r.db.QueryRowContext(ctx, query, args...).Scan(&entry.ID, &entry.UserID, &entry.Title, &entry.Content, &entry.Timestamp)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Entry{}, ErrEntryNotFound
	}
	if err != nil {
		log.Err(err).Str("func", "*entryRepository.GetEntry").Int64("entry_id", entryID).Msg("error querying entry")
		return models.Entry{}, r.db.wrapDriverError(ErrExecutingQuery, err)
	}

	if entry.UserID != userID {
		log.Warn().Str("func", "*entryRepository.GetEntry").Int64("user_id", userID).Int64("entry_id", entryID).Msg("entry belongs to another user")
		return models.Entry{}, ErrEntryForbidden
	}

	return entry, nil
}

// UpdateEntry overwrites title, content and timestamp of an entry the caller
// owns. Concurrent updates are last-write-wins.
func (r *entryRepository) UpdateEntry(ctx context.Context, update models.EntryUpdate) error {
	query, args, err := buildUpdateEntryQuery(r.db.builder(), update)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*entryRepository.UpdateEntry").Msg("error building query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return r.execOwned(ctx, "*entryRepository.UpdateEntry", update.UserID, update.ID, query, args)
}

// DeleteEntry hard-deletes an entry the caller owns. Deleting an id that no
// longer exists reports [ErrEntryNotFound].
func (r *entryRepository) DeleteEntry(ctx context.Context, userID, entryID int64) error {
	query, args, err := buildDeleteEntryQuery(r.db.builder(), userID, entryID)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*entryRepository.DeleteEntry").Msg("error building query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return r.execOwned(ctx, "*entryRepository.DeleteEntry", userID, entryID, query, args)
}

// execOwned runs a statement filtered by (id, user_id) in a transaction. When
// it touches no row, the owner of entryID is looked up in the same
// transaction to tell [ErrEntryNotFound] from [ErrEntryForbidden].
func (r *entryRepository) execOwned(ctx context.Context, funcName string, userID, entryID int64, query string, args []any) error {
	log := logger.FromContext(ctx)

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).Str("func", funcName).Msg("failed to begin transaction")
		return r.db.wrapDriverError(ErrBeginningTransaction, err)
	}
	defer tx.Rollback()

	result, err := tx.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", funcName).Int64("user_id", userID).Int64("entry_id", entryID).Msg("failed to execute statement")
		return r.db.wrapDriverError(ErrExecutingStatement, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		log.Err(err).Str("func", funcName).Msg("failed to read affected rows")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	if affected == 0 {
		ownerQuery, ownerArgs, err := buildEntryOwnerQuery(r.db.builder(), entryID)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
		}

		var ownerID int64
		err = tx.QueryRowContext(ctx, ownerQuery, ownerArgs...).Scan(&ownerID)
		if errors.Is(err, sql.ErrNoRows) {
			log.Warn().Str("func", funcName).Int64("entry_id", entryID).Msg("entry not found")
			return ErrEntryNotFound
		}
		if err != nil {
			log.Err(err).Str("func", funcName).Int64("entry_id", entryID).Msg("failed to look up entry owner")
			return r.db.wrapDriverError(ErrExecutingQuery, err)
		}

		log.Warn().Str("func", funcName).Int64("user_id", userID).Int64("entry_id", entryID).Msg("entry belongs to another user")
		return ErrEntryForbidden
	}

	if commitErr := tx.Commit(); commitErr != nil {
		log.Err(commitErr).Str("func", funcName).Int64("entry_id", entryID).Msg("failed to commit transaction")
		return fmt.Errorf("%w: %w", ErrCommitingTransaction, commitErr)
	}

	log.Debug().Str("func", funcName).Int64("user_id", userID).Int64("entry_id", entryID).Msg("entry written")
	return nil
}
