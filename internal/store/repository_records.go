package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-life-records/internal/logger"
	"github.com/MKhiriev/go-life-records/models"
)

// recordRepository is the PostgreSQL-backed implementation of
// [RecordRepository]. It serves every kind; the table and columns of a call
// come from the [models.Definition] passed in.
//
// All methods obtain a context-scoped logger via [logger.FromContext] for
// structured, request-level tracing of database interactions.
type recordRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewRecordRepository constructs a [RecordRepository] backed by the provided
// database connection and logger.
func NewRecordRepository(db *DB, logger *logger.Logger) RecordRepository {
	logger.Debug().Msg("creating record repository")
	return &recordRepository{
		db:     db,
		logger: logger,
	}
}

// List runs the page query built by [buildListQuery]. A failure the
// classifier marks [Retryable] is retried once.
func (r *recordRepository) List(ctx context.Context, def models.Definition, filter ListFilter) ([]models.Record, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildListQuery(def, filter)
	if err != nil {
		log.Err(err).Str("func", "*recordRepository.List").Msg("error building list query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil && r.db.retryable(err) {
		log.Warn().Err(err).Str("func", "*recordRepository.List").Msg("retrying list query")
		rows, err = r.db.QueryContext(ctx, query, args...)
	}
	if err != nil {
		log.Err(err).Str("func", "*recordRepository.List").Str("kind", string(def.Kind)).Msg("error executing list query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	records := make([]models.Record, 0)
	for rows.Next() {
		var record models.Record
		targets, err := record.ScanTargets(def.Columns)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		if err = rows.Scan(targets...); err != nil {
			log.Err(err).Str("func", "*recordRepository.List").Msg("error scanning record row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		records = append(records, record)
	}

	if err = rows.Err(); err != nil {
		log.Err(err).Str("func", "*recordRepository.List").Msg("error iterating record rows")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return records, nil
}

// Upsert runs the insert-or-merge statement built by [buildUpsertQuery] and
// returns the stored row.
//
// Error handling:
//   - no row returned → [ErrRecordNotSaved].
//   - any other driver-level error → wrapped [ErrExecutingQuery].
func (r *recordRepository) Upsert(ctx context.Context, def models.Definition, ownerID string, write models.RecordWrite) (models.Record, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildUpsertQuery(def, ownerID, write)
	if err != nil {
		log.Err(err).Str("func", "*recordRepository.Upsert").Msg("error building upsert query")
		return models.Record{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	record, err := r.queryRecord(ctx, def, query, args)
	if err != nil {
		log.Err(err).Str("func", "*recordRepository.Upsert").Str("kind", string(def.Kind)).Msg("error saving record")
		if errors.Is(err, sql.ErrNoRows) {
			return models.Record{}, ErrRecordNotSaved
		}
		return models.Record{}, err
	}

	return record, nil
}

// Update runs the statement built by [buildUpdateQuery].
//
// Error handling:
//   - no row matched id and owner → [ErrRecordNotFound].
//   - PostgreSQL unique_violation (23505) → [ErrFingerprintTaken].
//   - PostgreSQL invalid_text_representation (22P02, malformed id) → [ErrRecordNotFound].
//   - any other driver-level error → wrapped [ErrExecutingQuery].
func (r *recordRepository) Update(ctx context.Context, def models.Definition, ownerID, id string, write models.RecordWrite) (models.Record, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildUpdateQuery(def, ownerID, id, write)
	if err != nil {
		log.Err(err).Str("func", "*recordRepository.Update").Msg("error building update query")
		if errors.Is(err, ErrNothingToUpdate) {
			return models.Record{}, err
		}
		return models.Record{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	record, err := r.queryRecord(ctx, def, query, args)
	if err != nil {
		log.Err(err).Str("func", "*recordRepository.Update").Str("kind", string(def.Kind)).Msg("error updating record")

		if errors.Is(err, sql.ErrNoRows) {
			return models.Record{}, ErrRecordNotFound
		}
		return models.Record{}, recordMutationError(err)
	}

	return record, nil
}

// Delete runs the statement built by [buildDeleteQuery] and returns the id
// of the removed row.
//
// Error handling:
//   - no row matched id and owner → [ErrRecordNotFound].
//   - PostgreSQL invalid_text_representation (22P02, malformed id) → [ErrRecordNotFound].
//   - any other driver-level error → wrapped [ErrExecutingQuery].
func (r *recordRepository) Delete(ctx context.Context, def models.Definition, ownerID, id string) (string, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildDeleteQuery(def, ownerID, id)
	if err != nil {
		log.Err(err).Str("func", "*recordRepository.Delete").Msg("error building delete query")
		return "", fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var deletedID string
	if err = r.db.QueryRowContext(ctx, query, args...).Scan(&deletedID); err != nil {
		log.Err(err).Str("func", "*recordRepository.Delete").Str("kind", string(def.Kind)).Msg("error deleting record")

		if errors.Is(err, sql.ErrNoRows) {
			return "", ErrRecordNotFound
		}
		return "", recordMutationError(fmt.Errorf("%w: %w", ErrExecutingQuery, err))
	}

	return deletedID, nil
}

// queryRecord executes a single-row statement and scans it into a record.
// sql.ErrNoRows is returned as is; other failures wrap [ErrExecutingQuery]
// and keep the driver error reachable for [postgresError].
func (r *recordRepository) queryRecord(ctx context.Context, def models.Definition, query string, args []any) (models.Record, error) {
	var record models.Record

	targets, err := record.ScanTargets(def.Columns)
	if err != nil {
		return models.Record{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	err = r.db.QueryRowContext(ctx, query, args...).Scan(targets...)
	switch {
	case err == nil:
		return record, nil
	case errors.Is(err, sql.ErrNoRows):
		return models.Record{}, err
	default:
		return models.Record{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
}
