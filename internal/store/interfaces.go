package store

import (
	"context"

	"github.com/MKhiriev/go-life-records/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/record_repository_mock.go -package=mock

// RecordRepository persists records of every kind. The kind's
// [models.Definition] supplies the table and column names; each method
// executes exactly one SQL statement.
type RecordRepository interface {
	// List returns one page of records ordered by created_at, newest first.
	List(ctx context.Context, def models.Definition, filter ListFilter) ([]models.Record, error)

	// Upsert inserts a record owned by ownerID, or merges the write into the
	// owner's record with the same non-null fingerprint.
	Upsert(ctx context.Context, def models.Definition, ownerID string, write models.RecordWrite) (models.Record, error)

	// Update changes the listed columns of the record id owned by ownerID.
	// Returns [ErrRecordNotFound] when no such record exists.
	Update(ctx context.Context, def models.Definition, ownerID, id string, write models.RecordWrite) (models.Record, error)

	// Delete removes the record id owned by ownerID and returns its id.
	// Returns [ErrRecordNotFound] when no such record exists.
	Delete(ctx context.Context, def models.Definition, ownerID, id string) (string, error)
}

// ListFilter selects the rows of a list query.
type ListFilter struct {
	// PublicOnly lists records flagged public from every owner. When false,
	// only records of OwnerID are listed.
	PublicOnly bool
	OwnerID    string
	Offset     uint64
	Limit      uint64
}

// ErrorClassificator decides whether a failed database operation may be
// retried.
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}
