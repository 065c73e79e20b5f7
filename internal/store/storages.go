package store

import "github.com/MKhiriev/go-life-records/internal/logger"

// Storages bundles the repositories built on one database handle.
type Storages struct {
	DB               *DB
	RecordRepository RecordRepository
}

// NewStorages builds every repository on db.
func NewStorages(db *DB, logger *logger.Logger) *Storages {
	return &Storages{
		DB:               db,
		RecordRepository: NewRecordRepository(db, logger),
	}
}
