package service

import (
	"context"

	"github.com/MKhiriev/go-life-records/models"
)

// AuthService exchanges bearer tokens for verified identities.
type AuthService interface {
	// VerifyToken asks the identity provider who owns token. It performs one
	// provider round trip per call and caches nothing.
	VerifyToken(ctx context.Context, token string) (models.Identity, error)
}

// RecordService runs list, create, update and delete for every resource
// kind.
type RecordService interface {
	List(ctx context.Context, req models.ListRequest) ([]models.Record, error)
	Create(ctx context.Context, req models.CreateRequest) (models.Record, error)
	Update(ctx context.Context, req models.UpdateRequest) (models.Record, error)
	Delete(ctx context.Context, req models.DeleteRequest) (models.DeletedRecord, error)
}

// RecordServiceWrapper defines middleware composition for RecordService.
// Implementations wrap an existing RecordService to add behavior such as
// logging or validating.
type RecordServiceWrapper interface {
	Wrap(RecordService) RecordService // returns a decorated RecordService applying additional behavior
}

// AppInfoService reports the build version and the health of the backing
// store.
type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
	Health(ctx context.Context) (models.HealthStatus, error)
}

// Pinger checks that a dependency answers.
type Pinger interface {
	Ping(ctx context.Context) error
}
