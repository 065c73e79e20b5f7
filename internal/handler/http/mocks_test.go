package http

import (
	"context"

	"github.com/MKhiriev/go-life-records/internal/config"
	"github.com/MKhiriev/go-life-records/internal/logger"
	"github.com/MKhiriev/go-life-records/internal/service"
	"github.com/MKhiriev/go-life-records/models"
)

// ---- Mock: AuthService ----

type mockAuthSvc struct {
	verifyFn func(ctx context.Context, token string) (models.Identity, error)
	calls    int
}

func (m *mockAuthSvc) VerifyToken(ctx context.Context, token string) (models.Identity, error) {
	m.calls++
	if m.verifyFn != nil {
		return m.verifyFn(ctx, token)
	}
	return models.Identity{ID: "user-1"}, nil
}

// ---- Mock: AppInfoService ----

type mockAppInfoSvc struct {
	healthFn func(ctx context.Context) (models.HealthStatus, error)
}

func (m *mockAppInfoSvc) GetAppVersion(_ context.Context) string {
	return "test-version"
}

func (m *mockAppInfoSvc) Health(ctx context.Context) (models.HealthStatus, error) {
	if m.healthFn != nil {
		return m.healthFn(ctx)
	}
	return models.HealthStatus{Database: "ok"}, nil
}

// ---- Mock: RecordService ----

type mockRecordSvc struct {
	listFn   func(ctx context.Context, req models.ListRequest) ([]models.Record, error)
	createFn func(ctx context.Context, req models.CreateRequest) (models.Record, error)
	updateFn func(ctx context.Context, req models.UpdateRequest) (models.Record, error)
	deleteFn func(ctx context.Context, req models.DeleteRequest) (models.DeletedRecord, error)
}

func (m *mockRecordSvc) List(ctx context.Context, req models.ListRequest) ([]models.Record, error) {
	if m.listFn != nil {
		return m.listFn(ctx, req)
	}
	return []models.Record{}, nil
}
func (m *mockRecordSvc) Create(ctx context.Context, req models.CreateRequest) (models.Record, error) {
	if m.createFn != nil {
		return m.createFn(ctx, req)
	}
	return models.Record{}, nil
}
func (m *mockRecordSvc) Update(ctx context.Context, req models.UpdateRequest) (models.Record, error) {
	if m.updateFn != nil {
		return m.updateFn(ctx, req)
	}
	return models.Record{}, nil
}
func (m *mockRecordSvc) Delete(ctx context.Context, req models.DeleteRequest) (models.DeletedRecord, error) {
	if m.deleteFn != nil {
		return m.deleteFn(ctx, req)
	}
	return models.DeletedRecord{ID: req.ID}, nil
}

// ---- Helpers ----

func newTestHandler(auth *mockAuthSvc, records *mockRecordSvc) *Handler {
	if auth == nil {
		auth = &mockAuthSvc{}
	}
	if records == nil {
		records = &mockRecordSvc{}
	}
	return NewHandler(&service.Services{
		AuthService:    auth,
		RecordService:  records,
		AppInfoService: &mockAppInfoSvc{},
	}, config.Server{}, logger.Nop())
}
