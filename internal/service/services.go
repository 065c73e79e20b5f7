package service

import (
	"github.com/MKhiriev/go-life-records/internal/adapter"
	"github.com/MKhiriev/go-life-records/internal/config"
	"github.com/MKhiriev/go-life-records/internal/logger"
	"github.com/MKhiriev/go-life-records/internal/store"
)

type Services struct {
	AuthService    AuthService
	RecordService  RecordService
	AppInfoService AppInfoService
}

func NewServices(storages *store.Storages, identityProvider adapter.IdentityProvider, cfg config.StructuredConfig, logger *logger.Logger) *Services {
	recordService := NewRecordValidationService().Wrap(
		NewRecordService(storages.RecordRepository, logger),
	)

	return &Services{
		AuthService:    NewAuthService(identityProvider, logger),
		RecordService:  recordService,
		AppInfoService: NewAppInfoService(cfg.App, storages.DB, logger),
	}
}
