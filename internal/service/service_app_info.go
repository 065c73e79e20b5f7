package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-life-records/internal/config"
	"github.com/MKhiriev/go-life-records/internal/logger"
	"github.com/MKhiriev/go-life-records/models"
)

const healthOK = "ok"

type appInfoService struct {
	appVersion string
	database   Pinger

	logger *logger.Logger
}

// NewAppInfoService reports cfg.Version and pings database for health checks.
func NewAppInfoService(cfg config.App, database Pinger, logger *logger.Logger) AppInfoService {
	return &appInfoService{
		appVersion: cfg.Version,
		database:   database,
		logger:     logger,
	}
}

func (s *appInfoService) GetAppVersion(ctx context.Context) string {
	return s.appVersion
}

// Health pings the store. Nothing about the environment is reported.
func (s *appInfoService) Health(ctx context.Context) (models.HealthStatus, error) {
	status := models.HealthStatus{Version: s.appVersion}

	if s.database == nil {
		return status, ErrStorageUnavailable
	}

	if err := s.database.Ping(ctx); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*appInfoService.Health").Msg("database ping failed")
		return status, fmt.Errorf("%w: %w", ErrStorageUnavailable, err)
	}

	status.Database = healthOK
	return status, nil
}
