package service

import (
	"context"
	"errors"
	"testing"

	"github.com/MKhiriev/go-life-records/internal/config"
	"github.com/MKhiriev/go-life-records/internal/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type pingerFunc func(ctx context.Context) error

func (f pingerFunc) Ping(ctx context.Context) error { return f(ctx) }

// ─────────────────────────────────────────────
// GetAppVersion
// ─────────────────────────────────────────────

func TestGetAppVersion_ReturnsConfiguredVersion(t *testing.T) {
	svc := NewAppInfoService(config.App{Version: "3.1.4"}, nil, logger.Nop())

	assert.Equal(t, "3.1.4", svc.GetAppVersion(context.Background()))
}

// ─────────────────────────────────────────────
// Health
// ─────────────────────────────────────────────

func TestHealth_DatabaseUp(t *testing.T) {
	svc := NewAppInfoService(config.App{Version: "1.0.0"}, pingerFunc(func(context.Context) error { return nil }), logger.Nop())

	status, err := svc.Health(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "ok", status.Database)
	assert.Equal(t, "1.0.0", status.Version)
}

func TestHealth_DatabaseDown(t *testing.T) {
	pingErr := errors.New("connection refused")
	svc := NewAppInfoService(config.App{}, pingerFunc(func(context.Context) error { return pingErr }), logger.Nop())

	status, err := svc.Health(context.Background())
	assert.ErrorIs(t, err, ErrStorageUnavailable)
	assert.ErrorIs(t, err, pingErr)
	assert.Empty(t, status.Database)
}

func TestHealth_NoDatabase(t *testing.T) {
	svc := NewAppInfoService(config.App{}, nil, logger.Nop())

	_, err := svc.Health(context.Background())
	assert.ErrorIs(t, err, ErrStorageUnavailable)
}
