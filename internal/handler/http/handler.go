package http

import (
	"time"

	"github.com/MKhiriev/go-life-records/internal/config"
	"github.com/MKhiriev/go-life-records/internal/logger"
	"github.com/MKhiriev/go-life-records/internal/service"
	"github.com/MKhiriev/go-life-records/internal/utils"
)

type Handler struct {
	services *service.Services

	requestTimeout time.Duration
	traceIDs       *utils.UUIDGenerator

	logger *logger.Logger
}

func NewHandler(services *service.Services, cfg config.Server, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services:       services,
		requestTimeout: cfg.RequestTimeout,
		traceIDs:       utils.NewUUIDGenerator(),
		logger:         logger,
	}
}
