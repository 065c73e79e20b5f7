package handler

import (
	"github.com/MKhiriev/go-life-records/internal/config"
	"github.com/MKhiriev/go-life-records/internal/handler/http"
	"github.com/MKhiriev/go-life-records/internal/logger"
	"github.com/MKhiriev/go-life-records/internal/service"
)

type Handlers struct {
	HTTP *http.Handler
}

// NewHandlers builds the handlers the configured server mode serves. Both the
// HTTP listener and the Lambda shim route through the same HTTP handler.
func NewHandlers(services *service.Services, cfg config.Server, logger *logger.Logger) (*Handlers, error) {
	logger.Info().Msg("creating new handlers...")

	handlers := &Handlers{}

	switch cfg.Mode {
	case config.ModeHTTP, config.ModeLambda:
		handlers.HTTP = http.NewHandler(services, cfg, logger)
	}

	if handlers.HTTP == nil {
		return nil, errNoHandlersAreCreated
	}

	return handlers, nil
}
