package server

import (
	"context"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/go-life-records/internal/config"
	"github.com/MKhiriev/go-life-records/internal/handler"
	"github.com/MKhiriev/go-life-records/internal/logger"
)

type server struct {
	httpServer   *httpServer
	lambdaServer *lambdaServer
	logger       *logger.Logger
}

func NewServer(handlers *handler.Handlers, cfg config.Server, logger *logger.Logger) (Server, error) {
	logger.Info().Msg("creating new server...")
	if handlers == nil || handlers.HTTP == nil {
		return nil, errNoServersAreCreated
	}

	servers := &server{logger: logger}

	switch cfg.Mode {
	case config.ModeHTTP:
		servers.httpServer = newHTTPServer(handlers.HTTP.Init(), cfg, logger)
	case config.ModeLambda:
		servers.lambdaServer = newLambdaServer(handlers.HTTP.Init(), logger)
	default:
		return nil, errNoServersAreCreated
	}

	return servers, nil
}

func (s *server) RunServer() {
	if s.lambdaServer != nil {
		s.logger.Info().Msg("Launching Lambda handler")
		s.lambdaServer.RunServer()
		return
	}

	s.run()
}

func (s *server) Shutdown() {
	if s.httpServer != nil {
		s.httpServer.Shutdown()
	}
	if s.lambdaServer != nil {
		s.lambdaServer.Shutdown()
	}
}

func (s *server) run() {
	idleConnectionsClosed := make(chan struct{})
	ctx, stop := signal.NotifyContext(
		context.Background(),
		syscall.SIGTERM,
		syscall.SIGINT,
		syscall.SIGQUIT,
	)
	defer stop()

	// listen for stop signals
	go func() {
		<-ctx.Done()
		s.Shutdown()
		close(idleConnectionsClosed)
	}()

	s.logger.Info().Str("address", s.httpServer.server.Addr).Msg("Launching HTTP server")
	go func() {
		// a listener that fails to start ends the process like a signal
		s.httpServer.RunServer()
		stop()
	}()

	<-idleConnectionsClosed
	s.logger.Info().Msg("server Shutdown gracefully")
}
