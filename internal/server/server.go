package server

import (
	"context"
	"os/signal"
	"sync"
	"syscall"

	"github.com/MKhiriev/go-pass-vault/internal/config"
	"github.com/MKhiriev/go-pass-vault/internal/handler"
	"github.com/MKhiriev/go-pass-vault/internal/logger"
)

// server owns the vault listeners. They are kept in stop order: gRPC health
// goes first so probes fail before the REST API drains.
type server struct {
	listeners []Server
	logger    *logger.Logger

	shutdownOnce sync.Once
}

func NewServer(handlers *handler.Handlers, cfg config.Server, logger *logger.Logger) (Server, error) {
	if handlers == nil || handlers.HTTP == nil {
		return nil, errNoServersAreCreated
	}

	s := &server{logger: logger}
	if cfg.GRPCAddress != "" && handlers.GRPC != nil {
		health, err := newGRPCServer(handlers.GRPC, cfg, logger)
		if err != nil {
			return nil, err
		}
		s.listeners = append(s.listeners, health)
	}
	s.listeners = append(s.listeners, newHTTPServer(handlers.HTTP.Init(), cfg, logger))

	logger.Info().Int("listeners", len(s.listeners)).Msg("vault server created")
	return s, nil
}

func (s *server) RunServer() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT, syscall.SIGQUIT)
	defer stop()

	s.run(ctx)
}

func (s *server) Shutdown() {
	s.shutdownOnce.Do(func() {
		for _, l := range s.listeners {
			l.Shutdown()
		}
	})
}

// run serves until ctx is done, then shuts every listener down and waits
// for their serve loops to return.
func (s *server) run(ctx context.Context) {
	var wg sync.WaitGroup
	for _, l := range s.listeners {
		wg.Go(l.RunServer)
	}

	<-ctx.Done()
	s.logger.Info().Msg("stopping vault server")
	s.Shutdown()

	wg.Wait()
	s.logger.Info().Msg("vault server stopped")
}
