// Package grpc exposes the standard gRPC health service for the vault
// server. The vault API itself is HTTP only.
package grpc

import (
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"

	"github.com/MKhiriev/go-pass-vault/internal/logger"
)

// ServiceName is the health-check service name reported next to the
// overall ("") status.
const ServiceName = "vault.v1.Vault"

// Handler owns the health state shared by the gRPC server and the shutdown
// path.
type Handler struct {
	health *health.Server

	logger *logger.Logger
}

// NewHandler returns a Handler reporting SERVING for both the overall
// status and [ServiceName].
func NewHandler(logger *logger.Logger) *Handler {
	h := &Handler{health: health.NewServer(), logger: logger}
	h.health.SetServingStatus("", healthpb.HealthCheckResponse_SERVING)
	h.health.SetServingStatus(ServiceName, healthpb.HealthCheckResponse_SERVING)

	logger.Debug().Msg("gRPC handler created")
	return h
}

// Register attaches the health service to s.
func (h *Handler) Register(s *grpc.Server) {
	healthpb.RegisterHealthServer(s, h.health)
}

// Shutdown flips every status to NOT_SERVING so that probes stop routing
// traffic before the listeners close.
func (h *Handler) Shutdown() {
	h.logger.Info().Msg("gRPC health set to NOT_SERVING")
	h.health.Shutdown()
}
