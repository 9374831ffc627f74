package http

import (
	"github.com/MKhiriev/go-pass-vault/internal/logger"
	"github.com/MKhiriev/go-pass-vault/internal/service"
)

// Handler binds the /api routes to the auth, vault entry and app info
// services.
type Handler struct {
	services *service.Services
	logger   *logger.Logger
}

func NewHandler(services *service.Services, log *logger.Logger) *Handler {
	h := &Handler{services: services, logger: log.GetChildLogger()}
	h.logger.Debug().Msg("vault http handler ready")
	return h
}
