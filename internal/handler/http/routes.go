package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// Init builds the router. Entry routes require a bearer token; writes are
// additionally integrity-checked when a hash key is configured.
func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer, h.withTraceID, h.withLogging, withGZip)

	router.Route("/api", func(r chi.Router) {
		// routes without authorization
		r.Post("/auth/register", h.register)
		r.Post("/auth/login", h.login)
		r.Get("/version", h.getServerVersion)

		r.Route("/passwords", func(r chi.Router) {
			r.Use(h.auth)

			r.Get("/", h.listEntries)
			r.With(h.entryHashing).Post("/", h.createEntry)
			r.Get("/{id}", h.getEntry)
			r.With(h.entryHashing).Put("/{id}", h.updateEntry)
			r.Delete("/{id}", h.deleteEntry)
		})
	})

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
