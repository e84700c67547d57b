package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer, WithTraceID(h.logger), WithLogging, WithGZip)

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Get("/health", h.health)
		r.Get("/api/version", h.getServerVersion)
	})

	router.Group(func(r chi.Router) {
		r.Use(h.auth, h.payloadHashing)
		r.Post("/api/v1/sync/{kind}", h.acceptDelivery)
	})

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
