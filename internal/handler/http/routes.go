package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID, h.withLogging)
	router.Use(withGZipRequests, middleware.Compress(5, "application/json", "text/plain"))

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Post("/api/auth/signup", h.signup)
		r.Post("/api/auth/login", h.login)
		r.Get("/api/version", h.getServerVersion)
	})

	router.Group(func(r chi.Router) {
		r.Use(h.auth)

		r.Post("/api/auth/refresh", h.refresh)
		r.Get("/api/auth/me", h.me)

		r.Get("/api/blobs", h.listBlobs)
		r.With(h.blobHashing).Put("/api/blobs", h.putBlob)
		r.Get("/api/blobs/*", h.getBlob)
		r.Delete("/api/blobs/*", h.deleteBlob)
	})

	router.MethodNotAllowed(hideMethodNotAllowed)

	return router
}
