package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// compressionLevel is the gzip/deflate level used for JSON responses.
const compressionLevel = 5

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)
	router.Use(middleware.Compress(compressionLevel, "application/json"))
	if h.requestTimeout > 0 {
		router.Use(middleware.Timeout(h.requestTimeout))
	}

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Post("/api/user/register", h.register)
		r.Post("/api/user/login", h.login)
		r.Get("/api/version/", h.getServerVersion)
	})

	// routes scoped to the token's user
	router.Group(func(r chi.Router) {
		r.Use(h.auth)
		r.Get("/api/entries/", h.listEntries)
		r.Post("/api/entries/", h.createEntry)
		r.Get("/api/entries/{id}", h.getEntry)
		r.Put("/api/entries/{id}", h.updateEntry)
		r.Delete("/api/entries/{id}", h.deleteEntry)
	})

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
