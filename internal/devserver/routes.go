package devserver

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// Init returns the dev server router.
func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)

	// backend API
	router.Handle(h.proxyPrefix, h.proxy)
	router.Handle(h.proxyPrefix+"/*", h.proxy)

	// front end
	router.Handle("/*", h.static)

	return router
}
