package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

// Init builds the API router.
//
// Middleware order matters: the trace-ID middleware runs first so every later
// layer, including access logging, sees the request-scoped logger.
func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()

	router.Use(h.withTraceID)
	router.Use(withLogging)
	router.Use(middleware.Recoverer)
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Authorization", "Content-Type"},
		MaxAge:         300,
	}))

	// routes without authorization
	router.Get("/health", h.health)
	router.Get("/version", h.getServerVersion)
	router.Post("/login", h.login)

	router.Route("/users", func(r chi.Router) {
		r.Get("/", h.listUsers)
		r.Get("/{id}", h.getUser)

		// mutating routes require a valid bearer token
		r.Group(func(protected chi.Router) {
			protected.Use(h.auth)
			protected.Post("/", h.createUser)
			protected.Put("/{id}", h.updateUser)
			protected.Delete("/{id}", h.deleteUser)
		})
	})

	return router
}
