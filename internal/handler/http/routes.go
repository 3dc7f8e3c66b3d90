package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)

	// health endpoints, never authorized
	router.Get("/health", h.health)
	router.Get("/health/db", h.healthDB)

	router.Get("/api/version", h.getServerVersion)

	router.Route("/auth", func(r chi.Router) {
		r.Post("/token", h.loginTestUser)
		r.Post("/refresh", h.refresh)
		r.Get("/logout", h.logout)

		r.Group(func(r chi.Router) {
			r.Use(h.requireAuth)
			r.Get("/me", h.me)
		})

		// google routes answer 503 while OAuth credentials are absent
		r.Group(func(r chi.Router) {
			r.Use(h.requireOAuth)
			r.Get("/login/google", h.loginGoogle)
			r.Get("/callback", h.googleCallback)
			r.Post("/google", h.googleIDToken)
			r.Post("/google/access", h.googleAccessToken)
		})
	})

	return router
}
