package routes

import (
	"github.com/Zhasna/Mental-Wellness-App/internal/auth"
	"github.com/Zhasna/Mental-Wellness-App/internal/handlers"
	"github.com/Zhasna/Mental-Wellness-App/internal/middleware"
	"github.com/go-chi/chi/v5"
)

// RegisterRoutes registers all application routes under /api. Everything
// except register and login sits behind the session middleware; login has
// its own credential throttle inside the service, registration gets a
// plain per-IP limit here.
func RegisterRoutes(
	router chi.Router,
	sessions *auth.SessionStore,
	authHandler *handlers.AuthHandler,
	entryHandler *handlers.EntryHandler,
	goalHandler *handlers.GoalHandler,
	moodHandler *handlers.MoodHandler,
	profileHandler *handlers.ProfileHandler,
	statsHandler *handlers.StatsHandler,
	registerRatePerMin int,
) {
	router.Route("/api", func(r chi.Router) {
		// Public routes - no session required
		r.With(middleware.RateLimitByIP(middleware.RateLimitConfig{
			RequestsPerMinute: registerRatePerMin,
		})).Post("/register", authHandler.Register)
		r.Post("/login", authHandler.Login)

		// Protected routes - live session required
		r.Group(func(r chi.Router) {
			r.Use(auth.RequireSession(sessions))

			r.Post("/logout", authHandler.Logout)

			r.Get("/entries", entryHandler.List)
			r.Post("/entries", entryHandler.Create)
			r.Put("/entries", entryHandler.Update)
			r.Delete("/entries", entryHandler.Delete)

			r.Get("/goals", goalHandler.List)
			r.Post("/goals", goalHandler.Create)
			r.Put("/goals", goalHandler.Update)
			r.Delete("/goals", goalHandler.Delete)

			r.Get("/moods", moodHandler.List)
			r.Post("/moods", moodHandler.Record)

			r.Get("/profile", profileHandler.Get)
			r.Put("/profile", profileHandler.Update)

			r.Get("/stats", statsHandler.Get)
		})
	})
}
