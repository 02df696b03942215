package api

import (
	"github.com/go-chi/chi/v5"
)

// setupRoutes wires pages, the JSON API and the admin area.
func setupRoutes(r chi.Router, handlers *routeHandlers, authMiddleware authMiddleware) {
	r.Group(func(r chi.Router) {
		r.Use(ColoredHTTPLoggingMiddleware)

		// Public pages
		r.Get("/", handlers.pageHandler.home())
		r.Get("/projects", handlers.pageHandler.projectsPage())
		r.Get("/notes", handlers.pageHandler.notesPage())
		r.Get("/notes/{noteID}", handlers.pageHandler.notePage())
		r.Get("/videos", handlers.pageHandler.videosPage())
		r.Get("/contact", handlers.pageHandler.contactPage())

		// Admin pages
		r.Get("/admin/login", handlers.adminHandler.loginPage())
		r.With(authMiddleware.requirePageAuth).Get("/admin/dashboard", handlers.adminHandler.dashboard())

		r.Route("/api", func(r chi.Router) {
			r.Get("/health", handlers.healthHandler.check())

			r.Get("/projects", handlers.contentHandler.getAllProjects())
			r.Get("/notes", handlers.contentHandler.getAllNotes())
			r.Get("/notes/{noteID}", handlers.contentHandler.getNote())
			r.Get("/categories", handlers.contentHandler.getAllCategories())
			r.Get("/videos", handlers.contentHandler.getAllVideos())

			r.Post("/contact", handlers.contactHandler.submit())
			r.Post("/auth/login", handlers.authHandler.login())
			r.Post("/auth/logout", handlers.authHandler.logout())

			r.With(authMiddleware.authenticate).Get("/admin/stats", handlers.adminHandler.getStats())
		})
	})

	r.NotFound(handlers.pageHandler.notFound())
}
