package web

import (
	"github.com/go-chi/chi/v5"
	"github.com/kozaktomas/photo-booth/internal/web/handlers"
)

func (s *Server) setupRoutes() {
	compositeHandler := handlers.NewCompositeHandler(s.config)
	layoutsHandler := handlers.NewLayoutsHandler()

	// Health check
	s.router.Get("/api/v1/health", handlers.HealthCheck)

	// API routes
	s.router.Route("/api/v1", func(r chi.Router) {
		r.Get("/layouts", layoutsHandler.List)

		r.Post("/composites", compositeHandler.Create)
		r.Post("/composites/strip", compositeHandler.CreateStrip)
		r.Post("/strips/extract", compositeHandler.ExtractStrip)
	})
}
