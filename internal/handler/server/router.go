package server

import (
	"net/http"

	"github.com/convodocs/convodocs-api/internal/config"
	"github.com/convodocs/convodocs-api/internal/handler"
	"github.com/convodocs/convodocs-api/internal/metrics"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"
)

// NewRouter собирает chi-роутер со всеми middleware и маршрутами.
func NewRouter(h *handler.Handler, cfg config.HTTPConfig, logger *zap.Logger) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(RequestLogger(logger))
	r.Use(middleware.Recoverer)
	r.Use(metrics.Middleware)
	r.Use(CORS(cfg))

	SetupRoutes(r, h)
	return r
}

// SetupRoutes регистрирует маршруты. Каждый путь доступен и со слешем на конце, и без.
func SetupRoutes(r chi.Router, h *handler.Handler) {
	// Обработчики задаются до Route, чтобы их унаследовали вложенные роутеры.
	r.NotFound(handler.NotFound)
	r.MethodNotAllowed(handler.MethodNotAllowed)

	r.Get("/", h.Info)
	r.Method(http.MethodGet, "/metrics", metrics.Handler())

	r.Route("/teams", func(r chi.Router) {
		r.Post("/", h.CreateTeam)
		r.Get("/", h.ListTeams)

		r.Route("/{teamID}", func(r chi.Router) {
			r.Get("/", h.GetTeam)
			r.Put("/", h.UpdateTeam)
			r.Delete("/", h.DeleteTeam)

			r.Route("/members", func(r chi.Router) {
				r.Post("/", h.AddMember)
				r.Get("/", h.ListMembers)
				r.Delete("/{memberID}", h.RemoveMember)
				r.Delete("/{memberID}/", h.RemoveMember)
			})
		})
	})

	r.Route("/documents", func(r chi.Router) {
		r.Post("/", h.CreateDocument)
		r.Get("/", h.ListDocuments)

		r.Route("/{documentID}", func(r chi.Router) {
			r.Get("/", h.GetDocument)
			r.Put("/", h.UpdateDocument)
			r.Delete("/", h.DeleteDocument)
			r.Post("/publish", h.PublishDocument)
			r.Post("/publish/", h.PublishDocument)
		})
	})

	r.Post("/confluence/sync", h.SyncConfluence)
	r.Post("/confluence/sync/", h.SyncConfluence)
	r.Post("/slack/threads", h.ConvertSlackThreads)
	r.Post("/slack/threads/", h.ConvertSlackThreads)
}
