package server

import (
	"context"
	"net/http"

	"github.com/convodocs/convodocs-api/internal/config"
	"github.com/convodocs/convodocs-api/internal/handler"
	"go.uber.org/zap"
)

type Server struct {
	handler *handler.Handler
	server  *http.Server
	logger  *zap.Logger
}

func NewServer(h *handler.Handler, cfg config.HTTPConfig, logger *zap.Logger) *Server {
	return &Server{
		handler: h,
		server: &http.Server{
			Addr:              cfg.Addr,
			Handler:           NewRouter(h, cfg, logger),
			ReadHeaderTimeout: cfg.ReadHeaderTimeout,
		},
		logger: logger,
	}
}

func (s *Server) Start() error {
	s.logger.Info("server starting", zap.String("addr", s.server.Addr))
	return s.server.ListenAndServe()
}

func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("shutting down")
	if err := s.server.Shutdown(ctx); err != nil {
		return err
	}
	s.logger.Info("server stopped")
	return nil
}
