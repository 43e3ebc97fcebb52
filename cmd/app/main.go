package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/convodocs/convodocs-api/internal/config"
	"github.com/convodocs/convodocs-api/internal/handler"
	"github.com/convodocs/convodocs-api/internal/handler/server"
	"github.com/convodocs/convodocs-api/internal/logger"
	"github.com/convodocs/convodocs-api/internal/repository/memory"
	"github.com/convodocs/convodocs-api/internal/service"
	"go.uber.org/zap"
)

func main() {
	cfg := config.MustLoad()

	log := logger.MustNew(cfg.Log.Level, cfg.Env)
	defer log.Sync()
	sugar := log.Sugar()

	store := memory.NewStore()
	sugar.Infow("in-memory store initialized", "env", cfg.Env)

	teamService := service.NewTeamService(store)
	documentService := service.NewDocumentService(store)
	statsService := service.NewStatsService(store)
	syncService := service.NewSyncService(sugar.Named("sync"))

	h := handler.NewHandler(teamService, documentService, statsService, syncService, sugar.Named("handler"))
	srv := server.NewServer(h, cfg.HTTP, log.Named("http"))

	go func() {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("server failed to start", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), cfg.HTTP.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("server forced to shutdown", zap.Error(err))
	}
}
