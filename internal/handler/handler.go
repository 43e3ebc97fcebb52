package handler

import (
	"github.com/convodocs/convodocs-api/internal/service"
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
)

type Handler struct {
	teamService     service.TeamService
	documentService service.DocumentService
	statsService    service.StatsService
	syncService     service.SyncService
	validate        *validator.Validate
	logger          *zap.SugaredLogger
}

func NewHandler(
	teamService service.TeamService,
	documentService service.DocumentService,
	statsService service.StatsService,
	syncService service.SyncService,
	logger *zap.SugaredLogger,
) *Handler {
	return &Handler{
		teamService:     teamService,
		documentService: documentService,
		statsService:    statsService,
		syncService:     syncService,
		validate:        newValidator(),
		logger:          logger,
	}
}
