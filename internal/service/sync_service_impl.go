package service

import (
	"context"

	"go.uber.org/zap"
)

type syncService struct {
	logger *zap.SugaredLogger
}

func NewSyncService(logger *zap.SugaredLogger) SyncService {
	return &syncService{logger: logger}
}

func (s *syncService) SyncConfluence(ctx context.Context) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	s.logger.Infow("confluence sync requested", "mode", "stub")
	return ConfluenceSyncMessage, nil
}
