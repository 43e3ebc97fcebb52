package service

import (
	"context"

	"github.com/convodocs/convodocs-api/internal/domain"
	"github.com/convodocs/convodocs-api/internal/repository"
)

type statsService struct {
	uow repository.UnitOfWork
}

func NewStatsService(uow repository.UnitOfWork) StatsService {
	return &statsService{uow: uow}
}

// GetStoreStats читает все счетчики в одной транзакции, чтобы они были согласованы
func (s *statsService) GetStoreStats(ctx context.Context) (*domain.StoreStats, error) {
	stats := &domain.StoreStats{}
	err := s.uow.View(ctx, func(repos repository.Repositories) error {
		var err error
		if stats.Teams, err = repos.Teams.Count(ctx); err != nil {
			return err
		}
		if stats.Members, err = repos.Members.Count(ctx); err != nil {
			return err
		}
		stats.Documents, err = repos.Documents.Count(ctx)
		return err
	})
	if err != nil {
		return nil, err
	}
	return stats, nil
}
