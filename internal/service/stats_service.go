package service

import (
	"context"

	"github.com/convodocs/convodocs-api/internal/domain"
)

type StatsService interface {
	GetStoreStats(ctx context.Context) (*domain.StoreStats, error)
}
