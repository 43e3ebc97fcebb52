package repository

import (
	"context"

	"github.com/convodocs/convodocs-api/internal/domain"
)

type TeamRepository interface {
	Create(ctx context.Context, team *domain.Team) error
	GetByID(ctx context.Context, id string) (*domain.Team, error)
	List(ctx context.Context) ([]*domain.Team, error)
	Update(ctx context.Context, team *domain.Team) error
	// Delete удаляет команду и каскадно всех её участников
	Delete(ctx context.Context, id string) error
	Count(ctx context.Context) (int, error)
}
