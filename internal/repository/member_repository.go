package repository

import (
	"context"

	"github.com/convodocs/convodocs-api/internal/domain"
)

// MemberRepository - единственное место, где меняется денормализованный
// список участников команды (Team.Members).
type MemberRepository interface {
	Create(ctx context.Context, member *domain.TeamMember) error
	GetByID(ctx context.Context, id string) (*domain.TeamMember, error)
	ListByTeamID(ctx context.Context, teamID string) ([]*domain.TeamMember, error)
	Delete(ctx context.Context, teamID, memberID string) error
	Count(ctx context.Context) (int, error)
}
