package service

import (
	"context"

	"github.com/convodocs/convodocs-api/internal/domain"
)

type TeamService interface {
	CreateTeam(ctx context.Context, name, description string) (*domain.Team, error)
	ListTeams(ctx context.Context) ([]*domain.Team, error)
	GetTeam(ctx context.Context, id string) (*domain.Team, error)
	// UpdateTeam полностью заменяет name и description
	UpdateTeam(ctx context.Context, id, name, description string) (*domain.Team, error)
	// DeleteTeam удаляет команду вместе с участниками, документы остаются
	DeleteTeam(ctx context.Context, id string) error

	AddMember(ctx context.Context, teamID string, member *domain.TeamMember) (*domain.TeamMember, error)
	ListMembers(ctx context.Context, teamID string) ([]*domain.TeamMember, error)
	RemoveMember(ctx context.Context, teamID, memberID string) error
}
