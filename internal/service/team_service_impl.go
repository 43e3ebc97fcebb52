package service

import (
	"context"

	"github.com/convodocs/convodocs-api/internal/domain"
	"github.com/convodocs/convodocs-api/internal/repository"
)

type teamService struct {
	uow repository.UnitOfWork
	options
}

// NewTeamService создает новый экземпляр TeamService
func NewTeamService(uow repository.UnitOfWork, opts ...Option) TeamService {
	return &teamService{
		uow:     uow,
		options: buildOptions(opts),
	}
}

// CreateTeam создает команду без участников
func (s *teamService) CreateTeam(ctx context.Context, name, description string) (*domain.Team, error) {
	team := &domain.Team{
		Name:        name,
		Description: description,
		CreatedAt:   s.now(),
	}

	err := s.uow.Update(ctx, func(repos repository.Repositories) error {
		return repos.Teams.Create(ctx, team)
	})
	if err != nil {
		return nil, err
	}

	return team, nil
}

func (s *teamService) ListTeams(ctx context.Context) ([]*domain.Team, error) {
	var teams []*domain.Team
	err := s.uow.View(ctx, func(repos repository.Repositories) error {
		var err error
		teams, err = repos.Teams.List(ctx)
		return err
	})
	if err != nil {
		return nil, err
	}
	return teams, nil
}

func (s *teamService) GetTeam(ctx context.Context, id string) (*domain.Team, error) {
	var team *domain.Team
	err := s.uow.View(ctx, func(repos repository.Repositories) error {
		var err error
		team, err = repos.Teams.GetByID(ctx, id)
		return notFound(err, "team with id "+id)
	})
	if err != nil {
		return nil, err
	}
	return team, nil
}

func (s *teamService) UpdateTeam(ctx context.Context, id, name, description string) (*domain.Team, error) {
	var updated *domain.Team
	err := s.uow.Update(ctx, func(repos repository.Repositories) error {
		err := repos.Teams.Update(ctx, &domain.Team{ID: id, Name: name, Description: description})
		if err != nil {
			return notFound(err, "team with id "+id)
		}

		updated, err = repos.Teams.GetByID(ctx, id)
		return notFound(err, "team with id "+id)
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

func (s *teamService) DeleteTeam(ctx context.Context, id string) error {
	return s.uow.Update(ctx, func(repos repository.Repositories) error {
		return notFound(repos.Teams.Delete(ctx, id), "team with id "+id)
	})
}

// AddMember добавляет участника в существующую команду
func (s *teamService) AddMember(ctx context.Context, teamID string, member *domain.TeamMember) (*domain.TeamMember, error) {
	created := &domain.TeamMember{
		TeamID:    teamID,
		Name:      member.Name,
		Email:     member.Email,
		Role:      member.Role,
		CreatedAt: s.now(),
	}

	err := s.uow.Update(ctx, func(repos repository.Repositories) error {
		if _, err := repos.Teams.GetByID(ctx, teamID); err != nil {
			return notFound(err, "team with id "+teamID)
		}
		return notFound(repos.Members.Create(ctx, created), "team with id "+teamID)
	})
	if err != nil {
		return nil, err
	}
	return created, nil
}

// ListMembers не проверяет существование команды: для неизвестной команды список пустой
func (s *teamService) ListMembers(ctx context.Context, teamID string) ([]*domain.TeamMember, error) {
	var members []*domain.TeamMember
	err := s.uow.View(ctx, func(repos repository.Repositories) error {
		var err error
		members, err = repos.Members.ListByTeamID(ctx, teamID)
		return err
	})
	if err != nil {
		return nil, err
	}
	return members, nil
}

func (s *teamService) RemoveMember(ctx context.Context, teamID, memberID string) error {
	return s.uow.Update(ctx, func(repos repository.Repositories) error {
		err := repos.Members.Delete(ctx, teamID, memberID)
		return notFound(err, "team member with id "+memberID)
	})
}
