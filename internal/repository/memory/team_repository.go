package memory

import (
	"context"
	"slices"

	"github.com/convodocs/convodocs-api/internal/domain"
	"github.com/convodocs/convodocs-api/internal/repository"
)

type teamRepository struct {
	state *state
	newID func() string
}

func (r *teamRepository) Create(_ context.Context, team *domain.Team) error {
	team.ID = r.newID()
	team.Members = []domain.TeamMember{}
	r.state.teams = append(r.state.teams, team.Clone())
	return nil
}

func (r *teamRepository) GetByID(_ context.Context, id string) (*domain.Team, error) {
	i := r.state.teamIndex(id)
	if i < 0 {
		return nil, repository.ErrNotFound
	}
	return r.state.teams[i].Clone(), nil
}

func (r *teamRepository) List(_ context.Context) ([]*domain.Team, error) {
	teams := make([]*domain.Team, 0, len(r.state.teams))
	for _, team := range r.state.teams {
		teams = append(teams, team.Clone())
	}
	return teams, nil
}

// Update заменяет только имя и описание; Members меняет лишь memberRepository.
func (r *teamRepository) Update(_ context.Context, team *domain.Team) error {
	i := r.state.teamIndex(team.ID)
	if i < 0 {
		return repository.ErrNotFound
	}
	stored := r.state.teams[i]
	stored.Name = team.Name
	stored.Description = team.Description
	return nil
}

func (r *teamRepository) Delete(_ context.Context, id string) error {
	i := r.state.teamIndex(id)
	if i < 0 {
		return repository.ErrNotFound
	}
	r.state.teams = slices.Delete(r.state.teams, i, i+1)
	r.state.members = slices.DeleteFunc(r.state.members, func(m *domain.TeamMember) bool {
		return m.TeamID == id
	})
	return nil
}

func (r *teamRepository) Count(_ context.Context) (int, error) {
	return len(r.state.teams), nil
}
