package memory

import (
	"context"
	"slices"

	"github.com/convodocs/convodocs-api/internal/domain"
	"github.com/convodocs/convodocs-api/internal/repository"
)

type memberRepository struct {
	state *state
	newID func() string
}

// Create сохраняет участника и добавляет его копию в Members команды.
// Команда должна существовать, иначе возвращается ErrNotFound.
func (r *memberRepository) Create(_ context.Context, member *domain.TeamMember) error {
	ti := r.state.teamIndex(member.TeamID)
	if ti < 0 {
		return repository.ErrNotFound
	}

	member.ID = r.newID()
	r.state.members = append(r.state.members, member.Clone())

	team := r.state.teams[ti]
	team.Members = append(team.Members, *member)
	return nil
}

func (r *memberRepository) GetByID(_ context.Context, id string) (*domain.TeamMember, error) {
	for _, member := range r.state.members {
		if member.ID == id {
			return member.Clone(), nil
		}
	}
	return nil, repository.ErrNotFound
}

func (r *memberRepository) ListByTeamID(_ context.Context, teamID string) ([]*domain.TeamMember, error) {
	members := make([]*domain.TeamMember, 0)
	for _, member := range r.state.members {
		if member.TeamID == teamID {
			members = append(members, member.Clone())
		}
	}
	return members, nil
}

// Delete удаляет участника, только если совпадают и id, и team_id.
func (r *memberRepository) Delete(_ context.Context, teamID, memberID string) error {
	i := slices.IndexFunc(r.state.members, func(m *domain.TeamMember) bool {
		return m.ID == memberID && m.TeamID == teamID
	})
	if i < 0 {
		return repository.ErrNotFound
	}
	r.state.members = slices.Delete(r.state.members, i, i+1)

	if ti := r.state.teamIndex(teamID); ti >= 0 {
		team := r.state.teams[ti]
		team.Members = slices.DeleteFunc(team.Members, func(m domain.TeamMember) bool {
			return m.ID == memberID
		})
	}
	return nil
}

func (r *memberRepository) Count(_ context.Context) (int, error) {
	return len(r.state.members), nil
}
