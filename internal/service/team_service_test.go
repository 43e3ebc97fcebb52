package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/convodocs/convodocs-api/internal/domain"
	"github.com/convodocs/convodocs-api/internal/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var fixedNow = time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

func fixedClock() Option {
	return WithClock(func() time.Time { return fixedNow })
}

func TestTeamService_CreateTeam(t *testing.T) {
	t.Run("успешное создание команды", func(t *testing.T) {
		uow := NewMockUnitOfWork()
		service := NewTeamService(uow, fixedClock())
		ctx := context.Background()

		uow.Teams.On("Create", mock.Anything, mock.AnythingOfType("*domain.Team")).
			Run(func(args mock.Arguments) {
				args.Get(1).(*domain.Team).ID = "t1"
			}).
			Return(nil).Once()

		result, err := service.CreateTeam(ctx, "backend", "API team")

		require.NoError(t, err)
		assert.Equal(t, "t1", result.ID)
		assert.Equal(t, "backend", result.Name)
		assert.Equal(t, "API team", result.Description)
		assert.Equal(t, fixedNow, result.CreatedAt)
		uow.Teams.AssertExpectations(t)
	})

	t.Run("ошибка хранилища пробрасывается", func(t *testing.T) {
		uow := NewMockUnitOfWork()
		service := NewTeamService(uow)
		boom := errors.New("boom")

		uow.Teams.On("Create", mock.Anything, mock.Anything).Return(boom).Once()

		result, err := service.CreateTeam(context.Background(), "backend", "")

		assert.Nil(t, result)
		assert.ErrorIs(t, err, boom)
	})
}

func TestTeamService_GetTeam(t *testing.T) {
	t.Run("успешное получение команды", func(t *testing.T) {
		uow := NewMockUnitOfWork()
		service := NewTeamService(uow)

		team := &domain.Team{ID: "t1", Name: "backend", Members: []domain.TeamMember{}}
		uow.Teams.On("GetByID", mock.Anything, "t1").Return(team, nil).Once()

		result, err := service.GetTeam(context.Background(), "t1")

		require.NoError(t, err)
		assert.Equal(t, team, result)
		uow.Teams.AssertExpectations(t)
	})

	t.Run("ошибка: команда не найдена", func(t *testing.T) {
		uow := NewMockUnitOfWork()
		service := NewTeamService(uow)

		uow.Teams.On("GetByID", mock.Anything, "nonexistent").Return(nil, repository.ErrNotFound).Once()

		result, err := service.GetTeam(context.Background(), "nonexistent")

		require.Error(t, err)
		assert.Nil(t, result)
		assert.True(t, errors.Is(err, domain.ErrNotFound))
		assert.Contains(t, err.Error(), "nonexistent")
	})
}

func TestTeamService_UpdateTeam(t *testing.T) {
	t.Run("полная замена полей", func(t *testing.T) {
		uow := NewMockUnitOfWork()
		service := NewTeamService(uow)

		uow.Teams.On("Update", mock.Anything, &domain.Team{ID: "t1", Name: "platform", Description: "infra"}).Return(nil).Once()
		uow.Teams.On("GetByID", mock.Anything, "t1").
			Return(&domain.Team{ID: "t1", Name: "platform", Description: "infra"}, nil).Once()

		result, err := service.UpdateTeam(context.Background(), "t1", "platform", "infra")

		require.NoError(t, err)
		assert.Equal(t, "platform", result.Name)
		assert.Equal(t, "infra", result.Description)
		uow.Teams.AssertExpectations(t)
	})

	t.Run("ошибка: команда не найдена", func(t *testing.T) {
		uow := NewMockUnitOfWork()
		service := NewTeamService(uow)

		uow.Teams.On("Update", mock.Anything, mock.Anything).Return(repository.ErrNotFound).Once()

		result, err := service.UpdateTeam(context.Background(), "missing", "x", "y")

		assert.Nil(t, result)
		assert.True(t, errors.Is(err, domain.ErrNotFound))
		uow.Teams.AssertNotCalled(t, "GetByID", mock.Anything, mock.Anything)
	})
}

func TestTeamService_DeleteTeam(t *testing.T) {
	t.Run("успешное удаление", func(t *testing.T) {
		uow := NewMockUnitOfWork()
		service := NewTeamService(uow)

		uow.Teams.On("Delete", mock.Anything, "t1").Return(nil).Once()

		require.NoError(t, service.DeleteTeam(context.Background(), "t1"))
		uow.Teams.AssertExpectations(t)
	})

	t.Run("ошибка: команда не найдена", func(t *testing.T) {
		uow := NewMockUnitOfWork()
		service := NewTeamService(uow)

		uow.Teams.On("Delete", mock.Anything, "missing").Return(repository.ErrNotFound).Once()

		err := service.DeleteTeam(context.Background(), "missing")
		assert.True(t, errors.Is(err, domain.ErrNotFound))
	})
}

func TestTeamService_AddMember(t *testing.T) {
	t.Run("успешное добавление участника", func(t *testing.T) {
		uow := NewMockUnitOfWork()
		service := NewTeamService(uow, fixedClock())

		uow.Teams.On("GetByID", mock.Anything, "t1").Return(&domain.Team{ID: "t1"}, nil).Once()
		uow.Members.On("Create", mock.Anything, mock.MatchedBy(func(m *domain.TeamMember) bool {
			return m.TeamID == "t1" && m.Name == "Alice" && m.Email == "alice@example.com" && m.Role == "lead"
		})).Run(func(args mock.Arguments) {
			args.Get(1).(*domain.TeamMember).ID = "m1"
		}).Return(nil).Once()

		result, err := service.AddMember(context.Background(), "t1", &domain.TeamMember{
			Name: "Alice", Email: "alice@example.com", Role: "lead",
		})

		require.NoError(t, err)
		assert.Equal(t, "m1", result.ID)
		assert.Equal(t, "t1", result.TeamID)
		assert.Equal(t, fixedNow, result.CreatedAt)
		uow.Teams.AssertExpectations(t)
		uow.Members.AssertExpectations(t)
	})

	t.Run("ошибка: команда не найдена", func(t *testing.T) {
		uow := NewMockUnitOfWork()
		service := NewTeamService(uow)

		uow.Teams.On("GetByID", mock.Anything, "missing").Return(nil, repository.ErrNotFound).Once()

		result, err := service.AddMember(context.Background(), "missing", &domain.TeamMember{Name: "Alice"})

		assert.Nil(t, result)
		assert.True(t, errors.Is(err, domain.ErrNotFound))
		uow.Members.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})
}

func TestTeamService_ListMembers(t *testing.T) {
	uow := NewMockUnitOfWork()
	service := NewTeamService(uow)

	uow.Members.On("ListByTeamID", mock.Anything, "unknown").Return([]*domain.TeamMember{}, nil).Once()

	result, err := service.ListMembers(context.Background(), "unknown")

	require.NoError(t, err)
	assert.Empty(t, result)
	uow.Teams.AssertNotCalled(t, "GetByID", mock.Anything, mock.Anything)
}

func TestTeamService_RemoveMember(t *testing.T) {
	t.Run("успешное удаление участника", func(t *testing.T) {
		uow := NewMockUnitOfWork()
		service := NewTeamService(uow)

		uow.Members.On("Delete", mock.Anything, "t1", "m1").Return(nil).Once()

		require.NoError(t, service.RemoveMember(context.Background(), "t1", "m1"))
		uow.Members.AssertExpectations(t)
	})

	t.Run("ошибка: участник из другой команды", func(t *testing.T) {
		uow := NewMockUnitOfWork()
		service := NewTeamService(uow)

		uow.Members.On("Delete", mock.Anything, "t2", "m1").Return(repository.ErrNotFound).Once()

		err := service.RemoveMember(context.Background(), "t2", "m1")
		assert.True(t, errors.Is(err, domain.ErrNotFound))
	})
}
