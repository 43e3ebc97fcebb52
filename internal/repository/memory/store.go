package memory

import (
	"context"
	"sync"

	"github.com/convodocs/convodocs-api/internal/domain"
	"github.com/convodocs/convodocs-api/internal/repository"
	"github.com/google/uuid"
)

// state - все данные сервиса. Слайсы хранят записи в порядке вставки,
// этот порядок отдается в списках.
type state struct {
	teams     []*domain.Team
	members   []*domain.TeamMember
	documents []*domain.Document
}

// Store - хранилище в памяти процесса. Создается один раз при старте
// и передается в сервисы; данные теряются при перезапуске.
type Store struct {
	mu    sync.RWMutex
	state state
	newID func() string
}

type Option func(*Store)

// WithIDGenerator подменяет генератор идентификаторов (по умолчанию UUIDv4).
func WithIDGenerator(fn func() string) Option {
	return func(s *Store) {
		s.newID = fn
	}
}

func NewStore(opts ...Option) *Store {
	s := &Store{newID: uuid.NewString}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *Store) View(ctx context.Context, fn func(repos repository.Repositories) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	return fn(s.repositories())
}

func (s *Store) Update(ctx context.Context, fn func(repos repository.Repositories) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return fn(s.repositories())
}

func (s *Store) repositories() repository.Repositories {
	return repository.Repositories{
		Teams:     &teamRepository{state: &s.state, newID: s.newID},
		Members:   &memberRepository{state: &s.state, newID: s.newID},
		Documents: &documentRepository{state: &s.state, newID: s.newID},
	}
}

func (st *state) teamIndex(id string) int {
	for i, team := range st.teams {
		if team.ID == id {
			return i
		}
	}
	return -1
}
