package domain

import "time"

// Team хранит денормализованную копию своих участников в Members.
// Список синхронизируется только при создании и удалении участника.
type Team struct {
	ID          string
	Name        string
	Description string
	Members     []TeamMember
	CreatedAt   time.Time
}

type TeamMember struct {
	ID        string
	TeamID    string
	Name      string
	Email     string
	Role      string
	CreatedAt time.Time
}

func (t *Team) Clone() *Team {
	if t == nil {
		return nil
	}
	c := *t
	c.Members = make([]TeamMember, len(t.Members))
	copy(c.Members, t.Members)
	return &c
}

func (m *TeamMember) Clone() *TeamMember {
	if m == nil {
		return nil
	}
	c := *m
	return &c
}
