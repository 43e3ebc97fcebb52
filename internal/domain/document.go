package domain

import "time"

type Document struct {
	ID          string
	Title       string
	Content     string
	TeamID      string
	AuthorID    string
	AuthorName  string
	Tags        []string
	Status      Status
	CreatedAt   time.Time
	UpdatedAt   time.Time
	PublishedAt *time.Time
}

type Status string

const (
	StatusDraft     Status = "Draft"
	StatusPublished Status = "Published"
)

// DocumentPatch описывает частичное обновление: nil означает "поле не передано".
type DocumentPatch struct {
	Title    *string
	Content  *string
	TeamID   *string
	AuthorID *string
	Tags     *[]string
}

// DocumentFilter - необязательные фильтры списка; пустое значение не фильтрует.
type DocumentFilter struct {
	TeamID string
	Status Status
}

func (f DocumentFilter) Match(d *Document) bool {
	if f.TeamID != "" && d.TeamID != f.TeamID {
		return false
	}
	if f.Status != "" && d.Status != f.Status {
		return false
	}
	return true
}

func (d *Document) Clone() *Document {
	if d == nil {
		return nil
	}
	c := *d
	c.Tags = make([]string, len(d.Tags))
	copy(c.Tags, d.Tags)
	if d.PublishedAt != nil {
		publishedAt := *d.PublishedAt
		c.PublishedAt = &publishedAt
	}
	return &c
}
