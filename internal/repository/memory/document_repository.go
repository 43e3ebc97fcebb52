package memory

import (
	"context"
	"slices"

	"github.com/convodocs/convodocs-api/internal/domain"
	"github.com/convodocs/convodocs-api/internal/repository"
)

type documentRepository struct {
	state *state
	newID func() string
}

func (r *documentRepository) Create(_ context.Context, doc *domain.Document) error {
	doc.ID = r.newID()
	if doc.Tags == nil {
		doc.Tags = []string{}
	}
	r.state.documents = append(r.state.documents, doc.Clone())
	return nil
}

func (r *documentRepository) GetByID(_ context.Context, id string) (*domain.Document, error) {
	i := r.index(id)
	if i < 0 {
		return nil, repository.ErrNotFound
	}
	return r.state.documents[i].Clone(), nil
}

func (r *documentRepository) List(_ context.Context, filter domain.DocumentFilter) ([]*domain.Document, error) {
	docs := make([]*domain.Document, 0)
	for _, doc := range r.state.documents {
		if filter.Match(doc) {
			docs = append(docs, doc.Clone())
		}
	}
	return docs, nil
}

func (r *documentRepository) Update(_ context.Context, doc *domain.Document) error {
	i := r.index(doc.ID)
	if i < 0 {
		return repository.ErrNotFound
	}
	r.state.documents[i] = doc.Clone()
	return nil
}

func (r *documentRepository) Delete(_ context.Context, id string) error {
	i := r.index(id)
	if i < 0 {
		return repository.ErrNotFound
	}
	r.state.documents = slices.Delete(r.state.documents, i, i+1)
	return nil
}

func (r *documentRepository) Count(_ context.Context) (int, error) {
	return len(r.state.documents), nil
}

func (r *documentRepository) index(id string) int {
	return slices.IndexFunc(r.state.documents, func(d *domain.Document) bool {
		return d.ID == id
	})
}
