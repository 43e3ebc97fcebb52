package service

import (
	"context"
	"time"

	"github.com/convodocs/convodocs-api/internal/domain"
	"github.com/convodocs/convodocs-api/internal/metrics"
	"github.com/convodocs/convodocs-api/internal/repository"
)

type documentService struct {
	uow repository.UnitOfWork
	options
}

// NewDocumentService создает новый экземпляр DocumentService
func NewDocumentService(uow repository.UnitOfWork, opts ...Option) DocumentService {
	return &documentService{
		uow:     uow,
		options: buildOptions(opts),
	}
}

func (s *documentService) CreateDocument(ctx context.Context, doc *domain.Document) (created *domain.Document, err error) {
	start := time.Now()
	defer func() { metrics.ObserveDocumentOp("create", start, err) }()

	created = &domain.Document{
		Title:    doc.Title,
		Content:  doc.Content,
		TeamID:   doc.TeamID,
		AuthorID: doc.AuthorID,
		Tags:     doc.Tags,
	}

	err = s.uow.Update(ctx, func(repos repository.Repositories) error {
		return s.create(ctx, repos, created)
	})
	if err != nil {
		return nil, err
	}
	return created, nil
}

// create - общая часть CreateDocument и ConvertThreads.
// Все проверки ссылок выполняются до записи.
func (s *documentService) create(ctx context.Context, repos repository.Repositories, doc *domain.Document) error {
	if _, err := repos.Teams.GetByID(ctx, doc.TeamID); err != nil {
		return notFound(err, "team with id "+doc.TeamID)
	}

	author, err := repos.Members.GetByID(ctx, doc.AuthorID)
	if err != nil {
		return notFound(err, "author with id "+doc.AuthorID)
	}

	now := s.now()
	doc.AuthorName = author.Name
	doc.Status = domain.StatusDraft
	doc.CreatedAt = now
	doc.UpdatedAt = now
	doc.PublishedAt = nil
	if doc.Tags == nil {
		doc.Tags = []string{}
	}

	return repos.Documents.Create(ctx, doc)
}

func (s *documentService) ListDocuments(ctx context.Context, filter domain.DocumentFilter) ([]*domain.Document, error) {
	var docs []*domain.Document
	err := s.uow.View(ctx, func(repos repository.Repositories) error {
		var err error
		docs, err = repos.Documents.List(ctx, filter)
		return err
	})
	if err != nil {
		return nil, err
	}
	return docs, nil
}

func (s *documentService) GetDocument(ctx context.Context, id string) (*domain.Document, error) {
	var doc *domain.Document
	err := s.uow.View(ctx, func(repos repository.Repositories) error {
		var err error
		doc, err = repos.Documents.GetByID(ctx, id)
		return notFound(err, "document with id "+id)
	})
	if err != nil {
		return nil, err
	}
	return doc, nil
}

func (s *documentService) UpdateDocument(ctx context.Context, id string, patch domain.DocumentPatch) (doc *domain.Document, err error) {
	start := time.Now()
	defer func() { metrics.ObserveDocumentOp("update", start, err) }()

	err = s.uow.Update(ctx, func(repos repository.Repositories) error {
		var err error
		doc, err = repos.Documents.GetByID(ctx, id)
		if err != nil {
			return notFound(err, "document with id "+id)
		}

		if patch.TeamID != nil {
			if _, err := repos.Teams.GetByID(ctx, *patch.TeamID); err != nil {
				return notFound(err, "team with id "+*patch.TeamID)
			}
		}

		applyPatch(doc, patch)
		doc.UpdatedAt = s.now()

		return repos.Documents.Update(ctx, doc)
	})
	if err != nil {
		return nil, err
	}
	return doc, nil
}

// applyPatch не обновляет author_name: это снимок на момент создания.
func applyPatch(doc *domain.Document, patch domain.DocumentPatch) {
	if patch.Title != nil {
		doc.Title = *patch.Title
	}
	if patch.Content != nil {
		doc.Content = *patch.Content
	}
	if patch.TeamID != nil {
		doc.TeamID = *patch.TeamID
	}
	if patch.AuthorID != nil {
		doc.AuthorID = *patch.AuthorID
	}
	if patch.Tags != nil {
		doc.Tags = append([]string{}, (*patch.Tags)...)
	}
}

func (s *documentService) PublishDocument(ctx context.Context, id string) (doc *domain.Document, err error) {
	start := time.Now()
	defer func() { metrics.ObserveDocumentOp("publish", start, err) }()

	err = s.uow.Update(ctx, func(repos repository.Repositories) error {
		var err error
		doc, err = repos.Documents.GetByID(ctx, id)
		if err != nil {
			return notFound(err, "document with id "+id)
		}

		if doc.Status == domain.StatusPublished {
			return domain.ErrAlreadyPublished
		}

		now := s.now()
		doc.Status = domain.StatusPublished
		doc.PublishedAt = &now
		doc.UpdatedAt = now

		return repos.Documents.Update(ctx, doc)
	})
	if err != nil {
		return nil, err
	}
	return doc, nil
}

func (s *documentService) DeleteDocument(ctx context.Context, id string) (err error) {
	start := time.Now()
	defer func() { metrics.ObserveDocumentOp("delete", start, err) }()

	return s.uow.Update(ctx, func(repos repository.Repositories) error {
		return notFound(repos.Documents.Delete(ctx, id), "document with id "+id)
	})
}

func (s *documentService) ConvertThreads(ctx context.Context, imp domain.ThreadImport) (doc *domain.Document, err error) {
	start := time.Now()
	defer func() { metrics.ObserveDocumentOp("convert_threads", start, err) }()

	doc = &domain.Document{
		Title:    imp.Title,
		Content:  RenderThreads(imp.Title, imp.Threads),
		TeamID:   imp.TeamID,
		AuthorID: imp.AuthorID,
		Tags:     imp.Tags,
	}

	err = s.uow.Update(ctx, func(repos repository.Repositories) error {
		return s.create(ctx, repos, doc)
	})
	if err != nil {
		return nil, err
	}
	return doc, nil
}
