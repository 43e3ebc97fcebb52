package service

import (
	"context"

	"github.com/convodocs/convodocs-api/internal/domain"
)

type DocumentService interface {
	// CreateDocument проверяет team_id и author_id и создает черновик
	CreateDocument(ctx context.Context, doc *domain.Document) (*domain.Document, error)
	ListDocuments(ctx context.Context, filter domain.DocumentFilter) ([]*domain.Document, error)
	GetDocument(ctx context.Context, id string) (*domain.Document, error)
	// UpdateDocument применяет только переданные поля; author_id не перепроверяется
	UpdateDocument(ctx context.Context, id string, patch domain.DocumentPatch) (*domain.Document, error)
	// PublishDocument переводит Draft в Published; повторная публикация - ErrAlreadyPublished
	PublishDocument(ctx context.Context, id string) (*domain.Document, error)
	DeleteDocument(ctx context.Context, id string) error

	// ConvertThreads собирает markdown из веток чата и создает из него документ
	ConvertThreads(ctx context.Context, imp domain.ThreadImport) (*domain.Document, error)
}
