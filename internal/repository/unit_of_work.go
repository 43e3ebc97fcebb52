package repository

import (
	"context"
	"errors"
)

// ErrNotFound возвращается репозиториями, когда запись с указанным id отсутствует.
var ErrNotFound = errors.New("record not found")

// Repositories - набор репозиториев, привязанных к одной транзакции хранилища.
type Repositories struct {
	Teams     TeamRepository
	Members   MemberRepository
	Documents DocumentRepository
}

// UnitOfWork выполняет fn атомарно относительно остальных операций.
// View допускает параллельное чтение, Update выполняется эксклюзивно.
// Репозитории из Repositories нельзя использовать после возврата из fn.
type UnitOfWork interface {
	View(ctx context.Context, fn func(repos Repositories) error) error
	Update(ctx context.Context, fn func(repos Repositories) error) error
}
