package domain

import "fmt"

type DomainError struct {
	Code    string
	Message string
}

func (e *DomainError) Error() string {
	return e.Message
}

// Это позволяет использовать errors.Is()
func (e *DomainError) Is(target error) bool {
	if t, ok := target.(*DomainError); ok {
		return e.Code == t.Code
	}
	return false
}

const (
	CodeNotFound         = "NOT_FOUND"
	CodeAlreadyPublished = "ALREADY_PUBLISHED"
	CodeValidation       = "VALIDATION_ERROR"
)

var (
	// ErrNotFound - ресурс не найден
	ErrNotFound = &DomainError{
		Code:    CodeNotFound,
		Message: "resource not found",
	}

	// ErrAlreadyPublished - документ уже опубликован
	ErrAlreadyPublished = &DomainError{
		Code:    CodeAlreadyPublished,
		Message: "document is already published",
	}

	// ErrValidation - тело запроса не прошло проверку схемы
	ErrValidation = &DomainError{
		Code:    CodeValidation,
		Message: "request validation failed",
	}
)

// NewNotFoundError создает ошибку NOT_FOUND с дополнительным контекстом
func NewNotFoundError(resource string) *DomainError {
	return &DomainError{
		Code:    CodeNotFound,
		Message: fmt.Sprintf("%s not found", resource),
	}
}

// NewValidationError создает ошибку VALIDATION_ERROR с описанием проблемы
func NewValidationError(format string, args ...any) *DomainError {
	return &DomainError{
		Code:    CodeValidation,
		Message: fmt.Sprintf(format, args...),
	}
}
