package service

import (
	"errors"
	"time"

	"github.com/convodocs/convodocs-api/internal/domain"
	"github.com/convodocs/convodocs-api/internal/repository"
)

type options struct {
	now func() time.Time
}

type Option func(*options)

// WithClock задает источник текущего времени для created_at/updated_at/published_at.
func WithClock(now func() time.Time) Option {
	return func(o *options) {
		o.now = now
	}
}

func buildOptions(opts []Option) options {
	o := options{now: time.Now}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// notFound переводит repository.ErrNotFound в доменную ошибку NOT_FOUND.
func notFound(err error, resource string) error {
	if errors.Is(err, repository.ErrNotFound) {
		return domain.NewNotFoundError(resource)
	}
	return err
}
