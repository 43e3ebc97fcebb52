package handler

import (
	"bytes"
	"encoding/json"

	"github.com/convodocs/convodocs-api/internal/domain"
)

// Field запоминает, был ли ключ в JSON вообще и был ли он null.
// encoding/json вызывает UnmarshalJSON только для присутствующих ключей, включая null.
type Field[T any] struct {
	Present bool
	Null    bool
	Value   T
}

func (f *Field[T]) UnmarshalJSON(data []byte) error {
	f.Present = true
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		f.Null = true
		return nil
	}
	return json.Unmarshal(data, &f.Value)
}

// Ptr возвращает nil для отсутствующего поля.
func (f Field[T]) Ptr() *T {
	if !f.Present || f.Null {
		return nil
	}
	v := f.Value
	return &v
}

// Tags - список строк, в котором null не допускается и поэлементно.
type Tags []string

func (t *Tags) UnmarshalJSON(data []byte) error {
	var items []*string
	if err := json.Unmarshal(data, &items); err != nil || items == nil {
		return domain.NewValidationError("field 'tags' must be an array of strings")
	}

	tags := make(Tags, 0, len(items))
	for i, item := range items {
		if item == nil {
			return domain.NewValidationError("field 'tags' must not contain null values (index %d)", i)
		}
		tags = append(tags, *item)
	}
	*t = tags
	return nil
}
