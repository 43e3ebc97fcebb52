package handler

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"reflect"
	"strings"

	"github.com/convodocs/convodocs-api/internal/domain"
	"github.com/go-playground/validator/v10"
)

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	// В сообщениях об ошибках - имена полей из JSON, а не из Go.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name, _, _ := strings.Cut(fld.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// decodeAndValidate читает JSON-тело в dst и прогоняет его через validator.
func (h *Handler) decodeAndValidate(r *http.Request, dst any) error {
	dec := json.NewDecoder(r.Body)
	dec.UseNumber()
	if err := dec.Decode(dst); err != nil {
		return decodeError(err)
	}
	// После объекта во входе не должно остаться ничего, кроме пробелов.
	if err := dec.Decode(new(json.RawMessage)); !errors.Is(err, io.EOF) {
		return domain.NewValidationError("request body must contain a single JSON object")
	}

	if nc, ok := dst.(nullChecker); ok {
		if fields := nc.nullFields(); len(fields) > 0 {
			return domain.NewValidationError("fields must not be null: %s", strings.Join(fields, ", "))
		}
	}

	if err := h.validate.Struct(dst); err != nil {
		return validationError(err)
	}
	return nil
}

func decodeError(err error) error {
	var typeErr *json.UnmarshalTypeError
	var domainErr *domain.DomainError
	switch {
	case errors.As(err, &domainErr):
		return domainErr
	case errors.Is(err, io.EOF):
		return domain.NewValidationError("request body is required")
	case errors.As(err, &typeErr):
		field := typeErr.Field
		if field == "" {
			return domain.NewValidationError("request body must be a JSON object")
		}
		return domain.NewValidationError("field '%s' must be of type %s", field, typeErr.Type.String())
	default:
		return domain.NewValidationError("invalid JSON body: %v", err)
	}
}

func validationError(err error) error {
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return domain.NewValidationError("%v", err)
	}

	problems := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		field := jsonPath(fe.Namespace())
		switch fe.Tag() {
		case "required":
			problems = append(problems, "field '"+field+"' is required")
		default:
			problems = append(problems, "field '"+field+"' failed '"+fe.Tag()+"' validation")
		}
	}
	return domain.NewValidationError("%s", strings.Join(problems, "; "))
}

// jsonPath убирает имя корневой структуры: "SlackThreadsRequest.threads[0].channel" -> "threads[0].channel".
func jsonPath(namespace string) string {
	if _, rest, ok := strings.Cut(namespace, "."); ok {
		return rest
	}
	return namespace
}

// nullChecker реализуют запросы с полями, для которых null недопустим,
// но отсутствие поля разрешено.
type nullChecker interface {
	nullFields() []string
}

func (req *CreateDocumentRequest) nullFields() []string {
	if req.Tags.Null {
		return []string{"tags"}
	}
	return nil
}

func (req *SlackThreadsRequest) nullFields() []string {
	if req.Tags.Null {
		return []string{"tags"}
	}
	return nil
}

func (req *UpdateDocumentRequest) nullFields() []string {
	var fields []string
	if req.Title.Null {
		fields = append(fields, "title")
	}
	if req.Content.Null {
		fields = append(fields, "content")
	}
	if req.TeamID.Null {
		fields = append(fields, "team_id")
	}
	if req.AuthorID.Null {
		fields = append(fields, "author_id")
	}
	if req.Tags.Null {
		fields = append(fields, "tags")
	}
	return fields
}
