package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/convodocs/convodocs-api/internal/domain"
	"github.com/convodocs/convodocs-api/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func newMockHandler(uow *service.MockUnitOfWork) *Handler {
	return newMockHandlerWithLogger(uow, zap.NewNop().Sugar())
}

func newMockHandlerWithLogger(uow *service.MockUnitOfWork, sugar *zap.SugaredLogger) *Handler {
	return NewHandler(
		service.NewTeamService(uow),
		service.NewDocumentService(uow),
		service.NewStatsService(uow),
		service.NewSyncService(sugar),
		sugar,
	)
}

func TestField_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name        string
		body        string
		wantPresent bool
		wantNull    bool
		wantValue   string
	}{
		{name: "поле отсутствует", body: `{}`},
		{name: "явный null", body: `{"title":null}`, wantPresent: true, wantNull: true},
		{name: "пустая строка", body: `{"title":""}`, wantPresent: true},
		{name: "значение", body: `{"title":"Doc"}`, wantPresent: true, wantValue: "Doc"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var req UpdateDocumentRequest
			require.NoError(t, json.Unmarshal([]byte(tt.body), &req))

			assert.Equal(t, tt.wantPresent, req.Title.Present)
			assert.Equal(t, tt.wantNull, req.Title.Null)
			assert.Equal(t, tt.wantValue, req.Title.Value)
		})
	}
}

func TestHttpPatchToDomain(t *testing.T) {
	var req UpdateDocumentRequest
	require.NoError(t, json.Unmarshal([]byte(`{"content":"","tags":[]}`), &req))

	patch := httpPatchToDomain(req)

	assert.Nil(t, patch.Title)
	assert.Nil(t, patch.TeamID)
	assert.Nil(t, patch.AuthorID)
	require.NotNil(t, patch.Content)
	assert.Equal(t, "", *patch.Content)
	require.NotNil(t, patch.Tags)
	assert.Empty(t, *patch.Tags)
}

func TestUpdateDocumentRequest_NullFields(t *testing.T) {
	h := newMockHandler(service.NewMockUnitOfWork())
	r := httptest.NewRequest(http.MethodPut, "/", strings.NewReader(`{"title":null,"tags":null,"content":"x"}`))

	var req UpdateDocumentRequest
	err := h.decodeAndValidate(r, &req)

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrValidation)
	assert.Contains(t, err.Error(), "title")
	assert.Contains(t, err.Error(), "tags")
	assert.NotContains(t, err.Error(), "content")
}

func TestTags_UnmarshalJSON(t *testing.T) {
	t.Run("успешный разбор", func(t *testing.T) {
		var tags Tags
		require.NoError(t, json.Unmarshal([]byte(`["b","a","b"]`), &tags))
		assert.Equal(t, Tags{"b", "a", "b"}, tags)
	})

	t.Run("пустой список", func(t *testing.T) {
		var tags Tags
		require.NoError(t, json.Unmarshal([]byte(`[]`), &tags))
		assert.NotNil(t, tags)
		assert.Empty(t, tags)
	})

	tests := []struct {
		name    string
		body    string
		wantErr string
	}{
		{"ошибка: null внутри списка", `["a",null]`, "must not contain null"},
		{"ошибка: число внутри списка", `["a",1]`, "must be an array of strings"},
		{"ошибка: строка вместо списка", `"a"`, "must be an array of strings"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var tags Tags
			err := json.Unmarshal([]byte(tt.body), &tags)

			require.Error(t, err)
			assert.ErrorIs(t, err, domain.ErrValidation)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestCreateDocumentRequest_Tags(t *testing.T) {
	h := newMockHandler(service.NewMockUnitOfWork())
	base := `"title":"t","content":"c","team_id":"t1","author_id":"m1"`

	tests := []struct {
		name     string
		body     string
		wantErr  string
		wantTags []string
	}{
		{name: "теги не переданы", body: `{` + base + `}`},
		{name: "теги переданы", body: `{` + base + `,"tags":["x"]}`, wantTags: []string{"x"}},
		{name: "ошибка: tags = null", body: `{` + base + `,"tags":null}`, wantErr: "fields must not be null: tags"},
		{name: "ошибка: null среди тегов", body: `{` + base + `,"tags":["a",null]}`, wantErr: "must not contain null"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(tt.body))

			var req CreateDocumentRequest
			err := h.decodeAndValidate(r, &req)

			if tt.wantErr != "" {
				require.Error(t, err)
				assert.ErrorIs(t, err, domain.ErrValidation)
				assert.Contains(t, err.Error(), tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantTags, []string(httpDocumentToDomain(req).Tags))
		})
	}
}

func TestDecodeAndValidate(t *testing.T) {
	h := newMockHandler(service.NewMockUnitOfWork())

	tests := []struct {
		name    string
		body    string
		wantErr string
	}{
		{name: "пустое тело", body: "", wantErr: "request body is required"},
		{name: "не объект", body: `"text"`, wantErr: "request body must be a JSON object"},
		{name: "неверный тип поля", body: `{"name":1,"email":"e","role":"r"}`, wantErr: "field 'name' must be of type string"},
		{name: "нет полей", body: `{"name":"n"}`, wantErr: "field 'email' is required; field 'role' is required"},
		{name: "битый JSON", body: `{"name"`, wantErr: "invalid JSON body"},
		{name: "мусор после объекта", body: `{"name":"n","email":"e","role":"r"} garbage`, wantErr: "single JSON object"},
		{name: "второй объект", body: `{"name":"n","email":"e","role":"r"}{}`, wantErr: "single JSON object"},
		{name: "лишняя скобка", body: `{"name":"n","email":"e","role":"r"}}`, wantErr: "single JSON object"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(tt.body))

			var req TeamMemberRequest
			err := h.decodeAndValidate(r, &req)

			require.Error(t, err)
			assert.ErrorIs(t, err, domain.ErrValidation)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}

	t.Run("успешная валидация", func(t *testing.T) {
		r := httptest.NewRequest(http.MethodPost, "/", strings.NewReader("{\"name\":\"\",\"email\":\"\",\"role\":\"\",\"extra\":1}\n  "))

		var req TeamMemberRequest
		require.NoError(t, h.decodeAndValidate(r, &req))
		assert.Equal(t, "", *req.Name)
	})
}

func TestHandleError(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   string
	}{
		{"NOT_FOUND", domain.NewNotFoundError("team with id 1"), http.StatusNotFound, "NOT_FOUND"},
		{"ALREADY_PUBLISHED", domain.ErrAlreadyPublished, http.StatusConflict, "ALREADY_PUBLISHED"},
		{"VALIDATION_ERROR", domain.NewValidationError("bad"), http.StatusUnprocessableEntity, "VALIDATION_ERROR"},
		{"неизвестная ошибка", errors.New("boom"), http.StatusInternalServerError, "INTERNAL_ERROR"},
		{"запрос отменен клиентом", context.Canceled, 499, "REQUEST_CANCELED"},
		{"истек дедлайн", context.DeadlineExceeded, http.StatusGatewayTimeout, "REQUEST_TIMEOUT"},
	}

	h := newMockHandler(service.NewMockUnitOfWork())
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			h.handleError(rec, httptest.NewRequest(http.MethodGet, "/", nil), tt.err)

			require.Equal(t, tt.wantStatus, rec.Code)
			var resp ErrorResponse
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
			assert.Equal(t, tt.wantCode, resp.Error.Code)
			assert.Equal(t, tt.wantStatus, resp.Error.Status)
		})
	}
}

func TestHandleError_LogLevel(t *testing.T) {
	tests := []struct {
		name      string
		err       error
		wantLevel zapcore.Level
	}{
		{"доменная ошибка - warn", domain.ErrAlreadyPublished, zapcore.WarnLevel},
		{"отмена запроса - warn", context.Canceled, zapcore.WarnLevel},
		{"дедлайн - warn", context.DeadlineExceeded, zapcore.WarnLevel},
		{"неизвестная ошибка - error", errors.New("boom"), zapcore.ErrorLevel},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			core, logs := observer.New(zapcore.DebugLevel)
			h := newMockHandlerWithLogger(service.NewMockUnitOfWork(), zap.New(core).Sugar())

			h.handleError(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil), tt.err)

			entries := logs.All()
			require.Len(t, entries, 1)
			assert.Equal(t, tt.wantLevel, entries[0].Level)
		})
	}
}

func TestListTeams_CanceledRequest(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	uow := service.NewMockUnitOfWork()
	uow.Teams.On("List", mock.Anything).Return(nil, context.Canceled).Once()
	h := newMockHandlerWithLogger(uow, zap.New(core).Sugar())

	rec := httptest.NewRecorder()
	h.ListTeams(rec, httptest.NewRequest(http.MethodGet, "/teams/", nil))

	assert.Equal(t, 499, rec.Code)
	assert.Zero(t, logs.FilterLevelExact(zapcore.ErrorLevel).Len())
	uow.Teams.AssertExpectations(t)
}

func TestListTeams_InternalError(t *testing.T) {
	uow := service.NewMockUnitOfWork()
	uow.Teams.On("List", mock.Anything).Return(nil, errors.New("storage exploded")).Once()
	h := newMockHandler(uow)

	rec := httptest.NewRecorder()
	h.ListTeams(rec, httptest.NewRequest(http.MethodGet, "/teams/", nil))

	require.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.NotContains(t, rec.Body.String(), "storage exploded")
	uow.Teams.AssertExpectations(t)
}

func TestTimestampString(t *testing.T) {
	assert.Equal(t, "", timestampString(nil))
	assert.Equal(t, "1700000000.000100", timestampString("1700000000.000100"))
	assert.Equal(t, "1700000001.5", timestampString(json.Number("1700000001.5")))
}
