//go:build integration
// +build integration

package integration

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/convodocs/convodocs-api/internal/config"
	"github.com/convodocs/convodocs-api/internal/handler"
	"github.com/convodocs/convodocs-api/internal/handler/server"
	"github.com/convodocs/convodocs-api/internal/repository/memory"
	"github.com/convodocs/convodocs-api/internal/service"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// setupTestServer поднимает полный стек на реальном порту.
func setupTestServer(t *testing.T) *httptest.Server {
	store := memory.NewStore()
	log := zap.NewNop()

	h := handler.NewHandler(
		service.NewTeamService(store),
		service.NewDocumentService(store),
		service.NewStatsService(store),
		service.NewSyncService(log.Sugar()),
		log.Sugar(),
	)

	srv := httptest.NewServer(server.NewRouter(h, config.HTTPConfig{AllowedOrigins: []string{"*"}}, log))

	// Автоматическая остановка после теста
	t.Cleanup(srv.Close)

	return srv
}

// call отправляет JSON-запрос и, если out != nil, декодирует ответ в out.
func call(t *testing.T, srv *httptest.Server, method, path string, body any, out any) int {
	t.Helper()

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequest(method, srv.URL+path, reader)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")

	resp, err := srv.Client().Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	if out != nil {
		require.NoError(t, json.NewDecoder(resp.Body).Decode(out))
	}
	return resp.StatusCode
}
