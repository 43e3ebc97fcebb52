package handler

import (
	"net/http"
)

const (
	serviceMessage       = "Welcome to ConvoDocs API"
	serviceVersion       = "1.0.0"
	serviceDocumentation = "/docs"
)

// Info - корневая ручка: приветствие и текущие размеры хранилища.
func (h *Handler) Info(w http.ResponseWriter, r *http.Request) {
	stats, err := h.statsService.GetStoreStats(r.Context())
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, InfoResponse{
		Message:       serviceMessage,
		Version:       serviceVersion,
		Documentation: serviceDocumentation,
		Stats:         domainStatsToHTTP(stats),
	})
}
