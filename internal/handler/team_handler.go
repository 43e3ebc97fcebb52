package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

func (h *Handler) CreateTeam(w http.ResponseWriter, r *http.Request) {
	var req TeamRequest
	if err := h.decodeAndValidate(r, &req); err != nil {
		h.handleError(w, r, err)
		return
	}

	team, err := h.teamService.CreateTeam(r.Context(), *req.Name, *req.Description)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	h.logger.Infow("team created", "team_id", team.ID)
	writeJSON(w, http.StatusCreated, domainTeamToHTTP(team))
}

func (h *Handler) ListTeams(w http.ResponseWriter, r *http.Request) {
	teams, err := h.teamService.ListTeams(r.Context())
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, domainTeamsToHTTP(teams))
}

func (h *Handler) GetTeam(w http.ResponseWriter, r *http.Request) {
	team, err := h.teamService.GetTeam(r.Context(), chi.URLParam(r, "teamID"))
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, domainTeamToHTTP(team))
}

func (h *Handler) UpdateTeam(w http.ResponseWriter, r *http.Request) {
	var req TeamRequest
	if err := h.decodeAndValidate(r, &req); err != nil {
		h.handleError(w, r, err)
		return
	}

	team, err := h.teamService.UpdateTeam(r.Context(), chi.URLParam(r, "teamID"), *req.Name, *req.Description)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, domainTeamToHTTP(team))
}

func (h *Handler) DeleteTeam(w http.ResponseWriter, r *http.Request) {
	teamID := chi.URLParam(r, "teamID")
	if err := h.teamService.DeleteTeam(r.Context(), teamID); err != nil {
		h.handleError(w, r, err)
		return
	}

	h.logger.Infow("team deleted", "team_id", teamID)
	w.WriteHeader(http.StatusNoContent)
}
