package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

func (h *Handler) AddMember(w http.ResponseWriter, r *http.Request) {
	var req TeamMemberRequest
	if err := h.decodeAndValidate(r, &req); err != nil {
		h.handleError(w, r, err)
		return
	}

	member, err := h.teamService.AddMember(r.Context(), chi.URLParam(r, "teamID"), httpMemberToDomain(req))
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	h.logger.Infow("team member added", "team_id", member.TeamID, "member_id", member.ID)
	writeJSON(w, http.StatusCreated, domainMemberToHTTP(member))
}

func (h *Handler) ListMembers(w http.ResponseWriter, r *http.Request) {
	members, err := h.teamService.ListMembers(r.Context(), chi.URLParam(r, "teamID"))
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, domainMembersToHTTP(members))
}

func (h *Handler) RemoveMember(w http.ResponseWriter, r *http.Request) {
	teamID := chi.URLParam(r, "teamID")
	memberID := chi.URLParam(r, "memberID")
	if err := h.teamService.RemoveMember(r.Context(), teamID, memberID); err != nil {
		h.handleError(w, r, err)
		return
	}

	h.logger.Infow("team member removed", "team_id", teamID, "member_id", memberID)
	w.WriteHeader(http.StatusNoContent)
}
