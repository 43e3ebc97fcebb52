package handler

import (
	"net/http"

	"github.com/convodocs/convodocs-api/internal/domain"
	"github.com/go-chi/chi/v5"
)

func (h *Handler) CreateDocument(w http.ResponseWriter, r *http.Request) {
	var req CreateDocumentRequest
	if err := h.decodeAndValidate(r, &req); err != nil {
		h.handleError(w, r, err)
		return
	}

	doc, err := h.documentService.CreateDocument(r.Context(), httpDocumentToDomain(req))
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	h.logger.Infow("document created", "document_id", doc.ID, "team_id", doc.TeamID)
	writeJSON(w, http.StatusCreated, domainDocumentToHTTP(doc))
}

// ListDocuments: пустые team_id и status считаются неуказанными.
func (h *Handler) ListDocuments(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	filter := domain.DocumentFilter{
		TeamID: query.Get("team_id"),
		Status: domain.Status(query.Get("status")),
	}

	docs, err := h.documentService.ListDocuments(r.Context(), filter)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, domainDocumentsToHTTP(docs))
}

func (h *Handler) GetDocument(w http.ResponseWriter, r *http.Request) {
	doc, err := h.documentService.GetDocument(r.Context(), chi.URLParam(r, "documentID"))
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, domainDocumentToHTTP(doc))
}

func (h *Handler) UpdateDocument(w http.ResponseWriter, r *http.Request) {
	var req UpdateDocumentRequest
	if err := h.decodeAndValidate(r, &req); err != nil {
		h.handleError(w, r, err)
		return
	}

	doc, err := h.documentService.UpdateDocument(r.Context(), chi.URLParam(r, "documentID"), httpPatchToDomain(req))
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, domainDocumentToHTTP(doc))
}

func (h *Handler) PublishDocument(w http.ResponseWriter, r *http.Request) {
	doc, err := h.documentService.PublishDocument(r.Context(), chi.URLParam(r, "documentID"))
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	h.logger.Infow("document published", "document_id", doc.ID)
	writeJSON(w, http.StatusOK, domainDocumentToHTTP(doc))
}

func (h *Handler) DeleteDocument(w http.ResponseWriter, r *http.Request) {
	documentID := chi.URLParam(r, "documentID")
	if err := h.documentService.DeleteDocument(r.Context(), documentID); err != nil {
		h.handleError(w, r, err)
		return
	}

	h.logger.Infow("document deleted", "document_id", documentID)
	w.WriteHeader(http.StatusNoContent)
}
