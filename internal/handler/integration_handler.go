package handler

import (
	"net/http"
)

func (h *Handler) ConvertSlackThreads(w http.ResponseWriter, r *http.Request) {
	var req SlackThreadsRequest
	if err := h.decodeAndValidate(r, &req); err != nil {
		h.handleError(w, r, err)
		return
	}

	doc, err := h.documentService.ConvertThreads(r.Context(), httpThreadsToDomain(req))
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	h.logger.Infow("slack threads converted", "document_id", doc.ID, "threads", len(req.Threads))
	writeJSON(w, http.StatusCreated, domainDocumentToHTTP(doc))
}

func (h *Handler) SyncConfluence(w http.ResponseWriter, r *http.Request) {
	message, err := h.syncService.SyncConfluence(r.Context())
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, MessageResponse{Message: message})
}
