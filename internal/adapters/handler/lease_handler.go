package handler

import (
	"net/http"

	"github.com/propguard/tenant-portal/internal/adapters/middleware"
	"github.com/propguard/tenant-portal/internal/core/ports"
)

type LeaseHandler struct {
	documentService ports.DocumentService
}

func NewLeaseHandler(documents ports.DocumentService) *LeaseHandler {
	return &LeaseHandler{documentService: documents}
}

// Documents lists the tenant's legal documents.
func (h *LeaseHandler) Documents(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	sess := middleware.SessionFromContext(r.Context())

	docs, err := h.documentService.Documents(r.Context(), sess)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, docs)
}

// Lease returns the tenant's lease agreement document, 404 when none has
// been issued yet.
func (h *LeaseHandler) Lease(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	sess := middleware.SessionFromContext(r.Context())

	lease, err := h.documentService.LeaseDocument(r.Context(), sess)
	if err != nil {
		writeError(w, err)
		return
	}
	if lease == nil {
		writeJSON(w, http.StatusNotFound, errorResponse{Error: "no lease agreement on file"})
		return
	}
	writeJSON(w, http.StatusOK, lease)
}

// Sign completes the signing ceremony and advances the session to the
// resident dashboard.
func (h *LeaseHandler) Sign(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	sess := middleware.SessionFromContext(r.Context())

	if err := h.documentService.SignLease(r.Context(), sess); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, viewOf(sess))
}

type draftLeaseResponse struct {
	Text string `json:"text"`
}

// Draft returns a generated lease agreement draft for preview.
func (h *LeaseHandler) Draft(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	sess := middleware.SessionFromContext(r.Context())

	text, err := h.documentService.DraftLease(r.Context(), sess)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, draftLeaseResponse{Text: text})
}
