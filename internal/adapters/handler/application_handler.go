package handler

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/propguard/tenant-portal/internal/adapters/middleware"
	"github.com/propguard/tenant-portal/internal/core/domain"
	"github.com/propguard/tenant-portal/internal/core/ports"
)

type ApplicationHandler struct {
	applicationService ports.ApplicationService
	sessions           ports.SessionStore
}

func NewApplicationHandler(applications ports.ApplicationService, sessions ports.SessionStore) *ApplicationHandler {
	return &ApplicationHandler{applicationService: applications, sessions: sessions}
}

// Draft handles the draft lifecycle: GET loads, PUT saves, DELETE discards.
func (h *ApplicationHandler) Draft(w http.ResponseWriter, r *http.Request) {
	sess := middleware.SessionFromContext(r.Context())

	switch r.Method {
	case http.MethodGet:
		form, err := h.applicationService.LoadDraft(r.Context(), sess.ID)
		if err != nil {
			writeError(w, err)
			return
		}
		if form == nil {
			writeJSON(w, http.StatusOK, domain.ApplicationForm{})
			return
		}
		writeJSON(w, http.StatusOK, form)

	case http.MethodPut, http.MethodPost:
		var form domain.ApplicationForm
		if err := json.NewDecoder(r.Body).Decode(&form); err != nil {
			writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid request body"})
			return
		}
		if err := h.applicationService.SaveDraft(r.Context(), sess.ID, form); err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusNoContent, nil)

	case http.MethodDelete:
		if err := h.applicationService.ClearDraft(r.Context(), sess.ID); err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusNoContent, nil)

	default:
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
	}
}

type submitRequest struct {
	Form    domain.ApplicationForm `json:"form"`
	Listing *domain.Listing        `json:"listing,omitempty"`
}

func (h *ApplicationHandler) Submit(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	sess := middleware.SessionFromContext(r.Context())

	var req submitRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid request body"})
		return
	}

	tenant, err := h.applicationService.Submit(r.Context(), sess, req.Form, req.Listing)
	if err != nil {
		writeError(w, err)
		return
	}
	if err := h.sessions.Save(r.Context(), sess); err != nil {
		log.Printf("session save after submit: %v", err)
	}
	writeJSON(w, http.StatusCreated, tenant)
}

type checkStatusHTTPRequest struct {
	Email string `json:"email"`
	Phone string `json:"phone"`
}

type checkStatusHTTPResponse struct {
	Found    bool                  `json:"found"`
	Status   domain.UserStatus     `json:"status,omitempty"`
	Tenant   *domain.Tenant        `json:"tenant,omitempty"`
	Timeline []domain.TimelineStep `json:"timeline,omitempty"`
	Message  string                `json:"message,omitempty"`
}

// CheckStatus answers the unauthenticated application-status lookup. A
// no-match is a 200 with found=false; the message never discloses which
// field failed to match.
func (h *ApplicationHandler) CheckStatus(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	sess := middleware.SessionFromContext(r.Context())

	var req checkStatusHTTPRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid request body"})
		return
	}

	lookup, err := h.applicationService.CheckStatus(r.Context(), sess, req.Email, req.Phone)
	if err != nil {
		writeError(w, err)
		return
	}
	if lookup == nil {
		writeJSON(w, http.StatusOK, checkStatusHTTPResponse{
			Found:   false,
			Message: "No application found matching those details.",
		})
		return
	}
	if err := h.sessions.Save(r.Context(), sess); err != nil {
		log.Printf("session save after status check: %v", err)
	}

	display := domain.TrackerStatus(lookup.Status)
	writeJSON(w, http.StatusOK, checkStatusHTTPResponse{
		Found:    true,
		Status:   display,
		Tenant:   &lookup.Tenant,
		Timeline: domain.TimelineSteps(display, lookup.Tenant.LeaseStatus),
	})
}
