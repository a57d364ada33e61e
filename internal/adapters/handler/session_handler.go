package handler

import (
	"encoding/json"
	"net/http"

	"github.com/propguard/tenant-portal/internal/adapters/middleware"
	"github.com/propguard/tenant-portal/internal/core/domain"
	"github.com/propguard/tenant-portal/internal/core/ports"
)

type SessionHandler struct {
	sessionService ports.SessionService
}

func NewSessionHandler(sessions ports.SessionService) *SessionHandler {
	return &SessionHandler{sessionService: sessions}
}

type loginRequest struct {
	Email     string `json:"email"`
	Password  string `json:"password"`
	AdminMode bool   `json:"admin_mode"`
}

// sessionView is the client-facing snapshot of one portal session.
type sessionView struct {
	ID                string                `json:"id"`
	State             domain.SessionState   `json:"state"`
	Status            domain.UserStatus     `json:"status"`
	View              domain.View           `json:"view"`
	Tab               domain.ResidentTab    `json:"tab"`
	User              *domain.User          `json:"user,omitempty"`
	Tenant            *domain.Tenant        `json:"tenant,omitempty"`
	DashboardUnlocked bool                  `json:"dashboard_unlocked"`
	PendingReconcile  bool                  `json:"pending_reconcile"`
	BalanceDue        string                `json:"balance_due,omitempty"`
	Timeline          []domain.TimelineStep `json:"timeline,omitempty"`
}

func viewOf(sess *domain.Session) sessionView {
	v := sessionView{
		ID:                sess.ID,
		State:             sess.State,
		Status:            sess.Status,
		View:              sess.View,
		Tab:               sess.Tab,
		User:              sess.User,
		Tenant:            sess.Tenant,
		DashboardUnlocked: domain.DashboardUnlocked(sess.Status),
		PendingReconcile:  sess.PendingReconcile,
	}
	if sess.Tenant != nil {
		if v.DashboardUnlocked {
			v.BalanceDue = domain.FormatCurrency(sess.Tenant.Balance)
		} else {
			v.Timeline = domain.TimelineSteps(sess.Status, sess.Tenant.LeaseStatus)
		}
	}
	return v
}

func (h *SessionHandler) Login(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	sess := middleware.SessionFromContext(r.Context())

	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid request body"})
		return
	}

	if err := h.sessionService.Login(r.Context(), sess, req.Email, req.Password, req.AdminMode); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, viewOf(sess))
}

func (h *SessionHandler) Logout(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	sess := middleware.SessionFromContext(r.Context())
	if err := h.sessionService.Logout(r.Context(), sess); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, viewOf(sess))
}

// Session returns the current session snapshot without touching the backend.
func (h *SessionHandler) Session(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	sess := middleware.SessionFromContext(r.Context())
	writeJSON(w, http.StatusOK, viewOf(sess))
}

// Resume rebuilds the session from its stored tokens, used when the browser
// comes back after a restart.
func (h *SessionHandler) Resume(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	sess := middleware.SessionFromContext(r.Context())
	if err := h.sessionService.Resume(r.Context(), sess); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, viewOf(sess))
}

// RefreshStatus re-fetches the tenant record and re-derives the status,
// reconciling any optimistic lease-sign advance.
func (h *SessionHandler) RefreshStatus(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	sess := middleware.SessionFromContext(r.Context())
	if err := h.sessionService.RefreshStatus(r.Context(), sess); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, viewOf(sess))
}
