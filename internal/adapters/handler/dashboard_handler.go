package handler

import (
	"encoding/json"
	"net/http"

	"github.com/propguard/tenant-portal/internal/adapters/middleware"
	"github.com/propguard/tenant-portal/internal/core/domain"
	"github.com/propguard/tenant-portal/internal/core/ports"
)

type DashboardHandler struct {
	recordingService ports.RecordingService
}

func NewDashboardHandler(recording ports.RecordingService) *DashboardHandler {
	return &DashboardHandler{recordingService: recording}
}

type submitPaymentRequest struct {
	Amount float64         `json:"amount"`
	Method string          `json:"method"`
	Proof  *domain.FileRef `json:"proof,omitempty"`
}

// Payments lists the tenant's payment history (GET) or records a payment
// claim (POST). Claims always enter as Pending.
func (h *DashboardHandler) Payments(w http.ResponseWriter, r *http.Request) {
	sess := middleware.SessionFromContext(r.Context())

	switch r.Method {
	case http.MethodGet:
		payments, err := h.recordingService.Payments(r.Context(), sess)
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, payments)

	case http.MethodPost:
		var req submitPaymentRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid request body"})
			return
		}
		payment, err := h.recordingService.SubmitPayment(r.Context(), sess, req.Amount, req.Method, req.Proof)
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusCreated, payment)

	default:
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
	}
}

type submitMaintenanceRequest struct {
	Area    string           `json:"area"`
	Issue   string           `json:"issue"`
	Details string           `json:"details"`
	Photos  []domain.FileRef `json:"photos,omitempty"`
}

func (h *DashboardHandler) Maintenance(w http.ResponseWriter, r *http.Request) {
	sess := middleware.SessionFromContext(r.Context())

	switch r.Method {
	case http.MethodGet:
		requests, err := h.recordingService.MaintenanceRequests(r.Context(), sess)
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, requests)

	case http.MethodPost:
		var req submitMaintenanceRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid request body"})
			return
		}
		created, err := h.recordingService.SubmitMaintenanceRequest(r.Context(), sess, req.Area, req.Issue, req.Details, req.Photos)
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusCreated, created)

	default:
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
	}
}

type ticketUpdateRequest struct {
	RequestID string `json:"request_id"`
	Comment   string `json:"comment"`
}

func (h *DashboardHandler) TicketUpdate(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	sess := middleware.SessionFromContext(r.Context())

	var req ticketUpdateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid request body"})
		return
	}
	updated, err := h.recordingService.AppendTicketUpdate(r.Context(), sess, req.RequestID, req.Comment)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, updated)
}

// ExportMaintenance streams the tenant's tickets as CSV.
func (h *DashboardHandler) ExportMaintenance(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	sess := middleware.SessionFromContext(r.Context())

	data, err := h.recordingService.ExportTicketsCSV(r.Context(), sess)
	if err != nil {
		writeError(w, err)
		return
	}
	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", `attachment; filename="maintenance-requests.csv"`)
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(data)
}
