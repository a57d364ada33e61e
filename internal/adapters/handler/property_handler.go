package handler

import (
	"encoding/json"
	"net/http"

	"github.com/propguard/tenant-portal/internal/adapters/middleware"
	"github.com/propguard/tenant-portal/internal/core/ports"
)

type PropertyHandler struct {
	propertyService ports.PropertyService
}

func NewPropertyHandler(properties ports.PropertyService) *PropertyHandler {
	return &PropertyHandler{propertyService: properties}
}

// Listings serves the public property listings. No session state changes.
func (h *PropertyHandler) Listings(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	listings, err := h.propertyService.Listings(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, listings)
}

type contactRequest struct {
	Message string `json:"message"`
}

func (h *PropertyHandler) ContactManager(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	sess := middleware.SessionFromContext(r.Context())

	var req contactRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid request body"})
		return
	}
	if err := h.propertyService.ContactManager(r.Context(), sess, ports.ContactMessage{Message: req.Message}); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusAccepted, map[string]string{"message": "Your message has been sent to the property manager."})
}
