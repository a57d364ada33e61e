package handler

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/propguard/tenant-portal/internal/core/ports"
	"github.com/propguard/tenant-portal/internal/core/services"
)

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if body == nil {
		return
	}
	if err := json.NewEncoder(w).Encode(body); err != nil {
		log.Printf("Failed to encode response: %v", err)
	}
}

type errorResponse struct {
	Error string `json:"error"`
}

// writeError translates classified service failures to HTTP statuses.
// Unclassified errors are reported as a bad gateway without leaking detail.
func writeError(w http.ResponseWriter, err error) {
	var ge *ports.Error
	if errors.As(err, &ge) {
		switch ge.Kind {
		case ports.KindValidation:
			writeJSON(w, http.StatusBadRequest, errorResponse{Error: ge.Message})
			return
		case ports.KindAuth:
			writeJSON(w, http.StatusUnauthorized, errorResponse{Error: ge.Message})
			return
		case ports.KindForbidden:
			writeJSON(w, http.StatusForbidden, errorResponse{Error: ge.Message})
			return
		case ports.KindNotFound:
			writeJSON(w, http.StatusNotFound, errorResponse{Error: ge.Message})
			return
		}
	}
	if errors.Is(err, services.ErrAdminAccessDenied) {
		writeJSON(w, http.StatusForbidden, errorResponse{Error: err.Error()})
		return
	}
	log.Printf("backend failure: %v", err)
	writeJSON(w, http.StatusBadGateway, errorResponse{Error: "The service is temporarily unavailable. Please try again."})
}
