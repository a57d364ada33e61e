package handler

import (
	"context"
	"database/sql"
	"net/http"
	"os"
	"time"

	"github.com/redis/go-redis/v9"
)

const probeTimeout = 5 * time.Second

// HealthHandler serves the liveness and readiness probes. Readiness covers
// the portal's own dependencies only: the outbox database and the session
// store. The property-management backend is deliberately excluded, since an
// upstream outage degrades features but the portal can still serve sessions.
type HealthHandler struct {
	db        *sql.DB
	sessions  *redis.Client
	startedAt time.Time
	version   string
}

func NewHealthHandler(db *sql.DB, sessions *redis.Client) *HealthHandler {
	version := os.Getenv("APP_VERSION")
	if version == "" {
		version = "unknown"
	}
	return &HealthHandler{
		db:        db,
		sessions:  sessions,
		startedAt: time.Now(),
		version:   version,
	}
}

type probeCheck struct {
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
}

type probeResponse struct {
	Status    string                `json:"status"`
	Timestamp string                `json:"timestamp,omitempty"`
	Uptime    string                `json:"uptime,omitempty"`
	Version   string                `json:"version,omitempty"`
	Checks    map[string]probeCheck `json:"checks"`
}

// Health confirms the process is up without touching any dependency.
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	writeJSON(w, http.StatusOK, probeResponse{
		Status:    "UP",
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		Uptime:    time.Since(h.startedAt).Round(time.Second).String(),
		Version:   h.version,
		Checks:    map[string]probeCheck{"process": {Status: "UP"}},
	})
}

// Live is the liveness alias.
func (h *HealthHandler) Live(w http.ResponseWriter, r *http.Request) {
	h.Health(w, r)
}

// Ready reports whether the portal can serve traffic.
func (h *HealthHandler) Ready(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	checks := map[string]probeCheck{
		"database": h.checkDatabase(r.Context()),
		"sessions": h.checkSessions(r.Context()),
	}

	status, httpStatus := "UP", http.StatusOK
	for _, c := range checks {
		if c.Status != "UP" {
			status, httpStatus = "DOWN", http.StatusServiceUnavailable
			break
		}
	}
	writeJSON(w, httpStatus, probeResponse{Status: status, Checks: checks})
}

func (h *HealthHandler) checkDatabase(ctx context.Context) probeCheck {
	if h.db == nil {
		return probeCheck{Status: "DOWN", Message: "outbox database is not configured"}
	}
	ctx, cancel := context.WithTimeout(ctx, probeTimeout)
	defer cancel()
	if err := h.db.PingContext(ctx); err != nil {
		return probeCheck{Status: "DOWN", Message: "outbox database is unreachable"}
	}
	return probeCheck{Status: "UP"}
}

func (h *HealthHandler) checkSessions(ctx context.Context) probeCheck {
	if h.sessions == nil {
		return probeCheck{Status: "DOWN", Message: "session store is not configured"}
	}
	ctx, cancel := context.WithTimeout(ctx, probeTimeout)
	defer cancel()
	if err := h.sessions.Ping(ctx).Err(); err != nil {
		return probeCheck{Status: "DOWN", Message: "session store is unreachable"}
	}
	return probeCheck{Status: "UP"}
}
