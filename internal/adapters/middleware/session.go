package middleware

import (
	"context"
	"log"
	"net/http"

	"github.com/google/uuid"

	"github.com/propguard/tenant-portal/internal/core/domain"
	"github.com/propguard/tenant-portal/internal/core/ports"
)

// SessionHeader carries the portal session id between browser and portal.
const SessionHeader = "X-Portal-Session"

type contextKey string

const sessionKey contextKey = "portalSession"

// SessionMiddleware resolves the portal session for each request. A missing
// or unknown session id gets a fresh anonymous session; the id is echoed back
// in the response header either way so the client can persist it.
type SessionMiddleware struct {
	store ports.SessionStore
}

func NewSessionMiddleware(store ports.SessionStore) *SessionMiddleware {
	return &SessionMiddleware{store: store}
}

func (m *SessionMiddleware) Wrap(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get(SessionHeader)

		var sess *domain.Session
		if id != "" {
			found, err := m.store.Get(r.Context(), id)
			if err != nil {
				log.Printf("session lookup %s: %v", id, err)
				http.Error(w, "session store unavailable", http.StatusServiceUnavailable)
				return
			}
			sess = found
		}

		if sess == nil {
			sess = domain.NewSession(uuid.NewString())
			if err := m.store.Save(r.Context(), sess); err != nil {
				log.Printf("session create: %v", err)
				http.Error(w, "session store unavailable", http.StatusServiceUnavailable)
				return
			}
		}

		w.Header().Set(SessionHeader, sess.ID)
		ctx := context.WithValue(r.Context(), sessionKey, sess)
		next(w, r.WithContext(ctx))
	}
}

// SessionFromContext returns the request's session, nil outside the
// middleware.
func SessionFromContext(ctx context.Context) *domain.Session {
	sess, _ := ctx.Value(sessionKey).(*domain.Session)
	return sess
}
