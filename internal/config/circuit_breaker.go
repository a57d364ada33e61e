package config

import (
	"log"
	"strings"
	"time"

	"github.com/sony/gobreaker"
)

// NewCircuitBreaker builds a breaker for one named dependency. The open
// timeout varies per dependency class: the session store answers fast or not
// at all, the outbox database gets a little longer, and each backend resource
// trips on its own so one slow endpoint does not block the rest.
func NewCircuitBreaker(name string) *gobreaker.CircuitBreaker {
	var timeout time.Duration
	switch {
	case name == "Redis-Sessions":
		timeout = 5 * time.Second
	case name == "PostgreSQL", name == "Relay-PostgreSQL":
		timeout = 10 * time.Second
	case strings.HasPrefix(name, "Backend-"):
		timeout = 15 * time.Second
	default:
		timeout = 30 * time.Second
	}

	return gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:        name,
		MaxRequests: 3,
		Interval:    10 * time.Second,
		Timeout:     timeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= 3
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			log.Printf("[CRITICAL] Circuit Breaker %s: %s -> %s", name, from, to)
		},
	})
}
