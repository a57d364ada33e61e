package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/sony/gobreaker"

	"github.com/propguard/tenant-portal/internal/config"
	"github.com/propguard/tenant-portal/internal/core/domain"
	"github.com/propguard/tenant-portal/internal/core/ports"
)

const (
	requestTimeout = 15 * time.Second

	// Access tokens are refreshed proactively when their exp claim is
	// within this buffer, so most requests never see a 401.
	refreshBuffer = 5 * time.Minute
)

// Client implements ports.BackendGateway against the property-management
// REST API. It is a pure I/O boundary: requests carry the session's bearer
// token, responses are decoded into the raw wire types and mapped once, and
// failures come back as classified *ports.Error values. Each backend resource
// sits behind its own circuit breaker.
type Client struct {
	baseURL string
	http    *http.Client
	metrics *Metrics

	mu       sync.Mutex
	breakers map[string]*gobreaker.CircuitBreaker

	// Serializes token refreshes so concurrent 401s trigger one
	// refresh call, not a stampede.
	refreshMu sync.Mutex
}

var _ ports.BackendGateway = (*Client)(nil)

func NewClient(baseURL string, metrics *Metrics) *Client {
	return &Client{
		baseURL:  baseURL,
		http:     &http.Client{Timeout: requestTimeout},
		metrics:  metrics,
		breakers: make(map[string]*gobreaker.CircuitBreaker),
	}
}

func (c *Client) breaker(resource string) *gobreaker.CircuitBreaker {
	c.mu.Lock()
	defer c.mu.Unlock()
	cb, ok := c.breakers[resource]
	if !ok {
		cb = config.NewCircuitBreaker("Backend-" + resource)
		c.breakers[resource] = cb
	}
	return cb
}

// do performs one backend request. tok may be nil for public endpoints. When
// tok is set the access token is attached as a bearer header, refreshed
// proactively near expiry, and refreshed once more behind a 401 before a
// single retry. A rotated pair is written back through tok in place.
func (c *Client) do(ctx context.Context, resource, method, path string, tok *domain.TokenPair, body, out any) error {
	if tok != nil && !tok.Empty() && tokenExpiringSoon(tok.Access) {
		if err := c.RefreshToken(ctx, tok); err != nil {
			log.Printf("gateway: proactive token refresh: %v", err)
		}
	}

	var rejected string
	if tok != nil {
		rejected = tok.Access
	}
	err := c.send(ctx, resource, method, path, tok, body, out)
	if err == nil {
		return nil
	}
	if tok == nil || tok.Empty() || !ports.IsAuthError(err) {
		return err
	}

	// One refresh, one retry. A failed refresh means the session is dead;
	// surface the original auth error with the tokens cleared.
	if refreshErr := c.refresh(ctx, tok, rejected); refreshErr != nil {
		*tok = domain.TokenPair{}
		return err
	}
	return c.send(ctx, resource, method, path, tok, body, out)
}

func (c *Client) send(ctx context.Context, resource, method, path string, tok *domain.TokenPair, body, out any) error {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return ports.NewError(ports.KindValidation, "encode request", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return ports.NewError(ports.KindRemote, "build request", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if tok != nil && !tok.Empty() {
		req.Header.Set("Authorization", "Bearer "+tok.Access)
	}

	start := time.Now()
	result, err := c.breaker(resource).Execute(func() (interface{}, error) {
		resp, err := c.http.Do(req)
		if err != nil {
			return nil, ports.NewError(ports.KindRemote, "backend unreachable", err)
		}
		defer resp.Body.Close()

		data, err := io.ReadAll(resp.Body)
		if err != nil {
			return nil, ports.NewError(ports.KindRemote, "read response", err)
		}
		if resp.StatusCode >= 400 {
			return nil, classify(resp.StatusCode, data)
		}
		return data, nil
	})
	c.observe(resource, method, time.Since(start), err)
	if err != nil {
		var ge *ports.Error
		if ok := asGatewayError(err, &ge); ok {
			return ge
		}
		// Breaker-open and other transport-level failures.
		return ports.NewError(ports.KindRemote, "backend request failed", err)
	}

	if out == nil {
		return nil
	}
	data := result.([]byte)
	if len(data) == 0 {
		return nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		return ports.NewError(ports.KindRemote, "decode response", err)
	}
	return nil
}

func (c *Client) observe(resource, method string, elapsed time.Duration, err error) {
	if c.metrics == nil {
		return
	}
	outcome := "success"
	if err != nil {
		outcome = "error"
	}
	c.metrics.Requests.WithLabelValues(resource, method, outcome).Inc()
	c.metrics.Duration.WithLabelValues(resource).Observe(elapsed.Seconds())
}

// classify maps an HTTP failure status to the portal error taxonomy and
// pulls the backend's message out of the body when it has one.
func classify(status int, body []byte) *ports.Error {
	msg := backendMessage(body)
	switch status {
	case http.StatusBadRequest:
		if msg == "" {
			msg = "invalid request"
		}
		return ports.NewError(ports.KindValidation, msg, nil)
	case http.StatusUnauthorized:
		if msg == "" {
			msg = "authentication required"
		}
		return ports.NewError(ports.KindAuth, msg, nil)
	case http.StatusForbidden:
		if msg == "" {
			msg = "forbidden"
		}
		return ports.NewError(ports.KindForbidden, msg, nil)
	case http.StatusNotFound:
		if msg == "" {
			msg = "not found"
		}
		return ports.NewError(ports.KindNotFound, msg, nil)
	default:
		return ports.NewError(ports.KindRemote, fmt.Sprintf("backend returned %d", status), nil)
	}
}

func backendMessage(body []byte) string {
	var parsed struct {
		Error  string `json:"error"`
		Detail string `json:"detail"`
	}
	if err := json.Unmarshal(body, &parsed); err != nil {
		return ""
	}
	if parsed.Error != "" {
		return parsed.Error
	}
	return parsed.Detail
}

func asGatewayError(err error, target **ports.Error) bool {
	for err != nil {
		if ge, ok := err.(*ports.Error); ok {
			*target = ge
			return true
		}
		u, ok := err.(interface{ Unwrap() error })
		if !ok {
			return false
		}
		err = u.Unwrap()
	}
	return false
}

// tokenExpiringSoon decodes the access token without verifying the signature
// (the backend owns the signing key) and reports whether exp falls inside the
// refresh buffer. Undecodable tokens count as expiring.
func tokenExpiringSoon(access string) bool {
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(access, claims); err != nil {
		return true
	}
	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return false
	}
	return time.Until(exp.Time) < refreshBuffer
}
