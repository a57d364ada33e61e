package gateway

import (
	"context"
	"net/http"

	"github.com/propguard/tenant-portal/internal/core/domain"
	"github.com/propguard/tenant-portal/internal/core/ports"
)

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginResponse struct {
	Access  string            `json:"access"`
	Refresh string            `json:"refresh"`
	User    domain.User       `json:"user"`
	Tenant  *domain.RawTenant `json:"tenant"`
}

func (c *Client) Login(ctx context.Context, email, password string) (*ports.LoginResult, error) {
	var resp loginResponse
	err := c.do(ctx, "accounts", http.MethodPost, "/accounts/login/", nil, loginRequest{Email: email, Password: password}, &resp)
	if err != nil {
		return nil, err
	}

	result := &ports.LoginResult{
		Tokens: domain.TokenPair{Access: resp.Access, Refresh: resp.Refresh},
		User:   resp.User,
	}
	if resp.Tenant != nil {
		t := domain.MapTenant(*resp.Tenant)
		result.Tenant = &t
	}
	return result, nil
}

type refreshRequest struct {
	Refresh string `json:"refresh"`
}

type refreshResponse struct {
	Access  string `json:"access"`
	Refresh string `json:"refresh"`
}

// RefreshToken exchanges the refresh token for a new access token, rotating
// the pair in place. Refreshes are serialized: a caller that lost the race
// sees fresh tokens and returns without a second round trip.
func (c *Client) RefreshToken(ctx context.Context, tok *domain.TokenPair) error {
	return c.refresh(ctx, tok, "")
}

// refresh rotates the pair. rejected, when set, is an access token the
// backend just refused with a 401; a caller holding one forces a refresh
// unless another caller already rotated past it.
func (c *Client) refresh(ctx context.Context, tok *domain.TokenPair, rejected string) error {
	c.refreshMu.Lock()
	defer c.refreshMu.Unlock()

	if tok.Refresh == "" {
		return ports.NewError(ports.KindAuth, "no refresh token", nil)
	}
	if rejected != "" {
		if tok.Access != rejected {
			return nil
		}
	} else if !tokenExpiringSoon(tok.Access) {
		return nil
	}

	var resp refreshResponse
	err := c.send(ctx, "accounts", http.MethodPost, "/accounts/token/refresh/", nil, refreshRequest{Refresh: tok.Refresh}, &resp)
	if err != nil {
		return err
	}

	tok.Access = resp.Access
	if resp.Refresh != "" {
		tok.Refresh = resp.Refresh
	}
	return nil
}
