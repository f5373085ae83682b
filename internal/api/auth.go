package api

import (
	"context"
	"fmt"
)

// Login exchanges email and password for a bearer token plus the user
// profile with existing holdings.
func (c *Client) Login(ctx context.Context, email, password string) (*AuthResponse, error) {
	return c.authenticate(ctx, "/api/auth/login", email, password)
}

// Register creates a new account and returns the same shape as Login.
func (c *Client) Register(ctx context.Context, email, password string) (*AuthResponse, error) {
	return c.authenticate(ctx, "/api/auth/register", email, password)
}

func (c *Client) authenticate(ctx context.Context, path, email, password string) (*AuthResponse, error) {
	resp, err := c.Post(ctx, path, AuthRequest{Email: email, Password: password})
	if err != nil {
		return nil, fmt.Errorf("authentication request failed: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if err := CheckResponse(resp); err != nil {
		return nil, err
	}

	var authResp AuthResponse
	if err := DecodeJSON(resp, &authResp); err != nil {
		return nil, err
	}
	if authResp.AccessToken == "" {
		return nil, fmt.Errorf("empty access token in response")
	}
	return &authResp, nil
}

// Profile fetches the authenticated user's profile and holdings using
// the client's bearer token.
func (c *Client) Profile(ctx context.Context) (*User, error) {
	resp, err := c.Get(ctx, "/api/user/profile")
	if err != nil {
		return nil, fmt.Errorf("profile request failed: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if err := CheckResponse(resp); err != nil {
		return nil, err
	}

	var user User
	if err := DecodeJSON(resp, &user); err != nil {
		return nil, err
	}
	return &user, nil
}
