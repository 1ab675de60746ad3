package cms

import (
	"context"
	"fmt"
	"net/http"

	"cmsdesk/internal/domain/entity"
)

// Login exchanges credentials for a token. It does not store the token;
// that is the caller's decision.
func (c *Client) Login(ctx context.Context, identifier, password string) (*AuthResult, error) {
	body := map[string]string{"identifier": identifier, "password": password}
	return c.authenticate(ctx, "/api/auth/local", body)
}

// Register creates an account and returns the token issued for it.
func (c *Client) Register(ctx context.Context, username, email, password string) (*AuthResult, error) {
	body := map[string]string{"username": username, "email": email, "password": password}
	return c.authenticate(ctx, "/api/auth/local/register", body)
}

func (c *Client) authenticate(ctx context.Context, path string, body any) (*AuthResult, error) {
	var resp authResponse
	err := c.do(ctx, request{
		resource:  "auth",
		method:    http.MethodPost,
		path:      path,
		body:      body,
		anonymous: true,
	}, &resp)
	if err != nil {
		return nil, err
	}
	if err := resp.validate(); err != nil {
		return nil, err
	}
	return &AuthResult{JWT: resp.JWT, User: resp.User.toEntity()}, nil
}

// Me returns the user the current token belongs to.
func (c *Client) Me(ctx context.Context) (*entity.User, error) {
	var user userDTO
	if err := c.do(ctx, request{resource: "users", method: http.MethodGet, path: "/api/users/me"}, &user); err != nil {
		return nil, err
	}
	if err := user.validate(); err != nil {
		return nil, fmt.Errorf("current user: %w", err)
	}
	return user.toEntity(), nil
}
