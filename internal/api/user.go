package api

import (
	"context"
	"fmt"
	"net/http"
)

// SlimUser is the authenticated caller, per GET /api/auth/me.
type SlimUser struct {
	ID    string         `json:"id"`
	Name  string         `json:"name,omitempty"`
	Email string         `json:"email"`
	Orgs  []Organization `json:"orgs"`
}

type Organization struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// GetMe identifies the caller behind the client's API key. It is also
// the cheapest way to check that a key works at all.
func (c *Client) GetMe(ctx context.Context) (*SlimUser, error) {
	var user SlimUser
	if err := c.do(ctx, http.MethodGet, "/api/auth/me", nil, nil, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// Role scopes what an API key may do.
type Role int32

const (
	RoleRead      Role = 0
	RoleReadWrite Role = 1
)

// ParseRole maps the user-facing role names onto the wire values.
func ParseRole(s string) (Role, error) {
	switch s {
	case "read":
		return RoleRead, nil
	case "readwrite":
		return RoleReadWrite, nil
	default:
		return 0, fmt.Errorf("unknown role %q (must be read or readwrite)", s)
	}
}

func (r Role) String() string {
	switch r {
	case RoleRead:
		return "read"
	case RoleReadWrite:
		return "readwrite"
	default:
		return fmt.Sprintf("role(%d)", int32(r))
	}
}

type setAPIKeyRequest struct {
	Name string `json:"name"`
	Role int32  `json:"role"`
}

type APIKey struct {
	APIKey string `json:"api_key"`
}

// CreateAPIKey provisions a new key for the calling user.
func (c *Client) CreateAPIKey(ctx context.Context, name string, role Role) (*APIKey, error) {
	req := &setAPIKeyRequest{Name: name, Role: int32(role)}
	var key APIKey
	if err := c.do(ctx, http.MethodPost, "/api/user/api_key", nil, req, &key); err != nil {
		return nil, err
	}
	return &key, nil
}
