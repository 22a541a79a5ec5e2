package adminkit

import (
	"context"
	"fmt"

	"github.com/edusite/adminkit/pkg/models"
)

// AuthService handles operator login and logout. The credential check
// itself is delegated entirely to the backend.
type AuthService struct {
	client *Client
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginResponse is the payload of POST /admin/login.
type LoginResponse struct {
	Token string       `json:"token"`
	Admin models.Admin `json:"admin"`
}

// Login authenticates against the backend and persists the returned token
// in the session store.
func (s *AuthService) Login(ctx context.Context, email, password string) (*models.Admin, error) {
	req := loginRequest{Email: email, Password: password}

	var resp LoginResponse
	if err := s.client.transport.PostJSON(ctx, "/admin/login", req, &resp); err != nil {
		return nil, fmt.Errorf("login failed: %w", err)
	}

	if sess := s.client.session; sess != nil {
		if err := sess.Save(resp.Token); err != nil {
			return nil, fmt.Errorf("persist token: %w", err)
		}
	}
	return &resp.Admin, nil
}

// Logout clears the persisted token. Purely client-side.
func (s *AuthService) Logout() error {
	if sess := s.client.session; sess != nil {
		return sess.Clear()
	}
	return nil
}
