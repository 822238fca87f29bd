package api

import (
	"context"
	"net/http"

	"github.com/ceyizapp/ceyiz/internal/model"
)

// LoginResult is the payload of a successful login.
type LoginResult struct {
	User         model.User `json:"user"`
	Token        string     `json:"token"`
	RefreshToken string     `json:"refreshToken"`
}

// Login exchanges credentials for a bearer token and the user profile.
func (c *Client) Login(ctx context.Context, email, password string) (*LoginResult, error) {
	var resp struct {
		LoginResult
	}
	body := map[string]string{"email": email, "password": password}
	if err := c.do(ctx, http.MethodPost, "/api/auth/login", body, &resp); err != nil {
		return nil, err
	}
	return &resp.LoginResult, nil
}

// Signup registers a new account. The account stays unusable until the email
// address is verified.
func (c *Client) Signup(ctx context.Context, name, email, password string) error {
	body := map[string]string{"name": name, "email": email, "password": password}
	return c.do(ctx, http.MethodPost, "/api/auth/signup", body, nil)
}

// Logout invalidates the session server-side. Local session cleanup happens
// regardless of this call's outcome.
func (c *Client) Logout(ctx context.Context) error {
	return c.do(ctx, http.MethodPost, "/api/auth/logout", nil, nil)
}

// VerifyEmail confirms a pending registration with the emailed code.
func (c *Client) VerifyEmail(ctx context.Context, code string) (*model.User, error) {
	var resp struct {
		User model.User `json:"user"`
	}
	body := map[string]string{"code": code}
	if err := c.do(ctx, http.MethodPost, "/api/auth/verify-email", body, &resp); err != nil {
		return nil, err
	}
	return &resp.User, nil
}

// ForgotPassword requests a reset link for the given address.
func (c *Client) ForgotPassword(ctx context.Context, email string) error {
	body := map[string]string{"email": email}
	return c.do(ctx, http.MethodPost, "/api/auth/forgot-password", body, nil)
}

// ResetPassword sets a new password using an emailed reset token.
func (c *Client) ResetPassword(ctx context.Context, token, password string) error {
	body := map[string]string{"token": token, "password": password}
	return c.do(ctx, http.MethodPost, "/api/auth/reset-password", body, nil)
}

// CheckAuth validates the current token and returns the user it belongs to.
func (c *Client) CheckAuth(ctx context.Context) (*model.User, error) {
	var resp struct {
		User model.User `json:"user"`
	}
	if err := c.do(ctx, http.MethodGet, "/api/auth/check-auth", nil, &resp); err != nil {
		return nil, err
	}
	return &resp.User, nil
}
