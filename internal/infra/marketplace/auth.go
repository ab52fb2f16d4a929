package marketplace

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"

	"marketdash/internal/domain/entity"
	domainerrors "marketdash/internal/domain/errors"
	"marketdash/internal/domain/service"
	"marketdash/internal/errors"
)

// authDTO tolerates both camelCase and snake_case token names.
type authDTO struct {
	AccessToken       string          `json:"accessToken"`
	AccessTokenSnake  string          `json:"access_token"`
	Token             string          `json:"token"`
	RefreshToken      string          `json:"refreshToken"`
	RefreshTokenSnake string          `json:"refresh_token"`
	User              *entity.Session `json:"user"`
}

func (d *authDTO) toResult() *service.AuthResult {
	return &service.AuthResult{
		AccessToken:  firstNonEmpty(d.AccessToken, d.AccessTokenSnake, d.Token),
		RefreshToken: firstNonEmpty(d.RefreshToken, d.RefreshTokenSnake),
		User:         d.User,
	}
}

// Login exchanges credentials for tokens.
func (c *Client) Login(ctx context.Context, email, password string) (*service.AuthResult, error) {
	env, err := c.do(ctx, http.MethodPost, "/auth/login", nil, map[string]string{
		"email":    email,
		"password": password,
	})
	if err != nil {
		return nil, err
	}

	var dto authDTO
	if err := decode(env, &dto); err != nil {
		return nil, err
	}

	result := dto.toResult()
	if result.AccessToken == "" || result.User == nil {
		return nil, errors.WithStack(&domainerrors.UpstreamError{Msg: "login response is missing the token or user"})
	}

	return result, nil
}

// Refresh trades the refresh token for a new token pair.
func (c *Client) Refresh(ctx context.Context, refreshToken string) (*service.AuthResult, error) {
	env, err := c.do(ctx, http.MethodPost, "/auth/refresh", nil, map[string]string{
		"refreshToken": refreshToken,
	})
	if err != nil {
		return nil, err
	}

	var dto authDTO
	if err := decode(env, &dto); err != nil {
		return nil, err
	}

	result := dto.toResult()
	if result.AccessToken == "" {
		return nil, errors.WithStack(&domainerrors.UpstreamError{Msg: "refresh response is missing the token"})
	}
	if result.RefreshToken == "" {
		result.RefreshToken = refreshToken
	}

	return result, nil
}

// Me verifies the current token and returns the user it belongs to.
func (c *Client) Me(ctx context.Context) (*entity.Session, error) {
	env, err := c.do(ctx, http.MethodGet, "/auth/me", nil, nil)
	if err != nil {
		return nil, err
	}
	if !env.hasData() {
		return nil, errors.WithStack(&domainerrors.UpstreamError{Msg: "profile response is empty"})
	}

	// data is either the user or {"user": {...}}
	payload := env.Data
	var wrapped struct {
		User json.RawMessage `json:"user"`
	}
	if json.Unmarshal(payload, &wrapped) == nil && len(bytes.TrimSpace(wrapped.User)) > 0 {
		payload = wrapped.User
	}

	var session entity.Session
	if err := json.Unmarshal(payload, &session); err != nil {
		return nil, errors.WithStack(&domainerrors.UpstreamError{Msg: "malformed profile payload"})
	}

	return &session, nil
}

// Logout tells the API to drop the session.
func (c *Client) Logout(ctx context.Context) error {
	_, err := c.do(ctx, http.MethodPost, "/auth/logout", nil, nil)

	return err
}
