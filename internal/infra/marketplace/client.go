// Package marketplace is the resty-based client of the marketplace REST API.
// Every response passes through normalizeEnvelope, so callers only ever see
// decoded payloads or *domainerrors.UpstreamError.
package marketplace

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/url"
	"sync"

	"marketdash/config"
	domainerrors "marketdash/internal/domain/errors"
	"marketdash/internal/domain/service"
	"marketdash/internal/errors"

	"github.com/go-resty/resty/v2"
	"go.uber.org/fx"
)

// Params defines the dependencies of the client
type Params struct {
	fx.In

	Config *config.Config
	Logger *slog.Logger
}

// Client implements service.MarketplaceAPI.
type Client struct {
	http   *resty.Client
	logger *slog.Logger

	mu           sync.RWMutex
	accessToken  string
	refreshToken string
}

var _ service.MarketplaceAPI = (*Client)(nil)

// New builds the client from the api config section.
func New(params Params) *Client {
	return NewWithResty(resty.New(), params.Config.API, params.Logger)
}

// NewWithResty configures an existing resty client; tests pass one pointed at httptest.
func NewWithResty(rc *resty.Client, cfg *config.APIConfig, logger *slog.Logger) *Client {
	c := &Client{logger: logger}

	rc.SetBaseURL(cfg.BaseURL).
		SetTimeout(cfg.Timeout).
		SetHeader("Accept", "application/json").
		SetHeader("Content-Type", "application/json").
		SetHeader("User-Agent", cfg.UserAgent).
		SetDebug(cfg.Debug).
		SetLogger(restyLogger{logger: logger})

	rc.OnBeforeRequest(func(_ *resty.Client, req *resty.Request) error {
		if req.Header.Get("Authorization") != "" {
			return nil
		}
		if token := c.AccessToken(); token != "" {
			req.SetAuthToken(token)
		}

		return nil
	})

	c.http = rc

	return c
}

// SetTokens stores the bearer tokens used for subsequent requests.
func (c *Client) SetTokens(accessToken, refreshToken string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.accessToken = accessToken
	c.refreshToken = refreshToken
}

// ClearTokens forgets both tokens.
func (c *Client) ClearTokens() {
	c.SetTokens("", "")
}

// AccessToken returns the current bearer token.
func (c *Client) AccessToken() string {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return c.accessToken
}

// do executes one request and normalizes the response envelope.
func (c *Client) do(ctx context.Context, method, path string, query url.Values, body any) (*envelope, error) {
	req := c.http.R().SetContext(ctx)
	if body != nil {
		req.SetBody(body)
	}
	if len(query) > 0 {
		req.SetQueryParamsFromValues(query)
	}

	resp, err := req.Execute(method, path)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, errors.Wrapf(ctxErr, "%s %s", method, path)
		}
		if errors.IsContextDone(err) {
			return nil, errors.Wrapf(err, "%s %s", method, path)
		}
		c.logger.WarnContext(ctx, "Marketplace request failed",
			slog.String("method", method), slog.String("path", path), slog.Any("error", err))

		return nil, errors.Wrapf(domainerrors.ErrUpstreamUnavailable.WithDetails(err.Error()), "%s %s", method, path)
	}

	env, err := normalizeEnvelope(resp.StatusCode(), resp.Body())
	if err != nil {
		c.logger.DebugContext(ctx, "Marketplace request rejected",
			slog.String("method", method), slog.String("path", path),
			slog.Int("status", resp.StatusCode()), slog.Any("error", err))

		return nil, errors.Wrapf(err, "%s %s", method, path)
	}

	return env, nil
}

// decode unmarshals the envelope payload into out; a nil out discards it.
func decode(env *envelope, out any) error {
	if out == nil || !env.hasData() {
		return nil
	}

	if err := json.Unmarshal(env.Data, out); err != nil {
		return errors.WithStack(&domainerrors.UpstreamError{Msg: fmt.Sprintf("malformed payload: %v", err)})
	}

	return nil
}

// restyLogger routes resty's own logging into slog.
type restyLogger struct {
	logger *slog.Logger
}

func (l restyLogger) Errorf(format string, v ...any) {
	l.logger.Error(fmt.Sprintf(format, v...), slog.String("component", "resty"))
}

func (l restyLogger) Warnf(format string, v ...any) {
	l.logger.Warn(fmt.Sprintf(format, v...), slog.String("component", "resty"))
}

func (l restyLogger) Debugf(format string, v ...any) {
	l.logger.Debug(fmt.Sprintf(format, v...), slog.String("component", "resty"))
}
