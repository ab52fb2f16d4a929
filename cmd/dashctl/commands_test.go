package main

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"

	"marketdash/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var merchantUser = map[string]any{
	"_id":          "u1",
	"email":        "m@example.com",
	"role":         "merchant",
	"merchantInfo": map[string]any{"storeId": "S1"},
}

type fakeMarketplace struct {
	server  *httptest.Server
	dsn     string
	logouts atomic.Int32
}

func newFakeMarketplace(t *testing.T) *fakeMarketplace {
	t.Helper()

	f := &fakeMarketplace{dsn: filepath.Join(t.TempDir(), "dash.db")}
	routes := map[string]any{
		"POST /api/auth/login": map[string]any{
			"success": true,
			"data":    map[string]any{"accessToken": "tok", "refreshToken": "ref", "user": merchantUser},
		},
		"GET /api/auth/me": map[string]any{"success": true, "data": map[string]any{"user": merchantUser}},
		"GET /api/stores/my-store": map[string]any{
			"success": true,
			"data":    map[string]any{"_id": "S1", "name": "Corner Shop", "status": "active"},
		},
		"GET /api/categories": map[string]any{
			"success": true,
			"data": []map[string]any{
				{"_id": "home", "name": "Home"},
				{"_id": "kitchen", "name": "Kitchen", "parent": "home"},
				{"_id": "garden", "name": "Garden"},
			},
		},
	}

	f.server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		key := r.Method + " " + r.URL.Path
		if key == "POST /api/auth/logout" {
			f.logouts.Add(1)
			_, _ = w.Write([]byte(`{"success":true}`))

			return
		}

		body, ok := routes[key]
		if !ok {
			w.WriteHeader(http.StatusNotFound)
			_, _ = w.Write([]byte(`{"success":false,"message":"not found"}`))

			return
		}
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(body)
	}))
	t.Cleanup(f.server.Close)

	return f
}

func (f *fakeMarketplace) loadConfig() (*config.Config, error) {
	return &config.Config{
		API:      &config.APIConfig{BaseURL: f.server.URL + "/api", Timeout: 2 * time.Second},
		Resolver: &config.ResolverConfig{Budget: 2 * time.Second, MaxAttempts: 5, RepairEnabled: true},
		Storage:  &config.StorageConfig{DSN: f.dsn},
	}, nil
}

func (f *fakeMarketplace) run(t *testing.T, args ...string) (string, error) {
	t.Helper()

	cmd := newRootCmd(f.loadConfig)
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(io.Discard)
	cmd.SetArgs(args)

	err := cmd.Execute()

	return out.String(), err
}

func TestLoginResolvesStore(t *testing.T) {
	f := newFakeMarketplace(t)

	out, err := f.run(t, "login", "--email", "m@example.com", "--password", "secret")

	require.NoError(t, err)
	assert.Contains(t, out, "user: m@example.com (merchant)")
	assert.Contains(t, out, "store: Corner Shop [active]")
	assert.Contains(t, out, "store access: allowed")
}

func TestLoginReadsPasswordFromEnv(t *testing.T) {
	f := newFakeMarketplace(t)
	t.Setenv(passwordEnv, "secret")

	_, err := f.run(t, "login", "--email", "m@example.com")

	require.NoError(t, err)
}

func TestLoginRequiresEmail(t *testing.T) {
	f := newFakeMarketplace(t)

	_, err := f.run(t, "login", "--password", "secret")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "email")
}

func TestWhoamiRestoresStoredSession(t *testing.T) {
	f := newFakeMarketplace(t)
	_, err := f.run(t, "login", "--email", "m@example.com", "--password", "secret")
	require.NoError(t, err)

	out, err := f.run(t, "whoami")

	require.NoError(t, err)
	assert.Contains(t, out, "user: m@example.com (merchant)")
	assert.Contains(t, out, "store access: allowed")
}

func TestWhoamiWithoutSession(t *testing.T) {
	f := newFakeMarketplace(t)

	_, err := f.run(t, "whoami")

	require.ErrorIs(t, err, errNotSignedIn)
}

func TestStoreResolveReportsStrategy(t *testing.T) {
	f := newFakeMarketplace(t)
	_, err := f.run(t, "login", "--email", "m@example.com", "--password", "secret")
	require.NoError(t, err)

	out, err := f.run(t, "store", "resolve")

	require.NoError(t, err)
	assert.Contains(t, out, "resolution: resolved via my-store after 1 attempt(s)")
}

func TestCategoriesListFiltersTree(t *testing.T) {
	f := newFakeMarketplace(t)
	_, err := f.run(t, "login", "--email", "m@example.com", "--password", "secret")
	require.NoError(t, err)

	out, err := f.run(t, "categories", "list", "--filter", "kit")

	require.NoError(t, err)
	assert.Equal(t, "Home\n  Kitchen\n", out)
}

func TestLogoutForgetsSession(t *testing.T) {
	f := newFakeMarketplace(t)
	_, err := f.run(t, "login", "--email", "m@example.com", "--password", "secret")
	require.NoError(t, err)

	out, err := f.run(t, "logout")
	require.NoError(t, err)
	assert.Contains(t, out, "Signed out")
	assert.Equal(t, int32(1), f.logouts.Load())

	_, err = f.run(t, "whoami")
	require.ErrorIs(t, err, errNotSignedIn)
}
