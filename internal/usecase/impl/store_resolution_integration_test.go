package impl

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"marketdash/config"
	"marketdash/internal/domain/entity"
	"marketdash/internal/infra/marketplace"
	"marketdash/internal/usecase"

	"github.com/go-resty/resty/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMarketplaceServer(t *testing.T, routes map[string]http.HandlerFunc) *marketplace.Client {
	t.Helper()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		route, ok := routes[r.Method+" "+r.URL.Path]
		if !ok {
			t.Errorf("unexpected request %s %s", r.Method, r.URL.Path)
			w.WriteHeader(http.StatusNotFound)

			return
		}
		route(w, r)
	}))
	t.Cleanup(server.Close)

	return marketplace.NewWithResty(resty.New().SetCloseConnection(true), &config.APIConfig{
		BaseURL: server.URL + "/api",
		Timeout: time.Second,
	}, newTestLogger())
}

func respond(body any) http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(body)
	}
}

var (
	noStore     = map[string]any{"success": false, "message": "Store not found"}
	storeRecord = map[string]any{"success": true, "data": map[string]any{"_id": "S1", "name": "Corner Shop", "status": "active"}}
)

// resolveInto runs a resolution for the manager's session and records it.
func resolveInto(t *testing.T, manager usecase.SessionUsecase, resolver usecase.StoreResolver) entity.Resolution {
	t.Helper()

	snap := manager.Snapshot()
	res := resolver.Resolve(context.Background(), snap.Session)
	require.True(t, manager.SetResolutionState(snap.Generation, res))

	return res
}

func TestStoreResolution_PointerRecoversFromStaleEndpoints(t *testing.T) {
	client := newMarketplaceServer(t, map[string]http.HandlerFunc{
		"GET /api/stores/my-store": respond(noStore),
		"GET /api/stores/merchant": respond(noStore),
		"GET /api/stores/S1":       respond(storeRecord),
	})
	resolver := newTestResolver(client, resolverConfig(2*time.Second, 5, true))
	manager := NewSessionManager(newTestLogger())
	manager.SetSession(merchantSession("S1"))

	res := resolveInto(t, manager, resolver)

	assert.Equal(t, StrategyStoreByID, res.Strategy)
	snap := manager.Snapshot()
	require.NotNil(t, snap.Store)
	assert.Equal(t, "S1", snap.Store.ID)
	assert.Equal(t, entity.VerdictAllowed, snap.Verdict.Kind)
}

func TestStoreResolution_RepairRelinksTheStore(t *testing.T) {
	var myStoreCalls atomic.Int32
	client := newMarketplaceServer(t, map[string]http.HandlerFunc{
		"GET /api/stores/my-store": func(w http.ResponseWriter, r *http.Request) {
			if myStoreCalls.Add(1) == 1 {
				respond(noStore)(w, r)

				return
			}
			respond(storeRecord)(w, r)
		},
		"GET /api/stores/merchant":  respond(noStore),
		"GET /api/stores/S1":        respond(noStore),
		"POST /api/debug/fix-store": respond(map[string]any{"success": true}),
	})
	resolver := newTestResolver(client, resolverConfig(2*time.Second, 5, true))
	manager := NewSessionManager(newTestLogger())
	manager.SetSession(merchantSession("S1"))

	res := resolveInto(t, manager, resolver)

	assert.Equal(t, StrategyRepair, res.Strategy)
	assert.Equal(t, int32(2), myStoreCalls.Load())
	snap := manager.Snapshot()
	require.NotNil(t, snap.Store)
	assert.Equal(t, entity.VerdictAllowed, snap.Verdict.Kind)
}

func TestStoreResolution_NothingFoundBlocksTheMerchant(t *testing.T) {
	client := newMarketplaceServer(t, map[string]http.HandlerFunc{
		"GET /api/stores/my-store":  respond(noStore),
		"GET /api/stores/merchant":  respond(noStore),
		"GET /api/stores/S1":        respond(noStore),
		"POST /api/debug/fix-store": respond(noStore),
	})
	resolver := newTestResolver(client, resolverConfig(2*time.Second, 5, true))
	manager := NewSessionManager(newTestLogger())
	manager.SetSession(merchantSession("S1"))

	res := resolveInto(t, manager, resolver)

	assert.Equal(t, entity.OutcomeNotFound, res.Outcome)
	snap := manager.Snapshot()
	assert.Nil(t, snap.Store)
	assert.Equal(t, entity.VerdictBlocked, snap.Verdict.Kind)
	assert.Equal(t, entity.ReasonStoreNotFound, snap.Verdict.Reason)
}
