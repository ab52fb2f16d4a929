package http

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"marketdash/config"
	"marketdash/internal/delivery/http/middleware"
	"marketdash/internal/delivery/http/router"
	"marketdash/internal/delivery/http/router/handler"
	"marketdash/internal/domain/entity"
	domainerrors "marketdash/internal/domain/errors"
	"marketdash/internal/domain/service"
	mockservice "marketdash/internal/mocks/service"
	mockusecase "marketdash/internal/mocks/usecase"
	"marketdash/internal/usecase"
	"marketdash/internal/usecase/impl"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx/fxtest"
)

type serverFixture struct {
	api     *mockservice.MockMarketplaceAPI
	auth    *mockusecase.MockAuthUsecase
	session usecase.SessionUsecase
	server  *httpServer
}

type envelope struct {
	Success bool            `json:"success"`
	Code    int             `json:"code"`
	Data    json.RawMessage `json:"data"`
	Error   *struct {
		Code    string `json:"code"`
		Details any    `json:"details"`
	} `json:"error"`
	RequestID string `json:"requestId"`
}

func newServerFixture(t *testing.T) *serverFixture {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	f := &serverFixture{
		api:     mockservice.NewMockMarketplaceAPI(t),
		auth:    mockusecase.NewMockAuthUsecase(t),
		session: impl.NewSessionManager(logger),
	}

	resources := impl.ResourceServiceParams{API: f.api, Session: f.session, Auth: f.auth, Logger: logger}
	routerParams := router.RouterParams{
		SessionHandler: handler.NewSessionHandler(handler.SessionHandlerParams{
			Auth: f.auth, Session: f.session, Logger: logger,
		}),
		MerchantHandler: handler.NewMerchantHandler(handler.MerchantHandlerParams{
			Categories: impl.NewCategoryService(resources),
			Products:   impl.NewProductService(resources),
			Orders:     impl.NewOrderService(resources),
			Promotions: impl.NewPromotionService(resources),
			Layouts:    impl.NewLayoutService(resources),
			Content:    impl.NewContentService(resources),
		}),
		AdminHandler: handler.NewAdminHandler(handler.AdminHandlerParams{
			Users:         impl.NewUserAdminService(resources),
			Stores:        impl.NewStoreAdminService(resources),
			ShippingZones: impl.NewShippingZoneService(resources),
			Settings:      impl.NewSettingsService(resources),
		}),
		SessionMiddleware: middleware.NewSessionMiddleware(f.session),
	}

	cfg := &config.Config{}
	cfg.HTTP.MaxRequestBodySize = "1M"

	d, err := NewServer(ServerParams{
		Lc:              fxtest.NewLifecycle(t),
		Cfg:             cfg,
		Logger:          logger,
		ErrorMiddleware: middleware.NewErrorMiddleware(logger),
		RouterParams:    routerParams,
	})
	require.NoError(t, err)
	f.server = d.(*httpServer)

	return f
}

func (f *serverFixture) do(t *testing.T, method, target, body string, headers ...string) (*httptest.ResponseRecorder, envelope) {
	t.Helper()

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	req.Header.Set("Content-Type", "application/json")
	for i := 0; i+1 < len(headers); i += 2 {
		req.Header.Set(headers[i], headers[i+1])
	}

	rec := httptest.NewRecorder()
	f.server.server.ServeHTTP(rec, req)

	var env envelope
	if rec.Body.Len() > 0 {
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
	}

	return rec, env
}

func (f *serverFixture) signInMerchant(pointer string, store *entity.Store) {
	session := &entity.Session{ID: "u1", Email: "m@example.com", Role: entity.RoleMerchant}
	if pointer != "" {
		session.MerchantInfo = &entity.MerchantInfo{StoreID: pointer}
	}
	f.session.SetSession(session)
	if store != nil {
		f.session.SetResolutionState(f.session.Snapshot().Generation, entity.Resolution{
			Outcome: entity.OutcomeResolved, Store: store,
		})
	}
}

func activeStore() *entity.Store {
	return &entity.Store{ID: "S1", Name: "Corner Shop", Status: entity.StoreStatusActive}
}

func TestServer_HealthAndRequestID(t *testing.T) {
	f := newServerFixture(t)

	rec, env := f.do(t, http.MethodGet, "/health", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, env.Success)
	assert.NotEmpty(t, rec.Header().Get("X-Request-Id"))

	rec, env = f.do(t, http.MethodGet, "/health", "", "X-Request-Id", "req-42")
	assert.Equal(t, "req-42", rec.Header().Get("X-Request-Id"))
	assert.Equal(t, "req-42", env.RequestID)
}

func TestServer_SessionSnapshot(t *testing.T) {
	f := newServerFixture(t)
	f.signInMerchant("S1", nil)

	rec, env := f.do(t, http.MethodGet, "/session", "")

	require.Equal(t, http.StatusOK, rec.Code)
	var snap usecase.SessionSnapshot
	require.NoError(t, json.Unmarshal(env.Data, &snap))
	assert.Equal(t, "u1", snap.Session.ID)
	assert.Equal(t, entity.VerdictPending, snap.Verdict.Kind)
}

func TestServer_StoreGate(t *testing.T) {
	tests := []struct {
		name       string
		setup      func(f *serverFixture)
		wantStatus int
		wantCode   string
	}{
		{
			name:       "signed out",
			setup:      func(*serverFixture) {},
			wantStatus: http.StatusUnauthorized,
			wantCode:   "NOT_AUTHENTICATED",
		},
		{
			name: "customer",
			setup: func(f *serverFixture) {
				f.session.SetSession(&entity.Session{ID: "c1", Role: entity.RoleCustomer})
			},
			wantStatus: http.StatusForbidden,
			wantCode:   "FORBIDDEN",
		},
		{
			name:       "merchant without store",
			setup:      func(f *serverFixture) { f.signInMerchant("", nil) },
			wantStatus: http.StatusForbidden,
			wantCode:   "STORE_ACCESS_BLOCKED",
		},
		{
			name: "merchant with closed store",
			setup: func(f *serverFixture) {
				store := activeStore()
				store.Status = entity.StoreStatusClosed
				f.signInMerchant("S1", store)
			},
			wantStatus: http.StatusForbidden,
			wantCode:   "STORE_ACCESS_BLOCKED",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newServerFixture(t)
			tt.setup(f)

			rec, env := f.do(t, http.MethodGet, "/merchant/products", "")

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.False(t, env.Success)
			require.NotNil(t, env.Error)
			assert.Equal(t, tt.wantCode, env.Error.Code)
		})
	}
}

func TestServer_StoreGateReportsReason(t *testing.T) {
	f := newServerFixture(t)
	f.signInMerchant("", nil)

	_, env := f.do(t, http.MethodGet, "/merchant/orders", "")

	require.NotNil(t, env.Error)
	assert.Equal(t, entity.ReasonNoStore, env.Error.Details)
}

func TestServer_PendingVerdictAnswersAccepted(t *testing.T) {
	f := newServerFixture(t)
	f.signInMerchant("S1", nil)

	rec, env := f.do(t, http.MethodGet, "/merchant/products", "")

	assert.Equal(t, http.StatusAccepted, rec.Code)
	assert.JSONEq(t, `{"pending":true,"reason":"store_resolving"}`, string(env.Data))
}

func TestServer_ListProducts(t *testing.T) {
	f := newServerFixture(t)
	f.signInMerchant("S1", activeStore())

	want := entity.ListQuery{Page: 2, Limit: 5, Filters: map[string]string{"category": "mugs"}}
	f.api.EXPECT().List(mock.Anything, "/products", want, mock.Anything).
		RunAndReturn(func(_ context.Context, _ string, _ entity.ListQuery, out any) (*service.Pagination, error) {
			*(out.(*[]entity.Product)) = []entity.Product{{ID: "p1", Name: "Mug"}}

			return &service.Pagination{Total: 6, Page: 2, Limit: 5}, nil
		}).Once()

	rec, env := f.do(t, http.MethodGet, "/merchant/products?page=2&limit=5&category=mugs", "")

	require.Equal(t, http.StatusOK, rec.Code)
	var page entity.Page[entity.Product]
	require.NoError(t, json.Unmarshal(env.Data, &page))
	assert.Equal(t, 6, page.Total)
	require.Len(t, page.Items, 1)
	assert.Equal(t, "Mug", page.Items[0].Name)
}

func TestServer_InvalidListQuery(t *testing.T) {
	f := newServerFixture(t)
	f.signInMerchant("S1", activeStore())

	rec, env := f.do(t, http.MethodGet, "/merchant/products?page=two", "")

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "INVALID_INPUT", env.Error.Code)
}

func TestServer_CreateProductValidation(t *testing.T) {
	f := newServerFixture(t)
	f.signInMerchant("S1", activeStore())

	rec, env := f.do(t, http.MethodPost, "/merchant/products", `{"price": -3}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "VALIDATION_FAILED", env.Error.Code)
	details, ok := env.Error.Details.(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "is required", details["name"])
	assert.Contains(t, details, "price")
}

func TestServer_DeleteProduct(t *testing.T) {
	f := newServerFixture(t)
	f.signInMerchant("S1", activeStore())
	f.api.EXPECT().Delete(mock.Anything, "/products", "p1").Return(nil).Once()

	rec, _ := f.do(t, http.MethodDelete, "/merchant/products/p1", "")

	assert.Equal(t, http.StatusNoContent, rec.Code)
}

func TestServer_UpstreamRejectionEndsSession(t *testing.T) {
	f := newServerFixture(t)
	f.signInMerchant("S1", activeStore())

	rejection := &domainerrors.UpstreamError{StatusCode: http.StatusUnauthorized, Msg: "jwt expired"}
	f.api.EXPECT().Get(mock.Anything, "/promotions", "x1", mock.Anything).Return(rejection).Once()
	f.auth.EXPECT().Invalidate(mock.Anything, rejection).Return().Once()

	rec, env := f.do(t, http.MethodGet, "/merchant/promotions/x1", "")

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "SESSION_EXPIRED", env.Error.Code)
}

func TestServer_CategoryTreeFlat(t *testing.T) {
	f := newServerFixture(t)
	f.signInMerchant("S1", activeStore())
	f.api.EXPECT().List(mock.Anything, "/categories", mock.Anything, mock.Anything).
		RunAndReturn(func(_ context.Context, _ string, _ entity.ListQuery, out any) (*service.Pagination, error) {
			*(out.(*[]entity.Category)) = []entity.Category{
				{ID: "home", Name: "Home"},
				{ID: "kitchen", Name: "Kitchen", ParentID: "home"},
			}

			return nil, nil
		}).Once()

	rec, env := f.do(t, http.MethodGet, "/merchant/categories/tree?flat=true&filter=kit", "")

	require.Equal(t, http.StatusOK, rec.Code)
	var rows []entity.FlatCategory
	require.NoError(t, json.Unmarshal(env.Data, &rows))
	require.Len(t, rows, 2)
	assert.Equal(t, 1, rows[1].Depth)
}

func TestServer_CategoryTreeAndItemRoutesCoexist(t *testing.T) {
	f := newServerFixture(t)
	f.signInMerchant("S1", activeStore())
	f.api.EXPECT().Get(mock.Anything, "/categories", "tree-care", mock.Anything).
		RunAndReturn(func(_ context.Context, _ string, _ string, out any) error {
			*(out.(*entity.Category)) = entity.Category{ID: "tree-care", Name: "Tree care"}

			return nil
		}).Once()
	f.api.EXPECT().List(mock.Anything, "/categories", mock.Anything, mock.Anything).Return(nil, nil).Once()

	rec, env := f.do(t, http.MethodGet, "/merchant/categories/tree-care", "")
	require.Equal(t, http.StatusOK, rec.Code)
	var item entity.Category
	require.NoError(t, json.Unmarshal(env.Data, &item))
	assert.Equal(t, "tree-care", item.ID)

	rec, _ = f.do(t, http.MethodGet, "/merchant/categories/tree", "")
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestServer_UpdateOrderStatusRequiresStatus(t *testing.T) {
	f := newServerFixture(t)
	f.signInMerchant("S1", activeStore())

	rec, env := f.do(t, http.MethodPatch, "/merchant/orders/o1/status", `{}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "VALIDATION_FAILED", env.Error.Code)
}

func TestServer_AdminRoutes(t *testing.T) {
	f := newServerFixture(t)
	f.signInMerchant("S1", activeStore())

	rec, env := f.do(t, http.MethodGet, "/admin/settings", "")
	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Equal(t, "FORBIDDEN", env.Error.Code)

	f.session.SetSession(&entity.Session{ID: "a1", Role: entity.RoleAdmin})
	f.api.EXPECT().Patch(mock.Anything, "/admin/users/u9/status", map[string]bool{"isActive": false}, mock.Anything).
		RunAndReturn(func(_ context.Context, _ string, _, out any) error {
			*(out.(*entity.User)) = entity.User{ID: "u9", Role: entity.RoleCustomer}

			return nil
		}).Once()

	rec, _ = f.do(t, http.MethodPatch, "/admin/users/u9/status", `{"isActive": false}`)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestServer_AdminPassesStoreGate(t *testing.T) {
	f := newServerFixture(t)
	f.session.SetSession(&entity.Session{ID: "a1", Role: entity.RoleAdmin})
	f.api.EXPECT().Get(mock.Anything, "/content", "c1", mock.Anything).Return(nil).Once()

	rec, _ := f.do(t, http.MethodGet, "/merchant/content/c1", "")

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestServer_Login(t *testing.T) {
	f := newServerFixture(t)
	f.auth.EXPECT().Login(mock.Anything, &usecase.LoginInput{Email: "m@example.com", Password: "secret"}).
		Return(usecase.SessionSnapshot{Session: &entity.Session{ID: "u1", Role: entity.RoleMerchant}}, nil).Once()

	rec, env := f.do(t, http.MethodPost, "/auth/login", `{"email":"m@example.com","password":"secret"}`)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, env.Success)
}

func TestServer_LoginRejected(t *testing.T) {
	f := newServerFixture(t)
	f.auth.EXPECT().Login(mock.Anything, mock.Anything).
		Return(usecase.SessionSnapshot{}, domainerrors.ErrInvalidCredentials).Once()

	rec, env := f.do(t, http.MethodPost, "/auth/login", `{"email":"m@example.com","password":"nope"}`)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "INVALID_CREDENTIALS", env.Error.Code)
}

func TestServer_ResolveStoreRequiresSession(t *testing.T) {
	f := newServerFixture(t)

	rec, _ := f.do(t, http.MethodPost, "/session/store/resolve", "")

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	f.auth.AssertNotCalled(t, "RefreshStore", mock.Anything)
}
