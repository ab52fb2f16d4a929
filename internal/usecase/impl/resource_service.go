package impl

import (
	"context"
	"encoding/json"
	"hash/fnv"
	"log/slog"
	"net/url"
	"strconv"
	"strings"
	"sync"

	deliverycontext "marketdash/internal/delivery/context"
	"marketdash/internal/domain/entity"
	domainerrors "marketdash/internal/domain/errors"
	"marketdash/internal/domain/service"
	"marketdash/internal/errors"
	"marketdash/internal/usecase"
	"marketdash/internal/validation"

	"github.com/go-playground/validator/v10"
	"go.uber.org/fx"
)

const (
	defaultPageLimit = 20
	maxPageLimit     = 100
)

// accessGate decides who may use a resource.
type accessGate int

const (
	// gateStore admits merchants whose store verdict permits, and admins.
	gateStore accessGate = iota
	// gateAdmin admits admins only.
	gateAdmin
)

// ResourceServiceParams holds the dependencies shared by every resource service, injected by Fx.
type ResourceServiceParams struct {
	fx.In

	API     service.MarketplaceAPI
	Session usecase.SessionUsecase
	Auth    usecase.AuthUsecase
	Logger  *slog.Logger
}

// resourceService implements ResourceUsecase[T] for one API collection.
type resourceService[T any] struct {
	api         service.ResourceAPI
	session     usecase.SessionUsecase
	invalidator usecase.SessionInvalidator
	validate    *validator.Validate
	logger      *slog.Logger

	path     string
	name     string
	gate     accessGate
	inflight *inflightGuard
}

func newResourceService[T any](params ResourceServiceParams, path, name string, gate accessGate) *resourceService[T] {
	return &resourceService[T]{
		api:         params.API,
		session:     params.Session,
		invalidator: params.Auth,
		validate:    validation.New(),
		logger:      params.Logger,
		path:        path,
		name:        name,
		gate:        gate,
		inflight:    newInflightGuard(),
	}
}

// NewProductService is the constructor for the product resource.
func NewProductService(params ResourceServiceParams) usecase.ProductUsecase {
	return newResourceService[entity.Product](params, "/products", "product", gateStore)
}

// NewPromotionService is the constructor for the promotion resource.
func NewPromotionService(params ResourceServiceParams) usecase.PromotionUsecase {
	return newResourceService[entity.Promotion](params, "/promotions", "promotion", gateStore)
}

// NewLayoutService is the constructor for the layout template resource.
func NewLayoutService(params ResourceServiceParams) usecase.LayoutUsecase {
	return newResourceService[entity.LayoutTemplate](params, "/layouts", "layout", gateStore)
}

// NewContentService is the constructor for the content resource.
func NewContentService(params ResourceServiceParams) usecase.ContentUsecase {
	return newResourceService[entity.Content](params, "/content", "content", gateStore)
}

// NewShippingZoneService is the constructor for the shipping zone resource.
func NewShippingZoneService(params ResourceServiceParams) usecase.ShippingZoneUsecase {
	return newResourceService[entity.ShippingZone](params, "/admin/shipping-zones", "shipping zone", gateAdmin)
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *resourceService[T]) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger).With(slog.String("resource", srv.name))
}

// List returns one page of the collection.
func (srv *resourceService[T]) List(ctx context.Context, query entity.ListQuery) (*entity.Page[T], error) {
	if err := srv.authorize(); err != nil {
		return nil, err
	}

	query = normalizeQuery(query)
	items := []T{}

	pagination, err := srv.api.List(ctx, srv.path, query, &items)
	if err != nil {
		return nil, srv.fail(ctx, "list", err)
	}
	if items == nil {
		items = []T{}
	}

	page := &entity.Page[T]{Items: items, Total: len(items), Page: query.Page, Limit: query.Limit}
	if pagination != nil {
		page.Total = pagination.Total
		if pagination.Page > 0 {
			page.Page = pagination.Page
		}
		if pagination.Limit > 0 {
			page.Limit = pagination.Limit
		}
	}

	return page, nil
}

// Get returns one item.
func (srv *resourceService[T]) Get(ctx context.Context, id string) (*T, error) {
	if err := srv.authorize(); err != nil {
		return nil, err
	}
	if err := requireID(id); err != nil {
		return nil, err
	}

	var item T
	if err := srv.api.Get(ctx, srv.path, id, &item); err != nil {
		return nil, srv.fail(ctx, "get", err)
	}

	return &item, nil
}

// Create validates and submits a new item.
func (srv *resourceService[T]) Create(ctx context.Context, item *T) (*T, error) {
	return srv.mutate(ctx, "create", fingerprint(item), item, func(out *T) error {
		return srv.api.Create(ctx, srv.path, item, out)
	})
}

// Update validates and replaces an item.
func (srv *resourceService[T]) Update(ctx context.Context, id string, item *T) (*T, error) {
	if err := requireID(id); err != nil {
		return nil, err
	}

	return srv.mutate(ctx, "update", id, item, func(out *T) error {
		return srv.api.Update(ctx, srv.path, id, item, out)
	})
}

// Delete removes an item.
func (srv *resourceService[T]) Delete(ctx context.Context, id string) error {
	if err := requireID(id); err != nil {
		return err
	}

	_, err := srv.mutate(ctx, "delete", id, nil, func(*T) error {
		return srv.api.Delete(ctx, srv.path, id)
	})

	return err
}

// patch sends a partial update to path/id/action, e.g. /orders/42/status.
func (srv *resourceService[T]) patch(ctx context.Context, id, action string, body any) (*T, error) {
	if err := requireID(id); err != nil {
		return nil, err
	}

	return srv.mutate(ctx, action, id, nil, func(out *T) error {
		return srv.api.Patch(ctx, itemPath(srv.path, id, action), body, out)
	})
}

// mutate runs one write: gate, validation, then the request with duplicate
// submissions of the same action on the same item rejected while it is in flight.
func (srv *resourceService[T]) mutate(ctx context.Context, action, id string, input *T, send func(out *T) error) (*T, error) {
	if err := srv.authorize(); err != nil {
		return nil, err
	}
	if input != nil {
		if err := validation.Check(srv.validate, input); err != nil {
			return nil, err
		}
	}

	release, ok := srv.inflight.acquire(srv.path + "|" + action + "|" + id)
	if !ok {
		srv.log(ctx).Info("Rejected duplicate submission", slog.String("action", action), slog.String("id", id))

		return nil, errors.WithStack(domainerrors.ErrDuplicateSubmission)
	}
	defer release()

	var out T
	if err := send(&out); err != nil {
		return nil, srv.fail(ctx, action, err)
	}

	srv.log(ctx).Info("Resource changed", slog.String("action", action), slog.String("id", id))

	return &out, nil
}

// authorize checks the caller against the resource's gate.
func (srv *resourceService[T]) authorize() error {
	snap := srv.session.Snapshot()
	if !snap.Authenticated() {
		return errors.WithStack(domainerrors.ErrNotAuthenticated)
	}

	role := snap.Session.Role
	switch srv.gate {
	case gateAdmin:
		if role != entity.RoleAdmin {
			return errors.WithStack(domainerrors.ErrForbidden)
		}
	case gateStore:
		if role != entity.RoleMerchant && role != entity.RoleAdmin {
			return errors.WithStack(domainerrors.ErrForbidden)
		}
		if !snap.Verdict.Permits() {
			return errors.WithStack(domainerrors.ErrStoreAccessBlocked.WithDetails(snap.Verdict.Reason))
		}
	}

	return nil
}

// fail logs and wraps an API failure; a 401 also ends the session.
func (srv *resourceService[T]) fail(ctx context.Context, action string, err error) error {
	if domainerrors.IsUnauthorized(err) {
		srv.invalidator.Invalidate(ctx, err)

		return errors.Wrap(domainerrors.ErrSessionExpired, err.Error())
	}
	if errors.IsContextDone(err) {
		return errors.Wrapf(err, "%s %s cancelled", action, srv.name)
	}

	srv.log(ctx).Warn("Resource request failed", slog.String("action", action), slog.Any("error", err))

	return errors.Wrapf(err, "failed to %s %s", action, srv.name)
}

func normalizeQuery(query entity.ListQuery) entity.ListQuery {
	if query.Page < 1 {
		query.Page = 1
	}
	switch {
	case query.Limit < 1:
		query.Limit = defaultPageLimit
	case query.Limit > maxPageLimit:
		query.Limit = maxPageLimit
	}
	query.Search = strings.TrimSpace(query.Search)

	return query
}

func requireID(id string) error {
	if strings.TrimSpace(id) == "" {
		return errors.WithStack(domainerrors.NewValidationError(map[string]string{"id": "is required"}))
	}

	return nil
}

func itemPath(path, id, action string) string {
	return path + "/" + url.PathEscape(id) + "/" + action
}

// fingerprint identifies a create by its content, so only a resubmission of the
// same item counts as a duplicate.
func fingerprint(item any) string {
	body, err := json.Marshal(item)
	if err != nil {
		return ""
	}

	h := fnv.New64a()
	_, _ = h.Write(body)

	return strconv.FormatUint(h.Sum64(), 16)
}

// inflightGuard tracks mutations currently being sent.
type inflightGuard struct {
	mu   sync.Mutex
	keys map[string]struct{}
}

func newInflightGuard() *inflightGuard {
	return &inflightGuard{keys: map[string]struct{}{}}
}

// acquire claims key; ok is false when the same key is already in flight.
func (g *inflightGuard) acquire(key string) (release func(), ok bool) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if _, busy := g.keys[key]; busy {
		return nil, false
	}
	g.keys[key] = struct{}{}

	return func() {
		g.mu.Lock()
		defer g.mu.Unlock()

		delete(g.keys, key)
	}, true
}
