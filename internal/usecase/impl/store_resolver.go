package impl

import (
	"context"
	"log/slog"
	"net/http"

	"marketdash/config"
	deliverycontext "marketdash/internal/delivery/context"
	"marketdash/internal/domain/entity"
	domainerrors "marketdash/internal/domain/errors"
	"marketdash/internal/domain/service"
	"marketdash/internal/errors"
	"marketdash/internal/usecase"

	"go.uber.org/fx"
	"golang.org/x/sync/singleflight"
)

// Strategy names, in chain order.
const (
	StrategyMyStore       = "my-store"
	StrategyMerchantStore = "merchant-store"
	StrategyStoreByID     = "store-by-id"
	StrategyRepair        = "repair-then-retry"
)

var errAttemptsExhausted = errors.New("store resolution attempt limit reached")

// storeStrategy is one way of asking the API for the merchant's store.
type storeStrategy struct {
	name string
	// skip reports that the strategy does not apply to the session.
	skip func(session *entity.Session) bool
	run  func(ctx context.Context, r *resolutionRun) (*entity.Store, error)
}

// storeResolver implements the StoreResolver interface.
type storeResolver struct {
	api        service.StoreAPI
	strategies []storeStrategy
	cfg        config.ResolverConfig
	logger     *slog.Logger

	group singleflight.Group
}

// StoreResolverParams holds dependencies for the store resolver, injected by Fx.
type StoreResolverParams struct {
	fx.In

	API    service.StoreAPI
	Config *config.Config
	Logger *slog.Logger
}

// NewStoreResolver is the constructor for storeResolver.
func NewStoreResolver(params StoreResolverParams) usecase.StoreResolver {
	r := &storeResolver{
		api:    params.API,
		cfg:    *params.Config.Resolver,
		logger: params.Logger,
	}
	r.strategies = r.chain()

	return r
}

// chain lists the strategies in the order they are tried.
func (r *storeResolver) chain() []storeStrategy {
	strategies := []storeStrategy{
		{
			name: StrategyMyStore,
			run: func(ctx context.Context, run *resolutionRun) (*entity.Store, error) {
				return run.call(ctx, r.api.MyStore)
			},
		},
		{
			name: StrategyMerchantStore,
			run: func(ctx context.Context, run *resolutionRun) (*entity.Store, error) {
				return run.call(ctx, r.api.MerchantStore)
			},
		},
		{
			name: StrategyStoreByID,
			skip: func(session *entity.Session) bool {
				return session.StorePointer() == ""
			},
			run: func(ctx context.Context, run *resolutionRun) (*entity.Store, error) {
				id := run.session.StorePointer()

				return run.call(ctx, func(ctx context.Context) (*entity.Store, error) {
					return r.api.StoreByID(ctx, id)
				})
			},
		},
	}

	if r.cfg.RepairEnabled {
		strategies = append(strategies, storeStrategy{
			name: StrategyRepair,
			run: func(ctx context.Context, run *resolutionRun) (*entity.Store, error) {
				_, err := run.call(ctx, func(ctx context.Context) (*entity.Store, error) {
					return nil, r.api.FixStore(ctx)
				})
				if err != nil {
					return nil, errors.Wrap(err, "repair")
				}

				// repaired: the primary lookup gets exactly one more try
				return run.call(ctx, r.api.MyStore)
			},
		})
	}

	return strategies
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (r *storeResolver) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, r.logger)
}

// Resolve runs the chain for a merchant session. Concurrent calls for the same
// session share one run; a caller whose context ends first gets Pending.
func (r *storeResolver) Resolve(ctx context.Context, session *entity.Session) entity.Resolution {
	if !session.IsMerchant() {
		return entity.Resolution{Outcome: entity.OutcomeNotApplicable}
	}

	key := session.ID + "|" + session.StorePointer()
	// the shared run outlives any single caller but keeps its values
	detached := context.WithoutCancel(ctx)

	ch := r.group.DoChan(key, func() (any, error) {
		return r.resolve(detached, session.Clone()), nil
	})

	select {
	case res := <-ch:
		resolution, _ := res.Val.(entity.Resolution)

		return resolution
	case <-ctx.Done():
		r.log(ctx).Info("Caller stopped waiting for store resolution", slog.String("user_id", session.ID))

		return entity.Resolution{Outcome: entity.OutcomePending, Err: ctx.Err()}
	}
}

func (r *storeResolver) resolve(ctx context.Context, session *entity.Session) entity.Resolution {
	cancel := context.CancelFunc(func() {})
	if r.cfg.Budget > 0 {
		ctx, cancel = context.WithTimeout(ctx, r.cfg.Budget)
	}
	defer cancel()

	run := &resolutionRun{session: session, maxAttempts: r.cfg.MaxAttempts}
	logger := r.log(ctx).With(slog.String("user_id", session.ID))

	var (
		lastErr      error
		lastStrategy string
	)
	for _, strategy := range r.strategies {
		if strategy.skip != nil && strategy.skip(session) {
			logger.Debug("Skipping store strategy", slog.String("strategy", strategy.name))

			continue
		}

		store, err := runStrategy(ctx, strategy, run)
		if err == nil {
			logger.Info("Store resolved",
				slog.String("strategy", strategy.name),
				slog.String("store_id", store.ID),
				slog.Int("attempts", run.attempts))

			return entity.Resolution{
				Outcome:  entity.OutcomeResolved,
				Store:    store,
				Strategy: strategy.name,
				Attempts: run.attempts,
			}
		}

		if errors.Is(err, errAttemptsExhausted) {
			logger.Warn("Store resolution attempt limit reached", slog.Int("attempts", run.attempts))

			break
		}

		lastErr, lastStrategy = err, strategy.name
		outcome := classifyStoreError(ctx, err)
		logger.Warn("Store strategy failed",
			slog.String("strategy", strategy.name),
			slog.String("outcome", string(outcome)),
			slog.Any("error", err))

		// the session itself is dead, or time is up: no later strategy can help
		if outcome == entity.OutcomeUnauthorized || outcome == entity.OutcomePending {
			return entity.Resolution{Outcome: outcome, Strategy: strategy.name, Attempts: run.attempts, Err: err}
		}
	}

	if lastErr == nil {
		lastErr = domainerrors.ErrStoreNotFound
	}

	return entity.Resolution{
		Outcome:  classifyStoreError(ctx, lastErr),
		Strategy: lastStrategy,
		Attempts: run.attempts,
		Err:      lastErr,
	}
}

// runStrategy turns a panicking strategy into an ordinary failure.
func runStrategy(ctx context.Context, strategy storeStrategy, run *resolutionRun) (store *entity.Store, err error) {
	defer func() {
		if rec := recover(); rec != nil {
			store, err = nil, errors.Errorf("strategy %s panicked: %v", strategy.name, rec)
		}
	}()

	store, err = strategy.run(ctx, run)
	if err == nil && store == nil {
		err = errors.WithStack(domainerrors.ErrStoreNotFound)
	}

	return store, err
}

// classifyStoreError maps a failed call onto a resolution outcome.
func classifyStoreError(ctx context.Context, err error) entity.ResolutionOutcome {
	switch {
	case domainerrors.IsUnauthorized(err):
		return entity.OutcomeUnauthorized
	case errors.IsContextDone(err) || ctx.Err() != nil:
		return entity.OutcomePending
	case domainerrors.IsNotFound(err):
		return entity.OutcomeNotFound
	}

	var upstream *domainerrors.UpstreamError
	if errors.As(err, &upstream) {
		// the API answered: success=false or a 4xx means it has no store for us
		if upstream.StatusCode > 0 && upstream.StatusCode < http.StatusInternalServerError {
			return entity.OutcomeNotFound
		}
	}

	return entity.OutcomeTransportError
}

// resolutionRun is the per-resolution state shared by the strategies.
type resolutionRun struct {
	session     *entity.Session
	attempts    int
	maxAttempts int
}

// call counts one network attempt against the limit.
func (run *resolutionRun) call(ctx context.Context, fn func(context.Context) (*entity.Store, error)) (*entity.Store, error) {
	if run.maxAttempts > 0 && run.attempts >= run.maxAttempts {
		return nil, errAttemptsExhausted
	}
	run.attempts++

	return fn(ctx)
}
