package main

import (
	"context"
	"log/slog"
	"os"

	"marketdash/config"
	"marketdash/internal/delivery"
	"marketdash/internal/delivery/http"
	"marketdash/internal/delivery/http/middleware"
	"marketdash/internal/delivery/http/router/handler"
	"marketdash/internal/domain/service"
	"marketdash/internal/infra/auth"
	logs "marketdash/internal/infra/log"
	"marketdash/internal/infra/marketplace"
	"marketdash/internal/infra/persistence/sqlite"
	"marketdash/internal/usecase"
	"marketdash/internal/usecase/impl"

	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle

	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	fx.New(
		injectInfra(),
		injectRepo(),
		injectService(),
		injectUsecase(),
		injectDelivery(),
		injectMiddleware(),
		injectHandler(),
		fx.Invoke(
			restoreSession,
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Provide(
		config.New,
		logs.New,
		context.Background,
		sqlite.New,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			sqlite.NewCredentialRepository,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				marketplace.New,
				fx.As(new(service.MarketplaceAPI)),
				fx.As(new(service.StoreAPI)),
			),
			auth.NewJWTInspector,
		),
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewSessionManager,
			impl.NewStoreResolver,
			impl.NewAuthService,
			impl.NewCategoryService,
			impl.NewProductService,
			impl.NewOrderService,
			impl.NewPromotionService,
			impl.NewLayoutService,
			impl.NewContentService,
			impl.NewShippingZoneService,
			impl.NewUserAdminService,
			impl.NewStoreAdminService,
			impl.NewSettingsService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewSessionMiddleware,
			middleware.NewErrorMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewSessionHandler,
			handler.NewMerchantHandler,
			handler.NewAdminHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				http.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
	)
}

// restoreSession revives the stored session once the app has started. It runs
// in the background so an unreachable API does not hold up startup.
func restoreSession(lc fx.Lifecycle, auth usecase.AuthUsecase, session usecase.SessionUsecase, logger *slog.Logger) {
	lc.Append(fx.Hook{
		OnStart: func(context.Context) error {
			go func() {
				if _, err := auth.Restore(context.Background()); err != nil {
					logger.Warn("Failed to restore session", slog.Any("error", err))

					return
				}

				snap := session.Snapshot()
				if snap.Authenticated() {
					logger.Info("Session restored",
						slog.String("user_id", snap.Session.ID),
						slog.String("verdict", string(snap.Verdict.Kind)))
				}
			}()

			return nil
		},
	})
}

func startServer(ctx context.Context, params startServerParams) {
	for _, delivery := range params.Deliveries {
		go func() {
			if err := delivery.Serve(ctx); err != nil {
				slog.Error("Failed to start server", slog.Any("error", err))
				os.Exit(1)
			}
		}()
	}
}
