package main

import (
	"io"
	"log/slog"

	"marketdash/config"
	"marketdash/internal/errors"
	"marketdash/internal/infra/auth"
	logs "marketdash/internal/infra/log"
	"marketdash/internal/infra/marketplace"
	"marketdash/internal/infra/persistence/sqlite"
	"marketdash/internal/usecase"
	"marketdash/internal/usecase/impl"

	"gorm.io/gorm"
)

// app is the dependency graph of one CLI invocation.
type app struct {
	logger     *slog.Logger
	db         *gorm.DB
	session    usecase.SessionUsecase
	auth       usecase.AuthUsecase
	categories usecase.CategoryUsecase
}

func newApp(cfg *config.Config, logOut io.Writer) (*app, error) {
	logger, err := logs.NewWithWriter(logOut, cfg.Env.Log, cfg.Env.ServiceName)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create logger")
	}

	db, err := sqlite.Open(cfg, logger)
	if err != nil {
		return nil, err
	}

	client := marketplace.New(marketplace.Params{Config: cfg, Logger: logger})
	session := impl.NewSessionManager(logger)
	resolver := impl.NewStoreResolver(impl.StoreResolverParams{API: client, Config: cfg, Logger: logger})
	authService := impl.NewAuthService(impl.AuthServiceParams{
		API:         client,
		Credentials: sqlite.NewCredentialRepository(db, logger),
		Tokens:      auth.NewJWTInspector(),
		Session:     session,
		Resolver:    resolver,
		Logger:      logger,
	})

	return &app{
		logger:  logger,
		db:      db,
		session: session,
		auth:    authService,
		categories: impl.NewCategoryService(impl.ResourceServiceParams{
			API:     client,
			Session: session,
			Auth:    authService,
			Logger:  logger,
		}),
	}, nil
}

func (a *app) Close() error {
	sqlDB, err := a.db.DB()
	if err != nil {
		return errors.Wrap(err, "failed to get SQLite sql.DB")
	}

	return sqlDB.Close()
}
