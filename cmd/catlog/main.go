package main

import (
	"context"
	"log/slog"
	"os"

	"catlog/config"
	"catlog/internal/delivery"
	"catlog/internal/delivery/http"
	"catlog/internal/delivery/http/middleware"
	"catlog/internal/delivery/http/router/handler"
	"catlog/internal/domain/repository"
	"catlog/internal/errors"
	"catlog/internal/infra/auth"
	logs "catlog/internal/infra/log"
	"catlog/internal/infra/media"
	"catlog/internal/infra/metrics"
	"catlog/internal/infra/persistence/memory"
	"catlog/internal/infra/persistence/postgres"
	"catlog/internal/usecase/impl"

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
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Provide(
		config.New,
		logs.New,
		context.Background,
		metrics.New,
	)
}

type repoParams struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

// newRepositories wires the repository pair for the configured storage
// driver. Both repositories must share a backend: the event repository
// checks cat ownership and cat deletion cascades onto events.
func newRepositories(params repoParams) (repository.CatRepository, repository.EventRepository, error) {
	switch params.Config.Storage.Driver {
	case "postgres":
		db, err := postgres.New(postgres.Params{
			Lifecycle: params.Lifecycle,
			Config:    params.Config,
			Logger:    params.Logger,
		})
		if err != nil {
			return nil, nil, err
		}

		return postgres.NewCatRepository(db), postgres.NewEventRepository(db), nil
	case "memory":
		params.Logger.Warn("Using in-memory storage; data is lost on shutdown")
		store := memory.NewStore()

		return memory.NewCatRepository(store), memory.NewEventRepository(store), nil
	default:
		return nil, nil, errors.Errorf("unknown storage driver %q", params.Config.Storage.Driver)
	}
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			newRepositories,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewJWTVerifier,
			media.NewBlobImageStore,
		),
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewCatService,
			impl.NewEventService,
			impl.NewStatsService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewAuthMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewCatHandler,
			handler.NewEventHandler,
			handler.NewStatsHandler,
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
