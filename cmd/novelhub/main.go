package main

import (
	"context"
	"log/slog"
	"os"

	"novelhub/config"
	"novelhub/internal/delivery"
	"novelhub/internal/delivery/api"
	"novelhub/internal/delivery/api/middleware"
	"novelhub/internal/delivery/api/router/handler"
	"novelhub/internal/domain/service"
	"novelhub/internal/infra/auth"
	"novelhub/internal/infra/idempotency"
	logs "novelhub/internal/infra/log"
	"novelhub/internal/infra/persistence"
	"novelhub/internal/infra/persistence/postgres"
	"novelhub/internal/infra/pubsub"
	"novelhub/internal/usecase/impl"

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
		persistence.NewDatabase,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			postgres.NewTransactionManager,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			service.NewSystemClock,
			auth.NewJWTService,
			idempotency.NewStore,
		),
		pubsub.Module,
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewNovelService,
			impl.NewProfileService,
			impl.NewEntitlementService,
			impl.NewNavigationService,
			impl.NewUnlockService,
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
			handler.NewNovelHandler,
			handler.NewChapterHandler,
			handler.NewProfileHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				api.NewServer,
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
