package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"time"

	"novelhub/config"
	"novelhub/internal/domain/lifecycle"
	"novelhub/internal/domain/repository"
	"novelhub/internal/domain/service"
	logs "novelhub/internal/infra/log"
	"novelhub/internal/infra/persistence"
	"novelhub/internal/infra/persistence/postgres"

	"github.com/google/uuid"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

type migrateParams struct {
	fx.In
	fx.Lifecycle

	DB        *gorm.DB
	TxManager repository.TransactionManager
	Clock     service.Clock
	Logger    *slog.Logger
}

func main() {
	seed := flag.Bool("seed", false, "create a demo novel after migrating")
	reader := flag.String("reader", "", "auth user id of a demo reader to create with coins (requires -seed)")
	flag.Parse()

	var readerID uuid.UUID
	if *reader != "" {
		id, err := uuid.Parse(*reader)
		if err != nil {
			slog.Error("Invalid reader id", slog.String("reader", *reader), slog.Any("error", err))
			os.Exit(2)
		}
		readerID = id
	}

	app := fx.New(
		fx.NopLogger,
		fx.Provide(
			config.New,
			logs.New,
			persistence.NewDatabase,
			postgres.NewTransactionManager,
			service.NewSystemClock,
		),
		fx.Invoke(func(params migrateParams) {
			params.Append(fx.Hook{
				OnStart: func(ctx context.Context) error {
					return migrate(ctx, params, *seed, readerID)
				},
			})
		}),
	)

	ctx, cancel := context.WithTimeout(context.Background(), 2*lifecycle.DefaultTimeout)
	defer cancel()

	if err := app.Start(ctx); err != nil {
		slog.Error("Migration failed", slog.Any("error", err))
		os.Exit(1)
	}
	if err := app.Stop(ctx); err != nil {
		slog.Error("Failed to close database", slog.Any("error", err))
	}
}

func migrate(ctx context.Context, params migrateParams, seed bool, readerID uuid.UUID) error {
	start := time.Now()
	if err := postgres.Migrate(ctx, params.DB); err != nil {
		return err
	}
	params.Logger.Info("Schema migrated", slog.Duration("elapsed", time.Since(start)))

	if !seed {
		return nil
	}

	if err := persistence.SeedDemo(ctx, params.TxManager, params.Clock.Now(), readerID); err != nil {
		return err
	}
	params.Logger.Info("Demo data seeded", slog.String("reader_id", readerID.String()))

	return nil
}
