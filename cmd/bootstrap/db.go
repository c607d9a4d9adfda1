package bootstrap

import (
	"context"
	"log/slog"

	"spark-bytes/internal/infra/db"
	"spark-bytes/internal/pkg/config"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var DBModule = fx.Module("db",
	fx.Provide(
		NewDB,
	),
)

func NewDB(lc fx.Lifecycle, cfg config.Config, logger *slog.Logger) (*pgxpool.Pool, error) {
	if cfg.DB.RunMigrations {
		if err := db.RunMigrations(cfg.DB); err != nil {
			return nil, err
		}
		logger.Info("database migrations applied", "database", cfg.DB.DBName)
	}

	pool, cleanup, err := db.Connect(cfg.DB)
	if err != nil {
		return nil, err
	}

	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			if cleanup != nil {
				cleanup()
			}
			return nil
		},
	})

	return pool, nil
}
