// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"
	"database/sql"
	"log/slog"
	"time"

	"bizdir/config"
	"bizdir/internal/domain/lifecycle"
	"bizdir/internal/errors"
	"bizdir/internal/infra/persistence/model"

	pgLib "github.com/slighter12/go-lib/database/postgres"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

const (
	dbPoolMonitorInterval       = 5 * time.Second
	dbPoolWarnInUseThreshold    = 0.8
	dbPoolWarnWaitDurationDelta = 50 * time.Millisecond
)

// Params defines the required parameters
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

// New creates the PostgreSQL client.
func New(params Params) (*gorm.DB, error) {
	db, err := pgLib.New(params.Config.Postgres)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create PostgreSQL client")
	}
	db = db.Session(&gorm.Session{
		// Disable GORM's per-statement implicit transaction.
		// Explicit transactions go through txManager.Execute; the cascade
		// coordinator stays outside transactions on purpose.
		SkipDefaultTransaction: true,
		Logger:                 newGormSlogLogger(params.Logger, params.Config),
	})

	sqlDB, err := db.DB()
	if err != nil {
		return nil, errors.Wrap(err, "failed to get PostgreSQL sql.DB")
	}

	monitorCtx, cancelMonitor := context.WithCancel(context.Background())

	// Add lifecycle management
	params.Append(fx.Hook{
		OnStart: func(startCtx context.Context) error {
			ctx, cancel := context.WithTimeout(startCtx, lifecycle.DefaultTimeout)
			defer cancel()

			if err := sqlDB.PingContext(ctx); err != nil {
				return errors.Wrap(err, "failed to ping PostgreSQL")
			}

			if err := db.WithContext(ctx).AutoMigrate(
				&model.UserModel{},
				&model.BusinessModel{},
				&model.ReviewModel{},
				&model.DealModel{},
			); err != nil {
				return errors.Wrap(err, "failed to migrate schema")
			}

			go monitorDBPool(monitorCtx, params.Logger, sqlDB, dbPoolMonitorInterval)

			return nil
		},
		OnStop: func(_ context.Context) error {
			cancelMonitor()

			return sqlDB.Close()
		},
	})

	return db, nil
}

// monitorDBPool periodically logs connection pool pressure.
func monitorDBPool(ctx context.Context, logger *slog.Logger, sqlDB *sql.DB, interval time.Duration) {
	if logger == nil || sqlDB == nil {
		return
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	var lastWaitDuration time.Duration

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			stats := sqlDB.Stats()

			waitDelta := stats.WaitDuration - lastWaitDuration
			lastWaitDuration = stats.WaitDuration

			inUseRatio := 0.0
			if stats.MaxOpenConnections > 0 {
				inUseRatio = float64(stats.InUse) / float64(stats.MaxOpenConnections)
			}

			if inUseRatio >= dbPoolWarnInUseThreshold || waitDelta > dbPoolWarnWaitDurationDelta {
				logger.LogAttrs(ctx, slog.LevelWarn, "DB pool under pressure",
					slog.Int("in_use", stats.InUse),
					slog.Int("idle", stats.Idle),
					slog.Int("max_open", stats.MaxOpenConnections),
					slog.Int64("wait_count", stats.WaitCount),
					slog.Duration("wait_delta", waitDelta),
				)
			}
		}
	}
}
