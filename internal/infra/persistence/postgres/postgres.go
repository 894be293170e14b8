package postgres

import (
	"context"
	"database/sql"
	"log/slog"
	"time"

	"roster/config"
	domainerrors "roster/internal/domain/errors"
	"roster/internal/domain/lifecycle"
	"roster/internal/errors"

	pgLib "github.com/slighter12/go-lib/database/postgres"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

const (
	poolWatchInterval     = 5 * time.Second
	poolWaitWarnThreshold = 50 * time.Millisecond
)

// Params defines the required parameters
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

// New opens the personnel store. Reaching the store, and migrating it when enabled,
// happens in OnStart so that an unreachable database aborts startup.
func New(params Params) (*gorm.DB, error) {
	if params.Config.Postgres == nil {
		return nil, errors.New("postgres configuration is missing")
	}

	db, err := pgLib.New(params.Config.Postgres)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create PostgreSQL client")
	}
	// Writes are single-row statements.
	db = db.Session(&gorm.Session{
		SkipDefaultTransaction: true,
		Logger:                 newGormSlogLogger(params.Logger, params.Config),
	})

	sqlDB, err := db.DB()
	if err != nil {
		return nil, errors.Wrap(err, "failed to get PostgreSQL sql.DB")
	}

	migrate := params.Config.Migration != nil && params.Config.Migration.Enabled
	watch := &poolWatch{logger: params.Logger, db: sqlDB, threshold: poolWaitWarnThreshold}
	watchCtx, stopWatch := context.WithCancel(context.Background())

	params.Append(fx.Hook{
		OnStart: func(startCtx context.Context) error {
			ctx, cancel := context.WithTimeout(startCtx, lifecycle.DefaultTimeout)
			defer cancel()

			if err := openStore(ctx, params.Logger, sqlDB, migrate); err != nil {
				return err
			}

			go watch.run(watchCtx, poolWatchInterval)

			return nil
		},
		OnStop: func(_ context.Context) error {
			stopWatch()

			return errors.WithStack(sqlDB.Close())
		},
	})

	return db, nil
}

// openStore fails with ErrStoreUnavailable when the database cannot be reached.
func openStore(ctx context.Context, logger *slog.Logger, sqlDB *sql.DB, migrate bool) error {
	if err := sqlDB.PingContext(ctx); err != nil {
		return errors.Wrap(domainerrors.ErrStoreUnavailable.WithDetails(err.Error()), "ping personnel store")
	}

	if !migrate {
		return nil
	}
	if err := RunMigrations(ctx, sqlDB); err != nil {
		return err
	}
	logger.Info("Personnel schema is up to date")

	return nil
}

// poolWatch periodically reports connection pool waits, warning once they get slow.
type poolWatch struct {
	logger    *slog.Logger
	db        *sql.DB
	threshold time.Duration
}

func (w *poolWatch) run(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	prev := w.db.Stats()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			cur := w.db.Stats()
			w.report(ctx, prev, cur)
			prev = cur
		}
	}
}

func (w *poolWatch) report(ctx context.Context, prev, cur sql.DBStats) {
	waits := cur.WaitCount - prev.WaitCount
	if waits <= 0 {
		return
	}

	waited := cur.WaitDuration - prev.WaitDuration
	level := slog.LevelDebug
	if waited >= w.threshold {
		level = slog.LevelWarn
	}

	w.logger.LogAttrs(ctx, level, "Personnel store pool wait",
		slog.Int64("waits", waits),
		slog.Duration("waited", waited),
		slog.Duration("avgWait", waited/time.Duration(waits)),
		slog.Int("openConns", cur.OpenConnections),
		slog.Int("inUseConns", cur.InUse),
		slog.Int("maxOpenConns", cur.MaxOpenConnections),
	)
}
