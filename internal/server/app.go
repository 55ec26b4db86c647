// Package server wires configuration, storage and the gRPC endpoint into a
// runnable application and handles graceful shutdown.
package server

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os/signal"
	"syscall"
	"time"

	"github.com/avast/retry-go/v4"
	"github.com/dmitrijs2005/fuelcost/internal/dbx"
	"github.com/dmitrijs2005/fuelcost/internal/logging"
	"github.com/dmitrijs2005/fuelcost/internal/pagetoken"
	"github.com/dmitrijs2005/fuelcost/internal/server/config"
	"github.com/dmitrijs2005/fuelcost/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/fuelcost/internal/server/services"
	_ "github.com/jackc/pgx/v5/stdlib"

	gs "github.com/dmitrijs2005/fuelcost/internal/server/grpc"
)

type App struct {
	config   *config.Config
	logger   logging.Logger
	db       *sql.DB
	accounts *services.AccountService
	vehicles *services.VehicleService
}

// NewApp opens storage as selected by the DSN and builds the services.
// With config.MemoryDSN nothing is persisted.
func NewApp(ctx context.Context, c *config.Config, logger logging.Logger) (*App, error) {
	pages, err := c.PagePolicy()
	if err != nil {
		return nil, err
	}
	tokens, err := pagetoken.NewCodec()
	if err != nil {
		return nil, err
	}

	app := &App{config: c, logger: logger}

	var (
		tx dbx.Transactor
		rm repomanager.RepositoryManager
	)
	if c.UsesMemoryStore() {
		logger.Warn(ctx, "Using in-memory store, data will not survive a restart")
		tx = dbx.NopTransactor{}
		rm = repomanager.NewMemoryRepositoryManager()
	} else {
		db, err := openDB(ctx, c.DatabaseDSN, c.DBConnectAttempts, logger)
		if err != nil {
			return nil, fmt.Errorf("db init error: %w", err)
		}
		rm = repomanager.NewPostgresRepositoryManager()
		if err := rm.RunMigrations(ctx, db); err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("db migration error: %w", err)
		}
		app.db = db
		tx = dbx.NewSQLTransactor(db, c.StatementTimeout)
	}

	app.accounts = services.NewAccountService(tx, rm, tokens, pages)
	app.vehicles = services.NewVehicleService(tx, rm, tokens, pages)
	return app, nil
}

// openDB waits for the database to accept connections.
func openDB(ctx context.Context, dsn string, attempts uint, logger logging.Logger) (*sql.DB, error) {
	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return nil, err
	}

	err = retry.Do(func() error {
		return db.PingContext(ctx)
	}, retry.Attempts(attempts),
		retry.Context(ctx),
		retry.Delay(500*time.Millisecond),
		retry.DelayType(retry.BackOffDelay),
		retry.LastErrorOnly(true),
		retry.OnRetry(func(n uint, err error) {
			logger.Warn(ctx, "Database not ready, retrying", "attempt", n+1, "error", err.Error())
		}),
	)
	if err != nil {
		_ = db.Close()
		return nil, err
	}
	return db, nil
}

// Run serves until SIGINT, SIGTERM or SIGQUIT is received or ctx is done.
func (app *App) Run(ctx context.Context) error {
	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)
	defer stop()

	app.logger.Info(ctx, "Starting app...")

	s := gs.NewGRPCServer(app.config.EndpointAddrGRPC, app.logger, app.accounts, app.vehicles,
		app.config.SecretKey, app.config.ShutdownTimeout)

	runErr := s.Run(ctx)
	closeErr := app.Close()
	app.logger.Info(context.Background(), "App stopped")
	return errors.Join(runErr, closeErr)
}

// Close releases the database, if one was opened.
func (app *App) Close() error {
	if app.db == nil {
		return nil
	}
	err := app.db.Close()
	app.db = nil
	return err
}
