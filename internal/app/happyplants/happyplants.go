// Package happyplants собирает основное приложение: хранилище,
// кэш, клиент каталога, реестр обработчиков, TCP-слушатель и
// служебный HTTP-сервер.
package happyplants

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"

	"github.com/gronskott/happyplants/internal/cache"
	"github.com/gronskott/happyplants/internal/config"
	"github.com/gronskott/happyplants/internal/lib/sl"
	"github.com/gronskott/happyplants/internal/migrations"
	"github.com/gronskott/happyplants/internal/plantapi"
	"github.com/gronskott/happyplants/internal/server"
	lookupservice "github.com/gronskott/happyplants/internal/services/lookup"
	"github.com/gronskott/happyplants/internal/storage/gateway"
	"github.com/gronskott/happyplants/internal/storage/repository"
)

// App представляет собранное приложение.
type App struct {
	tcpServer   *server.Server
	adminServer *http.Server
	logger      *slog.Logger
	connector   *gateway.PgConnector
	cache       *cache.Cache
}

// New создает новый экземпляр приложения.
func New(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*App, error) {
	if err := runMigrations(cfg); err != nil {
		return nil, err
	}

	connector := gateway.NewPgConnector(cfg.StorageConnectionString)
	executor := gateway.NewExecutor(connector, logger)
	db := repository.New(executor, logger)

	if err := waitForDB(ctx, db); err != nil {
		return nil, err
	}

	cacheRedis, err := cache.InitServer(ctx, cfg.RedisConnection)
	if err != nil {
		return nil, fmt.Errorf("cache not initialized: %w", err)
	}

	catalogClient := plantapi.NewClient(cfg.PlantAPI)
	lookup := lookupservice.New(catalogClient, cacheRedis, logger)

	registry := buildRegistry(logger, db, lookup)
	tcpServer := server.New(logger, cfg.TCPServer, registry)

	adminServer := &http.Server{
		Addr:         cfg.AddressAdmin,
		Handler:      newAdminRouter(db),
		ReadTimeout:  cfg.TimeoutHTTP,
		WriteTimeout: cfg.TimeoutHTTP,
		IdleTimeout:  cfg.IdleTimeout,
	}

	return &App{
		tcpServer:   tcpServer,
		adminServer: adminServer,
		logger:      logger,
		connector:   connector,
		cache:       cacheRedis,
	}, nil
}

// Run запускает TCP-слушатель и служебный HTTP-сервер и блокируется
// до отмены контекста или фатальной ошибки любого из них.
func (a *App) Run(ctx context.Context) error {
	errCh := make(chan error, 2)

	go func() {
		a.logger.Info("admin server starting on", slog.String("address", a.adminServer.Addr))
		err := a.adminServer.ListenAndServe()
		if errors.Is(err, http.ErrServerClosed) {
			errCh <- nil
		} else {
			errCh <- err
		}
	}()

	go func() {
		errCh <- a.tcpServer.Run(ctx)
	}()

	select {
	case err := <-errCh:
		a.closeResources()
		return err
	case <-ctx.Done():
		timeoutCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()
		a.logger.Info("shutting down servers gracefully")
		err := a.adminServer.Shutdown(timeoutCtx)
		a.closeResources()
		return err
	}
}

func (a *App) closeResources() {
	a.connector.Reset()
	if err := a.cache.Db.Close(); err != nil {
		a.logger.Error("failed to close cache connection", sl.Err(err))
	}
}

// runMigrations применяет миграции через отдельное соединение:
// шлюз открывает своё лениво и только после готовности схемы.
func runMigrations(cfg *config.Config) error {
	db, err := sql.Open("pgx", cfg.StorageConnectionString)
	if err != nil {
		return fmt.Errorf("failed to open database for migrations: %w", err)
	}
	defer func() {
		_ = db.Close()
	}()

	if err := migrations.Run(db, cfg.MigrationsPath); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}
	return nil
}

func waitForDB(ctx context.Context, db *repository.Storage) error {
	for range 10 {
		err := repository.CheckDatabaseReady(ctx, db)
		if err == nil {
			return nil
		}
		time.Sleep(3 * time.Second)
	}
	return fmt.Errorf("database not ready after retries")
}
