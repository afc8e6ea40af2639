// Package scheduler собирает приложение планировщика напоминаний
// о поливе.
package scheduler

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/streadway/amqp"

	"github.com/gronskott/happyplants/internal/config"
	"github.com/gronskott/happyplants/internal/rabbitmq"
	reminderservice "github.com/gronskott/happyplants/internal/services/reminder"
	"github.com/gronskott/happyplants/internal/storage/gateway"
	"github.com/gronskott/happyplants/internal/storage/repository"
)

// App представляет приложение планировщика.
type App struct {
	reminderService *reminderservice.SchedulerService
	conn            *amqp.Connection
	ch              *amqp.Channel
	connector       *gateway.PgConnector
	logger          *slog.Logger
}

// New создает новый экземпляр приложения планировщика.
func New(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*App, error) {
	conn, err := rabbitmq.Connect(cfg.RabbitMQURL, cfg.RabbitMQMaxRetries, cfg.RabbitMQRetryDelay)
	if err != nil {
		return nil, fmt.Errorf("failed to connect RabbitMQ: %w", err)
	}

	queues := rabbitmq.GetReminderQueues()
	ch, err := rabbitmq.SetupChannel(conn, queues)
	if err != nil {
		closeResources(nil, conn, logger)
		return nil, fmt.Errorf("failed to setup RabbitMQ channel: %w", err)
	}

	connector := gateway.NewPgConnector(cfg.StorageConnectionString)
	executor := gateway.NewExecutor(connector, logger)
	db := repository.New(executor, logger)

	if err := waitForDB(ctx, db); err != nil {
		closeResources(ch, conn, logger)
		return nil, err
	}

	reminderService := reminderservice.NewSchedulerService(db, logger)

	return &App{
		reminderService: reminderService,
		conn:            conn,
		ch:              ch,
		connector:       connector,
		logger:          logger,
	}, nil
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

func closeResources(ch *amqp.Channel, conn *amqp.Connection, logger *slog.Logger) {
	if ch != nil {
		if err := ch.Close(); err != nil {
			logger.Error("failed to close channel", "error", err)
		}
	}
	if conn != nil {
		if err := conn.Close(); err != nil {
			logger.Error("failed to close connection", "error", err)
		}
	}
}

// Run запускает планировщик.
func (a *App) Run(ctx context.Context) error {
	go a.reminderService.FindPlantsToWater(ctx, a.ch)

	<-ctx.Done()

	a.logger.Info("shutting down scheduler service")

	if err := a.ch.Close(); err != nil {
		a.logger.Error("failed to close channel", slog.Any("err", err))
	}
	if err := a.conn.Close(); err != nil {
		a.logger.Error("failed to close connection", slog.Any("err", err))
	}
	a.connector.Reset()

	return nil
}
