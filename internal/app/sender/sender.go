// Package sender собирает приложение почтового воркера напоминаний.
package sender

import (
	"context"
	"log/slog"

	"github.com/streadway/amqp"

	"github.com/gronskott/happyplants/internal/config"
	"github.com/gronskott/happyplants/internal/lib/smtp"
	"github.com/gronskott/happyplants/internal/rabbitmq"
	senderservice "github.com/gronskott/happyplants/internal/services/sender"
)

// App представляет приложение почтового воркера.
type App struct {
	conn          *amqp.Connection
	ch            *amqp.Channel
	senderService *senderservice.SenderService
	logger        *slog.Logger
}

// New создает новый экземпляр приложения почтового воркера.
func New(_ context.Context, cfg *config.Config, logger *slog.Logger) (*App, error) {
	conn, err := rabbitmq.Connect(cfg.RabbitMQURL, cfg.RabbitMQMaxRetries, cfg.RabbitMQRetryDelay)
	if err != nil {
		return nil, err
	}

	queues := rabbitmq.GetReminderQueues()
	ch, err := rabbitmq.SetupChannel(conn, queues)
	if err != nil {
		if closeErr := conn.Close(); closeErr != nil {
			logger.Error("failed to close connection", "error", closeErr)
		}
		return nil, err
	}

	transport := smtp.NewTransport(cfg.SMTP, logger)
	senderService := senderservice.NewSenderService(transport, logger)

	return &App{
		conn:          conn,
		ch:            ch,
		senderService: senderService,
		logger:        logger,
	}, nil
}

// Run запускает потребителя очереди напоминаний до отмены контекста.
func (a *App) Run(ctx context.Context) error {
	err := rabbitmq.ConsumeQueue(ctx, a.ch, "notifications.watering", a.logger, a.senderService.SendWateringReminder)
	if err != nil {
		a.logger.Error("failed to start notifications.watering consumer", slog.Any("err", err))
		return err
	}

	<-ctx.Done()
	a.logger.Info("sender service shutting down gracefully")

	if err := a.ch.Close(); err != nil {
		a.logger.Error("failed to close channel", slog.Any("err", err))
	}
	if err := a.conn.Close(); err != nil {
		a.logger.Error("failed to close connection", slog.Any("err", err))
	}

	return nil
}
