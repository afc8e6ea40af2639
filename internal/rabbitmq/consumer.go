package rabbitmq

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/streadway/amqp"

	"github.com/gronskott/happyplants/internal/lib/sl"
)

// maxInFlight ограничивает число одновременно обрабатываемых сообщений;
// то же значение выставляется как prefetch при настройке канала.
const maxInFlight = 10

// ConsumeQueue читает очередь и отдаёт тело каждого сообщения обработчику
// в отдельной горутине. Ошибка обработчика возвращает сообщение в очередь,
// успех подтверждает доставку. Чтение идёт до отмены контекста или
// закрытия канала.
func ConsumeQueue(ctx context.Context, ch *amqp.Channel, queueName string, log *slog.Logger, handler func([]byte) error) error {
	const op = "rabbitmq.ConsumeQueue"

	deliveries, err := ch.Consume(queueName, "", false, false, false, false, nil)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	slots := make(chan struct{}, maxInFlight)
	go func() {
		for {
			select {
			case <-ctx.Done():
				return
			case d, ok := <-deliveries:
				if !ok {
					return
				}
				slots <- struct{}{}
				go func(d amqp.Delivery) {
					defer func() { <-slots }()
					if err := handler(d.Body); err != nil {
						log.Error("message handler failed, requeueing", sl.Err(err))
						if nackErr := d.Nack(false, true); nackErr != nil {
							log.Error("failed to nack message", sl.Err(nackErr))
						}
						return
					}
					if ackErr := d.Ack(false); ackErr != nil {
						log.Error("failed to ack message", sl.Err(ackErr))
					}
				}(d)
			}
		}
	}()
	return nil
}
