package rabbitmq

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/streadway/amqp"
)

// PublishJSON сериализует payload и отправляет его в обменник напоминаний
// с указанным ключом маршрутизации. Сообщение помечается как persistent,
// чтобы вместе с долговечной очередью пережить перезапуск брокера.
func PublishJSON(ch *amqp.Channel, routingKey string, payload any) error {
	const op = "rabbitmq.PublishJSON"

	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("%s: marshal payload: %w", op, err)
	}

	publishing := amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		Timestamp:    time.Now(),
		Body:         body,
	}
	if err := ch.Publish(ExchangeName, routingKey, false, false, publishing); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}
