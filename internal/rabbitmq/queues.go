package rabbitmq

// ExchangeName имя обменника напоминаний.
const ExchangeName = "notifications"

// QueueConfig описывает очередь и её ключ маршрутизации.
type QueueConfig struct {
	QueueName  string
	RoutingKey string
}

// GetReminderQueues возвращает очереди напоминаний о поливе.
func GetReminderQueues() []QueueConfig {
	return []QueueConfig{
		{QueueName: "notifications.watering", RoutingKey: "watering"},
	}
}
