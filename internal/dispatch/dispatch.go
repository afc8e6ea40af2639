// Package dispatch реализует маршрутизацию конвертов протокола:
// неизменяемый после старта реестр обработчиков по тегу сообщения
// и сам диспетчер запрос-ответ.
package dispatch

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/gronskott/happyplants/internal/protocol"
)

// ErrUnknownMessageType означает незарегистрированный тег сообщения.
// Это ошибка программирования, а не плохой запрос клиента: сервер
// обязан упасть громко, а не вернуть тихий отказ.
var ErrUnknownMessageType = errors.New("unknown message type")

// Handler отображает один запрос в один ответ.
//
// Обработчик сам ловит свои доменные ошибки и превращает их в ответ
// с Success=false; через границу диспетчеризации ошибки не летают.
type Handler interface {
	Respond(ctx context.Context, req protocol.Message) protocol.Message
}

// Registry неизменяемое после сборки отображение тега в обработчик.
// Регистрация не потокобезопасна и должна завершиться до первого
// запроса; чтение после этого не требует синхронизации.
type Registry struct {
	handlers map[protocol.MessageType]Handler
	log      *slog.Logger
}

// NewRegistry создает пустой реестр.
func NewRegistry(log *slog.Logger) *Registry {
	return &Registry{
		handlers: make(map[protocol.MessageType]Handler),
		log:      log,
	}
}

// Register привязывает обработчик к тегу. Повторная привязка одного
// тега — ошибка сборки процесса.
func (r *Registry) Register(messageType protocol.MessageType, handler Handler) {
	if _, ok := r.handlers[messageType]; ok {
		panic(fmt.Sprintf("dispatch: duplicate handler for message type %q", messageType))
	}
	r.handlers[messageType] = handler
}

// Dispatch находит обработчик по тегу запроса и возвращает его ответ
// без изменений.
func (r *Registry) Dispatch(ctx context.Context, req protocol.Message) (protocol.Message, error) {
	const op = "dispatch.Registry.Dispatch"

	handler, ok := r.handlers[req.Type]
	if !ok {
		return protocol.Message{}, fmt.Errorf("%s: %w: %q", op, ErrUnknownMessageType, req.Type)
	}

	requestsTotal.WithLabelValues(string(req.Type)).Inc()
	return handler.Respond(ctx, req), nil
}
