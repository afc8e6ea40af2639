// Package changenotifications реализует обработчик переключения
// напоминаний о поливе для пользователя.
package changenotifications

import (
	"context"
	"log/slog"

	"github.com/gronskott/happyplants/internal/lib/sl"
	"github.com/gronskott/happyplants/internal/protocol"
)

// UserRepository описывает контракт работы с пользователями в базе данных.
type UserRepository interface {
	ChangeNotifications(ctx context.Context, email string, enabled bool) error
}

// Handler обрабатывает запросы переключения напоминаний.
type Handler struct {
	log   *slog.Logger
	users UserRepository
}

// New создает новый Handler.
func New(log *slog.Logger, users UserRepository) *Handler {
	return &Handler{log: log, users: users}
}

// Respond сохраняет новое состояние флага напоминаний.
func (h *Handler) Respond(ctx context.Context, req protocol.Message) protocol.Message {
	const op = "handlers.user.changenotifications"
	log := h.log.With(slog.String("op", op))

	if req.User == nil {
		log.Error("request without user payload")
		return protocol.Fail()
	}

	if err := h.users.ChangeNotifications(ctx, req.User.Email, req.Enabled); err != nil {
		log.Error("failed to change notifications", sl.Err(err))
		return protocol.Fail()
	}

	log.Info("notifications changed",
		slog.String("email", req.User.Email),
		slog.Bool("enabled", req.Enabled))
	return protocol.OK()
}
