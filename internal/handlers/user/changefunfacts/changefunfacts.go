// Package changefunfacts реализует обработчик переключения показа
// интересных фактов о растениях.
package changefunfacts

import (
	"context"
	"log/slog"

	"github.com/gronskott/happyplants/internal/lib/sl"
	"github.com/gronskott/happyplants/internal/protocol"
)

// UserRepository описывает контракт работы с пользователями в базе данных.
type UserRepository interface {
	ChangeFunFacts(ctx context.Context, email string, enabled bool) error
}

// Handler обрабатывает запросы переключения интересных фактов.
type Handler struct {
	log   *slog.Logger
	users UserRepository
}

// New создает новый Handler.
func New(log *slog.Logger, users UserRepository) *Handler {
	return &Handler{log: log, users: users}
}

// Respond сохраняет новое состояние флага интересных фактов.
func (h *Handler) Respond(ctx context.Context, req protocol.Message) protocol.Message {
	const op = "handlers.user.changefunfacts"
	log := h.log.With(slog.String("op", op))

	if req.User == nil {
		log.Error("request without user payload")
		return protocol.Fail()
	}

	if err := h.users.ChangeFunFacts(ctx, req.User.Email, req.Enabled); err != nil {
		log.Error("failed to change fun facts", sl.Err(err))
		return protocol.Fail()
	}

	log.Info("fun facts changed",
		slog.String("email", req.User.Email),
		slog.Bool("enabled", req.Enabled))
	return protocol.OK()
}
