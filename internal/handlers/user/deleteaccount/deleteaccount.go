// Package deleteaccount реализует обработчик удаления учётной записи.
// Удаление в хранилище транзакционное: библиотека, список желаний и
// сам пользователь исчезают атомарно, либо не исчезает ничего.
package deleteaccount

import (
	"context"
	"log/slog"

	"github.com/gronskott/happyplants/internal/lib/sl"
	"github.com/gronskott/happyplants/internal/protocol"
)

// UserRepository описывает контракт работы с пользователями в базе данных.
type UserRepository interface {
	// DeleteAccount проверяет учётные данные и атомарно удаляет пользователя.
	DeleteAccount(ctx context.Context, email, rawPassword string) error
}

// Handler обрабатывает запросы удаления учётной записи.
type Handler struct {
	log   *slog.Logger
	users UserRepository
}

// New создает новый Handler.
func New(log *slog.Logger, users UserRepository) *Handler {
	return &Handler{log: log, users: users}
}

// Respond удаляет учётную запись и отвечает флагом успеха.
func (h *Handler) Respond(ctx context.Context, req protocol.Message) protocol.Message {
	const op = "handlers.user.deleteaccount"
	log := h.log.With(slog.String("op", op))

	if req.User == nil {
		log.Error("request without user payload")
		return protocol.Fail()
	}

	if err := h.users.DeleteAccount(ctx, req.User.Email, req.User.Password); err != nil {
		log.Error("failed to delete account", sl.Err(err))
		return protocol.Fail()
	}

	log.Info("account deleted", slog.String("email", req.User.Email))
	return protocol.OK()
}
