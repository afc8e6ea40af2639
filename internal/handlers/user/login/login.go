// Package login реализует обработчик входа пользователя.
//
// Логином служит email или имя пользователя; при совпадении пароля в
// ответ кладётся учётная запись без пароля и хэша. Любая ошибка
// хранилища превращается в ответ-отказ, наружу не летит.
package login

import (
	"context"
	"log/slog"

	"github.com/gronskott/happyplants/internal/lib/sl"
	"github.com/gronskott/happyplants/internal/models"
	"github.com/gronskott/happyplants/internal/protocol"
)

// UserRepository описывает контракт работы с пользователями в базе данных.
type UserRepository interface {
	// CheckLogin проверяет пару логин/пароль.
	CheckLogin(ctx context.Context, emailOrUsername, rawPassword string) (bool, error)

	// GetUserDetails возвращает пользователя по email или имени.
	GetUserDetails(ctx context.Context, emailOrUsername string) (*models.User, error)
}

// Handler обрабатывает запросы входа.
type Handler struct {
	log   *slog.Logger
	users UserRepository
}

// New создает новый Handler.
func New(log *slog.Logger, users UserRepository) *Handler {
	return &Handler{log: log, users: users}
}

// Respond проверяет учётные данные и возвращает данные пользователя.
func (h *Handler) Respond(ctx context.Context, req protocol.Message) protocol.Message {
	const op = "handlers.user.login"
	log := h.log.With(slog.String("op", op))

	if req.User == nil {
		log.Error("request without user payload")
		return protocol.Fail()
	}

	ok, err := h.users.CheckLogin(ctx, req.User.Email, req.User.Password)
	if err != nil {
		log.Error("failed to check login", sl.Err(err))
		return protocol.Fail()
	}
	if !ok {
		log.Info("invalid credentials", slog.String("login", req.User.Email))
		return protocol.Fail()
	}

	user, err := h.users.GetUserDetails(ctx, req.User.Email)
	if err != nil {
		log.Error("failed to load user details", sl.Err(err))
		return protocol.Fail()
	}

	log.Info("user logged in", slog.Int("user_id", user.ID))
	return protocol.OKWithUser(*user)
}
