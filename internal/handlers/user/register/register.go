// Package register реализует обработчик регистрации нового пользователя.
//
// Поля запроса проверяются валидатором, пароль хэшируется до записи.
// Дубликат email или имени отлавливается ограничением базы и приходит
// обычной ошибкой — клиент получает отказ, не падение.
package register

import (
	"context"
	"log/slog"

	"github.com/go-playground/validator"

	"github.com/gronskott/happyplants/internal/lib/password"
	"github.com/gronskott/happyplants/internal/lib/sl"
	"github.com/gronskott/happyplants/internal/models"
	"github.com/gronskott/happyplants/internal/protocol"
)

// credentials поля регистрации для валидатора.
type credentials struct {
	Email    string `validate:"required,email"`
	Username string `validate:"required,alphanum,min=3"`
	Password string `validate:"required,min=6"`
}

// UserRepository описывает контракт работы с пользователями в базе данных.
type UserRepository interface {
	// SaveUser сохраняет нового пользователя.
	SaveUser(ctx context.Context, user models.User) error
}

// Handler обрабатывает запросы регистрации.
type Handler struct {
	log      *slog.Logger
	users    UserRepository
	validate *validator.Validate
}

// New создает новый Handler.
func New(log *slog.Logger, users UserRepository) *Handler {
	return &Handler{
		log:      log,
		users:    users,
		validate: validator.New(),
	}
}

// Respond сохраняет нового пользователя и отвечает флагом успеха.
func (h *Handler) Respond(ctx context.Context, req protocol.Message) protocol.Message {
	const op = "handlers.user.register"
	log := h.log.With(slog.String("op", op))

	if req.User == nil {
		log.Error("request without user payload")
		return protocol.Fail()
	}

	creds := credentials{
		Email:    req.User.Email,
		Username: req.User.Username,
		Password: req.User.Password,
	}
	if err := h.validate.Struct(creds); err != nil {
		log.Info("validation failed", sl.Err(err))
		return protocol.Fail()
	}

	hashed, err := password.GetHash(req.User.Password)
	if err != nil {
		log.Error("failed to hash password", sl.Err(err))
		return protocol.Fail()
	}

	user := models.User{
		Email:        req.User.Email,
		Username:     req.User.Username,
		PasswordHash: hashed,
	}
	if err := h.users.SaveUser(ctx, user); err != nil {
		log.Error("failed to save user", sl.Err(err))
		return protocol.Fail()
	}

	log.Info("user registered", slog.String("username", user.Username))
	return protocol.OK()
}
