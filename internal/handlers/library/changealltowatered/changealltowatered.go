// Package changealltowatered реализует обработчик отметки всех растений
// пользователя как политых сегодня.
package changealltowatered

import (
	"context"
	"log/slog"

	"github.com/gronskott/happyplants/internal/lib/sl"
	"github.com/gronskott/happyplants/internal/protocol"
)

// LibraryRepository описывает контракт работы с библиотекой растений.
type LibraryRepository interface {
	ChangeAllToWatered(ctx context.Context, userID int) error
}

// Handler обрабатывает запросы массовой отметки полива.
type Handler struct {
	log     *slog.Logger
	library LibraryRepository
}

// New создает новый Handler.
func New(log *slog.Logger, library LibraryRepository) *Handler {
	return &Handler{log: log, library: library}
}

// Respond отмечает все растения пользователя политыми текущей датой.
func (h *Handler) Respond(ctx context.Context, req protocol.Message) protocol.Message {
	const op = "handlers.library.changealltowatered"
	log := h.log.With(slog.String("op", op))

	if req.User == nil {
		log.Error("request without user payload")
		return protocol.Fail()
	}

	if err := h.library.ChangeAllToWatered(ctx, req.User.ID); err != nil {
		log.Error("failed to water all plants", sl.Err(err))
		return protocol.Fail()
	}

	log.Info("all plants watered", slog.Int("user_id", req.User.ID))
	return protocol.OK()
}
