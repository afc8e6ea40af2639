// Package deleteplant реализует обработчик удаления растения из библиотеки.
package deleteplant

import (
	"context"
	"log/slog"

	"github.com/gronskott/happyplants/internal/lib/sl"
	"github.com/gronskott/happyplants/internal/protocol"
)

// LibraryRepository описывает контракт работы с библиотекой растений.
type LibraryRepository interface {
	DeletePlant(ctx context.Context, userID int, nickname string) error
}

// Handler обрабатывает запросы удаления растения.
type Handler struct {
	log     *slog.Logger
	library LibraryRepository
}

// New создает новый Handler.
func New(log *slog.Logger, library LibraryRepository) *Handler {
	return &Handler{log: log, library: library}
}

// Respond удаляет растение пользователя по кличке.
func (h *Handler) Respond(ctx context.Context, req protocol.Message) protocol.Message {
	const op = "handlers.library.deleteplant"
	log := h.log.With(slog.String("op", op))

	if req.User == nil || req.Plant == nil {
		log.Error("request without user or plant payload")
		return protocol.Fail()
	}

	if err := h.library.DeletePlant(ctx, req.User.ID, req.Plant.Nickname); err != nil {
		log.Error("failed to delete plant", sl.Err(err))
		return protocol.Fail()
	}

	log.Info("plant deleted",
		slog.Int("user_id", req.User.ID),
		slog.String("nickname", req.Plant.Nickname))
	return protocol.OK()
}
