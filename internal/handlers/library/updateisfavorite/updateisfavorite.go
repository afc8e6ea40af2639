// Package updateisfavorite реализует обработчик пометки растения
// как любимого.
package updateisfavorite

import (
	"context"
	"log/slog"

	"github.com/gronskott/happyplants/internal/lib/sl"
	"github.com/gronskott/happyplants/internal/protocol"
)

// LibraryRepository описывает контракт работы с библиотекой растений.
type LibraryRepository interface {
	UpdateIsFavorite(ctx context.Context, userID int, nickname string, isFavorite bool) error
}

// Handler обрабатывает запросы пометки любимых растений.
type Handler struct {
	log     *slog.Logger
	library LibraryRepository
}

// New создает новый Handler.
func New(log *slog.Logger, library LibraryRepository) *Handler {
	return &Handler{log: log, library: library}
}

// Respond сохраняет новый флаг любимого растения.
func (h *Handler) Respond(ctx context.Context, req protocol.Message) protocol.Message {
	const op = "handlers.library.updateisfavorite"
	log := h.log.With(slog.String("op", op))

	if req.User == nil || req.Plant == nil {
		log.Error("request without user or plant payload")
		return protocol.Fail()
	}

	err := h.library.UpdateIsFavorite(ctx, req.User.ID, req.Plant.Nickname, req.Enabled)
	if err != nil {
		log.Error("failed to update favorite flag", sl.Err(err))
		return protocol.Fail()
	}

	log.Info("favorite flag updated",
		slog.Int("user_id", req.User.ID),
		slog.String("nickname", req.Plant.Nickname),
		slog.Bool("favorite", req.Enabled))
	return protocol.OK()
}
