// Package changenickname реализует обработчик переименования растения.
package changenickname

import (
	"context"
	"log/slog"

	"github.com/gronskott/happyplants/internal/lib/sl"
	"github.com/gronskott/happyplants/internal/protocol"
)

// LibraryRepository описывает контракт работы с библиотекой растений.
type LibraryRepository interface {
	ChangeNickname(ctx context.Context, userID int, nickname, newNickname string) error
}

// Handler обрабатывает запросы переименования растения.
type Handler struct {
	log     *slog.Logger
	library LibraryRepository
}

// New создает новый Handler.
func New(log *slog.Logger, library LibraryRepository) *Handler {
	return &Handler{log: log, library: library}
}

// Respond меняет кличку растения. Пустая новая кличка отклоняется.
func (h *Handler) Respond(ctx context.Context, req protocol.Message) protocol.Message {
	const op = "handlers.library.changenickname"
	log := h.log.With(slog.String("op", op))

	if req.User == nil || req.Plant == nil {
		log.Error("request without user or plant payload")
		return protocol.Fail()
	}
	if req.NewNickname == "" {
		log.Error("empty new nickname")
		return protocol.Fail()
	}

	err := h.library.ChangeNickname(ctx, req.User.ID, req.Plant.Nickname, req.NewNickname)
	if err != nil {
		log.Error("failed to change nickname", sl.Err(err))
		return protocol.Fail()
	}

	log.Info("nickname changed",
		slog.Int("user_id", req.User.ID),
		slog.String("old", req.Plant.Nickname),
		slog.String("new", req.NewNickname))
	return protocol.OK()
}
