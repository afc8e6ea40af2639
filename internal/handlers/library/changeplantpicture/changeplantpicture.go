// Package changeplantpicture реализует обработчик смены картинки растения.
package changeplantpicture

import (
	"context"
	"log/slog"

	"github.com/gronskott/happyplants/internal/lib/sl"
	"github.com/gronskott/happyplants/internal/protocol"
)

// LibraryRepository описывает контракт работы с библиотекой растений.
type LibraryRepository interface {
	ChangePlantPicture(ctx context.Context, userID int, nickname, imageURL string) error
}

// Handler обрабатывает запросы смены картинки.
type Handler struct {
	log     *slog.Logger
	library LibraryRepository
}

// New создает новый Handler.
func New(log *slog.Logger, library LibraryRepository) *Handler {
	return &Handler{log: log, library: library}
}

// Respond сохраняет новую ссылку на картинку растения.
func (h *Handler) Respond(ctx context.Context, req protocol.Message) protocol.Message {
	const op = "handlers.library.changeplantpicture"
	log := h.log.With(slog.String("op", op))

	if req.User == nil || req.Plant == nil {
		log.Error("request without user or plant payload")
		return protocol.Fail()
	}

	err := h.library.ChangePlantPicture(ctx, req.User.ID, req.Plant.Nickname, req.Plant.ImageURL)
	if err != nil {
		log.Error("failed to change plant picture", sl.Err(err))
		return protocol.Fail()
	}

	log.Info("plant picture changed",
		slog.Int("user_id", req.User.ID),
		slog.String("nickname", req.Plant.Nickname))
	return protocol.OK()
}
