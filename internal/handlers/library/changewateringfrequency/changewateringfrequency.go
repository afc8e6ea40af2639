// Package changewateringfrequency реализует обработчик изменения
// периодичности полива растения.
package changewateringfrequency

import (
	"context"
	"log/slog"

	"github.com/gronskott/happyplants/internal/lib/sl"
	"github.com/gronskott/happyplants/internal/protocol"
)

// LibraryRepository описывает контракт работы с библиотекой растений.
type LibraryRepository interface {
	UpdateWateringFrequency(ctx context.Context, userID int, nickname string, frequency int) error
}

// Handler обрабатывает запросы изменения периодичности полива.
type Handler struct {
	log     *slog.Logger
	library LibraryRepository
}

// New создает новый Handler.
func New(log *slog.Logger, library LibraryRepository) *Handler {
	return &Handler{log: log, library: library}
}

// Respond сохраняет новую периодичность полива в днях.
// Значение должно быть положительным.
func (h *Handler) Respond(ctx context.Context, req protocol.Message) protocol.Message {
	const op = "handlers.library.changewateringfrequency"
	log := h.log.With(slog.String("op", op))

	if req.User == nil || req.Plant == nil {
		log.Error("request without user or plant payload")
		return protocol.Fail()
	}
	if req.NewWateringFrequency <= 0 {
		log.Error("invalid watering frequency",
			slog.Int("frequency", req.NewWateringFrequency))
		return protocol.Fail()
	}

	err := h.library.UpdateWateringFrequency(ctx, req.User.ID, req.Plant.Nickname, req.NewWateringFrequency)
	if err != nil {
		log.Error("failed to change watering frequency", sl.Err(err))
		return protocol.Fail()
	}

	log.Info("watering frequency changed",
		slog.Int("user_id", req.User.ID),
		slog.String("nickname", req.Plant.Nickname),
		slog.Int("frequency", req.NewWateringFrequency))
	return protocol.OK()
}
