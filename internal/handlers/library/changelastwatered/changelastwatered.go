// Package changelastwatered реализует обработчик отметки полива растения
// указанной датой.
package changelastwatered

import (
	"context"
	"log/slog"
	"time"

	"github.com/gronskott/happyplants/internal/lib/sl"
	"github.com/gronskott/happyplants/internal/protocol"
)

// LibraryRepository описывает контракт работы с библиотекой растений.
type LibraryRepository interface {
	ChangeLastWatered(ctx context.Context, userID int, nickname string, lastWatered time.Time) error
}

// Handler обрабатывает запросы отметки полива.
type Handler struct {
	log     *slog.Logger
	library LibraryRepository
}

// New создает новый Handler.
func New(log *slog.Logger, library LibraryRepository) *Handler {
	return &Handler{log: log, library: library}
}

// Respond обновляет дату последнего полива. Дата в будущем отклоняется.
func (h *Handler) Respond(ctx context.Context, req protocol.Message) protocol.Message {
	const op = "handlers.library.changelastwatered"
	log := h.log.With(slog.String("op", op))

	if req.User == nil || req.Plant == nil {
		log.Error("request without user or plant payload")
		return protocol.Fail()
	}

	date, err := protocol.ParseDate(req.Date)
	if err != nil {
		log.Error("invalid date", sl.Err(err), slog.String("date", req.Date))
		return protocol.Fail()
	}
	plant := *req.Plant
	if err := plant.SetLastWatered(date, time.Now()); err != nil {
		log.Error("date in the future", sl.Err(err), slog.String("date", req.Date))
		return protocol.Fail()
	}

	err = h.library.ChangeLastWatered(ctx, req.User.ID, plant.Nickname, plant.LastWatered)
	if err != nil {
		log.Error("failed to change last watered", sl.Err(err))
		return protocol.Fail()
	}

	log.Info("last watered changed",
		slog.Int("user_id", req.User.ID),
		slog.String("nickname", plant.Nickname),
		slog.String("date", req.Date))
	return protocol.OK()
}
