// Package saveplant реализует обработчик добавления растения в библиотеку
// пользователя.
package saveplant

import (
	"context"
	"log/slog"
	"time"

	"github.com/gronskott/happyplants/internal/lib/sl"
	"github.com/gronskott/happyplants/internal/models"
	"github.com/gronskott/happyplants/internal/protocol"
)

// LibraryRepository описывает контракт работы с библиотекой растений.
type LibraryRepository interface {
	SavePlant(ctx context.Context, userID int, plant models.Plant) error
}

// Handler обрабатывает запросы добавления растения.
type Handler struct {
	log     *slog.Logger
	library LibraryRepository
}

// New создает новый Handler.
func New(log *slog.Logger, library LibraryRepository) *Handler {
	return &Handler{log: log, library: library}
}

// Respond проверяет растение и сохраняет его в библиотеке.
// Дата последнего полива не может быть в будущем; пустая дата
// означает полив сейчас.
func (h *Handler) Respond(ctx context.Context, req protocol.Message) protocol.Message {
	const op = "handlers.library.saveplant"
	log := h.log.With(slog.String("op", op))

	if req.User == nil || req.Plant == nil {
		log.Error("request without user or plant payload")
		return protocol.Fail()
	}

	plant := *req.Plant
	if plant.Nickname == "" {
		log.Error("plant without nickname")
		return protocol.Fail()
	}
	if plant.WateringFrequency <= 0 {
		log.Error("invalid watering frequency",
			slog.Int("frequency", plant.WateringFrequency))
		return protocol.Fail()
	}

	now := time.Now()
	if plant.LastWatered.IsZero() {
		plant.LastWatered = now
	}
	if err := plant.SetLastWatered(plant.LastWatered, now); err != nil {
		log.Error("invalid last watered date", sl.Err(err))
		return protocol.Fail()
	}
	plant.EnsureImage()

	if err := h.library.SavePlant(ctx, req.User.ID, plant); err != nil {
		log.Error("failed to save plant", sl.Err(err))
		return protocol.Fail()
	}

	log.Info("plant saved",
		slog.Int("user_id", req.User.ID),
		slog.String("nickname", plant.Nickname))
	return protocol.OK()
}
