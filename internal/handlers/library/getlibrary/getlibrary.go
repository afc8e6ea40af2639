// Package getlibrary реализует обработчик получения библиотеки растений
// пользователя.
package getlibrary

import (
	"context"
	"log/slog"
	"time"

	"github.com/gronskott/happyplants/internal/lib/sl"
	"github.com/gronskott/happyplants/internal/lib/watering"
	"github.com/gronskott/happyplants/internal/models"
	"github.com/gronskott/happyplants/internal/protocol"
)

// LibraryRepository описывает контракт работы с библиотекой растений.
type LibraryRepository interface {
	GetUserLibrary(ctx context.Context, userID int) ([]models.Plant, error)
}

// Handler обрабатывает запросы библиотеки растений.
type Handler struct {
	log     *slog.Logger
	library LibraryRepository
}

// New создает новый Handler.
func New(log *slog.Logger, library LibraryRepository) *Handler {
	return &Handler{log: log, library: library}
}

// Respond возвращает все растения пользователя, отсортированные по кличке.
func (h *Handler) Respond(ctx context.Context, req protocol.Message) protocol.Message {
	const op = "handlers.library.getlibrary"
	log := h.log.With(slog.String("op", op))

	if req.User == nil {
		log.Error("request without user payload")
		return protocol.Fail()
	}

	plants, err := h.library.GetUserLibrary(ctx, req.User.ID)
	if err != nil {
		log.Error("failed to load library", sl.Err(err))
		return protocol.Fail()
	}

	now := time.Now()
	for i := range plants {
		plants[i].WateringProgress = watering.Progress(plants[i].LastWatered, plants[i].WateringFrequency, now)
		plants[i].WateringStatus = watering.Status(plants[i].LastWatered, plants[i].WateringFrequency, now)
	}

	log.Info("library loaded",
		slog.Int("user_id", req.User.ID),
		slog.Int("count", len(plants)))
	return protocol.OKWithPlants(plants)
}
