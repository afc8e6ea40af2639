// Package savewishlistplant реализует обработчик добавления растения
// в список желаний. Перед сохранением подтягивает подробности о виде
// из каталога, чтобы карточка в списке была заполнена.
package savewishlistplant

import (
	"context"
	"log/slog"
	"time"

	"github.com/gronskott/happyplants/internal/lib/sl"
	"github.com/gronskott/happyplants/internal/models"
	"github.com/gronskott/happyplants/internal/protocol"
)

// WishlistRepository описывает контракт работы со списком желаний.
type WishlistRepository interface {
	SaveWishlistPlant(ctx context.Context, userID int, plant models.Plant, details models.PlantDetails) error
}

// DetailsProvider отдаёт подробности о виде растения по его идентификатору.
type DetailsProvider interface {
	Details(ctx context.Context, plantID string) models.PlantDetails
}

// Handler обрабатывает запросы добавления в список желаний.
type Handler struct {
	log      *slog.Logger
	wishlist WishlistRepository
	details  DetailsProvider
}

// New создает новый Handler.
func New(log *slog.Logger, wishlist WishlistRepository, details DetailsProvider) *Handler {
	return &Handler{log: log, wishlist: wishlist, details: details}
}

// Respond сохраняет растение в списке желаний вместе с подробностями вида.
func (h *Handler) Respond(ctx context.Context, req protocol.Message) protocol.Message {
	const op = "handlers.wishlist.savewishlistplant"
	log := h.log.With(slog.String("op", op))

	if req.User == nil || req.Plant == nil {
		log.Error("request without user or plant payload")
		return protocol.Fail()
	}

	plant := *req.Plant
	if plant.DateAdded.IsZero() {
		plant.DateAdded = time.Now()
	}
	plant.EnsureImage()

	details := h.details.Details(ctx, plant.PlantID)

	if err := h.wishlist.SaveWishlistPlant(ctx, req.User.ID, plant, details); err != nil {
		log.Error("failed to save wishlist plant", sl.Err(err))
		return protocol.Fail()
	}

	log.Info("wishlist plant saved",
		slog.Int("user_id", req.User.ID),
		slog.String("plant_id", plant.PlantID))
	return protocol.OK()
}
