// Package removewishlistplant реализует обработчик удаления растения
// из списка желаний.
package removewishlistplant

import (
	"context"
	"log/slog"
	"strconv"

	"github.com/gronskott/happyplants/internal/lib/sl"
	"github.com/gronskott/happyplants/internal/protocol"
)

// WishlistRepository описывает контракт работы со списком желаний.
type WishlistRepository interface {
	DeleteWishlistPlant(ctx context.Context, userID, plantID int) error
}

// Handler обрабатывает запросы удаления из списка желаний.
type Handler struct {
	log      *slog.Logger
	wishlist WishlistRepository
}

// New создает новый Handler.
func New(log *slog.Logger, wishlist WishlistRepository) *Handler {
	return &Handler{log: log, wishlist: wishlist}
}

// Respond удаляет растение из списка желаний по идентификатору вида.
func (h *Handler) Respond(ctx context.Context, req protocol.Message) protocol.Message {
	const op = "handlers.wishlist.removewishlistplant"
	log := h.log.With(slog.String("op", op))

	if req.User == nil || req.Plant == nil {
		log.Error("request without user or plant payload")
		return protocol.Fail()
	}

	plantID, err := strconv.Atoi(req.Plant.PlantID)
	if err != nil {
		log.Error("invalid plant id", sl.Err(err),
			slog.String("plant_id", req.Plant.PlantID))
		return protocol.Fail()
	}

	if err := h.wishlist.DeleteWishlistPlant(ctx, req.User.ID, plantID); err != nil {
		log.Error("failed to remove wishlist plant", sl.Err(err))
		return protocol.Fail()
	}

	log.Info("wishlist plant removed",
		slog.Int("user_id", req.User.ID),
		slog.Int("plant_id", plantID))
	return protocol.OK()
}
